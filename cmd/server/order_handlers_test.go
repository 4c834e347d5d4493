package main

import (
	"context"
	"fmt"
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jortega-dev/threads-shop/internal/httpx"
	"github.com/jortega-dev/threads-shop/internal/order"
)

//
// ---------- STUBS ----------
//

// stubOrderRepo implements order.Repository in memory. When known is
// non-nil, Place rejects product ids outside it, like the SQL
// INSERT..SELECT does.
type stubOrderRepo struct {
	known     map[string]bool
	lastOrder *order.Order
	lastItems []order.Item
}

func (s *stubOrderRepo) Place(ctx context.Context, o *order.Order, items []order.Item) error {
	if s.known != nil {
		for _, it := range items {
			if !s.known[it.ProductID] {
				return fmt.Errorf("%w: %s", order.ErrProductNotFound, it.ProductID)
			}
		}
	}
	cp := *o
	s.lastOrder = &cp
	s.lastItems = append([]order.Item(nil), items...)
	return nil
}

func (s *stubOrderRepo) ListByUser(ctx context.Context, userID string) ([]order.Order, error) {
	if s.lastOrder != nil && s.lastOrder.UserID == userID {
		return []order.Order{*s.lastOrder}, nil
	}
	return []order.Order{}, nil
}

func (s *stubOrderRepo) GetLines(ctx context.Context, orderID string) ([]order.Line, error) {
	if s.lastOrder == nil || s.lastOrder.ID != orderID {
		return nil, fmt.Errorf("not found")
	}
	lines := make([]order.Line, 0, len(s.lastItems))
	for _, it := range s.lastItems {
		lines = append(lines, order.Line{Title: it.ProductID, Quantity: it.Quantity})
	}
	return lines, nil
}

func orderRouter(repo order.Repository) *gin.Engine {
	r := gin.New()
	r.Use(httpx.Session(testSecret))
	r.POST("/place-order/", httpx.RequireUser(), placeOrderHandler(repo))
	return r
}

func postOrder(t *testing.T, r *gin.Engine, cartData string, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	form := url.Values{}
	if cartData != "" {
		form.Set("cart_data", cartData)
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/place-order/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	r.ServeHTTP(w, req)
	return w
}

//
// ---------- TESTS ----------
//

func TestPlaceOrder_HappyPath(t *testing.T) {
	t.Parallel()

	p1, p2 := uuid.NewString(), uuid.NewString()
	repo := &stubOrderRepo{known: map[string]bool{p1: true, p2: true}}
	uid := uuid.NewString()
	r := orderRouter(repo)

	cartData := fmt.Sprintf(`[{"id":%q,"price":9.99,"quantity":2},{"id":%q,"price":4.50,"quantity":1}]`, p1, p2)
	w := postOrder(t, r, cartData, authCookie(t, uid))

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	res := decodeStatus(t, w)
	if res.Status != "success" || res.OrderID == "" || res.Message == "" {
		t.Fatalf("unexpected response: %s", w.Body.String())
	}

	if repo.lastOrder == nil {
		t.Fatalf("no order persisted")
	}
	if repo.lastOrder.Total != "24.48" {
		t.Fatalf("total=%s, want 24.48", repo.lastOrder.Total)
	}
	if repo.lastOrder.Status != order.StatusConfirmed {
		t.Fatalf("status=%s, want %s", repo.lastOrder.Status, order.StatusConfirmed)
	}
	if repo.lastOrder.UserID != uid {
		t.Fatalf("order owner=%s, want %s", repo.lastOrder.UserID, uid)
	}
	if len(repo.lastItems) != 2 {
		t.Fatalf("items=%d, want 2", len(repo.lastItems))
	}
	for _, it := range repo.lastItems {
		if it.OrderID != repo.lastOrder.ID {
			t.Fatalf("item not linked to order: %+v", it)
		}
	}
}

func TestPlaceOrder_StringPricesAccepted(t *testing.T) {
	t.Parallel()

	p1 := uuid.NewString()
	repo := &stubOrderRepo{known: map[string]bool{p1: true}}
	r := orderRouter(repo)

	// clients that kept the price a string round-trip it unchanged
	cartData := fmt.Sprintf(`[{"id":%q,"price":"19.90","quantity":3}]`, p1)
	w := postOrder(t, r, cartData, authCookie(t, uuid.NewString()))

	if res := decodeStatus(t, w); res.Status != "success" {
		t.Fatalf("unexpected response: %s", w.Body.String())
	}
	if repo.lastOrder.Total != "59.70" {
		t.Fatalf("total=%s, want 59.70", repo.lastOrder.Total)
	}
}

func TestPlaceOrder_NoCartData(t *testing.T) {
	t.Parallel()

	repo := &stubOrderRepo{}
	r := orderRouter(repo)

	w := postOrder(t, r, "", authCookie(t, uuid.NewString()))
	res := decodeStatus(t, w)
	if res.Status != "error" {
		t.Fatalf("want error, got %s", w.Body.String())
	}
	if repo.lastOrder != nil {
		t.Fatalf("order must not be created")
	}
}

func TestPlaceOrder_EmptyCart(t *testing.T) {
	t.Parallel()

	repo := &stubOrderRepo{}
	r := orderRouter(repo)

	w := postOrder(t, r, `[]`, authCookie(t, uuid.NewString()))
	res := decodeStatus(t, w)
	if res.Status != "error" {
		t.Fatalf("want error, got %s", w.Body.String())
	}
	if repo.lastOrder != nil {
		t.Fatalf("order must not be created")
	}
}

func TestPlaceOrder_UnknownProduct(t *testing.T) {
	t.Parallel()

	repo := &stubOrderRepo{known: map[string]bool{}}
	r := orderRouter(repo)

	cartData := fmt.Sprintf(`[{"id":%q,"price":9.99,"quantity":1}]`, uuid.NewString())
	w := postOrder(t, r, cartData, authCookie(t, uuid.NewString()))

	res := decodeStatus(t, w)
	if res.Status != "error" || res.Message == "" {
		t.Fatalf("want error with message, got %s", w.Body.String())
	}
	if repo.lastOrder != nil {
		t.Fatalf("failed placement must not persist an order")
	}
}

func TestPlaceOrder_RedirectsAnonymousToLogin(t *testing.T) {
	t.Parallel()

	repo := &stubOrderRepo{}
	r := orderRouter(repo)

	w := postOrder(t, r, `[]`, nil)
	if w.Code != http.StatusFound {
		t.Fatalf("status=%d, want 302", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/login/" {
		t.Fatalf("redirect to %q, want /login/", loc)
	}
}

func TestOrdersPage_OwnerScoped(t *testing.T) {
	t.Parallel()

	uid := uuid.NewString()
	oid := uuid.NewString()
	repo := &stubOrderRepo{
		lastOrder: &order.Order{ID: oid, UserID: uid, Status: order.StatusConfirmed, Total: "24.48"},
		lastItems: []order.Item{{ID: uuid.NewString(), OrderID: oid, ProductID: uuid.NewString(), Quantity: 2}},
	}

	r := gin.New()
	r.SetHTMLTemplate(template.Must(template.New("orders.html").Parse(
		`{{range .Orders}}{{.ID}}|{{.Total}}|{{len .Lines}};{{end}}`)))
	r.Use(httpx.Session(testSecret))
	r.GET("/orders/", httpx.RequireUser(), ordersPage(repo))

	// the owner sees the order
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/orders/", nil)
	req.AddCookie(authCookie(t, uid))
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), oid+"|24.48|1;") {
		t.Fatalf("status=%d body=%q", w.Code, w.Body.String())
	}

	// another user sees nothing
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/orders/", nil)
	req.AddCookie(authCookie(t, uuid.NewString()))
	r.ServeHTTP(w, req)
	if strings.Contains(w.Body.String(), oid) {
		t.Fatalf("foreign order leaked: %q", w.Body.String())
	}
}
