package main

import (
	"context"
	"html/template"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jortega-dev/threads-shop/internal/account"
	"github.com/jortega-dev/threads-shop/internal/catalog"
	"github.com/jortega-dev/threads-shop/internal/httpx"
)

type stubCatalogRepo struct {
	products []catalog.Product
}

func (s *stubCatalogRepo) List(ctx context.Context) ([]catalog.Product, error) {
	return s.products, nil
}

func (s *stubCatalogRepo) GetByID(ctx context.Context, id string) (*catalog.Product, error) {
	for i := range s.products {
		if s.products[i].ID == id {
			return &s.products[i], nil
		}
	}
	return nil, catalog.ErrNotFound
}

func (s *stubCatalogRepo) ReplaceAll(ctx context.Context, products []catalog.Product) error {
	s.products = append([]catalog.Product(nil), products...)
	return nil
}

func catalogRouter(repo catalog.Repository, users account.Repository) *gin.Engine {
	r := gin.New()
	tmpl := template.New("")
	template.Must(tmpl.New("index.html").Parse(
		`{{if .Message}}[{{.Message}}]{{end}}{{if .Username}}hi {{.Username}}:{{end}}{{range .Products}}{{.Title}};{{end}}`))
	template.Must(tmpl.New("product.html").Parse(`{{.Product.Title}}|{{.Product.Price}}`))
	r.SetHTMLTemplate(tmpl)
	r.Use(httpx.Session(testSecret))
	r.GET("/", indexPage(repo, users))
	r.GET("/product/:id", productPage(repo))
	return r
}

func TestIndexPage_ListsCatalog(t *testing.T) {
	t.Parallel()

	repo := &stubCatalogRepo{products: []catalog.Product{
		{ID: uuid.NewString(), Title: "Shirt", Price: "9.99"},
		{ID: uuid.NewString(), Title: "Mug", Price: "4.50"},
	}}
	r := catalogRouter(repo, newStubUserRepo())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if got := w.Body.String(); got != "Shirt;Mug;" {
		t.Fatalf("body=%q", got)
	}
}

func TestProductPage(t *testing.T) {
	t.Parallel()

	pid := uuid.NewString()
	repo := &stubCatalogRepo{products: []catalog.Product{
		{ID: pid, Title: "Shirt", Price: "9.99"},
	}}
	r := catalogRouter(repo, newStubUserRepo())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/product/"+pid, nil))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Shirt|9.99") {
		t.Fatalf("status=%d body=%q", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/product/"+uuid.NewString(), nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("status=%d, want 404", w.Code)
	}
}
