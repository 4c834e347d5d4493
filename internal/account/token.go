package account

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const SessionTTL = 24 * time.Hour

// NewSessionToken signs an HS256 token carrying the user id, used as the
// value of the session cookie.
func NewSessionToken(secret, userID string) (string, error) {
	claims := jwt.MapClaims{
		"uid": userID,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(SessionTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
