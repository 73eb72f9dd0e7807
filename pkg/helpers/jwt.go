package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTManager validates HS256-signed bearer tokens. It is the drop-in
// replacement for the static shared-secret check when AUTH_MODE=jwt: any
// token with a valid, unexpired signature from the configured secret is
// accepted.
type JWTManager struct {
	Secret []byte
}

func NewJWTManager(secret string) *JWTManager {
	return &JWTManager{Secret: []byte(secret)}
}

// GenerateToken issues a token for the given subject. Used by operator
// tooling and tests; the API itself never issues credentials.
func (m *JWTManager) GenerateToken(subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.Secret)
}

// Validate reports whether the token carries a valid HS256 signature and
// has not expired.
func (m *JWTManager) Validate(tokenStr string) bool {
	tkn, err := jwt.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.Secret, nil
	})
	return err == nil && tkn.Valid
}
