package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken is the single error returned for any token that fails
// verification. Malformed input, a bad signature and an expired token are
// indistinguishable to the caller.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the signed token payload. The subject key is employee_id.
type Claims struct {
	EmployeeID string `json:"employee_id"`
	jwt.RegisteredClaims
}

func GenerateToken(secret string, employeeID uuid.UUID, ttl time.Duration) (string, error) {
	claims := &Claims{
		EmployeeID: employeeID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken verifies signature and expiration and returns the subject.
// A token without an exp claim is rejected.
func ParseToken(secret, tokenStr string) (uuid.UUID, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	}, jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return uuid.Nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || claims.EmployeeID == "" {
		return uuid.Nil, ErrInvalidToken
	}

	employeeID, err := uuid.Parse(claims.EmployeeID)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}

	return employeeID, nil
}
