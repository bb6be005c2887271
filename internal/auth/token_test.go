package auth_test

import (
	"testing"
	"time"

	"tasktrack/internal/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret-key"

func TestGenerateAndParseToken(t *testing.T) {
	employeeID := uuid.New()

	token, err := auth.GenerateToken(testSecret, employeeID, 24*time.Hour)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	parsedID, err := auth.ParseToken(testSecret, token)
	assert.NoError(t, err)
	assert.Equal(t, employeeID, parsedID)
}

func TestParseToken_InvalidToken(t *testing.T) {
	_, err := auth.ParseToken(testSecret, "invalid-token")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestParseToken_ExpiredToken(t *testing.T) {
	employeeID := uuid.New()

	// Токен истек 1 час назад
	token, err := auth.GenerateToken(testSecret, employeeID, -1*time.Hour)
	assert.NoError(t, err)

	_, err = auth.ParseToken(testSecret, token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := auth.GenerateToken("another-secret", uuid.New(), time.Hour)
	assert.NoError(t, err)

	_, err = auth.ParseToken(testSecret, token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestParseToken_MissingSubject(t *testing.T) {
	// Токен без employee_id
	claims := jwt.MapClaims{
		"exp": time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	assert.NoError(t, err)

	_, err = auth.ParseToken(testSecret, signed)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestParseToken_MissingExpiry(t *testing.T) {
	// Токен без exp должен быть отклонен
	claims := jwt.MapClaims{
		"employee_id": uuid.New().String(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	assert.NoError(t, err)

	_, err = auth.ParseToken(testSecret, signed)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestParseToken_UnsignedAlgorithm(t *testing.T) {
	claims := jwt.MapClaims{
		"employee_id": uuid.New().String(),
		"exp":         time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	assert.NoError(t, err)

	_, err = auth.ParseToken(testSecret, signed)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestParseToken_NonUUIDSubject(t *testing.T) {
	claims := jwt.MapClaims{
		"employee_id": "not-a-valid-uuid",
		"exp":         time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	assert.NoError(t, err)

	_, err = auth.ParseToken(testSecret, signed)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
