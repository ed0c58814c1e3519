package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/appointment-system/internal/httperr"
	"github.com/BruksfildServices01/appointment-system/internal/models"
)

// Claims is the identity snapshot embedded in a token at login. It is
// never refreshed from the database afterwards.
type Claims struct {
	UserID    uint
	Username  string
	Role      models.Role
	CompanyID *uint
}

type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

func (m *TokenManager) Generate(user *models.User) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"role":     string(user.Role),
		"exp":      now.Add(m.ttl).Unix(),
		"iat":      now.Unix(),
	}
	if user.CompanyID != nil {
		claims["companyId"] = *user.CompanyID
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Decode verifies the signature and expiry and returns the embedded
// claims. Every failure mode collapses into the same authentication
// error; callers get no detail on why a token was rejected.
func (m *TokenManager) Decode(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, httperr.Authentication("invalid_token", "invalid or expired token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, httperr.Authentication("invalid_token", "invalid or expired token")
	}

	sub, okSub := mapClaims["sub"].(float64)
	username, okName := mapClaims["username"].(string)
	roleStr, okRole := mapClaims["role"].(string)
	if !okSub || !okName || !okRole {
		return nil, httperr.Authentication("invalid_token", "invalid or expired token")
	}

	role, ok := models.ParseRole(roleStr)
	if !ok {
		return nil, httperr.Authentication("invalid_token", "invalid or expired token")
	}

	claims := &Claims{
		UserID:   uint(sub),
		Username: username,
		Role:     role,
	}
	if companyID, ok := mapClaims["companyId"].(float64); ok {
		id := uint(companyID)
		claims.CompanyID = &id
	}

	return claims, nil
}
