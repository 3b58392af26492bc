package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the session payload issued after a successful PIN login.
type Claims struct {
	StaffID int `json:"staff_id"`
	RoleID  int `json:"role_id"`
	jwt.RegisteredClaims
}

// GenerateToken creates a signed session token for a staff member.
func GenerateToken(secret []byte, staffID, roleID int, ttl time.Duration) (string, error) {
	claims := &Claims{
		StaffID: staffID,
		RoleID:  roleID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ValidateToken parses and verifies a session token.
func ValidateToken(secret []byte, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
