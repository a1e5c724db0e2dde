package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const RoleAdmin = "admin"

// Claims carried by an admin session token
type Claims struct {
	UserID uint
	Role   string
}

// GenerateToken issues a signed HS256 session token
func GenerateToken(userID uint, role, secret string, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(ttl).Unix(),
	})
	return token.SignedString([]byte(secret))
}

// ValidateToken parses and verifies a session token
func ValidateToken(tokenString, secret string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("error parsing token: %v", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, errors.New("invalid or missing expiration claim")
	}
	if time.Unix(int64(exp), 0).Before(time.Now()) {
		return nil, errors.New("token has expired")
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return nil, errors.New("user_id not found or invalid type")
	}
	role, ok := claims["role"].(string)
	if !ok {
		return nil, errors.New("role not found in token")
	}

	return &Claims{UserID: uint(userID), Role: role}, nil
}

// FromAuthHeader extracts and validates the bearer token of an Authorization header
func FromAuthHeader(authHeader, secret string) (*Claims, error) {
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, errors.New("invalid token format")
	}
	return ValidateToken(strings.TrimPrefix(authHeader, "Bearer "), secret)
}
