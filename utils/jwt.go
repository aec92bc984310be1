package utils

import (
	"errors"
	"time"

	"barberbook/config"

	"github.com/golang-jwt/jwt"
)

func secretKey() []byte {
	secret := config.AppConfig.JWTSecret
	if secret == "" {
		secret = "barberbook-dev"
	}
	return []byte(secret)
}

// GenerateToken creates a signed JWT for a staff user. The subject is the
// staff ID; establishmentId rides along so handlers can scope queries without
// an extra lookup.
func GenerateToken(subject, establishmentID string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub": subject,
		"est": establishmentID,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
}

// ClaimsFromToken extracts the staff ID and establishment ID from a valid
// token string.
func ClaimsFromToken(tokenString string) (staffID, establishmentID string, err error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return "", "", err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", "", errors.New("invalid token claims")
	}
	staffID, _ = claims["sub"].(string)
	establishmentID, _ = claims["est"].(string)
	if staffID == "" {
		return "", "", errors.New("token missing subject")
	}
	return staffID, establishmentID, nil
}
