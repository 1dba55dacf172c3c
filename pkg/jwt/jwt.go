package jwt

import (
	"time"

	"github.com/faizuddin0019/werwolf-sub002/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateToken creates a new JWT whose subject is the caller's client
// identity (the browser fingerprint presented at create/join time).
func GenerateToken(clientID string) (string, error) {
	claims := jwt.MapClaims{
		"sub": clientID,
		"exp": time.Now().Add(time.Hour * 24 * 7).Unix(), // Token expires in 7 days
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(config.AppConfig.JWTSecret))
}
