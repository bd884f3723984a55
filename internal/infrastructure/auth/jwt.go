package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"stride/internal/shared/biztime"
)

// Claims carries the authenticated principal. Subject holds the user ID as a
// decimal string.
type Claims struct {
	Username string `json:"username,omitempty"`
	jwt.RegisteredClaims
}

// UserID parses the subject claim back into a numeric user ID.
func (c *Claims) UserID() (uint, error) {
	id, err := strconv.ParseUint(c.Subject, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid subject claim %q", c.Subject)
	}
	return uint(id), nil
}

type JWTService struct {
	secret           []byte
	accessExpMinutes int
}

func NewJWTService(secret string, accessExpMinutes int) *JWTService {
	return &JWTService{
		secret:           []byte(secret),
		accessExpMinutes: accessExpMinutes,
	}
}

// Generate issues a signed access token for the user with the configured TTL.
func (s *JWTService) Generate(userID uint, username string) (string, error) {
	return s.GenerateWithTTL(userID, username, time.Duration(s.accessExpMinutes)*time.Minute)
}

// GenerateWithTTL issues a signed access token with an explicit TTL. A
// non-positive TTL produces an already-expired token.
func (s *JWTService) GenerateWithTTL(userID uint, username string, ttl time.Duration) (string, error) {
	if userID == 0 {
		return "", fmt.Errorf("user ID is required")
	}

	now := biztime.NowUTC()
	claims := &Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}

	return signed, nil
}

// Verify validates the signature and expiry. Malformed, tampered, and expired
// tokens all fail the same way.
func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// AccessExpMinutes returns the access token expiration time in minutes.
func (s *JWTService) AccessExpMinutes() int {
	return s.accessExpMinutes
}
