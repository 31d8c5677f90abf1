package token

import (
	"fmt"
	"time"

	config "github.com/devshowcase/api/configs"
	"github.com/devshowcase/api/internal/core/domain/auth"
	"github.com/devshowcase/api/internal/core/ports"
	"github.com/golang-jwt/jwt/v5"
)

// JWTSigner signs claim sets with HS256. It stamps issued-at and the
// configured expiry onto the claims; the state machine never sets those.
type JWTSigner struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTSigner(cfg *config.JWTConfig) ports.TokenSigner {
	return &JWTSigner{
		secret: []byte(cfg.Secret),
		ttl:    cfg.AccessTokenTTL,
	}
}

func (s *JWTSigner) Sign(claims *auth.Claims) (string, error) {
	now := time.Now()
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.ttl))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

func (s *JWTSigner) Parse(tokenString string) (*auth.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &auth.Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure the token's signing method is HMAC (prevent alg confusion)
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(*auth.Claims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}
