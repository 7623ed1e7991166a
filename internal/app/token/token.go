// Package token issues and verifies the HS256 bearer tokens handed out by /login.
package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"gamerental/internal/app/config"
	"gamerental/internal/app/ds"

	"github.com/golang-jwt/jwt"
)

const issuer = "game-rental"

var ErrInvalidToken = errors.New("invalid token")

type Manager struct {
	secret    []byte
	expiresIn time.Duration
	method    jwt.SigningMethod
	now       func() time.Time
}

func NewManager(cfg config.JWTConfig) *Manager {
	method := cfg.SigningMethod
	if method == nil {
		method = jwt.SigningMethodHS256
	}
	expiresIn := cfg.ExpiresIn
	if expiresIn <= 0 {
		expiresIn = time.Hour
	}
	return &Manager{
		secret:    []byte(cfg.Token),
		expiresIn: expiresIn,
		method:    method,
		now:       time.Now,
	}
}

func (m *Manager) ExpiresIn() time.Duration { return m.expiresIn }

// Issue signs a token whose subject is the user id.
func (m *Manager) Issue(user *ds.User) (string, error) {
	now := m.now()
	claims := ds.JWTClaims{
		StandardClaims: jwt.StandardClaims{
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			ExpiresAt: now.Add(m.expiresIn).Unix(),
			IssuedAt:  now.Unix(),
			Issuer:    issuer,
		},
		UserID:  user.ID,
		LevelID: user.LevelID,
	}

	signed, err := jwt.NewWithClaims(m.method, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Parse verifies signature, algorithm and expiry.
func (m *Manager) Parse(tokenString string) (*ds.JWTClaims, error) {
	tok, err := jwt.ParseWithClaims(tokenString, &ds.JWTClaims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != m.method.Alg() {
			return nil, fmt.Errorf("unexpected signing method %s", t.Method.Alg())
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := tok.Claims.(*ds.JWTClaims)
	if !ok || !tok.Valid || claims.UserID == 0 {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// TTL is how long the token stays valid from now.
func (m *Manager) TTL(claims *ds.JWTClaims) time.Duration {
	return time.Unix(claims.ExpiresAt, 0).Sub(m.now())
}
