package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/pageza/calorie-quest/backend/internal/middleware"
)

const tokenSubject = "owner"

// AuthService guards the API with a single passphrase. A bcrypt hash of the
// passphrase is exchanged for a signed token.
type AuthService struct {
	passphraseHash []byte
	jwtSecret      []byte
	ttl            time.Duration
	now            Clock
}

var _ IAuthService = (*AuthService)(nil)

func NewAuthService(passphraseHash, jwtSecret string, ttl time.Duration, now Clock) *AuthService {
	return &AuthService{
		passphraseHash: []byte(passphraseHash),
		jwtSecret:      []byte(jwtSecret),
		ttl:            ttl,
		now:            now,
	}
}

// Enabled reports whether a passphrase has been configured.
func (s *AuthService) Enabled() bool {
	return len(s.passphraseHash) > 0
}

// Login checks the passphrase and returns a token and its expiry.
func (s *AuthService) Login(passphrase string) (string, time.Time, error) {
	if !s.Enabled() {
		return "", time.Time{}, ErrAuthDisabled
	}
	if err := bcrypt.CompareHashAndPassword(s.passphraseHash, []byte(passphrase)); err != nil {
		return "", time.Time{}, ErrInvalidCredentials
	}

	now := s.now()
	expires := now.Add(s.ttl)
	claims := jwt.RegisteredClaims{
		Subject:   tokenSubject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expires),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expires, nil
}

// HashPassphrase returns the bcrypt hash expected in AUTH_PASSPHRASE_HASH.
func HashPassphrase(passphrase string) (string, error) {
	if passphrase == "" {
		return "", errors.New("passphrase must not be empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(passphrase), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// ValidateToken implements middleware.TokenValidator.
func (s *AuthService) ValidateToken(tokenString string) (*middleware.TokenClaims, error) {
	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtSecret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject != tokenSubject {
		return nil, ErrInvalidToken
	}

	out := &middleware.TokenClaims{Subject: claims.Subject}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}
