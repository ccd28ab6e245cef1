package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type TokenType string

const (
	AccessToken  TokenType = "access"
	RefreshToken TokenType = "refresh"
)

// VerifyStatus is the outcome of checking a token. Only StatusValid carries
// trustworthy claims.
type VerifyStatus int

const (
	StatusValid VerifyStatus = iota
	StatusExpired
	StatusMalformed
	StatusSignatureInvalid
)

func (s VerifyStatus) String() string {
	switch s {
	case StatusValid:
		return "valid"
	case StatusExpired:
		return "expired"
	case StatusSignatureInvalid:
		return "signature_invalid"
	default:
		return "malformed"
	}
}

// JWTManager handles generation and validation of JWT tokens
type JWTManager struct {
	AccessSecret  []byte
	RefreshSecret []byte
	Issuer        string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
	// Now is the clock used for issuing and expiry checks; nil means time.Now.
	Now func() time.Time
}

func NewJWTManager(accessSecret, refreshSecret, issuer string, accessTTL, refreshTTL time.Duration) *JWTManager {
	return &JWTManager{
		AccessSecret:  []byte(accessSecret),
		RefreshSecret: []byte(refreshSecret),
		Issuer:        issuer,
		AccessTTL:     accessTTL,
		RefreshTTL:    refreshTTL,
	}
}

type Claims struct {
	UserID string    `json:"user_id"`
	Type   TokenType `json:"typ"`
	jwt.RegisteredClaims
}

type TokenPair struct {
	AccessToken      string    `json:"access_token"`
	AccessExpiresAt  time.Time `json:"access_expires_at"`
	RefreshToken     string    `json:"refresh_token"`
	RefreshExpiresAt time.Time `json:"refresh_expires_at"`
	TokenType        string    `json:"token_type"`
}

type Verification struct {
	Status VerifyStatus
	Claims *Claims
	Err    error
}

func (v Verification) Valid() bool { return v.Status == StatusValid }

func (m *JWTManager) now() time.Time {
	if m.Now != nil {
		return m.Now()
	}
	return time.Now()
}

// Issue signs a fresh access/refresh pair for userID.
func (m *JWTManager) Issue(userID string) (TokenPair, error) {
	access, aexp, err := m.sign(userID, AccessToken, m.AccessSecret, m.AccessTTL)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, rexp, err := m.sign(userID, RefreshToken, m.RefreshSecret, m.RefreshTTL)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{
		AccessToken:      access,
		AccessExpiresAt:  aexp,
		RefreshToken:     refresh,
		RefreshExpiresAt: rexp,
		TokenType:        "Bearer",
	}, nil
}

func (m *JWTManager) sign(userID string, typ TokenType, secret []byte, ttl time.Duration) (string, time.Time, error) {
	now := m.now()
	exp := now.Add(ttl)
	claims := &Claims{
		UserID: userID,
		Type:   typ,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    m.Issuer,
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := t.SignedString(secret)
	// NumericDate drops sub-second precision; report what the token carries
	return s, claims.ExpiresAt.Time, err
}

func (m *JWTManager) VerifyAccess(tokenStr string) Verification {
	return m.verify(tokenStr, m.AccessSecret, AccessToken)
}

func (m *JWTManager) VerifyRefresh(tokenStr string) Verification {
	return m.verify(tokenStr, m.RefreshSecret, RefreshToken)
}

// verify accepts a token only strictly before its exp claim.
func (m *JWTManager) verify(tokenStr string, secret []byte, want TokenType) Verification {
	claims := &Claims{}
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	}
	if m.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(m.Issuer))
	}
	_, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	}, opts...)
	switch {
	case err == nil:
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return Verification{Status: StatusSignatureInvalid, Err: err}
	case errors.Is(err, jwt.ErrTokenExpired):
		return Verification{Status: StatusExpired, Claims: claims, Err: err}
	default:
		return Verification{Status: StatusMalformed, Err: err}
	}
	if claims.Type != want {
		return Verification{Status: StatusMalformed, Err: errors.New("unexpected token type " + string(claims.Type))}
	}
	if claims.UserID == "" {
		return Verification{Status: StatusMalformed, Err: errors.New("missing user_id claim")}
	}
	return Verification{Status: StatusValid, Claims: claims}
}
