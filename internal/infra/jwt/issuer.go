package jwt

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	gojwt "github.com/golang-jwt/jwt/v4"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims is what a session token carries.
type Claims struct {
	UserID       int64
	Role         string
	TokenVersion int
	ExpiresAt    time.Time
}

// Issuer signs and verifies HS256 session tokens.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewIssuer(secret string, ttl time.Duration) *Issuer {
	return &Issuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (i *Issuer) TTL() time.Duration { return i.ttl }

// Issue returns the signed token and its expiry.
func (i *Issuer) Issue(userID int64, role string, tokenVersion int) (string, time.Time, error) {
	now := i.now()
	exp := now.Add(i.ttl)

	claims := gojwt.MapClaims{
		"sub":  strconv.FormatInt(userID, 10),
		"role": role,
		"tv":   tokenVersion,
		"iat":  now.Unix(),
		"exp":  exp.Unix(),
	}

	signed, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, exp, nil
}

// Parse verifies signature and expiry and extracts the claims.
func (i *Issuer) Parse(raw string) (Claims, error) {
	parser := gojwt.Parser{ValidMethods: []string{gojwt.SigningMethodHS256.Alg()}}
	token, err := parser.Parse(raw, func(t *gojwt.Token) (interface{}, error) {
		return i.secret, nil
	})
	if err != nil || token == nil || !token.Valid {
		return Claims{}, ErrInvalidToken
	}

	mc, ok := token.Claims.(gojwt.MapClaims)
	if !ok {
		return Claims{}, ErrInvalidToken
	}

	userID, err := parseUserID(mc["sub"])
	if err != nil || userID <= 0 {
		return Claims{}, ErrInvalidToken
	}
	role, ok := mc["role"].(string)
	if !ok || role == "" {
		return Claims{}, ErrInvalidToken
	}
	tvf, ok := mc["tv"].(float64)
	if !ok || tvf < 0 {
		return Claims{}, ErrInvalidToken
	}
	expf, ok := mc["exp"].(float64)
	if !ok {
		return Claims{}, ErrInvalidToken
	}

	return Claims{
		UserID:       userID,
		Role:         role,
		TokenVersion: int(tvf),
		ExpiresAt:    time.Unix(int64(expf), 0),
	}, nil
}

func parseUserID(v interface{}) (int64, error) {
	switch t := v.(type) {
	case float64:
		return int64(t), nil
	case string:
		return strconv.ParseInt(t, 10, 64)
	default:
		return 0, errors.New("invalid sub")
	}
}
