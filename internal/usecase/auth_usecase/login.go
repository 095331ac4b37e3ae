package auth

import (
	"context"
	"errors"
	"time"

	"sebetamart/internal/domain/model"
	"sebetamart/internal/repository"
)

type LoginInput struct {
	Email    string
	Password string
}

type LoginOutput struct {
	User model.User `json:"user"`
}

// LoginSideEffect is what the handler puts into the session cookie.
type LoginSideEffect struct {
	Token     string
	ExpiresAt time.Time
}

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserInactive       = errors.New("user is inactive")
)

// SessionTokenIssuer signs session tokens.
type SessionTokenIssuer interface {
	Issue(userID int64, role string, tokenVersion int) (token string, expiresAt time.Time, err error)
}

type PasswordVerifier interface {
	Verify(plain string, hashed string) bool
}

type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }

type LoginUsecase struct {
	userRepo repository.UserRepository
	verifier PasswordVerifier
	issuer   SessionTokenIssuer
	clock    Clock
}

func NewLoginUsecase(
	userRepo repository.UserRepository,
	verifier PasswordVerifier,
	issuer SessionTokenIssuer,
	clock Clock,
) *LoginUsecase {
	return &LoginUsecase{
		userRepo: userRepo,
		verifier: verifier,
		issuer:   issuer,
		clock:    clock,
	}
}

func (u *LoginUsecase) Execute(ctx context.Context, in LoginInput) (LoginOutput, LoginSideEffect, error) {
	var out LoginOutput
	var side LoginSideEffect

	user, err := u.userRepo.FindByEmail(ctx, normalizeEmail(in.Email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return out, side, ErrInvalidCredentials
		}
		return out, side, err
	}

	// password first, so an inactive account does not leak to a wrong password
	if ok := u.verifier.Verify(in.Password, user.PasswordHash); !ok {
		return out, side, ErrInvalidCredentials
	}
	if !user.IsActive {
		return out, side, ErrUserInactive
	}

	token, exp, err := u.issuer.Issue(user.ID, string(user.Role), user.TokenVersion)
	if err != nil {
		return out, side, err
	}

	now := u.clock.Now()
	user.LastLoginAt = &now
	if err := u.userRepo.Update(ctx, user); err != nil {
		return out, side, err
	}

	out.User = *user
	side.Token = token
	side.ExpiresAt = exp
	return out, side, nil
}
