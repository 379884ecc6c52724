package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"shopapi/internal/hash"
	"shopapi/internal/logging"
	"shopapi/internal/models"
	"shopapi/internal/tokens"
	"shopapi/internal/transport"
)

type UserRepo interface {
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, u *models.User) error
}

type AuthService struct {
	Repo      UserRepo
	JWTSecret []byte
	v         *validator.Validate
}

func NewAuthService(repo UserRepo, secret []byte) *AuthService {
	return &AuthService{Repo: repo, JWTSecret: secret, v: validator.New()}
}

func (s *AuthService) Register(ctx context.Context, req transport.RegisterRequest) (*transport.AuthResponse, error) {
	l := logging.FromContext(ctx).With("svc", "auth.register")

	if err := s.v.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	pwHash, err := hash.HashPassword(req.Password)
	if err != nil {
		l.Error("register_error", "reason", "cannot hash the password", "error", err)
		return nil, err
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: pwHash,
		Role:         models.RoleUser,
	}

	if err := s.Repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, ErrEmailTaken) {
			l.Warn("register_error", "reason", "email already registered", "email", req.Email)
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	token, err := tokens.Issue(s.JWTSecret, user)
	if err != nil {
		return nil, err
	}

	return &transport.AuthResponse{Token: token, User: user}, nil
}

// Login collapses unknown email and wrong password into the same error so
// the response does not reveal which one failed.
func (s *AuthService) Login(ctx context.Context, req transport.LoginRequest) (*transport.AuthResponse, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login")

	if err := s.v.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	user, err := s.Repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			l.Warn("login_failed", "reason", "unknown email")
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !hash.CheckPassword(user.PasswordHash, req.Password) {
		l.Warn("login_failed", "reason", "password mismatch")
		return nil, ErrInvalidCredentials
	}

	token, err := tokens.Issue(s.JWTSecret, user)
	if err != nil {
		return nil, err
	}

	return &transport.AuthResponse{Token: token, User: user}, nil
}
