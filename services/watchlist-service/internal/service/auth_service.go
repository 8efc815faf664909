package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Nox1KCL/Movies-WatchList/pkg/jwt"
	"github.com/Nox1KCL/Movies-WatchList/services/watchlist-service/internal/domain"
	"github.com/Nox1KCL/Movies-WatchList/services/watchlist-service/internal/util"
)

// authService implements domain.AuthService using a UserRepository.
type authService struct {
	repo         domain.UserRepository
	tx           domain.Transactor
	tokenManager jwt.TokenManager
	log          *slog.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(repo domain.UserRepository, tx domain.Transactor, tokenManager jwt.TokenManager, log *slog.Logger) domain.AuthService {
	return &authService{repo: repo, tx: tx, tokenManager: tokenManager, log: log.With("component", "auth_service")}
}

// Register creates a new user account.
func (s *authService) Register(ctx context.Context, email, username, password string) (*domain.User, error) {
	email = strings.TrimSpace(email)
	username = strings.TrimSpace(username)

	hashed, err := util.HashPassword(password)
	if err != nil {
		if errors.Is(err, util.ErrPasswordTooLong) {
			return nil, domain.NewValidationError("Password must be at most 72 bytes")
		}
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{Email: email, Username: username, HashedPassword: hashed, IsActive: true}
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.repo.FindByEmailOrUsername(ctx, email, username)
		if err != nil {
			return fmt.Errorf("failed to check existing user: %w", err)
		}
		if existing != nil {
			if existing.Email == email {
				return domain.ErrEmailTaken
			}
			return domain.ErrUsernameTaken
		}
		return s.repo.Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("user registered", "user_id", user.ID)
	return user, nil
}

// Login checks the credentials and issues an access token whose subject is the user's email.
func (s *authService) Login(ctx context.Context, email, password string) (*domain.AccessToken, error) {
	user, err := s.repo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil || !util.CheckPassword(user.HashedPassword, password) {
		return nil, domain.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, domain.ErrUserInactive
	}
	token, expiresAt, err := s.tokenManager.GenerateToken(user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &domain.AccessToken{Token: token, ExpiresAt: expiresAt}, nil
}

// ResolveIdentity maps a bearer token to an active user.
func (s *authService) ResolveIdentity(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.tokenManager.ValidateAccessToken(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return nil, domain.ErrMissingSubject
	}
	user, err := s.repo.GetByEmail(ctx, claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if !user.IsActive {
		return nil, domain.ErrUserInactive
	}
	return user, nil
}

// GetUser loads the user by id.
func (s *authService) GetUser(ctx context.Context, userID uint) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

// DeleteAccount removes the user. Their movies go with them through the cascading foreign key.
func (s *authService) DeleteAccount(ctx context.Context, userID uint) error {
	return s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		deleted, err := s.repo.Delete(ctx, userID)
		if err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}
		if !deleted {
			return domain.ErrUserNotFound
		}
		s.log.Info("user deleted", "user_id", userID)
		return nil
	})
}
