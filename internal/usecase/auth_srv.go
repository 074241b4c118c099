package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"renovation-tracker/internal/access"
	"renovation-tracker/internal/data/entity"
	"renovation-tracker/internal/data/repository"
	"renovation-tracker/internal/dto/request"
	"renovation-tracker/internal/dto/response"
	"renovation-tracker/pkg/metrics"
	"renovation-tracker/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	// Verify checks a username/password pair without side effects.
	Verify(ctx context.Context, username, password string) (*entity.User, error)
	Login(ctx context.Context, req *request.LoginRequest, meta request.ClientMeta) (*response.AuthResponse, error)
	Logout(ctx context.Context, token string) error
	// ResolveSession maps a cookie token to the caller, or nil for an unknown/expired token.
	ResolveSession(ctx context.Context, token string) (*access.Identity, error)
	// BootstrapAdmin seeds the configured admin account if it does not exist yet.
	BootstrapAdmin(ctx context.Context) error
	PurgeExpiredSessions(ctx context.Context) error
}

type authService struct {
	repo   *repository.Repository // user and session repos
	config *utils.Config
	log    *zap.Logger
	now    func() time.Time
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
		now:    time.Now,
	}
}

func (s *authService) Verify(ctx context.Context, username, password string) (*entity.User, error) {
	user, err := s.repo.User.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	// unknown user and wrong password are reported the same way
	if user == nil {
		s.log.Warn("User not found for login", zap.String("username", username))
		return nil, ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest, meta request.ClientMeta) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		return nil, ErrInvalidCredentials
	}

	user, err := s.Verify(ctx, req.Username, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		return nil, err
	}

	session, err := s.createSession(ctx, user.ID, meta)
	if err != nil {
		s.log.Error("Failed to create session", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("create session: %w", err)
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username))

	return response.AuthToResponse(user, session), nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	tokenUUID, err := uuid.Parse(token)
	if err != nil {
		s.log.Warn("Invalid token format on logout", zap.Error(err))
		return nil
	}

	if err := s.repo.Session.Revoke(ctx, tokenUUID); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("revoke session: %w", err)
	}

	s.log.Info("User logged out")
	return nil
}

func (s *authService) ResolveSession(ctx context.Context, token string) (*access.Identity, error) {
	tokenUUID, err := uuid.Parse(token)
	if err != nil {
		return nil, nil
	}

	session, err := s.repo.Session.FindValidSession(ctx, tokenUUID)
	if err != nil {
		return nil, fmt.Errorf("find session: %w", err)
	}
	if session == nil || !session.Active(s.now()) {
		return nil, nil
	}

	user, err := s.repo.User.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, fmt.Errorf("find session user: %w", err)
	}
	if user == nil {
		return nil, nil
	}

	return &access.Identity{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	}, nil
}

func (s *authService) BootstrapAdmin(ctx context.Context) error {
	username := s.config.Admin.Username

	existing, err := s.repo.User.FindByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("check admin: %w", err)
	}
	if existing != nil {
		s.log.Debug("Admin account already present", zap.String("username", username))
		return nil
	}

	hashedPassword, err := utils.HashPassword(s.config.Admin.Password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	now := s.now()
	admin := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:     username,
		PasswordHash: hashedPassword,
		Role:         entity.RoleAdmin,
	}

	if err := s.repo.User.Create(ctx, admin); err != nil {
		return fmt.Errorf("create admin: %w", err)
	}

	s.log.Info("Admin account created", zap.String("username", username))
	return nil
}

func (s *authService) PurgeExpiredSessions(ctx context.Context) error {
	n, err := s.repo.Session.CleanExpiredSessions(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		s.log.Info("Expired sessions removed", zap.Int64("count", n))
	}
	return nil
}

func (s *authService) createSession(ctx context.Context, userID uuid.UUID, meta request.ClientMeta) (*entity.Session, error) {
	now := s.now()
	expiry := time.Duration(s.config.Session.ExpiryHours) * time.Hour

	session := &entity.Session{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		UserID:    userID,
		Token:     uuid.New(),
		ExpiresAt: now.Add(expiry),
	}
	if meta.UserAgent != "" {
		session.UserAgent = &meta.UserAgent
	}
	if meta.IPAddress != "" {
		session.IPAddress = &meta.IPAddress
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}
