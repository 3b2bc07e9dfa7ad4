package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/cleanvillage/sanitation-system/internal/api/metrics"
	"github.com/cleanvillage/sanitation-system/internal/core/domain"
	"github.com/cleanvillage/sanitation-system/internal/core/ports"
)

const registerSuccessMessage = "Account created successfully! You can now log in."

// IdentityService implements registration, login, and session bookkeeping
// over a user repository and a session repository.
type IdentityService struct {
	users    ports.UserRepository
	sessions ports.SessionRepository
	seeds    []*domain.User
	ids      *idGenerator
	log      zerolog.Logger
}

func NewIdentityService(users ports.UserRepository, sessions ports.SessionRepository, log zerolog.Logger) *IdentityService {
	return &IdentityService{
		users:    users,
		sessions: sessions,
		seeds:    seedUsers(),
		ids:      newIDGenerator(),
		log:      log,
	}
}

// allUsers returns the full population: seed users followed by everything in
// the repository, in insertion order.
func (s *IdentityService) allUsers(ctx context.Context) ([]*domain.User, error) {
	stored, err := s.users.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	all := make([]*domain.User, 0, len(s.seeds)+len(stored))
	all = append(all, s.seeds...)
	all = append(all, stored...)
	return all, nil
}

// Register creates a new account. Username uniqueness is checked before
// email uniqueness, both case-sensitive across seeds plus registered users.
func (s *IdentityService) Register(ctx context.Context, input ports.RegisterInput) (*ports.RegisterResult, error) {
	all, err := s.allUsers(ctx)
	if err != nil {
		return nil, err
	}

	for _, u := range all {
		if u.Username == input.Username {
			return nil, domain.ErrDuplicateUsername
		}
	}
	for _, u := range all {
		if u.Email == input.Email {
			return nil, domain.ErrDuplicateEmail
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		ID:             s.ids.UserID(),
		Username:       input.Username,
		PasswordHash:   string(hash),
		Role:           input.Role,
		Email:          input.Email,
		FullName:       input.FullName,
		PhoneNumber:    input.PhoneNumber,
		District:       input.District,
		Village:        input.Village,
		DateRegistered: s.ids.now().UTC(),
	}

	if err := s.users.Append(ctx, user); err != nil {
		s.log.Error().Err(err).Str("username", input.Username).Msg("failed to store user")
		return nil, err
	}

	metrics.RegistrationsTotal.WithLabelValues(user.Role).Inc()
	s.log.Info().Str("user_id", user.ID).Str("username", user.Username).Str("role", user.Role).Msg("user registered")

	return &ports.RegisterResult{User: user.Public(), Message: registerSuccessMessage}, nil
}

// Authenticate returns the first user whose username and role both match
// exactly.
//
// NOTE: the password is accepted but never compared against the stored hash;
// any password logs in once username and role match. This mirrors the portal
// flow this service replaces and is deliberately left unchanged.
// TODO: enforce bcrypt verification once seed accounts carry credentials.
func (s *IdentityService) Authenticate(ctx context.Context, username, password, role string) (*domain.User, error) {
	all, err := s.allUsers(ctx)
	if err != nil {
		return nil, err
	}

	for _, u := range all {
		if u.Username == username && u.Role == role {
			metrics.LoginsTotal.WithLabelValues("ok").Inc()
			s.log.Info().Str("user_id", u.ID).Str("username", username).Str("role", role).Msg("login accepted")
			return u.Public(), nil
		}
	}

	metrics.LoginsTotal.WithLabelValues("rejected").Inc()
	s.log.Warn().Str("username", username).Str("role", role).Msg("login rejected")
	return nil, domain.ErrInvalidCredentials
}

// CurrentSession returns the persisted current user, or domain.ErrNoSession.
func (s *IdentityService) CurrentSession(ctx context.Context) (*domain.User, error) {
	return s.sessions.Current(ctx)
}

// StartSession records user as the current session.
func (s *IdentityService) StartSession(ctx context.Context, user *domain.User) error {
	return s.sessions.Save(ctx, user.Public())
}

// EndSession clears the current session. Clearing an empty session is not an
// error.
func (s *IdentityService) EndSession(ctx context.Context) error {
	return s.sessions.Clear(ctx)
}
