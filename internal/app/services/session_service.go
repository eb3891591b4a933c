package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/uniconnect/uniconnect/internal/app/models"
	"github.com/uniconnect/uniconnect/internal/app/repositories"
	"github.com/uniconnect/uniconnect/internal/pkg/apperrors"
	"github.com/uniconnect/uniconnect/internal/pkg/validation"
)

// SessionConfig carries the session manager's policy knobs.
type SessionConfig struct {
	// AllowedDomains are the email suffixes accepted at signup and login.
	AllowedDomains []string
	// MinPasswordLength is enforced at signup only.
	MinPasswordLength int
}

// SessionService owns the current-user identity, credential checks and
// profile completion. At most one session is active at a time; it is
// rehydrated from the store at construction without re-checking the
// credential.
type SessionService struct {
	accounts *repositories.AccountRepository
	session  *repositories.SessionRepository
	config   SessionConfig
	current  *models.Account
	now      func() time.Time
	newID    func() string
	logger   zerolog.Logger
}

// NewSessionService creates a SessionService and restores any persisted
// session.
func NewSessionService(repos *repositories.Repositories, config SessionConfig, logger zerolog.Logger) *SessionService {
	if len(config.AllowedDomains) == 0 {
		config.AllowedDomains = validation.DefaultCollegeDomains
	}
	if config.MinPasswordLength <= 0 {
		config.MinPasswordLength = 6
	}
	s := &SessionService{
		accounts: repos.Accounts,
		session:  repos.Session,
		config:   config,
		now:      time.Now,
		newID:    uuid.NewString,
		logger:   logger,
	}
	if account, ok := s.session.Get(); ok {
		s.current = &account
	}
	return s
}

// Current returns the active session account, if any.
func (s *SessionService) Current() (models.Account, bool) {
	if s.current == nil {
		return models.Account{}, false
	}
	return *s.current, true
}

// Signup registers a new account and activates it as the session. The new
// account starts with an empty profile and ProfileComplete false.
func (s *SessionService) Signup(email, password string, role models.Role) (models.Account, error) {
	if !validation.IsCollegeEmail(email, s.config.AllowedDomains) {
		return models.Account{}, apperrors.ErrInvalidEmailDomain
	}
	if !role.Valid() {
		return models.Account{}, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidationFailed, role)
	}
	if len(password) < s.config.MinPasswordLength {
		return models.Account{}, fmt.Errorf("%w: password must be at least %d characters",
			apperrors.ErrInvalidPassword, s.config.MinPasswordLength)
	}
	if _, exists := s.accounts.FindByEmail(email); exists {
		return models.Account{}, apperrors.ErrAccountAlreadyExists
	}

	account := models.Account{
		UID:       s.newID(),
		Email:     email,
		Password:  password,
		Role:      role,
		CreatedAt: s.now(),
	}
	if role == models.RoleStudent {
		year := ""
		account.Year = &year
	}

	if err := s.accounts.Append(account); err != nil {
		return models.Account{}, err
	}
	if err := s.activate(account); err != nil {
		return models.Account{}, err
	}
	s.logger.Info().Str("uid", account.UID).Str("role", string(role)).Msg("account created")
	return account.WithoutPassword(), nil
}

// Login activates the session for a registered account.
func (s *SessionService) Login(email, password string) (models.Account, error) {
	if !validation.IsCollegeEmail(email, s.config.AllowedDomains) {
		return models.Account{}, apperrors.ErrInvalidEmailDomain
	}
	account, ok := s.accounts.FindByEmail(email)
	if !ok {
		return models.Account{}, apperrors.ErrAccountNotFound
	}
	if account.Password != password {
		return models.Account{}, apperrors.ErrInvalidCredentials
	}
	if err := s.activate(account); err != nil {
		return models.Account{}, err
	}
	s.logger.Info().Str("uid", account.UID).Msg("session opened")
	return account.WithoutPassword(), nil
}

// Logout clears the active session. The account registry is untouched.
func (s *SessionService) Logout() error {
	s.current = nil
	return s.session.Clear()
}

// ProfileUpdate carries the optional onboarding fields. Nil fields are
// left as they are.
type ProfileUpdate struct {
	Name       *string
	College    *string
	Department *string
	Branch     *string
	Year       *string
}

// UpdateProfile merges the supplied fields into the session and its
// registry entry, and unconditionally marks the profile complete. This is
// the one-time "finish setup" operation, not a general editor; the flag
// never transitions back.
func (s *SessionService) UpdateProfile(update ProfileUpdate) (models.Account, error) {
	if s.current == nil {
		return models.Account{}, apperrors.ErrUnauthenticated
	}

	account := *s.current
	if update.Name != nil {
		account.Name = *update.Name
	}
	if update.College != nil {
		account.College = *update.College
	}
	if update.Department != nil {
		account.Department = *update.Department
	}
	if update.Branch != nil {
		account.Branch = *update.Branch
	}
	if update.Year != nil {
		account.Year = update.Year
	}
	account.ProfileComplete = true

	// The registry entry keeps its credential; the session copy never
	// carries one.
	registryEntry, ok := s.accounts.FindByEmail(account.Email)
	if ok {
		password := registryEntry.Password
		registryEntry = account
		registryEntry.Password = password
		if err := s.accounts.Update(registryEntry); err != nil {
			return models.Account{}, err
		}
	}
	if err := s.activate(account); err != nil {
		return models.Account{}, err
	}
	return account.WithoutPassword(), nil
}

// activate stores account (credential stripped) as the session record and
// the in-memory current user.
func (s *SessionService) activate(account models.Account) error {
	stripped := account.WithoutPassword()
	if err := s.session.Set(stripped); err != nil {
		return err
	}
	s.current = &stripped
	return nil
}
