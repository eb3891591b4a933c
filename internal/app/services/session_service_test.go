package services

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uniconnect/uniconnect/internal/app/models"
	"github.com/uniconnect/uniconnect/internal/app/repositories"
	"github.com/uniconnect/uniconnect/internal/pkg/apperrors"
	"github.com/uniconnect/uniconnect/internal/storage"
)

func newSessionFixture(t *testing.T) (*SessionService, *repositories.Repositories) {
	t.Helper()
	repos := repositories.NewRepositories(storage.NewMemoryStore())
	return NewSessionService(repos, SessionConfig{}, zerolog.Nop()), repos
}

func TestSignupRejectsNonCollegeEmail(t *testing.T) {
	service, repos := newSessionFixture(t)

	for _, email := range []string{"alice@gmail.com", "bob@company.io", "eve@edu.attacker.net"} {
		_, err := service.Signup(email, "pw123456", models.RoleStudent)
		assert.ErrorIs(t, err, apperrors.ErrInvalidEmailDomain, email)
	}

	assert.Empty(t, repos.Accounts.All())
	_, ok := service.Current()
	assert.False(t, ok)
}

func TestSignupAcceptsAllowedSuffixesCaseInsensitively(t *testing.T) {
	service, _ := newSessionFixture(t)

	account, err := service.Signup("Alice@College.EDU.IN", "pw123456", models.RoleStudent)
	require.NoError(t, err)
	assert.False(t, account.ProfileComplete)
	assert.Equal(t, models.RoleStudent, account.Role)
	require.NotNil(t, account.Year)
	assert.Empty(t, *account.Year)
}

func TestSignupDuplicateEmail(t *testing.T) {
	service, repos := newSessionFixture(t)

	first, err := service.Signup("alice@college.edu.in", "pw123456", models.RoleStudent)
	require.NoError(t, err)

	_, err = service.Signup("alice@college.edu.in", "different9", models.RoleFaculty)
	assert.ErrorIs(t, err, apperrors.ErrAccountAlreadyExists)

	accounts := repos.Accounts.All()
	require.Len(t, accounts, 1)
	assert.Equal(t, first.UID, accounts[0].UID)
	assert.Equal(t, "pw123456", accounts[0].Password)
	assert.Equal(t, models.RoleStudent, accounts[0].Role)
}

func TestSignupEnforcesMinimumPasswordLength(t *testing.T) {
	service, _ := newSessionFixture(t)

	_, err := service.Signup("alice@college.edu.in", "pw1", models.RoleStudent)
	assert.ErrorIs(t, err, apperrors.ErrInvalidPassword)
}

func TestSignupStripsCredentialFromSession(t *testing.T) {
	service, repos := newSessionFixture(t)

	_, err := service.Signup("alice@college.edu.in", "pw123456", models.RoleStudent)
	require.NoError(t, err)

	session, ok := repos.Session.Get()
	require.True(t, ok)
	assert.Empty(t, session.Password)

	registry := repos.Accounts.All()
	require.Len(t, registry, 1)
	assert.Equal(t, "pw123456", registry[0].Password)
}

func TestLoginUnknownAccount(t *testing.T) {
	service, _ := newSessionFixture(t)

	_, err := service.Login("ghost@college.edu.in", "pw123456")
	assert.ErrorIs(t, err, apperrors.ErrAccountNotFound)
}

func TestLoginWrongPassword(t *testing.T) {
	service, _ := newSessionFixture(t)

	_, err := service.Signup("alice@college.edu.in", "pw123456", models.RoleStudent)
	require.NoError(t, err)
	require.NoError(t, service.Logout())

	_, err = service.Login("alice@college.edu.in", "wrong-pass")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	_, ok := service.Current()
	assert.False(t, ok)
}

func TestLoginChecksDomainBeforeRegistry(t *testing.T) {
	service, _ := newSessionFixture(t)

	_, err := service.Login("alice@gmail.com", "pw123456")
	assert.ErrorIs(t, err, apperrors.ErrInvalidEmailDomain)
}

func TestLogoutKeepsRegistry(t *testing.T) {
	service, repos := newSessionFixture(t)

	_, err := service.Signup("alice@college.edu.in", "pw123456", models.RoleStudent)
	require.NoError(t, err)
	require.NoError(t, service.Logout())

	_, ok := service.Current()
	assert.False(t, ok)
	_, ok = repos.Session.Get()
	assert.False(t, ok)
	assert.Len(t, repos.Accounts.All(), 1)
}

func TestUpdateProfileMarksCompleteOnPartialUpdate(t *testing.T) {
	service, repos := newSessionFixture(t)

	_, err := service.Signup("alice@college.edu.in", "pw123456", models.RoleStudent)
	require.NoError(t, err)

	name := "Alice"
	account, err := service.UpdateProfile(ProfileUpdate{Name: &name})
	require.NoError(t, err)
	assert.True(t, account.ProfileComplete)
	assert.Equal(t, "Alice", account.Name)

	// Registry and session stay in lockstep for all shared fields.
	registryEntry, ok := repos.Accounts.FindByEmail("alice@college.edu.in")
	require.True(t, ok)
	assert.True(t, registryEntry.ProfileComplete)
	assert.Equal(t, "Alice", registryEntry.Name)
	assert.Equal(t, "pw123456", registryEntry.Password)

	session, ok := repos.Session.Get()
	require.True(t, ok)
	assert.Equal(t, registryEntry.Name, session.Name)
	assert.Empty(t, session.Password)
}

func TestUpdateProfileRequiresSession(t *testing.T) {
	service, _ := newSessionFixture(t)

	name := "Nobody"
	_, err := service.UpdateProfile(ProfileUpdate{Name: &name})
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
}

func TestSessionRehydratesAcrossRestart(t *testing.T) {
	store := storage.NewMemoryStore()
	repos := repositories.NewRepositories(store)
	service := NewSessionService(repos, SessionConfig{}, zerolog.Nop())

	_, err := service.Signup("alice@college.edu.in", "pw123456", models.RoleStudent)
	require.NoError(t, err)

	// A fresh service over the same store restores the session without a
	// credential check.
	restored := NewSessionService(repositories.NewRepositories(store), SessionConfig{}, zerolog.Nop())
	account, ok := restored.Current()
	require.True(t, ok)
	assert.Equal(t, "alice@college.edu.in", account.Email)
	assert.Empty(t, account.Password)
}

func TestSessionSurvivesMalformedPersistedRecord(t *testing.T) {
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(storage.KeySession, "{not json"))

	service := NewSessionService(repositories.NewRepositories(store), SessionConfig{}, zerolog.Nop())
	_, ok := service.Current()
	assert.False(t, ok)
}
