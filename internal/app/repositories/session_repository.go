package repositories

import (
	"encoding/json"
	"fmt"

	"github.com/uniconnect/uniconnect/internal/app/models"
	"github.com/uniconnect/uniconnect/internal/storage"
)

// SessionRepository persists the single active-session record. The stored
// account never carries a credential.
type SessionRepository struct {
	store storage.Store
}

// NewSessionRepository creates a new SessionRepository.
func NewSessionRepository(store storage.Store) *SessionRepository {
	return &SessionRepository{store: store}
}

// Get returns the persisted session account, if one is set. A value that
// fails to decode counts as no session.
func (r *SessionRepository) Get() (models.Account, bool) {
	raw, ok := r.store.Get(storage.KeySession)
	if !ok || raw == "" {
		return models.Account{}, false
	}
	var account models.Account
	if err := json.Unmarshal([]byte(raw), &account); err != nil {
		return models.Account{}, false
	}
	return account, true
}

// Set persists account as the active session.
func (r *SessionRepository) Set(account models.Account) error {
	data, err := json.Marshal(account)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := r.store.Set(storage.KeySession, string(data)); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	return nil
}

// Clear removes the active session record.
func (r *SessionRepository) Clear() error {
	return r.store.Delete(storage.KeySession)
}
