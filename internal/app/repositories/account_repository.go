package repositories

import (
	"strings"

	"github.com/uniconnect/uniconnect/internal/app/models"
	"github.com/uniconnect/uniconnect/internal/storage"
)

// AccountRepository handles the account registry: the ordered list of all
// registered accounts, credentials included.
type AccountRepository struct {
	collection[models.Account]
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(store storage.Store) *AccountRepository {
	return &AccountRepository{collection[models.Account]{store: store, key: storage.KeyAccounts}}
}

// FindByEmail returns the registered account matching email, if any.
// Emails are compared case-insensitively.
func (r *AccountRepository) FindByEmail(email string) (models.Account, bool) {
	for _, account := range r.All() {
		if strings.EqualFold(account.Email, email) {
			return account, true
		}
	}
	return models.Account{}, false
}

// Update replaces the registry entry whose UID matches account. Unknown
// UIDs are ignored.
func (r *AccountRepository) Update(account models.Account) error {
	accounts := r.All()
	for i := range accounts {
		if accounts[i].UID == account.UID {
			accounts[i] = account
			return r.SaveAll(accounts)
		}
	}
	return nil
}

// Append adds a new account to the end of the registry.
func (r *AccountRepository) Append(account models.Account) error {
	return r.SaveAll(append(r.All(), account))
}
