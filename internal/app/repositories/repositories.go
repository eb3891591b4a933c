package repositories

import (
	"github.com/uniconnect/uniconnect/internal/storage"
)

// Repositories holds all the repository instances.
type Repositories struct {
	Accounts     *AccountRepository
	Session      *SessionRepository
	Posts        *PostRepository
	Applications *ApplicationRepository
	BorrowItems  *BorrowRepository
	SellItems    *SellRepository
	LostFound    *LostFoundRepository
	HelpRequests *HelpRepository
	Emergencies  *EmergencyRepository
}

// NewRepositories initializes all repositories over the given store.
func NewRepositories(store storage.Store) *Repositories {
	return &Repositories{
		Accounts:     NewAccountRepository(store),
		Session:      NewSessionRepository(store),
		Posts:        NewPostRepository(store),
		Applications: NewApplicationRepository(store),
		BorrowItems:  NewBorrowRepository(store),
		SellItems:    NewSellRepository(store),
		LostFound:    NewLostFoundRepository(store),
		HelpRequests: NewHelpRepository(store),
		Emergencies:  NewEmergencyRepository(store),
	}
}
