package repositories

import (
	"github.com/uniconnect/uniconnect/internal/app/models"
	"github.com/uniconnect/uniconnect/internal/storage"
)

// PostRepository handles the posts collection.
type PostRepository struct {
	collection[models.Post]
}

// NewPostRepository creates a new PostRepository.
func NewPostRepository(store storage.Store) *PostRepository {
	return &PostRepository{collection[models.Post]{store: store, key: storage.KeyPosts}}
}

// FindByID returns the post matching id, if any.
func (r *PostRepository) FindByID(id string) (models.Post, bool) {
	for _, post := range r.All() {
		if post.ID == id {
			return post, true
		}
	}
	return models.Post{}, false
}

// ApplicationRepository handles the applications collection.
type ApplicationRepository struct {
	collection[models.Application]
}

// NewApplicationRepository creates a new ApplicationRepository.
func NewApplicationRepository(store storage.Store) *ApplicationRepository {
	return &ApplicationRepository{collection[models.Application]{store: store, key: storage.KeyApplications}}
}

// BorrowRepository handles the borrow-items collection.
type BorrowRepository struct {
	collection[models.BorrowItem]
}

// NewBorrowRepository creates a new BorrowRepository.
func NewBorrowRepository(store storage.Store) *BorrowRepository {
	return &BorrowRepository{collection[models.BorrowItem]{store: store, key: storage.KeyBorrowItems}}
}

// SellRepository handles the sell-items collection.
type SellRepository struct {
	collection[models.SellItem]
}

// NewSellRepository creates a new SellRepository.
func NewSellRepository(store storage.Store) *SellRepository {
	return &SellRepository{collection[models.SellItem]{store: store, key: storage.KeySellItems}}
}

// LostFoundRepository handles the lost-and-found collection.
type LostFoundRepository struct {
	collection[models.LostFoundItem]
}

// NewLostFoundRepository creates a new LostFoundRepository.
func NewLostFoundRepository(store storage.Store) *LostFoundRepository {
	return &LostFoundRepository{collection[models.LostFoundItem]{store: store, key: storage.KeyLostFound}}
}

// HelpRepository handles the help-requests collection.
type HelpRepository struct {
	collection[models.HelpRequest]
}

// NewHelpRepository creates a new HelpRepository.
func NewHelpRepository(store storage.Store) *HelpRepository {
	return &HelpRepository{collection[models.HelpRequest]{store: store, key: storage.KeyHelpRequests}}
}

// EmergencyRepository handles the emergencies collection.
type EmergencyRepository struct {
	collection[models.Emergency]
}

// NewEmergencyRepository creates a new EmergencyRepository.
func NewEmergencyRepository(store storage.Store) *EmergencyRepository {
	return &EmergencyRepository{collection[models.Emergency]{store: store, key: storage.KeyEmergencies}}
}
