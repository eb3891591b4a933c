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

// Sessions supplies the acting account for community mutations.
type Sessions interface {
	Current() (models.Account, bool)
}

// CommunityService owns the seven community collections and their create
// and status-transition operations. Author fields are stamped from the
// acting session; callers never supply them. Every mutation replaces the
// whole collection and persists it under its storage key.
//
// The store stays deliberately permissive where the original was: it does
// not check that an application's post exists or accepts applications,
// does not deduplicate applications, and does not guard one-way status
// transitions against being overwritten again. Those checks belong to the
// calling shell.
type CommunityService struct {
	repos    *repositories.Repositories
	sessions Sessions
	now      func() time.Time
	newID    func() string
	logger   zerolog.Logger
}

// NewCommunityService creates a new CommunityService.
func NewCommunityService(repos *repositories.Repositories, sessions Sessions, logger zerolog.Logger) *CommunityService {
	return &CommunityService{
		repos:    repos,
		sessions: sessions,
		now:      time.Now,
		newID:    uuid.NewString,
		logger:   logger,
	}
}

// actor returns the acting account or ErrUnauthenticated. Unlike the
// original, which silently dropped mutations made while logged out, the
// failure is explicit so callers can tell it apart from success.
func (s *CommunityService) actor() (models.Account, error) {
	account, ok := s.sessions.Current()
	if !ok {
		return models.Account{}, apperrors.ErrUnauthenticated
	}
	return account, nil
}

// Posts returns the post collection, newest first.
func (s *CommunityService) Posts() []models.Post { return s.repos.Posts.All() }

// Applications returns the applications collection.
func (s *CommunityService) Applications() []models.Application { return s.repos.Applications.All() }

// BorrowItems returns the borrow collection.
func (s *CommunityService) BorrowItems() []models.BorrowItem { return s.repos.BorrowItems.All() }

// SellItems returns the marketplace collection.
func (s *CommunityService) SellItems() []models.SellItem { return s.repos.SellItems.All() }

// LostFoundItems returns the lost-and-found collection.
func (s *CommunityService) LostFoundItems() []models.LostFoundItem { return s.repos.LostFound.All() }

// HelpRequests returns the help-request collection.
func (s *CommunityService) HelpRequests() []models.HelpRequest { return s.repos.HelpRequests.All() }

// Emergencies returns the emergency log, newest first.
func (s *CommunityService) Emergencies() []models.Emergency { return s.repos.Emergencies.All() }

// PostInput is the caller-supplied part of a new post.
type PostInput struct {
	Title        string          `validate:"required"`
	Description  string          `validate:"required"`
	Type         models.PostType `validate:"required,oneof=hackathon freshers flashmob placement internship topper others"`
	ApplyEnabled bool
	Image        string
}

// AddPost prepends a new post stamped with the acting account's identity,
// name, role and college. Newest-first ordering is the feed contract.
func (s *CommunityService) AddPost(input PostInput) (models.Post, error) {
	actor, err := s.actor()
	if err != nil {
		return models.Post{}, err
	}
	if err := validation.Struct(input); err != nil {
		return models.Post{}, err
	}

	post := models.Post{
		ID:           s.newID(),
		Title:        input.Title,
		Description:  input.Description,
		PostedBy:     actor.UID,
		PosterName:   actor.Name,
		Role:         actor.Role,
		Type:         input.Type,
		ApplyEnabled: input.ApplyEnabled,
		CreatedAt:    s.now(),
		College:      actor.College,
		Image:        input.Image,
	}
	posts := append([]models.Post{post}, s.repos.Posts.All()...)
	if err := s.repos.Posts.SaveAll(posts); err != nil {
		return models.Post{}, err
	}
	s.logger.Debug().Str("id", post.ID).Str("type", string(post.Type)).Msg("post added")
	return post, nil
}

// ApplicationInput is the applicant-supplied part of an application.
type ApplicationInput struct {
	Year   string `validate:"required"`
	Course string `validate:"required"`
	Email  string `validate:"required,email"`
}

// ApplyToPost appends a pending application for the acting account. The
// store does not verify that the post exists or accepts applications.
func (s *CommunityService) ApplyToPost(postID string, input ApplicationInput) (models.Application, error) {
	actor, err := s.actor()
	if err != nil {
		return models.Application{}, err
	}
	if err := validation.Struct(input); err != nil {
		return models.Application{}, err
	}

	application := models.Application{
		ID:          s.newID(),
		PostID:      postID,
		StudentID:   actor.UID,
		StudentName: actor.Name,
		Status:      models.ApplicationPending,
		AppliedAt:   s.now(),
		Year:        input.Year,
		Course:      input.Course,
		Email:       input.Email,
	}
	if err := s.repos.Applications.SaveAll(append(s.repos.Applications.All(), application)); err != nil {
		return models.Application{}, err
	}
	return application, nil
}

// HasApplied reports whether studentID already applied to postID. The
// store itself never deduplicates; this helper exists for callers that
// want to.
func (s *CommunityService) HasApplied(postID, studentID string) bool {
	for _, application := range s.repos.Applications.All() {
		if application.PostID == postID && application.StudentID == studentID {
			return true
		}
	}
	return false
}

// UpdateApplicationStatus overwrites the status of the application with
// the given id. Only approved and rejected are accepted. The overwrite is
// unconditional: an already-decided application can be re-decided, which
// matches the original behavior. An unknown id is a silent no-op.
func (s *CommunityService) UpdateApplicationStatus(id string, status models.ApplicationStatus) error {
	if status != models.ApplicationApproved && status != models.ApplicationRejected {
		return fmt.Errorf("%w: status must be approved or rejected", apperrors.ErrValidationFailed)
	}
	applications := s.repos.Applications.All()
	for i := range applications {
		if applications[i].ID == id {
			applications[i].Status = status
			return s.repos.Applications.SaveAll(applications)
		}
	}
	return nil
}

// BorrowItemInput is the caller-supplied part of a lendable item.
type BorrowItemInput struct {
	Item          string `validate:"required"`
	Description   string
	Price         float64 `validate:"gte=0"`
	AvailableFrom string
	AvailableTo   string
	IsFriendOnly  bool
}

// AddBorrowItem appends an available item owned by the acting account.
// A friend-only item has its price forced to zero whatever was supplied.
func (s *CommunityService) AddBorrowItem(input BorrowItemInput) (models.BorrowItem, error) {
	actor, err := s.actor()
	if err != nil {
		return models.BorrowItem{}, err
	}
	if err := validation.Struct(input); err != nil {
		return models.BorrowItem{}, err
	}

	price := input.Price
	if input.IsFriendOnly {
		price = 0
	}
	item := models.BorrowItem{
		ID:            s.newID(),
		Item:          input.Item,
		Description:   input.Description,
		OwnerID:       actor.UID,
		OwnerName:     actor.Name,
		Price:         price,
		AvailableFrom: input.AvailableFrom,
		AvailableTo:   input.AvailableTo,
		Status:        models.BorrowAvailable,
		IsFriendOnly:  input.IsFriendOnly,
	}
	if err := s.repos.BorrowItems.SaveAll(append(s.repos.BorrowItems.All(), item)); err != nil {
		return models.BorrowItem{}, err
	}
	return item, nil
}

// Borrow stamps the acting account as borrower of the item with the given
// id and marks it borrowed. Availability and ownership are not checked
// here; the shell is expected to gate those.
func (s *CommunityService) Borrow(id string) error {
	actor, err := s.actor()
	if err != nil {
		return err
	}
	items := s.repos.BorrowItems.All()
	for i := range items {
		if items[i].ID == id {
			borrowerID, borrowerName := actor.UID, actor.Name
			items[i].BorrowerID = &borrowerID
			items[i].BorrowerName = &borrowerName
			items[i].Status = models.BorrowBorrowed
			return s.repos.BorrowItems.SaveAll(items)
		}
	}
	return nil
}

// Return clears the borrower fields and restores the item to available,
// regardless of its current status.
func (s *CommunityService) Return(id string) error {
	items := s.repos.BorrowItems.All()
	for i := range items {
		if items[i].ID == id {
			items[i].BorrowerID = nil
			items[i].BorrowerName = nil
			items[i].Status = models.BorrowAvailable
			return s.repos.BorrowItems.SaveAll(items)
		}
	}
	return nil
}

// SellItemInput is the caller-supplied part of a marketplace listing.
type SellItemInput struct {
	Item        string  `validate:"required"`
	Price       float64 `validate:"gte=0"`
	Description string
	Condition   string
	Image       string
}

// AddSellItem appends an available listing by the acting account.
func (s *CommunityService) AddSellItem(input SellItemInput) (models.SellItem, error) {
	actor, err := s.actor()
	if err != nil {
		return models.SellItem{}, err
	}
	if err := validation.Struct(input); err != nil {
		return models.SellItem{}, err
	}

	item := models.SellItem{
		ID:          s.newID(),
		Item:        input.Item,
		SellerID:    actor.UID,
		SellerName:  actor.Name,
		Price:       input.Price,
		Status:      models.SellAvailable,
		Description: input.Description,
		Condition:   input.Condition,
		Image:       input.Image,
		CreatedAt:   s.now(),
	}
	if err := s.repos.SellItems.SaveAll(append(s.repos.SellItems.All(), item)); err != nil {
		return models.SellItem{}, err
	}
	return item, nil
}

// MarkAsSold sets the listing's status to sold unconditionally.
func (s *CommunityService) MarkAsSold(id string) error {
	items := s.repos.SellItems.All()
	for i := range items {
		if items[i].ID == id {
			items[i].Status = models.SellSold
			return s.repos.SellItems.SaveAll(items)
		}
	}
	return nil
}

// LostFoundInput is the caller-supplied part of a lost-or-found report.
// Status is caller-supplied: a report can start as either lost or found.
type LostFoundInput struct {
	Item         string                 `validate:"required"`
	Location     string                 `validate:"required"`
	Description  string
	Status       models.LostFoundStatus `validate:"required,oneof=lost found"`
	ContactEmail string                 `validate:"required,email"`
}

// AddLostFoundItem appends a report owned by the acting account.
func (s *CommunityService) AddLostFoundItem(input LostFoundInput) (models.LostFoundItem, error) {
	actor, err := s.actor()
	if err != nil {
		return models.LostFoundItem{}, err
	}
	if err := validation.Struct(input); err != nil {
		return models.LostFoundItem{}, err
	}

	item := models.LostFoundItem{
		ID:            s.newID(),
		Item:          input.Item,
		OwnerID:       actor.UID,
		OwnerName:     actor.Name,
		Location:      input.Location,
		Description:   input.Description,
		NotifiedUsers: []string{},
		Status:        input.Status,
		ReportedAt:    s.now(),
		ContactEmail:  input.ContactEmail,
	}
	if err := s.repos.LostFound.SaveAll(append(s.repos.LostFound.All(), item)); err != nil {
		return models.LostFoundItem{}, err
	}
	return item, nil
}

// MarkAsFound sets the report's status to found unconditionally.
func (s *CommunityService) MarkAsFound(id string) error {
	items := s.repos.LostFound.All()
	for i := range items {
		if items[i].ID == id {
			items[i].Status = models.LostFoundFound
			return s.repos.LostFound.SaveAll(items)
		}
	}
	return nil
}

// HelpRequestInput is the caller-supplied part of a help request.
type HelpRequestInput struct {
	Request  string `validate:"required"`
	Category string
}

// AddHelpRequest appends a pending request by the acting account.
func (s *CommunityService) AddHelpRequest(input HelpRequestInput) (models.HelpRequest, error) {
	actor, err := s.actor()
	if err != nil {
		return models.HelpRequest{}, err
	}
	if err := validation.Struct(input); err != nil {
		return models.HelpRequest{}, err
	}

	request := models.HelpRequest{
		ID:              s.newID(),
		Request:         input.Request,
		RequesterID:     actor.UID,
		RequesterName:   actor.Name,
		HelpersNotified: []string{},
		Status:          models.HelpPending,
		CreatedAt:       s.now(),
		Category:        input.Category,
	}
	if err := s.repos.HelpRequests.SaveAll(append(s.repos.HelpRequests.All(), request)); err != nil {
		return models.HelpRequest{}, err
	}
	return request, nil
}

// ResolveHelpRequest sets the request's status to resolved unconditionally.
func (s *CommunityService) ResolveHelpRequest(id string) error {
	requests := s.repos.HelpRequests.All()
	for i := range requests {
		if requests[i].ID == id {
			requests[i].Status = models.HelpResolved
			return s.repos.HelpRequests.SaveAll(requests)
		}
	}
	return nil
}

// EmergencyInput is the caller-supplied part of an emergency alert.
type EmergencyInput struct {
	Message  string               `validate:"required"`
	Location string               `validate:"required"`
	Type     models.EmergencyType `validate:"required,oneof=fire medical security other"`
}

// AddEmergency prepends a new alert to the append-only emergency log.
// There is no resolution transition.
func (s *CommunityService) AddEmergency(input EmergencyInput) (models.Emergency, error) {
	actor, err := s.actor()
	if err != nil {
		return models.Emergency{}, err
	}
	if err := validation.Struct(input); err != nil {
		return models.Emergency{}, err
	}

	emergency := models.Emergency{
		ID:            s.newID(),
		Message:       input.Message,
		ReportedBy:    actor.UID,
		ReporterName:  actor.Name,
		NotifiedUsers: []string{},
		CreatedAt:     s.now(),
		Location:      input.Location,
		Type:          input.Type,
	}
	emergencies := append([]models.Emergency{emergency}, s.repos.Emergencies.All()...)
	if err := s.repos.Emergencies.SaveAll(emergencies); err != nil {
		return models.Emergency{}, err
	}
	s.logger.Info().Str("id", emergency.ID).Str("type", string(emergency.Type)).Msg("emergency reported")
	return emergency, nil
}
