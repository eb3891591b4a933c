package services

import (
	"sort"

	"github.com/uniconnect/uniconnect/internal/app/models"
	"github.com/uniconnect/uniconnect/internal/app/repositories"
)

// NoticeService composes the notice board: a read-only merge of posts and
// emergencies ordered newest first. Nothing here is persisted.
type NoticeService struct {
	posts       *repositories.PostRepository
	emergencies *repositories.EmergencyRepository
}

// NewNoticeService creates a new NoticeService.
func NewNoticeService(repos *repositories.Repositories) *NoticeService {
	return &NoticeService{posts: repos.Posts, emergencies: repos.Emergencies}
}

// Notices returns the merged board, newest first.
func (s *NoticeService) Notices() []models.Notice {
	posts := s.posts.All()
	emergencies := s.emergencies.All()

	notices := make([]models.Notice, 0, len(posts)+len(emergencies))
	for i := range posts {
		notices = append(notices, models.Notice{
			Kind:      models.NoticePost,
			CreatedAt: posts[i].CreatedAt,
			Post:      &posts[i],
		})
	}
	for i := range emergencies {
		notices = append(notices, models.Notice{
			Kind:      models.NoticeEmergency,
			CreatedAt: emergencies[i].CreatedAt,
			Emergency: &emergencies[i],
		})
	}

	sort.SliceStable(notices, func(i, j int) bool {
		return notices[i].CreatedAt.After(notices[j].CreatedAt)
	})
	return notices
}
