// Package seed fills an empty store with demo data so a fresh install has
// something to render.
package seed

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/uniconnect/uniconnect/internal/app/models"
	"github.com/uniconnect/uniconnect/internal/app/repositories"
)

// CreateDemoData inserts a demo faculty account, a demo student account
// and a starter post. It does nothing when the registry already has
// accounts, so running it twice is safe.
func CreateDemoData(repos *repositories.Repositories, lgr zerolog.Logger) error {
	if len(repos.Accounts.All()) > 0 {
		lgr.Debug().Msg("registry not empty, skipping demo data")
		return nil
	}

	now := time.Now()
	faculty := models.Account{
		UID:             uuid.NewString(),
		Email:           "mentor@demo.ac.in",
		Password:        "mentor123",
		Name:            "Prof. Demo Mentor",
		College:         "Demo Institute of Technology",
		Role:            models.RoleFaculty,
		Department:      "Computer Science",
		Branch:          "CSE",
		CreatedAt:       now,
		ProfileComplete: true,
	}
	year := "2nd Year"
	student := models.Account{
		UID:             uuid.NewString(),
		Email:           "asha@demo.edu.in",
		Password:        "asha1234",
		Name:            "Asha Demo",
		College:         "Demo Institute of Technology",
		Role:            models.RoleStudent,
		Department:      "Computer Science",
		Branch:          "CSE",
		Year:            &year,
		CreatedAt:       now,
		ProfileComplete: true,
	}
	if err := repos.Accounts.SaveAll([]models.Account{faculty, student}); err != nil {
		return err
	}

	post := models.Post{
		ID:           uuid.NewString(),
		Title:        "Campus Hack Night",
		Description:  "An overnight hackathon in the main auditorium. Teams of up to four.",
		PostedBy:     faculty.UID,
		PosterName:   faculty.Name,
		Role:         faculty.Role,
		Type:         models.PostHackathon,
		ApplyEnabled: true,
		CreatedAt:    now,
		College:      faculty.College,
	}
	if err := repos.Posts.SaveAll([]models.Post{post}); err != nil {
		return err
	}

	item := models.BorrowItem{
		ID:            uuid.NewString(),
		Item:          "Scientific Calculator",
		Description:   "FX-991 for exam season",
		OwnerID:       student.UID,
		OwnerName:     student.Name,
		Price:         0,
		AvailableFrom: now.Format("2006-01-02"),
		AvailableTo:   now.AddDate(0, 1, 0).Format("2006-01-02"),
		Status:        models.BorrowAvailable,
		IsFriendOnly:  true,
	}
	if err := repos.BorrowItems.SaveAll([]models.BorrowItem{item}); err != nil {
		return err
	}

	lgr.Info().Msg("demo data created")
	return nil
}
