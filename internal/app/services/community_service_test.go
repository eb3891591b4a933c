package services

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uniconnect/uniconnect/internal/app/models"
	"github.com/uniconnect/uniconnect/internal/app/repositories"
	"github.com/uniconnect/uniconnect/internal/pkg/apperrors"
	"github.com/uniconnect/uniconnect/internal/storage"
)

// newCommunityFixture signs up and completes the profile of a student
// named Alice, mirroring the original onboarding flow.
func newCommunityFixture(t *testing.T) (*SessionService, *CommunityService, *repositories.Repositories) {
	t.Helper()
	repos := repositories.NewRepositories(storage.NewMemoryStore())
	sessions := NewSessionService(repos, SessionConfig{}, zerolog.Nop())
	community := NewCommunityService(repos, sessions, zerolog.Nop())

	_, err := sessions.Signup("alice@college.edu.in", "pw123456", models.RoleStudent)
	require.NoError(t, err)

	name, college, department, branch, year := "Alice", "X", "CSE", "CSE", "1st Year"
	account, err := sessions.UpdateProfile(ProfileUpdate{
		Name: &name, College: &college, Department: &department, Branch: &branch, Year: &year,
	})
	require.NoError(t, err)
	require.True(t, account.ProfileComplete)

	return sessions, community, repos
}

func TestAddPostStampsAuthorAndPrepends(t *testing.T) {
	_, community, _ := newCommunityFixture(t)

	_, err := community.AddPost(PostInput{
		Title: "Hack Day", Description: "24h build sprint", Type: models.PostHackathon, ApplyEnabled: true,
	})
	require.NoError(t, err)

	posts := community.Posts()
	require.Len(t, posts, 1)
	assert.Equal(t, "Alice", posts[0].PosterName)
	assert.Equal(t, models.RoleStudent, posts[0].Role)
	assert.Equal(t, "X", posts[0].College)

	_, err = community.AddPost(PostInput{
		Title: "Freshers Meet", Description: "welcome evening", Type: models.PostFreshers,
	})
	require.NoError(t, err)

	posts = community.Posts()
	require.Len(t, posts, 2)
	assert.Equal(t, "Freshers Meet", posts[0].Title, "newest post goes to index 0")
	assert.Equal(t, "Hack Day", posts[1].Title)
}

func TestAddPostRejectsUnknownCategory(t *testing.T) {
	_, community, _ := newCommunityFixture(t)

	_, err := community.AddPost(PostInput{Title: "x", Description: "y", Type: "party"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Empty(t, community.Posts())
}

func TestMutationsRequireSession(t *testing.T) {
	sessions, community, _ := newCommunityFixture(t)
	require.NoError(t, sessions.Logout())

	_, err := community.AddPost(PostInput{Title: "x", Description: "y", Type: models.PostOthers})
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)

	_, err = community.ApplyToPost("p1", ApplicationInput{Year: "1st", Course: "CSE", Email: "a@b.edu"})
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)

	_, err = community.AddBorrowItem(BorrowItemInput{Item: "lamp"})
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)

	err = community.Borrow("b1")
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)

	_, err = community.AddEmergency(EmergencyInput{Message: "m", Location: "l", Type: models.EmergencyFire})
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
}

func TestApplyToPostAppendsPending(t *testing.T) {
	_, community, _ := newCommunityFixture(t)

	application, err := community.ApplyToPost("post-1", ApplicationInput{
		Year: "1st Year", Course: "CSE", Email: "alice@college.edu.in",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationPending, application.Status)
	assert.Equal(t, "Alice", application.StudentName)

	// The store does not deduplicate; a second application is appended.
	_, err = community.ApplyToPost("post-1", ApplicationInput{
		Year: "1st Year", Course: "CSE", Email: "alice@college.edu.in",
	})
	require.NoError(t, err)
	assert.Len(t, community.Applications(), 2)

	assert.True(t, community.HasApplied("post-1", application.StudentID))
	assert.False(t, community.HasApplied("post-2", application.StudentID))
}

func TestUpdateApplicationStatusOverwritesUnconditionally(t *testing.T) {
	_, community, _ := newCommunityFixture(t)

	application, err := community.ApplyToPost("post-1", ApplicationInput{
		Year: "1st Year", Course: "CSE", Email: "alice@college.edu.in",
	})
	require.NoError(t, err)

	require.NoError(t, community.UpdateApplicationStatus(application.ID, models.ApplicationApproved))
	require.NoError(t, community.UpdateApplicationStatus(application.ID, models.ApplicationRejected))

	// Double transition is allowed: the last write wins.
	assert.Equal(t, models.ApplicationRejected, community.Applications()[0].Status)
}

func TestUpdateApplicationStatusValidatesStatus(t *testing.T) {
	_, community, _ := newCommunityFixture(t)

	err := community.UpdateApplicationStatus("any", models.ApplicationPending)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestUpdateApplicationStatusUnknownIDIsNoOp(t *testing.T) {
	_, community, _ := newCommunityFixture(t)

	assert.NoError(t, community.UpdateApplicationStatus("missing", models.ApplicationApproved))
}

func TestFriendOnlyItemPriceForcedToZero(t *testing.T) {
	_, community, _ := newCommunityFixture(t)

	item, err := community.AddBorrowItem(BorrowItemInput{
		Item: "Calculator", Description: "FX-991", Price: 50, IsFriendOnly: true,
	})
	require.NoError(t, err)
	assert.Zero(t, item.Price)
	assert.Equal(t, models.BorrowAvailable, item.Status)
	assert.Nil(t, item.BorrowerID)
	assert.Nil(t, item.BorrowerName)
}

func TestBorrowReturnRoundTrip(t *testing.T) {
	_, community, _ := newCommunityFixture(t)

	item, err := community.AddBorrowItem(BorrowItemInput{Item: "Calculator", Price: 10})
	require.NoError(t, err)

	require.NoError(t, community.Borrow(item.ID))
	borrowed := community.BorrowItems()[0]
	assert.Equal(t, models.BorrowBorrowed, borrowed.Status)
	require.NotNil(t, borrowed.BorrowerID)
	require.NotNil(t, borrowed.BorrowerName)
	assert.Equal(t, "Alice", *borrowed.BorrowerName)

	require.NoError(t, community.Return(item.ID))
	returned := community.BorrowItems()[0]
	assert.Equal(t, models.BorrowAvailable, returned.Status)
	assert.Nil(t, returned.BorrowerID)
	assert.Nil(t, returned.BorrowerName)
}

func TestSellLifecycle(t *testing.T) {
	_, community, _ := newCommunityFixture(t)

	item, err := community.AddSellItem(SellItemInput{Item: "Bicycle", Price: 1200, Condition: "used"})
	require.NoError(t, err)
	assert.Equal(t, models.SellAvailable, item.Status)
	assert.Equal(t, "Alice", item.SellerName)

	require.NoError(t, community.MarkAsSold(item.ID))
	assert.Equal(t, models.SellSold, community.SellItems()[0].Status)
}

func TestLostFoundLifecycle(t *testing.T) {
	_, community, _ := newCommunityFixture(t)

	item, err := community.AddLostFoundItem(LostFoundInput{
		Item: "ID Card", Location: "Library", Status: models.LostFoundLost,
		ContactEmail: "alice@college.edu.in",
	})
	require.NoError(t, err)
	assert.Equal(t, models.LostFoundLost, item.Status)
	assert.NotNil(t, item.NotifiedUsers)
	assert.Empty(t, item.NotifiedUsers)

	require.NoError(t, community.MarkAsFound(item.ID))
	assert.Equal(t, models.LostFoundFound, community.LostFoundItems()[0].Status)
}

func TestHelpRequestLifecycle(t *testing.T) {
	_, community, _ := newCommunityFixture(t)

	request, err := community.AddHelpRequest(HelpRequestInput{Request: "Notes for DS", Category: "academics"})
	require.NoError(t, err)
	assert.Equal(t, models.HelpPending, request.Status)

	require.NoError(t, community.ResolveHelpRequest(request.ID))
	assert.Equal(t, models.HelpResolved, community.HelpRequests()[0].Status)
}

func TestAddEmergencyPrepends(t *testing.T) {
	_, community, _ := newCommunityFixture(t)

	_, err := community.AddEmergency(EmergencyInput{
		Message: "Smoke in lab 2", Location: "Block B", Type: models.EmergencyFire,
	})
	require.NoError(t, err)
	_, err = community.AddEmergency(EmergencyInput{
		Message: "Student fainted", Location: "Canteen", Type: models.EmergencyMedical,
	})
	require.NoError(t, err)

	emergencies := community.Emergencies()
	require.Len(t, emergencies, 2)
	assert.Equal(t, "Student fainted", emergencies[0].Message, "newest alert goes to index 0")
}

func TestCollectionsSurviveRestart(t *testing.T) {
	store := storage.NewMemoryStore()
	repos := repositories.NewRepositories(store)
	sessions := NewSessionService(repos, SessionConfig{}, zerolog.Nop())
	community := NewCommunityService(repos, sessions, zerolog.Nop())

	_, err := sessions.Signup("alice@college.edu.in", "pw123456", models.RoleStudent)
	require.NoError(t, err)
	_, err = community.AddPost(PostInput{Title: "Hack Day", Description: "...", Type: models.PostHackathon})
	require.NoError(t, err)

	// A fresh service graph over the same store sees the persisted data.
	reloadedRepos := repositories.NewRepositories(store)
	reloaded := NewCommunityService(reloadedRepos, NewSessionService(reloadedRepos, SessionConfig{}, zerolog.Nop()), zerolog.Nop())
	require.Len(t, reloaded.Posts(), 1)
	assert.Equal(t, "Hack Day", reloaded.Posts()[0].Title)
}

func TestInjectedClockStampsRecords(t *testing.T) {
	_, community, _ := newCommunityFixture(t)

	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	community.now = func() time.Time { return fixed }

	post, err := community.AddPost(PostInput{Title: "t", Description: "d", Type: models.PostOthers})
	require.NoError(t, err)
	assert.True(t, post.CreatedAt.Equal(fixed))
}
