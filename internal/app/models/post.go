package models

import "time"

// PostType is the fixed category enumeration for event posts.
type PostType string

const (
	PostHackathon  PostType = "hackathon"
	PostFreshers   PostType = "freshers"
	PostFlashmob   PostType = "flashmob"
	PostPlacement  PostType = "placement"
	PostInternship PostType = "internship"
	PostTopper     PostType = "topper"
	PostOthers     PostType = "others"
)

// Post is an event or announcement on the community feed. The author
// fields are stamped from the acting session at creation and never change.
type Post struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	PostedBy     string    `json:"postedBy"`
	PosterName   string    `json:"posterName"`
	Role         Role      `json:"role"`
	Type         PostType  `json:"type"`
	ApplyEnabled bool      `json:"applyEnabled"`
	CreatedAt    time.Time `json:"createdAt"`
	College      string    `json:"college"`
	Image        string    `json:"image,omitempty"`
}

// ApplicationStatus tracks an application through its one-way lifecycle.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)

// Application is a student's application to a post. Deduplication of
// (post, applicant) pairs is the caller's responsibility, not the store's.
type Application struct {
	ID          string            `json:"id"`
	PostID      string            `json:"postId"`
	StudentID   string            `json:"studentId"`
	StudentName string            `json:"studentName"`
	Status      ApplicationStatus `json:"status"`
	AppliedAt   time.Time         `json:"appliedAt"`
	Year        string            `json:"year"`
	Course      string            `json:"course"`
	Email       string            `json:"email"`
}
