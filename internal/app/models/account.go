package models

import "time"

// Role classifies an account as a student or a faculty member.
type Role string

const (
	RoleStudent Role = "student"
	RoleFaculty Role = "faculty"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleFaculty
}

// Account is a registered user. The registry entry carries the plaintext
// credential (hashing is out of scope for this core); the active-session
// copy is always stored with the password stripped.
type Account struct {
	UID             string    `json:"uid"`
	Email           string    `json:"email"`
	Password        string    `json:"password,omitempty"`
	Name            string    `json:"name"`
	College         string    `json:"college"`
	Role            Role      `json:"role"`
	Department      string    `json:"department"`
	Branch          string    `json:"branch"`
	Year            *string   `json:"year,omitempty"` // students only
	CreatedAt       time.Time `json:"createdAt"`
	ProfileComplete bool      `json:"profileComplete"`
}

// WithoutPassword returns a copy of the account safe to persist as the
// session record.
func (a Account) WithoutPassword() Account {
	a.Password = ""
	return a
}
