package models

import "time"

// LostFoundStatus is the recovery state of a LostFoundItem.
type LostFoundStatus string

const (
	LostFoundLost  LostFoundStatus = "lost"
	LostFoundFound LostFoundStatus = "found"
)

// LostFoundItem is a lost-or-found report. NotifiedUsers is kept for
// storage compatibility with the original data; nothing populates it.
type LostFoundItem struct {
	ID            string          `json:"id"`
	Item          string          `json:"item"`
	OwnerID       string          `json:"ownerId"`
	OwnerName     string          `json:"ownerName"`
	Location      string          `json:"location"`
	Description   string          `json:"description"`
	NotifiedUsers []string        `json:"notifiedUsers"`
	Status        LostFoundStatus `json:"status"`
	ReportedAt    time.Time       `json:"reportedAt"`
	ContactEmail  string          `json:"contactEmail"`
}

// HelpStatus is the lifecycle state of a HelpRequest.
type HelpStatus string

const (
	HelpPending  HelpStatus = "pending"
	HelpResolved HelpStatus = "resolved"
)

// HelpRequest is a call for help from the community.
type HelpRequest struct {
	ID              string     `json:"id"`
	Request         string     `json:"request"`
	RequesterID     string     `json:"requesterId"`
	RequesterName   string     `json:"requesterName"`
	HelpersNotified []string   `json:"helpersNotified"`
	Status          HelpStatus `json:"status"`
	CreatedAt       time.Time  `json:"createdAt"`
	Category        string     `json:"category"`
}

// EmergencyType is the fixed enumeration for emergency reports.
type EmergencyType string

const (
	EmergencyFire     EmergencyType = "fire"
	EmergencyMedical  EmergencyType = "medical"
	EmergencySecurity EmergencyType = "security"
	EmergencyOther    EmergencyType = "other"
)

// Emergency is an append-only alert; there is no resolution transition.
type Emergency struct {
	ID            string        `json:"id"`
	Message       string        `json:"message"`
	ReportedBy    string        `json:"reportedBy"`
	ReporterName  string        `json:"reporterName"`
	NotifiedUsers []string      `json:"notifiedUsers"`
	CreatedAt     time.Time     `json:"createdAt"`
	Location      string        `json:"location"`
	Type          EmergencyType `json:"type"`
}
