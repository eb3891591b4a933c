package models

import "time"

// NoticeKind discriminates the source of a notice-board entry.
type NoticeKind string

const (
	NoticePost      NoticeKind = "post"
	NoticeEmergency NoticeKind = "emergency"
)

// Notice is a read-only notice-board entry composed from the post and
// emergency collections. It is never persisted.
type Notice struct {
	Kind      NoticeKind
	CreatedAt time.Time
	Post      *Post
	Emergency *Emergency
}
