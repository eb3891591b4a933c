// Package storage defines the synchronous key-value contract that backs the
// session record and every community collection. Each key holds one
// serialized value; there is no transactionality across keys.
package storage

// Storage keys. The uniconnect_ prefix matches the layout of the original
// browser-storage data so an existing store decodes cleanly.
const (
	KeySession      = "uniconnect_user"
	KeyAccounts     = "uniconnect_users"
	KeyPosts        = "uniconnect_posts"
	KeyApplications = "uniconnect_applications"
	KeyBorrowItems  = "uniconnect_borrow"
	KeySellItems    = "uniconnect_sell"
	KeyLostFound    = "uniconnect_lostfound"
	KeyHelpRequests = "uniconnect_help"
	KeyEmergencies  = "uniconnect_emergency"
)

// Store is a durable string-keyed value store. Get returns false for a
// missing key; callers are expected to fall back to an empty collection.
// Writes are last-writer-wins: nothing arbitrates between two processes
// sharing the same underlying medium.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
}
