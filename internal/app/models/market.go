package models

import "time"

// BorrowStatus is the lending state of a BorrowItem.
type BorrowStatus string

const (
	BorrowAvailable BorrowStatus = "available"
	BorrowBorrowed  BorrowStatus = "borrowed"
)

// BorrowItem is a lendable item. Status borrowed implies both borrower
// fields are set; status available implies both are nil. A friend-only
// item always carries a zero price.
type BorrowItem struct {
	ID            string       `json:"id"`
	Item          string       `json:"item"`
	Description   string       `json:"description"`
	OwnerID       string       `json:"ownerId"`
	OwnerName     string       `json:"ownerName"`
	BorrowerID    *string      `json:"borrowerId"`
	BorrowerName  *string      `json:"borrowerName"`
	Price         float64      `json:"price"`
	AvailableFrom string       `json:"availableFrom"`
	AvailableTo   string       `json:"availableTo"`
	Status        BorrowStatus `json:"status"`
	IsFriendOnly  bool         `json:"isFriendOnly"`
}

// SellStatus is the marketplace state of a SellItem.
type SellStatus string

const (
	SellAvailable SellStatus = "available"
	SellSold      SellStatus = "sold"
)

// SellItem is a marketplace listing.
type SellItem struct {
	ID          string     `json:"id"`
	Item        string     `json:"item"`
	SellerID    string     `json:"sellerId"`
	SellerName  string     `json:"sellerName"`
	Price       float64    `json:"price"`
	Status      SellStatus `json:"status"`
	Description string     `json:"description"`
	Condition   string     `json:"condition"`
	Image       string     `json:"image,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}
