package model

import "fmt"

const (
	StatusActive   = "active"
	StatusResolved = "resolved"
)

// Kind selects which item table an operation targets.
type Kind string

const (
	KindLost  Kind = "lost"
	KindFound Kind = "found"
)

// ParseKind maps a path segment to a Kind. Anything else is rejected here
// so request-derived strings never reach query construction.
func ParseKind(s string) (Kind, error) {
	switch s {
	case string(KindLost):
		return KindLost, nil
	case string(KindFound):
		return KindFound, nil
	}
	return "", fmt.Errorf("invalid item kind %q", s)
}

// Item is the kind-neutral representation of a lost or found record. The
// wire shapes differ per kind (lost_date vs found_date, owner vs finder),
// so the request/response types below carry the JSON tags.
type Item struct {
	ID              int64
	ItemName        string
	Description     string
	Category        string
	EventDate       string
	Location        string
	ReporterName    string
	ReporterContact string
	Status          string
}

// CreateLostItemRequest is the lost-item schema minus id and status
type CreateLostItemRequest struct {
	ItemName     string `json:"item_name" binding:"required"`
	Description  string `json:"description" binding:"required"`
	Category     string `json:"category" binding:"required"`
	LostDate     string `json:"lost_date" binding:"required"`
	Location     string `json:"location" binding:"required"`
	OwnerName    string `json:"owner_name" binding:"required"`
	OwnerContact string `json:"owner_contact" binding:"required"`
}

// Item converts the request into the kind-neutral record
func (r CreateLostItemRequest) Item() Item {
	return Item{
		ItemName:        r.ItemName,
		Description:     r.Description,
		Category:        r.Category,
		EventDate:       r.LostDate,
		Location:        r.Location,
		ReporterName:    r.OwnerName,
		ReporterContact: r.OwnerContact,
	}
}

// CreateFoundItemRequest is the found-item schema minus id and status
type CreateFoundItemRequest struct {
	ItemName      string `json:"item_name" binding:"required"`
	Description   string `json:"description" binding:"required"`
	Category      string `json:"category" binding:"required"`
	FoundDate     string `json:"found_date" binding:"required"`
	Location      string `json:"location" binding:"required"`
	FinderName    string `json:"finder_name" binding:"required"`
	FinderContact string `json:"finder_contact" binding:"required"`
}

// Item converts the request into the kind-neutral record
func (r CreateFoundItemRequest) Item() Item {
	return Item{
		ItemName:        r.ItemName,
		Description:     r.Description,
		Category:        r.Category,
		EventDate:       r.FoundDate,
		Location:        r.Location,
		ReporterName:    r.FinderName,
		ReporterContact: r.FinderContact,
	}
}

// LostItemResponse is the lost-item wire shape
type LostItemResponse struct {
	LostID       int64  `json:"lost_id"`
	ItemName     string `json:"item_name"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	LostDate     string `json:"lost_date"`
	Location     string `json:"location"`
	OwnerName    string `json:"owner_name"`
	OwnerContact string `json:"owner_contact"`
	Status       string `json:"status"`
}

// NewLostItemResponse maps a stored record to the lost-item wire shape
func NewLostItemResponse(it Item) LostItemResponse {
	return LostItemResponse{
		LostID:       it.ID,
		ItemName:     it.ItemName,
		Description:  it.Description,
		Category:     it.Category,
		LostDate:     it.EventDate,
		Location:     it.Location,
		OwnerName:    it.ReporterName,
		OwnerContact: it.ReporterContact,
		Status:       it.Status,
	}
}

// FoundItemResponse is the found-item wire shape
type FoundItemResponse struct {
	FoundID       int64  `json:"found_id"`
	ItemName      string `json:"item_name"`
	Description   string `json:"description"`
	Category      string `json:"category"`
	FoundDate     string `json:"found_date"`
	Location      string `json:"location"`
	FinderName    string `json:"finder_name"`
	FinderContact string `json:"finder_contact"`
	Status        string `json:"status"`
}

// NewFoundItemResponse maps a stored record to the found-item wire shape
func NewFoundItemResponse(it Item) FoundItemResponse {
	return FoundItemResponse{
		FoundID:       it.ID,
		ItemName:      it.ItemName,
		Description:   it.Description,
		Category:      it.Category,
		FoundDate:     it.EventDate,
		Location:      it.Location,
		FinderName:    it.ReporterName,
		FinderContact: it.ReporterContact,
		Status:        it.Status,
	}
}
