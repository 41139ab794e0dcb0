package models

import "time"

// A wedding page reachable through an invitation link. Guests never
// authenticate; the invitation id is the whole credential.
type Wedding struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	InvitationID uint      `gorm:"index;not null" json:"invitation_id"`
	CoupleName   string    `json:"couple_name"`
	WeddingDate  *string   `gorm:"type:varchar(10)" json:"wedding_date"`
	VenueAddress *string   `json:"venue_address"`
	CreatedAt    time.Time `json:"created_at"`
}

// Photos guests upload to a specific wedding.
type WeddingPhoto struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	WeddingID  uint      `gorm:"index;not null" json:"wedding_id"`
	PhotoURL   string    `gorm:"not null" json:"photo_url"`
	UploadedBy *string   `json:"uploaded_by"`
	CreatedAt  time.Time `json:"created_at"`
}

func (WeddingPhoto) TableName() string { return "photos" }

type GuestParking struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	WeddingID      uint      `gorm:"index;not null" json:"wedding_id"`
	GuestName      *string   `json:"guest_name"`
	AvailableSpots *int      `json:"available_spots"`
	Note           *string   `json:"note"`
	ParkingTime    *string   `gorm:"type:varchar(16)" json:"parking_time"`
	CreatedAt      time.Time `json:"created_at"`
}

func (GuestParking) TableName() string { return "guest_parking" }

// Album uploads keyed by couple name rather than wedding id; the album
// page predates the invitation flow and kept its own table.
type GuestPhoto struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CoupleName string    `gorm:"index;not null" json:"couple_name"`
	UploadedBy *string   `json:"uploaded_by"`
	PhotoURL   string    `gorm:"not null" json:"photo_url"`
	CreatedAt  time.Time `json:"created_at"`
}

func (GuestPhoto) TableName() string { return "guest_photos" }
