package models

import "time"

// VenueID references venues.service_id, not venues.id — invitations
// point at the venue's parent service the way the rest of the app does.
type Invitation struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	SenderID       uint      `gorm:"index;not null" json:"sender_id"`
	VenueID        uint      `gorm:"index;not null" json:"venue_id"`
	RecipientName  string    `gorm:"not null" json:"recipient_name"`
	RecipientEmail string    `gorm:"not null" json:"recipient_email"`
	Message        *string   `gorm:"type:text" json:"message"`
	CreatedAt      time.Time `json:"created_at"`
}
