package models

import "time"

// StartDatetime keeps the "YYYY-MM-DD HH:MM" wire format the clients
// send, so ordering by it stays chronological without a parse.
type Appointment struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          uint      `gorm:"index;not null" json:"user_id"`
	ServiceID       uint      `gorm:"index;not null" json:"service_id"`
	AppointmentType string    `gorm:"type:varchar(30)" json:"appointment_type"`
	StartDatetime   string    `gorm:"type:varchar(16);not null" json:"start_datetime"`
	EndDatetime     *string   `gorm:"type:varchar(16)" json:"end_datetime"`
	CreatedAt       time.Time `json:"created_at"`
}
