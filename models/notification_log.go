package models

import "time"

// One row per reminder SMS attempt, sent or not.
type NotificationLog struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	AppointmentID uint      `gorm:"index;not null" json:"appointment_id"`
	ServiceID     uint      `gorm:"index;not null" json:"service_id"`
	Message       string    `gorm:"type:text" json:"message"`
	Status        string    `gorm:"type:varchar(20)" json:"status"` // sent, failed, skipped
	ErrorMessage  string    `gorm:"type:text" json:"error_message"`
	Channel       string    `gorm:"type:varchar(20)" json:"channel"` // sms
	SentAt        time.Time `json:"sent_at"`
	CreatedAt     time.Time `json:"created_at"`
}
