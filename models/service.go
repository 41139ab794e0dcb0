package models

import (
	"time"
)

// Service types the catalog accepts. Each one maps to exactly one
// subtype table; anything else is a catalog misconfiguration.
const (
	ServiceTypeDJ        = "DJ"
	ServiceTypeChef      = "Chef"
	ServiceTypeCakeBaker = "Cake Baker"
	ServiceTypeFlorist   = "Florist"
	ServiceTypeWaiter    = "Waiter"
	ServiceTypeVenue     = "Venue"
)

type WeddingService struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ServiceType string    `gorm:"type:varchar(30);index;not null" json:"service_type"`
	Name        string    `gorm:"not null" json:"name"`
	Address     *string   `json:"address"`
	Price       *float64  `gorm:"type:decimal(10,2)" json:"price"`
	Description *string   `json:"description"`
	PhoneNumber *string   `json:"phone_number"`
	Email       string    `gorm:"not null" json:"email"`
	CreatedAt   time.Time `json:"created_at"`

	Photos       []ServicePhoto        `gorm:"foreignKey:ServiceID" json:"-"`
	Availability []ServiceAvailability `gorm:"foreignKey:ServiceID" json:"-"`
}

func (WeddingService) TableName() string { return "wedding_services" }

type ServicePhoto struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ServiceID uint   `gorm:"index;not null" json:"service_id"`
	FileURL   string `gorm:"not null" json:"file_url"`
}

func (ServicePhoto) TableName() string { return "service_photos" }

// Availability dates are stored as YYYY-MM-DD strings so lexicographic
// order is chronological order. Nothing in the booking flow flips
// IsBooked yet; the flag is read when listing, never written.
type ServiceAvailability struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	ServiceID     uint   `gorm:"index;not null" json:"service_id"`
	AvailableDate string `gorm:"type:varchar(10);not null" json:"available_date"`
	IsBooked      bool   `gorm:"default:false" json:"is_booked"`
}

func (ServiceAvailability) TableName() string { return "service_availability" }

// Subtype rows. Exactly one per service, keyed by the parent id; the
// unique index turns the lazy-venue-creation race into a fetch retry.

type Venue struct {
	ID              uint    `gorm:"primaryKey" json:"id"`
	ServiceID       uint    `gorm:"uniqueIndex;not null" json:"service_id"`
	Address         *string `json:"address"`
	Capacity        *int    `json:"capacity"`
	ParkingCapacity *int    `json:"parking_capacity"`
}

type DJBand struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	ServiceID uint `gorm:"uniqueIndex;not null" json:"service_id"`
}

func (DJBand) TableName() string { return "dj_bands" }

type Chef struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	ServiceID uint `gorm:"uniqueIndex;not null" json:"service_id"`
}

type CakeBaker struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	ServiceID uint `gorm:"uniqueIndex;not null" json:"service_id"`
}

type Florist struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	ServiceID uint `gorm:"uniqueIndex;not null" json:"service_id"`
}

type Waiter struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	ServiceID uint `gorm:"uniqueIndex;not null" json:"service_id"`
}
