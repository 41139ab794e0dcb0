// services/notifier_service.go
package services

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"weddingplanner-backend/models"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

// NotifierService texts vendors a heads-up about next-day appointments.
// Without Twilio credentials it still runs and logs every attempt as
// skipped, so local setups don't need an account.
type NotifierService struct {
	db     *gorm.DB
	client *twilio.RestClient
	from   string
}

func NewNotifierService(db *gorm.DB) *NotifierService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	var client *twilio.RestClient
	if accountSid != "" && authToken != "" {
		client = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		})
	}

	return &NotifierService{
		db:     db,
		client: client,
		from:   os.Getenv("TWILIO_FROM_NUMBER"),
	}
}

func (s *NotifierService) StartScheduler() {
	c := cron.New()

	// Every day at 9 AM
	c.AddFunc("0 9 * * *", s.SendUpcomingReminders)

	c.Start()
	log.Println("Vendor reminder scheduler started")
}

// SendUpcomingReminders notifies each vendor with an appointment
// starting tomorrow.
func (s *NotifierService) SendUpcomingReminders() {
	log.Println("Starting vendor reminder processing...")

	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

	var appointments []models.Appointment
	if err := s.db.Where("start_datetime LIKE ?", tomorrow+"%").Find(&appointments).Error; err != nil {
		log.Printf("Failed to fetch appointments: %v", err)
		return
	}

	for _, appointment := range appointments {
		s.remindVendor(&appointment)
	}

	log.Println("Vendor reminder processing completed")
}

func (s *NotifierService) remindVendor(appointment *models.Appointment) {
	var vendor models.WeddingService
	if err := s.db.First(&vendor, "id = ?", appointment.ServiceID).Error; err != nil {
		log.Printf("Appointment %d: vendor %d not found: %v", appointment.ID, appointment.ServiceID, err)
		return
	}

	message := fmt.Sprintf("Reminder: a %s appointment is booked with you tomorrow at %s.",
		strings.ReplaceAll(appointment.AppointmentType, "_", " "), appointment.StartDatetime)

	entry := models.NotificationLog{
		AppointmentID: appointment.ID,
		ServiceID:     vendor.ID,
		Message:       message,
		Channel:       "sms",
		SentAt:        time.Now(),
	}

	switch {
	case vendor.PhoneNumber == nil:
		entry.Status = "skipped"
		entry.ErrorMessage = "vendor has no phone number"
	case s.client == nil:
		entry.Status = "skipped"
		entry.ErrorMessage = "twilio credentials not configured"
	default:
		params := &twilioApi.CreateMessageParams{}
		params.SetTo(*vendor.PhoneNumber)
		params.SetFrom(s.from)
		params.SetBody(message)

		if _, err := s.client.Api.CreateMessage(params); err != nil {
			entry.Status = "failed"
			entry.ErrorMessage = err.Error()
		} else {
			entry.Status = "sent"
		}
	}

	if err := s.db.Create(&entry).Error; err != nil {
		log.Printf("Appointment %d: failed to record notification: %v", appointment.ID, err)
	}
}
