package services

import (
	"testing"
	"time"

	"weddingplanner-backend/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:notifier?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.WeddingService{}, &models.Appointment{}, &models.NotificationLog{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	t.Cleanup(func() {
		db.Exec("DELETE FROM notification_logs")
		db.Exec("DELETE FROM appointments")
		db.Exec("DELETE FROM wedding_services")
	})
	return db
}

func seedVendor(t *testing.T, db *gorm.DB, phone *string) uint {
	t.Helper()

	vendor := models.WeddingService{
		ServiceType: models.ServiceTypeVenue,
		Name:        "Rosewood Hall",
		Email:       "events@rosewood.example.com",
		PhoneNumber: phone,
	}
	if err := db.Create(&vendor).Error; err != nil {
		t.Fatalf("failed to seed vendor: %v", err)
	}
	return vendor.ID
}

func TestSendUpcomingReminders_LogsSkipsWithoutTwilio(t *testing.T) {
	db := newTestDB(t)

	phone := "+14155552671"
	withPhone := seedVendor(t, db, &phone)
	withoutPhone := seedVendor(t, db, nil)

	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	appointments := []models.Appointment{
		{UserID: 1, ServiceID: withPhone, AppointmentType: "venue_check", StartDatetime: tomorrow + " 10:00"},
		{UserID: 1, ServiceID: withoutPhone, AppointmentType: "venue_check", StartDatetime: tomorrow + " 13:00"},
		// next week, out of the reminder window
		{UserID: 1, ServiceID: withPhone, AppointmentType: "venue_check", StartDatetime: time.Now().AddDate(0, 0, 7).Format("2006-01-02") + " 10:00"},
	}
	if err := db.Create(&appointments).Error; err != nil {
		t.Fatalf("failed to seed appointments: %v", err)
	}

	notifier := &NotifierService{db: db} // no twilio client configured
	notifier.SendUpcomingReminders()

	var logs []models.NotificationLog
	if err := db.Find(&logs).Error; err != nil {
		t.Fatalf("failed to load logs: %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("expected 2 log rows for tomorrow's appointments, got %d", len(logs))
	}
	for _, entry := range logs {
		if entry.Status != "skipped" {
			t.Fatalf("expected skipped status without twilio, got %q", entry.Status)
		}
		if entry.Channel != "sms" {
			t.Fatalf("expected sms channel, got %q", entry.Channel)
		}
	}
}

func TestSendUpcomingReminders_NoAppointments(t *testing.T) {
	db := newTestDB(t)

	notifier := &NotifierService{db: db}
	notifier.SendUpcomingReminders()

	var count int64
	db.Model(&models.NotificationLog{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected no log rows, got %d", count)
	}
}
