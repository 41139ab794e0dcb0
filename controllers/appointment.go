// controllers/appointment.go
package controllers

import (
	"net/http"
	"time"

	"weddingplanner-backend/config"
	"weddingplanner-backend/models"
	"weddingplanner-backend/utils"

	"github.com/gin-gonic/gin"
)

// Appointment types couples can book, each tied to one vendor type.
var appointmentVendorTypes = map[string]string{
	"venue_check":     models.ServiceTypeVenue,
	"cake_tasting":    models.ServiceTypeCakeBaker,
	"dj_audition":     models.ServiceTypeDJ,
	"menu_tasting":    models.ServiceTypeChef,
	"flower_preview":  models.ServiceTypeFlorist,
	"staff_interview": models.ServiceTypeWaiter,
}

type BookAppointmentInput struct {
	UserID          uint    `json:"user_id" binding:"required"`
	ServiceID       uint    `json:"service_id" binding:"required"`
	AppointmentType string  `json:"appointment_type"`
	StartDatetime   string  `json:"start_datetime" binding:"required"`
	EndDatetime     *string `json:"end_datetime"`
}

type VendorResponse struct {
	ID          uint     `json:"id"`
	ServiceType string   `json:"service_type"`
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Slots       []string `json:"slots"`
}

type AppointmentResponse struct {
	ID              uint    `json:"id"`
	UserID          uint    `json:"user_id"`
	ServiceID       uint    `json:"service_id"`
	AppointmentType string  `json:"appointment_type"`
	StartDatetime   string  `json:"start_datetime"`
	EndDatetime     *string `json:"end_datetime"`
	VendorName      string  `json:"vendor_name"`
}

// GetVendors lists every vendor matching the appointment type, each
// with freshly generated visit slots.
func GetVendors(c *gin.Context) {
	appointmentType := c.Query("type")
	serviceType, ok := appointmentVendorTypes[appointmentType]
	if !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "Unknown appointment type")
		return
	}

	var vendors []models.WeddingService
	if err := config.DB.Where("service_type = ?", serviceType).Find(&vendors).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch vendors")
		return
	}

	now := time.Now()
	responses := make([]VendorResponse, 0, len(vendors))
	for _, v := range vendors {
		responses = append(responses, VendorResponse{
			ID:          v.ID,
			ServiceType: v.ServiceType,
			Name:        v.Name,
			Description: v.Description,
			Slots:       utils.GenerateVendorSlots(now),
		})
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "vendors": responses})
}

// BookAppointment records the request as-is. Slots are advisory; there
// is no conflict check against other bookings.
func BookAppointment(c *gin.Context) {
	var input BookAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Missing user_id or service_id")
		return
	}

	appointment := models.Appointment{
		UserID:          input.UserID,
		ServiceID:       input.ServiceID,
		AppointmentType: input.AppointmentType,
		StartDatetime:   input.StartDatetime,
		EndDatetime:     input.EndDatetime,
	}

	if err := config.DB.Create(&appointment).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to book appointment")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "message": "Appointment booked."})
}

// GetMyAppointments lists a user's bookings with the vendor name,
// latest start first.
func GetMyAppointments(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Missing user_id")
		return
	}

	appointments := make([]AppointmentResponse, 0)
	err := config.DB.Table("appointments").
		Select("appointments.id, appointments.user_id, appointments.service_id, appointments.appointment_type, appointments.start_datetime, appointments.end_datetime, wedding_services.name AS vendor_name").
		Joins("JOIN wedding_services ON wedding_services.id = appointments.service_id").
		Where("appointments.user_id = ?", userID).
		Order("appointments.start_datetime DESC").
		Scan(&appointments).Error
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch appointments")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "appointments": appointments})
}
