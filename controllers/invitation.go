// controllers/invitation.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"weddingplanner-backend/config"
	"weddingplanner-backend/models"
	"weddingplanner-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var errNoVenueAvailable = errors.New("no venues available")

type RecipientInput struct {
	RecipientName  string `json:"recipient_name" binding:"required"`
	RecipientEmail string `json:"recipient_email" binding:"required"`
}

type SendInvitationsInput struct {
	SenderID    uint             `json:"sender_id" binding:"required"`
	VenueID     *uint            `json:"venue_id"`
	Invitations []RecipientInput `json:"invitations" binding:"required,min=1,dive"`
	Message     *string          `json:"message"`
}

type InvitationResponse struct {
	ID             uint    `json:"id"`
	SenderID       uint    `json:"sender_id"`
	VenueID        uint    `json:"venue_id"`
	RecipientName  string  `json:"recipient_name"`
	RecipientEmail string  `json:"recipient_email"`
	Message        *string `json:"message"`
	VenueAddress   *string `json:"venue_address"`
	VenueName      *string `json:"venue_name,omitempty"`
}

// SendInvitations resolves a venue, then inserts one invitation row per
// recipient in a single batch. The returned invitation_id is the first
// row of the batch. Resending the same list makes a fresh batch; guests
// are never deduplicated.
func SendInvitations(c *gin.Context) {
	var input SendInvitationsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "No recipients provided")
		return
	}

	venueID, err := resolveVenue(input.VenueID)
	if err != nil {
		switch {
		case errors.Is(err, errNoVenueAvailable):
			utils.RespondWithError(c, http.StatusBadRequest, "No venues available.")
		case errors.Is(err, gorm.ErrRecordNotFound):
			utils.RespondWithError(c, http.StatusNotFound, "Venue not found")
		default:
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to send invitations")
		}
		return
	}

	invitations := make([]models.Invitation, 0, len(input.Invitations))
	for _, r := range input.Invitations {
		invitations = append(invitations, models.Invitation{
			SenderID:       input.SenderID,
			VenueID:        venueID,
			RecipientName:  r.RecipientName,
			RecipientEmail: r.RecipientEmail,
			Message:        input.Message,
		})
	}

	if err := config.DB.Create(&invitations).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to send invitations")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":            true,
		"message":       "Invitations sent.",
		"invitation_id": invitations[0].ID,
	})
}

// resolveVenue picks the venue the invitations will reference:
// the explicit one (must exist), else any registered venue, else one
// synthesized from an existing Venue-typed service.
func resolveVenue(venueID *uint) (uint, error) {
	if venueID != nil {
		var venue models.Venue
		if err := config.DB.First(&venue, "service_id = ?", *venueID).Error; err != nil {
			return 0, err
		}
		return venue.ServiceID, nil
	}

	var venue models.Venue
	err := config.DB.First(&venue).Error
	if err == nil {
		return venue.ServiceID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	var service models.WeddingService
	err = config.DB.First(&service, "service_type = ?", models.ServiceTypeVenue).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, errNoVenueAvailable
	}
	if err != nil {
		return 0, err
	}

	return synthesizeVenue(&service)
}

const (
	defaultVenueCapacity        = 200
	defaultVenueParkingCapacity = 50
)

// synthesizeVenue backfills the venues row for a Venue-typed service
// that was never registered. The conditional insert plus re-fetch makes
// two concurrent first sends converge on the same row instead of
// racing to create two.
func synthesizeVenue(service *models.WeddingService) (uint, error) {
	address := service.Address
	if address == nil {
		tbd := "TBD"
		address = &tbd
	}

	capacity := defaultVenueCapacity
	parking := defaultVenueParkingCapacity
	venue := models.Venue{
		ServiceID:       service.ID,
		Address:         address,
		Capacity:        &capacity,
		ParkingCapacity: &parking,
	}

	if err := config.DB.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "service_id"}},
			DoNothing: true,
		}).
		Create(&venue).Error; err != nil {
		return 0, err
	}

	var existing models.Venue
	if err := config.DB.First(&existing, "service_id = ?", service.ID).Error; err != nil {
		return 0, err
	}
	return existing.ServiceID, nil
}

// GetMyInvitations lists a sender's invitations, newest first.
func GetMyInvitations(c *gin.Context) {
	senderID := c.Query("sender_id")
	if senderID == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Missing sender_id")
		return
	}

	invitations := make([]InvitationResponse, 0)
	err := config.DB.Table("invitations").
		Select("invitations.id, invitations.sender_id, invitations.venue_id, invitations.recipient_name, invitations.recipient_email, invitations.message, venues.address AS venue_address").
		Joins("JOIN venues ON venues.service_id = invitations.venue_id").
		Where("invitations.sender_id = ?", senderID).
		Order("invitations.id DESC").
		Scan(&invitations).Error
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch invitations")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "invitations": invitations})
}

// GetInvitation fetches one invitation with its venue address and name.
func GetInvitation(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid invitation id")
		return
	}

	var invitation InvitationResponse
	result := config.DB.Table("invitations").
		Select("invitations.id, invitations.sender_id, invitations.venue_id, invitations.recipient_name, invitations.recipient_email, invitations.message, venues.address AS venue_address, wedding_services.name AS venue_name").
		Joins("LEFT JOIN venues ON venues.service_id = invitations.venue_id").
		Joins("LEFT JOIN wedding_services ON wedding_services.id = invitations.venue_id").
		Where("invitations.id = ?", id).
		Scan(&invitation)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch invitation")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Invitation not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "invitation": invitation})
}
