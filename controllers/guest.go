// controllers/guest.go
package controllers

import (
	"errors"
	"net/http"
	"path/filepath"
	"strconv"

	"weddingplanner-backend/config"
	"weddingplanner-backend/models"
	"weddingplanner-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ParkingInput struct {
	AvailableSpots *string `json:"availableSpots"`
	Note           *string `json:"note"`
	WeddingTime    *string `json:"weddingTime"`
}

// GetWeddingByInvitation resolves the wedding an invitation link points
// at. Guests hit this first; everything else keys off the result.
func GetWeddingByInvitation(c *gin.Context) {
	wedding, ok := weddingForInvitation(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, wedding)
}

// UploadWeddingPhotos stores guest photos against the wedding behind
// the invitation id.
func UploadWeddingPhotos(c *gin.Context) {
	wedding, ok := weddingForInvitation(c)
	if !ok {
		return
	}

	form, err := c.MultipartForm()
	if err != nil || len(form.File["photos"]) == 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "No photos uploaded")
		return
	}
	files := form.File["photos"]
	if len(files) > maxUploadFiles {
		utils.RespondWithError(c, http.StatusBadRequest, "Too many photos.")
		return
	}

	uploadedBy := optionalString(c.PostForm("uploadedBy"))

	dir, err := utils.UploadDir("")
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Server error")
		return
	}

	for _, file := range files {
		filename := utils.UniqueFilename(file.Filename)
		if err := c.SaveUploadedFile(file, filepath.Join(dir, filename)); err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Server error")
			return
		}
		photo := models.WeddingPhoto{
			WeddingID:  wedding.ID,
			PhotoURL:   filename,
			UploadedBy: uploadedBy,
		}
		if err := config.DB.Create(&photo).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Server error")
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"message": "Photos uploaded successfully",
		"count":   len(files),
	})
}

// SaveParking records a guest's parking report for the wedding. Blank
// spot counts are stored as null, not zero.
func SaveParking(c *gin.Context) {
	wedding, ok := weddingForInvitation(c)
	if !ok {
		return
	}

	var input ParkingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	var spots *int
	if input.AvailableSpots != nil && *input.AvailableSpots != "" {
		if n, err := strconv.Atoi(*input.AvailableSpots); err == nil {
			spots = &n
		}
	}

	parking := models.GuestParking{
		WeddingID:      wedding.ID,
		AvailableSpots: spots,
		Note:           input.Note,
		ParkingTime:    input.WeddingTime,
	}

	if err := config.DB.Create(&parking).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "message": "Parking information saved"})
}

// GetParkingAvailability sums every reported spot across all weddings.
func GetParkingAvailability(c *gin.Context) {
	var available int64
	err := config.DB.Model(&models.GuestParking{}).
		Select("COALESCE(SUM(available_spots), 0)").
		Scan(&available).Error
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"available": available})
}

func weddingForInvitation(c *gin.Context) (*models.Wedding, bool) {
	invitationID := c.Param("invitationId")

	var wedding models.Wedding
	if err := config.DB.First(&wedding, "invitation_id = ?", invitationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Wedding not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Server error")
		}
		return nil, false
	}
	return &wedding, true
}
