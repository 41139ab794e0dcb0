// controllers/album.go
package controllers

import (
	"net/http"
	"path/filepath"
	"strings"

	"weddingplanner-backend/config"
	"weddingplanner-backend/models"
	"weddingplanner-backend/utils"

	"github.com/gin-gonic/gin"
)

type AlbumPhotoResponse struct {
	PhotoURL   string  `json:"photo_url"`
	UploadedBy *string `json:"uploaded_by"`
}

// UploadGuestPhotos adds photos to a couple's shared album. The album
// is keyed by couple name, not invitation id.
func UploadGuestPhotos(c *gin.Context) {
	coupleName := strings.TrimSpace(c.PostForm("coupleName"))
	if coupleName == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "coupleName is required")
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

	var uploadedBy *string
	if name := strings.TrimSpace(c.PostForm("guestName")); name != "" {
		uploadedBy = &name
	}

	dir, err := utils.UploadDir("")
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Server error")
		return
	}

	photos := make([]models.GuestPhoto, 0, len(files))
	for _, file := range files {
		filename := utils.UniqueFilename(file.Filename)
		if err := c.SaveUploadedFile(file, filepath.Join(dir, filename)); err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Server error")
			return
		}
		photos = append(photos, models.GuestPhoto{
			CoupleName: coupleName,
			UploadedBy: uploadedBy,
			PhotoURL:   "uploads/" + filename,
		})
	}

	if err := config.DB.Create(&photos).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "uploaded": len(photos)})
}

// GetWeddingAlbum lists a couple's album photos.
func GetWeddingAlbum(c *gin.Context) {
	coupleName := c.Query("couple_name")
	if coupleName == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "couple_name query is required")
		return
	}

	photos := make([]AlbumPhotoResponse, 0)
	err := config.DB.Model(&models.GuestPhoto{}).
		Select("photo_url, uploaded_by").
		Where("couple_name = ?", coupleName).
		Scan(&photos).Error
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.JSON(http.StatusOK, photos)
}
