// controllers/feedback.go
package controllers

import (
	"net/http"

	"weddingplanner-backend/config"
	"weddingplanner-backend/models"
	"weddingplanner-backend/utils"

	"github.com/gin-gonic/gin"
)

type CreateFeedbackInput struct {
	FullName *string `json:"full_name"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Comment  string  `json:"comment" binding:"required"`
}

// CreateFeedback records a visitor's comment.
func CreateFeedback(c *gin.Context) {
	var input CreateFeedbackInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "comment is required")
		return
	}

	feedback := models.Feedback{
		FullName: input.FullName,
		Email:    input.Email,
		Comment:  input.Comment,
	}

	if err := config.DB.Create(&feedback).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save feedback")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "id": feedback.ID})
}

// GetFeedback lists all feedback, newest first. Admin portal only.
func GetFeedback(c *gin.Context) {
	var feedback []models.Feedback
	if err := config.DB.Order("created_at DESC").Find(&feedback).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch feedback")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "feedback": feedback})
}

// DeleteFeedback removes one feedback row. Admin portal only.
func DeleteFeedback(c *gin.Context) {
	result := config.DB.Delete(&models.Feedback{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete feedback")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Feedback not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "message": "Feedback deleted"})
}
