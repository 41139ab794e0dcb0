// controllers/accounts.go
package controllers

import (
	"net/http"
	"strings"

	"weddingplanner-backend/config"
	"weddingplanner-backend/models"
	"weddingplanner-backend/utils"

	"github.com/gin-gonic/gin"
)

type AccountListItem struct {
	ID        uint   `json:"id"`
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

// ListAccounts returns every account, optionally filtered by role,
// newest first. Admin portal only.
func ListAccounts(c *gin.Context) {
	query := config.DB.Model(&models.Account{}).Order("created_at DESC")

	if role := strings.ToUpper(c.Query("role")); role != "" && role != "ALL" {
		query = query.Where("role = ?", role)
	}

	var accounts []models.Account
	if err := query.Find(&accounts).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch accounts")
		return
	}

	items := make([]AccountListItem, 0, len(accounts))
	for _, a := range accounts {
		items = append(items, AccountListItem{
			ID:       a.ID,
			FullName: a.FullName,
			Email:    a.Email,
			Role:     a.Role,
			// TODO: replace with a real banned/disabled flag once accounts grow one
			Status:    "ACTIVE",
			CreatedAt: a.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "accounts": items})
}
