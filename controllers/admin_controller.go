package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/R-Nikhil-Ganesh/gittogether-backend/database"
	"github.com/R-Nikhil-Ganesh/gittogether-backend/models"
	"github.com/gin-gonic/gin"
)

type skillUsage struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// GetAdminSummary godoc
// @Summary Get platform-wide statistics
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Summary"
// @Failure 403 {object} map[string]string "Admin access required"
// @Router /api/v1/admin/summary [get]
func GetAdminSummary(c *gin.Context) {
	var totalUsers, activeUsers, newUsers int64
	database.DB.Model(&models.User{}).Count(&totalUsers)
	database.DB.Model(&models.User{}).Where("is_active = ?", true).Count(&activeUsers)
	database.DB.Model(&models.User{}).
		Where("created_at > ?", time.Now().AddDate(0, 0, -7)).
		Count(&newUsers)

	var totalPosts, openPosts, closedPosts int64
	database.DB.Model(&models.TeamPost{}).Count(&totalPosts)
	database.DB.Model(&models.TeamPost{}).Where("status = ?", models.TeamPostOpen).Count(&openPosts)
	database.DB.Model(&models.TeamPost{}).Where("status = ?", models.TeamPostClosed).Count(&closedPosts)

	var totalRequests, pendingRequests, acceptedRequests, rejectedRequests int64
	database.DB.Model(&models.TeamRequest{}).Count(&totalRequests)
	database.DB.Model(&models.TeamRequest{}).Where("status = ?", models.TeamRequestPending).Count(&pendingRequests)
	database.DB.Model(&models.TeamRequest{}).Where("status = ?", models.TeamRequestAccepted).Count(&acceptedRequests)
	database.DB.Model(&models.TeamRequest{}).Where("status = ?", models.TeamRequestRejected).Count(&rejectedRequests)

	var topSkills []skillUsage
	database.DB.Table("user_skills").
		Select("skills.name AS name, COUNT(user_skills.user_id) AS count").
		Joins("JOIN skills ON skills.id = user_skills.skill_id").
		Group("skills.name").
		Order("count DESC").
		Limit(10).
		Scan(&topSkills)

	var recentUsers []models.User
	database.DB.Order("created_at DESC").Limit(5).Find(&recentUsers)

	var recentPosts []models.TeamPost
	database.DB.Preload("Owner").Order("created_at DESC").Limit(5).Find(&recentPosts)

	var recentRequests []models.TeamRequest
	database.DB.Preload("Post").Preload("Requester").Order("created_at DESC").Limit(5).Find(&recentRequests)

	c.JSON(http.StatusOK, gin.H{
		"users": gin.H{
			"total":           totalUsers,
			"active":          activeUsers,
			"new_last_7_days": newUsers,
		},
		"posts": gin.H{
			"total":  totalPosts,
			"open":   openPosts,
			"closed": closedPosts,
		},
		"requests": gin.H{
			"total":    totalRequests,
			"pending":  pendingRequests,
			"accepted": acceptedRequests,
			"rejected": rejectedRequests,
		},
		"top_skills":      topSkills,
		"recent_users":    recentUsers,
		"recent_posts":    recentPosts,
		"recent_requests": recentRequests,
	})
}

// GetAdminUsers godoc
// @Summary List all users
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param search query string false "Filter by name or email"
// @Success 200 {object} map[string]interface{} "Users"
// @Failure 403 {object} map[string]string "Admin access required"
// @Router /api/v1/admin/users [get]
func GetAdminUsers(c *gin.Context) {
	query := database.DB.Model(&models.User{}).Preload("Skills")

	if search := c.Query("search"); search != "" {
		pattern := "%" + search + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ?", pattern, pattern)
	}

	var users []models.User
	if err := query.Order("created_at DESC").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

// UpdateAdminUserStatus godoc
// @Summary Activate or deactivate a user
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param input body object true "{\"is_active\": bool}"
// @Success 200 {object} map[string]interface{} "Updated user"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "User not found"
// @Router /api/v1/admin/users/{id}/status [put]
func UpdateAdminUserStatus(c *gin.Context) {
	adminID := c.MustGet("userID").(uint)

	targetID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	var input struct {
		IsActive *bool `json:"is_active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "is_active is required"})
		return
	}

	if uint(targetID) == adminID && !*input.IsActive {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot deactivate your own account"})
		return
	}

	var user models.User
	if err := database.DB.First(&user, uint(targetID)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	user.IsActive = *input.IsActive
	if err := database.DB.Model(&user).Update("is_active", user.IsActive).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
