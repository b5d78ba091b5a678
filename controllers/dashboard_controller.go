package controllers

import (
	"net/http"

	"github.com/R-Nikhil-Ganesh/gittogether-backend/database"
	"github.com/R-Nikhil-Ganesh/gittogether-backend/models"
	"github.com/gin-gonic/gin"
)

// GetDashboardSummary godoc
// @Summary Get the viewer's dashboard counters
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Counters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /api/v1/dashboard/summary [get]
func GetDashboardSummary(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var myPosts int64
	database.DB.Model(&models.TeamPost{}).Where("owner_id = ?", userID).Count(&myPosts)

	var joinedTeams int64
	database.DB.Model(&models.TeamRequest{}).
		Where("requester_id = ? AND status = ?", userID, models.TeamRequestAccepted).
		Count(&joinedTeams)

	var sentPending, sentAccepted int64
	database.DB.Model(&models.TeamRequest{}).
		Where("requester_id = ? AND status = ?", userID, models.TeamRequestPending).
		Count(&sentPending)
	database.DB.Model(&models.TeamRequest{}).
		Where("requester_id = ? AND status = ?", userID, models.TeamRequestAccepted).
		Count(&sentAccepted)

	var receivedPending int64
	database.DB.Model(&models.TeamRequest{}).
		Joins("JOIN team_posts ON team_posts.id = team_requests.post_id").
		Where("team_posts.owner_id = ? AND team_requests.status = ?", userID, models.TeamRequestPending).
		Count(&receivedPending)

	var friends int64
	database.DB.Model(&models.FriendRequest{}).
		Where("(requester_id = ? OR target_id = ?) AND status = ?",
			userID, userID, models.FriendRequestAccepted).
		Count(&friends)

	var incomingFriendRequests int64
	database.DB.Model(&models.FriendRequest{}).
		Where("target_id = ? AND status = ?", userID, models.FriendRequestPending).
		Count(&incomingFriendRequests)

	c.JSON(http.StatusOK, gin.H{
		"posts": gin.H{
			"mine": myPosts,
		},
		"teams": gin.H{
			"owned":  myPosts,
			"joined": joinedTeams,
		},
		"requests": gin.H{
			"sent_pending":     sentPending,
			"sent_accepted":    sentAccepted,
			"received_pending": receivedPending,
		},
		"friends": gin.H{
			"total":            friends,
			"incoming_pending": incomingFriendRequests,
		},
	})
}

// GetDashboardActivity godoc
// @Summary Get recent request activity touching the viewer
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Activity entries, newest first"
// @Router /api/v1/dashboard/activity [get]
func GetDashboardActivity(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var sent []models.TeamRequest
	if err := database.DB.
		Where("requester_id = ?", userID).
		Preload("Post").Preload("Post.Owner").
		Order("updated_at DESC").Limit(10).
		Find(&sent).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch activity"})
		return
	}

	var received []models.TeamRequest
	if err := database.DB.
		Joins("JOIN team_posts ON team_posts.id = team_requests.post_id").
		Where("team_posts.owner_id = ?", userID).
		Preload("Post").Preload("Requester").
		Order("team_requests.updated_at DESC").Limit(10).
		Find(&received).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch activity"})
		return
	}

	activity := make([]gin.H, 0, len(sent)+len(received))
	for _, r := range sent {
		activity = append(activity, gin.H{
			"type":       "request_sent",
			"request":    r,
			"updated_at": r.UpdatedAt,
		})
	}
	for _, r := range received {
		activity = append(activity, gin.H{
			"type":       "request_received",
			"request":    r,
			"updated_at": r.UpdatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{"activity": activity})
}

// GetDashboardNotifications godoc
// @Summary Get the viewer's actionable notifications
// @Description Pending incoming friend requests and pending applications to the viewer's posts.
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Notifications"
// @Router /api/v1/dashboard/notifications [get]
func GetDashboardNotifications(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var friendRequests []models.FriendRequest
	if err := database.DB.
		Where("target_id = ? AND status = ?", userID, models.FriendRequestPending).
		Preload("Requester").
		Order("created_at DESC").
		Find(&friendRequests).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch notifications"})
		return
	}

	var teamRequests []models.TeamRequest
	if err := database.DB.
		Joins("JOIN team_posts ON team_posts.id = team_requests.post_id").
		Where("team_posts.owner_id = ? AND team_requests.status = ?", userID, models.TeamRequestPending).
		Preload("Post").Preload("Requester").
		Order("team_requests.created_at DESC").
		Find(&teamRequests).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch notifications"})
		return
	}

	notifications := make([]gin.H, 0, len(friendRequests)+len(teamRequests))
	for _, r := range friendRequests {
		notifications = append(notifications, gin.H{
			"type":       "friend_request",
			"request":    r,
			"created_at": r.CreatedAt,
		})
	}
	for _, r := range teamRequests {
		notifications = append(notifications, gin.H{
			"type":       "team_request",
			"request":    r,
			"created_at": r.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}
