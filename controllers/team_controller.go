package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/R-Nikhil-Ganesh/gittogether-backend/database"
	"github.com/R-Nikhil-Ganesh/gittogether-backend/models"
	"github.com/R-Nikhil-Ganesh/gittogether-backend/websocket"
	"github.com/gin-gonic/gin"
)

type SendTeamMessageInput struct {
	Content string `json:"content" binding:"required" example:"Standup at 6?"`
}

// loadRoster rebuilds a team's membership from its post and accepted
// requests. Membership is always derived, never stored.
func loadRoster(postID uint) (models.Roster, error) {
	var post models.TeamPost
	if err := database.DB.Preload("Owner").First(&post, postID).Error; err != nil {
		return models.Roster{}, err
	}

	var requests []models.TeamRequest
	if err := database.DB.
		Where("post_id = ? AND status = ?", postID, models.TeamRequestAccepted).
		Preload("Requester").
		Find(&requests).Error; err != nil {
		return models.Roster{}, err
	}

	return models.TeamRoster(post, requests), nil
}

func teamSummary(roster models.Roster, viewerID uint) gin.H {
	role, _ := roster.RoleOf(viewerID)
	return gin.H{
		"id":              roster.Post.ID,
		"title":           roster.Post.Title,
		"description":     roster.Post.Description,
		"status":          roster.Post.Status,
		"role":            role,
		"current_members": roster.CurrentMembers(),
		"max_members":     roster.Post.MaxMembers,
		"members":         roster.Members,
		"created_at":      roster.Post.CreatedAt,
	}
}

// GetMyTeams godoc
// @Summary List the teams the authenticated user belongs to
// @Description Covers teams the user owns and teams that accepted the user, with full rosters.
// @Tags teams
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Teams"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /api/v1/teams/my [get]
func GetMyTeams(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var ownedIDs []uint
	if err := database.DB.Model(&models.TeamPost{}).
		Where("owner_id = ?", userID).
		Pluck("id", &ownedIDs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch teams"})
		return
	}

	var joinedIDs []uint
	if err := database.DB.Model(&models.TeamRequest{}).
		Where("requester_id = ? AND status = ?", userID, models.TeamRequestAccepted).
		Pluck("post_id", &joinedIDs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch teams"})
		return
	}

	seen := make(map[uint]bool)
	teams := []gin.H{}
	for _, id := range append(ownedIDs, joinedIDs...) {
		if seen[id] {
			continue
		}
		seen[id] = true

		roster, err := loadRoster(id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build team roster"})
			return
		}
		teams = append(teams, teamSummary(roster, userID))
	}

	c.JSON(http.StatusOK, gin.H{"teams": teams})
}

// GetTeamMessages godoc
// @Summary List a team's chat messages
// @Description Current members only. Messages older than 24 hours never appear.
// @Tags teams
// @Produce json
// @Security BearerAuth
// @Param id path int true "Team (post) ID"
// @Success 200 {object} map[string]interface{} "Messages"
// @Failure 403 {object} map[string]string "Not a member"
// @Failure 404 {object} map[string]string "Team not found"
// @Router /api/v1/teams/{id}/messages [get]
func GetTeamMessages(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	teamID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team ID"})
		return
	}

	roster, err := loadRoster(uint(teamID))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Team not found"})
		return
	}

	if !roster.IsMember(userID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not a member of this team"})
		return
	}

	var messages []models.TeamMessage
	if err := database.DB.
		Where("post_id = ? AND expires_at > ?", teamID, time.Now()).
		Order("created_at ASC").
		Preload("Sender").
		Find(&messages).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch messages"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

// SendTeamMessage godoc
// @Summary Send a message to the team chat
// @Description The message expires 24 hours after creation and is pushed to connected members.
// @Tags teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Team (post) ID"
// @Param input body SendTeamMessageInput true "Message"
// @Success 201 {object} map[string]interface{} "Created message"
// @Failure 403 {object} map[string]string "Not a member"
// @Router /api/v1/teams/{id}/messages [post]
func SendTeamMessage(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	teamID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team ID"})
		return
	}

	var input SendTeamMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	roster, err := loadRoster(uint(teamID))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Team not found"})
		return
	}

	if !roster.IsMember(userID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not a member of this team"})
		return
	}

	message := models.TeamMessage{
		PostID:   uint(teamID),
		SenderID: userID,
		Content:  input.Content,
	}
	if err := database.DB.Create(&message).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
		return
	}

	database.DB.Preload("Sender").First(&message, message.ID)

	websocket.BroadcastToTeam(uint(teamID), "team_message", message)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Message sent",
		"data":    message,
	})
}

// RemoveTeamMember godoc
// @Summary Remove a member from a team
// @Description Owner only. The member's accepted request becomes removed and chat access ends
// @Description immediately; rejoining takes a brand-new request.
// @Tags teams
// @Produce json
// @Security BearerAuth
// @Param id path int true "Team (post) ID"
// @Param memberId path int true "Member user ID"
// @Success 200 {object} map[string]string "Member removed"
// @Failure 400 {object} map[string]string "Cannot remove the owner"
// @Failure 403 {object} map[string]string "Not the owner"
// @Failure 404 {object} map[string]string "Member not found"
// @Router /api/v1/teams/{id}/members/{memberId} [delete]
func RemoveTeamMember(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	teamID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team ID"})
		return
	}

	memberID, err := strconv.ParseUint(c.Param("memberId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid member ID"})
		return
	}

	var post models.TeamPost
	if err := database.DB.First(&post, teamID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Team not found"})
		return
	}

	if post.OwnerID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the team owner can remove members"})
		return
	}

	if uint(memberID) == post.OwnerID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "The owner cannot be removed from the team"})
		return
	}

	var request models.TeamRequest
	if err := database.DB.
		Where("post_id = ? AND requester_id = ? AND status = ?",
			teamID, memberID, models.TeamRequestAccepted).
		First(&request).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
		return
	}

	request.Status = models.TeamRequestRemoved
	if err := database.DB.Save(&request).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove member"})
		return
	}

	// Cut the push channel before announcing, so the removed member's
	// read access ends with their membership.
	websocket.EvictFromTeam(uint(teamID), uint(memberID))
	websocket.BroadcastToTeam(uint(teamID), "member_removed", gin.H{"user_id": memberID})

	c.JSON(http.StatusOK, gin.H{"message": "Member removed"})
}
