package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/R-Nikhil-Ganesh/gittogether-backend/database"
	"github.com/R-Nikhil-Ganesh/gittogether-backend/models"
	"github.com/gin-gonic/gin"
)

type SendFriendRequestInput struct {
	TargetUserID uint    `json:"target_user_id" binding:"required" example:"2"`
	Message      *string `json:"message"`
}

type SendFriendMessageInput struct {
	Content string `json:"content" binding:"required" example:"Hey, want to team up?"`
}

// requestsBetween loads every friend request ever exchanged between two
// users. The relationship resolver works off this history.
func requestsBetween(viewerID, targetID uint) ([]models.FriendRequest, error) {
	var requests []models.FriendRequest
	err := database.DB.
		Where("(requester_id = ? AND target_id = ?) OR (requester_id = ? AND target_id = ?)",
			viewerID, targetID, targetID, viewerID).
		Find(&requests).Error
	return requests, err
}

func relationshipStatus(viewerID, targetID uint) (models.RelationshipStatus, error) {
	if viewerID == targetID {
		return models.RelationshipSelf, nil
	}
	requests, err := requestsBetween(viewerID, targetID)
	if err != nil {
		return models.RelationshipNone, err
	}
	return models.ResolveRelationship(viewerID, targetID, requests), nil
}

// GetFriends godoc
// @Summary List the authenticated user's friends
// @Description Friendship is derived from accepted friend requests in either direction.
// @Tags friends
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "List of friends"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/v1/friends [get]
func GetFriends(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var accepted []models.FriendRequest
	if err := database.DB.
		Where("(requester_id = ? OR target_id = ?) AND status = ?",
			userID, userID, models.FriendRequestAccepted).
		Preload("Requester").Preload("Target").
		Find(&accepted).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch friends"})
		return
	}

	friends := make([]models.UserSummary, 0, len(accepted))
	for _, r := range accepted {
		if r.RequesterID == userID {
			friends = append(friends, r.Target.Summary())
		} else {
			friends = append(friends, r.Requester.Summary())
		}
	}

	c.JSON(http.StatusOK, gin.H{"friends": friends})
}

// SearchUsers godoc
// @Summary Search users by name or email
// @Description Each result carries the relationship status between the viewer and that user.
// @Tags friends
// @Produce json
// @Security BearerAuth
// @Param q query string true "Search query"
// @Success 200 {object} map[string]interface{} "Search results"
// @Failure 400 {object} map[string]string "Missing query"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /api/v1/friends/search [get]
func SearchUsers(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Search query is required"})
		return
	}

	var users []models.User
	if err := database.DB.
		Where("is_active = true AND (name ILIKE ? OR email ILIKE ?)", "%"+query+"%", "%"+query+"%").
		Limit(20).
		Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search users"})
		return
	}

	results := make([]gin.H, 0, len(users))
	for _, u := range users {
		status, err := relationshipStatus(userID, u.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve relationship"})
			return
		}
		results = append(results, gin.H{
			"user":                u.Summary(),
			"relationship_status": status,
		})
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}

// GetFriendRequests godoc
// @Summary List pending friend requests
// @Description Returns the pending requests addressed to the user (incoming) and sent by the user (outgoing).
// @Tags friends
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Incoming and outgoing requests"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /api/v1/friends/requests [get]
func GetFriendRequests(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var incoming []models.FriendRequest
	if err := database.DB.
		Where("target_id = ? AND status = ?", userID, models.FriendRequestPending).
		Preload("Requester").Preload("Target").
		Order("created_at DESC").
		Find(&incoming).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch friend requests"})
		return
	}

	var outgoing []models.FriendRequest
	if err := database.DB.
		Where("requester_id = ? AND status = ?", userID, models.FriendRequestPending).
		Preload("Requester").Preload("Target").
		Order("created_at DESC").
		Find(&outgoing).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch friend requests"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"incoming": incoming,
		"outgoing": outgoing,
	})
}

// SendFriendRequest godoc
// @Summary Send a friend request
// @Description Allowed only when no relationship exists between the two users.
// @Tags friends
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body SendFriendRequestInput true "Target user"
// @Success 201 {object} map[string]interface{} "Created request"
// @Failure 400 {object} map[string]string "Invalid target"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 409 {object} map[string]string "Relationship already exists"
// @Router /api/v1/friends/requests [post]
func SendFriendRequest(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input SendFriendRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var target models.User
	if err := database.DB.Where("id = ? AND is_active = true", input.TargetUserID).First(&target).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	status, err := relationshipStatus(userID, target.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve relationship"})
		return
	}

	switch status {
	case models.RelationshipSelf:
		c.JSON(http.StatusBadRequest, gin.H{"error": "You cannot send a friend request to yourself"})
		return
	case models.RelationshipFriend:
		c.JSON(http.StatusConflict, gin.H{"error": "You are already friends with this user"})
		return
	case models.RelationshipPendingIncoming, models.RelationshipPendingOutgoing:
		c.JSON(http.StatusConflict, gin.H{"error": "A friend request between you is already pending"})
		return
	}

	request := models.FriendRequest{
		RequesterID: userID,
		TargetID:    target.ID,
		Message:     input.Message,
		Status:      models.FriendRequestPending,
	}
	if err := database.DB.Create(&request).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create friend request"})
		return
	}

	database.DB.Preload("Requester").Preload("Target").First(&request, request.ID)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Friend request sent",
		"request": request,
	})
}

// respondToFriendRequest handles accept and reject, which differ only in
// the resulting status.
func respondToFriendRequest(c *gin.Context, to models.FriendRequestStatus) {
	userID := c.MustGet("userID").(uint)

	requestID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request ID"})
		return
	}

	var request models.FriendRequest
	if err := database.DB.
		Where("id = ? AND target_id = ?", requestID, userID).
		First(&request).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Friend request not found"})
		return
	}

	if !request.CanTransition(to) {
		c.JSON(http.StatusConflict, gin.H{"error": "Friend request has already been processed"})
		return
	}

	request.Status = to
	if err := database.DB.Save(&request).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update friend request"})
		return
	}

	database.DB.Preload("Requester").Preload("Target").First(&request, request.ID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Friend request " + string(to),
		"request": request,
	})
}

// AcceptFriendRequest godoc
// @Summary Accept a pending friend request
// @Description Only the request's target may accept. Both users become friends.
// @Tags friends
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Success 200 {object} map[string]interface{} "Updated request"
// @Failure 404 {object} map[string]string "Request not found"
// @Failure 409 {object} map[string]string "Already processed"
// @Router /api/v1/friends/requests/{id}/accept [put]
func AcceptFriendRequest(c *gin.Context) {
	respondToFriendRequest(c, models.FriendRequestAccepted)
}

// RejectFriendRequest godoc
// @Summary Reject a pending friend request
// @Description Only the request's target may reject. Both users return to no relationship.
// @Tags friends
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Success 200 {object} map[string]interface{} "Updated request"
// @Failure 404 {object} map[string]string "Request not found"
// @Failure 409 {object} map[string]string "Already processed"
// @Router /api/v1/friends/requests/{id}/reject [put]
func RejectFriendRequest(c *gin.Context) {
	respondToFriendRequest(c, models.FriendRequestRejected)
}

// CancelFriendRequest godoc
// @Summary Cancel a friend request you sent
// @Tags friends
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Success 200 {object} map[string]string "Cancelled"
// @Failure 404 {object} map[string]string "Request not found"
// @Failure 409 {object} map[string]string "Already processed"
// @Router /api/v1/friends/requests/{id} [delete]
func CancelFriendRequest(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	requestID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request ID"})
		return
	}

	var request models.FriendRequest
	if err := database.DB.
		Where("id = ? AND requester_id = ?", requestID, userID).
		First(&request).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Friend request not found"})
		return
	}

	if !request.CanTransition(models.FriendRequestCancelled) {
		c.JSON(http.StatusConflict, gin.H{"error": "Friend request has already been processed"})
		return
	}

	request.Status = models.FriendRequestCancelled
	if err := database.DB.Save(&request).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel friend request"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Friend request cancelled"})
}

// GetFriendMessages godoc
// @Summary List messages exchanged with a friend
// @Description Returns both directions of the conversation, limited to messages younger than 24 hours.
// @Tags friends
// @Produce json
// @Security BearerAuth
// @Param id path int true "Friend user ID"
// @Success 200 {object} map[string]interface{} "Messages"
// @Failure 403 {object} map[string]string "Not friends"
// @Router /api/v1/friends/{id}/messages [get]
func GetFriendMessages(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	friendID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	status, err := relationshipStatus(userID, uint(friendID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve relationship"})
		return
	}
	if status != models.RelationshipFriend {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only exchange messages with friends"})
		return
	}

	var messages []models.FriendMessage
	if err := database.DB.
		Where("((sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)) AND expires_at > ?",
			userID, friendID, friendID, userID, time.Now()).
		Order("created_at ASC").
		Preload("Sender").Preload("Receiver").
		Find(&messages).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch messages"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

// SendFriendMessage godoc
// @Summary Send a message to a friend
// @Description The message expires 24 hours after creation.
// @Tags friends
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Friend user ID"
// @Param input body SendFriendMessageInput true "Message"
// @Success 201 {object} map[string]interface{} "Created message"
// @Failure 403 {object} map[string]string "Not friends"
// @Router /api/v1/friends/{id}/messages [post]
func SendFriendMessage(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	friendID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	var input SendFriendMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status, err := relationshipStatus(userID, uint(friendID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve relationship"})
		return
	}
	if status != models.RelationshipFriend {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only exchange messages with friends"})
		return
	}

	message := models.FriendMessage{
		SenderID:   userID,
		ReceiverID: uint(friendID),
		Content:    input.Content,
	}
	if err := database.DB.Create(&message).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
		return
	}

	database.DB.Preload("Sender").Preload("Receiver").First(&message, message.ID)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Message sent",
		"data":    message,
	})
}
