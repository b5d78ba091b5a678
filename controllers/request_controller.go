package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/R-Nikhil-Ganesh/gittogether-backend/database"
	"github.com/R-Nikhil-Ganesh/gittogether-backend/models"
	"github.com/R-Nikhil-Ganesh/gittogether-backend/websocket"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateRequestInput struct {
	PostID  uint    `json:"post_id" binding:"required" example:"1"`
	Message *string `json:"message"`
}

type UpdateRequestInput struct {
	Status          models.TeamRequestStatus `json:"status" binding:"required,oneof=accepted rejected"`
	ResponseMessage *string                  `json:"response_message"`
}

// CreateTeamRequest godoc
// @Summary Apply to join a team post
// @Description Rejected for closed posts, the post owner, and requesters with an active request for the post.
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body CreateRequestInput true "Application"
// @Success 201 {object} map[string]interface{} "Created request"
// @Failure 400 {object} map[string]string "Invalid application"
// @Failure 404 {object} map[string]string "Post not found"
// @Failure 409 {object} map[string]string "Already requested"
// @Router /api/v1/requests [post]
func CreateTeamRequest(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input CreateRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var post models.TeamPost
	if err := database.DB.First(&post, input.PostID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	if post.Status != models.TeamPostOpen {
		c.JSON(http.StatusBadRequest, gin.H{"error": "This post is no longer accepting requests"})
		return
	}

	if post.OwnerID == userID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "You cannot request to join your own post"})
		return
	}

	var active int64
	if err := database.DB.Model(&models.TeamRequest{}).
		Where("post_id = ? AND requester_id = ? AND status IN ?",
			post.ID, userID, []models.TeamRequestStatus{models.TeamRequestPending, models.TeamRequestAccepted}).
		Count(&active).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check existing requests"})
		return
	}
	if active > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "You have already requested to join this team"})
		return
	}

	request := models.TeamRequest{
		PostID:      post.ID,
		RequesterID: userID,
		Message:     input.Message,
		Status:      models.TeamRequestPending,
	}
	if err := database.DB.Create(&request).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create request"})
		return
	}

	database.DB.Preload("Post").Preload("Post.Owner").Preload("Requester").First(&request, request.ID)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Request sent",
		"request": request,
	})
}

// GetSentRequests godoc
// @Summary List requests the authenticated user has sent
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Requests"
// @Router /api/v1/requests/sent [get]
func GetSentRequests(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var requests []models.TeamRequest
	if err := database.DB.
		Where("requester_id = ?", userID).
		Preload("Post").Preload("Post.Owner").Preload("Post.RequiredSkills").
		Order("created_at DESC").
		Find(&requests).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch requests"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

// GetReceivedRequests godoc
// @Summary List requests received on the authenticated user's posts
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Requests grouped by applicant"
// @Router /api/v1/requests/received [get]
func GetReceivedRequests(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var requests []models.TeamRequest
	if err := database.DB.
		Joins("JOIN team_posts ON team_posts.id = team_requests.post_id").
		Where("team_posts.owner_id = ?", userID).
		Preload("Post").Preload("Requester").Preload("Requester.Skills").
		Order("team_requests.created_at DESC").
		Find(&requests).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch requests"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

// UpdateTeamRequestStatus godoc
// @Summary Accept or reject a pending request
// @Description Only the post owner may decide a request, and only once. Accepting re-checks team
// @Description capacity inside the transaction; a full team leaves the request pending.
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Param input body UpdateRequestInput true "Decision"
// @Success 200 {object} map[string]interface{} "Updated request"
// @Failure 403 {object} map[string]string "Not the post owner"
// @Failure 404 {object} map[string]string "Request not found"
// @Failure 409 {object} map[string]string "Already processed or team full"
// @Router /api/v1/requests/{id} [put]
func UpdateTeamRequestStatus(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	requestID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request ID"})
		return
	}

	var input UpdateRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var request models.TeamRequest
	if err := database.DB.Preload("Post").First(&request, requestID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
		return
	}

	if request.Post.OwnerID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the post owner can respond to this request"})
		return
	}

	if !request.CanTransition(input.Status) {
		c.JSON(http.StatusConflict, gin.H{"error": "Request has already been processed"})
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if input.Status == models.TeamRequestAccepted {
			var accepted int64
			if err := tx.Model(&models.TeamRequest{}).
				Where("post_id = ? AND status = ?", request.PostID, models.TeamRequestAccepted).
				Count(&accepted).Error; err != nil {
				return err
			}
			// owner + accepted members must stay within the cap
			if int(accepted)+1 >= request.Post.MaxMembers {
				return models.ErrTeamFull
			}
		}

		request.Status = input.Status
		request.ResponseMessage = input.ResponseMessage
		return tx.Save(&request).Error
	})
	if errors.Is(err, models.ErrTeamFull) {
		c.JSON(http.StatusConflict, gin.H{"error": "Team is already full"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update request"})
		return
	}

	database.DB.Preload("Post").Preload("Requester").First(&request, request.ID)

	if request.Status == models.TeamRequestAccepted {
		websocket.BroadcastToTeam(request.PostID, "member_joined", request.Requester.Summary())
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Request " + string(request.Status),
		"request": request,
	})
}

// WithdrawTeamRequest godoc
// @Summary Withdraw a pending request
// @Description Only the requester may withdraw, and only while the request is pending.
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Success 200 {object} map[string]string "Request withdrawn"
// @Failure 404 {object} map[string]string "Request not found"
// @Failure 409 {object} map[string]string "Already processed"
// @Router /api/v1/requests/{id} [delete]
func WithdrawTeamRequest(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	requestID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request ID"})
		return
	}

	var request models.TeamRequest
	if err := database.DB.
		Where("id = ? AND requester_id = ?", requestID, userID).
		First(&request).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
		return
	}

	if request.Status != models.TeamRequestPending {
		c.JSON(http.StatusConflict, gin.H{"error": "Only pending requests can be withdrawn"})
		return
	}

	if err := database.DB.Delete(&request).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to withdraw request"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Request withdrawn"})
}
