package controllers

import (
	"net/http"
	"strconv"

	"github.com/R-Nikhil-Ganesh/gittogether-backend/database"
	"github.com/R-Nikhil-Ganesh/gittogether-backend/models"
	"github.com/gin-gonic/gin"
)

type CreateEventInput struct {
	Title       string  `json:"title" binding:"required" example:"Smart India Hackathon"`
	Description string  `json:"description"`
	Link        string  `json:"link" binding:"omitempty,url"`
	ImageURL    *string `json:"image_url"`
}

// GetEvents godoc
// @Summary Browse the events board
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param search query string false "Search in title and description"
// @Success 200 {object} map[string]interface{} "Events"
// @Router /api/v1/events [get]
func GetEvents(c *gin.Context) {
	query := database.DB.Preload("Owner").Order("created_at DESC")

	if search := c.Query("search"); search != "" {
		query = query.Where("title ILIKE ? OR description ILIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var events []models.Event
	if err := query.Find(&events).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch events"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": events})
}

// CreateEvent godoc
// @Summary Post an event to the board
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body CreateEventInput true "Event"
// @Success 201 {object} map[string]interface{} "Created event"
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /api/v1/events [post]
func CreateEvent(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input CreateEventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event := models.Event{
		Title:       input.Title,
		Description: input.Description,
		Link:        input.Link,
		ImageURL:    input.ImageURL,
		OwnerID:     userID,
	}
	if err := database.DB.Create(&event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create event"})
		return
	}

	database.DB.Preload("Owner").First(&event, event.ID)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Event created",
		"event":   event,
	})
}

// DeleteEvent godoc
// @Summary Delete an event
// @Description The event's owner and admins may delete.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} map[string]string "Event deleted"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Event not found"
// @Router /api/v1/events/{id} [delete]
func DeleteEvent(c *gin.Context) {
	user := c.MustGet("user").(models.User)

	eventID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}

	var event models.Event
	if err := database.DB.First(&event, eventID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	if event.OwnerID != user.ID && !user.IsAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the event owner can delete this event"})
		return
	}

	if err := database.DB.Delete(&event).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete event"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Event deleted"})
}
