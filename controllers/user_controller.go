package controllers

import (
	"net/http"
	"strconv"

	"github.com/R-Nikhil-Ganesh/gittogether-backend/database"
	"github.com/R-Nikhil-Ganesh/gittogether-backend/models"
	"github.com/gin-gonic/gin"
)

// GetUserProfile godoc
// @Summary Get a user's public profile
// @Description Returns the public profile plus the relationship status between the viewer and that user.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} map[string]interface{} "Profile and relationship status"
// @Failure 404 {object} map[string]string "User not found"
// @Router /api/v1/users/{id} [get]
func GetUserProfile(c *gin.Context) {
	viewerID := c.MustGet("userID").(uint)

	targetID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	var user models.User
	if err := database.DB.Preload("Skills").
		Where("id = ? AND is_active = true", targetID).
		First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	status, err := relationshipStatus(viewerID, user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve relationship"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":              user.ID,
			"name":            user.Name,
			"email":           user.Email,
			"profile_picture": user.ProfilePicture,
			"bio":             user.Bio,
			"department":      user.Department,
			"year":            user.Year,
			"roll_number":     user.RollNumber,
			"linkedin":        user.Linkedin,
			"github":          user.Github,
			"skills":          user.Skills,
			"created_at":      user.CreatedAt,
		},
		"relationship_status": status,
	})
}

// GetMySkills godoc
// @Summary List the authenticated user's skills
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Skills"
// @Router /api/v1/users/me/skills [get]
func GetMySkills(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var user models.User
	if err := database.DB.Preload("Skills").First(&user, userID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch skills"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"skills": user.Skills})
}

// AddMySkill godoc
// @Summary Add a skill to the authenticated user's profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param skillId path int true "Skill ID"
// @Success 200 {object} map[string]string "Skill added"
// @Failure 404 {object} map[string]string "Skill not found"
// @Router /api/v1/users/me/skills/{skillId} [post]
func AddMySkill(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	skillID, err := strconv.ParseUint(c.Param("skillId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid skill ID"})
		return
	}

	var skill models.Skill
	if err := database.DB.First(&skill, skillID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Skill not found"})
		return
	}

	user := models.User{ID: userID}
	if err := database.DB.Model(&user).Association("Skills").Append(&skill); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add skill"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Skill added"})
}

// RemoveMySkill godoc
// @Summary Remove a skill from the authenticated user's profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param skillId path int true "Skill ID"
// @Success 200 {object} map[string]string "Skill removed"
// @Failure 404 {object} map[string]string "Skill not found"
// @Router /api/v1/users/me/skills/{skillId} [delete]
func RemoveMySkill(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	skillID, err := strconv.ParseUint(c.Param("skillId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid skill ID"})
		return
	}

	var skill models.Skill
	if err := database.DB.First(&skill, skillID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Skill not found"})
		return
	}

	user := models.User{ID: userID}
	if err := database.DB.Model(&user).Association("Skills").Delete(&skill); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove skill"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Skill removed"})
}
