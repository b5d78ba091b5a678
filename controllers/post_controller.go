package controllers

import (
	"net/http"
	"strconv"

	"github.com/R-Nikhil-Ganesh/gittogether-backend/database"
	"github.com/R-Nikhil-Ganesh/gittogether-backend/models"
	"github.com/gin-gonic/gin"
)

type CreatePostInput struct {
	Title       string `json:"title" binding:"required" example:"ML hackathon team"`
	Description string `json:"description"`
	MaxMembers  int    `json:"max_members" binding:"required,min=1" example:"4"`
	SkillIDs    []uint `json:"skill_ids"`
}

type UpdatePostInput struct {
	Title       *string                `json:"title"`
	Description *string                `json:"description"`
	MaxMembers  *int                   `json:"max_members"`
	Status      *models.TeamPostStatus `json:"status" binding:"omitempty,oneof=open closed"`
	SkillIDs    *[]uint                `json:"skill_ids"`
}

// currentMembers counts the team behind a post: the owner plus every
// accepted request.
func currentMembers(postID uint) (int, error) {
	var accepted int64
	err := database.DB.Model(&models.TeamRequest{}).
		Where("post_id = ? AND status = ?", postID, models.TeamRequestAccepted).
		Count(&accepted).Error
	return int(accepted) + 1, err
}

// GetPosts godoc
// @Summary Browse team posts
// @Description Lists posts, optionally filtered by a search term, skill names and status.
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param search query string false "Search in title and description"
// @Param skills query []string false "Required skill names"
// @Param status query string false "open or closed (default open)"
// @Success 200 {object} map[string]interface{} "Posts with member counts"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /api/v1/posts [get]
func GetPosts(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	query := database.DB.Model(&models.TeamPost{}).
		Preload("Owner").Preload("RequiredSkills").
		Order("created_at DESC")

	status := c.DefaultQuery("status", string(models.TeamPostOpen))
	if status != "all" {
		query = query.Where("status = ?", status)
	}

	if search := c.Query("search"); search != "" {
		query = query.Where("title ILIKE ? OR description ILIKE ?", "%"+search+"%", "%"+search+"%")
	}

	if skills := c.QueryArray("skills"); len(skills) > 0 {
		query = query.
			Joins("JOIN post_skills ON post_skills.team_post_id = team_posts.id").
			Joins("JOIN skills ON skills.id = post_skills.skill_id").
			Where("skills.name IN ?", skills).
			Distinct("team_posts.*")
	}

	var posts []models.TeamPost
	if err := query.Find(&posts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}

	response := make([]gin.H, 0, len(posts))
	for _, post := range posts {
		members, err := currentMembers(post.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count members"})
			return
		}
		response = append(response, gin.H{
			"post":            post,
			"current_members": members,
			"is_owner":        post.OwnerID == userID,
		})
	}

	c.JSON(http.StatusOK, gin.H{"posts": response})
}

// GetPost godoc
// @Summary Get a team post
// @Description Includes the member count and whether the viewer already has an active request.
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 200 {object} map[string]interface{} "Post details"
// @Failure 404 {object} map[string]string "Post not found"
// @Router /api/v1/posts/{id} [get]
func GetPost(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	postID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	var post models.TeamPost
	if err := database.DB.Preload("Owner").Preload("RequiredSkills").First(&post, postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	members, err := currentMembers(post.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count members"})
		return
	}

	var active int64
	if err := database.DB.Model(&models.TeamRequest{}).
		Where("post_id = ? AND requester_id = ? AND status IN ?",
			post.ID, userID, []models.TeamRequestStatus{models.TeamRequestPending, models.TeamRequestAccepted}).
		Count(&active).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load request status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"post":            post,
		"current_members": members,
		"is_owner":        post.OwnerID == userID,
		"has_requested":   active > 0,
	})
}

// CreatePost godoc
// @Summary Publish a team post
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body CreatePostInput true "Post"
// @Success 201 {object} map[string]interface{} "Created post"
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /api/v1/posts [post]
func CreatePost(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input CreatePostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post := models.TeamPost{
		Title:       input.Title,
		Description: input.Description,
		MaxMembers:  input.MaxMembers,
		Status:      models.TeamPostOpen,
		OwnerID:     userID,
	}

	if len(input.SkillIDs) > 0 {
		var skills []models.Skill
		if err := database.DB.Where("id IN ?", input.SkillIDs).Find(&skills).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load skills"})
			return
		}
		post.RequiredSkills = skills
	}

	if err := database.DB.Create(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	database.DB.Preload("Owner").Preload("RequiredSkills").First(&post, post.ID)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Post created",
		"post":    post,
	})
}

// UpdatePost godoc
// @Summary Update a team post
// @Description Only the owner may update. Lowering max_members below the current roster is rejected.
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param input body UpdatePostInput true "Fields to update"
// @Success 200 {object} map[string]interface{} "Updated post"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Not the owner"
// @Failure 404 {object} map[string]string "Post not found"
// @Router /api/v1/posts/{id} [put]
func UpdatePost(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	postID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	var post models.TeamPost
	if err := database.DB.First(&post, postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	if post.OwnerID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the post owner can update this post"})
		return
	}

	var input UpdatePostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Title != nil && *input.Title != "" {
		post.Title = *input.Title
	}
	if input.Description != nil {
		post.Description = *input.Description
	}
	if input.MaxMembers != nil {
		members, err := currentMembers(post.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count members"})
			return
		}
		if *input.MaxMembers < members {
			c.JSON(http.StatusBadRequest, gin.H{"error": "max_members cannot be lower than the current member count"})
			return
		}
		post.MaxMembers = *input.MaxMembers
	}
	if input.Status != nil {
		post.Status = *input.Status
	}

	if err := database.DB.Save(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update post"})
		return
	}

	if input.SkillIDs != nil {
		var skills []models.Skill
		if err := database.DB.Where("id IN ?", *input.SkillIDs).Find(&skills).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load skills"})
			return
		}
		if err := database.DB.Model(&post).Association("RequiredSkills").Replace(skills); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update required skills"})
			return
		}
	}

	database.DB.Preload("Owner").Preload("RequiredSkills").First(&post, post.ID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Post updated",
		"post":    post,
	})
}

// DeletePost godoc
// @Summary Delete a team post
// @Description Only the owner may delete. Requests and team messages for the post go with it.
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 200 {object} map[string]string "Post deleted"
// @Failure 403 {object} map[string]string "Not the owner"
// @Failure 404 {object} map[string]string "Post not found"
// @Router /api/v1/posts/{id} [delete]
func DeletePost(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	postID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	var post models.TeamPost
	if err := database.DB.First(&post, postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	if post.OwnerID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the post owner can delete this post"})
		return
	}

	if err := database.DB.Where("post_id = ?", post.ID).Delete(&models.TeamMessage{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete team messages"})
		return
	}

	if err := database.DB.Where("post_id = ?", post.ID).Delete(&models.TeamRequest{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete requests"})
		return
	}

	if err := database.DB.Model(&post).Association("RequiredSkills").Clear(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear required skills"})
		return
	}

	if err := database.DB.Delete(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted"})
}

// GetMyPosts godoc
// @Summary List the authenticated user's posts
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Posts with member counts"
// @Router /api/v1/posts/my [get]
func GetMyPosts(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var posts []models.TeamPost
	if err := database.DB.
		Where("owner_id = ?", userID).
		Preload("Owner").Preload("RequiredSkills").
		Order("created_at DESC").
		Find(&posts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}

	response := make([]gin.H, 0, len(posts))
	for _, post := range posts {
		members, err := currentMembers(post.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count members"})
			return
		}
		response = append(response, gin.H{
			"post":            post,
			"current_members": members,
		})
	}

	c.JSON(http.StatusOK, gin.H{"posts": response})
}

// GetSkills godoc
// @Summary List the skill catalog
// @Tags skills
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Skills"
// @Router /api/v1/posts/skills [get]
func GetSkills(c *gin.Context) {
	var skills []models.Skill
	if err := database.DB.Order("name ASC").Find(&skills).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch skills"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"skills": skills})
}

// GetSkillCategories godoc
// @Summary List skill categories
// @Tags skills
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Categories"
// @Router /api/v1/posts/skills/categories [get]
func GetSkillCategories(c *gin.Context) {
	var categories []string
	if err := database.DB.Model(&models.Skill{}).
		Where("category <> ''").
		Distinct().
		Order("category ASC").
		Pluck("category", &categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}
