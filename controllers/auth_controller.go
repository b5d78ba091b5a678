package controllers

import (
	"errors"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/R-Nikhil-Ganesh/gittogether-backend/database"
	"github.com/R-Nikhil-Ganesh/gittogether-backend/models"
	"github.com/R-Nikhil-Ganesh/gittogether-backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"gorm.io/gorm"
)

type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type GoogleCallbackInput struct {
	Code  string `json:"code" binding:"required"`
	State string `json:"state"`
}

type UpdateProfileInput struct {
	Name       *string `json:"name"`
	Bio        *string `json:"bio"`
	Department *string `json:"department"`
	Year       *string `json:"year"`
	RollNumber *string `json:"roll_number"`
	Linkedin   *string `json:"linkedin"`
	Github     *string `json:"github"`
}

// oauthStates holds the CSRF state tokens issued by GetGoogleAuthURL until
// the callback consumes them. Entries expire after ten minutes.
var (
	oauthStates   = make(map[string]time.Time)
	oauthStatesMu sync.Mutex
)

func issueOAuthState() string {
	state := uuid.NewString()
	oauthStatesMu.Lock()
	defer oauthStatesMu.Unlock()
	for s, issued := range oauthStates {
		if time.Since(issued) > 10*time.Minute {
			delete(oauthStates, s)
		}
	}
	oauthStates[state] = time.Now()
	return state
}

func consumeOAuthState(state string) bool {
	oauthStatesMu.Lock()
	defer oauthStatesMu.Unlock()
	issued, ok := oauthStates[state]
	if !ok {
		return false
	}
	delete(oauthStates, state)
	return time.Since(issued) <= 10*time.Minute
}

// isAdminEmail checks the comma-separated ADMIN_EMAILS allowlist.
func isAdminEmail(email string) bool {
	for _, admin := range strings.Split(os.Getenv("ADMIN_EMAILS"), ",") {
		if admin != "" && strings.EqualFold(strings.TrimSpace(admin), email) {
			return true
		}
	}
	return false
}

// Register godoc
// @Summary Register a local account
// @Description Creates an account with email and password. Most users sign in with Google instead.
// @Tags auth
// @Accept json
// @Produce json
// @Param input body RegisterInput true "Registration"
// @Success 201 {object} map[string]interface{} "Token and user"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Email already registered"
// @Router /api/v1/auth/register [post]
func Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.User
	if result := database.DB.Where("email = ?", input.Email).First(&existing); result.RowsAffected > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "User with this email already exists"})
		return
	}

	user := models.User{
		Name:    input.Name,
		Email:   input.Email,
		IsAdmin: isAdminEmail(input.Email),
	}
	if err := user.SetPassword(input.Password); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	if err := database.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"access_token": token,
		"user":         user,
	})
}

// Login godoc
// @Summary Sign in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param input body LoginInput true "Credentials"
// @Success 200 {object} map[string]interface{} "Token and user"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Router /api/v1/auth/login [post]
func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if result := database.DB.Where("email = ?", input.Email).First(&user); result.Error != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	if user.Password == "" || user.ValidatePassword(input.Password) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	if !user.IsActive {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Account is deactivated"})
		return
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"user":         user,
	})
}

// GetGoogleAuthURL godoc
// @Summary Start the Google sign-in flow
// @Description Returns the Google consent URL and the state token the callback must echo back.
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string "auth_url and state"
// @Router /api/v1/auth/google [get]
func GetGoogleAuthURL(c *gin.Context) {
	state := issueOAuthState()
	url := utils.GoogleOAuthConfig().AuthCodeURL(state, oauth2.AccessTypeOffline)
	c.JSON(http.StatusOK, gin.H{
		"auth_url": url,
		"state":    state,
	})
}

// GoogleCallback godoc
// @Summary Finish the Google sign-in flow
// @Description Exchanges the authorization code, finds or creates the user and issues an access token.
// @Tags auth
// @Accept json
// @Produce json
// @Param input body GoogleCallbackInput true "Code and state from Google"
// @Success 200 {object} map[string]interface{} "Token and user"
// @Failure 400 {object} map[string]string "Invalid code or state"
// @Failure 401 {object} map[string]string "Account deactivated"
// @Router /api/v1/auth/google/callback [post]
func GoogleCallback(c *gin.Context) {
	var input GoogleCallbackInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.State != "" && !consumeOAuthState(input.State) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired state parameter"})
		return
	}

	identity, err := utils.ExchangeGoogleCode(c.Request.Context(), input.Code)
	if err != nil {
		logrus.WithError(err).Warn("Google code exchange failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to verify Google sign-in"})
		return
	}

	if identity.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Google account has no email"})
		return
	}

	var user models.User
	err = database.DB.Where("email = ?", identity.Email).First(&user).Error
	switch {
	case err == nil:
		// Backfill identity fields the account may not have yet.
		updates := map[string]interface{}{}
		if user.GoogleID == nil && identity.Sub != "" {
			updates["google_id"] = identity.Sub
		}
		if user.ProfilePicture == nil && identity.Picture != "" {
			updates["profile_picture"] = identity.Picture
		}
		if len(updates) > 0 {
			database.DB.Model(&user).Updates(updates)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		user = models.User{
			Name:    identity.Name,
			Email:   identity.Email,
			IsAdmin: isAdminEmail(identity.Email),
		}
		if identity.Sub != "" {
			user.GoogleID = &identity.Sub
		}
		if identity.Picture != "" {
			user.ProfilePicture = &identity.Picture
		}
		if err := database.DB.Create(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}
		logrus.WithFields(logrus.Fields{"user_id": user.ID, "email": user.Email}).Info("New user signed up via Google")
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up user"})
		return
	}

	if !user.IsActive {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Account is deactivated"})
		return
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"user":         user,
	})
}

// Me godoc
// @Summary Get the authenticated user's profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Profile with skills"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /api/v1/auth/me [get]
func Me(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var user models.User
	if err := database.DB.Preload("Skills").First(&user, userID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// UpdateMe godoc
// @Summary Update the authenticated user's profile
// @Description Updates the editable profile fields. Omitted fields are left unchanged.
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body UpdateProfileInput true "Profile fields"
// @Success 200 {object} map[string]interface{} "Updated profile"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /api/v1/auth/me [put]
func UpdateMe(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch profile"})
		return
	}

	if input.Name != nil && *input.Name != "" {
		user.Name = *input.Name
	}
	if input.Bio != nil {
		user.Bio = input.Bio
	}
	if input.Department != nil {
		user.Department = input.Department
	}
	if input.Year != nil {
		user.Year = input.Year
	}
	if input.RollNumber != nil {
		user.RollNumber = input.RollNumber
	}
	if input.Linkedin != nil {
		user.Linkedin = input.Linkedin
	}
	if input.Github != nil {
		user.Github = input.Github
	}

	if err := database.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
