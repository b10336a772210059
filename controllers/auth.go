package controllers

import (
	"errors"
	"net/http"
	"venuefinder-backend/config"
	"venuefinder-backend/middleware"
	"venuefinder-backend/models"
	"venuefinder-backend/services"
	"venuefinder-backend/utils"

	"github.com/gin-gonic/gin"
)

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func userPayload(user *models.User) gin.H {
	return gin.H{
		"id":         user.ID,
		"username":   user.Username,
		"email":      user.Email,
		"full_name":  user.FullName,
		"created_at": user.CreatedAt,
	}
}

func establishSession(c *gin.Context, user *models.User) (string, error) {
	token, err := services.IssueSession(c.Request.Context(), user.ID.String())
	if err != nil {
		return "", err
	}

	maxAge := int(services.SessionTTL().Seconds())
	c.SetCookie(
		middleware.SessionCookieName,
		token,
		maxAge,
		"/",
		"",
		true,
		true,
	)
	return token, nil
}

// Register creates a user and logs them straight in.
func Register(c *gin.Context) {
	var input services.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	authService := services.AuthService{DB: config.DB}
	user, err := authService.Register(input)
	if err != nil {
		var validationErr *services.ValidationError
		switch {
		case errors.As(err, &validationErr):
			utils.RespondWithError(c, http.StatusBadRequest, validationErr.Message)
		case errors.Is(err, services.ErrConflict):
			utils.RespondWithError(c, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create user")
		}
		return
	}

	token, err := establishSession(c, user)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create session")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful",
		"token":   token,
		"user":    userPayload(user),
	})
}

// Login authenticates username/password and issues a session token.
func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	authService := services.AuthService{DB: config.DB}
	user, err := authService.Authenticate(input.Username, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials), errors.Is(err, services.ErrAccountDisabled):
			utils.RespondWithError(c, http.StatusUnauthorized, err.Error())
		default:
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	token, err := establishSession(c, user)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create session")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user":    userPayload(user),
	})
}

// Logout invalidates the caller's session token and clears the cookie.
func Logout(c *gin.Context) {
	tokenValue, exists := c.Get(middleware.ContextSessionToken)
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	if err := services.Sessions.Delete(c.Request.Context(), tokenValue.(string)); err != nil {
		if errors.Is(err, services.ErrSessionNotFound) {
			utils.RespondWithError(c, http.StatusUnauthorized, "Authentication required")
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to end session")
		return
	}

	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", true, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}

// Me returns the authenticated principal's identity fields.
func Me(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", userID).Error; err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found")
		return
	}

	c.JSON(http.StatusOK, userPayload(&user))
}
