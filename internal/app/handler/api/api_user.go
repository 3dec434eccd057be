package api

import (
	"errors"
	"net/http"
	"strings"

	"shipsy/internal/app/ds"
	"shipsy/internal/app/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UserRepository interface {
	RegisterUser(user ds.User) (ds.User, error)
	LoginUser(username, password string) (string, error)
	LogoutUser(userID int) error
	GetUserByID(userID int) (*ds.User, error)
	UpdateUser(user ds.User) error
}

type UserHandler struct {
	Repository UserRepository
}

const sessionCookieSeconds = 24 * 60 * 60

// @Summary Register a new user
// @Tags users
// @Accept json
// @Produce json
// @Param user body ds.User true "User info"
// @Success 201 {object} object "message, user"
// @Failure 400 {object} object "message, required"
// @Failure 409 {object} object "already exists"
// @Router /api/users/register [post]
func (h *UserHandler) RegisterUserAPI(c *gin.Context) {
	var user ds.User
	if err := c.BindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	var missing []string
	if strings.TrimSpace(user.Username) == "" {
		missing = append(missing, "username")
	}
	if strings.TrimSpace(user.Email) == "" {
		missing = append(missing, "email")
	}
	if user.Password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"message":  "Validation failed",
			"required": missing,
		})
		return
	}

	registered, err := h.Repository.RegisterUser(user)
	if err != nil {
		if errors.Is(err, repository.ErrUserExists) {
			c.JSON(http.StatusConflict, gin.H{"message": "User already exists"})
			return
		}
		serverError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user":    registered,
	})
}

// @Summary Login
// @Tags users
// @Accept json
// @Produce json
// @Param credentials body object{username=string,password=string} true "Credentials"
// @Success 200 {object} object "message, token"
// @Failure 401 {object} object "invalid credentials"
// @Router /api/users/login [post]
func (h *UserHandler) LoginUserAPI(c *gin.Context) {
	var credentials struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.BindJSON(&credentials); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	token, err := h.Repository.LoginUser(credentials.Username, credentials.Password)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid username or password"})
			return
		}
		serverError(c, err)
		return
	}

	c.SetCookie("jwt", token, sessionCookieSeconds, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
	})
}

// @Summary Logout
// @Tags users
// @Produce json
// @Success 200 {object} object "message"
// @Failure 401 {object} object "auth required"
// @Router /api/users/logout [post]
func (h *UserHandler) LogoutUserAPI(c *gin.Context) {
	userID, ok := contextUserID(c)
	if !ok {
		return
	}

	if err := h.Repository.LogoutUser(userID); err != nil {
		serverError(c, err)
		return
	}

	c.SetCookie("jwt", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}

// @Summary Get own profile
// @Tags users
// @Produce json
// @Success 200 {object} object "message, user"
// @Failure 401 {object} object "auth required"
// @Router /api/users/profile [get]
func (h *UserHandler) GetUserProfileAPI(c *gin.Context) {
	userID, ok := contextUserID(c)
	if !ok {
		return
	}

	user, err := h.Repository.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		serverError(c, err)
		return
	}

	user.Password = ""
	c.JSON(http.StatusOK, gin.H{
		"message": "Profile retrieved successfully",
		"user":    user,
	})
}

// @Summary Update own profile
// @Tags users
// @Accept json
// @Produce json
// @Param user body ds.User true "Profile fields"
// @Success 200 {object} object "message"
// @Failure 401 {object} object "auth required"
// @Router /api/users/profile [put]
func (h *UserHandler) UpdateUserProfileAPI(c *gin.Context) {
	userID, ok := contextUserID(c)
	if !ok {
		return
	}

	var user ds.User
	if err := c.BindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	user.UserID = userID
	// Credentials and role do not change through the profile endpoint.
	user.Password = ""
	user.Role = ""

	if err := h.Repository.UpdateUser(user); err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated"})
}

func contextUserID(c *gin.Context) (int, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return 0, false
	}
	id, ok := v.(int)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return 0, false
	}
	return id, true
}
