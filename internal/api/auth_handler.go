package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"alcyxob/fitstack/internal/domain"
	"alcyxob/fitstack/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler holds the authentication service dependency.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// --- Request/Response Structs ---

type RegisterRequest struct {
	ID       string `json:"id" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	Age      *int   `json:"age,omitempty" binding:"omitempty,min=1,max=120"`
}

// UserResponse excludes sensitive info like password hash
type UserResponse struct {
	ID        string    `json:"id"`
	Age       *int      `json:"age,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type LoginRequest struct {
	ID       string `json:"id" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
	// SeededRecords reports how many demo records were backfilled for a
	// first login with no history (0 when seeding is off or unnecessary).
	SeededRecords int `json:"seededRecords"`
}

// --- Handler Methods ---

// Register creates a new user account.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	user, err := h.authService.Register(c.Request.Context(), req.ID, req.Password, req.Age)
	if err != nil {
		if errors.Is(err, service.ErrUserAlreadyExists) {
			abortWithError(c, http.StatusConflict, err.Error())
		} else if errors.Is(err, service.ErrHashingFailed) {
			abortWithError(c, http.StatusInternalServerError, "Could not process registration")
		} else {
			abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred during registration")
		}
		return
	}

	c.JSON(http.StatusCreated, MapUserToResponse(user))
}

// Login authenticates a user and returns a JWT token. When demo seeding is
// enabled, a first login with no history gets demo records backfilled.
func (h *AuthHandler) Login(recordService service.RecordService, seedDemo bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
			return
		}

		token, user, err := h.authService.Login(c.Request.Context(), req.ID, req.Password)
		if err != nil {
			if errors.Is(err, service.ErrAuthenticationFailed) {
				abortWithError(c, http.StatusUnauthorized, err.Error())
			} else if errors.Is(err, service.ErrTokenGeneration) {
				abortWithError(c, http.StatusInternalServerError, "Could not process login")
			} else {
				abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred during login")
			}
			return
		}

		seeded := 0
		if seedDemo {
			seeded, err = recordService.SeedDemoRecords(c.Request.Context(), user.ID)
			if err != nil {
				abortWithError(c, http.StatusInternalServerError, "Could not seed demo records")
				return
			}
		}

		c.JSON(http.StatusOK, LoginResponse{
			Token:         token,
			User:          MapUserToResponse(user),
			SeededRecords: seeded,
		})
	}
}

// MapUserToResponse converts a domain User to a UserResponse DTO.
func MapUserToResponse(user *domain.User) UserResponse {
	if user == nil {
		return UserResponse{}
	}
	return UserResponse{
		ID:        user.ID,
		Age:       user.Age,
		CreatedAt: user.CreatedAt,
	}
}
