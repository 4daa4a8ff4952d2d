package api

import (
	"errors"   // Error inspection
	"net/http" // HTTP status codes

	"citizen_registry/internal/metrics" // Login failure counter
	"citizen_registry/internal/service" // Auth service

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// LoginRequest is the body of POST /api/auth/login
type LoginRequest struct {
	Username string `json:"username" binding:"required"` // Username must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// UserResponse is the public view of an authenticated user
type UserResponse struct {
	ID       uint    `json:"id"`
	Username string  `json:"username"`
	Role     string  `json:"role"`
	FullName string  `json:"fullName"`
	Email    *string `json:"email"`
}

// LoginResponse is returned on successful authentication
type LoginResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
	Token   string       `json:"token"` // JWT token
}

// LoginHandler authenticates a user and returns a JWT token
func LoginHandler(auth *service.AuthService, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
			return
		}

		session, err := auth.Authenticate(c.Request.Context(), req.Username, req.Password)
		if err != nil {
			if errors.Is(err, service.ErrInvalidCredentials) {
				m.IncrementLoginFailures()
				logrus.WithFields(logrus.Fields{
					"username": req.Username,
					"ip":       c.ClientIP(),
				}).Warn("Login rejected")
			}
			respondError(c, "login", err)
			return
		}

		user := session.User
		c.JSON(http.StatusOK, LoginResponse{
			Success: true,
			Message: "Login successful",
			User: UserResponse{
				ID:       user.ID,
				Username: user.Username,
				Role:     user.Role,
				FullName: user.FullName,
				Email:    user.Email,
			},
			Token: session.Token,
		})
	}
}
