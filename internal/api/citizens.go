package api

import (
	"net/http" // HTTP status codes
	"strconv"  // Query parsing

	"citizen_registry/internal/domain"     // Importing domain models
	"citizen_registry/internal/metrics"    // Registration counter
	"citizen_registry/internal/middleware" // Authenticated principal
	"citizen_registry/internal/service"    // Registry service

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// RegisterCitizenRequest is the body of POST /api/citizens
type RegisterCitizenRequest struct {
	NIN           string `json:"nin" binding:"required"`
	FirstName     string `json:"firstName" binding:"required"`
	LastName      string `json:"lastName" binding:"required"`
	Email         string `json:"email"`
	Phone         string `json:"phone" binding:"max=15"`
	DateOfBirth   string `json:"dateOfBirth" binding:"required"` // YYYY-MM-DD
	StateOfOrigin string `json:"stateOfOrigin"`
	LGA           string `json:"lga"`
	Address       string `json:"address"`
	Occupation    string `json:"occupation"`
	Gender        string `json:"gender"`
	MaritalStatus string `json:"maritalStatus"`
}

// ListCitizensResponse is one page of search results
type ListCitizensResponse struct {
	Citizens   []domain.Citizen `json:"citizens"`
	Pagination domain.PageInfo  `json:"pagination"`
}

// ListCitizensHandler searches citizens by name or NIN, one page at a time
func ListCitizensHandler(registry *service.RegistryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, errPage := strconv.Atoi(c.DefaultQuery("page", "1"))     // Requested page
		limit, errLimit := strconv.Atoi(c.DefaultQuery("limit", "10")) // Page size
		if errPage != nil || errLimit != nil {
			respondError(c, "list citizens", service.ErrInvalidPageParameters)
			return
		}

		citizens, info, err := registry.Search(c.Request.Context(), c.Query("search"), page, limit)
		if err != nil {
			respondError(c, "list citizens", err)
			return
		}
		c.JSON(http.StatusOK, ListCitizensResponse{Citizens: citizens, Pagination: info})
	}
}

// RegisterCitizenHandler creates a citizen record
func RegisterCitizenHandler(registry *service.RegistryService, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterCitizenRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "NIN, first name, last name and a valid date of birth are required"})
			return
		}
		dob, err := domain.ParseDate(req.DateOfBirth)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Date of birth must be in YYYY-MM-DD format"})
			return
		}

		citizen, err := registry.Register(c.Request.Context(), service.RegisterCitizenInput{
			NIN:           req.NIN,
			FirstName:     req.FirstName,
			LastName:      req.LastName,
			Email:         req.Email,
			Phone:         req.Phone,
			DateOfBirth:   dob,
			StateOfOrigin: req.StateOfOrigin,
			LGA:           req.LGA,
			Address:       req.Address,
			Occupation:    req.Occupation,
			Gender:        req.Gender,
			MaritalStatus: req.MaritalStatus,
		})
		if err != nil {
			respondError(c, "register citizen", err)
			return
		}

		m.IncrementCitizensRegistered()
		fields := logrus.Fields{"citizen_id": citizen.ID}
		if p, ok := middleware.PrincipalFrom(c); ok {
			fields["registered_by"] = p.Username
		}
		logrus.WithFields(fields).Info("Citizen registered")

		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "Citizen registered successfully",
			"citizen": citizen,
		})
	}
}

// GetCitizenHandler returns the citizen with the NIN in the path
func GetCitizenHandler(registry *service.RegistryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		citizen, err := registry.GetByIdentifier(c.Request.Context(), c.Param("nin"))
		if err != nil {
			respondError(c, "get citizen", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"citizen": citizen})
	}
}
