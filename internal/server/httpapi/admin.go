package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/soniwriter/dreamdiary/internal/common"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	admin, pair, err := s.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"message":      "Login successful",
		"user":         gin.H{"username": admin.Username},
		"accessToken":  pair.AccessToken,
		"sessionToken": pair.SessionToken,
	})
}

type refreshRequest struct {
	SessionToken string `json:"sessionToken"`
}

func (s *Server) refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	pair, err := s.auth.Refresh(c.Request.Context(), req.SessionToken)
	if err != nil {
		if errors.Is(err, common.ErrSessionTokenExpired) || errors.Is(err, common.ErrorNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Session expired"})
			return
		}
		respondError(c, "session", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"accessToken":  pair.AccessToken,
		"sessionToken": pair.SessionToken,
	})
}

// createAdmin provisions the default admin account. Calling it again reports
// the existing account instead of failing.
func (s *Server) createAdmin(c *gin.Context) {
	admin, created, err := s.auth.EnsureAdmin(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to create admin user"})
		return
	}

	status := http.StatusOK
	message := "Admin user already exists"
	if created {
		status = http.StatusCreated
		message = "Admin user created successfully"
	}
	c.JSON(status, gin.H{
		"success": true,
		"message": message,
		"admin":   gin.H{"username": admin.Username, "createdAt": admin.CreatedAt},
	})
}

func (s *Server) adminStatus(c *gin.Context) {
	admin, exists, err := s.auth.AdminStatus(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch admin"})
		return
	}

	if !exists {
		c.JSON(http.StatusOK, gin.H{"exists": false, "admin": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"exists": true,
		"admin":  gin.H{"username": admin.Username, "createdAt": admin.CreatedAt},
	})
}

func (s *Server) seed(c *gin.Context) {
	result, err := s.seeder.Reseed(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to seed database", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Database seeded successfully",
		"seeded":  result,
	})
}
