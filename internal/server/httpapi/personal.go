package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) getPersonalInfo(c *gin.Context) {
	info, err := s.personal.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, "personal info", err)
		return
	}
	c.JSON(http.StatusOK, info)
}

// setPersonalInfo accepts either a single {"key": ..., "value": ...} pair or
// a flat multi-pair object, merging into the stored mapping either way.
func (s *Server) setPersonalInfo(c *gin.Context) {
	var body map[string]string
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c)
		return
	}

	key, hasKey := body["key"]
	value, hasValue := body["value"]
	if hasKey && hasValue && len(body) == 2 {
		if err := s.personal.Set(c.Request.Context(), key, value); err != nil {
			respondError(c, "personal info", err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"key": key, "value": value})
		return
	}

	if err := s.personal.SetAll(c.Request.Context(), body); err != nil {
		respondError(c, "personal info", err)
		return
	}
	c.JSON(http.StatusCreated, body)
}
