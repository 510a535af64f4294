package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"diary/internal/service"
)

func (s *Server) listLearning(c *gin.Context) {
	entries, err := s.learning.List(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"learning_logs": entries})
}

func (s *Server) createLearning(c *gin.Context) {
	var input service.LearningInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	entry, err := s.learning.Create(c.Request.Context(), input, time.Now())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (s *Server) updateLearning(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var update service.LearningUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	entry, err := s.learning.Update(c.Request.Context(), id, update)
	if err != nil {
		respondErr(c, err)
		return
	}
	if entry == nil {
		c.JSON(http.StatusOK, gin.H{"message": "nothing to update"})
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (s *Server) deleteLearning(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := s.learning.Delete(c.Request.Context(), id); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "learning log deleted"})
}
