package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"diary/internal/repository"
)

func (s *Server) listNotifications(c *gin.Context) {
	filter := repository.NotificationFilter{Type: c.Query("type")}
	switch c.Query("read") {
	case "true":
		read := true
		filter.IsRead = &read
	case "false":
		read := false
		filter.IsRead = &read
	}

	notifications, err := s.notifications.ListAll(c.Request.Context(), filter)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

func (s *Server) listUnreadNotifications(c *gin.Context) {
	notifications, err := s.notifications.ListUnread(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

// refreshNotifications runs a derivation pass immediately, the API analog of
// the per-page-load pass in the original interface.
func (s *Server) refreshNotifications(c *gin.Context) {
	if err := s.notifications.RunPass(c.Request.Context(), time.Now()); err != nil {
		respondErr(c, err)
		return
	}
	notifications, err := s.notifications.ListUnread(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

func (s *Server) markNotificationRead(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := s.notifications.MarkRead(c.Request.Context(), id); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "notification read"})
}

func (s *Server) markNotificationUnread(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := s.notifications.MarkUnread(c.Request.Context(), id); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "notification unread"})
}

func (s *Server) markAllNotificationsRead(c *gin.Context) {
	if err := s.notifications.MarkAllRead(c.Request.Context()); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "all notifications read"})
}

func (s *Server) deleteNotification(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := s.notifications.Delete(c.Request.Context(), id); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "notification deleted"})
}

func (s *Server) deleteReadNotifications(c *gin.Context) {
	if err := s.notifications.DeleteRead(c.Request.Context()); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "read notifications cleared"})
}
