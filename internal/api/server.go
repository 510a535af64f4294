package api

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"diary/internal/service"
)

// Server is the local HTTP interface over the journal services. Handlers are
// thin: all rules live in the service layer.
type Server struct {
	tasks         *service.TaskService
	shows         *service.ShowService
	books         *service.BookService
	learning      *service.LearningService
	notifications *service.NotificationService
	overview      *service.OverviewService
	stats         *service.StatsService
}

func NewServer(
	tasks *service.TaskService,
	shows *service.ShowService,
	books *service.BookService,
	learning *service.LearningService,
	notifications *service.NotificationService,
	overview *service.OverviewService,
	stats *service.StatsService,
) *Server {
	return &Server{
		tasks:         tasks,
		shows:         shows,
		books:         books,
		learning:      learning,
		notifications: notifications,
		overview:      overview,
		stats:         stats,
	}
}

// Router builds the Gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/tasks", s.listTasks)
	router.POST("/tasks", s.createTask)
	router.GET("/tasks/:id", s.getTask)
	router.PATCH("/tasks/:id", s.updateTask)
	router.DELETE("/tasks/:id", s.deleteTask)
	router.POST("/tasks/:id/toggle", s.toggleTask)

	router.GET("/shows", s.listShows)
	router.POST("/shows", s.createShow)
	router.GET("/shows/:id", s.getShow)
	router.PATCH("/shows/:id", s.updateShow)
	router.DELETE("/shows/:id", s.deleteShow)
	router.POST("/shows/:id/advance", s.advanceShow)
	router.POST("/shows/:id/new-season", s.newSeason)

	router.GET("/books", s.listBooks)
	router.POST("/books", s.createBook)
	router.GET("/books/:id", s.getBook)
	router.PATCH("/books/:id", s.updateBook)
	router.DELETE("/books/:id", s.deleteBook)
	router.POST("/books/:id/pages", s.addBookPages)

	router.GET("/learning", s.listLearning)
	router.POST("/learning", s.createLearning)
	router.PATCH("/learning/:id", s.updateLearning)
	router.DELETE("/learning/:id", s.deleteLearning)

	router.GET("/notifications", s.listNotifications)
	router.GET("/notifications/unread", s.listUnreadNotifications)
	router.POST("/notifications/refresh", s.refreshNotifications)
	router.POST("/notifications/read-all", s.markAllNotificationsRead)
	router.DELETE("/notifications/read", s.deleteReadNotifications)
	router.POST("/notifications/:id/read", s.markNotificationRead)
	router.POST("/notifications/:id/unread", s.markNotificationUnread)
	router.DELETE("/notifications/:id", s.deleteNotification)

	router.GET("/search", s.search)
	router.GET("/calendar/:date", s.calendarDay)
	router.GET("/stats", s.statsSummary)

	return router
}

// respondErr maps service errors onto HTTP statuses: validation failures are
// the caller's fault, missing records on reads are 404, anything else is a
// storage failure.
func respondErr(c *gin.Context, err error) {
	var validation *service.ValidationError
	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Error()})
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
