package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	quest "github.com/Flexibelstudio/quester-backend/repos/quest"
	resend "github.com/Flexibelstudio/quester-backend/repos/resend"
)

// Router is the interface for a router.
type Router interface {
	GET(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	POST(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	PUT(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	DELETE(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	Use(middleware ...gin.HandlerFunc) gin.IRoutes
}

// Admin is the interface for the back-office service.
type Admin interface {
	ListAllEvents(c *gin.Context) ([]quest.EventConfiguration, error)
	LockEvent(c *gin.Context, eventID string) (*quest.EventConfiguration, error)
	UnlockEvent(c *gin.Context, eventID string) (*quest.EventConfiguration, error)
	DeleteEvent(c *gin.Context, eventID string) error
	ListUsers(c *gin.Context) ([]quest.UserProfile, error)
	SetUserRole(c *gin.Context, userID, role string) (*quest.UserProfile, error)
	SetUserTier(c *gin.Context, userID, tier string) (*quest.UserProfile, error)
	DeleteUser(c *gin.Context, userID string) error
	CaptureLead(c *gin.Context, request resend.LeadRequest) (*quest.Lead, error)
	ListLeads(c *gin.Context) ([]quest.Lead, error)
	DeleteLead(c *gin.Context, leadID string) error
	GetSystemConfig(c *gin.Context) (*quest.SystemConfig, error)
	UpdateSystemConfig(c *gin.Context, config quest.SystemConfig) error
}

// HTTPOptions contains all the options needed for the HTTP handler.
type HTTPOptions struct {

	// The service we provide the HTTP transport for.
	Service Admin

	// The router instance to configure the back-office HTTP routes.
	Router Router

	// Lead capture is posted by the public site, before any sign-in.
	PublicRouter Router
}

// NewHTTPHandler creates a new HTTP handler.
func NewHTTPHandler(opts HTTPOptions) {
	r := opts.Router
	h := &httpHandler{opts}
	r.GET("/events", h.listEventsHandler)
	r.POST("/events/:event_id/lock", h.lockHandler)
	r.POST("/events/:event_id/unlock", h.unlockHandler)
	r.DELETE("/events/:event_id", h.deleteEventHandler)
	r.GET("/users", h.listUsersHandler)
	r.PUT("/users/:user_id/role", h.setRoleHandler)
	r.PUT("/users/:user_id/tier", h.setTierHandler)
	r.DELETE("/users/:user_id", h.deleteUserHandler)
	r.GET("/leads", h.listLeadsHandler)
	r.DELETE("/leads/:lead_id", h.deleteLeadHandler)
	r.GET("/config", h.getConfigHandler)
	r.PUT("/config", h.updateConfigHandler)

	opts.PublicRouter.POST("/leads", h.captureLeadHandler)
}

type httpHandler struct {
	HTTPOptions
}

func (s *httpHandler) listEventsHandler(c *gin.Context) {
	events, err := s.Service.ListAllEvents(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

func (s *httpHandler) lockHandler(c *gin.Context) {
	event, err := s.Service.LockEvent(c, c.Param("event_id"))
	if err == quest.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		c.Abort()
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, event)
}

func (s *httpHandler) unlockHandler(c *gin.Context) {
	event, err := s.Service.UnlockEvent(c, c.Param("event_id"))
	if err == quest.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		c.Abort()
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, event)
}

func (s *httpHandler) deleteEventHandler(c *gin.Context) {
	if err := s.Service.DeleteEvent(c, c.Param("event_id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "event deleted"})
}

func (s *httpHandler) listUsersHandler(c *gin.Context) {
	users, err := s.Service.ListUsers(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

type roleRequest struct {
	Role string `json:"role"`
}

func (s *httpHandler) setRoleHandler(c *gin.Context) {
	var request roleRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return
	}

	user, err := s.Service.SetUserRole(c, c.Param("user_id"), request.Role)
	if err == ErrUnknownRole {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown role"})
		c.Abort()
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, user)
}

type tierRequest struct {
	Tier string `json:"tier"`
}

func (s *httpHandler) setTierHandler(c *gin.Context) {
	var request tierRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return
	}

	user, err := s.Service.SetUserTier(c, c.Param("user_id"), request.Tier)
	if err == ErrUnknownTier {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown tier"})
		c.Abort()
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, user)
}

func (s *httpHandler) deleteUserHandler(c *gin.Context) {
	if err := s.Service.DeleteUser(c, c.Param("user_id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}

func (s *httpHandler) captureLeadHandler(c *gin.Context) {
	var request resend.LeadRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return
	}

	lead, err := s.Service.CaptureLead(c, request)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, lead)
}

func (s *httpHandler) listLeadsHandler(c *gin.Context) {
	leads, err := s.Service.ListLeads(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, gin.H{"leads": leads})
}

func (s *httpHandler) deleteLeadHandler(c *gin.Context) {
	if err := s.Service.DeleteLead(c, c.Param("lead_id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "lead deleted"})
}

func (s *httpHandler) getConfigHandler(c *gin.Context) {
	config, err := s.Service.GetSystemConfig(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, config)
}

func (s *httpHandler) updateConfigHandler(c *gin.Context) {
	var config quest.SystemConfig
	if err := c.ShouldBindJSON(&config); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return
	}

	if err := s.Service.UpdateSystemConfig(c, config); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "config updated"})
}
