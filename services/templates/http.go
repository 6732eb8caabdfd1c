package templates

import (
	"net/http"

	auth "firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"

	quest "github.com/Flexibelstudio/quester-backend/repos/quest"
)

// Router is the interface for a router.
type Router interface {
	GET(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	POST(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	Use(middleware ...gin.HandlerFunc) gin.IRoutes
}

// Templates is the interface for the template service.
type Templates interface {
	CreateFromEvent(c *gin.Context, userID, eventID, mode string) (*quest.EventConfiguration, error)
	ListTemplates(c *gin.Context, userID string) ([]quest.EventConfiguration, error)
}

// HTTPOptions contains all the options needed for the HTTP handler.
type HTTPOptions struct {

	// The service we provide the HTTP transport for.
	Service Templates

	// The router instance to configure the HTTP routes.
	Router Router
}

// NewHTTPHandler creates a new HTTP handler.
func NewHTTPHandler(opts HTTPOptions) {
	r := opts.Router
	h := &httpHandler{opts}
	r.GET("", h.listHandler)
	r.POST("/from/:event_id", h.createHandler)
}

type httpHandler struct {
	HTTPOptions
}

type createRequest struct {
	Mode string `json:"mode"`
}

func (s *httpHandler) listHandler(c *gin.Context) {
	token := c.MustGet("token").(*auth.Token)

	templates, err := s.Service.ListTemplates(c, token.UID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, gin.H{"templates": templates})
}

func (s *httpHandler) createHandler(c *gin.Context) {
	token := c.MustGet("token").(*auth.Token)

	var request createRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return
	}
	if request.Mode != ModeFixed && request.Mode != ModeFlexible {
		c.JSON(http.StatusBadRequest, gin.H{"error": "mode must be fixed or flexible"})
		c.Abort()
		return
	}

	template, err := s.Service.CreateFromEvent(c, token.UID, c.Param("event_id"), request.Mode)
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
	c.JSON(http.StatusOK, template)
}
