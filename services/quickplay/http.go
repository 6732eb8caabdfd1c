package quickplay

import (
	"net/http"

	auth "firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"

	quest "github.com/Flexibelstudio/quester-backend/repos/quest"
)

// Router is the interface for a router.
type Router interface {
	POST(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	Use(middleware ...gin.HandlerFunc) gin.IRoutes
}

// Quickplay is the interface for the instant-game service.
type Quickplay interface {
	Start(c *gin.Context, userID string, lat, lng float64) (*quest.EventConfiguration, error)
}

// HTTPOptions contains all the options needed for the HTTP handler.
type HTTPOptions struct {

	// The service we provide the HTTP transport for.
	Service Quickplay

	// The router instance to configure the HTTP routes.
	Router Router
}

// NewHTTPHandler creates a new HTTP handler.
func NewHTTPHandler(opts HTTPOptions) {
	r := opts.Router
	h := &httpHandler{opts}
	r.POST("/start", h.startHandler)
}

type httpHandler struct {
	HTTPOptions
}

// Pointers so a position on the equator or prime meridian passes the
// required check.
type startRequest struct {
	Lat *float64 `json:"lat" binding:"required"`
	Lng *float64 `json:"lng" binding:"required"`
}

func (s *httpHandler) startHandler(c *gin.Context) {
	token := c.MustGet("token").(*auth.Token)

	var request startRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		// No position means no game: the client surfaces a localized
		// geolocation error and does not retry.
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return
	}

	event, err := s.Service.Start(c, token.UID, *request.Lat, *request.Lng)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, event)
}
