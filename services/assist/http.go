package assist

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Router is the interface for a router.
type Router interface {
	POST(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	Use(middleware ...gin.HandlerFunc) gin.IRoutes
}

// Assist is the interface for the content-generation proxy.
type Assist interface {
	Chat(c *gin.Context, request ChatRequest) (*ChatResponse, error)
}

// HTTPOptions contains all the options needed for the HTTP handler.
type HTTPOptions struct {

	// The service we provide the HTTP transport for.
	Service Assist

	// The router instance to configure the HTTP routes.
	Router Router
}

// NewHTTPHandler creates a new HTTP handler.
func NewHTTPHandler(opts HTTPOptions) {
	r := opts.Router
	h := &httpHandler{opts}
	r.POST("/chat", h.chatHandler)
}

type httpHandler struct {
	HTTPOptions
}

func (s *httpHandler) chatHandler(c *gin.Context) {
	var request ChatRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return
	}

	response, err := s.Service.Chat(c, request)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, response)
}
