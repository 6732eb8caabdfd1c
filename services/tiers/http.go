package tiers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	quest "github.com/Flexibelstudio/quester-backend/repos/quest"
)

// Router is the interface for a router.
type Router interface {
	GET(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	PUT(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	Use(middleware ...gin.HandlerFunc) gin.IRoutes
}

// Tiers is the interface for the tier quota table.
type Tiers interface {
	Get(c *gin.Context, tier string) (*quest.TierConfig, error)
	List(c *gin.Context) ([]quest.TierConfig, error)
	Update(c *gin.Context, tier string, patch TierPatch) (*quest.TierConfig, error)
}

// HTTPOptions contains all the options needed for the HTTP handler.
type HTTPOptions struct {

	// The service we provide the HTTP transport for.
	Service Tiers

	// Reads go on the public router: the pricing page needs them before
	// sign-in.
	Router Router

	// Updates are back-office only.
	AdminRouter Router
}

// NewHTTPHandler creates a new HTTP handler.
func NewHTTPHandler(opts HTTPOptions) {
	h := &httpHandler{opts}
	opts.Router.GET("/tiers", h.listHandler)
	opts.Router.GET("/tiers/:tier", h.getHandler)
	opts.AdminRouter.PUT("/tiers/:tier", h.updateHandler)
}

type httpHandler struct {
	HTTPOptions
}

func (s *httpHandler) listHandler(c *gin.Context) {
	configs, err := s.Service.List(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, gin.H{"tiers": configs})
}

func (s *httpHandler) getHandler(c *gin.Context) {
	config, err := s.Service.Get(c, c.Param("tier"))
	if err == quest.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown tier"})
		c.Abort()
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, config)
}

func (s *httpHandler) updateHandler(c *gin.Context) {
	var patch TierPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return
	}

	config, err := s.Service.Update(c, c.Param("tier"), patch)
	if err == quest.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown tier"})
		c.Abort()
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, config)
}
