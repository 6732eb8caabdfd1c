package events

import (
	"io"
	"net/http"

	auth "firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"

	quest "github.com/Flexibelstudio/quester-backend/repos/quest"
	"github.com/Flexibelstudio/quester-backend/repos/storage"
)

// Router is the interface for a router.
type Router interface {
	GET(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	POST(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	DELETE(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	Use(middleware ...gin.HandlerFunc) gin.IRoutes
}

// Events is the interface for the event configuration service.
type Events interface {
	List(c *gin.Context, callerID, ownerID string, includePrivate bool) ([]quest.EventConfiguration, error)
	Get(c *gin.Context, id string) (*quest.EventConfiguration, error)
	GetParticipated(c *gin.Context, userID string) ([]quest.EventConfiguration, error)
	Save(c *gin.Context, userID string, event quest.EventConfiguration) (*quest.EventConfiguration, error)
	Delete(c *gin.Context, userID, id string) error
	AppendResult(c *gin.Context, eventID string, result quest.Result) error
	EnsureProfile(c *gin.Context, userID, name, email string) (*quest.UserProfile, error)
	UploadCover(c *gin.Context, userID, eventID string, data []byte, contentType string) (*storage.UploadResult, error)
	ResolveAccess(c *gin.Context, code string) (*quest.EventConfiguration, error)
}

// HTTPOptions contains all the options needed for the HTTP handler.
type HTTPOptions struct {

	// The service we provide the HTTP transport for.
	Service Events

	// The router instance to configure the authenticated HTTP routes.
	Router Router

	// The router for routes that need no authentication.
	PublicRouter Router
}

// NewHTTPHandler creates a new HTTP handler.
func NewHTTPHandler(opts HTTPOptions) {
	r := opts.Router
	h := &httpHandler{opts}
	r.GET("", h.listHandler)
	r.GET("/participated", h.participatedHandler)
	r.GET("/me", h.meHandler)
	r.GET("/:event_id", h.getHandler)
	r.GET("/:event_id/archetype", h.archetypeHandler)
	r.POST("", h.saveHandler)
	r.POST("/:event_id/archetype", h.applyArchetypeHandler)
	r.POST("/:event_id/results", h.resultHandler)
	r.POST("/:event_id/cover", h.coverHandler)
	r.DELETE("/:event_id", h.deleteHandler)

	p := opts.PublicRouter
	p.GET("/events", h.publicListHandler)
	p.GET("/access/:access_code", h.accessHandler)
}

type httpHandler struct {
	HTTPOptions
}

func tokenUID(c *gin.Context) string {
	token := c.MustGet("token").(*auth.Token)
	return token.UID
}

func tokenClaim(c *gin.Context, key string) string {
	token := c.MustGet("token").(*auth.Token)
	if value, ok := token.Claims[key].(string); ok {
		return value
	}
	return ""
}

func (s *httpHandler) listHandler(c *gin.Context) {
	ownerID := c.Query("owner")
	includePrivate := c.Query("include_private") == "true"

	events, err := s.Service.List(c, tokenUID(c), ownerID, includePrivate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

func (s *httpHandler) publicListHandler(c *gin.Context) {
	events, err := s.Service.List(c, "", "", false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

func (s *httpHandler) participatedHandler(c *gin.Context) {
	events, err := s.Service.GetParticipated(c, tokenUID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

func (s *httpHandler) meHandler(c *gin.Context) {
	user, err := s.Service.EnsureProfile(c, tokenUID(c), tokenClaim(c, "name"), tokenClaim(c, "email"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, user)
}

func (s *httpHandler) getHandler(c *gin.Context) {
	event, err := s.Service.Get(c, c.Param("event_id"))
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

func (s *httpHandler) archetypeHandler(c *gin.Context) {
	event, err := s.Service.Get(c, c.Param("event_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, gin.H{"archetype": ResolveArchetype(*event)})
}

type archetypeRequest struct {
	Archetype string `json:"archetype"`
}

func (s *httpHandler) applyArchetypeHandler(c *gin.Context) {
	var request archetypeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return
	}

	event, err := s.Service.Get(c, c.Param("event_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		c.Abort()
		return
	}

	if !ApplyArchetype(event, request.Archetype) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown archetype"})
		c.Abort()
		return
	}

	saved, err := s.Service.Save(c, tokenUID(c), *event)
	if err != nil {
		writeSaveError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (s *httpHandler) saveHandler(c *gin.Context) {
	var event quest.EventConfiguration
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return
	}

	saved, err := s.Service.Save(c, tokenUID(c), event)
	if err != nil {
		writeSaveError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

func writeSaveError(c *gin.Context, err error) {
	switch err {
	case ErrIncomplete:
		c.JSON(http.StatusBadRequest, gin.H{"error": "identity fields incomplete", "complete": false})
	case ErrNotReady:
		c.JSON(http.StatusBadRequest, gin.H{"error": "every checkpoint must be placed before activation"})
	case ErrForbidden:
		c.JSON(http.StatusForbidden, gin.H{"error": "not the owner of this event"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
	}
	c.Abort()
}

func (s *httpHandler) resultHandler(c *gin.Context) {
	var result quest.Result
	if err := c.ShouldBindJSON(&result); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		c.Abort()
		return
	}

	if err := s.Service.AppendResult(c, c.Param("event_id"), result); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "result recorded"})
}

func (s *httpHandler) coverHandler(c *gin.Context) {
	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read body"})
		c.Abort()
		return
	}

	result, err := s.Service.UploadCover(c, tokenUID(c), c.Param("event_id"), data, c.ContentType())
	if err == ErrForbidden {
		c.JSON(http.StatusForbidden, gin.H{"error": "not the owner of this event"})
		c.Abort()
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": result.URL, "durable": result.Durable})
}

func (s *httpHandler) deleteHandler(c *gin.Context) {
	err := s.Service.Delete(c, tokenUID(c), c.Param("event_id"))
	if err == ErrForbidden {
		c.JSON(http.StatusForbidden, gin.H{"error": "not the owner of this event"})
		c.Abort()
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "event deleted"})
}

func (s *httpHandler) accessHandler(c *gin.Context) {
	event, err := s.Service.ResolveAccess(c, c.Param("access_code"))
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "not valid access code"})
		c.Abort()
		return
	}
	c.JSON(http.StatusOK, gin.H{"eventId": event.ID})
}
