package templates

import (
	"github.com/gin-gonic/gin"

	quest "github.com/Flexibelstudio/quester-backend/repos/quest"
)

type TemplatesService struct {
	store quest.Store
}

func NewTemplatesService(store quest.Store) *TemplatesService {
	return &TemplatesService{store: store}
}

// CreateFromEvent instantiates a template from an existing event and
// persists it. With no store registered the whole operation is a no-op;
// callers are expected to guard before invoking.
func (s *TemplatesService) CreateFromEvent(c *gin.Context, userID, eventID, mode string) (*quest.EventConfiguration, error) {
	if s.store == nil {
		return nil, nil
	}

	source, err := s.store.Get(c, eventID)
	if err != nil {
		return nil, err
	}

	template := Instantiate(*source, mode)
	template.OwnerID = userID

	if err := s.store.Save(c, template); err != nil {
		return nil, err
	}
	return &template, nil
}

// ListTemplates returns the caller's reusable templates.
func (s *TemplatesService) ListTemplates(c *gin.Context, userID string) ([]quest.EventConfiguration, error) {
	events, err := s.store.GetAll(c, userID, true)
	if err != nil {
		return nil, err
	}

	var result []quest.EventConfiguration
	for _, event := range events {
		if event.IsTemplate {
			result = append(result, event)
		}
	}
	return result, nil
}
