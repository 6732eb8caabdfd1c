package quickplay

import (
	"github.com/gin-gonic/gin"

	quest "github.com/Flexibelstudio/quester-backend/repos/quest"
)

type QuickplayService struct {
	store quest.Store
}

func NewQuickplayService(store quest.Store) *QuickplayService {
	return &QuickplayService{store: store}
}

// Start generates and persists an instant extraction game around the
// caller's position. The caller supplies the position; obtaining it (and
// timing out on it) is the client's problem, generation itself never
// fails.
func (s *QuickplayService) Start(c *gin.Context, userID string, lat, lng float64) (*quest.EventConfiguration, error) {
	event := Generate(lat, lng)
	event.OwnerID = userID
	event.ParticipantIDs = []string{userID}

	if err := s.store.Save(c, event); err != nil {
		return nil, err
	}
	return &event, nil
}
