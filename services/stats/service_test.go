package stats

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	quest "github.com/Flexibelstudio/quester-backend/repos/quest"
)

func testContext() *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	return c
}

func TestOverviewEmptyStore(t *testing.T) {
	service := NewStatsService(quest.NewMemoryStore())
	c := testContext()

	overview, err := service.GetOverview(c)
	require.Nil(t, err)

	assert.Equal(t, 0, overview.Events)
	assert.Equal(t, 0, overview.Users)
	assert.Empty(t, overview.EventsByTier)
}

func TestOverviewCounts(t *testing.T) {
	store := quest.NewMemoryStore()
	service := NewStatsService(store)
	c := testContext()

	store.SaveUser(c, quest.UserProfile{ID: "user-1", Tier: quest.TierCreator})
	store.SaveUser(c, quest.UserProfile{ID: "user-2", Tier: quest.TierScout})

	store.Save(c, quest.EventConfiguration{
		ID:      "evt-1",
		OwnerID: "user-1",
		Status:  quest.StatusActive,
		Results: []quest.Result{{ParticipantID: "p1"}, {ParticipantID: "p2"}},
	})
	store.Save(c, quest.EventConfiguration{
		ID:      "evt-2",
		OwnerID: "user-2",
		Status:  quest.StatusDraft,
	})
	store.Save(c, quest.EventConfiguration{
		ID:         "tpl-1",
		OwnerID:    "user-1",
		IsTemplate: true,
	})

	store.SaveLead(c, quest.Lead{ID: "lead-1"})

	overview, err := service.GetOverview(c)
	require.Nil(t, err)

	assert.Equal(t, 2, overview.Events)
	assert.Equal(t, 1, overview.ActiveEvents)
	assert.Equal(t, 1, overview.Templates, "templates are counted apart from events")
	assert.Equal(t, 2, overview.ResultsLogged)
	assert.Equal(t, 2, overview.Users)
	assert.Equal(t, 1, overview.Leads)
	assert.Equal(t, 1, overview.EventsByTier[quest.TierCreator])
	assert.Equal(t, 1, overview.EventsByTier[quest.TierScout])
}
