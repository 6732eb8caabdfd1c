package admin

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	quest "github.com/Flexibelstudio/quester-backend/repos/quest"
	resend "github.com/Flexibelstudio/quester-backend/repos/resend"
	"github.com/Flexibelstudio/quester-backend/services/tiers"
)

func testContext() *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	return c
}

func newTestService(store quest.Store) *AdminService {
	// Empty credentials turn mail sends into logged no-ops.
	return NewAdminService(store, resend.NewService("", ""))
}

func TestLockPublicEvent(t *testing.T) {
	store := quest.NewMemoryStore()
	service := newTestService(store)
	c := testContext()

	store.Save(c, quest.EventConfiguration{ID: "evt-1", IsPublic: true})

	locked, err := service.LockEvent(c, "evt-1")
	require.Nil(t, err)

	assert.True(t, locked.IsLockedByAdmin)
	assert.False(t, locked.IsPublic, "locking forces the event private")

	stored, _ := store.Get(c, "evt-1")
	assert.True(t, stored.IsLockedByAdmin)
}

func TestUnlockRestoresVisibility(t *testing.T) {
	store := quest.NewMemoryStore()
	service := newTestService(store)
	c := testContext()

	store.Save(c, quest.EventConfiguration{ID: "evt-1", IsPublic: true})

	_, err := service.LockEvent(c, "evt-1")
	require.Nil(t, err)

	unlocked, err := service.UnlockEvent(c, "evt-1")
	require.Nil(t, err)

	assert.False(t, unlocked.IsLockedByAdmin)
	assert.True(t, unlocked.IsPublic)
}

func TestUnlockPrivateEventStaysPrivate(t *testing.T) {
	store := quest.NewMemoryStore()
	service := newTestService(store)
	c := testContext()

	store.Save(c, quest.EventConfiguration{ID: "evt-2", IsPublic: false})

	service.LockEvent(c, "evt-2")
	unlocked, err := service.UnlockEvent(c, "evt-2")
	require.Nil(t, err)

	assert.False(t, unlocked.IsPublic)
}

func TestSetUserTier(t *testing.T) {
	store := quest.NewMemoryStore()
	service := newTestService(store)
	c := testContext()

	require.Nil(t, tiers.NewTiersService(store).Seed(context.Background()))
	store.SaveUser(c, quest.UserProfile{ID: "u1", Email: "u1@example.com", Tier: quest.TierScout})

	user, err := service.SetUserTier(c, "u1", quest.TierMaster)
	require.Nil(t, err)
	assert.Equal(t, quest.TierMaster, user.Tier)

	_, err = service.SetUserTier(c, "u1", "PLATINUM")
	assert.Equal(t, ErrUnknownTier, err)
}

func TestSetUserRole(t *testing.T) {
	store := quest.NewMemoryStore()
	service := newTestService(store)
	c := testContext()

	store.SaveUser(c, quest.UserProfile{ID: "u1", Role: quest.RoleUser})

	user, err := service.SetUserRole(c, "u1", quest.RoleAdmin)
	require.Nil(t, err)
	assert.Equal(t, quest.RoleAdmin, user.Role)

	_, err = service.SetUserRole(c, "u1", "superuser")
	assert.Equal(t, ErrUnknownRole, err)
}

func TestCaptureLead(t *testing.T) {
	store := quest.NewMemoryStore()
	service := newTestService(store)
	c := testContext()

	lead, err := service.CaptureLead(c, resend.LeadRequest{
		Name:    "Eva",
		Email:   "eva@example.com",
		Company: "Friskis",
	})
	require.Nil(t, err)

	assert.NotEmpty(t, lead.ID)
	assert.NotEmpty(t, lead.CreatedAt)

	leads, err := service.ListLeads(c)
	require.Nil(t, err)
	assert.Len(t, leads, 1)

	require.Nil(t, service.DeleteLead(c, lead.ID))
	leads, _ = service.ListLeads(c)
	assert.Empty(t, leads)
}

func TestSystemConfigDefaults(t *testing.T) {
	store := quest.NewMemoryStore()
	service := newTestService(store)
	c := testContext()

	config, err := service.GetSystemConfig(c)
	require.Nil(t, err)
	assert.True(t, config.SignupsOpen)

	require.Nil(t, service.UpdateSystemConfig(c, quest.SystemConfig{SeasonalMode: "halloween"}))

	config, err = service.GetSystemConfig(c)
	require.Nil(t, err)
	assert.Equal(t, "halloween", config.SeasonalMode)
}
