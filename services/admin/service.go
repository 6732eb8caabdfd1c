package admin

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/samborkent/uuidv7"

	timehelper "github.com/Flexibelstudio/quester-backend/pkg/timeHelper"
	quest "github.com/Flexibelstudio/quester-backend/repos/quest"
	resend "github.com/Flexibelstudio/quester-backend/repos/resend"
)

var ErrUnknownRole = errors.New("unknown role")
var ErrUnknownTier = errors.New("unknown tier")

// AdminService is the system back office. Everything here runs behind the
// admin middleware except lead capture, which the public site posts to.
type AdminService struct {
	store         quest.Store
	resendService *resend.Service
}

func NewAdminService(store quest.Store, resendService *resend.Service) *AdminService {
	return &AdminService{
		store:         store,
		resendService: resendService,
	}
}

func (s *AdminService) ListAllEvents(c *gin.Context) ([]quest.EventConfiguration, error) {
	return s.store.GetAll(c, "", true)
}

// LockEvent forces an event private regardless of ownership. The
// visibility it had is recorded on the record so unlock can restore it.
func (s *AdminService) LockEvent(c *gin.Context, eventID string) (*quest.EventConfiguration, error) {
	event, err := s.store.Get(c, eventID)
	if err != nil {
		return nil, err
	}

	event.LockByAdmin()

	if err := s.store.Save(c, *event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *AdminService) UnlockEvent(c *gin.Context, eventID string) (*quest.EventConfiguration, error) {
	event, err := s.store.Get(c, eventID)
	if err != nil {
		return nil, err
	}

	event.UnlockByAdmin()

	if err := s.store.Save(c, *event); err != nil {
		return nil, err
	}
	return event, nil
}

// DeleteEvent removes any event regardless of ownership. The confirmation
// step lives in the caller; by the time this runs the decision is made.
func (s *AdminService) DeleteEvent(c *gin.Context, eventID string) error {
	return s.store.Delete(c, eventID)
}

func (s *AdminService) ListUsers(c *gin.Context) ([]quest.UserProfile, error) {
	return s.store.ListUsers(c)
}

func (s *AdminService) SetUserRole(c *gin.Context, userID, role string) (*quest.UserProfile, error) {
	if role != quest.RoleUser && role != quest.RoleAdmin {
		return nil, ErrUnknownRole
	}

	user, err := s.store.GetUser(c, userID)
	if err != nil {
		return nil, err
	}

	user.Role = role
	if err := s.store.SaveUser(c, *user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AdminService) SetUserTier(c *gin.Context, userID, tier string) (*quest.UserProfile, error) {
	if _, err := s.store.GetTierConfig(c, tier); err != nil {
		if err == quest.ErrNotFound {
			return nil, ErrUnknownTier
		}
		return nil, err
	}

	user, err := s.store.GetUser(c, userID)
	if err != nil {
		return nil, err
	}

	user.Tier = tier
	if err := s.store.SaveUser(c, *user); err != nil {
		return nil, err
	}

	if tier != quest.TierScout {
		go s.resendService.SendTierUpgradeNotification(c, user.Email, tier)
	}
	return user, nil
}

func (s *AdminService) DeleteUser(c *gin.Context, userID string) error {
	return s.store.DeleteUser(c, userID)
}

// CaptureLead stores a sales contact from the public site and notifies
// the back office asynchronously.
func (s *AdminService) CaptureLead(c *gin.Context, request resend.LeadRequest) (*quest.Lead, error) {
	lead := quest.Lead{
		ID:        uuidv7.New().String(),
		Name:      request.Name,
		Email:     request.Email,
		Company:   request.Company,
		Message:   request.Message,
		CreatedAt: timehelper.NowString(),
	}

	if err := s.store.SaveLead(c, lead); err != nil {
		return nil, err
	}

	go s.resendService.SendLeadNotification(c, request)
	return &lead, nil
}

func (s *AdminService) ListLeads(c *gin.Context) ([]quest.Lead, error) {
	return s.store.ListLeads(c)
}

func (s *AdminService) DeleteLead(c *gin.Context, leadID string) error {
	return s.store.DeleteLead(c, leadID)
}

// GetSystemConfig returns the global toggles, falling back to defaults
// when nothing has been stored yet.
func (s *AdminService) GetSystemConfig(c *gin.Context) (*quest.SystemConfig, error) {
	config, err := s.store.GetSystemConfig(c)
	if err == quest.ErrNotFound {
		return &quest.SystemConfig{SignupsOpen: true, AssistantEnabled: true}, nil
	}
	if err != nil {
		return nil, err
	}
	return config, nil
}

func (s *AdminService) UpdateSystemConfig(c *gin.Context, config quest.SystemConfig) error {
	if err := s.store.SaveSystemConfig(c, config); err != nil {
		return err
	}
	log.Printf("System config updated: seasonal=%s signups=%t\n", config.SeasonalMode, config.SignupsOpen)
	return nil
}
