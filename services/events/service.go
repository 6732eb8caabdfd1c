package events

import (
	"errors"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/samborkent/uuidv7"

	access "github.com/Flexibelstudio/quester-backend/pkg/accessCode"
	timehelper "github.com/Flexibelstudio/quester-backend/pkg/timeHelper"
	"github.com/Flexibelstudio/quester-backend/repos/geocode"
	quest "github.com/Flexibelstudio/quester-backend/repos/quest"
	"github.com/Flexibelstudio/quester-backend/repos/storage"
)

var (
	ErrForbidden  = errors.New("not the owner of this event")
	ErrIncomplete = errors.New("identity fields incomplete")
	ErrNotReady   = errors.New("event has unplaced checkpoints")
	ErrBadAccess  = errors.New("not valid access code")
)

type EventsService struct {
	store          quest.Store
	geocodeService *geocode.Service
	uploader       storage.Uploader
}

func NewEventsService(store quest.Store, geocodeService *geocode.Service, uploader storage.Uploader) *EventsService {
	return &EventsService{
		store:          store,
		geocodeService: geocodeService,
		uploader:       uploader,
	}
}

// List returns events through the caller's lens. Private events are
// included only when the caller lists their own, or holds the admin
// role; for anyone else the include_private request degrades to the
// public view. ownerID is an untrusted filter, never an identity.
func (s *EventsService) List(c *gin.Context, callerID, ownerID string, includePrivate bool) ([]quest.EventConfiguration, error) {
	if includePrivate {
		allowed := callerID != "" && (ownerID == callerID || s.isAdmin(c, callerID))
		if !allowed {
			includePrivate = false
		}
	}
	return s.store.GetAll(c, ownerID, includePrivate)
}

func (s *EventsService) Get(c *gin.Context, id string) (*quest.EventConfiguration, error) {
	return s.store.Get(c, id)
}

func (s *EventsService) GetParticipated(c *gin.Context, userID string) ([]quest.EventConfiguration, error) {
	return s.store.GetParticipated(c, userID)
}

// Save validates, normalizes and persists an event for the given user.
// New records get an id and count against the owner's created-events
// counter; existing records require ownership or the admin role.
func (s *EventsService) Save(c *gin.Context, userID string, event quest.EventConfiguration) (*quest.EventConfiguration, error) {
	if !IdentityComplete(event) {
		return nil, ErrIncomplete
	}

	isNew := event.ID == ""
	if isNew {
		event.ID = uuidv7.New().String()
		event.OwnerID = userID
	} else {
		existing, err := s.store.Get(c, event.ID)
		if err != nil && err != quest.ErrNotFound {
			return nil, err
		}
		if err == nil && existing.OwnerID != userID && !s.isAdmin(c, userID) {
			return nil, ErrForbidden
		}
		if err == quest.ErrNotFound {
			isNew = true
			if event.OwnerID == "" {
				event.OwnerID = userID
			}
		}
	}

	normalize(&event)
	if event.Status == quest.StatusActive && !ReadyForPlay(event) {
		return nil, ErrNotReady
	}
	s.geocodeCities(c, &event)

	if err := s.store.Save(c, event); err != nil {
		return nil, err
	}

	if isNew {
		if user, err := s.store.GetUser(c, userID); err == nil {
			user.CreatedEvents++
			if err := s.store.SaveUser(c, *user); err != nil {
				log.Printf("Failed to bump created-events counter for %s: %v\n", userID, err)
			}
		}
	}

	return &event, nil
}

func (s *EventsService) Delete(c *gin.Context, userID, id string) error {
	event, err := s.store.Get(c, id)
	if err != nil {
		return err
	}
	if event.OwnerID != userID && !s.isAdmin(c, userID) {
		return ErrForbidden
	}
	return s.store.Delete(c, id)
}

func (s *EventsService) AppendResult(c *gin.Context, eventID string, result quest.Result) error {
	if result.FinishedAt == "" {
		result.FinishedAt = timehelper.NowString()
	}
	return s.store.AppendResult(c, eventID, result)
}

// EnsureProfile creates the user profile on first authentication. Role
// defaults to user, tier to SCOUT.
func (s *EventsService) EnsureProfile(c *gin.Context, userID, name, email string) (*quest.UserProfile, error) {
	user, err := s.store.GetUser(c, userID)
	if err == nil {
		return user, nil
	}
	if err != quest.ErrNotFound {
		return nil, err
	}

	created := quest.UserProfile{
		ID:    userID,
		Name:  name,
		Email: email,
		Tier:  quest.TierScout,
		Role:  quest.RoleUser,
	}
	if err := s.store.SaveUser(c, created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UploadCover stores a cover image and points the event at the returned
// reference. The reference may be session-local when the blob backend is
// down; the event is updated either way.
func (s *EventsService) UploadCover(c *gin.Context, userID, eventID string, data []byte, contentType string) (*storage.UploadResult, error) {
	event, err := s.store.Get(c, eventID)
	if err != nil {
		return nil, err
	}
	if event.OwnerID != userID && !s.isAdmin(c, userID) {
		return nil, ErrForbidden
	}

	result := s.uploader.Upload(c, fmt.Sprintf("covers/%s", eventID), data, contentType)
	if !result.Durable {
		log.Printf("Cover upload for %s degraded to a session-local reference\n", eventID)
	}

	event.CoverImageURL = result.URL
	if err := s.store.Save(c, *event); err != nil {
		return nil, err
	}
	return &result, nil
}

// ResolveAccess decodes an access code and checks it against the code
// stored on the event. Returns the event on success.
func (s *EventsService) ResolveAccess(c *gin.Context, code string) (*quest.EventConfiguration, error) {
	eventID, _, err := access.Decode(code)
	if err != nil {
		return nil, ErrBadAccess
	}

	event, err := s.store.Get(c, eventID)
	if err != nil {
		return nil, ErrBadAccess
	}
	if event.IsPublic || event.AccessCode != code {
		return nil, ErrBadAccess
	}
	return event, nil
}

func (s *EventsService) isAdmin(c *gin.Context, userID string) bool {
	user, err := s.store.GetUser(c, userID)
	return err == nil && user.Role == quest.RoleAdmin
}

// normalize applies the record invariants: a locked event is never
// public, an access code exists exactly when the event is private, every
// result's participant appears in the participant set, and a couple of
// presentation defaults.
func normalize(event *quest.EventConfiguration) {
	if event.IsLockedByAdmin {
		event.IsPublic = false
	}
	if event.IsPublic {
		event.AccessCode = ""
	} else if event.AccessCode == "" {
		event.AccessCode = access.GenerateCode(event.ID)
	}
	if event.Status == "" {
		event.Status = quest.StatusDraft
	}
	if event.LeaderboardMode == "" {
		event.LeaderboardMode = quest.LeaderboardGlobal
	}
	for _, result := range event.Results {
		event.ParticipantIDs = quest.AddParticipant(event.ParticipantIDs, result.ParticipantID)
	}
}

// geocodeCities fills missing start/finish coordinates from the free-text
// city names. Lookup failure degrades to the hardcoded default and never
// blocks the save.
func (s *EventsService) geocodeCities(c *gin.Context, event *quest.EventConfiguration) {
	if s.geocodeService == nil {
		return
	}
	if event.StartCity != "" && event.StartLocation.Lat == 0 && event.StartLocation.Lng == 0 {
		event.StartLocation.Lat, event.StartLocation.Lng = s.geocodeService.LookupOrDefault(c, event.StartCity)
	}
	if event.FinishCity != "" && event.FinishLocation.Lat == 0 && event.FinishLocation.Lng == 0 {
		event.FinishLocation.Lat, event.FinishLocation.Lng = s.geocodeService.LookupOrDefault(c, event.FinishCity)
	}
}
