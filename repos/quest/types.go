package quest

// Win conditions.
const (
	WinFastestTime = "fastest_time"
	WinMostPoints  = "most_points"
)

// Checkpoint order policies.
const (
	OrderSequential = "sequential"
	OrderFree       = "free"
)

// Score models.
const (
	ScoreBasic     = "basic"
	ScoreRogaining = "rogaining"
)

// Start modes.
const (
	StartModeMass = "mass_start"
	StartModeSelf = "self_start"
)

// Event statuses.
const (
	StatusDraft     = "draft"
	StatusActive    = "active"
	StatusCompleted = "completed"
)

// Leaderboard modes.
const (
	LeaderboardGlobal  = "global"
	LeaderboardPrivate = "private"
)

// Subscription tiers.
const (
	TierScout   = "SCOUT"
	TierCreator = "CREATOR"
	TierMaster  = "MASTER"
)

// User roles.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type LatLng struct {
	Lat float64 `firestore:"lat" json:"lat"`
	Lng float64 `firestore:"lng" json:"lng"`
}

// Location is a coordinate with an arrival radius. Used for the start and
// finish of an event and for placed checkpoints.
type Location struct {
	Lat          float64 `firestore:"lat" json:"lat"`
	Lng          float64 `firestore:"lng" json:"lng"`
	RadiusMeters float64 `firestore:"radiusMeters" json:"radiusMeters"`
}

type Quiz struct {
	Question     string   `firestore:"question" json:"question"`
	Options      []string `firestore:"options" json:"options"`
	CorrectIndex int      `firestore:"correctIndex" json:"correctIndex"`
}

// Checkpoint is a point of interest in an event. Location is nil only on
// template/blueprint records; a live event needs every checkpoint placed
// before it is playable.
type Checkpoint struct {
	ID            string  `firestore:"id" json:"id"`
	Name          string  `firestore:"name" json:"name"`
	Description   string  `firestore:"description" json:"description"`
	Location      *LatLng `firestore:"location" json:"location"`
	RadiusMeters  float64 `firestore:"radiusMeters" json:"radiusMeters"`
	Mandatory     bool    `firestore:"mandatory" json:"mandatory"`
	Points        int     `firestore:"points" json:"points"`
	Quiz          *Quiz   `firestore:"quiz" json:"quiz,omitempty"`
	Challenge     string  `firestore:"challenge" json:"challenge,omitempty"`
	PhotoRequired bool    `firestore:"photoRequired" json:"photoRequired"`
	TerrainHint   string  `firestore:"terrainHint" json:"terrainHint,omitempty"`
	Color         string  `firestore:"color" json:"color,omitempty"`
}

type Result struct {
	ParticipantID string  `firestore:"participantId" json:"participantId"`
	Name          string  `firestore:"name" json:"name"`
	Points        int     `firestore:"points" json:"points"`
	DurationSec   float64 `firestore:"durationSec" json:"durationSec"`
	FinishedAt    string  `firestore:"finishedAt" json:"finishedAt"`
}

type Rating struct {
	UserID  string `firestore:"userId" json:"userId"`
	Stars   int    `firestore:"stars" json:"stars"`
	Comment string `firestore:"comment" json:"comment,omitempty"`
}

// EventConfiguration is the canonical event record: one quest, race or
// point-collection game, or a reusable template when IsTemplate is set.
type EventConfiguration struct {
	ID      string `firestore:"id" json:"id"`
	OwnerID string `firestore:"ownerId" json:"ownerId"`

	Name          string `firestore:"name" json:"name"`
	Description   string `firestore:"description" json:"description"`
	CoverImageURL string `firestore:"coverImageUrl" json:"coverImageUrl,omitempty"`
	Category      string `firestore:"category" json:"category,omitempty"`
	Language      string `firestore:"language" json:"language,omitempty"`
	EventType     string `firestore:"eventType" json:"eventType,omitempty"`

	StartDateTime    string `firestore:"startDateTime" json:"startDateTime"`
	StartMode        string `firestore:"startMode" json:"startMode"`
	AllowManualStart bool   `firestore:"allowManualStart" json:"allowManualStart"`
	Status           string `firestore:"status" json:"status"`

	WinCondition    string  `firestore:"winCondition" json:"winCondition"`
	CheckpointOrder string  `firestore:"checkpointOrder" json:"checkpointOrder"`
	ScoreModel      string  `firestore:"scoreModel" json:"scoreModel"`
	TimeLimitMin    int     `firestore:"timeLimitMinutes" json:"timeLimitMinutes"`
	ParTimeMin      int     `firestore:"parTimeMinutes" json:"parTimeMinutes"`
	PointsPerMinute float64 `firestore:"pointsPerMinute" json:"pointsPerMinute"`
	Terrain         string  `firestore:"terrain" json:"terrain,omitempty"`

	StartLocation  Location `firestore:"startLocation" json:"startLocation"`
	FinishLocation Location `firestore:"finishLocation" json:"finishLocation"`
	StartCity      string   `firestore:"startCity" json:"startCity,omitempty"`
	FinishCity     string   `firestore:"finishCity" json:"finishCity,omitempty"`

	IsPublic        bool   `firestore:"isPublic" json:"isPublic"`
	AccessCode      string `firestore:"accessCode" json:"accessCode,omitempty"`
	LeaderboardMode string `firestore:"leaderboardMode" json:"leaderboardMode"`
	IsLockedByAdmin bool   `firestore:"isLockedByAdmin" json:"isLockedByAdmin"`
	// WasPublic records the visibility at the moment an admin locked the
	// event, so unlocking can restore it.
	WasPublic bool `firestore:"wasPublic" json:"wasPublic"`

	Checkpoints    []Checkpoint `firestore:"checkpoints" json:"checkpoints"`
	Results        []Result     `firestore:"results" json:"results"`
	Ratings        []Rating     `firestore:"ratings" json:"ratings"`
	ParticipantIDs []string     `firestore:"participantIds" json:"participantIds"`

	IsTemplate bool `firestore:"isTemplate" json:"isTemplate"`
}

// TierConfig holds the quotas and feature flags of one subscription tier.
// Advisory data: callers consult it before an action, nothing in here
// blocks anything.
type TierConfig struct {
	Tier                   string   `firestore:"tier" json:"tier"`
	DisplayName            string   `firestore:"displayName" json:"displayName"`
	PricePerMonth          float64  `firestore:"pricePerMonth" json:"pricePerMonth"`
	MaxActiveRaces         int      `firestore:"maxActiveRaces" json:"maxActiveRaces"`
	MaxCheckpointsPerRace  int      `firestore:"maxCheckpointsPerRace" json:"maxCheckpointsPerRace"`
	MaxParticipantsPerRace int      `firestore:"maxParticipantsPerRace" json:"maxParticipantsPerRace"`
	AllowCloudStorage      bool     `firestore:"allowCloudStorage" json:"allowCloudStorage"`
	AllowWhiteLabel        bool     `firestore:"allowWhiteLabel" json:"allowWhiteLabel"`
	AllowLiveMonitoring    bool     `firestore:"allowLiveMonitoring" json:"allowLiveMonitoring"`
	Features               []string `firestore:"features" json:"features"`
}

type UserProfile struct {
	ID            string `firestore:"id" json:"id"`
	Name          string `firestore:"name" json:"name"`
	Email         string `firestore:"email" json:"email"`
	Tier          string `firestore:"tier" json:"tier"`
	Role          string `firestore:"role" json:"role"`
	CreatedEvents int    `firestore:"createdEvents" json:"createdEvents"`
	AvatarURL     string `firestore:"avatarUrl" json:"avatarUrl,omitempty"`
}

// Lead is a sales contact captured from the public site.
type Lead struct {
	ID        string `firestore:"id" json:"id"`
	Name      string `firestore:"name" json:"name"`
	Email     string `firestore:"email" json:"email"`
	Company   string `firestore:"company" json:"company,omitempty"`
	Message   string `firestore:"message" json:"message,omitempty"`
	CreatedAt string `firestore:"createdAt" json:"createdAt"`
}

// SystemConfig holds global feature toggles unrelated to a single event.
type SystemConfig struct {
	SeasonalMode     string `firestore:"seasonalMode" json:"seasonalMode,omitempty"`
	SignupsOpen      bool   `firestore:"signupsOpen" json:"signupsOpen"`
	MaintenanceNote  string `firestore:"maintenanceNote" json:"maintenanceNote,omitempty"`
	AssistantEnabled bool   `firestore:"assistantEnabled" json:"assistantEnabled"`
}
