package stats

// Overview is the aggregate usage snapshot shown in the back office.
type Overview struct {
	Events        int `json:"events"`
	ActiveEvents  int `json:"activeEvents"`
	Templates     int `json:"templates"`
	ResultsLogged int `json:"resultsLogged"`
	Users         int `json:"users"`
	Leads         int `json:"leads"`

	EventsByTier map[string]int `json:"eventsByTier"`
}
