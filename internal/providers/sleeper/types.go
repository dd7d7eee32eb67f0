package sleeper

type userResponse struct {
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
}

type leagueResponse struct {
	LeagueID string `json:"league_id"`
	Name     string `json:"name"`
	DraftID  string `json:"draft_id"`
	Status   string `json:"status"`
	Season   string `json:"season"`
}

type rosterResponse struct {
	RosterID int    `json:"roster_id"`
	OwnerID  string `json:"owner_id"`
}

type draftResponse struct {
	DraftID string `json:"draft_id"`
	Type    string `json:"type"`
	Status  string `json:"status"`
	// StartTime is epoch milliseconds; absent or null when no start is
	// scheduled.
	StartTime  *int64         `json:"start_time"`
	Settings   map[string]int `json:"settings"`
	DraftOrder map[string]int `json:"draft_order"`
}

type pickResponse struct {
	PickNo    int    `json:"pick_no"`
	Round     int    `json:"round"`
	DraftSlot int    `json:"draft_slot"`
	PlayerID  string `json:"player_id"`
	PickedBy  string `json:"picked_by"`
	IsKeeper  bool   `json:"is_keeper"`
}

// playerResponse is one entry of the players map keyed by player id.
// Team defenses carry no full name; their id and team are the team
// abbreviation.
type playerResponse struct {
	PlayerID         string   `json:"player_id"`
	FullName         string   `json:"full_name"`
	Position         string   `json:"position"`
	FantasyPositions []string `json:"fantasy_positions"`
	Team             string   `json:"team"`
	Active           bool     `json:"active"`
	InjuryStatus     string   `json:"injury_status"`
	Age              int      `json:"age"`
}
