package ffcalc

type adpResponse struct {
	Players []adpPlayerResponse `json:"players"`
}

type adpPlayerResponse struct {
	PlayerID int     `json:"player_id"`
	Name     string  `json:"name"`
	Position string  `json:"position"`
	Team     string  `json:"team"`
	ADP      float64 `json:"adp"`
}
