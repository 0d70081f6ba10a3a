package players

// PlayerInfo is a player profile from the search or people endpoint.
type PlayerInfo struct {
	ID               int    `json:"id"`
	FullName         string `json:"full_name"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	Active           bool   `json:"active"`
	PrimaryNumber    string `json:"primary_number"`
	Height           string `json:"height"`
	Weight           int    `json:"weight"`
	BirthDate        string `json:"birth_date"`
	Age              int    `json:"age"`
	MLBDebutDate     string `json:"mlb_debut_date"`
	Position         string `json:"position"`
	PositionName     string `json:"position_name"`
	Bats             string `json:"bats"`
	Throws           string `json:"throws"`
	TeamID           int    `json:"team_id"`
	TeamName         string `json:"team"`
	TeamAbbreviation string `json:"team_abbreviation"`
}

// BattingStats is one season's batting line. Rate stats carry the API's
// pre-formatted strings and are never recomputed.
type BattingStats struct {
	Season           string `json:"season"`
	TeamName         string `json:"team_name"`
	GamesPlayed      int    `json:"games_played"`
	AtBats           int    `json:"at_bats"`
	PlateAppearances int    `json:"plate_appearances"`
	Runs             int    `json:"runs"`
	Hits             int    `json:"hits"`
	Doubles          int    `json:"doubles"`
	Triples          int    `json:"triples"`
	HomeRuns         int    `json:"home_runs"`
	RBI              int    `json:"rbi"`
	StolenBases      int    `json:"stolen_bases"`
	Walks            int    `json:"walks"`
	Strikeouts       int    `json:"strikeouts"`
	AVG              string `json:"avg"`
	OBP              string `json:"obp"`
	SLG              string `json:"slg"`
	OPS              string `json:"ops"`
}

// PitchingStats is one season's pitching line.
type PitchingStats struct {
	Season         string `json:"season"`
	TeamName       string `json:"team_name"`
	GamesPlayed    int    `json:"games_played"`
	GamesStarted   int    `json:"games_started"`
	Wins           int    `json:"wins"`
	Losses         int    `json:"losses"`
	ERA            string `json:"era"`
	InningsPitched string `json:"innings_pitched"`
	Hits           int    `json:"hits"`
	Runs           int    `json:"runs"`
	EarnedRuns     int    `json:"earned_runs"`
	HomeRuns       int    `json:"home_runs"`
	Strikeouts     int    `json:"strikeouts"`
	Walks          int    `json:"walks"`
	Saves          int    `json:"saves"`
	Holds          int    `json:"holds"`
	WHIP           string `json:"whip"`
	StrikeoutsPer9 string `json:"strikeouts_per_9"`
	WalksPer9      string `json:"walks_per_9"`
}

// PlayerStats aggregates a profile with its season stat lines. Batting and
// pitching are nil when the season has no split for that group.
type PlayerStats struct {
	Player   PlayerInfo     `json:"player"`
	Batting  *BattingStats  `json:"batting"`
	Pitching *PitchingStats `json:"pitching"`
}

// SearchResponse is the JSON payload for the player command.
type SearchResponse struct {
	Players []PlayerInfo `json:"players"`
}
