package statsapi

// Raw response shapes for the MLB Stats API. Absent fields decode to Go
// zero values; optional subtrees use pointers where presence itself is
// meaningful (current play, matchup, base runners).

type scheduleResponse struct {
	Dates []scheduleDate `json:"dates"`
}

type scheduleDate struct {
	Date  string         `json:"date"`
	Games []scheduleGame `json:"games"`
}

type scheduleGame struct {
	GamePk   int           `json:"gamePk"`
	GameDate string        `json:"gameDate"`
	Status   statusNode    `json:"status"`
	Teams    scheduleTeams `json:"teams"`
	Venue    venueNode     `json:"venue"`
}

type statusNode struct {
	DetailedState string `json:"detailedState"`
}

type scheduleTeams struct {
	Away scheduleSide `json:"away"`
	Home scheduleSide `json:"home"`
}

type scheduleSide struct {
	Team         teamNode   `json:"team"`
	LeagueRecord recordNode `json:"leagueRecord"`
	Score        int        `json:"score"`
}

type teamNode struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}

type recordNode struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
}

type venueNode struct {
	Name string `json:"name"`
}

type liveFeedResponse struct {
	GameData gameDataNode `json:"gameData"`
	LiveData liveDataNode `json:"liveData"`
}

type gameDataNode struct {
	Status   statusNode   `json:"status"`
	Teams    feedTeams    `json:"teams"`
	Venue    venueNode    `json:"venue"`
	Datetime datetimeNode `json:"datetime"`
}

type feedTeams struct {
	Away teamNode `json:"away"`
	Home teamNode `json:"home"`
}

type datetimeNode struct {
	DateTime string `json:"dateTime"`
}

type liveDataNode struct {
	Linescore linescoreNode `json:"linescore"`
	Plays     playsNode     `json:"plays"`
}

type linescoreNode struct {
	CurrentInning int `json:"currentInning"`
	// The feed omits isTopInning before first pitch; absence reads as
	// the top half.
	IsTopInning *bool          `json:"isTopInning"`
	Outs        int            `json:"outs"`
	Teams       linescoreTeams `json:"teams"`
	Innings     []inningNode   `json:"innings"`
}

type linescoreTeams struct {
	Away sideTotals `json:"away"`
	Home sideTotals `json:"home"`
}

type sideTotals struct {
	Runs   int `json:"runs"`
	Hits   int `json:"hits"`
	Errors int `json:"errors"`
}

type inningNode struct {
	Away inningHalf `json:"away"`
	Home inningHalf `json:"home"`
}

type inningHalf struct {
	Runs int `json:"runs"`
}

type playsNode struct {
	CurrentPlay *currentPlay `json:"currentPlay"`
}

type currentPlay struct {
	Count   countNode    `json:"count"`
	Matchup *matchupNode `json:"matchup"`
	Result  resultNode   `json:"result"`
}

type countNode struct {
	Balls   int  `json:"balls"`
	Strikes int  `json:"strikes"`
	Outs    *int `json:"outs"`
}

type matchupNode struct {
	Batter       personNode  `json:"batter"`
	Pitcher      personNode  `json:"pitcher"`
	PostOnFirst  *personNode `json:"postOnFirst"`
	PostOnSecond *personNode `json:"postOnSecond"`
	PostOnThird  *personNode `json:"postOnThird"`
}

type personNode struct {
	ID       int    `json:"id"`
	FullName string `json:"fullName"`
}

type resultNode struct {
	Description string `json:"description"`
	Event       string `json:"event"`
	RBI         int    `json:"rbi"`
	AwayScore   int    `json:"awayScore"`
	HomeScore   int    `json:"homeScore"`
}

type peopleResponse struct {
	People []personDetail `json:"people"`
}

type personDetail struct {
	ID              int          `json:"id"`
	FullName        string       `json:"fullName"`
	FirstName       string       `json:"firstName"`
	LastName        string       `json:"lastName"`
	Active          bool         `json:"active"`
	PrimaryNumber   string       `json:"primaryNumber"`
	Height          string       `json:"height"`
	Weight          int          `json:"weight"`
	BirthDate       string       `json:"birthDate"`
	CurrentAge      int          `json:"currentAge"`
	MLBDebutDate    string       `json:"mlbDebutDate"`
	PrimaryPosition positionNode `json:"primaryPosition"`
	BatSide         codeNode     `json:"batSide"`
	PitchHand       codeNode     `json:"pitchHand"`
	CurrentTeam     teamNode     `json:"currentTeam"`
}

type positionNode struct {
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}

type codeNode struct {
	Code string `json:"code"`
}

type statsResponse struct {
	Stats []statGroup `json:"stats"`
}

type statGroup struct {
	Group  groupNode   `json:"group"`
	Splits []statSplit `json:"splits"`
}

type groupNode struct {
	DisplayName string `json:"displayName"`
}

type statSplit struct {
	Season string   `json:"season"`
	Team   teamNode `json:"team"`
	Stat   statLine `json:"stat"`
}

// statLine is the union of hitting and pitching stat fields; each mapper
// reads only its group's slice of it.
type statLine struct {
	GamesPlayed      int    `json:"gamesPlayed"`
	AtBats           int    `json:"atBats"`
	PlateAppearances int    `json:"plateAppearances"`
	Runs             int    `json:"runs"`
	Hits             int    `json:"hits"`
	Doubles          int    `json:"doubles"`
	Triples          int    `json:"triples"`
	HomeRuns         int    `json:"homeRuns"`
	RBI              int    `json:"rbi"`
	StolenBases      int    `json:"stolenBases"`
	BaseOnBalls      int    `json:"baseOnBalls"`
	StrikeOuts       int    `json:"strikeOuts"`
	AVG              string `json:"avg"`
	OBP              string `json:"obp"`
	SLG              string `json:"slg"`
	OPS              string `json:"ops"`

	GamesStarted      int    `json:"gamesStarted"`
	Wins              int    `json:"wins"`
	Losses            int    `json:"losses"`
	ERA               string `json:"era"`
	InningsPitched    string `json:"inningsPitched"`
	EarnedRuns        int    `json:"earnedRuns"`
	Saves             int    `json:"saves"`
	Holds             int    `json:"holds"`
	WHIP              string `json:"whip"`
	StrikeoutsPer9Inn string `json:"strikeoutsPer9Inn"`
	WalksPer9Inn      string `json:"walksPer9Inn"`
}
