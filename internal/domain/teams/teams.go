package teams

import (
	"sort"
	"strings"
)

// Team is the canonical team shape carried on games and players.
type Team struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}

// Info is a static reference entry for one of the 30 MLB clubs.
type Info struct {
	ID   int
	Name string
}

// Entry pairs an abbreviation with its reference info. Entries keep a
// fixed declared order so substring lookups resolve deterministically.
type Entry struct {
	Abbreviation string
	Info         Info
}

var entries = []Entry{
	{"ARI", Info{109, "Arizona Diamondbacks"}},
	{"ATL", Info{144, "Atlanta Braves"}},
	{"BAL", Info{110, "Baltimore Orioles"}},
	{"BOS", Info{111, "Boston Red Sox"}},
	{"CHC", Info{112, "Chicago Cubs"}},
	{"CWS", Info{145, "Chicago White Sox"}},
	{"CIN", Info{113, "Cincinnati Reds"}},
	{"CLE", Info{114, "Cleveland Guardians"}},
	{"COL", Info{115, "Colorado Rockies"}},
	{"DET", Info{116, "Detroit Tigers"}},
	{"HOU", Info{117, "Houston Astros"}},
	{"KC", Info{118, "Kansas City Royals"}},
	{"LAA", Info{108, "Los Angeles Angels"}},
	{"LAD", Info{119, "Los Angeles Dodgers"}},
	{"MIA", Info{146, "Miami Marlins"}},
	{"MIL", Info{158, "Milwaukee Brewers"}},
	{"MIN", Info{142, "Minnesota Twins"}},
	{"NYM", Info{121, "New York Mets"}},
	{"NYY", Info{147, "New York Yankees"}},
	{"OAK", Info{133, "Oakland Athletics"}},
	{"PHI", Info{143, "Philadelphia Phillies"}},
	{"PIT", Info{134, "Pittsburgh Pirates"}},
	{"SD", Info{135, "San Diego Padres"}},
	{"SF", Info{137, "San Francisco Giants"}},
	{"SEA", Info{136, "Seattle Mariners"}},
	{"STL", Info{138, "St. Louis Cardinals"}},
	{"TB", Info{139, "Tampa Bay Rays"}},
	{"TEX", Info{140, "Texas Rangers"}},
	{"TOR", Info{141, "Toronto Blue Jays"}},
	{"WSH", Info{120, "Washington Nationals"}},
}

var (
	byAbbreviation   = buildAbbreviationIndex()
	abbreviationByID = buildIDIndex()
)

func buildAbbreviationIndex() map[string]Info {
	m := make(map[string]Info, len(entries))
	for _, e := range entries {
		m[e.Abbreviation] = e.Info
	}
	return m
}

func buildIDIndex() map[int]string {
	m := make(map[int]string, len(entries))
	for _, e := range entries {
		m[e.Info.ID] = e.Abbreviation
	}
	return m
}

// Lookup resolves a team query to its abbreviation and reference info.
// An exact case-insensitive abbreviation match wins; otherwise the first
// declared entry whose full name contains the query case-insensitively.
func Lookup(query string) (string, Info, bool) {
	abbr := strings.ToUpper(strings.TrimSpace(query))
	if info, ok := byAbbreviation[abbr]; ok {
		return abbr, info, true
	}

	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return "", Info{}, false
	}
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Info.Name), needle) {
			return e.Abbreviation, e.Info, true
		}
	}
	return "", Info{}, false
}

// AbbreviationForID returns the abbreviation for a team ID, or "" when the
// ID is not one of the 30 known clubs.
func AbbreviationForID(id int) string {
	return abbreviationByID[id]
}

// All returns the reference entries sorted by abbreviation.
func All() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	sort.Slice(out, func(i, j int) bool { return out[i].Abbreviation < out[j].Abbreviation })
	return out
}
