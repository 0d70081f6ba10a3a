package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/khaney64/baseball/internal/domain/games"
	"github.com/khaney64/baseball/internal/domain/players"
	"github.com/khaney64/baseball/internal/domain/teams"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func (a *App) renderJSON(v any) int {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(a.Stderr, "Error: Could not encode JSON: %v.\n", err)
		return 1
	}
	fmt.Fprintln(a.Stdout, string(data))
	return 0
}

// formatStartTime renders a short local clock time like "7:10 PM".
func formatStartTime(t *time.Time) string {
	if t == nil {
		return "TBD"
	}
	return t.Format("3:04 PM")
}

// ordinal renders 1 -> "1st", 2 -> "2nd", etc. 11-13 always take "th".
func ordinal(n int) string {
	suffix := "th"
	if n%100 < 11 || n%100 > 13 {
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}

// statusDisplay is the short status cell for the games table.
func statusDisplay(g games.GameSummary) string {
	switch g.Status {
	case games.StatusFinal:
		if g.AwayScore != 0 || g.HomeScore != 0 {
			return fmt.Sprintf("Final (%d-%d)", g.AwayScore, g.HomeScore)
		}
		return "Final"
	case games.StatusInProgress, games.StatusManagerChallenge:
		return "In Progress"
	case games.StatusScheduled, games.StatusPreGame, games.StatusWarmup:
		return formatStartTime(g.StartTime)
	default:
		return g.Status
	}
}

// teamLabel is the short table label, e.g. "PHI Phillies".
func teamLabel(t teams.Team) string {
	name := t.Name
	if parts := strings.Fields(t.Name); len(parts) > 0 {
		name = parts[len(parts)-1]
	}
	return strings.TrimSpace(t.Abbreviation + " " + name)
}

func writeGamesTable(w io.Writer, dateLabel string, summaries []games.GameSummary, multiDay bool) {
	fmt.Fprintf(w, "MLB Games - %s\n", dateLabel)
	fmt.Fprintf(w, "%-17s %-10s %-17s %-10s %-10s %-20s %s\n",
		"Away", "Record", "Home", "Record", "Time", "Status", "Game ID")
	fmt.Fprintln(w, strings.Repeat("-", 95))

	currentDate := ""
	for _, g := range summaries {
		if multiDay && g.DateLabel != "" && g.DateLabel != currentDate {
			if currentDate != "" {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "  %s\n", g.DateLabel)
			currentDate = g.DateLabel
		}

		fmt.Fprintf(w, "%-17s %-10s %-17s %-10s %-10s %-20s %d\n",
			teamLabel(g.AwayTeam), g.AwayRecord,
			teamLabel(g.HomeTeam), g.HomeRecord,
			formatStartTime(g.StartTime), statusDisplay(g), g.GamePk)
	}
}

func writeLiveGame(w io.Writer, g *games.GameStatus) {
	fmt.Fprintf(w, "%s %d  @  %s %d\n",
		teamLabel(g.AwayTeam), g.AwayScore, teamLabel(g.HomeTeam), g.HomeScore)

	if g.Live() {
		half := "Bot"
		if g.InningHalf == "Top" {
			half = "Top"
		}
		outsWord := "outs"
		if g.Outs == 1 {
			outsWord = "out"
		}
		fmt.Fprintf(w, "  %s %s  |  %d %s  |  %d-%d count\n",
			half, ordinal(g.Inning), g.Outs, outsWord, g.Balls, g.Strikes)

		fmt.Fprintf(w, "  Bases: 1B %s  2B %s  3B %s\n",
			baseBox(g.Runners.First), baseBox(g.Runners.Second), baseBox(g.Runners.Third))

		if g.Matchup != nil {
			fmt.Fprintf(w, "  AB: %s  vs  P: %s\n", g.Matchup.BatterName, g.Matchup.PitcherName)
		}
		if g.LastPlay != nil && g.LastPlay.Description != "" {
			fmt.Fprintf(w, "  Last: %s\n", g.LastPlay.Description)
		}
	} else {
		fmt.Fprintf(w, "  Status: %s\n", g.Status)
	}

	fmt.Fprintln(w)
	writeLineScore(w, g)
}

func writeScore(w io.Writer, g *games.GameStatus) {
	header := g.Status
	if g.Status == games.StatusFinal {
		header = "Final"
	}
	fmt.Fprintf(w, "%s: %s %d  @  %s %d\n",
		header, teamLabel(g.AwayTeam), g.AwayScore, teamLabel(g.HomeTeam), g.HomeScore)
	fmt.Fprintln(w)
	writeLineScore(w, g)
}

func baseBox(occupied bool) string {
	if occupied {
		return "[X]"
	}
	return "[ ]"
}

// writeLineScore prints the box-score grid with a minimum of nine inning
// columns. The home cell of the last recorded inning stays "-" while the
// visiting half of that inning is still in progress.
func writeLineScore(w io.Writer, g *games.GameStatus) {
	innings := g.LineScore.Innings
	numInnings := len(innings)
	if numInnings < 9 {
		numInnings = 9
	}

	var header strings.Builder
	header.WriteString("    ")
	for i := 1; i <= numInnings; i++ {
		fmt.Fprintf(&header, "%3d", i)
	}
	header.WriteString("    R  H  E")
	fmt.Fprintln(w, header.String())

	var away strings.Builder
	fmt.Fprintf(&away, "%-4s", g.AwayTeam.Abbreviation)
	for i := 0; i < numInnings; i++ {
		if i < len(innings) {
			fmt.Fprintf(&away, "%3d", innings[i].AwayRuns)
		} else {
			away.WriteString("  -")
		}
	}
	fmt.Fprintf(&away, "  %3d%3d%3d",
		g.LineScore.Away.Runs, g.LineScore.Away.Hits, g.LineScore.Away.Errors)
	fmt.Fprintln(w, away.String())

	var home strings.Builder
	fmt.Fprintf(&home, "%-4s", g.HomeTeam.Abbreviation)
	for i := 0; i < numInnings; i++ {
		switch {
		case i >= len(innings):
			home.WriteString("  -")
		case i == len(innings)-1 && g.LineScore.IsTopInning && g.Live():
			home.WriteString("  -")
		default:
			fmt.Fprintf(&home, "%3d", innings[i].HomeRuns)
		}
	}
	fmt.Fprintf(&home, "  %3d%3d%3d",
		g.LineScore.Home.Runs, g.LineScore.Home.Hits, g.LineScore.Home.Errors)
	fmt.Fprintln(w, home.String())
}

func writeTeamsTable(w io.Writer, entries []teams.Entry) {
	fmt.Fprintf(w, "%-6s %s\n", "Abbr", "Team Name")
	fmt.Fprintln(w, strings.Repeat("-", 35))
	for _, e := range entries {
		fmt.Fprintf(w, "%-6s %s\n", e.Abbreviation, e.Info.Name)
	}
}

func writePlayersTable(w io.Writer, matches []players.PlayerInfo) {
	fmt.Fprintf(w, "%-8s %-24s %-4s %-5s %s\n", "ID", "Name", "Pos", "B/T", "Team")
	fmt.Fprintln(w, strings.Repeat("-", 70))
	for _, p := range matches {
		team := p.TeamName
		if p.TeamAbbreviation != "" {
			team = fmt.Sprintf("%s (%s)", p.TeamName, p.TeamAbbreviation)
		}
		fmt.Fprintf(w, "%-8d %-24s %-4s %-5s %s\n",
			p.ID, p.FullName, p.Position, p.Bats+"/"+p.Throws, team)
	}
}

func writePlayerStats(w io.Writer, stats *players.PlayerStats) {
	p := stats.Player

	number := ""
	if p.PrimaryNumber != "" {
		number = " (#" + p.PrimaryNumber + ")"
	}
	team := p.TeamName
	if p.TeamAbbreviation != "" {
		team = fmt.Sprintf("%s (%s)", p.TeamName, p.TeamAbbreviation)
	}
	fmt.Fprintf(w, "%s%s  %s  %s\n", p.FullName, number, p.Position, team)
	fmt.Fprintf(w, "Bats/Throws: %s/%s   Age: %d   Height: %s   Weight: %d\n",
		p.Bats, p.Throws, p.Age, p.Height, p.Weight)

	if stats.Batting == nil && stats.Pitching == nil {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "No season stats available.")
		return
	}

	if b := stats.Batting; b != nil {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "%s Batting (%s)\n", b.Season, b.TeamName)
		fmt.Fprintf(w, "%4s %5s %4s %4s %4s %4s %4s %4s %4s %4s %4s %6s %6s %6s %6s\n",
			"G", "AB", "R", "H", "2B", "3B", "HR", "RBI", "SB", "BB", "SO", "AVG", "OBP", "SLG", "OPS")
		fmt.Fprintf(w, "%4d %5d %4d %4d %4d %4d %4d %4d %4d %4d %4d %6s %6s %6s %6s\n",
			b.GamesPlayed, b.AtBats, b.Runs, b.Hits, b.Doubles, b.Triples, b.HomeRuns,
			b.RBI, b.StolenBases, b.Walks, b.Strikeouts, b.AVG, b.OBP, b.SLG, b.OPS)
	}

	if pi := stats.Pitching; pi != nil {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "%s Pitching (%s)\n", pi.Season, pi.TeamName)
		fmt.Fprintf(w, "%4s %4s %4s %4s %4s %4s %7s %4s %4s %4s %4s %4s %4s %6s %6s %6s %6s\n",
			"G", "GS", "W", "L", "SV", "HLD", "IP", "H", "R", "ER", "HR", "BB", "SO", "ERA", "WHIP", "K/9", "BB/9")
		fmt.Fprintf(w, "%4d %4d %4d %4d %4d %4d %7s %4d %4d %4d %4d %4d %4d %6s %6s %6s %6s\n",
			pi.GamesPlayed, pi.GamesStarted, pi.Wins, pi.Losses, pi.Saves, pi.Holds,
			pi.InningsPitched, pi.Hits, pi.Runs, pi.EarnedRuns, pi.HomeRuns,
			pi.Walks, pi.Strikeouts, pi.ERA, pi.WHIP, pi.StrikeoutsPer9, pi.WalksPer9)
	}
}
