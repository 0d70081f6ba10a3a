package games

import (
	"reflect"
	"testing"
)

func TestLiveStatuses(t *testing.T) {
	cases := map[string]bool{
		StatusInProgress:       true,
		StatusManagerChallenge: true,
		StatusFinal:            false,
		StatusScheduled:        false,
		"Delayed: Rain":        false,
	}
	for status, want := range cases {
		if got := Live(status); got != want {
			t.Fatalf("Live(%q) expected %v, got %v", status, want, got)
		}
	}
}

func TestGameStatusJSONTags(t *testing.T) {
	typ := reflect.TypeOf(GameStatus{})
	tags := map[string]string{
		"GamePk":     "game_pk",
		"InningHalf": "inning_half",
		"LastPlay":   "last_play",
		"LineScore":  "line_score",
		"StartTime":  "start_time",
	}
	for name, want := range tags {
		field, ok := typ.FieldByName(name)
		if !ok {
			t.Fatalf("missing field %s", name)
		}
		if got := field.Tag.Get("json"); got != want {
			t.Fatalf("field %s expected tag %s, got %s", name, want, got)
		}
	}
}

func TestDateLabelStaysOutOfJSON(t *testing.T) {
	field, ok := reflect.TypeOf(GameSummary{}).FieldByName("DateLabel")
	if !ok {
		t.Fatalf("missing DateLabel field")
	}
	if got := field.Tag.Get("json"); got != "-" {
		t.Fatalf("expected DateLabel excluded from JSON, got tag %q", got)
	}
}
