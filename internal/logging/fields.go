package logging

// Common structured log field keys to keep diagnostics searchable/consistent.
const (
	FieldService    = "service"
	FieldURL        = "url"
	FieldStatusCode = "status_code"
	FieldGamePk     = "game_pk"
	FieldPlayerID   = "player_id"
	FieldDate       = "date"
	FieldCount      = "count"
)
