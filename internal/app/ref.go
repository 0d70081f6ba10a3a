package app

import "strconv"

// Ref is a loose user token resolved into an explicit variant: a numeric
// identifier or a free-text name, decided by a single parse step.
type Ref struct {
	byID bool
	id   int
	name string
}

// ParseRef classifies a token. An all-digit token is a numeric identifier;
// anything else is a name.
func ParseRef(token string) Ref {
	if isAllDigits(token) {
		id, _ := strconv.Atoi(token)
		return Ref{byID: true, id: id}
	}
	return Ref{name: token}
}

// RefByID builds a numeric Ref directly.
func RefByID(id int) Ref {
	return Ref{byID: true, id: id}
}

// ByID reports whether the token parsed as a numeric identifier.
func (r Ref) ByID() bool {
	return r.byID
}

// ID returns the numeric identifier; only meaningful when ByID is true.
func (r Ref) ID() int {
	return r.id
}

// Name returns the free-text form; only meaningful when ByID is false.
func (r Ref) Name() string {
	return r.name
}

func isAllDigits(token string) bool {
	if token == "" {
		return false
	}
	for _, r := range token {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
