package model

import "strings"

// Status is the UI-facing performer account status.
type Status string

// Known statuses. StatusAll is a filter wildcard and is never stored on a
// performer; online/offline are presence states with no wire encoding.
const (
	StatusAll       Status = "all"
	StatusActive    Status = "active"
	StatusInactive  Status = "inactive"
	StatusPending   Status = "pending"
	StatusSuspended Status = "suspended"
	StatusOnline    Status = "online"
	StatusOffline   Status = "offline"
)

// statusCodes is the single source of truth for the backend's numeric
// status encoding. The query builder and the DTO mapper both go through it
// so the two directions cannot drift apart.
var statusCodes = map[Status]int{
	StatusActive:    0,
	StatusInactive:  1,
	StatusPending:   2,
	StatusSuspended: 3,
}

var codeStatuses = func() map[int]Status {
	m := make(map[int]Status, len(statusCodes))
	for s, c := range statusCodes {
		m[c] = s
	}
	return m
}()

// StatusCode returns the backend numeric code for a status. ok is false for
// statuses with no wire encoding (all, online, offline).
func StatusCode(s Status) (int, bool) {
	c, ok := statusCodes[s]
	return c, ok
}

// StatusFromCode decodes a backend numeric code. Unknown codes decode to
// inactive.
func StatusFromCode(code int) Status {
	if s, ok := codeStatuses[code]; ok {
		return s
	}
	return StatusInactive
}

// ParseStatus normalizes user input to a known status; anything
// unrecognized (including empty) is treated as the "all" wildcard.
func ParseStatus(s string) Status {
	switch st := Status(strings.ToLower(strings.TrimSpace(s))); st {
	case StatusActive, StatusInactive, StatusPending, StatusSuspended,
		StatusOnline, StatusOffline:
		return st
	default:
		return StatusAll
	}
}
