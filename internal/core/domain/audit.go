package domain

import "time"

// AuthEventKind names what happened at the authentication boundary.
type AuthEventKind string

const (
	AuthEventRegister AuthEventKind = "register"
	AuthEventLogin    AuthEventKind = "login"
)

// AuthEvent is one entry of the security audit trail. Outcome is "success"
// or the short name of the failure.
type AuthEvent struct {
	Kind       AuthEventKind
	Email      string
	AccountID  string
	Outcome    string
	OccurredAt time.Time
}
