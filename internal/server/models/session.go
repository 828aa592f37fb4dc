// Package models holds the server-side domain types shared by services and
// transports.
package models

// Actor is a user the identity verifier has recognised.
type Actor struct {
	Name string
}

// Session is the per-user authentication state. It is a value: every change
// produces a new Session, so one user's state can never leak into another's.
type Session struct {
	Authenticated bool
	ActorName     string
}

// Authenticate returns a session for the given actor.
func (s Session) Authenticate(a Actor) Session {
	return Session{Authenticated: true, ActorName: a.Name}
}

// Logout returns an empty, unauthenticated session.
func (s Session) Logout() Session {
	return Session{}
}
