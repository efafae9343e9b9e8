package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Login lockout parameters. The lockout is a client-side UX deterrent, not a
// server-enforced limit.
const (
	MaxLoginAttempts = 5
	LockoutDuration  = 15 * time.Minute
)

// Session is the persisted login state: the remembered username plus the
// current token pair and the failed-attempt counter.
type Session struct {
	Username     string    `json:"username,omitempty"`
	AccessToken  string    `json:"accessToken,omitempty"`
	SessionToken string    `json:"sessionToken,omitempty"`
	Failures     int       `json:"failures,omitempty"`
	LockedUntil  time.Time `json:"lockedUntil,omitempty"`
}

// SessionStore persists a Session as a JSON file.
type SessionStore struct {
	path string
}

func NewSessionStore(path string) *SessionStore {
	return &SessionStore{path: path}
}

// Load reads the stored session. A missing file yields a zero session.
func (s *SessionStore) Load() (*Session, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Session{}, nil
		}
		return nil, fmt.Errorf("error reading session file: %w", err)
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("error parsing session file: %w", err)
	}
	return &session, nil
}

func (s *SessionStore) Save(session *Session) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("error creating session dir: %w", err)
	}
	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("error writing session file: %w", err)
	}
	return nil
}

// Clear removes the session file. A missing file is not an error.
func (s *SessionStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// Locked reports whether login is currently locked out, and until when.
func (sess *Session) Locked(now time.Time) (bool, time.Time) {
	if sess.Failures >= MaxLoginAttempts && now.Before(sess.LockedUntil) {
		return true, sess.LockedUntil
	}
	return false, time.Time{}
}

// RecordFailure bumps the failed-attempt counter, opening the lockout window
// once the limit is reached. An expired window restarts the count.
func (sess *Session) RecordFailure(now time.Time) {
	if sess.Failures >= MaxLoginAttempts && !now.Before(sess.LockedUntil) {
		sess.Failures = 0
		sess.LockedUntil = time.Time{}
	}
	sess.Failures++
	if sess.Failures >= MaxLoginAttempts {
		sess.LockedUntil = now.Add(LockoutDuration)
	}
}

// RecordSuccess stores the logged-in identity and clears the lockout state.
func (sess *Session) RecordSuccess(username, accessToken, sessionToken string) {
	sess.Username = username
	sess.AccessToken = accessToken
	sess.SessionToken = sessionToken
	sess.Failures = 0
	sess.LockedUntil = time.Time{}
}
