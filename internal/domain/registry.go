// Package domain defines the business logic for the activities service.
package domain

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

var (
	// ErrActivityNotFound is returned when an activity cannot be located.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrAlreadyRegistered indicates the student is already on the roster.
	ErrAlreadyRegistered = errors.New("student already signed up")
	// ErrNotRegistered indicates the student is not on the roster.
	ErrNotRegistered = errors.New("student is not registered for this activity")
	// ErrActivityFull indicates the roster is at max participants.
	ErrActivityFull = errors.New("activity is already full")
	// ErrInvalidEmail indicates a blank participant identifier.
	ErrInvalidEmail = errors.New("email must not be empty")
)

// roster pairs an activity with the mutex guarding its participant list.
// The mutex covers the whole check-and-mutate sequence so two students
// racing for the last seat cannot both win.
type roster struct {
	mu       sync.Mutex
	activity Activity
}

// Registry is the in-memory owner of all activities and the sole
// authority for roster mutation. The activity set is fixed at
// construction; only roster membership changes afterwards, so a lookup
// needs no lock and contention is scoped per activity.
type Registry struct {
	activities map[string]*roster
}

// NewRegistry builds a Registry from the seed catalog. Seed rosters are
// deep-copied so the caller cannot mutate registry state afterwards.
func NewRegistry(seed []Activity) (*Registry, error) {
	activities := make(map[string]*roster, len(seed))
	for _, a := range seed {
		if _, exists := activities[a.Name]; exists {
			return nil, fmt.Errorf("duplicate activity %q", a.Name)
		}
		if a.MaxParticipants <= 0 {
			return nil, fmt.Errorf("activity %q: max participants must be positive", a.Name)
		}
		if len(a.Participants) > a.MaxParticipants {
			return nil, fmt.Errorf("activity %q: seed roster exceeds capacity", a.Name)
		}
		a.Participants = append([]string(nil), a.Participants...)
		activities[a.Name] = &roster{activity: a}
	}
	return &Registry{activities: activities}, nil
}

// List returns a snapshot of all activities. Rosters are copied so the
// result stays consistent even while signups proceed concurrently.
func (r *Registry) List() map[string]Activity {
	out := make(map[string]Activity, len(r.activities))
	for name, entry := range r.activities {
		entry.mu.Lock()
		view := entry.activity
		view.Participants = append([]string(nil), entry.activity.Participants...)
		entry.mu.Unlock()
		out[name] = view
	}
	return out
}

// Signup registers email for the named activity and returns the updated
// roster size. Emails are matched case-sensitively, exactly as stored.
func (r *Registry) Signup(name, email string) (int, error) {
	if strings.TrimSpace(email) == "" {
		return 0, ErrInvalidEmail
	}

	entry, ok := r.activities[name]
	if !ok {
		return 0, ErrActivityNotFound
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	for _, participant := range entry.activity.Participants {
		if participant == email {
			return len(entry.activity.Participants), ErrAlreadyRegistered
		}
	}
	if len(entry.activity.Participants) >= entry.activity.MaxParticipants {
		return len(entry.activity.Participants), ErrActivityFull
	}

	entry.activity.Participants = append(entry.activity.Participants, email)
	return len(entry.activity.Participants), nil
}

// Unregister removes email from the named activity's roster and returns
// the updated roster size. The freed seat is immediately available to
// subsequent signups.
func (r *Registry) Unregister(name, email string) (int, error) {
	if strings.TrimSpace(email) == "" {
		return 0, ErrInvalidEmail
	}

	entry, ok := r.activities[name]
	if !ok {
		return 0, ErrActivityNotFound
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	participants := entry.activity.Participants
	for i, participant := range participants {
		if participant == email {
			entry.activity.Participants = append(participants[:i:i], participants[i+1:]...)
			return len(entry.activity.Participants), nil
		}
	}
	return len(participants), ErrNotRegistered
}
