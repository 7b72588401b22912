// Package profile implements the conversational slot-filling session manager:
// profiles are built incrementally across turns, with completeness tracking
// against a fixed field checklist, contextual next-step prompts and recursive
// merging of partial updates that never clobbers previously collected data.
package profile

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrSessionNotFound is returned by Update, Finalize and Status when the
// session identifier is not in the store.
var ErrSessionNotFound = errors.New("profile: session not found")

// Manager owns the process-wide session store. All read-modify-write
// operations hold the mutex for their full duration so two concurrent
// updates to the same session can not interleave their merge-then-write
// steps and lose data.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	now      func() time.Time
}

// Option customises Manager behaviour.
type Option func(*Manager)

// WithClock replaces the manager's time source. Tests use this to make
// timestamps and elapsed-time calculations deterministic.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// NewManager creates an empty session manager. The store lives for the whole
// process: created once at startup and never torn down mid-process.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		sessions: make(map[string]*Session),
		now:      time.Now,
	}
	for _, o := range opts {
		if o != nil {
			o(m)
		}
	}
	return m
}

// newID generates an opaque identifier like "SESSION-3FA29C1B". Identifiers
// are never reused within a process lifetime.
func newID(prefix string) string {
	return prefix + "-" + strings.ToUpper(uuid.NewString()[:8])
}

// Start creates a new profile session seeded with only the name from the
// initial data ("Unknown" when absent), computes initial completeness and
// stores the record at turn 1. Start always succeeds.
func (m *Manager) Start(initial map[string]interface{}) SessionView {
	name, ok := initial["name"]
	if !ok {
		name = "Unknown"
	}

	now := m.now()
	session := &Session{
		ID:        newID("SESSION"),
		Status:    StatusInProgress,
		Profile:   map[string]interface{}{"name": name},
		Turn:      1,
		CreatedAt: now,
		UpdatedAt: now,
	}

	m.mu.Lock()
	m.sessions[session.ID] = session
	m.mu.Unlock()

	log.Printf("Profile session %s started", session.ID)

	view := m.view(session)
	view.UpdatedAt = "" // start responses carry created_at only
	return view
}

// Update merges partial fields into the stored profile, increments the turn
// counter and recomputes completeness. The status flips to complete once no
// required field is missing and never reverts afterwards, even if a later
// overwrite removes required data. Nested maps inside updates are retained
// by the session, so callers must not mutate them after Update returns.
func (m *Manager) Update(sessionID string, updates map[string]interface{}) (SessionView, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[sessionID]
	if !ok {
		return SessionView{}, ErrSessionNotFound
	}

	session.Profile = mergeProfiles(session.Profile, updates)
	session.Turn++
	session.UpdatedAt = m.now()

	_, missingRequired, _ := calculateCompleteness(session.Profile)
	if len(missingRequired) == 0 {
		session.Status = StatusComplete
	}

	view := m.view(session)
	view.CreatedAt = "" // update responses carry updated_at only
	return view, nil
}

// Status returns the current read view of a session without mutating anything.
func (m *Manager) Status(sessionID string) (SessionView, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[sessionID]
	if !ok {
		return SessionView{}, ErrSessionNotFound
	}
	return m.view(session), nil
}

// Finalize validates, formats and submits a complete profile, deleting the
// session from the store. When required fields are still missing it returns a
// *ValidationError and leaves the session untouched so the caller can retry
// after another update. Finalize is one-shot and irreversible on success.
func (m *Manager) Finalize(sessionID string) (FinalizeResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[sessionID]
	if !ok {
		return FinalizeResult{}, ErrSessionNotFound
	}

	_, missingRequired, _ := calculateCompleteness(session.Profile)
	if len(missingRequired) > 0 {
		return FinalizeResult{}, &ValidationError{
			SessionID:     sessionID,
			MissingFields: missingRequired,
		}
	}

	profile := session.Profile
	contact := subMapping(profile, "contact")

	minutes := int(session.UpdatedAt.Sub(session.CreatedAt).Minutes())
	result := FinalizeResult{
		Success:          true,
		Message:          "Profile finalized and submitted successfully",
		ProfileID:        newID("PROF"),
		CustomerName:     stringField(profile, "name", "Unknown"),
		CustomerEmail:    stringField(profile, "email", "Not provided"),
		CustomerType:     stringField(profile, "type", "Not specified"),
		AddressFormatted: formatAddress(subMapping(profile, "address")),
		ContactPhone:     stringField(contact, "phone", "Not provided"),
		ContactMobile:    stringField(contact, "mobile", "Not provided"),
		ConversationSummary: ConversationSummary{
			TotalTurns:      session.Turn,
			FieldsCollected: countCollectedFields(profile),
			TimeToComplete:  formatMinutes(minutes),
		},
		FinalizedAt: formatTime(m.now()),
	}

	delete(m.sessions, sessionID)
	log.Printf("Profile session %s finalized as %s", sessionID, result.ProfileID)

	return result, nil
}

// PruneIdle removes sessions whose last update is older than maxIdle and
// returns how many were dropped. The source system this mirrors kept
// unfinalized sessions forever; pruning is opt-in and driven by the caller.
func (m *Manager) PruneIdle(maxIdle time.Duration) int {
	if maxIdle <= 0 {
		return 0
	}
	cutoff := m.now().Add(-maxIdle)

	m.mu.Lock()
	defer m.mu.Unlock()

	pruned := 0
	for id, session := range m.sessions {
		if session.UpdatedAt.Before(cutoff) {
			delete(m.sessions, id)
			pruned++
		}
	}
	if pruned > 0 {
		log.Printf("Pruned %d idle profile session(s)", pruned)
	}
	return pruned
}

// Len reports the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// view builds the read model for a session. Completeness is recomputed every
// time and the profile is deep-copied so callers can not reach into the
// stored mapping. Callers must hold no expectation of seeing later mutations.
func (m *Manager) view(session *Session) SessionView {
	percentage, missingRequired, missingOptional := calculateCompleteness(session.Profile)
	return SessionView{
		SessionID:              session.ID,
		Status:                 session.Status,
		CompletenessPercentage: percentage,
		Profile:                copyMapping(session.Profile),
		MissingRequiredFields:  missingRequired,
		MissingOptionalFields:  missingOptional,
		NextPrompt:             nextPrompt(missingRequired, missingOptional),
		ConversationTurn:       session.Turn,
		CreatedAt:              formatTime(session.CreatedAt),
		UpdatedAt:              formatTime(session.UpdatedAt),
	}
}

// --- helpers ---

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func formatMinutes(minutes int) string {
	if minutes == 1 {
		return "1 minute"
	}
	return fmt.Sprintf("%d minutes", minutes)
}

// subMapping returns the nested mapping at key, or an empty mapping when the
// key is absent or holds a non-mapping value.
func subMapping(m map[string]interface{}, key string) map[string]interface{} {
	if nested, ok := m[key].(map[string]interface{}); ok {
		return nested
	}
	return map[string]interface{}{}
}

// stringField returns the value at key rendered as a string, or fallback when
// the key is absent.
func stringField(m map[string]interface{}, key, fallback string) string {
	v, ok := m[key]
	if !ok {
		return fallback
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// formatAddress joins the non-empty address parts in the fixed order
// street, city, state, zipcode, country.
func formatAddress(address map[string]interface{}) string {
	keys := []string{"street", "city", "state", "zipcode", "country"}
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		if part := stringField(address, k, ""); part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, ", ")
}

// countCollectedFields counts collected values across the profile: a nested
// mapping contributes its non-empty immediate values, anything else
// contributes 1 when non-empty.
func countCollectedFields(profile map[string]interface{}) int {
	count := 0
	for _, value := range profile {
		if nested, ok := value.(map[string]interface{}); ok {
			for _, v := range nested {
				if truthy(v) {
					count++
				}
			}
		} else if truthy(value) {
			count++
		}
	}
	return count
}

// copyMapping deep-copies a profile mapping; nested mappings and sequences
// are copied, scalars are shared.
func copyMapping(m map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[k] = copyValue(v)
	}
	return out
}

func copyValue(v interface{}) interface{} {
	switch value := v.(type) {
	case map[string]interface{}:
		return copyMapping(value)
	case []interface{}:
		out := make([]interface{}, len(value))
		for i, item := range value {
			out[i] = copyValue(item)
		}
		return out
	default:
		return v
	}
}
