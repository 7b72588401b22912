package profile

import (
	"fmt"
	"strings"
	"time"
)

// Status values for a slot-filling session. There is no terminal status:
// finalizing a session removes it from the store instead of transitioning it.
const (
	StatusInProgress = "in_progress"
	StatusComplete   = "complete"
)

// Session is the stored record for one conversational profile-building
// interaction. The profile accumulates monotonically across turns: entries
// are added or overwritten by merges, never deleted.
type Session struct {
	ID        string
	Status    string
	Profile   map[string]interface{}
	Turn      int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// --- Argument Structs for Child Tools ---

// StartArgs defines the arguments for the start_profile_session tool.
type StartArgs struct {
	Name string `json:"name" jsonschema:"required,description=The customer's name to seed the new profile session with."`
}

// UpdateArgs defines the arguments for the update_profile_session tool.
type UpdateArgs struct {
	SessionID string                 `json:"session_id" jsonschema:"required,description=The session identifier returned by start_profile_session."`
	Updates   map[string]interface{} `json:"updates" jsonschema:"required,description=Partial profile fields to merge into the session. Nested objects are merged recursively."`
}

// SessionIDArgs defines the arguments for the finalize and status tools.
type SessionIDArgs struct {
	SessionID string `json:"session_id" jsonschema:"required,description=The session identifier."`
}

// --- View Structs ---

// SessionView is the read model returned by Start, Update and Status.
// Completeness is always recomputed from the profile, never cached, so the
// percentage and missing lists can not drift from the stored state.
type SessionView struct {
	SessionID              string                 `json:"session_id"`
	Status                 string                 `json:"status"`
	CompletenessPercentage int                    `json:"completeness_percentage"`
	Profile                map[string]interface{} `json:"profile"`
	MissingRequiredFields  []string               `json:"missing_required_fields"`
	MissingOptionalFields  []string               `json:"missing_optional_fields"`
	NextPrompt             string                 `json:"next_prompt"`
	ConversationTurn       int                    `json:"conversation_turn"`
	CreatedAt              string                 `json:"created_at,omitempty"`
	UpdatedAt              string                 `json:"updated_at,omitempty"`
}

// ConversationSummary aggregates per-session collection metrics for the
// finalize result.
type ConversationSummary struct {
	TotalTurns      int    `json:"total_turns"`
	FieldsCollected int    `json:"fields_collected"`
	TimeToComplete  string `json:"time_to_complete"`
}

// FinalizeResult is the one-shot submission record produced when a complete
// session is finalized. The session itself is deleted in the same operation.
type FinalizeResult struct {
	Success             bool                `json:"success"`
	Message             string              `json:"message"`
	ProfileID           string              `json:"profile_id"`
	CustomerName        string              `json:"customer_name"`
	CustomerEmail       string              `json:"customer_email"`
	CustomerType        string              `json:"customer_type"`
	AddressFormatted    string              `json:"address_formatted"`
	ContactPhone        string              `json:"contact_phone"`
	ContactMobile       string              `json:"contact_mobile"`
	ConversationSummary ConversationSummary `json:"conversation_summary"`
	FinalizedAt         string              `json:"finalized_at"`
}

// ValidationError reports a finalize attempt on a session that is still
// missing required fields. The session is left untouched so the caller can
// supply the missing data with another update and retry.
type ValidationError struct {
	SessionID     string
	MissingFields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("profile: session %s incomplete, missing required fields: %s",
		e.SessionID, strings.Join(e.MissingFields, ", "))
}
