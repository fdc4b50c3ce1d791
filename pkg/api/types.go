package api

import (
	"fmt"
	"strings"
)

// ID prefixes assigned by the Detail service.
const (
	RepoIDPrefix = "repo_"
	BugIDPrefix  = "bug_"
)

// RepoID is the canonical service-assigned repository identifier.
type RepoID string

// NewRepoID validates a raw repository ID string.
func NewRepoID(raw string) (RepoID, error) {
	if !strings.HasPrefix(raw, RepoIDPrefix) {
		return "", fmt.Errorf("%w: repository IDs start with %q, got %q", ErrInvalidID, RepoIDPrefix, raw)
	}
	return RepoID(raw), nil
}

// String returns the raw ID string.
func (id RepoID) String() string {
	return string(id)
}

// BugID is the canonical service-assigned bug identifier.
type BugID string

// NewBugID validates a raw bug ID string.
func NewBugID(raw string) (BugID, error) {
	if !strings.HasPrefix(raw, BugIDPrefix) {
		return "", fmt.Errorf("%w: bug IDs start with %q, got %q", ErrInvalidID, BugIDPrefix, raw)
	}
	return BugID(raw), nil
}

// String returns the raw ID string.
func (id BugID) String() string {
	return string(id)
}

// CloseState is the disposition of a bug report. StatePending is a list
// filter value only and is never a valid close target.
type CloseState string

// Close state values accepted by the service.
const (
	StatePending   CloseState = "pending"
	StateResolved  CloseState = "resolved"
	StateDismissed CloseState = "dismissed"
)

// ParseCloseState parses a user-supplied state value.
func ParseCloseState(raw string) (CloseState, error) {
	switch CloseState(raw) {
	case StatePending:
		return StatePending, nil
	case StateResolved:
		return StateResolved, nil
	case StateDismissed:
		return StateDismissed, nil
	default:
		return "", fmt.Errorf("%w: %q (expected pending, resolved or dismissed)", ErrInvalidState, raw)
	}
}

// Label returns a user-friendly label for the state.
func (s CloseState) Label() string {
	switch s {
	case StatePending:
		return "Pending"
	case StateResolved:
		return "Resolved"
	case StateDismissed:
		return "Dismissed"
	default:
		return string(s)
	}
}

// DismissalReason explains why a bug was dismissed.
type DismissalReason string

// Dismissal reason values accepted by the service.
const (
	ReasonNotABug   DismissalReason = "not-a-bug"
	ReasonWontFix   DismissalReason = "wont-fix"
	ReasonDuplicate DismissalReason = "duplicate"
	ReasonOther     DismissalReason = "other"
)

// ParseDismissalReason parses a user-supplied dismissal reason value.
func ParseDismissalReason(raw string) (DismissalReason, error) {
	switch DismissalReason(raw) {
	case ReasonNotABug, ReasonWontFix, ReasonDuplicate, ReasonOther:
		return DismissalReason(raw), nil
	default:
		return "", fmt.Errorf("%w: %q (expected not-a-bug, wont-fix, duplicate or other)",
			ErrInvalidDismissalReason, raw)
	}
}

// Label returns a user-friendly label for the reason.
func (r DismissalReason) Label() string {
	switch r {
	case ReasonNotABug:
		return "Not a Bug"
	case ReasonWontFix:
		return "Won't Fix"
	case ReasonDuplicate:
		return "Duplicate"
	case ReasonOther:
		return "Other"
	default:
		return string(r)
	}
}

// User identifies the authenticated account.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Repo is a repository record as reported by the service.
type Repo struct {
	ID            RepoID `json:"id"`
	Name          string `json:"name"`
	OwnerName     string `json:"ownerName"`
	FullName      string `json:"fullName"`
	OrgID         string `json:"orgId"`
	OrgName       string `json:"orgName"`
	Visibility    string `json:"visibility"`
	PrimaryBranch string `json:"primaryBranch"`
}

// BugClose records how a bug was closed.
type BugClose struct {
	State           CloseState       `json:"state"`
	CreatedAt       int64            `json:"createdAt"`
	DismissalReason *DismissalReason `json:"dismissalReason,omitempty"`
	Notes           *string          `json:"notes,omitempty"`
}

// Bug is a bug report as reported by the service. Timestamps are epoch
// milliseconds.
type Bug struct {
	ID                      BugID     `json:"id"`
	Title                   string    `json:"title"`
	Summary                 string    `json:"summary"`
	FilePath                *string   `json:"filePath,omitempty"`
	CreatedAt               int64     `json:"createdAt"`
	IsSecurityVulnerability *bool     `json:"isSecurityVulnerability,omitempty"`
	Close                   *BugClose `json:"close,omitempty"`
}

// CloseRequest is the body of the close-bug call. The caller guarantees
// State is never StatePending and DismissalReason is set whenever State is
// StateDismissed.
type CloseRequest struct {
	State           CloseState       `json:"state"`
	DismissalReason *DismissalReason `json:"dismissalReason,omitempty"`
	Notes           *string          `json:"notes,omitempty"`
}

// ReposPage is one page of the repository listing.
type ReposPage struct {
	Repos []Repo `json:"repos"`
	Total int    `json:"total"`
}

// BugsPage is one page of a bug listing.
type BugsPage struct {
	Bugs  []Bug `json:"bugs"`
	Total int   `json:"total"`
}
