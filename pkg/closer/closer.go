// Package closer resolves the inputs needed to close a bug. Each of the
// three slots (state, dismissal reason, notes) is filled from the same
// priority order: explicit flag, then interactive prompt when a terminal is
// attached, then a hard error.
package closer

import (
	"fmt"

	"github.com/usedetail/detail-cli/pkg/api"
	"github.com/usedetail/detail-cli/pkg/prompt"
)

// Input carries the flag values supplied on the command line. A nil pointer
// means the flag was not provided.
type Input struct {
	State  *api.CloseState
	Reason *api.DismissalReason
	Notes  *string
}

// Plan is the outcome of one validation pass. A Need* field set to true
// means the caller must now prompt for that slot; the corresponding value
// field stays nil until then.
type Plan struct {
	State  *api.CloseState
	Reason *api.DismissalReason
	Notes  *string

	NeedState  bool
	NeedReason bool
	NeedNotes  bool
}

// PlanClose validates the supplied inputs and determines which slots still
// need prompting. The pending state is rejected unconditionally before any
// other check.
func PlanClose(in Input, interactive bool) (Plan, error) {
	if in.State != nil && *in.State == api.StatePending {
		return Plan{}, ErrPendingNotCloseState
	}

	var plan Plan

	// State: flag wins, interactive defers, non-interactive fails.
	switch {
	case in.State != nil:
		plan.State = in.State
	case interactive:
		plan.NeedState = true
	default:
		return Plan{}, ErrStateRequired
	}

	// Dismissal reason: only required once the state is known to be
	// dismissed. A reason supplied alongside a non-dismissed state is passed
	// through untouched; the server ignores it. While the state is still
	// deferred the reason stays deferred with it.
	plan.Reason = in.Reason
	if in.Reason == nil {
		switch {
		case plan.NeedState:
			// Re-planned after the state prompt.
		case *plan.State == api.StateDismissed && interactive:
			plan.NeedReason = true
		case *plan.State == api.StateDismissed:
			return Plan{}, ErrReasonRequired
		}
	}

	// Notes: optional everywhere; interactive callers offer a prompt.
	plan.Notes = in.Notes
	if in.Notes == nil && interactive {
		plan.NeedNotes = true
	}

	return plan, nil
}

// Finalize re-checks the close invariants and builds the request. The
// pending check is repeated here because a buggy prompt implementation could
// hand back a value the first pass never saw.
func Finalize(state api.CloseState, reason *api.DismissalReason, notes *string) (api.CloseRequest, error) {
	switch state {
	case api.StatePending:
		return api.CloseRequest{}, ErrPendingNotCloseState
	case api.StateResolved, api.StateDismissed:
	default:
		return api.CloseRequest{}, fmt.Errorf("%w: %q", api.ErrInvalidState, state)
	}

	if state == api.StateDismissed && reason == nil {
		return api.CloseRequest{}, ErrReasonRequired
	}

	return api.CloseRequest{
		State:           state,
		DismissalReason: reason,
		Notes:           notes,
	}, nil
}

// Resolve runs the full close flow: validate the flags, prompt for whatever
// is missing, and build the final request. The prompter may be nil when
// interactive is false.
func Resolve(in Input, interactive bool, prompter prompt.Prompter) (api.CloseRequest, error) {
	plan, err := PlanClose(in, interactive)
	if err != nil {
		return api.CloseRequest{}, err
	}

	if plan.NeedState {
		state, err := promptState(prompter)
		if err != nil {
			return api.CloseRequest{}, err
		}

		// Second pass with the state settled decides the reason slot.
		in.State = &state
		plan, err = PlanClose(in, interactive)
		if err != nil {
			return api.CloseRequest{}, err
		}
	}

	if plan.NeedReason {
		reason, err := promptReason(prompter)
		if err != nil {
			return api.CloseRequest{}, err
		}
		plan.Reason = &reason
	}

	if plan.NeedNotes {
		notes, err := promptNotes(prompter)
		if err != nil {
			return api.CloseRequest{}, err
		}
		plan.Notes = notes
	}

	return Finalize(*plan.State, plan.Reason, plan.Notes)
}

// promptState asks for the close state. Pending is not offered.
func promptState(prompter prompt.Prompter) (api.CloseState, error) {
	selected, err := prompter.SelectOption("Close state", []prompt.Option{
		{Label: api.StateResolved.Label(), Value: string(api.StateResolved)},
		{Label: api.StateDismissed.Label(), Value: string(api.StateDismissed)},
	})
	if err != nil {
		return "", fmt.Errorf("failed to select close state: %w", err)
	}

	return api.ParseCloseState(selected.Value)
}

// promptReason asks for the dismissal reason.
func promptReason(prompter prompt.Prompter) (api.DismissalReason, error) {
	reasons := []api.DismissalReason{
		api.ReasonNotABug,
		api.ReasonWontFix,
		api.ReasonDuplicate,
		api.ReasonOther,
	}

	options := make([]prompt.Option, len(reasons))
	for i, reason := range reasons {
		options[i] = prompt.Option{Label: reason.Label(), Value: string(reason)}
	}

	selected, err := prompter.SelectOption("Dismissal reason", options)
	if err != nil {
		return "", fmt.Errorf("failed to select dismissal reason: %w", err)
	}

	return api.ParseDismissalReason(selected.Value)
}

// promptNotes asks for optional notes; empty input means no notes.
func promptNotes(prompter prompt.Prompter) (*string, error) {
	notes, err := prompter.ReadOptionalText("Notes")
	if err != nil {
		return nil, fmt.Errorf("failed to read notes: %w", err)
	}
	if notes == "" {
		return nil, nil
	}
	return &notes, nil
}
