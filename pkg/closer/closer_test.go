//go:build unit

package closer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/usedetail/detail-cli/pkg/api"
	"github.com/usedetail/detail-cli/pkg/prompt"
	"github.com/usedetail/detail-cli/pkg/prompt/mocks"
)

func statePtr(s api.CloseState) *api.CloseState { return &s }

func reasonPtr(r api.DismissalReason) *api.DismissalReason { return &r }

func strPtr(s string) *string { return &s }

func TestPlanClose_PendingRejectedRegardlessOfInteractivity(t *testing.T) {
	for _, interactive := range []bool{true, false} {
		_, err := PlanClose(Input{State: statePtr(api.StatePending)}, interactive)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrPendingNotCloseState)
		assert.Contains(t, err.Error(), "not a valid close state")
	}
}

func TestPlanClose_PendingShortCircuitsOtherChecks(t *testing.T) {
	// Even with every other slot missing in non-interactive mode, the
	// pending rejection comes first.
	_, err := PlanClose(Input{State: statePtr(api.StatePending)}, false)
	assert.ErrorIs(t, err, ErrPendingNotCloseState)
	assert.NotErrorIs(t, err, ErrStateRequired)
}

func TestPlanClose_MissingStateNonInteractive(t *testing.T) {
	_, err := PlanClose(Input{}, false)
	assert.ErrorIs(t, err, ErrStateRequired)
}

func TestPlanClose_MissingStateInteractiveDefers(t *testing.T) {
	plan, err := PlanClose(Input{}, true)
	require.NoError(t, err)
	assert.True(t, plan.NeedState)
	assert.Nil(t, plan.State)

	// The reason slot stays deferred until the state is settled.
	assert.False(t, plan.NeedReason)
}

func TestPlanClose_DismissedWithoutReasonNonInteractive(t *testing.T) {
	_, err := PlanClose(Input{State: statePtr(api.StateDismissed)}, false)
	assert.ErrorIs(t, err, ErrReasonRequired)
}

func TestPlanClose_DismissedWithoutReasonInteractiveDefers(t *testing.T) {
	plan, err := PlanClose(Input{State: statePtr(api.StateDismissed)}, true)
	require.NoError(t, err)
	assert.True(t, plan.NeedReason)
	assert.Nil(t, plan.Reason)
}

func TestPlanClose_ReasonPassedThroughForResolvedState(t *testing.T) {
	// A reason supplied with a non-dismissed state is passed through
	// untouched; the server ignores it.
	plan, err := PlanClose(Input{
		State:  statePtr(api.StateResolved),
		Reason: reasonPtr(api.ReasonDuplicate),
	}, false)
	require.NoError(t, err)
	require.NotNil(t, plan.Reason)
	assert.Equal(t, api.ReasonDuplicate, *plan.Reason)
}

func TestPlanClose_NotesOptionalNonInteractive(t *testing.T) {
	plan, err := PlanClose(Input{State: statePtr(api.StateResolved)}, false)
	require.NoError(t, err)
	assert.Nil(t, plan.Notes)
	assert.False(t, plan.NeedNotes)
}

func TestPlanClose_NotesPromptOfferedInteractive(t *testing.T) {
	plan, err := PlanClose(Input{State: statePtr(api.StateResolved)}, true)
	require.NoError(t, err)
	assert.True(t, plan.NeedNotes)

	plan, err = PlanClose(Input{
		State: statePtr(api.StateResolved),
		Notes: strPtr("done"),
	}, true)
	require.NoError(t, err)
	assert.False(t, plan.NeedNotes)
	assert.Equal(t, "done", *plan.Notes)
}

func TestFinalize_RejectsPending(t *testing.T) {
	_, err := Finalize(api.StatePending, nil, nil)
	assert.ErrorIs(t, err, ErrPendingNotCloseState)
}

func TestFinalize_RejectsUnknownState(t *testing.T) {
	_, err := Finalize(api.CloseState("closed"), nil, nil)
	assert.ErrorIs(t, err, api.ErrInvalidState)
}

func TestFinalize_RequiresReasonWhenDismissed(t *testing.T) {
	_, err := Finalize(api.StateDismissed, nil, nil)
	assert.ErrorIs(t, err, ErrReasonRequired)
}

func TestFinalize_BuildsRequest(t *testing.T) {
	req, err := Finalize(api.StateDismissed, reasonPtr(api.ReasonWontFix), strPtr("stale"))
	require.NoError(t, err)
	assert.Equal(t, api.StateDismissed, req.State)
	assert.Equal(t, api.ReasonWontFix, *req.DismissalReason)
	assert.Equal(t, "stale", *req.Notes)
}

func TestResolve_AllFlagsNonInteractive(t *testing.T) {
	req, err := Resolve(Input{
		State:  statePtr(api.StateResolved),
		Reason: reasonPtr(api.ReasonDuplicate),
		Notes:  strPtr("fixed in v2"),
	}, false, nil)

	require.NoError(t, err)
	assert.Equal(t, api.StateResolved, req.State)
	assert.Equal(t, api.ReasonDuplicate, *req.DismissalReason)
	assert.Equal(t, "fixed in v2", *req.Notes)
}

func TestResolve_PromptsForEverythingWhenDismissed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPrompter := mocks.NewMockPrompter(ctrl)
	mockPrompter.EXPECT().
		SelectOption("Close state", gomock.Any()).
		Return(prompt.Option{Label: "Dismissed", Value: "dismissed"}, nil)
	mockPrompter.EXPECT().
		SelectOption("Dismissal reason", gomock.Any()).
		Return(prompt.Option{Label: "Not a Bug", Value: "not-a-bug"}, nil)
	mockPrompter.EXPECT().
		ReadOptionalText("Notes").
		Return("false positive", nil)

	req, err := Resolve(Input{}, true, mockPrompter)
	require.NoError(t, err)
	assert.Equal(t, api.StateDismissed, req.State)
	assert.Equal(t, api.ReasonNotABug, *req.DismissalReason)
	assert.Equal(t, "false positive", *req.Notes)
}

func TestResolve_PromptedResolvedSkipsReason(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPrompter := mocks.NewMockPrompter(ctrl)
	mockPrompter.EXPECT().
		SelectOption("Close state", gomock.Any()).
		Return(prompt.Option{Label: "Resolved", Value: "resolved"}, nil)
	mockPrompter.EXPECT().
		ReadOptionalText("Notes").
		Return("", nil)

	req, err := Resolve(Input{}, true, mockPrompter)
	require.NoError(t, err)
	assert.Equal(t, api.StateResolved, req.State)
	assert.Nil(t, req.DismissalReason)

	// Empty notes input means no notes at all.
	assert.Nil(t, req.Notes)
}

func TestResolve_FlaggedDismissedPromptsReasonOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPrompter := mocks.NewMockPrompter(ctrl)
	mockPrompter.EXPECT().
		SelectOption("Dismissal reason", gomock.Any()).
		Return(prompt.Option{Label: "Duplicate", Value: "duplicate"}, nil)
	mockPrompter.EXPECT().
		ReadOptionalText("Notes").
		Return("", nil)

	req, err := Resolve(Input{State: statePtr(api.StateDismissed)}, true, mockPrompter)
	require.NoError(t, err)
	assert.Equal(t, api.StateDismissed, req.State)
	assert.Equal(t, api.ReasonDuplicate, *req.DismissalReason)
}

func TestResolve_MaliciousPromptReturningPendingRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPrompter := mocks.NewMockPrompter(ctrl)
	mockPrompter.EXPECT().
		SelectOption("Close state", gomock.Any()).
		Return(prompt.Option{Label: "Pending", Value: "pending"}, nil)

	_, err := Resolve(Input{}, true, mockPrompter)
	assert.ErrorIs(t, err, ErrPendingNotCloseState)
}

func TestResolve_SelectionAbortPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPrompter := mocks.NewMockPrompter(ctrl)
	mockPrompter.EXPECT().
		SelectOption("Close state", gomock.Any()).
		Return(prompt.Option{}, prompt.ErrNoSelection)

	_, err := Resolve(Input{}, true, mockPrompter)
	assert.ErrorIs(t, err, prompt.ErrNoSelection)
}
