package engine

import (
	"context"

	"github.com/Ikhwanand/diary-tui/pkg/entry"
	"github.com/Ikhwanand/diary-tui/pkg/picker"
)

// Event is anything the engine can process: user intents from the
// rendering layer, and completion events produced by effects.
type Event interface {
	isEvent()
}

// Effect is deferred work returned by Handle. The host runs it off the
// event loop and feeds the resulting Event back into Handle, so all
// state mutation stays on one sequential queue.
type Effect func(ctx context.Context) Event

// User intents.

// LoginSubmitted is the Auth screen's login action.
type LoginSubmitted struct {
	Username string
	Password string
}

// RegisterSubmitted is the Auth screen's register action.
type RegisterSubmitted struct {
	Username string
	Password string
}

// RefreshRequested re-fetches the entry list for the Home screen.
type RefreshRequested struct{}

// CreateOpened navigates to the create form.
type CreateOpened struct{}

// EditOpened fetches the entry and navigates to the edit form.
type EditOpened struct {
	ID int64
}

// DetailsOpened shows a read-only snapshot of the entry.
type DetailsOpened struct {
	Entry *entry.Entry
}

// DetailsClosed leaves the read-only details screen.
type DetailsClosed struct{}

// DeleteRequested opens the delete confirmation for the entry.
type DeleteRequested struct {
	ID int64
}

// ConfirmAccepted resolves the open confirmation positively.
type ConfirmAccepted struct{}

// ConfirmRejected dismisses the open confirmation.
type ConfirmRejected struct{}

// CreateSubmitted submits the create form, including any pending
// attachment held by the engine.
type CreateSubmitted struct {
	Title   string
	Content string
}

// CreateCancelled leaves the create form, discarding the pending
// attachment.
type CreateCancelled struct{}

// EditSubmitted submits the edit form.
type EditSubmitted struct {
	ID      int64
	Title   string
	Content string
}

// EditCancelled leaves the edit form.
type EditCancelled struct{}

// LogoutRequested ends the session.
type LogoutRequested struct{}

// PickRequested starts attachment selection. An empty path means the
// user dismissed the dialog.
type PickRequested struct {
	Path string
}

// AttachmentCleared removes the pending attachment explicitly.
type AttachmentCleared struct{}

// BannerDismissed drops the current notification banner.
type BannerDismissed struct{}

// Completion events, produced only by effects.

type loginDone struct {
	token string
	err   error
}

type registerDone struct {
	err error
}

type refreshDone struct {
	gen     uint64
	entries []*entry.Entry
	err     error
}

type editLoadDone struct {
	entry *entry.Entry
	err   error
}

type createDone struct {
	entry *entry.Entry
	err   error
}

type updateDone struct {
	entry *entry.Entry
	err   error
}

type deleteDone struct {
	err error
}

type pickDone struct {
	result picker.Result
	err    error
}

func (LoginSubmitted) isEvent()    {}
func (RegisterSubmitted) isEvent() {}
func (RefreshRequested) isEvent()  {}
func (CreateOpened) isEvent()      {}
func (EditOpened) isEvent()        {}
func (DetailsOpened) isEvent()     {}
func (DetailsClosed) isEvent()     {}
func (DeleteRequested) isEvent()   {}
func (ConfirmAccepted) isEvent()   {}
func (ConfirmRejected) isEvent()   {}
func (CreateSubmitted) isEvent()   {}
func (CreateCancelled) isEvent()   {}
func (EditSubmitted) isEvent()     {}
func (EditCancelled) isEvent()     {}
func (LogoutRequested) isEvent()   {}
func (PickRequested) isEvent()     {}
func (AttachmentCleared) isEvent() {}
func (BannerDismissed) isEvent()   {}

func (loginDone) isEvent()    {}
func (registerDone) isEvent() {}
func (refreshDone) isEvent()  {}
func (editLoadDone) isEvent() {}
func (createDone) isEvent()   {}
func (updateDone) isEvent()   {}
func (deleteDone) isEvent()   {}
func (pickDone) isEvent()     {}
