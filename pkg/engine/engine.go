// Package engine is the view-navigation and state-synchronization core
// of the diary client. It owns the session, entry cache, navigation
// stack, transient notifications and the pending attachment, and it
// orchestrates remote calls as effects whose completion events flow back
// through Handle. The rendering layer only translates input into events
// and draws the engine's state.
package engine

import (
	"context"
	"errors"

	"github.com/Ikhwanand/diary-tui/pkg/api"
	"github.com/Ikhwanand/diary-tui/pkg/cache"
	"github.com/Ikhwanand/diary-tui/pkg/entry"
	"github.com/Ikhwanand/diary-tui/pkg/nav"
	"github.com/Ikhwanand/diary-tui/pkg/notify"
	"github.com/Ikhwanand/diary-tui/pkg/picker"
	"github.com/Ikhwanand/diary-tui/pkg/session"
)

// Remote is the backend surface the engine drives. *api.Client satisfies
// it; tests substitute fakes.
type Remote interface {
	Login(ctx context.Context, username, password string) (string, error)
	Register(ctx context.Context, username, password string) error
	List(ctx context.Context, token string) ([]*entry.Entry, error)
	Get(ctx context.Context, token string, id int64) (*entry.Entry, error)
	Create(ctx context.Context, token, title, content string, att *entry.PendingAttachment) (*entry.Entry, error)
	Update(ctx context.Context, token string, id int64, title, content string) (*entry.Entry, error)
	Delete(ctx context.Context, token string, id int64) error
}

// Engine composes the client's stateful components.
type Engine struct {
	remote   Remote
	picker   picker.Adapter
	session  *session.Session
	cache    *cache.Cache
	nav      *nav.Stack
	notifier *notify.Notifier

	pending      *entry.PendingAttachment
	deleteTarget int64
	formEpoch    uint64
}

// New returns an engine on the Auth screen with no session.
func New(remote Remote, pk picker.Adapter) *Engine {
	return &Engine{
		remote:   remote,
		picker:   pk,
		session:  session.New(),
		cache:    cache.New(),
		nav:      nav.New(nav.AuthScreen()),
		notifier: notify.New(),
	}
}

// Nav exposes the navigation stack for rendering.
func (g *Engine) Nav() *nav.Stack { return g.nav }

// Cache exposes the entry list cache for rendering.
func (g *Engine) Cache() *cache.Cache { return g.cache }

// Notifier exposes the transient UI state for rendering.
func (g *Engine) Notifier() *notify.Notifier { return g.notifier }

// Session exposes the auth state.
func (g *Engine) Session() *session.Session { return g.session }

// Pending returns the not-yet-submitted attachment, if any.
func (g *Engine) Pending() *entry.PendingAttachment { return g.pending }

// FormEpoch increments whenever form inputs should be reseeded; the
// rendering layer compares it against the last value it saw.
func (g *Engine) FormEpoch() uint64 { return g.formEpoch }

// Handle processes one event and returns effects for the host to run.
// It is the single mutation point for all engine state and must be
// called from one goroutine only.
func (g *Engine) Handle(ev Event) []Effect {
	switch ev := ev.(type) {
	case LoginSubmitted:
		return g.handleLogin(ev)
	case loginDone:
		return g.handleLoginDone(ev)
	case RegisterSubmitted:
		return g.handleRegister(ev)
	case registerDone:
		return g.handleRegisterDone(ev)
	case RefreshRequested:
		if !g.session.Authenticated() {
			return nil
		}
		return []Effect{g.startRefresh()}
	case refreshDone:
		return g.handleRefreshDone(ev)
	case CreateOpened:
		if g.session.Authenticated() && g.nav.Top().Kind == nav.Home {
			g.nav.Push(nav.CreateScreen())
			g.bumpFormEpoch()
		}
		return nil
	case DetailsOpened:
		if ev.Entry != nil && g.nav.Top().Kind == nav.Home {
			g.nav.Push(nav.DetailsScreen(ev.Entry))
		}
		return nil
	case DetailsClosed:
		if g.nav.Top().Kind == nav.Details {
			g.nav.PopToRoot()
		}
		return nil
	case EditOpened:
		return g.handleEditOpened(ev)
	case editLoadDone:
		return g.handleEditLoadDone(ev)
	case DeleteRequested:
		return g.handleDeleteRequested(ev)
	case ConfirmAccepted:
		return g.handleConfirmAccepted()
	case ConfirmRejected:
		g.notifier.Reject()
		g.deleteTarget = 0
		return nil
	case CreateSubmitted:
		return g.handleCreateSubmitted(ev)
	case createDone:
		return g.handleCreateDone(ev)
	case CreateCancelled:
		if g.nav.Top().Kind == nav.Create {
			g.pending = nil
			g.bumpFormEpoch()
			g.nav.ReplaceRoot(nav.HomeScreen())
		}
		return nil
	case EditSubmitted:
		return g.handleEditSubmitted(ev)
	case updateDone:
		return g.handleUpdateDone(ev)
	case EditCancelled:
		if g.nav.Top().Kind == nav.Edit {
			g.bumpFormEpoch()
			g.nav.ReplaceRoot(nav.HomeScreen())
		}
		return nil
	case LogoutRequested:
		g.logout("Logged out successfully!")
		return nil
	case PickRequested:
		return g.handlePickRequested(ev)
	case pickDone:
		g.handlePickDone(ev)
		return nil
	case AttachmentCleared:
		g.pending = nil
		return nil
	case deleteDone:
		return g.handleDeleteDone(ev)
	case BannerDismissed:
		g.notifier.Dismiss()
		return nil
	default:
		return nil
	}
}

// --- auth ---

func (g *Engine) handleLogin(ev LoginSubmitted) []Effect {
	if g.nav.Top().Kind != nav.Auth {
		return nil
	}
	if ev.Username == "" || ev.Password == "" {
		g.notifier.Notify("Please enter both username and password")
		return nil
	}
	g.notifier.ShowBusy()
	return []Effect{func(ctx context.Context) Event {
		token, err := g.remote.Login(ctx, ev.Username, ev.Password)
		return loginDone{token: token, err: err}
	}}
}

func (g *Engine) handleLoginDone(ev loginDone) []Effect {
	g.notifier.HideBusy()
	if ev.err != nil {
		g.notifier.Notify(failureMessage("Login failed", ev.err))
		return nil
	}
	g.session.Login(ev.token)
	g.bumpFormEpoch()
	g.nav.ReplaceRoot(nav.HomeScreen())
	g.notifier.Notify("Login successful")
	return []Effect{g.startRefresh()}
}

func (g *Engine) handleRegister(ev RegisterSubmitted) []Effect {
	if g.nav.Top().Kind != nav.Auth {
		return nil
	}
	if ev.Username == "" || ev.Password == "" {
		g.notifier.Notify("Please enter both username and password")
		return nil
	}
	g.notifier.ShowBusy()
	return []Effect{func(ctx context.Context) Event {
		return registerDone{err: g.remote.Register(ctx, ev.Username, ev.Password)}
	}}
}

func (g *Engine) handleRegisterDone(ev registerDone) []Effect {
	g.notifier.HideBusy()
	if ev.err != nil {
		g.notifier.Notify(failureMessage("Registration failed", ev.err))
		return nil
	}
	g.bumpFormEpoch()
	g.notifier.Notify("Registration successful. Please login.")
	return nil
}

// logout clears everything session-scoped and resets navigation to Auth.
func (g *Engine) logout(message string) {
	g.session.Logout()
	g.cache.Invalidate()
	g.pending = nil
	g.deleteTarget = 0
	g.bumpFormEpoch()
	g.nav.ReplaceRoot(nav.AuthScreen())
	if message != "" {
		g.notifier.Notify(message)
	}
}

// --- list refresh ---

func (g *Engine) startRefresh() Effect {
	gen := g.cache.Begin()
	token := g.session.Token()
	g.notifier.ShowBusy()
	return func(ctx context.Context) Event {
		entries, err := g.remote.List(ctx, token)
		return refreshDone{gen: gen, entries: entries, err: err}
	}
}

func (g *Engine) handleRefreshDone(ev refreshDone) []Effect {
	g.notifier.HideBusy()
	switch {
	case ev.err == nil:
		g.cache.Replace(ev.gen, ev.entries)
	case errors.Is(ev.err, api.ErrUnauthorized):
		g.logout("Session expired, please log in again")
	case errors.Is(ev.err, api.ErrMalformedResponse):
		// Keep the list renderable: a malformed body reads as empty.
		g.cache.Replace(ev.gen, nil)
		g.notifier.Notify("Could not read the server response")
	default:
		// Stale-but-valid cache stays; the user can retry.
		g.notifier.Notify(failureMessage("Could not load diaries", ev.err))
	}
	return nil
}

// --- edit ---

func (g *Engine) handleEditOpened(ev EditOpened) []Effect {
	if !g.session.Authenticated() {
		return nil
	}
	top := g.nav.Top().Kind
	if top != nav.Home && top != nav.Details {
		return nil
	}
	g.notifier.ShowBusy()
	token := g.session.Token()
	return []Effect{func(ctx context.Context) Event {
		e, err := g.remote.Get(ctx, token, ev.ID)
		return editLoadDone{entry: e, err: err}
	}}
}

func (g *Engine) handleEditLoadDone(ev editLoadDone) []Effect {
	g.notifier.HideBusy()
	if ev.err != nil {
		if errors.Is(ev.err, api.ErrUnauthorized) {
			g.logout("Session expired, please log in again")
			return nil
		}
		g.notifier.Notify(failureMessage("Error loading diary details", ev.err))
		return nil
	}
	g.nav.Push(nav.EditScreen(ev.entry))
	g.bumpFormEpoch()
	return nil
}

func (g *Engine) handleEditSubmitted(ev EditSubmitted) []Effect {
	if g.nav.Top().Kind != nav.Edit {
		return nil
	}
	if ev.Title == "" || ev.Content == "" {
		g.notifier.Notify("Please enter both title and content")
		return nil
	}
	g.notifier.ShowBusy()
	token := g.session.Token()
	return []Effect{func(ctx context.Context) Event {
		e, err := g.remote.Update(ctx, token, ev.ID, ev.Title, ev.Content)
		return updateDone{entry: e, err: err}
	}}
}

func (g *Engine) handleUpdateDone(ev updateDone) []Effect {
	g.notifier.HideBusy()
	if ev.err != nil {
		if errors.Is(ev.err, api.ErrUnauthorized) {
			g.logout("Session expired, please log in again")
			return nil
		}
		g.notifier.Notify(failureMessage("Error updating diary", ev.err))
		return nil
	}
	g.bumpFormEpoch()
	g.notifier.Notify("Diary updated successfully!")
	g.nav.ReplaceRoot(nav.HomeScreen())
	return []Effect{g.startRefresh()}
}

// --- create ---

func (g *Engine) handleCreateSubmitted(ev CreateSubmitted) []Effect {
	if g.nav.Top().Kind != nav.Create {
		return nil
	}
	if ev.Title == "" || ev.Content == "" {
		g.notifier.Notify("Please enter both title and content")
		return nil
	}
	g.notifier.ShowBusy()
	token := g.session.Token()
	att := g.pending
	return []Effect{func(ctx context.Context) Event {
		e, err := g.remote.Create(ctx, token, ev.Title, ev.Content, att)
		return createDone{entry: e, err: err}
	}}
}

func (g *Engine) handleCreateDone(ev createDone) []Effect {
	g.notifier.HideBusy()
	if ev.err != nil {
		if errors.Is(ev.err, api.ErrUnauthorized) {
			g.logout("Session expired, please log in again")
			return nil
		}
		// Never auto-retry a create: the call is not idempotent. The form
		// and pending attachment stay intact so the user can retry.
		g.notifier.Notify(failureMessage("Error creating diary", ev.err))
		return nil
	}
	g.pending = nil
	g.bumpFormEpoch()
	g.notifier.Notify("Diary created successfully!")
	g.nav.ReplaceRoot(nav.HomeScreen())
	return []Effect{g.startRefresh()}
}

// --- delete ---

func (g *Engine) handleDeleteRequested(ev DeleteRequested) []Effect {
	if !g.session.Authenticated() {
		return nil
	}
	err := g.notifier.Confirm("Are you sure you want to delete this diary?", nil, nil)
	if err != nil {
		g.notifier.Notify("Finish the open confirmation first")
		return nil
	}
	g.deleteTarget = ev.ID
	return nil
}

func (g *Engine) handleConfirmAccepted() []Effect {
	g.notifier.Accept()
	id := g.deleteTarget
	g.deleteTarget = 0
	if id == 0 {
		return nil
	}
	g.notifier.ShowBusy()
	token := g.session.Token()
	return []Effect{func(ctx context.Context) Event {
		return deleteDone{err: g.remote.Delete(ctx, token, id)}
	}}
}

func (g *Engine) handleDeleteDone(ev deleteDone) []Effect {
	g.notifier.HideBusy()
	if ev.err != nil {
		if errors.Is(ev.err, api.ErrUnauthorized) {
			g.logout("Session expired, please log in again")
			return nil
		}
		g.notifier.Notify(failureMessage("Error deleting diary", ev.err))
		return nil
	}
	g.notifier.Notify("Diary deleted successfully!")
	g.nav.ReplaceRoot(nav.HomeScreen())
	return []Effect{g.startRefresh()}
}

// --- attachment pick ---

func (g *Engine) handlePickRequested(ev PickRequested) []Effect {
	if g.nav.Top().Kind != nav.Create {
		return nil
	}
	req := picker.Request{Path: ev.Path, AllowedExtensions: picker.AllowedExtensions}
	return []Effect{func(ctx context.Context) Event {
		res, err := g.picker.Pick(req)
		return pickDone{result: res, err: err}
	}}
}

func (g *Engine) handlePickDone(ev pickDone) {
	if g.nav.Top().Kind != nav.Create {
		// Navigated away while the dialog was open; the pending
		// attachment does not survive the create screen.
		return
	}
	if ev.err != nil {
		g.pending = nil
		g.notifier.Notify(failureMessage("Error accessing file", ev.err))
		return
	}
	if ev.result.Cancelled {
		// A cancelled dialog keeps an earlier selection.
		if g.pending == nil {
			g.notifier.Notify("No file was selected")
		}
		return
	}
	g.pending = ev.result.File
	g.notifier.Notify("File selected: " + ev.result.File.DisplayName)
}

func (g *Engine) bumpFormEpoch() {
	g.formEpoch++
}

func failureMessage(prefix string, err error) string {
	if errors.Is(err, api.ErrNetwork) {
		return "Network error: " + err.Error()
	}
	return prefix + ": " + err.Error()
}
