// Package nav models the ordered sequence of screens the client can be
// on. The top of the stack is the only screen that renders or receives
// input; the stack is never empty while the client runs.
package nav

import (
	"fmt"

	"github.com/Ikhwanand/diary-tui/pkg/entry"
)

// Kind names a screen variant.
type Kind int

const (
	Auth Kind = iota
	Home
	Create
	Edit
	Details
)

func (k Kind) String() string {
	switch k {
	case Auth:
		return "auth"
	case Home:
		return "home"
	case Create:
		return "create"
	case Edit:
		return "edit"
	case Details:
		return "details"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Screen is one navigable view. Edit carries the target entry id plus a
// fetched snapshot for pre-filling the form; Details carries an
// immutable snapshot captured at navigation time — it does not refresh
// if the underlying entry changes elsewhere.
type Screen struct {
	Kind    Kind
	EntryID int64
	Entry   *entry.Entry
}

// AuthScreen is the pre-login root.
func AuthScreen() Screen { return Screen{Kind: Auth} }

// HomeScreen is the post-login root.
func HomeScreen() Screen { return Screen{Kind: Home} }

// CreateScreen is the new-entry form.
func CreateScreen() Screen { return Screen{Kind: Create} }

// EditScreen is the edit form for the given entry, pre-filled from a
// fetched snapshot.
func EditScreen(e *entry.Entry) Screen {
	return Screen{Kind: Edit, EntryID: e.ID, Entry: e.Clone()}
}

// DetailsScreen captures an immutable copy of the entry to display.
func DetailsScreen(e *entry.Entry) Screen {
	return Screen{Kind: Details, EntryID: e.ID, Entry: e.Clone()}
}

// Stack is the navigation stack.
type Stack struct {
	screens []Screen
}

// New returns a stack with the given root.
func New(root Screen) *Stack {
	return &Stack{screens: []Screen{root}}
}

// Top returns the active screen.
func (s *Stack) Top() Screen {
	return s.screens[len(s.screens)-1]
}

// Depth reports how many screens are on the stack.
func (s *Stack) Depth() int {
	return len(s.screens)
}

// Push makes screen the new top.
func (s *Stack) Push(screen Screen) {
	s.screens = append(s.screens, screen)
}

// ReplaceRoot clears the stack and installs a single screen. Used for
// the Auth and Home transitions, which reset navigation entirely.
func (s *Stack) ReplaceRoot(screen Screen) {
	s.screens = s.screens[:0]
	s.screens = append(s.screens, screen)
}

// PopToRoot drops everything above the root.
func (s *Stack) PopToRoot() {
	s.screens = s.screens[:1]
}
