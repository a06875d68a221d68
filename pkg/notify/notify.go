// Package notify manages short-lived user feedback: auto-expiring
// banners, a single modal confirmation, and a reference-counted busy
// indicator. It is an overlay layer, independent of navigation.
package notify

import (
	"errors"
	"time"
)

// ErrNotifierBusy is returned when a confirmation is requested while
// another one is still open.
var ErrNotifierBusy = errors.New("a confirmation is already open")

// DefaultBannerTTL is how long a banner stays visible unless dismissed.
const DefaultBannerTTL = 4 * time.Second

type banner struct {
	message   string
	expiresAt time.Time
}

type confirmation struct {
	prompt   string
	onAccept func()
	onReject func()
}

// Notifier holds the transient UI state.
type Notifier struct {
	now     func() time.Time
	ttl     time.Duration
	banners []banner
	confirm *confirmation
	busy    int
}

// New returns a notifier with the default banner lifetime.
func New() *Notifier {
	return &Notifier{now: time.Now, ttl: DefaultBannerTTL}
}

// SetClock replaces the time source. Tests use it to control expiry.
func (n *Notifier) SetClock(now func() time.Time) {
	n.now = now
}

// Notify enqueues a dismissible, auto-expiring banner.
func (n *Notifier) Notify(message string) {
	n.banners = append(n.banners, banner{
		message:   message,
		expiresAt: n.now().Add(n.ttl),
	})
}

// Banner returns the current banner message, pruning expired ones.
func (n *Notifier) Banner() (string, bool) {
	for len(n.banners) > 0 {
		head := n.banners[0]
		if n.now().Before(head.expiresAt) {
			return head.message, true
		}
		n.banners = n.banners[1:]
	}
	return "", false
}

// Dismiss drops the current banner, revealing the next queued one.
func (n *Notifier) Dismiss() {
	if len(n.banners) > 0 {
		n.banners = n.banners[1:]
	}
}

// Confirm opens a modal confirmation. Only one can be open at a time;
// a second call is rejected with ErrNotifierBusy.
func (n *Notifier) Confirm(prompt string, onAccept, onReject func()) error {
	if n.confirm != nil {
		return ErrNotifierBusy
	}
	n.confirm = &confirmation{prompt: prompt, onAccept: onAccept, onReject: onReject}
	return nil
}

// ConfirmPrompt returns the open confirmation's prompt, if any.
func (n *Notifier) ConfirmPrompt() (string, bool) {
	if n.confirm == nil {
		return "", false
	}
	return n.confirm.prompt, true
}

// Accept closes the confirmation and runs its accept callback.
func (n *Notifier) Accept() {
	c := n.confirm
	n.confirm = nil
	if c != nil && c.onAccept != nil {
		c.onAccept()
	}
}

// Reject closes the confirmation and runs its reject callback.
func (n *Notifier) Reject() {
	c := n.confirm
	n.confirm = nil
	if c != nil && c.onReject != nil {
		c.onReject()
	}
}

// ShowBusy increments the busy count. Nested busy spans stack instead of
// flickering the indicator.
func (n *Notifier) ShowBusy() {
	n.busy++
}

// HideBusy decrements the busy count, never below zero.
func (n *Notifier) HideBusy() {
	if n.busy > 0 {
		n.busy--
	}
}

// Busy reports whether any busy span is open.
func (n *Notifier) Busy() bool {
	return n.busy > 0
}
