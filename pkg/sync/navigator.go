// Package sync pushes URL updates to connected clients over WebSocket.
//
// In a server-driven UI the list state lives on the server; when a filter
// interaction changes the parameter object, the address bar on the client
// has to follow. The Navigator encodes the defaults-elided query string for
// its namespace and queues a history patch - push or replace - which a
// Session delivers to the browser alongside its other updates.
//
//	nav := sync.NewNavigator(cfg, session.Queue,
//	    sync.WithDebounce(300*time.Millisecond),
//	)
//	nav.Replace(params) // search-as-you-type: no history spam
//	nav.Push(params)    // discrete filter change: back button works
package sync

import (
	stdsync "sync"
	"time"

	"github.com/querykit/querykit/pkg/qs"
)

// HistoryMode determines how the client applies a URL update.
type HistoryMode string

const (
	// ModePush adds a new history entry.
	ModePush HistoryMode = "push"

	// ModeReplace replaces the current history entry (use for filters and
	// search inputs).
	ModeReplace HistoryMode = "replace"
)

// Patch is one URL update on the wire.
type Patch struct {
	Mode  HistoryMode `json:"mode"`
	Query string      `json:"query"`
}

// NavigatorOption configures a Navigator.
type NavigatorOption func(*Navigator)

// WithDebounce delays patch delivery by the given duration, coalescing
// rapid updates into the last one. Use this for search inputs.
func WithDebounce(d time.Duration) NavigatorOption {
	return func(n *Navigator) {
		n.debounce = d
	}
}

// Navigator encodes parameter objects for one namespace and queues URL
// patches through an injected sink, typically a Session's Queue method.
// A nil sink makes every navigation a no-op, which keeps handlers testable
// without a connection.
type Navigator struct {
	cfg      *qs.Config
	queue    func(Patch)
	debounce time.Duration

	timerMu stdsync.Mutex
	timer   *time.Timer
	pending *Patch
}

// NewNavigator creates a navigator that queues patches via the provided
// function.
func NewNavigator(cfg *qs.Config, queue func(Patch), opts ...NavigatorOption) *Navigator {
	n := &Navigator{cfg: cfg, queue: queue}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Push queues a URL update that adds a history entry.
func (n *Navigator) Push(params qs.Params) {
	n.schedule(Patch{Mode: ModePush, Query: qs.EncodeNonDefault(n.cfg, params)})
}

// Replace queues a URL update that replaces the current history entry.
func (n *Navigator) Replace(params qs.Params) {
	n.schedule(Patch{Mode: ModeReplace, Query: qs.EncodeNonDefault(n.cfg, params)})
}

// schedule delivers the patch, respecting the debounce setting. A pending
// debounced patch is superseded by a newer one.
func (n *Navigator) schedule(p Patch) {
	if n.queue == nil {
		return
	}
	if n.debounce <= 0 {
		n.queue(p)
		return
	}

	n.timerMu.Lock()
	defer n.timerMu.Unlock()
	if n.timer != nil {
		n.timer.Stop()
	}
	n.pending = &p
	n.timer = time.AfterFunc(n.debounce, n.fire)
}

// fire delivers the pending patch from the debounce timer.
func (n *Navigator) fire() {
	n.timerMu.Lock()
	p := n.pending
	n.pending = nil
	n.timer = nil
	n.timerMu.Unlock()
	if p != nil {
		n.queue(*p)
	}
}

// Flush delivers a pending debounced patch immediately, if any.
func (n *Navigator) Flush() {
	n.timerMu.Lock()
	if n.timer != nil {
		n.timer.Stop()
	}
	n.timerMu.Unlock()
	n.fire()
}
