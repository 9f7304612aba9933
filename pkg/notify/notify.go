// Package notify shows one transient status message at a time.
package notify

import (
	"sync"
	"time"
)

// Kind classifies a message for styling.
type Kind int

const (
	Success Kind = iota
	Failure
)

// Message is the currently visible notification.
type Message struct {
	Kind Kind
	Text string
}

// Notifier holds at most one message. A new message replaces the old one and
// restarts the dismiss timer; the old timer no longer has any effect.
type Notifier struct {
	ttl       time.Duration
	onChange  func(msg Message, visible bool)
	afterFunc func(time.Duration, func()) *time.Timer

	mu         sync.Mutex
	current    Message
	visible    bool
	generation uint64
	timer      *time.Timer
}

// New creates a notifier that dismisses messages after ttl. onChange, if not
// nil, is called with every show and dismiss.
func New(ttl time.Duration, onChange func(msg Message, visible bool)) *Notifier {
	return &Notifier{ttl: ttl, onChange: onChange, afterFunc: time.AfterFunc}
}

// Show replaces the visible message.
func (n *Notifier) Show(kind Kind, text string) {
	n.mu.Lock()
	if n.timer != nil {
		n.timer.Stop()
	}
	n.generation++
	gen := n.generation
	n.current = Message{Kind: kind, Text: text}
	n.visible = true
	n.timer = n.afterFunc(n.ttl, func() { n.dismiss(gen) })
	msg := n.current
	n.mu.Unlock()

	n.emit(msg, true)
}

// Error shows err as a failure message.
func (n *Notifier) Error(err error) {
	n.Show(Failure, err.Error())
}

// Current returns the visible message, if any.
func (n *Notifier) Current() (Message, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current, n.visible
}

func (n *Notifier) dismiss(gen uint64) {
	n.mu.Lock()
	if gen != n.generation || !n.visible {
		n.mu.Unlock()
		return
	}
	n.visible = false
	msg := n.current
	n.mu.Unlock()

	n.emit(msg, false)
}

func (n *Notifier) emit(msg Message, visible bool) {
	if n.onChange != nil {
		n.onChange(msg, visible)
	}
}
