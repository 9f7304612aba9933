package notify

import (
	"testing"
	"time"
)

func TestShowAndDismiss(t *testing.T) {
	dismissed := make(chan Message, 1)
	n := New(20*time.Millisecond, func(msg Message, visible bool) {
		if !visible {
			dismissed <- msg
		}
	})

	n.Show(Success, "Saved")
	if msg, ok := n.Current(); !ok || msg.Text != "Saved" {
		t.Fatalf("Expected visible message, got %+v (visible=%v)", msg, ok)
	}

	select {
	case msg := <-dismissed:
		if msg.Text != "Saved" {
			t.Errorf("Unexpected dismissed message %q", msg.Text)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Message was never dismissed")
	}
	if _, ok := n.Current(); ok {
		t.Error("Expected no visible message after dismiss")
	}
}

func TestLastMessageWins(t *testing.T) {
	var timers []func()
	n := New(time.Hour, nil)
	n.afterFunc = func(d time.Duration, f func()) *time.Timer {
		timers = append(timers, f)
		return time.NewTimer(d)
	}

	n.Show(Failure, "first")
	n.Show(Success, "second")

	// the first timer firing late must not hide the second message
	timers[0]()
	msg, ok := n.Current()
	if !ok || msg.Text != "second" {
		t.Fatalf("Expected second message to stay visible, got %+v (visible=%v)", msg, ok)
	}

	timers[1]()
	if _, ok := n.Current(); ok {
		t.Error("Expected second timer to dismiss the message")
	}
}
