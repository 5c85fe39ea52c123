package ui

import (
	"strings"
	"sync/atomic"
	"testing"
	"time"
	"unicode/utf8"
)

func TestManager_ExpireFiresOnce(t *testing.T) {
	m := NewManager()

	var fired atomic.Int32
	id := m.Open(1, 10*time.Millisecond, nil, func() {
		fired.Add(1)
	})
	m.Activate(id)

	time.Sleep(50 * time.Millisecond)
	if got := fired.Load(); got != 1 {
		t.Errorf("expire fired %d times, want 1", got)
	}
}

func TestManager_PendingSessionDoesNotExpire(t *testing.T) {
	m := NewManager()

	var fired atomic.Int32
	id := m.Open(1, 10*time.Millisecond, nil, func() {
		fired.Add(1)
	})

	time.Sleep(50 * time.Millisecond)
	if got := fired.Load(); got != 0 {
		t.Fatalf("pending session expired %d times before Activate", got)
	}

	m.Activate(id)
	time.Sleep(50 * time.Millisecond)
	if got := fired.Load(); got != 1 {
		t.Errorf("expire fired %d times after Activate, want 1", got)
	}
}

func TestManager_CloseCancelsExpiry(t *testing.T) {
	m := NewManager()

	var fired atomic.Int32
	id := m.Open(1, 10*time.Millisecond, nil, func() {
		fired.Add(1)
	})
	m.Activate(id)
	m.Close(id)

	time.Sleep(50 * time.Millisecond)
	if got := fired.Load(); got != 0 {
		t.Errorf("expire fired %d times after Close, want 0", got)
	}
}

func TestManager_ClosedPendingSessionStaysClosed(t *testing.T) {
	m := NewManager()

	var fired atomic.Int32
	id := m.Open(1, 10*time.Millisecond, nil, func() {
		fired.Add(1)
	})
	m.Close(id)
	m.Activate(id)

	time.Sleep(50 * time.Millisecond)
	if got := fired.Load(); got != 0 {
		t.Errorf("expire fired %d times on a discarded session, want 0", got)
	}
}

func TestManager_CustomIDMatchesRoute(t *testing.T) {
	m := NewManager()
	id := m.Open(1, time.Minute, nil, func() {})
	defer m.Close(id)

	customID := m.CustomID(id, ActionCycleFace)
	parts := strings.Split(customID, "/")
	if len(parts) != 4 || parts[1] != "cdx" || parts[2] != id || parts[3] != ActionCycleFace {
		t.Errorf("CustomID(%q, %q) = %q, does not fit %q", id, ActionCycleFace, customID, ComponentPattern)
	}
}

func TestManager_SessionIDsAreUnique(t *testing.T) {
	m := NewManager()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := m.Open(1, time.Minute, nil, func() {})
		if seen[id] {
			t.Fatalf("duplicate session id %q", id)
		}
		seen[id] = true
		m.Close(id)
	}
}

func TestSelectionPrompt(t *testing.T) {
	if got := selectionPrompt(3, 3); strings.Contains(got, "Only") {
		t.Errorf("selectionPrompt(3, 3) = %q, must not mention truncation", got)
	}
	got := selectionPrompt(40, 25)
	if !strings.Contains(got, "40 results") || !strings.Contains(got, "first 25") {
		t.Errorf("selectionPrompt(40, 25) = %q", got)
	}
}

func TestTruncateLabel(t *testing.T) {
	if got := truncateLabel("short"); got != "short" {
		t.Errorf("truncateLabel(short) = %q", got)
	}

	// 60 characters but 120 bytes: within the cap, must pass untouched.
	accented := strings.Repeat("é", 60)
	if got := truncateLabel(accented); got != accented {
		t.Errorf("truncateLabel truncated a %d-character label", utf8.RuneCountInString(accented))
	}

	long := strings.Repeat("é", 120)
	got := truncateLabel(long)
	if !utf8.ValidString(got) {
		t.Fatalf("truncateLabel produced invalid UTF-8: %q", got)
	}
	if utf8.RuneCountInString(got) != 100 || !strings.HasSuffix(got, "...") {
		t.Errorf("truncateLabel(long) = %d runes, want 100 ending in ellipsis", utf8.RuneCountInString(got))
	}

	ascii := strings.Repeat("x", 120)
	if got := truncateLabel(ascii); len(got) != 100 || !strings.HasSuffix(got, "...") {
		t.Errorf("truncateLabel(ascii) = %d chars", len(got))
	}
}
