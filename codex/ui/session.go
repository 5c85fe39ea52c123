package ui

import (
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cardcodex/codex/codex/utils"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/snowflake/v2"
)

// ComponentPattern is the route every interactive session's components are
// registered under.
const ComponentPattern = "/cdx/{session}/{action}"

// Disposition tells the manager what to do with a session after an event.
type Disposition int

const (
	// KeepOpen re-arms the idle timer and keeps collecting.
	KeepOpen Disposition = iota
	// CloseSession ends the session; its timer is cancelled.
	CloseSession
)

// HandlerFunc consumes one component event of a live session. values carries
// select menu selections, empty for buttons.
type HandlerFunc func(e *handler.ComponentEvent, action string, values []string) (Disposition, error)

type session struct {
	ownerID snowflake.ID
	timeout time.Duration
	handle  HandlerFunc
	expire  func()
	timer   *time.Timer

	mu     sync.Mutex
	closed bool
}

// Manager owns every live interactive session: the result selectors and card
// navigators. Each session is single-owner, single-resolution, and holds
// exactly one idle timer. Events of one session are processed strictly one at
// a time.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*session
	pending  map[string]*session
	seq      atomic.Uint64
}

func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]*session),
		pending:  make(map[string]*session),
	}
}

// Open allocates a session owned by one user. The session stays pending, not
// routable and with its idle timer unarmed, until Activate: callers finish
// binding the session to its message first, so a component event never races
// those writes. expire runs when the idle timeout fires before a terminal
// event.
func (m *Manager) Open(ownerID snowflake.ID, timeout time.Duration, handle HandlerFunc, expire func()) string {
	id := strconv.FormatUint(m.seq.Add(1), 36) + "-" + strconv.FormatInt(time.Now().UnixMilli(), 36)
	s := &session{
		ownerID: ownerID,
		timeout: timeout,
		handle:  handle,
		expire:  expire,
	}

	m.mu.Lock()
	m.pending[id] = s
	m.mu.Unlock()
	return id
}

// Activate makes a pending session routable and arms its idle timer. A
// closed or unknown id is a no-op.
func (m *Manager) Activate(sessionID string) {
	m.mu.Lock()
	s := m.pending[sessionID]
	delete(m.pending, sessionID)
	if s != nil {
		m.sessions[sessionID] = s
	}
	m.mu.Unlock()

	if s == nil {
		return
	}
	s.timer = time.AfterFunc(s.timeout, func() {
		m.expireSession(sessionID)
	})
}

// CustomID builds the component custom id routing back to a session.
func (m *Manager) CustomID(sessionID, action string) string {
	return "/cdx/" + sessionID + "/" + action
}

// Close ends a session without firing its expiry, e.g. after a handoff.
// Pending sessions are discarded the same way.
func (m *Manager) Close(sessionID string) {
	m.mu.Lock()
	s := m.sessions[sessionID]
	if s == nil {
		s = m.pending[sessionID]
	}
	delete(m.sessions, sessionID)
	delete(m.pending, sessionID)
	m.mu.Unlock()

	if s == nil {
		return
	}
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
	}
}

// HandleComponent is the component route handler. Interactions from anyone
// but the session owner get an ephemeral apology and mutate nothing.
func (m *Manager) HandleComponent(e *handler.ComponentEvent) error {
	sessionID := e.Vars["session"]
	action := e.Vars["action"]

	m.mu.Lock()
	s := m.sessions[sessionID]
	m.mu.Unlock()

	if s == nil {
		return e.CreateMessage(utils.ComponentApology(utils.TimeoutApology))
	}
	if e.User().ID != s.ownerID {
		return e.CreateMessage(utils.ComponentApology(utils.InteractApology))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return e.CreateMessage(utils.ComponentApology(utils.TimeoutApology))
	}
	s.timer.Stop()

	var values []string
	if data, ok := e.Data.(discord.StringSelectMenuInteractionData); ok {
		values = data.Values
	}

	disposition, err := s.handle(e, action, values)
	if disposition == CloseSession || err != nil {
		s.closed = true
		m.mu.Lock()
		delete(m.sessions, sessionID)
		m.mu.Unlock()
		return err
	}

	s.timer.Reset(s.timeout)
	return err
}

func (m *Manager) expireSession(sessionID string) {
	m.mu.Lock()
	s := m.sessions[sessionID]
	delete(m.sessions, sessionID)
	m.mu.Unlock()

	if s == nil {
		return
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.mu.Unlock()

	s.expire()
}
