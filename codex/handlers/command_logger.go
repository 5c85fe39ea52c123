package handlers

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cardcodex/codex/codex/database/models"
	"github.com/cardcodex/codex/codex/database/repositories"
	"github.com/cardcodex/codex/codex/logger"
	"github.com/cardcodex/codex/codex/utils"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/snowflake/v2"
	"golang.org/x/time/rate"
)

const (
	// Per-user command budget: one command every two seconds, small burst.
	limiterInterval = 2 * time.Second
	limiterBurst    = 3

	recordTimeout = 5 * time.Second

	// watchdogTimeout outlasts every handler's own context deadline, so it
	// only trips on a handler that genuinely hung.
	watchdogTimeout = 35 * time.Second
)

var (
	errHandlerPanic   = errors.New("handler panicked")
	errHandlerTimeout = errors.New("handler timed out")
)

// Middleware wraps every command and component handler: rate limiting,
// structured logging, panic containment and usage recording. An interaction
// is never left unacknowledged, even when the handler blows up.
type Middleware struct {
	stats repositories.StatsRepository

	mu       sync.Mutex
	limiters map[snowflake.ID]*rate.Limiter
}

func NewMiddleware(stats repositories.StatsRepository) *Middleware {
	return &Middleware{
		stats:    stats,
		limiters: make(map[snowflake.ID]*rate.Limiter),
	}
}

func (m *Middleware) limiter(userID snowflake.ID) *rate.Limiter {
	m.mu.Lock()
	defer m.mu.Unlock()

	l, ok := m.limiters[userID]
	if !ok {
		l = rate.NewLimiter(rate.Every(limiterInterval), limiterBurst)
		m.limiters[userID] = l
	}
	return l
}

// guard runs fn on its own goroutine, converting a panic into an error and
// giving up once the watchdog window passes. A timed-out fn keeps running;
// only its interaction is abandoned.
func guard(timeout time.Duration, fn func() error) error {
	done := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- fmt.Errorf("%w: %v", errHandlerPanic, r)
			}
		}()
		done <- fn()
	}()

	select {
	case err := <-done:
		return err
	case <-time.After(timeout):
		return fmt.Errorf("%w after %s", errHandlerTimeout, timeout)
	}
}

// WrapCommand decorates a command handler. The watchdog guarantees the
// interaction is answered even when the handler hangs or panics.
func (m *Middleware) WrapCommand(name string, h handler.CommandHandler) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		if !m.limiter(e.User().ID).Allow() {
			return utils.EH.CreateUserError(e, "Slow down a little, then try again.")
		}

		start := time.Now()
		err := guard(watchdogTimeout, func() error { return h(e) })
		logger.LogCommand(name, time.Since(start), err)

		if errors.Is(err, errHandlerPanic) || errors.Is(err, errHandlerTimeout) {
			// Best effort, the interaction may already be acknowledged.
			_ = utils.EH.CreateSystemError(e)
		}

		m.record(name, e.User().ID, e.GuildID(), "")
		return err
	}
}

// WrapComponent decorates a component handler.
func (m *Middleware) WrapComponent(name string, h handler.ComponentHandler) handler.ComponentHandler {
	return func(e *handler.ComponentEvent) (err error) {
		start := time.Now()
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("component handler panicked: %v", r)
				logger.LogError("Component interaction failed", err,
					"name", name,
					"user_id", e.User().ID.String())
				_ = e.CreateMessage(utils.ComponentApology(utils.ErrorApology))
			}
		}()

		err = h(e)
		if err != nil {
			logger.LogError("Component interaction failed", err,
				"name", name,
				"user_id", e.User().ID.String(),
				"took", time.Since(start).String())
		}
		return err
	}
}

// RecordCardView notes that a card was presented, feeding the usage metrics.
func (m *Middleware) RecordCardView(userID snowflake.ID, guildID *snowflake.ID, cardID string) {
	m.record("card-view", userID, guildID, cardID)
}

func (m *Middleware) record(command string, userID snowflake.ID, guildID *snowflake.ID, cardID string) {
	if m.stats == nil {
		return
	}

	guild := ""
	if guildID != nil {
		guild = guildID.String()
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
		defer cancel()

		if err := m.stats.Record(ctx, &models.CommandStat{
			Command: command,
			UserID:  userID.String(),
			GuildID: guild,
			CardID:  cardID,
		}); err != nil {
			logger.LogError("Failed to record usage", err)
		}
	}()
}
