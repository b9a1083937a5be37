package monitor

import (
	"fmt"
	"sync"

	"github.com/dongqixiaoquan-sketch/gold/src/models"
	"github.com/dongqixiaoquan-sketch/gold/src/strategy"
)

// SessionContext owns the mutable state of one operator session: the active
// strategy, the monitor state machine and the bounded history. It is built
// once and injected into the monitor worker; nothing reads ambient globals.
type SessionContext struct {
	mu       sync.RWMutex
	strategy *strategy.HedgeStrategy
	state    models.MonitorState
	history  *models.HistoryBuffer
}

func NewSessionContext() *SessionContext {
	return &SessionContext{
		history: models.NewHistoryBuffer(),
	}
}

// InitStrategy validates the config and atomically replaces the active
// strategy, clearing the history. A rejected config leaves the prior
// strategy and its history untouched.
func (c *SessionContext) InitStrategy(config models.StrategyConfig) (*strategy.HedgeStrategy, error) {
	s, err := strategy.NewHedgeStrategy(config)
	if err != nil {
		return nil, fmt.Errorf("SessionContext.InitStrategy: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.strategy = s
	c.history.Clear()

	return s, nil
}

func (c *SessionContext) Strategy() *strategy.HedgeStrategy {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.strategy
}

func (c *SessionContext) History() *models.HistoryBuffer {
	return c.history
}

func (c *SessionContext) State() models.MonitorState {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.state
}

func (c *SessionContext) setState(state models.MonitorState) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = state
}
