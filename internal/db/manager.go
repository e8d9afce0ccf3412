package db

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// State of the connection manager. There is no intermediate "connecting"
// state: connects are synchronous and blocking.
type State int

const (
	Disconnected State = iota
	Connected
)

func (s State) String() string {
	if s == Connected {
		return "connected"
	}
	return "disconnected"
}

// Manager owns the single database session for the process. It is
// constructed once in main and passed by reference to every consumer; the
// session is re-opened transparently when found stale.
type Manager struct {
	mu   sync.Mutex
	cfg  Config
	dial dialer
	log  *slog.Logger
	sess Session
}

func NewManager(cfg Config, log *slog.Logger) *Manager {
	return &Manager{cfg: cfg, dial: pgxDial, log: log}
}

// Connect opens a fresh session, closing any previous one first. A failure
// leaves the manager Disconnected and is returned as an error, never a
// panic.
func (m *Manager) Connect(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.connectLocked(ctx)
}

func (m *Manager) connectLocked(ctx context.Context) error {
	if m.sess != nil {
		_ = m.sess.Close(ctx)
		m.sess = nil
	}

	sess, err := m.dial(ctx, m.cfg)
	if err != nil {
		metricConnectFailures.Inc()
		m.log.Error("database connect failed", "host", m.cfg.Host, "db", m.cfg.Name, "err", err)
		return fmt.Errorf("connect to %s:%d/%s: %w", m.cfg.Host, m.cfg.Port, m.cfg.Name, err)
	}

	m.sess = sess
	metricConnects.Inc()
	m.log.Info("database connected", "host", m.cfg.Host, "db", m.cfg.Name)
	return nil
}

// Close releases the session. Idempotent: closing an already-closed manager
// is a no-op.
func (m *Manager) Close(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sess == nil {
		return nil
	}
	err := m.sess.Close(ctx)
	m.sess = nil
	return err
}

// State reports whether a live session is currently held.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sess == nil || m.sess.IsClosed() {
		return Disconnected
	}
	return Connected
}

// session returns the live session, reconnecting first if the held one is
// missing or was closed by the peer.
func (m *Manager) session(ctx context.Context) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sess == nil || m.sess.IsClosed() {
		if err := m.connectLocked(ctx); err != nil {
			return nil, err
		}
	}
	return m.sess, nil
}

// forceClose drops the session so the next use dials from scratch. Used by
// the executor after a failed statement.
func (m *Manager) forceClose(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sess != nil {
		_ = m.sess.Close(ctx)
		m.sess = nil
	}
}
