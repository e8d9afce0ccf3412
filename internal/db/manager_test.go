package db

import (
	"context"
	"errors"
	"testing"
)

func TestCloseIsIdempotent(t *testing.T) {
	sess := &fakeSession{tx: &fakeTx{}}
	dial, _ := sessionSequence(sess)
	m := testManager(dial)

	if err := m.Connect(context.Background()); err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	if err := m.Close(context.Background()); err != nil {
		t.Fatalf("first close errored: %v", err)
	}
	if err := m.Close(context.Background()); err != nil {
		t.Fatalf("second close errored: %v", err)
	}
	if m.State() != Disconnected {
		t.Errorf("expected disconnected state, got %v", m.State())
	}
}

func TestConnectFailureLeavesDisconnected(t *testing.T) {
	m := testManager(func(ctx context.Context, cfg Config) (Session, error) {
		return nil, errors.New("connection refused")
	})

	if err := m.Connect(context.Background()); err == nil {
		t.Fatal("expected connect error")
	}
	if m.State() != Disconnected {
		t.Errorf("expected disconnected state, got %v", m.State())
	}
}

func TestSessionReconnectsWhenStale(t *testing.T) {
	first := &fakeSession{tx: &fakeTx{}}
	second := &fakeSession{tx: &fakeTx{}}
	dial, calls := sessionSequence(first, second)
	m := testManager(dial)

	s, err := m.session(context.Background())
	if err != nil {
		t.Fatalf("session failed: %v", err)
	}
	if s != first {
		t.Fatal("expected first session")
	}

	// Peer closes the session; the next use must dial again.
	first.closed = true
	s, err = m.session(context.Background())
	if err != nil {
		t.Fatalf("session after staleness failed: %v", err)
	}
	if s != second {
		t.Fatal("expected a fresh session after staleness")
	}
	if *calls != 2 {
		t.Errorf("expected 2 dials, got %d", *calls)
	}
}

func TestStateReflectsSession(t *testing.T) {
	sess := &fakeSession{tx: &fakeTx{}}
	dial, _ := sessionSequence(sess)
	m := testManager(dial)

	if m.State() != Disconnected {
		t.Fatal("new manager should be disconnected")
	}
	if err := m.Connect(context.Background()); err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	if m.State() != Connected {
		t.Fatal("expected connected state")
	}
	sess.closed = true
	if m.State() != Disconnected {
		t.Fatal("peer-closed session should report disconnected")
	}
}
