package state

import (
	"sync"
	"toolcrib/internal/events"

	logger "github.com/Bparsons0904/goLogger"
)

// Store serializes every state change through Reduce and broadcasts the ones
// other components care about.
type Store struct {
	mu    sync.Mutex
	state State
	bus   *events.EventBus
	log   logger.Logger
}

// NewStore accepts a nil bus.
func NewStore(bus *events.EventBus) *Store {
	return &Store{
		state: New(),
		bus:   bus,
		log:   logger.New("store"),
	}
}

// Dispatch applies action and returns a snapshot of the resulting state.
func (s *Store) Dispatch(action Action) State {
	s.mu.Lock()
	s.state = Reduce(s.state, action)
	snapshot := s.state.Clone()
	s.mu.Unlock()

	s.log.Function("Dispatch").Debug("action applied", "action", action.actionName())
	s.broadcast(action, snapshot)

	return snapshot
}

func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

func (s *Store) broadcast(action Action, snapshot State) {
	if s.bus == nil {
		return
	}

	log := s.log.Function("broadcast")

	var err error
	switch a := action.(type) {
	case ErrorNoticed:
		err = s.bus.PublishNotice(events.ERROR_NOTICE, a.Message)
	case SuccessNoticed:
		err = s.bus.PublishNotice(events.SUCCESS_NOTICE, a.Message)
	case ProbeFinished, LoginSucceeded, SessionCleared:
		username := ""
		if snapshot.User != nil {
			username = snapshot.User.Username
		}
		err = s.bus.Publish(events.SESSION_CHANNEL, events.Event{
			Type: events.SESSION_CHANGED,
			Data: map[string]any{
				"authenticated": snapshot.Authenticated(),
				"username":      username,
			},
		})
	case ReloadFinished:
		err = s.bus.Publish(events.STORE_CHANNEL, events.Event{
			Type: events.STORE_RELOADED,
			Data: map[string]any{
				"reloads": snapshot.Reloads,
				"stale":   len(snapshot.Stale),
				"aborted": a.Aborted,
			},
		})
	}

	if err != nil {
		log.Warn("failed to broadcast action", "error", err)
	}
}
