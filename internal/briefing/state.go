package briefing

import "sync"

// State tracks a client's submission through the workflow.
type State int

const (
	StateIdle State = iota
	StateSubmitting
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateSubmitting:
		return "Submitting"
	case StateSucceeded:
		return "Succeeded"
	case StateFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// guard serializes submissions per client within this process. Only one
// transition out of Idle is allowed at a time; Succeeded and Failed re-arm so
// the client can submit again later. This is a session-level re-entrancy
// guard, not a cross-process lock.
type guard struct {
	mu     sync.Mutex
	states map[string]State
}

func newGuard() *guard {
	return &guard{states: map[string]State{}}
}

// begin moves the client into Submitting. It reports false when a submission
// is already running.
func (g *guard) begin(clientID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.states[clientID] == StateSubmitting {
		return false
	}
	g.states[clientID] = StateSubmitting
	return true
}

// finish records the outcome of the in-flight submission.
func (g *guard) finish(clientID string, ok bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if ok {
		g.states[clientID] = StateSucceeded
	} else {
		g.states[clientID] = StateFailed
	}
}

// state returns the client's current submission state.
func (g *guard) state(clientID string) State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.states[clientID]
}
