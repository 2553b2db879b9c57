package agents

import (
	"math"
	"sync"
)

// Tracker holds the live state of the build crew. It is safe for concurrent
// use: the builder updates it from pipeline goroutines while the UI reads
// snapshots.
type Tracker struct {
	mu     sync.RWMutex
	agents []Agent
	index  map[ID]int
	onSet  func()
}

// NewTracker creates a Tracker with the full roster in pending state.
func NewTracker() *Tracker {
	t := &Tracker{}
	t.resetLocked()
	return t
}

// OnChange registers a callback invoked after every state mutation. Used by
// the UI to request a redraw. Must be set before concurrent use.
func (t *Tracker) OnChange(fn func()) {
	t.mu.Lock()
	t.onSet = fn
	t.mu.Unlock()
}

// Reset returns every agent to pending and clears sub-statuses.
func (t *Tracker) Reset() {
	t.mu.Lock()
	t.resetLocked()
	fn := t.onSet
	t.mu.Unlock()
	if fn != nil {
		fn()
	}
}

func (t *Tracker) resetLocked() {
	t.agents = Roster()
	t.index = make(map[ID]int, len(t.agents))
	for i, a := range t.agents {
		t.index[a.ID] = i
	}
}

// Set transitions one agent to the given status. Leaving the in-progress
// state clears the agent's sub-status.
func (t *Tracker) Set(id ID, status Status) {
	t.SetMany([]ID{id}, status)
}

// SetMany transitions several agents to the same status at once.
func (t *Tracker) SetMany(ids []ID, status Status) {
	t.mu.Lock()
	for _, id := range ids {
		i, ok := t.index[id]
		if !ok {
			continue
		}
		t.agents[i].Status = status
		if status != StatusInProgress {
			t.agents[i].SubStatus = ""
		}
	}
	fn := t.onSet
	t.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// SetSubStatus updates the live activity line for one agent.
func (t *Tracker) SetSubStatus(id ID, subStatus string) {
	t.mu.Lock()
	if i, ok := t.index[id]; ok {
		t.agents[i].SubStatus = subStatus
	}
	fn := t.onSet
	t.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// FailInProgress marks every in-progress agent as errored. Called when the
// pipeline aborts so the crew display reflects where it stopped.
func (t *Tracker) FailInProgress() {
	t.mu.Lock()
	for i := range t.agents {
		if t.agents[i].Status == StatusInProgress {
			t.agents[i].Status = StatusError
			t.agents[i].SubStatus = ""
		}
	}
	fn := t.onSet
	t.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// CompleteAll marks the whole crew completed. Used when resuming a finished
// session from the store.
func (t *Tracker) CompleteAll() {
	t.mu.Lock()
	for i := range t.agents {
		t.agents[i].Status = StatusCompleted
		t.agents[i].SubStatus = ""
	}
	fn := t.onSet
	t.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// Started reports whether any agent has left the pending state.
func (t *Tracker) Started() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, a := range t.agents {
		if a.Status != StatusPending {
			return true
		}
	}
	return false
}

// Snapshot returns a copy of the crew state in display order.
func (t *Tracker) Snapshot() []Agent {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]Agent, len(t.agents))
	copy(out, t.agents)
	return out
}

// Progress returns the completion percentage, computed as completed agents
// over roster size. Not monotonic across a Reset.
func (t *Tracker) Progress() float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if len(t.agents) == 0 {
		return 0
	}
	completed := 0
	for _, a := range t.agents {
		if a.Status == StatusCompleted {
			completed++
		}
	}
	return float64(completed) / float64(len(t.agents)) * 100
}

// ProgressDisplay returns Progress rounded to the nearest whole percent for
// rendering.
func (t *Tracker) ProgressDisplay() int {
	return int(math.Round(t.Progress()))
}
