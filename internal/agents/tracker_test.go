package agents

import (
	"sync"
	"testing"
)

func TestRoster(t *testing.T) {
	roster := Roster()
	if len(roster) != 8 {
		t.Fatalf("expected 8 agents, got %d", len(roster))
	}
	for _, a := range roster {
		if a.Status != StatusPending {
			t.Fatalf("agent %s should start pending, got %s", a.ID, a.Status)
		}
	}
	if roster[0].ID != MarketAnalysis || roster[7].ID != TutorPersona {
		t.Fatal("roster display order changed")
	}
}

func TestTrackerProgress(t *testing.T) {
	tr := NewTracker()

	if got := tr.Progress(); got != 0 {
		t.Fatalf("expected 0%% at start, got %v", got)
	}

	tr.SetMany(CurriculumAgents[:3], StatusCompleted)

	// 3 of 8 completed.
	if got := tr.Progress(); got != 37.5 {
		t.Fatalf("expected 37.5%%, got %v", got)
	}
	if got := tr.ProgressDisplay(); got != 38 {
		t.Fatalf("expected display 38, got %d", got)
	}
}

func TestTrackerProgress_InProgressDoesNotCount(t *testing.T) {
	tr := NewTracker()
	tr.SetMany([]ID{MarketAnalysis, CurriculumDesign}, StatusInProgress)
	if got := tr.Progress(); got != 0 {
		t.Fatalf("in-progress agents should not count, got %v", got)
	}
}

func TestTrackerSet_ClearsSubStatus(t *testing.T) {
	tr := NewTracker()
	tr.Set(MarketAnalysis, StatusInProgress)
	tr.SetSubStatus(MarketAnalysis, "Researching live web...")

	snap := tr.Snapshot()
	if snap[0].SubStatus != "Researching live web..." {
		t.Fatalf("expected sub-status set, got %q", snap[0].SubStatus)
	}

	tr.Set(MarketAnalysis, StatusCompleted)
	snap = tr.Snapshot()
	if snap[0].SubStatus != "" {
		t.Fatalf("sub-status should clear on completion, got %q", snap[0].SubStatus)
	}
}

func TestTrackerFailInProgress(t *testing.T) {
	tr := NewTracker()
	tr.SetMany([]ID{MarketAnalysis, CurriculumDesign}, StatusInProgress)
	tr.Set(ContentCreation, StatusCompleted)

	tr.FailInProgress()

	snap := tr.Snapshot()
	if snap[0].Status != StatusError || snap[1].Status != StatusError {
		t.Fatal("in-progress agents should become errored")
	}
	if snap[2].Status != StatusCompleted {
		t.Fatal("completed agents must not be touched")
	}
	if snap[3].Status != StatusPending {
		t.Fatal("pending agents must not be touched")
	}
}

func TestTrackerReset(t *testing.T) {
	tr := NewTracker()
	tr.CompleteAll()
	if got := tr.Progress(); got != 100 {
		t.Fatalf("expected 100%%, got %v", got)
	}

	tr.Reset()
	if got := tr.Progress(); got != 0 {
		t.Fatalf("expected 0%% after reset, got %v", got)
	}
	for _, a := range tr.Snapshot() {
		if a.Status != StatusPending {
			t.Fatalf("agent %s should be pending after reset", a.ID)
		}
	}
}

func TestTrackerOnChange(t *testing.T) {
	tr := NewTracker()
	var mu sync.Mutex
	calls := 0
	tr.OnChange(func() {
		mu.Lock()
		calls++
		mu.Unlock()
	})

	tr.Set(MarketAnalysis, StatusInProgress)
	tr.SetSubStatus(MarketAnalysis, "working")
	tr.Reset()

	mu.Lock()
	defer mu.Unlock()
	if calls != 3 {
		t.Fatalf("expected 3 change notifications, got %d", calls)
	}
}

func TestTrackerConcurrentAccess(t *testing.T) {
	tr := NewTracker()
	var wg sync.WaitGroup
	for range 16 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			tr.Set(MultimediaProduction, StatusInProgress)
			tr.SetSubStatus(MultimediaProduction, "drawing")
		}()
		go func() {
			defer wg.Done()
			_ = tr.Snapshot()
			_ = tr.Progress()
		}()
	}
	wg.Wait()
}
