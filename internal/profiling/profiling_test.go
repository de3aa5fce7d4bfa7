package profiling

import (
	"strings"
	"testing"
	"time"
)

func TestTrackCountsCalls(t *testing.T) {
	ResetFrame()
	for i := 0; i < 3; i++ {
		Track("cube.SetCell")()
	}
	Track("cube.Expand")()

	if got := Calls("cube.SetCell"); got != 3 {
		t.Fatalf("Calls(cube.SetCell): got %d, want 3", got)
	}
	if got := Calls("missing"); got != 0 {
		t.Fatalf("Calls(missing): got %d, want 0", got)
	}
	snap := Snapshot()
	if len(snap) != 2 {
		t.Fatalf("Snapshot: got %d entries, want 2", len(snap))
	}

	ResetFrame()
	if len(Snapshot()) != 0 {
		t.Fatalf("ResetFrame did not clear totals")
	}
}

func TestTopNOrdering(t *testing.T) {
	ResetFrame()
	mu.Lock()
	totals["slow"] = Stat{Total: 4200 * time.Microsecond, Calls: 2}
	totals["fast"] = Stat{Total: 1000 * time.Microsecond, Calls: 7}
	totals["tiny"] = Stat{Total: 10 * time.Microsecond, Calls: 1}
	mu.Unlock()
	defer ResetFrame()

	got := TopN(2)
	want := "slow:4.2ms/2, fast:1ms/7"
	if got != want {
		t.Fatalf("TopN(2): got %q, want %q", got, want)
	}
	if all := TopN(10); strings.Count(all, ",") != 2 {
		t.Fatalf("TopN(10) should list all three entries, got %q", all)
	}
}
