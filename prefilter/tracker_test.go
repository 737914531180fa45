package prefilter

import (
	"sync"
	"testing"
)

// fixedPrefilter finds a candidate in every haystack that is not empty.
type fixedPrefilter struct{}

func (fixedPrefilter) Find(haystack []byte, start int) int {
	if start < len(haystack) {
		return start
	}
	return -1
}
func (fixedPrefilter) IsComplete() bool { return false }
func (fixedPrefilter) LiteralLen() int  { return 0 }
func (fixedPrefilter) HeapBytes() int   { return 7 }

func TestTracker_NilInner(t *testing.T) {
	if NewTracker(nil) != nil {
		t.Error("NewTracker(nil) must return nil")
	}
}

func TestTracker_Reject(t *testing.T) {
	tr := NewTracker(NewBuilder(makeSeq(false, "needle")).Build())

	if tr.Reject([]byte("a needle here")) {
		t.Error("line with the literal must not be rejected")
	}
	if !tr.Reject([]byte("nothing")) {
		t.Error("line without the literal must be rejected")
	}

	checked, rejected, active := tr.Stats()
	if checked != 2 || rejected != 1 || !active {
		t.Errorf("Stats() = %d, %d, %v; want 2, 1, true", checked, rejected, active)
	}
}

func TestTracker_RetiresIneffectivePrefilter(t *testing.T) {
	tr := NewTrackerWithConfig(fixedPrefilter{}, TrackerConfig{
		CheckInterval: 4,
		MinRejectRate: 0.5,
		WarmupPeriod:  8,
	})

	line := []byte("x")
	for i := 0; i < 7; i++ {
		tr.Reject(line)
	}
	if !tr.IsActive() {
		t.Fatal("tracker retired during warmup")
	}
	tr.Reject(line)
	if tr.IsActive() {
		t.Fatal("tracker should retire after warmup with no rejects")
	}

	// A retired tracker never rejects, even lines the prefilter would reject.
	if tr.Reject(nil) {
		t.Error("retired tracker rejected a line")
	}

	tr.Reset()
	if !tr.IsActive() {
		t.Error("Reset must re-enable the prefilter")
	}
	if !tr.Reject(nil) {
		t.Error("active tracker must reject an empty line")
	}
}

func TestTracker_StaysActiveWhenEffective(t *testing.T) {
	tr := NewTrackerWithConfig(fixedPrefilter{}, TrackerConfig{
		CheckInterval: 2,
		MinRejectRate: 0.4,
		WarmupPeriod:  2,
	})
	for i := 0; i < 100; i++ {
		if i%2 == 0 {
			tr.Reject(nil)
		} else {
			tr.Reject([]byte("x"))
		}
	}
	if !tr.IsActive() {
		t.Error("tracker with 50% rejects must stay active")
	}
}

func TestTracker_Delegates(t *testing.T) {
	tr := NewTracker(fixedPrefilter{})
	if tr.IsComplete() || tr.HeapBytes() != 7 {
		t.Error("tracker must delegate IsComplete and HeapBytes")
	}
	if _, ok := tr.Inner().(fixedPrefilter); !ok {
		t.Error("Inner() must return the wrapped prefilter")
	}
}

func TestTracker_Concurrent(t *testing.T) {
	tr := NewTracker(NewBuilder(makeSeq(false, "ab", "cd")).Build())

	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 250; i++ {
				tr.Reject([]byte("xxcdxx"))
			}
		}()
	}
	wg.Wait()

	// Every line holds a literal, so the tracker retires at the first
	// checkpoint after warmup.
	checked, rejected, active := tr.Stats()
	if active {
		t.Error("tracker should have retired")
	}
	if rejected != 0 || checked < 128 || checked > 1000 {
		t.Errorf("Stats() = %d, %d; want 128..1000 checked, 0 rejected", checked, rejected)
	}
}
