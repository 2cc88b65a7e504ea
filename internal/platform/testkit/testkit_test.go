package testkit

import (
	"sync/atomic"
	"testing"
	"time"
)

var clock = func() string { return "real" }

func TestSwap(t *testing.T) {
	t.Run("inner", func(t *testing.T) {
		Swap(t, &clock, func() string { return "fake" })
		if clock() != "fake" {
			t.Fatalf("swap not applied")
		}
	})
	if clock() != "real" {
		t.Fatalf("swap not restored")
	}
}

func TestSerial(t *testing.T) {
	var inside, overlap atomic.Int32
	t.Run("group", func(t *testing.T) {
		for _, name := range []string{"a", "b", "c"} {
			t.Run(name, func(t *testing.T) {
				t.Parallel()
				Serial(t)
				if inside.Add(1) > 1 {
					overlap.Add(1)
				}
				time.Sleep(10 * time.Millisecond)
				inside.Add(-1)
			})
		}
	})
	if overlap.Load() != 0 {
		t.Fatalf("serial sections overlapped %d times", overlap.Load())
	}
}

func TestAssertions(t *testing.T) {
	MustPanic(t, func() { panic("boom") })
	MustContain(t, `{"level":"info","message":"fetched"}`, `"fetched"`)
}
