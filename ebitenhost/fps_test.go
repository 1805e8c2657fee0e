package ebitenhost

import "testing"

func TestFPSLabelRefresh(t *testing.T) {
	calls := 0
	l := newFPSLabel()
	l.sample = func() (float64, float64) {
		calls++
		return 59.94, 60
	}

	l.update(0.01)
	if calls != 1 {
		t.Fatalf("first update sampled %d times, want 1", calls)
	}
	if want := "FPS: 59.9\nTPS: 60.0"; l.text != want {
		t.Errorf("text = %q, want %q", l.text, want)
	}

	l.update(0.2)
	l.update(0.2)
	if calls != 1 {
		t.Errorf("sampled %d times before refresh interval, want 1", calls)
	}
	l.update(0.2)
	if calls != 2 {
		t.Errorf("sampled %d times after refresh interval, want 2", calls)
	}
}
