package mystify

import "testing"

func poly(x float64) Polygon {
	return Polygon{Vertices: []Vertex{{X: x}, {X: x + 1}}}
}

func TestHistoryPushUntilFull(t *testing.T) {
	h := NewHistory(3)
	if h.Cap() != 3 || h.Len() != 0 {
		t.Fatalf("cap/len = %d/%d, want 3/0", h.Cap(), h.Len())
	}
	h.Push(poly(1))
	h.Push(poly(2))
	if h.Len() != 2 {
		t.Errorf("Len() = %d, want 2", h.Len())
	}
	if h.At(0).Vertices[0].X != 1 || h.At(1).Vertices[0].X != 2 {
		t.Errorf("order = %v, %v", h.At(0), h.At(1))
	}
}

func TestHistoryEvictsOldestFirst(t *testing.T) {
	h := NewHistory(3)
	for i := 1; i <= 7; i++ {
		h.Push(poly(float64(i)))
		if h.Len() > h.Cap() {
			t.Fatalf("Len() = %d exceeds Cap() = %d", h.Len(), h.Cap())
		}
	}
	var got []float64
	h.Each(func(i int, p Polygon) {
		got = append(got, p.Vertices[0].X)
	})
	want := []float64{5, 6, 7}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestHistorySnapshotIsolation(t *testing.T) {
	h := NewHistory(4)
	latest := poly(10)
	h.Push(latest)
	latest.Vertices[0].X = 500
	h.Push(latest)

	if got := h.At(0).Vertices[0].X; got != 10 {
		t.Errorf("first snapshot changed to %v, want 10", got)
	}
	if got := h.At(1).Vertices[0].X; got != 500 {
		t.Errorf("second snapshot = %v, want 500", got)
	}
}

func TestHistoryReuseDoesNotAlias(t *testing.T) {
	h := NewHistory(2)
	latest := poly(0)
	for i := 0; i < 10; i++ {
		latest.Vertices[0].X = float64(i)
		h.Push(latest)
	}
	if h.At(0).Vertices[0].X != 8 || h.At(1).Vertices[0].X != 9 {
		t.Errorf("entries = %v, %v, want 8, 9", h.At(0).Vertices[0].X, h.At(1).Vertices[0].X)
	}
}

func TestHistoryZeroCapacity(t *testing.T) {
	h := NewHistory(0)
	h.Push(poly(1))
	if h.Len() != 0 {
		t.Errorf("Len() = %d, want 0", h.Len())
	}
	if NewHistory(-5).Cap() != 0 {
		t.Error("negative capacity should clamp to 0")
	}
}

func TestHistoryAtOutOfRangePanics(t *testing.T) {
	h := NewHistory(2)
	h.Push(poly(1))
	defer func() {
		if recover() == nil {
			t.Error("At(1) did not panic")
		}
	}()
	h.At(1)
}

func TestHistoryClear(t *testing.T) {
	h := NewHistory(3)
	h.Push(poly(1))
	h.Push(poly(2))
	h.Clear()
	if h.Len() != 0 {
		t.Errorf("Len() = %d after Clear, want 0", h.Len())
	}
	h.Push(poly(3))
	if h.At(0).Vertices[0].X != 3 {
		t.Errorf("At(0) = %v after Clear+Push, want 3", h.At(0).Vertices[0].X)
	}
}
