package mystify

// History is a bounded FIFO of polygon snapshots. When full, pushing a new
// snapshot evicts the oldest one. Stored polygons are copies; later changes
// to the pushed polygon do not reach them.
type History struct {
	buf  []Polygon
	head int // index of the oldest entry
	size int
}

// NewHistory returns an empty history holding at most capacity snapshots.
func NewHistory(capacity int) *History {
	if capacity < 0 {
		capacity = 0
	}
	return &History{buf: make([]Polygon, capacity)}
}

// Cap returns the maximum number of snapshots.
func (h *History) Cap() int {
	return len(h.buf)
}

// Len returns the number of stored snapshots.
func (h *History) Len() int {
	return h.size
}

// Push stores a copy of p, evicting the oldest snapshot when full. The
// evicted slot's vertex storage is reused for the new snapshot.
func (h *History) Push(p Polygon) {
	if len(h.buf) == 0 {
		return
	}
	if h.size < len(h.buf) {
		i := (h.head + h.size) % len(h.buf)
		h.buf[i] = p.cloneInto(h.buf[i])
		h.size++
		return
	}
	h.buf[h.head] = p.cloneInto(h.buf[h.head])
	h.head = (h.head + 1) % len(h.buf)
}

// At returns the i-th snapshot, 0 being the oldest. The returned polygon
// shares storage with the history and must not be modified.
func (h *History) At(i int) Polygon {
	if i < 0 || i >= h.size {
		panic("mystify: history index out of range")
	}
	return h.buf[(h.head+i)%len(h.buf)]
}

// Each calls fn for every snapshot from oldest to newest.
func (h *History) Each(fn func(i int, p Polygon)) {
	for i := 0; i < h.size; i++ {
		fn(i, h.buf[(h.head+i)%len(h.buf)])
	}
}

// Clear drops all snapshots.
func (h *History) Clear() {
	for i := range h.buf {
		h.buf[i] = Polygon{}
	}
	h.head = 0
	h.size = 0
}
