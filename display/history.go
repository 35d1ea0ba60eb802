package display

// History is a fixed capacity FIFO of frames. Pushing into a full history
// evicts the oldest frame.
type History struct {
	frames [][]float64
	head   int // index of the oldest frame
	size   int
}

// NewHistory returns an empty history holding at most capacity frames. The
// capacity is clamped to at least one.
func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = 1
	}

	return &History{frames: make([][]float64, capacity)}
}

// Cap returns the capacity.
func (h *History) Cap() int {
	return len(h.frames)
}

// Len returns the number of stored frames.
func (h *History) Len() int {
	return h.size
}

// Push appends frame, evicting the oldest one when full.
func (h *History) Push(frame []float64) {
	tail := (h.head + h.size) % len(h.frames)
	h.frames[tail] = frame

	if h.size < len(h.frames) {
		h.size++
		return
	}

	h.head = (h.head + 1) % len(h.frames)
}

// At returns the i-th stored frame, oldest first.
func (h *History) At(i int) []float64 {
	return h.frames[(h.head+i)%len(h.frames)]
}

// Resize changes the capacity, keeping the newest frames that still fit.
func (h *History) Resize(capacity int) {
	if capacity < 1 {
		capacity = 1
	}

	if capacity == len(h.frames) {
		return
	}

	keep := h.size
	if keep > capacity {
		keep = capacity
	}

	frames := make([][]float64, capacity)
	for i := 0; i < keep; i++ {
		frames[i] = h.At(h.size - keep + i)
	}

	h.frames = frames
	h.head = 0
	h.size = keep
}

// Concat appends every stored frame to dst, oldest first.
func (h *History) Concat(dst []float64) []float64 {
	for i := 0; i < h.size; i++ {
		dst = append(dst, h.At(i)...)
	}

	return dst
}

// Clear drops every frame.
func (h *History) Clear() {
	for i := range h.frames {
		h.frames[i] = nil
	}

	h.head = 0
	h.size = 0
}
