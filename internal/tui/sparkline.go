package tui

// sparklineChars maps sample magnitudes to Unicode block elements ▁▂▃▄▅▆▇█.
var sparklineChars = [8]rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// RingBuffer is a fixed-capacity circular buffer of percentage samples.
// It backs the CPU and memory history lines of the dashboard.
type RingBuffer struct {
	samples []float64
	next    int
	full    bool
}

// NewRingBuffer creates a ring buffer with the given capacity.
func NewRingBuffer(capacity int) *RingBuffer {
	if capacity < 1 {
		capacity = 1
	}
	return &RingBuffer{samples: make([]float64, capacity)}
}

// Push records a sample, evicting the oldest once the buffer is full.
func (r *RingBuffer) Push(v float64) {
	r.samples[r.next] = v
	r.next++
	if r.next == len(r.samples) {
		r.next = 0
		r.full = true
	}
}

// Len returns the number of recorded samples.
func (r *RingBuffer) Len() int {
	if r.full {
		return len(r.samples)
	}
	return r.next
}

// Cap returns the buffer capacity.
func (r *RingBuffer) Cap() int { return len(r.samples) }

// Latest returns the most recent sample, or 0 if no sample was recorded.
func (r *RingBuffer) Latest() float64 {
	if r.Len() == 0 {
		return 0
	}
	idx := r.next - 1
	if idx < 0 {
		idx = len(r.samples) - 1
	}
	return r.samples[idx]
}

// Values returns the recorded samples in chronological order, oldest first.
func (r *RingBuffer) Values() []float64 {
	n := r.Len()
	if n == 0 {
		return nil
	}
	out := make([]float64, 0, n)
	if r.full {
		out = append(out, r.samples[r.next:]...)
	}
	out = append(out, r.samples[:r.next]...)
	return out
}

// Resize changes the capacity, keeping the most recent samples that fit.
// Used when the terminal is resized so the history matches the panel width.
func (r *RingBuffer) Resize(capacity int) {
	if capacity < 1 {
		capacity = 1
	}
	if capacity == len(r.samples) {
		return
	}
	kept := r.Values()
	if len(kept) > capacity {
		kept = kept[len(kept)-capacity:]
	}
	r.samples = make([]float64, capacity)
	r.next = 0
	r.full = false
	for _, v := range kept {
		r.Push(v)
	}
}

// Reset discards all samples.
func (r *RingBuffer) Reset() {
	r.next = 0
	r.full = false
}

// RenderSparkline converts percentage values (0..100) into a sparkline string.
func RenderSparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	runes := make([]rune, len(values))
	for i, v := range values {
		if v < 0 {
			v = 0
		}
		if v > 100 {
			v = 100
		}
		idx := int(v * 7.0 / 100.0)
		runes[i] = sparklineChars[idx]
	}
	return string(runes)
}
