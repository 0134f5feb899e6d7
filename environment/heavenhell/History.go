package heavenhell

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/gopomdp/utils/matutils"
)

// Sentinel is the value of every entry of a padding frame in a History
const Sentinel float64 = -1.0

// History is a fixed capacity window over the most recent observation
// frames of an episode, oldest first. Once full, pushing a frame evicts
// the oldest frame.
type History struct {
	frames    []*mat.VecDense
	capacity  int
	frameSize int
}

// NewHistory returns a new, empty History holding at most capacity
// frames of length frameSize
func NewHistory(capacity, frameSize int) *History {
	if capacity < 1 {
		panic(fmt.Sprintf("newHistory: capacity must be positive, got %v",
			capacity))
	}
	return &History{
		frames:    make([]*mat.VecDense, 0, capacity),
		capacity:  capacity,
		frameSize: frameSize,
	}
}

// Reset clears the History and fills it with capacity-1 sentinel
// frames followed by first
func (h *History) Reset(first *mat.VecDense) {
	h.frames = h.frames[:0]
	for i := 0; i < h.capacity-1; i++ {
		h.Push(matutils.VecFill(h.frameSize, Sentinel))
	}
	h.Push(first)
}

// Push appends frame to the History, evicting the oldest frame if the
// History is over capacity
func (h *History) Push(frame *mat.VecDense) {
	if frame.Len() != h.frameSize {
		panic(fmt.Sprintf("push: frame length %v must match frame size %v",
			frame.Len(), h.frameSize))
	}

	h.frames = append(h.frames, frame)
	if len(h.frames) > h.capacity {
		copy(h.frames, h.frames[1:])
		h.frames[len(h.frames)-1] = nil
		h.frames = h.frames[:len(h.frames)-1]
	}
}

// Len returns the number of frames in the History
func (h *History) Len() int {
	return len(h.frames)
}

// Cap returns the maximum number of frames in the History
func (h *History) Cap() int {
	return h.capacity
}

// Frame returns the ith frame, with frame 0 being the oldest
func (h *History) Frame(i int) *mat.VecDense {
	return h.frames[i]
}

// Flatten concatenates all frames, oldest first, into a single vector
func (h *History) Flatten() *mat.VecDense {
	flat := make([]float64, 0, len(h.frames)*h.frameSize)
	for _, frame := range h.frames {
		flat = append(flat, frame.RawVector().Data...)
	}
	return mat.NewVecDense(len(flat), flat)
}

func (h *History) String() string {
	if len(h.frames) == 0 {
		return "[]"
	}
	rows := mat.NewDense(len(h.frames), h.frameSize, h.Flatten().RawVector().Data)
	return matutils.Format(rows)
}
