package rgbacanvas

import (
	intImage "github.com/gogpu/rgbacanvas/internal/image"
)

// snapshot is one full copy of the four channel planes.
type snapshot [numChannels]*Mask

// history holds the bounded undo stack and the redo stack.
//
// Every snapshot owns its planes exclusively: a snapshot is either on a
// stack, installed as the live plane set, or handed back to the pool.
// Undo and Redo move whole plane sets between the live slot and the stacks
// rather than copying them.
type history struct {
	depth int
	undo  []snapshot
	redo  []snapshot
	pool  *intImage.Pool
}

func newHistory(depth int) *history {
	return &history{
		depth: depth,
		undo:  make([]snapshot, 0, depth),
		// two spare sets cover one eviction plus one cleared redo entry
		pool: intImage.NewPool(2 * numChannels),
	}
}

// capture deep-copies live into planes taken from the pool.
func (h *history) capture(live snapshot) snapshot {
	var s snapshot
	for i, m := range live {
		s[i] = newMaskFrom(m.width, m.height, h.pool.Get(m.width, m.height))
		s[i].CopyFrom(m)
	}
	return s
}

// release hands the planes of s back to the pool.
func (h *history) release(s snapshot) {
	for _, m := range s {
		if m != nil {
			h.pool.Put(m.width, m.height, m.data)
		}
	}
}

// pushUndo appends s, evicting the oldest entry when the stack exceeds depth.
func (h *history) pushUndo(s snapshot) {
	h.undo = append(h.undo, s)
	if len(h.undo) > h.depth {
		oldest := h.undo[0]
		// shift instead of reslicing so the backing array does not grow forever
		copy(h.undo, h.undo[1:])
		h.undo[len(h.undo)-1] = snapshot{}
		h.undo = h.undo[:len(h.undo)-1]
		h.release(oldest)
		Logger().Debug("rgbacanvas: undo entry evicted", "depth", h.depth)
	}
}

func (h *history) clearRedo() {
	for i, s := range h.redo {
		h.release(s)
		h.redo[i] = snapshot{}
	}
	h.redo = h.redo[:0]
}

func (h *history) clear() {
	for i, s := range h.undo {
		h.release(s)
		h.undo[i] = snapshot{}
	}
	h.undo = h.undo[:0]
	h.clearRedo()
}

func popSnapshot(stack *[]snapshot) (snapshot, bool) {
	n := len(*stack)
	if n == 0 {
		return snapshot{}, false
	}
	s := (*stack)[n-1]
	(*stack)[n-1] = snapshot{}
	*stack = (*stack)[:n-1]
	return s, true
}

// PushUndo records the current planes as a new undo entry and clears the
// redo stack. The oldest entry is dropped when the undo stack is full.
//
// BeginStroke and the import operations call PushUndo themselves; call it
// directly only when mutating planes through other means.
func (c *Canvas) PushUndo() {
	if c.closed {
		return
	}
	c.hist.pushUndo(c.hist.capture(c.planes))
	c.hist.clearRedo()
}

// Undo restores the most recent undo entry and moves the current state onto
// the redo stack. It returns false and changes nothing when there is no
// entry to restore.
func (c *Canvas) Undo() bool {
	if c.closed {
		return false
	}
	prev, ok := popSnapshot(&c.hist.undo)
	if !ok {
		return false
	}
	c.hist.redo = append(c.hist.redo, c.planes)
	c.install(prev)
	return true
}

// Redo reapplies the most recently undone state and moves the current state
// onto the undo stack. It returns false and changes nothing when there is
// nothing to redo.
func (c *Canvas) Redo() bool {
	if c.closed {
		return false
	}
	next, ok := popSnapshot(&c.hist.redo)
	if !ok {
		return false
	}
	c.hist.pushUndo(c.planes)
	c.install(next)
	return true
}

// install makes s the live plane set. The previous live planes must already
// have been moved onto a stack.
func (c *Canvas) install(s snapshot) {
	c.planes = s
	c.stroke = StrokeIdle
	c.recomposite()
}

// CanUndo reports whether Undo would change the canvas.
func (c *Canvas) CanUndo() bool { return !c.closed && len(c.hist.undo) > 0 }

// CanRedo reports whether Redo would change the canvas.
func (c *Canvas) CanRedo() bool { return !c.closed && len(c.hist.redo) > 0 }

// UndoLen returns the number of undo entries.
func (c *Canvas) UndoLen() int {
	if c.closed {
		return 0
	}
	return len(c.hist.undo)
}

// RedoLen returns the number of redo entries.
func (c *Canvas) RedoLen() int {
	if c.closed {
		return 0
	}
	return len(c.hist.redo)
}

// UndoDepth returns the undo stack capacity.
func (c *Canvas) UndoDepth() int { return c.cfg.UndoDepth }

// ClearHistory drops every undo and redo entry.
func (c *Canvas) ClearHistory() {
	if c.closed {
		return
	}
	c.hist.clear()
}
