package hdrfuse

import (
	"image"
	"sync"
	"sync/atomic"
)

// Mode selects how the processor composites frames. The values match the
// reference viewfinder's render modes.
type Mode int32

const (
	// ModeNormal passes incoming frames straight through.
	ModeNormal Mode = 0
	// ModeSideBySide splits the output at half width, current frame on
	// one side and frame history on the other, flipping sides every frame.
	ModeSideBySide Mode = 1
	// ModeHdr merges the current frame with the previous, differently
	// exposed one.
	ModeHdr Mode = 2
)

// Processor owns the shared previous-frame buffer and drives the fusion
// kernel over incoming frames. It exposes two tasks: Hdr composites
// against the frame history (merging in ModeHdr, splitting side-by-side
// otherwise), and Normal passes frames straight through.
//
// The capture pipeline routes frames to exactly one task at a time; the
// tasks share the previous-frame buffer.
type Processor struct {
	Hdr    *Task
	Normal *Task

	prev *image.RGBA
	sink func(*image.RGBA)
	mode atomic.Int32
	wg   sync.WaitGroup
}

// NewProcessor creates a processor for width x height frames. Every
// output frame is passed to sink, which takes ownership of it and may
// release it with FreeFrame. sink may block; newer submissions coalesce
// while it does. The initial mode is ModeNormal.
func NewProcessor(width, height int, sink func(*image.RGBA)) *Processor {
	p := &Processor{
		prev: image.NewRGBA(image.Rect(0, 0, width, height)),
		sink: sink,
	}
	p.Hdr = p.newTask(width/2, true)
	p.Normal = p.newTask(0, false)
	return p
}

// SetMode switches the render mode. Safe to call concurrently with frame
// submission; the new mode applies from the next processed frame.
func (p *Processor) SetMode(m Mode) { p.mode.Store(int32(m)) }

// Mode returns the active render mode.
func (p *Processor) Mode() Mode { return Mode(p.mode.Load()) }

// Close stops both tasks and waits for any in-flight frame to finish.
// Frames still pending are dropped. Submit must not be called after Close.
func (p *Processor) Close() {
	close(p.Hdr.quit)
	close(p.Normal.quit)
	p.wg.Wait()
}

// Task feeds frames into the kernel with keep-latest semantics: Submit
// never blocks, and when processing lags behind the capture rate only the
// newest pending frame survives. Each task keeps its own frame counter
// for the split-side parity flip.
type Task struct {
	proc       *Processor
	cutPointX  int
	checkMerge bool
	counter    int
	pending    chan *image.YCbCr
	quit       chan struct{}
}

func (p *Processor) newTask(cutPointX int, checkMerge bool) *Task {
	t := &Task{
		proc:       p,
		cutPointX:  cutPointX,
		checkMerge: checkMerge,
		pending:    make(chan *image.YCbCr, 1),
		quit:       make(chan struct{}),
	}
	p.wg.Add(1)
	go t.run()
	return t
}

// Submit queues a frame for processing, replacing any frame still
// pending. It never blocks. The task reads from the frame until the
// corresponding output has been produced.
func (t *Task) Submit(frame *image.YCbCr) {
	for {
		select {
		case t.pending <- frame:
			return
		default:
		}
		// Full: drop the stale pending frame and retry.
		select {
		case <-t.pending:
		default:
		}
	}
}

func (t *Task) run() {
	defer t.proc.wg.Done()
	for {
		select {
		case <-t.quit:
			return
		case f := <-t.pending:
			t.process(f)
		}
	}
}

func (t *Task) process(f *image.YCbCr) {
	p := Params{
		DoMerge:      t.checkMerge && t.proc.Mode() == ModeHdr,
		CutPointX:    t.cutPointX,
		FrameCounter: t.counter,
	}
	t.counter++

	b := f.Rect
	dst := NewFrame(b.Dx(), b.Dy())
	Fuse(dst, t.proc.prev, f, p)
	t.proc.sink(dst)
}
