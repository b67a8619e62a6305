package hdrfuse

import (
	"image"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/deepteams/hdrfuse/internal/dsp"
)

// Params selects the compositing policy for one Fuse invocation. The
// caller owns its lifecycle: build a value, pass it in, and do not reuse
// shared mutable state across in-flight invocations.
//
// Policy selection, first match wins:
//
//  1. DoMerge: per-channel truncating average of current and previous.
//  2. CutPointX > 0: vertical split at CutPointX; the side showing the
//     current frame flips whenever FrameCounter parity changes.
//  3. Otherwise: the current frame passes through unchanged.
type Params struct {
	// DoMerge enables the two-exposure merge.
	DoMerge bool
	// CutPointX is the split column for the side-by-side composite.
	CutPointX int
	// FrameCounter is incremented by the caller once per frame; only its
	// parity is observed.
	FrameCounter int
}

// Fuse runs the fusion kernel over every pixel of src.
//
// src is the current frame in planar 4:2:0 YUV. prev is the previous-frame
// buffer: it is read as the second compositing operand and then overwritten
// with src's raw (Y, U, V, 255) values, so the next invocation sees this
// frame as its history. dst receives the converted RGBA output.
//
// All three buffers must share bounds anchored at the origin and must be
// pre-allocated by the caller; Fuse never allocates pixel memory. Rows are
// processed by a small worker set with no synchronization beyond row
// claiming, since no two pixels share any mutable state.
func Fuse(dst, prev *image.RGBA, src *image.YCbCr, p Params) {
	h := src.Rect.Dy()
	workers := runtime.NumCPU()
	if workers > h {
		workers = h
	}

	if workers <= 1 {
		for y := 0; y < h; y++ {
			fuseRow(dst, prev, src, y, p)
		}
		return
	}

	var nextRow atomic.Int32
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for {
				y := int(nextRow.Add(1)) - 1
				if y >= h {
					return
				}
				fuseRow(dst, prev, src, y, p)
			}
		}()
	}
	wg.Wait()
}

// fuseRow slices row y out of every buffer and hands it to the dsp kernel.
func fuseRow(dst, prev *image.RGBA, src *image.YCbCr, y int, p Params) {
	w := src.Rect.Dx()
	cw := (w + 1) / 2
	yOff := y * src.YStride
	cOff := (y / 2) * src.CStride
	dOff := y * dst.Stride
	pOff := y * prev.Stride
	dsp.FuseRow(
		dst.Pix[dOff:dOff+4*w],
		prev.Pix[pOff:pOff+4*w],
		src.Y[yOff:yOff+w],
		src.Cb[cOff:cOff+cw],
		src.Cr[cOff:cOff+cw],
		p.DoMerge, p.CutPointX, p.FrameCounter,
	)
}
