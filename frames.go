package hdrfuse

import (
	"image"

	"github.com/deepteams/hdrfuse/internal/pool"
)

// NewFrame returns a width x height RGBA frame backed by pooled memory.
// The pixel contents are unspecified; Fuse overwrites every pixel. Frames
// handed to a Processor sink should be released with FreeFrame once
// consumed.
func NewFrame(width, height int) *image.RGBA {
	return &image.RGBA{
		Pix:    pool.Get(4 * width * height),
		Stride: 4 * width,
		Rect:   image.Rect(0, 0, width, height),
	}
}

// FreeFrame returns a frame's pixel memory to the pool. The frame must
// not be used afterwards.
func FreeFrame(f *image.RGBA) {
	pool.Put(f.Pix)
}
