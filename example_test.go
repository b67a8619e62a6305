package hdrfuse_test

import (
	"fmt"
	"image"

	"github.com/deepteams/hdrfuse"
)

func ExampleFuse() {
	// A 2x2 chroma-neutral mid-gray frame.
	src := image.NewYCbCr(image.Rect(0, 0, 2, 2), image.YCbCrSubsampleRatio420)
	for i := range src.Y {
		src.Y[i] = 128
	}
	for i := range src.Cb {
		src.Cb[i] = 128
		src.Cr[i] = 128
	}

	prev := image.NewRGBA(src.Bounds())
	dst := image.NewRGBA(src.Bounds())
	hdrfuse.Fuse(dst, prev, src, hdrfuse.Params{})

	fmt.Println(dst.RGBAAt(0, 0))
	// Output: {128 127 127 255}
}
