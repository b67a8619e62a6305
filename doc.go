// Package hdrfuse implements the real-time frame-fusion kernel of an HDR
// camera viewfinder.
//
// Each invocation combines the current planar-YUV camera frame with the
// previous frame under one of three compositing policies (two-exposure
// merge, side-by-side split, or straight passthrough) and converts the
// result to RGBA using fixed-point JFIF YUV-to-RGB math.
//
// The kernel itself is the Fuse function: a data-parallel map over the
// pixel grid with no inter-pixel dependencies. Processor wraps it in a
// double-buffered pipeline with keep-latest frame coalescing, for capture
// loops that may outpace processing.
//
// Basic usage:
//
//	dst := image.NewRGBA(src.Bounds())
//	prev := image.NewRGBA(src.Bounds())
//	hdrfuse.Fuse(dst, prev, src, hdrfuse.Params{DoMerge: true})
package hdrfuse
