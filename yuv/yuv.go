// Package yuv adapts packed and strided YUV 4:2:0 frame layouts to the
// image.YCbCr form consumed by the fusion kernel.
//
// Camera pipelines deliver the 4:2:0 family in several plane orders:
//
//	I420: Y plane, then the full U plane, then the full V plane.
//	NV12: Y plane, then interleaved U/V sample pairs.
//	NV21: Y plane, then interleaved V/U sample pairs.
//
// Generic camera APIs additionally report per-plane row and pixel strides
// that the fixed layouts above do not capture; FromPlanes handles those.
package yuv

import (
	"fmt"
	"image"
)

// Format identifies a packed 4:2:0 plane layout.
type Format int

const (
	I420 Format = iota
	NV12
	NV21
)

func (f Format) String() string {
	switch f {
	case I420:
		return "I420"
	case NV12:
		return "NV12"
	case NV21:
		return "NV21"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Wrap interprets buf as a packed width x height 4:2:0 frame in the given
// layout. For I420 the returned image aliases buf; for NV12 and NV21 the
// chroma samples are deinterleaved into fresh planes. A buffer shorter
// than the frame requires is an error.
func Wrap(format Format, buf []byte, width, height int) (*image.YCbCr, error) {
	yi := width * height
	cw := (width + 1) / 2
	ch := (height + 1) / 2
	need := yi + 2*cw*ch
	if need > len(buf) {
		return nil, fmt.Errorf("yuv: frame length (%d) less than expected (%d)", len(buf), need)
	}

	img := &image.YCbCr{
		Y:              buf[:yi:yi],
		YStride:        width,
		CStride:        cw,
		SubsampleRatio: image.YCbCrSubsampleRatio420,
		Rect:           image.Rect(0, 0, width, height),
	}

	switch format {
	case I420:
		img.Cb = buf[yi : yi+cw*ch : yi+cw*ch]
		img.Cr = buf[yi+cw*ch : need : need]
	case NV12, NV21:
		cb := make([]byte, cw*ch)
		cr := make([]byte, cw*ch)
		first, second := cb, cr
		if format == NV21 {
			first, second = cr, cb
		}
		for i := 0; i < cw*ch; i++ {
			first[i] = buf[yi+2*i]
			second[i] = buf[yi+2*i+1]
		}
		img.Cb, img.Cr = cb, cr
	default:
		return nil, fmt.Errorf("yuv: unknown format %v", format)
	}
	return img, nil
}

// FromPlanes repacks camera-style planes with explicit row and pixel
// strides into a tight 4:2:0 image. cPixelStride is 1 for planar chroma
// and 2 for semi-planar (interleaved) chroma; yRowStride and cRowStride
// may exceed the row width to account for alignment padding, which is
// dropped. The luma plane always has pixel stride 1.
func FromPlanes(y, u, v []byte, width, height, yRowStride, cRowStride, cPixelStride int) (*image.YCbCr, error) {
	if cPixelStride != 1 && cPixelStride != 2 {
		return nil, fmt.Errorf("yuv: unsupported chroma pixel stride %d", cPixelStride)
	}
	if yRowStride < width {
		return nil, fmt.Errorf("yuv: luma row stride %d shorter than width %d", yRowStride, width)
	}
	cw := (width + 1) / 2
	ch := (height + 1) / 2
	if cRowStride < cPixelStride*(cw-1)+1 {
		return nil, fmt.Errorf("yuv: chroma row stride %d too short for width %d", cRowStride, width)
	}
	if need := (height-1)*yRowStride + width; need > len(y) {
		return nil, fmt.Errorf("yuv: luma plane length (%d) less than expected (%d)", len(y), need)
	}
	cNeed := (ch-1)*cRowStride + cPixelStride*(cw-1) + 1
	if cNeed > len(u) || cNeed > len(v) {
		return nil, fmt.Errorf("yuv: chroma plane lengths (%d, %d) less than expected (%d)", len(u), len(v), cNeed)
	}

	img := image.NewYCbCr(image.Rect(0, 0, width, height), image.YCbCrSubsampleRatio420)
	for row := 0; row < height; row++ {
		copy(img.Y[row*img.YStride:][:width], y[row*yRowStride:])
	}
	for row := 0; row < ch; row++ {
		dstCb := img.Cb[row*img.CStride:]
		dstCr := img.Cr[row*img.CStride:]
		srcU := u[row*cRowStride:]
		srcV := v[row*cRowStride:]
		for col := 0; col < cw; col++ {
			dstCb[col] = srcU[col*cPixelStride]
			dstCr[col] = srcV[col*cPixelStride]
		}
	}
	return img, nil
}
