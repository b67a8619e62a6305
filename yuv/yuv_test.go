package yuv_test

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepteams/hdrfuse/yuv"
)

// A 4x2 frame: 8 luma samples, one 2x1 chroma row.
var (
	testY  = []byte{1, 2, 3, 4, 5, 6, 7, 8}
	testCb = []byte{10, 11}
	testCr = []byte{20, 21}
)

func TestWrapI420(t *testing.T) {
	buf := append(append(append([]byte{}, testY...), testCb...), testCr...)
	img, err := yuv.Wrap(yuv.I420, buf, 4, 2)
	require.NoError(t, err)

	assert.Equal(t, testY, img.Y)
	assert.Equal(t, testCb, img.Cb)
	assert.Equal(t, testCr, img.Cr)
	assert.Equal(t, 4, img.YStride)
	assert.Equal(t, 2, img.CStride)
	assert.Equal(t, image.YCbCrSubsampleRatio420, img.SubsampleRatio)
	assert.Equal(t, image.Rect(0, 0, 4, 2), img.Rect)

	// I420 aliases the input buffer instead of copying.
	buf[8] = 99
	assert.EqualValues(t, 99, img.Cb[0])
}

func TestWrapNV21(t *testing.T) {
	buf := append(append([]byte{}, testY...), 20, 10, 21, 11) // V/U pairs
	img, err := yuv.Wrap(yuv.NV21, buf, 4, 2)
	require.NoError(t, err)
	assert.Equal(t, testCb, img.Cb)
	assert.Equal(t, testCr, img.Cr)
}

func TestWrapNV12(t *testing.T) {
	buf := append(append([]byte{}, testY...), 10, 20, 11, 21) // U/V pairs
	img, err := yuv.Wrap(yuv.NV12, buf, 4, 2)
	require.NoError(t, err)
	assert.Equal(t, testCb, img.Cb)
	assert.Equal(t, testCr, img.Cr)
}

func TestWrapShortBuffer(t *testing.T) {
	_, err := yuv.Wrap(yuv.I420, make([]byte, 11), 4, 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "less than expected")
}

func TestWrapOddDimensions(t *testing.T) {
	// 3x3 frame: chroma planes round up to 2x2.
	img, err := yuv.Wrap(yuv.I420, make([]byte, 3*3+2*2*2), 3, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, img.CStride)
	assert.Len(t, img.Cb, 4)
}

func TestFromPlanesPlanar(t *testing.T) {
	img, err := yuv.FromPlanes(testY, testCb, testCr, 4, 2, 4, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, testY, img.Y)
	assert.Equal(t, testCb, img.Cb)
	assert.Equal(t, testCr, img.Cr)
}

func TestFromPlanesSemiPlanarStrided(t *testing.T) {
	// Row strides carry two bytes of alignment padding; chroma samples
	// sit at even offsets (pixel stride 2), as a camera HAL reports for
	// NV-style planes.
	y := []byte{
		1, 2, 3, 4, 0xee, 0xee,
		5, 6, 7, 8, 0xee, 0xee,
	}
	u := []byte{10, 0xee, 11}
	v := []byte{20, 0xee, 21}

	img, err := yuv.FromPlanes(y, u, v, 4, 2, 6, 6, 2)
	require.NoError(t, err)
	assert.Equal(t, testY, img.Y)
	assert.Equal(t, testCb, img.Cb)
	assert.Equal(t, testCr, img.Cr)
}

func TestFromPlanesErrors(t *testing.T) {
	tests := []struct {
		name                         string
		y, u, v                      []byte
		yStride, cStride, cPixStride int
	}{
		{"bad pixel stride", testY, testCb, testCr, 4, 2, 3},
		{"luma stride below width", testY, testCb, testCr, 3, 2, 1},
		{"chroma stride too short", testY, testCb, testCr, 4, 1, 2},
		{"short luma plane", testY[:7], testCb, testCr, 4, 2, 1},
		{"short chroma plane", testY, testCb[:1], testCr, 4, 2, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := yuv.FromPlanes(tt.y, tt.u, tt.v, 4, 2, tt.yStride, tt.cStride, tt.cPixStride)
			assert.Error(t, err)
		})
	}
}
