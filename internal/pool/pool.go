// Package pool provides bucketed sync.Pool instances for reusing
// frame-sized pixel buffers in the processing hot path. Buffers are
// organized by size class to minimize waste.
package pool

import "sync"

// Size classes for bucketed pools, spanning thumbnail RGBA frames up to
// 4K RGBA frames (3840*2160*4 < Size64M).
const (
	Size64K  = 65536
	Size256K = 262144
	Size1M   = 1048576
	Size4M   = 4194304
	Size16M  = 16777216
	Size64M  = 67108864
)

// bucketIndex returns the pool index for a given size.
func bucketIndex(size int) int {
	switch {
	case size <= Size64K:
		return 0
	case size <= Size256K:
		return 1
	case size <= Size1M:
		return 2
	case size <= Size4M:
		return 3
	case size <= Size16M:
		return 4
	default:
		return 5
	}
}

var sizes = [6]int{Size64K, Size256K, Size1M, Size4M, Size16M, Size64M}

var pools [6]sync.Pool

func init() {
	for i := range pools {
		sz := sizes[i]
		pools[i] = sync.Pool{
			New: func() any {
				b := make([]byte, sz)
				return &b
			},
		}
	}
}

// Get returns a byte slice of at least the requested size from the pool.
// The returned slice has length == size and may have a larger capacity.
// Contents are unspecified; callers are expected to overwrite every byte.
// The caller must call Put when done.
func Get(size int) []byte {
	idx := bucketIndex(size)
	bp := pools[idx].Get().(*[]byte)
	b := *bp
	if cap(b) < size {
		b = make([]byte, size)
		*bp = b
		return b
	}
	return b[:size]
}

// Put returns a byte slice to the pool. The slice must have been obtained
// from Get. Slices smaller than Size64K are not pooled.
func Put(b []byte) {
	c := cap(b)
	if c < Size64K {
		return
	}
	idx := bucketIndex(c)
	b = b[:c]
	pools[idx].Put(&b)
}
