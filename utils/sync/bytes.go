// Package sync holds pools of scratch memory shared by the readers' helpers.
package sync

import (
	"sync"
)

// ByteSliceSize is the length of the slices handed out by GetByteSlice.
const ByteSliceSize = 32 * 1024

var byteSlice = sync.Pool{
	New: func() interface{} {
		b := make([]byte, ByteSliceSize)
		return &b
	},
}

// GetByteSlice returns a *[]byte that is managed by a sync.Pool.
// The initial slice length will be ByteSliceSize (32kb).
//
// After use, the *[]byte should be put back into the sync.Pool
// by calling PutByteSlice.
func GetByteSlice() *[]byte {
	buf := byteSlice.Get().(*[]byte)
	return buf
}

// PutByteSlice zeroes the first used bytes of buf and puts it back into its
// sync.Pool. A used value <= 0 zeroes the whole slice. Slices that were
// shrunk below ByteSliceSize are dropped.
func PutByteSlice(buf *[]byte, used int) {
	if buf == nil {
		return
	}

	b := *buf
	if cap(b) < ByteSliceSize {
		return
	}

	b = b[:ByteSliceSize]
	if used <= 0 || used > len(b) {
		used = len(b)
	}

	for i := 0; i < used; i++ {
		b[i] = 0
	}

	byteSlice.Put(&b)
}
