package fieldbench

import (
	"runtime"
	"sync"
)

var (
	sinkMu sync.Mutex
	sink   any
)

// Opaque returns v unchanged after publishing it to a package-level sink, so
// the compiler has to assume v is read later and cannot drop the work that
// produced it.
//
//go:noinline
func Opaque[T any](v T) T {
	sinkMu.Lock()
	sink = v
	sinkMu.Unlock()
	runtime.KeepAlive(v)
	return v
}

// release drops the sink's reference so a finished benchmark's buffers can be
// collected before the next one allocates.
func release() {
	sinkMu.Lock()
	sink = nil
	sinkMu.Unlock()
}
