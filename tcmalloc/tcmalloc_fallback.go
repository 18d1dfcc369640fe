//go:build !gperftools || !cgo

package tcmalloc

import (
	"sync"
	"unsafe"
)

// Go-heap-backed fallback. Each allocation over-allocates by align-1 so an
// aligned pointer always exists inside the buffer, and the buffer is kept
// in a registry so the garbage collector treats it as live until Free.

var (
	mu   sync.Mutex
	live = make(map[uintptr][]byte)
)

// Alloc returns size bytes aligned to align. align must be a power of two.
func Alloc(align, size uintptr) unsafe.Pointer {
	if align == 0 {
		align = 1
	}
	if size == 0 {
		size = 1
	}
	buf := make([]byte, size+align-1)
	addr := uintptr(unsafe.Pointer(&buf[0]))
	off := (align - addr%align) % align
	p := unsafe.Pointer(&buf[off])

	mu.Lock()
	live[uintptr(p)] = buf
	mu.Unlock()
	return p
}

// Free releases a pointer obtained from Alloc. Freeing nil is a no-op;
// freeing a pointer twice is a no-op as well (the registry entry is
// already gone).
func Free(p unsafe.Pointer) {
	if p == nil {
		return
	}
	mu.Lock()
	delete(live, uintptr(p))
	mu.Unlock()
}

// Available reports whether the real tcmalloc is linked in.
func Available() bool { return false }
