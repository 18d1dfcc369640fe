//go:build gperftools && cgo

package tcmalloc

// #cgo LDFLAGS: -ltcmalloc
// #include <stddef.h>
// void *tc_memalign(size_t align, size_t size);
// void tc_free(void *ptr);
import "C"
import "unsafe"

// Alloc returns size bytes aligned to align, allocated by tcmalloc.
// align must be a power of two. A nil return means allocation failed.
func Alloc(align, size uintptr) unsafe.Pointer {
	return C.tc_memalign(C.size_t(align), C.size_t(size))
}

// Free releases a pointer obtained from Alloc. tcmalloc recovers the
// original size and alignment itself; no bookkeeping happens on this side.
func Free(p unsafe.Pointer) {
	C.tc_free(p)
}

// Available reports whether the real tcmalloc is linked in.
func Available() bool { return true }
