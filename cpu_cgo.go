//go:build gperftools && cgo

package gperf

// #cgo LDFLAGS: -lprofiler
// #include <stdlib.h>
// #include <gperftools/profiler.h>
import "C"
import "unsafe"

func profilerStart(path string) int32 {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))
	return int32(C.ProfilerStart(cpath))
}

func profilerStop() {
	C.ProfilerStop()
}
