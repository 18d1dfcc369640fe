//go:build gperftools && cgo

package gperf

// #cgo LDFLAGS: -ltcmalloc
// #include <stdlib.h>
// #include <gperftools/heap-profiler.h>
import "C"
import "unsafe"

func heapProfilerStart(path string) {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))
	C.HeapProfilerStart(cpath)
}

func heapProfilerStop() {
	C.HeapProfilerStop()
}

func heapProfilerDump(reason string) {
	creason := C.CString(reason)
	defer C.free(unsafe.Pointer(creason))
	C.HeapProfilerDump(creason)
}
