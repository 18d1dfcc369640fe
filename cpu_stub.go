//go:build !gperftools || !cgo

package gperf

// Builds without the gperftools tag keep the full state machine but
// perform no sampling. Start reports success so callers can exercise their
// profiling paths on platforms where the library is absent.

func profilerStart(path string) int32 { return 1 }

func profilerStop() {}
