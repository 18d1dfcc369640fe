//go:build !gperftools || !cgo

package gperf

func heapProfilerStart(path string) {}

func heapProfilerStop() {}

func heapProfilerDump(reason string) {}
