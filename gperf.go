// Package gperf provides safe bindings to the gperftools sampling
// profilers (https://github.com/gperftools/gperftools).
//
// gperftools supports exactly one CPU profiler and one heap profiler per
// process, and its C API does no state checking of its own. This package
// wraps each sampler in a process-wide, mutex-guarded handle that tracks
// the sampler lifecycle, validates inputs before they cross the C
// boundary, and reports failures as typed errors.
//
// Usage:
//
//	if err := gperf.CPU().Start("./my-profile.prof"); err != nil {
//		// ...
//	}
//	// code you want to sample goes here
//	gperf.CPU().Stop()
//
// The resulting files are in gperftools' own binary format and are meant
// to be consumed with pprof; this package never reads them.
//
// Real bindings are compiled under the "gperftools" build tag and require
// cgo, libprofiler and libtcmalloc. Without the tag the handles compile to
// no-op stubs so the package (and anything importing it) builds and tests
// everywhere.
package gperf
