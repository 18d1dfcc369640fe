// Package tcmalloc exposes the two allocation primitives of gperftools'
// tcmalloc: an aligned allocate and a free.
//
// Importing this package in a build with the "gperftools" tag links the
// binary against libtcmalloc, which replaces the C allocator for the
// entire process, irrevocably, for the process lifetime: every malloc and
// free made by cgo code or linked C libraries then flows through tcmalloc.
// That substitution is what makes heap sampling work: the heap profiler
// instruments tcmalloc's own allocation routines and sees nothing else.
// It is therefore an opt-in, made by choosing the build tag, not a silent
// default.
//
// Without the tag, Alloc and Free fall back to Go-heap-backed buffers so
// callers keep working on platforms where tcmalloc is absent; Available
// reports which implementation is in effect.
package tcmalloc
