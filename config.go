package gperf

import (
	"os"
	"strconv"
)

// gperftools reads its tuning knobs from the environment at sampler start.
// The configs below are applied by setting (or clearing) those variables
// just before the native start call, under the same lock, so they take
// effect for exactly the session being started. A zero field clears its
// variable so the previous session's tuning cannot leak forward.
const (
	envCPUFrequency      = "CPUPROFILE_FREQUENCY"
	envHeapAllocInterval = "HEAP_PROFILE_ALLOCATION_INTERVAL"
	envHeapInUseInterval = "HEAP_PROFILE_INUSE_INTERVAL"
)

// CPUConfig tunes a CPU profiling session.
type CPUConfig struct {
	// Frequency is the number of samples per second. Zero keeps the
	// library default (100).
	Frequency int
}

func (c CPUConfig) apply() {
	if c.Frequency > 0 {
		os.Setenv(envCPUFrequency, strconv.Itoa(c.Frequency))
	} else {
		os.Unsetenv(envCPUFrequency)
	}
}

// HeapConfig tunes a heap profiling session.
type HeapConfig struct {
	// AllocationIntervalBytes dumps a profile every time this many bytes
	// have been allocated. Zero keeps the library default (1GB).
	AllocationIntervalBytes int64

	// InUseIntervalBytes dumps a profile every time the in-use memory
	// high-water mark grows by this many bytes. Zero keeps the library
	// default (100MB).
	InUseIntervalBytes int64
}

func (c HeapConfig) apply() {
	if c.AllocationIntervalBytes > 0 {
		os.Setenv(envHeapAllocInterval, strconv.FormatInt(c.AllocationIntervalBytes, 10))
	} else {
		os.Unsetenv(envHeapAllocInterval)
	}
	if c.InUseIntervalBytes > 0 {
		os.Setenv(envHeapInUseInterval, strconv.FormatInt(c.InUseIntervalBytes, 10))
	} else {
		os.Unsetenv(envHeapInUseInterval)
	}
}
