package gperf

// ProfilerState is the lifecycle tag of a profiler handle. It mirrors the
// native sampler's state exactly: Active if and only if the native library
// currently believes its sampler is running.
type ProfilerState int

const (
	// NotActive means the profiler is not currently sampling.
	NotActive ProfilerState = iota
	// Active means the profiler is sampling and writing to its output path.
	Active
)

func (s ProfilerState) String() string {
	switch s {
	case NotActive:
		return "NotActive"
	case Active:
		return "Active"
	default:
		return "Unknown"
	}
}
