package gperf

import "sync"

// CPUProfiler is the handle to the gperftools CPU sampler.
//
// gperftools only supports one active CPU profiler per process, so the
// only instance lives behind CPU(). Every method holds the handle's lock
// for its full duration; the state field is the only safe proxy for the
// native sampler's state and the two must never drift apart.
type CPUProfiler struct {
	mu    sync.Mutex
	state ProfilerState

	// Native hooks. Nil means the build-selected implementation
	// (cpu_cgo.go or cpu_stub.go); tests inject their own.
	startFn func(path string) int32
	stopFn  func()
}

var cpuProfiler CPUProfiler

// CPU returns the process-wide CPU profiler handle.
func CPU() *CPUProfiler {
	return &cpuProfiler
}

// State returns the current lifecycle state.
func (p *CPUProfiler) State() ProfilerState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Start begins CPU sampling, writing the profile to path when the session
// is stopped. It fails with ErrInvalidState if sampling is already active,
// with ErrNulByte/ErrInvalidEncoding/ErrIO if path cannot be handed to the
// native library, and with ErrInternal if the native library refuses to
// start. On any failure the handle stays NotActive.
func (p *CPUProfiler) Start(path string) error {
	return p.StartWithConfig(path, CPUConfig{})
}

// StartWithConfig is Start with sampler tuning applied for this session.
func (p *CPUProfiler) StartWithConfig(path string, cfg CPUConfig) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != NotActive {
		return &InvalidStateError{State: p.state}
	}
	if err := validatePath(path); err != nil {
		return err
	}

	cfg.apply()
	start := p.startFn
	if start == nil {
		start = profilerStart
	}
	if start(path) == 0 {
		// The pre-check file already exists at path; it is left behind.
		return ErrInternal
	}
	p.state = Active
	logger().Infof("cpu profiler started, writing to %s", path)
	return nil
}

// Stop ends the sampling session and flushes the profile. It fails with
// ErrInvalidState if no session is active.
func (p *CPUProfiler) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != Active {
		return &InvalidStateError{State: p.state}
	}
	stop := p.stopFn
	if stop == nil {
		stop = profilerStop
	}
	stop()
	p.state = NotActive
	logger().Infof("cpu profiler stopped")
	return nil
}
