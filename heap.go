package gperf

import (
	"os"
	"sync"

	"github.com/dustin/go-humanize"
)

// HeapProfiler is the handle to the gperftools heap sampler.
//
// Like the CPU sampler, the heap sampler is a per-process singleton; the
// only instance lives behind Heap(). Heap sampling only observes
// allocations made through tcmalloc, so the process must be linked against
// it — see the gperf/tcmalloc package.
type HeapProfiler struct {
	mu    sync.Mutex
	state ProfilerState

	startFn func(path string)
	stopFn  func()
	dumpFn  func(reason string)
}

var heapProfiler HeapProfiler

// Heap returns the process-wide heap profiler handle.
func Heap() *HeapProfiler {
	return &heapProfiler
}

// State returns the current lifecycle state.
func (p *HeapProfiler) State() ProfilerState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Start begins heap sampling with path as the profile name prefix. It
// fails with ErrInvalidState if sampling is already active and with
// ErrNulByte/ErrInvalidEncoding/ErrIO if path cannot be handed to the
// native library. The native start call itself reports no status.
func (p *HeapProfiler) Start(path string) error {
	return p.StartWithConfig(path, HeapConfig{})
}

// StartWithConfig is Start with sampler tuning applied for this session.
func (p *HeapProfiler) StartWithConfig(path string, cfg HeapConfig) error {
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
		start = heapProfilerStart
	}
	start(path)
	p.state = Active
	logger().Infof("heap profiler started, writing to %s", path)
	return nil
}

// Stop ends the sampling session. It fails with ErrInvalidState if no
// session is active.
func (p *HeapProfiler) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != Active {
		return &InvalidStateError{State: p.state}
	}
	stop := p.stopFn
	if stop == nil {
		stop = heapProfilerStop
	}
	stop()
	p.state = NotActive
	logger().Infof("heap profiler stopped")
	return nil
}

// Dump writes an immediate snapshot of the heap profile. reason is
// validated exactly like a start path. Dump is deliberately not gated on
// the handle being Active: gperftools treats a dump with no running
// profiler as a no-op, and callers rely on being able to issue dumps
// unconditionally. The handle's state never changes.
func (p *HeapProfiler) Dump(reason string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := validatePath(reason); err != nil {
		return err
	}
	dump := p.dumpFn
	if dump == nil {
		dump = heapProfilerDump
	}
	dump(reason)

	if fi, err := os.Stat(reason); err == nil && fi.Size() > 0 {
		logger().Infof("heap snapshot %s written (%s)", reason, humanize.Bytes(uint64(fi.Size())))
	} else {
		logger().Debugf("heap snapshot requested: %s", reason)
	}
	return nil
}
