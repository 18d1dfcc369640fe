package gperf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfilerStateString(t *testing.T) {
	assert.Equal(t, "NotActive", NotActive.String())
	assert.Equal(t, "Active", Active.String())
	assert.Equal(t, "Unknown", ProfilerState(42).String())
}

func TestZeroValueIsNotActive(t *testing.T) {
	var p CPUProfiler
	assert.Equal(t, NotActive, p.State())

	var h HeapProfiler
	assert.Equal(t, NotActive, h.State())
}
