package gperf

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sirupsen/logrus"
)

var _ = Describe("profiler lifecycle", func() {
	var dir string

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "gperf-test")
		Expect(err).ToNot(HaveOccurred())
		DeferCleanup(os.RemoveAll, dir)

		SetLogger(logrus.StandardLogger())
		DeferCleanup(func() { SetLogger(nil) })
	})

	Describe("CPUProfiler", func() {
		It("walks the full start/stop state machine", func() {
			p := (&fakeCPU{status: 1}).profiler()

			Expect(p.State()).To(Equal(NotActive))
			Expect(p.Start(filepath.Join(dir, "a.prof"))).To(Succeed())
			Expect(p.State()).To(Equal(Active))
			Expect(p.Start(filepath.Join(dir, "b.prof"))).To(MatchError(ErrInvalidState))
			Expect(p.Stop()).To(Succeed())
			Expect(p.State()).To(Equal(NotActive))
		})

		It("rejects illegal edges without touching state", func() {
			p := (&fakeCPU{status: 1}).profiler()

			Expect(p.Stop()).To(MatchError(ErrInvalidState))
			Expect(p.State()).To(Equal(NotActive))
			Expect(p.Start("bad\x00path")).To(MatchError(ErrNulByte))
			Expect(p.State()).To(Equal(NotActive))
		})
	})

	Describe("HeapProfiler", func() {
		It("allows dumps in either state", func() {
			p := (&fakeHeap{}).profiler()
			snap := filepath.Join(dir, "snap.heap")

			Expect(p.Dump(snap)).To(Succeed())
			Expect(p.Start(filepath.Join(dir, "a.heap"))).To(Succeed())
			Expect(p.Dump(snap)).To(Succeed())
			Expect(p.State()).To(Equal(Active))
			Expect(p.Stop()).To(Succeed())
		})
	})
})
