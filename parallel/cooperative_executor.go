// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package parallel

import "math/rand/v2"

// CooperativeExecutor drives every thread of a dispatch from goroutines that
// are individually resumed one at a time, in randomized order, stepping
// between suspension points (dispatch start, WorkgroupBarrier,
// StorageBarrier, and SharedArray access). It never runs two threads'
// kernel code concurrently, so it is safe for fuzzing ordering-sensitive
// algorithms but is not meant for production throughput; see
// GoroutineExecutor for that.
type CooperativeExecutor struct {
	rng *rand.Rand
}

// NewCooperativeExecutor returns a CooperativeExecutor whose interleaving
// order is derived from seed, so a failing fuzz iteration can be replayed
// exactly by reusing the same seed.
func NewCooperativeExecutor(seed uint64) *CooperativeExecutor {
	return &CooperativeExecutor{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// fiber is one cooperatively-scheduled thread: a goroutine parked on resume
// between suspension points.
type fiber struct {
	resume chan struct{}
}

type eventKind int

const (
	eventYield eventKind = iota
	eventDone
)

type event struct {
	fiberIdx int
	kind     eventKind
	panicVal any
}

// coopScheduler holds the randomized ready queue shared by every fiber in
// one dispatch. Exactly one fiber's kernel code runs at a time; it hands
// control back to the scheduler by calling yield or by returning.
type coopScheduler struct {
	rng    *rand.Rand
	fibers []*fiber
	events chan event
}

// yield suspends the calling fiber, reporting it back to the ready pool,
// and blocks until the scheduler resumes it.
func (s *coopScheduler) yield(fiberIdx int) {
	s.events <- event{fiberIdx: fiberIdx, kind: eventYield}
	<-s.fibers[fiberIdx].resume
}

func (e *CooperativeExecutor) Dispatch(numWorkgroups, workgroupSize int, kernel func(tc *ThreadContext)) {
	total := numWorkgroups * workgroupSize
	sched := &coopScheduler{rng: e.rng, events: make(chan event, total)}
	sched.fibers = make([]*fiber, total)

	idx := 0
	for wgID := 0; wgID < numWorkgroups; wgID++ {
		wgSync := newWorkgroupSync(workgroupSize, nil)
		for local := 0; local < workgroupSize; local++ {
			f := &fiber{resume: make(chan struct{})}
			sched.fibers[idx] = f
			tc := &ThreadContext{
				GlobalID:    ThreadID{X: uint32(wgID*workgroupSize + local)},
				LocalID:     ThreadID{X: uint32(local)},
				WorkgroupID: ThreadID{X: uint32(wgID)},
				wg:          wgSync,
				sched:       sched,
				fiberIdx:    idx,
			}
			go func(tc *ThreadContext, f *fiber, myIdx int) {
				<-f.resume
				var panicVal any
				func() {
					defer func() { panicVal = recover() }()
					kernel(tc)
				}()
				sched.events <- event{fiberIdx: myIdx, kind: eventDone, panicVal: panicVal}
			}(tc, f, idx)
			idx++
		}
	}

	ready := make([]int, total)
	for i := range ready {
		ready[i] = i
	}
	remaining := total
	var firstPanic any

	for remaining > 0 {
		if len(ready) == 0 {
			panic("parallel: cooperative scheduler deadlocked (no ready fibers)")
		}
		pick := sched.rng.IntN(len(ready))
		fiberIdx := ready[pick]
		ready[pick] = ready[len(ready)-1]
		ready = ready[:len(ready)-1]

		sched.fibers[fiberIdx].resume <- struct{}{}
		ev := <-sched.events
		switch ev.kind {
		case eventYield:
			ready = append(ready, ev.fiberIdx)
		case eventDone:
			remaining--
			if ev.panicVal != nil && firstPanic == nil {
				firstPanic = ev.panicVal
			}
		}
	}

	if firstPanic != nil {
		panic(firstPanic)
	}
}
