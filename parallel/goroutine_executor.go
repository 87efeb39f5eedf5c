// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package parallel

import "sync"

// GoroutineExecutor dispatches each thread as a real goroutine. Workgroups
// run concurrently with each other; threads within a workgroup synchronize
// through a shared workgroupSync so WorkgroupBarrier/StorageBarrier behave
// as the GPU model requires.
type GoroutineExecutor struct{}

// NewGoroutineExecutor returns an Executor backed by real goroutines.
func NewGoroutineExecutor() *GoroutineExecutor { return &GoroutineExecutor{} }

func (e *GoroutineExecutor) Dispatch(numWorkgroups, workgroupSize int, kernel func(tc *ThreadContext)) {
	var dispatchWG sync.WaitGroup
	dispatchWG.Add(numWorkgroups)

	var panicMu sync.Mutex
	var firstPanic any

	for wgID := 0; wgID < numWorkgroups; wgID++ {
		wgID := wgID
		go func() {
			defer dispatchWG.Done()
			wgSync := newWorkgroupSync(workgroupSize, nil)
			var groupWG sync.WaitGroup
			groupWG.Add(workgroupSize)
			for local := 0; local < workgroupSize; local++ {
				local := local
				go func() {
					defer groupWG.Done()
					defer func() {
						if r := recover(); r != nil {
							panicMu.Lock()
							if firstPanic == nil {
								firstPanic = r
							}
							panicMu.Unlock()
						}
					}()
					tc := &ThreadContext{
						GlobalID:    ThreadID{X: uint32(wgID*workgroupSize + local)},
						LocalID:     ThreadID{X: uint32(local)},
						WorkgroupID: ThreadID{X: uint32(wgID)},
						wg:          wgSync,
					}
					kernel(tc)
				}()
			}
			groupWG.Wait()
		}()
	}
	dispatchWG.Wait()

	if firstPanic != nil {
		panic(firstPanic)
	}
}
