// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package parallel

import "testing"

func TestHistogram_Basic(t *testing.T) {
	data := []uint32{0, 1, 1, 2, 2, 2, 3, 3, 3, 3}
	_, total := Histogram(NewGoroutineExecutor(), data, 4, 4)

	want := []uint32{1, 2, 3, 4}
	for i := range want {
		if total[i] != want[i] {
			t.Errorf("total[%d] = %d, want %d", i, total[i], want[i])
		}
	}
}

func TestHistogram_Empty(t *testing.T) {
	_, total := Histogram(NewGoroutineExecutor(), nil, 4, 4)
	for i, c := range total {
		if c != 0 {
			t.Errorf("total[%d] = %d, want 0", i, c)
		}
	}
}

func TestHistogram_SumEqualsLength(t *testing.T) {
	data := make([]uint32, 257)
	for i := range data {
		data[i] = uint32(i) % 16
	}
	_, total := Histogram(NewGoroutineExecutor(), data, 16, 32)

	var sum uint32
	for _, c := range total {
		sum += c
	}
	if int(sum) != len(data) {
		t.Errorf("sum of histogram bins = %d, want %d", sum, len(data))
	}
}
