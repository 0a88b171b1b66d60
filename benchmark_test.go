// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package blq_test

import (
	"testing"

	"code.hybscloud.com/blq"
)

// =============================================================================
// Uncontended Baselines
// =============================================================================

func BenchmarkRing_SingleOp(b *testing.B) {
	q, _ := blq.New[int](1024)

	b.ResetTimer()
	for i := range b.N {
		v := i
		q.Enqueue(&v)
		q.Dequeue()
	}
}

func BenchmarkRingTry_SingleOp(b *testing.B) {
	q, _ := blq.New[int](1024)

	b.ResetTimer()
	for i := range b.N {
		v := i
		q.TryEnqueue(&v)
		q.TryDequeue()
	}
}

func BenchmarkRing_Len(b *testing.B) {
	q, _ := blq.New[int](1024)
	v := 42
	q.Enqueue(&v)

	b.ResetTimer()
	for range b.N {
		_ = q.Len()
	}
}

// =============================================================================
// Contended
// =============================================================================

// BenchmarkRing_Parallel has every goroutine enqueue one item and dequeue
// one item per iteration, measuring lock contention on the shared ring.
func BenchmarkRing_Parallel(b *testing.B) {
	q, _ := blq.New[int](1024)

	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			v := i
			q.Enqueue(&v)
			q.Dequeue()
			i++
		}
	})
}

// BenchmarkRing_LargeElem measures the copy cost of a cache-line-sized
// element through enqueue and dequeue.
func BenchmarkRing_LargeElem(b *testing.B) {
	type elem struct {
		payload [64]byte
	}
	q, _ := blq.New[elem](1024)
	var e elem

	b.ResetTimer()
	for range b.N {
		q.Enqueue(&e)
		q.Dequeue()
	}
}
