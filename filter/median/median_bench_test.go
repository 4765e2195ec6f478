package median

import (
	"fmt"
	"math/rand"
	"testing"
)

func BenchmarkMovingOut(b *testing.B) {
	for _, capacity := range []int{16, 64, 256} {
		b.Run(fmt.Sprintf("window-%d", capacity-1), func(b *testing.B) {
			m, err := NewMoving(make([]float64, capacity))
			if err != nil {
				b.Fatal(err)
			}

			rng := rand.New(rand.NewSource(3))
			for i := 0; i < capacity-1; i++ {
				m.In(rng.Float64())
			}

			b.ReportAllocs()
			b.ResetTimer()

			var sink float64
			for i := 0; i < b.N; i++ {
				sink += m.Out()
			}
			_ = sink
		})
	}
}
