package fib

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFib(t *testing.T) {
	tests := []struct {
		name     string
		input    int32
		expected int32
	}{
		{"zero", 0, 0},
		{"first term", 1, 0},
		{"second term", 2, 1},
		{"third term", 3, 1},
		{"fifth term", 5, 3},  // printed by the fixture as "5th fib: 3"
		{"ninth term", 9, 21}, // printed by the fixture as "9th fib: 21"
		{"tenth term", 10, 34},
		{"twentieth term", 20, 4181},
	}

	for _, tt := range tests {
		tc := tt

		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, Fib(tc.input))
		})
	}
}

// TestFib_Recurrence checks Fib(k) == Fib(k-1) + Fib(k-2) for every k >= 3
// up to the last term representable in int32.
func TestFib_Recurrence(t *testing.T) {
	for k := int32(3); k <= 47; k++ {
		t.Run(fmt.Sprintf("k=%d", k), func(t *testing.T) {
			require.Equal(t, Fib(k-1)+Fib(k-2), Fib(k))
		})
	}
}

func BenchmarkFib(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Fib(30)
	}
}
