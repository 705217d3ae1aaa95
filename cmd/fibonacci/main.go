// Command fibonacci is a debuggee fixture: it computes two Fibonacci terms
// into locals and prints them, giving a debugger lines to break on and
// values to read.
package main

import (
	"fmt"

	"github.com/wasmkit/debugfixtures/fib"
)

func main() {
	a := fib.Fib(9)
	fmt.Printf("9th fib: %d\n", a)
	b := fib.Fib(5)
	fmt.Printf("5th fib: %d\n", b)
}
