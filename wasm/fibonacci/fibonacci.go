//go:generate tinygo build -opt=s -o fibonacci.wasm -target wasm fibonacci.go
package main

import "fmt"

func main() {
	a := fib(9)
	fmt.Printf("9th fib: %d\n", a)
	b := fib(5)
	fmt.Printf("5th fib: %d\n", b)
}

//export fib
func fib(n int32) int32 {
	var a, b int32 = 0, 1
	for i := int32(1); i < n; i++ {
		a, b = b, a+b
	}
	return a
}
