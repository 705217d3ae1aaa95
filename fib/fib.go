// Package fib holds the Fibonacci logic shared by the debugger fixtures.
package fib

// Fib returns the nth term of the sequence where Fib(1) == 0 and Fib(2) == 1,
// computed iteratively in O(n) time and constant space.
//
// There is no input validation: n <= 1 returns 0, and terms past Fib(46)
// overflow int32 silently. Fixtures only call this with small literals.
func Fib(n int32) int32 {
	var a, b int32 = 0, 1
	for i := int32(1); i < n; i++ {
		a, b = b, a+b
	}
	return a
}
