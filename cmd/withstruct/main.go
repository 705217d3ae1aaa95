// Command withstruct is a debuggee fixture: it builds a record on the stack
// and hands its address to inspect.Process, the call a debugger breaks in to
// read the record's fields.
package main

import (
	"os"

	"github.com/wasmkit/debugfixtures/inspect"
)

func main() {
	os.Exit(run())
}

// run mirrors the wasm fixture's _start: the record stays live in this frame
// while Process is inspected.
func run() int {
	data := inspect.NewRecord("Hello world", 12, 34)
	return int(inspect.Process(&data))
}
