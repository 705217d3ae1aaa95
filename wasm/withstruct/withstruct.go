//go:generate tinygo build -opt=s -o withstruct.wasm -target wasm withstruct.go
package main

type record struct {
	id [12]byte
	x  int32
	y  int32
}

func main() {
	data := record{x: 12, y: 34}
	copy(data.id[:], "Hello world")
	_ = process(&data)
}

// process is a breakpoint site: halt here and read *data.
//
//go:noinline
//export process
func process(data *record) int32 {
	return 0
}
