// Package inspect defines the record fixture an external debugger reads
// while execution is halted inside Process.
package inspect

// IDCapacity is the size of the Record identifier buffer, including the
// zero terminator.
const IDCapacity = 12

// Record is a stack-allocated fixture value. The field layout matches the
// wasm32 fixture struct: a fixed 12-byte identifier followed by two signed
// 32-bit integers.
type Record struct {
	ID [IDCapacity]byte
	X  int32
	Y  int32
}

// NewRecord populates a Record with the given identifier and integers.
// Identifiers longer than IDCapacity truncate by copy semantics; an
// 11-byte identifier plus the implicit terminator exactly fills ID.
func NewRecord(id string, x, y int32) Record {
	r := Record{X: x, Y: y}
	copy(r.ID[:], id)
	return r
}

// Process accepts a record's address, performs no computation, and returns 0.
// It exists as a stable call site where an external tool can halt execution
// and read the referenced memory, so it must never be inlined away and must
// never dereference data.
//
//go:noinline
func Process(data *Record) int32 {
	return 0
}
