// Package namebuf implements a growable buffer of names with an explicit
// capacity policy and deep-copy semantics.
//
// # Overview
//
// Buffer keeps its names in a single backing array. When an append finds the
// buffer full, the storage is reallocated to limits.GrowCapacity(capacity)
// (2*capacity+1) and the live names are copied across. Starting from the zero
// value the capacity runs 1, 3, 7, 15 ...
//
//	var b namebuf.Buffer
//	b.Append("Ann")
//	b.Append("Zed")
//	name, err := b.Get(1) // "Zed", nil
//	err = b.Set(2, "Bob") // errors.Is(err, limits.ErrOutOfRange)
//
// # Copying
//
// Clone allocates new storage sized to the source capacity and copies the
// live names. The clone shares nothing with its source:
//
//	c := b.Clone()
//	c.Append("Eve") // b.Len() is still 2
//
// Plain struct assignment of a Buffer copies the slice header and therefore
// aliases storage; use Clone.
//
// # Iteration
//
// All yields (index, name) pairs without exposing the storage, and Values
// returns a detached copy.
//
// # Release
//
// Release drops the storage and resets the buffer to empty. It is idempotent
// and safe on a nil *Buffer.
//
// # Thread Safety
//
// Buffer methods are not thread-safe; callers must synchronize access.
package namebuf
