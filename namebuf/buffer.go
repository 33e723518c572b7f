package namebuf

import (
	"iter"

	"github.com/opd-ai/friendgraph/limits"
	"github.com/sirupsen/logrus"
)

// Buffer is a growable, ordered sequence of names. The zero value is an
// empty buffer with no storage allocated.
//
// Buffer is not safe for concurrent use.
type Buffer struct {
	// items holds the backing storage; len(items) is the capacity.
	items  []string
	length int
}

// New creates an empty Buffer.
func New() *Buffer {
	return &Buffer{}
}

// NewWithCapacity creates an empty Buffer with room for capacity names
// before the first reallocation.
func NewWithCapacity(capacity int) (*Buffer, error) {
	if err := limits.ValidateCapacity(capacity); err != nil {
		return nil, err
	}
	b := &Buffer{}
	if capacity > 0 {
		b.items = make([]string, capacity)
	}
	return b, nil
}

// Append adds value after the last live element, growing the storage
// when the buffer is full.
func (b *Buffer) Append(value string) {
	if b.length == len(b.items) {
		b.grow()
	}
	b.items[b.length] = value
	b.length++
}

// grow reallocates to limits.GrowCapacity and copies the live elements.
func (b *Buffer) grow() {
	capacity := limits.GrowCapacity(len(b.items))

	logrus.WithFields(logrus.Fields{
		"function":     "grow",
		"length":       b.length,
		"old_capacity": len(b.items),
		"new_capacity": capacity,
	}).Debug("Growing name buffer")

	items := make([]string, capacity)
	copy(items, b.items[:b.length])
	b.items = items
}

// Get returns the name at index.
func (b *Buffer) Get(index int) (string, error) {
	if err := b.checkIndex("Get", index); err != nil {
		return "", err
	}
	return b.items[index], nil
}

// Set overwrites the name at index. The buffer is unchanged on error.
func (b *Buffer) Set(index int, value string) error {
	if err := b.checkIndex("Set", index); err != nil {
		return err
	}
	b.items[index] = value
	return nil
}

func (b *Buffer) checkIndex(function string, index int) error {
	err := limits.ValidateIndex(index, b.length)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"function": function,
			"index":    index,
			"length":   b.length,
			"error":    err.Error(),
		}).Warn("Rejected out of range buffer access")
	}
	return err
}

// Len returns the number of live names.
func (b *Buffer) Len() int {
	return b.length
}

// Cap returns the number of allocated slots.
func (b *Buffer) Cap() int {
	return len(b.items)
}

// Clone returns an independent copy. The copy's storage is sized to the
// source capacity, not its length, so both grow at the same points.
func (b *Buffer) Clone() *Buffer {
	c := &Buffer{length: b.length}
	if len(b.items) > 0 {
		c.items = make([]string, len(b.items))
		copy(c.items, b.items[:b.length])
	}
	return c
}

// Values returns a copy of the live names in order.
func (b *Buffer) Values() []string {
	out := make([]string, b.length)
	copy(out, b.items[:b.length])
	return out
}

// All iterates over the live names in insertion order.
func (b *Buffer) All() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for i := 0; i < b.length; i++ {
			if !yield(i, b.items[i]) {
				return
			}
		}
	}
}

// Release drops the backing storage and leaves an empty buffer. Calling
// Release more than once, or on a buffer that never allocated, is a no-op.
func (b *Buffer) Release() {
	if b == nil {
		return
	}
	b.items = nil
	b.length = 0
}
