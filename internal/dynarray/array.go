package dynarray

import (
	"fmt"
	"io"
	"log"
	"math"
	"strings"
)

const (
	DefaultCapacity = 0
	DefaultGrowStep = 1

	// MaxCapacity bounds the capacity and grow step accepted by New and
	// Resize.
	MaxCapacity = math.MaxInt32
)

type options struct {
	logger *log.Logger
}

type Option func(*options)

// WithLogger attaches a diagnostic channel. Every failed operation is
// written to it as "Error: <err>".
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// DynamicArray is an owning, contiguous, resizable sequence of T.
//
// len(buf) is the capacity; elements in [0, count) are live and the rest
// of buf is kept zeroed. The zero value is an empty array with step 1.
type DynamicArray[T any] struct {
	buf    []T
	count  int
	grow   int
	logger *log.Logger
}

// New allocates an array with exactly initialCapacity slots. On an invalid
// capacity or grow step it still returns a usable empty array with step 1,
// alongside the error.
func New[T any](initialCapacity, growStep int, opts ...Option) (*DynamicArray[T], error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	a := &DynamicArray[T]{grow: DefaultGrowStep, logger: o.logger}
	if err := validate("new", initialCapacity, growStep); err != nil {
		a.report(err)
		return a, err
	}

	a.grow = growStep
	if initialCapacity > 0 {
		a.buf = make([]T, initialCapacity)
	}
	return a, nil
}

// Default returns an empty array with step 1.
func Default[T any](opts ...Option) *DynamicArray[T] {
	a, _ := New[T](DefaultCapacity, DefaultGrowStep, opts...)
	return a
}

func (a *DynamicArray[T]) Capacity() int {
	return len(a.buf)
}

func (a *DynamicArray[T]) Len() int {
	return a.count
}

func (a *DynamicArray[T]) GrowStep() int {
	if a.grow < 1 {
		return DefaultGrowStep
	}
	return a.grow
}

// UpperBound returns the last valid index, or -1 when empty.
func (a *DynamicArray[T]) UpperBound() int {
	return a.count - 1
}

func (a *DynamicArray[T]) IsEmpty() bool {
	return a.count == 0
}

// Resize sets the capacity and grow step. Growing reallocates. Shrinking is
// lazy: the capacity and length are cut but the allocation is kept until
// ShrinkToFit.
func (a *DynamicArray[T]) Resize(newCapacity, growStep int) error {
	if err := validate("resize", newCapacity, growStep); err != nil {
		a.report(err)
		return err
	}

	a.grow = growStep
	if newCapacity > len(a.buf) {
		a.realloc(newCapacity)
		return nil
	}

	if a.count > newCapacity {
		clear(a.buf[newCapacity:a.count])
		a.count = newCapacity
	}
	if newCapacity == 0 {
		a.buf = nil
	} else {
		a.buf = a.buf[:newCapacity]
	}
	return nil
}

func (a *DynamicArray[T]) ShrinkToFit() {
	if a.count < len(a.buf) {
		a.realloc(a.count)
	}
}

// Clear drops the buffer. The grow step is kept.
func (a *DynamicArray[T]) Clear() {
	a.buf = nil
	a.count = 0
}

func (a *DynamicArray[T]) Get(index int) (T, error) {
	if err := a.checkIndex("get", index); err != nil {
		var zero T
		return zero, err
	}
	return a.buf[index], nil
}

func (a *DynamicArray[T]) Set(index int, value T) error {
	if err := a.checkIndex("set", index); err != nil {
		return err
	}
	a.buf[index] = value
	return nil
}

// At returns a pointer to the element at index. The pointer is only valid
// until the next operation that reallocates.
func (a *DynamicArray[T]) At(index int) (*T, error) {
	if err := a.checkIndex("at", index); err != nil {
		return nil, err
	}
	return &a.buf[index], nil
}

func (a *DynamicArray[T]) Add(value T) {
	if a.count >= len(a.buf) {
		a.realloc(a.nextCapacity())
	}
	a.buf[a.count] = value
	a.count++
}

// AppendAll copies every element of other onto the end of a, growing to
// exactly the combined length when needed. a.AppendAll(a) duplicates the
// sequence.
func (a *DynamicArray[T]) AppendAll(other *DynamicArray[T]) {
	if other == nil || other.count == 0 {
		return
	}

	// src keeps pointing at the old allocation if realloc replaces a.buf.
	src := other.buf[:other.count]
	need := a.count + len(src)
	if need > len(a.buf) {
		a.realloc(need)
	}
	copy(a.buf[a.count:need], src)
	a.count = need
}

// CopyFrom replaces the contents of a with a deep copy of src, including
// its capacity and grow step.
func (a *DynamicArray[T]) CopyFrom(src *DynamicArray[T]) {
	if src == nil || src == a {
		return
	}

	a.buf = nil
	if n := len(src.buf); n > 0 {
		a.buf = make([]T, n)
		copy(a.buf, src.buf[:src.count])
	}
	a.count = src.count
	a.grow = src.GrowStep()
}

func (a *DynamicArray[T]) Clone() *DynamicArray[T] {
	c := &DynamicArray[T]{logger: a.logger}
	c.CopyFrom(a)
	return c
}

// Data exposes the live elements without copying. The slice aliases the
// buffer and is invalidated by the next reallocation.
func (a *DynamicArray[T]) Data() []T {
	return a.buf[:a.count:a.count]
}

func (a *DynamicArray[T]) Values() []T {
	out := make([]T, a.count)
	copy(out, a.buf[:a.count])
	return out
}

// InsertAt places value at index, shifting the tail right. index == Len()
// appends.
func (a *DynamicArray[T]) InsertAt(index int, value T) error {
	if index < 0 || index > a.count {
		err := &IndexError{Op: "insert", Index: index, Len: a.count}
		a.report(err)
		return err
	}

	if a.count >= len(a.buf) {
		a.realloc(a.nextCapacity())
	}
	copy(a.buf[index+1:a.count+1], a.buf[index:a.count])
	a.buf[index] = value
	a.count++
	return nil
}

// RemoveAt deletes the element at index, shifting the tail left. Capacity
// is unchanged.
func (a *DynamicArray[T]) RemoveAt(index int) error {
	if err := a.checkIndex("remove", index); err != nil {
		return err
	}

	copy(a.buf[index:a.count-1], a.buf[index+1:a.count])
	a.count--
	var zero T
	a.buf[a.count] = zero
	return nil
}

func (a *DynamicArray[T]) String() string {
	if a.IsEmpty() {
		return "Array is empty."
	}

	var sb strings.Builder
	sb.WriteString("Array elements:")
	for _, v := range a.buf[:a.count] {
		fmt.Fprintf(&sb, " %v", v)
	}
	return sb.String()
}

func (a *DynamicArray[T]) Print(w io.Writer) {
	fmt.Fprintln(w, a.String())
}

// nextCapacity is the capacity after one growth step, saturating at
// math.MaxInt.
func (a *DynamicArray[T]) nextCapacity() int {
	step := a.GrowStep()
	if step > math.MaxInt-len(a.buf) {
		return math.MaxInt
	}
	return len(a.buf) + step
}

func (a *DynamicArray[T]) realloc(n int) {
	if n == 0 {
		a.buf = nil
		return
	}
	nb := make([]T, n)
	copy(nb, a.buf[:a.count])
	a.buf = nb
}

func (a *DynamicArray[T]) checkIndex(op string, index int) error {
	if index < 0 || index >= a.count {
		err := &IndexError{Op: op, Index: index, Len: a.count}
		a.report(err)
		return err
	}
	return nil
}

func (a *DynamicArray[T]) report(err error) {
	if a.logger != nil {
		a.logger.Printf("Error: %v", err)
	}
}
