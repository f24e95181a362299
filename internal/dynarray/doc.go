// Package dynarray provides a generic resizable array with explicit
// capacity control and a configurable linear growth step.
//
//   - [DynamicArray]: owning contiguous sequence of T
//   - [ConfigError]: rejected capacity or growth step
//   - [IndexError]: access outside the valid logical range
//
// # Example
//
//	arr, _ := dynarray.New[int](5, 3)
//	arr.Add(10)
//	arr.Add(20)
//	if err := arr.Set(1, 50); err != nil {
//		// handle
//	}
//	arr.Print(os.Stdout)
//
// # Failure policy
//
// Misuse never panics. Every operation that can fail returns an error and
// degrades to a no-op or the zero value of T. When a logger is attached via
// [WithLogger] each failure is also written to it. Capacities and grow steps
// above [MaxCapacity] are rejected; running out of memory while growing
// still panics the way make does.
//
// # Thread Safety
//
// DynamicArray is NOT thread-safe. Callers sharing one across goroutines
// must synchronize externally.
package dynarray
