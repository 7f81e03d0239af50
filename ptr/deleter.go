// File: ptr/deleter.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ptr

// Destroyer is implemented by payloads that must tear down state when
// their owner releases them.
type Destroyer interface {
	Destroy()
}

// Deleter is a release action for payloads of type T. Delete is only ever
// called with a non-nil pointer by the handles in this package.
type Deleter[T any] interface {
	Delete(p *T)
}

// Destroy runs p's destructor if *T implements Destroyer.
func Destroy[T any](p *T) {
	if p == nil {
		return
	}
	if d, ok := any(p).(Destroyer); ok {
		d.Destroy()
	}
}

// DefaultDelete destroys the payload and leaves its memory to the GC.
type DefaultDelete[T any] struct{}

func (DefaultDelete[T]) Delete(p *T) { Destroy(p) }

// DeleterFunc adapts a function to a Deleter.
type DeleterFunc[T any] func(p *T)

func (f DeleterFunc[T]) Delete(p *T) {
	if f != nil {
		f(p)
	}
}
