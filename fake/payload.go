// Package fake
// Author: momentics <momentics@gmail.com>
//
// Payload types that record their own destruction.

package fake

// Recorder collects payload names in destruction order.
type Recorder struct {
	Destroyed []string
}

// Count returns how many times name was destroyed.
func (r *Recorder) Count(name string) int {
	n := 0
	for _, d := range r.Destroyed {
		if d == name {
			n++
		}
	}
	return n
}

// Object is a payload with a pointer-bearing field and a destructor hook.
type Object struct {
	ID   int
	Name string
	rec  *Recorder
}

// NewObject returns an Object that reports to rec when destroyed.
func NewObject(id int, name string, rec *Recorder) *Object {
	return &Object{ID: id, Name: name, rec: rec}
}

// Init constructs o in place.
func (o *Object) Init(id int, name string, rec *Recorder) {
	o.ID, o.Name, o.rec = id, name, rec
}

// Destroy records the destruction.
func (o *Object) Destroy() {
	if o.rec != nil {
		o.rec.Destroyed = append(o.rec.Destroyed, o.Name)
	}
}
