package farm

import "fmt"

// Position is a tile coordinate inside an enclosure.
type Position struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// String implements fmt.Stringer.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// ObjectLayer maps tile positions to placed objects and remembers placement order.
// It is not safe for concurrent use; the host mutates it from a single goroutine.
type ObjectLayer struct {
	order   []Position
	objects map[Position]Object
}

// NewObjectLayer creates an empty layer.
func NewObjectLayer() *ObjectLayer {
	return &ObjectLayer{objects: make(map[Position]Object)}
}

// Set places obj at pos. Replacing an existing object keeps its original placement order.
//
// Precondition: obj is non-nil.
func (l *ObjectLayer) Set(pos Position, obj Object) {
	if _, exists := l.objects[pos]; !exists {
		l.order = append(l.order, pos)
	}
	l.objects[pos] = obj
}

// Get returns the object at pos and whether one is present.
func (l *ObjectLayer) Get(pos Position) (Object, bool) {
	obj, ok := l.objects[pos]
	return obj, ok
}

// Remove deletes the object at pos.
//
// Postcondition: returns true iff an object was present and is now gone.
func (l *ObjectLayer) Remove(pos Position) bool {
	if _, ok := l.objects[pos]; !ok {
		return false
	}
	delete(l.objects, pos)
	for i, p := range l.order {
		if p == pos {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of placed objects.
func (l *ObjectLayer) Len() int {
	return len(l.objects)
}

// Positions returns occupied positions in placement order.
//
// Postcondition: returned slice is a copy.
func (l *ObjectLayer) Positions() []Position {
	out := make([]Position, len(l.order))
	copy(out, l.order)
	return out
}

// Range calls fn for each placed object in placement order until fn returns false.
// fn may remove objects from the layer; iteration runs over a snapshot of positions.
func (l *ObjectLayer) Range(fn func(Position, Object) bool) {
	for _, pos := range l.Positions() {
		obj, ok := l.objects[pos]
		if !ok {
			continue
		}
		if !fn(pos, obj) {
			return
		}
	}
}
