package structs

// ObjectRef is a reference to a unique library entity.
type ObjectRef struct {
	// Kind is the type of entity.
	Kind Kind `json:"kind"`

	// ID is the unique identifier for this entity.
	ID string `json:"id"`
}

// NewObjectRef creates a new ObjectRef.
func NewObjectRef(id string) *ObjectRef {
	return &ObjectRef{ID: id}
}

// Library tags the ref as kind: Library
func (o *ObjectRef) Library() *ObjectRef {
	o.Kind = KindLibrary
	return o
}

// Series tags the ref as kind: Series
func (o *ObjectRef) Series() *ObjectRef {
	o.Kind = KindSeries
	return o
}

// Book tags the ref as kind: Book
func (o *ObjectRef) Book() *ObjectRef {
	o.Kind = KindBook
	return o
}
