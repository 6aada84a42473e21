package order

import "github.com/google/uuid"

// SequencePointer is the single slot naming the most recently issued order id.
// Version increases by one on every rotation.
type SequencePointer struct {
	OrderID uuid.UUID
	Version int64
}

func (p SequencePointer) Next(id uuid.UUID) SequencePointer {
	return SequencePointer{OrderID: id, Version: p.Version + 1}
}
