package model

import (
	"strconv"

	"github.com/google/uuid"
)

// IDGenerator allocates identities for elements, relationships and
// deployment instances. IDs must be unique within one model.
type IDGenerator interface {
	Next() string
}

// SequentialIDs allocates "1", "2", "3", ... in call order.
// It is the default and keeps identities stable across runs.
type SequentialIDs struct {
	n int
}

// Next returns the next decimal ID.
func (g *SequentialIDs) Next() string {
	g.n++
	return strconv.Itoa(g.n)
}

// UUIDs allocates random (version 4) UUIDs.
type UUIDs struct{}

// Next returns a new random UUID string.
func (UUIDs) Next() string { return uuid.NewString() }
