// Package idgen hands out random entity identifiers.
package idgen

import (
	"encoding/binary"

	"github.com/google/uuid"

	"github.com/VakaruGIT/NSMS/internal/domain"
	"github.com/VakaruGIT/NSMS/internal/ports"
)

// idBits keeps generated IDs exactly representable as JSON numbers.
const idBits = 53

// UUID derives IDs from random (version 4) UUIDs.
type UUID struct {
	newUUID func() uuid.UUID
}

var _ ports.IDGenerator = (*UUID)(nil)

func NewUUID() *UUID {
	return &UUID{newUUID: uuid.New}
}

// NextID returns a positive ID below 2^53.
func (g *UUID) NextID() domain.ID {
	for {
		u := g.newUUID()
		v := binary.BigEndian.Uint64(u[:8]) >> (64 - idBits)
		if v != 0 {
			return domain.ID(v)
		}
	}
}
