package idgen

import "github.com/google/uuid"

// UuidGenerator implements model.IdGenerator with random uuids.
type UuidGenerator struct{}

func NewUuidGenerator() *UuidGenerator {
	return &UuidGenerator{}
}

func (g *UuidGenerator) NextId() string {
	return uuid.NewString()
}
