// internal/types/types.go
package types

// EntityID is a stable handle into the entity arena. Zero is never issued.
type EntityID uint64
