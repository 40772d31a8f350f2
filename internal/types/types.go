// internal/types/types.go
package types

// EntityID identifies a live building instance. Zero is never issued.
type EntityID uint64
