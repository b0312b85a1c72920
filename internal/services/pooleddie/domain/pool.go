package domain

import (
	"fmt"
	"strings"
)

// SourceID identifies one external verifiable-randomness oracle account.
type SourceID string

// PoolRegistry is the singleton, append-only pool of oracle sources.
type PoolRegistry struct {
	// RegistryID is the authority every pooled source must name as its controller.
	RegistryID string
	// Admin is the only identity allowed to enlarge the pool.
	Admin string
	// Entries keeps sources in insertion order; indices never change.
	Entries []SourceID
	// Cursor is the index of the source the next request is dispatched to.
	Cursor uint32
	// Size mirrors len(Entries) for callers that track the pool size separately.
	Size uint32
	// Deposit is the storage reservation currently held for the registry.
	Deposit int64
}

// NewPoolRegistry returns an empty registry controlled by registryID.
func NewPoolRegistry(registryID, admin string) (PoolRegistry, error) {
	registryID = strings.TrimSpace(registryID)
	admin = strings.TrimSpace(admin)
	if registryID == "" {
		return PoolRegistry{}, InvalidArgument("registry id is required")
	}
	if admin == "" {
		return PoolRegistry{}, InvalidArgument("admin is required")
	}
	return PoolRegistry{RegistryID: registryID, Admin: admin}, nil
}

// Len returns the number of pooled sources.
func (p PoolRegistry) Len() int {
	return len(p.Entries)
}

// Contains reports whether source is already pooled.
func (p PoolRegistry) Contains(source SourceID) bool {
	for _, entry := range p.Entries {
		if entry == source {
			return true
		}
	}
	return false
}

// NextSource returns the source under the cursor without moving it.
func (p PoolRegistry) NextSource() (SourceID, error) {
	if len(p.Entries) == 0 {
		return "", EmptyPool()
	}
	if int(p.Cursor) >= len(p.Entries) {
		return "", fmt.Errorf("pool cursor %d out of range for %d entries", p.Cursor, len(p.Entries))
	}
	return p.Entries[p.Cursor], nil
}

// Advance moves the cursor to the following source, wrapping at the end.
// It is the only transition that changes the cursor.
func (p *PoolRegistry) Advance() {
	if len(p.Entries) == 0 {
		p.Cursor = 0
		return
	}
	p.Cursor = (p.Cursor + 1) % uint32(len(p.Entries))
}

// Authorize fails with Unauthorized unless requester administers the pool.
func (p PoolRegistry) Authorize(requester string) error {
	if strings.TrimSpace(requester) == "" || requester != p.Admin {
		return Unauthorized(requester)
	}
	return nil
}

// ValidateCandidates checks a batch of sources before it is appended. It
// rejects empty batches, blank identifiers, and sources that are already
// pooled or repeated inside the batch.
func (p PoolRegistry) ValidateCandidates(candidates []SourceID) error {
	if len(candidates) == 0 {
		return InvalidArgument("at least one source is required")
	}
	seen := make(map[SourceID]struct{}, len(candidates))
	for _, candidate := range candidates {
		if strings.TrimSpace(string(candidate)) == "" {
			return InvalidArgument("source id is required")
		}
		if _, dup := seen[candidate]; dup || p.Contains(candidate) {
			return DuplicateSource(candidate)
		}
		seen[candidate] = struct{}{}
	}
	return nil
}

// Append adds sources to the end of the pool in the given order and keeps
// Size in step with the entry count.
func (p *PoolRegistry) Append(sources ...SourceID) {
	p.Entries = append(p.Entries, sources...)
	p.Size += uint32(len(sources))
}
