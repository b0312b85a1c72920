package domain

import (
	"strings"
	"time"
)

// PayloadSize is the byte length of an oracle randomness result.
const PayloadSize = 32

// Payload is the randomness an oracle publishes for a source.
type Payload [PayloadSize]byte

// IsZero reports whether the oracle has not produced a result yet.
func (p Payload) IsZero() bool {
	return p == Payload{}
}

// FaceFromPayload reduces the first payload byte to a die face in 1..6.
func FaceFromPayload(p Payload) uint8 {
	return p[0]%6 + 1
}

// OutcomeStatus is the lifecycle phase of an outcome record.
type OutcomeStatus string

const (
	// OutcomeRequested means randomness was requested and face is still 0.
	OutcomeRequested OutcomeStatus = "requested"
	// OutcomeSettled means face holds the final 1..6 value.
	OutcomeSettled OutcomeStatus = "settled"
)

// OutcomeRecord tracks one owner's in-flight or settled roll.
type OutcomeRecord struct {
	Owner       string
	Face        uint8
	BoundSource SourceID
	Deposit     int64
	RequestedAt time.Time
	SettledAt   time.Time
}

// NewOutcomeRecord opens a pending record bound to source.
func NewOutcomeRecord(owner string, source SourceID, deposit int64, now time.Time) (OutcomeRecord, error) {
	owner = strings.TrimSpace(owner)
	if owner == "" {
		return OutcomeRecord{}, InvalidArgument("owner is required")
	}
	if strings.TrimSpace(string(source)) == "" {
		return OutcomeRecord{}, InvalidArgument("bound source is required")
	}
	return OutcomeRecord{
		Owner:       owner,
		BoundSource: source,
		Deposit:     deposit,
		RequestedAt: now.UTC(),
	}, nil
}

// Status reports whether the record is still waiting for randomness.
func (r OutcomeRecord) Status() OutcomeStatus {
	if r.Face == 0 {
		return OutcomeRequested
	}
	return OutcomeSettled
}

// Settle applies a callback from source carrying payload. It returns
// changed=false for the all-zero "not ready" payload, which is not an error.
// The source binding is checked before anything else.
func (r *OutcomeRecord) Settle(source SourceID, payload Payload, now time.Time) (bool, error) {
	if source != r.BoundSource {
		return false, SourceMismatch(r.Owner, source)
	}
	if payload.IsZero() {
		return false, nil
	}
	if r.Face != 0 {
		return false, AlreadySettled(r.Owner)
	}
	r.Face = FaceFromPayload(payload)
	r.SettledAt = now.UTC()
	return true, nil
}

// ClaimableFace returns the settled face or NotYetSettled.
func (r OutcomeRecord) ClaimableFace() (uint8, error) {
	if r.Face == 0 {
		return 0, NotYetSettled(r.Owner)
	}
	return r.Face, nil
}
