package domain

import (
	apperrors "github.com/louisbranch/pooleddie/internal/platform/errors"
)

// InvalidArgument reports malformed input.
func InvalidArgument(reason string) error {
	return apperrors.WithMetadata(apperrors.CodeInvalidArgument, reason, map[string]string{"Reason": reason})
}

// PoolNotInitialized reports an operation against a missing registry.
func PoolNotInitialized() error {
	return apperrors.New(apperrors.CodePoolNotInitialized, "pool registry is not initialized")
}

// AlreadyInitialized reports a second Initialize.
func AlreadyInitialized() error {
	return apperrors.New(apperrors.CodeAlreadyInitialized, "pool registry already exists")
}

// Unauthorized reports a non-admin enlarge attempt.
func Unauthorized(requester string) error {
	return apperrors.WithMetadata(apperrors.CodeUnauthorized, "requester is not the pool admin", map[string]string{"Requester": requester})
}

// InvalidSourceAuthority reports a candidate controlled by another authority.
func InvalidSourceAuthority(source SourceID, authority string) error {
	return apperrors.WithMetadata(apperrors.CodeInvalidSourceAuthority, "source authority is "+authority, map[string]string{
		"Source":    string(source),
		"Authority": authority,
	})
}

// DuplicateSource reports a candidate that is already pooled.
func DuplicateSource(source SourceID) error {
	return apperrors.WithMetadata(apperrors.CodeDuplicateSource, "source already pooled", map[string]string{"Source": string(source)})
}

// EmptyPool reports a request against a pool with no sources.
func EmptyPool() error {
	return apperrors.New(apperrors.CodeEmptyPool, "pool has no sources")
}

// SourceAuthorityMismatch reports a pooled source whose authority changed.
func SourceAuthorityMismatch(source SourceID, authority string) error {
	return apperrors.WithMetadata(apperrors.CodeSourceAuthorityMismatch, "source authority changed to "+authority, map[string]string{
		"Source":    string(source),
		"Authority": authority,
	})
}

// DuplicatePendingRequest reports a second request while one is outstanding.
func DuplicatePendingRequest(owner string) error {
	return apperrors.WithMetadata(apperrors.CodeDuplicatePendingRequest, "outcome record already exists", map[string]string{"Owner": owner})
}

// SourceMismatch reports a callback from a source not bound to the record.
func SourceMismatch(owner string, source SourceID) error {
	return apperrors.WithMetadata(apperrors.CodeSourceMismatch, "callback source is not bound to outcome", map[string]string{
		"Owner":  owner,
		"Source": string(source),
	})
}

// AlreadySettled reports a replayed settlement.
func AlreadySettled(owner string) error {
	return apperrors.WithMetadata(apperrors.CodeAlreadySettled, "outcome already settled", map[string]string{"Owner": owner})
}

// NotYetSettled reports a claim on a pending record.
func NotYetSettled(owner string) error {
	return apperrors.WithMetadata(apperrors.CodeNotYetSettled, "outcome not settled", map[string]string{"Owner": owner})
}

// RecordNotFound reports a missing outcome record.
func RecordNotFound(owner string) error {
	return apperrors.WithMetadata(apperrors.CodeRecordNotFound, "outcome record not found", map[string]string{"Owner": owner})
}
