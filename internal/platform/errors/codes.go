// Package errors provides structured error handling with i18n support.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Request validation
	CodeInvalidArgument  Code = "INVALID_ARGUMENT"
	CodeUnauthenticated  Code = "UNAUTHENTICATED"
	CodePermissionDenied Code = "PERMISSION_DENIED"

	// Pool registry errors
	CodePoolNotInitialized     Code = "POOL_NOT_INITIALIZED"
	CodeAlreadyInitialized     Code = "ALREADY_INITIALIZED"
	CodeUnauthorized           Code = "UNAUTHORIZED"
	CodeInvalidSourceAuthority Code = "INVALID_SOURCE_AUTHORITY"
	CodeDuplicateSource        Code = "DUPLICATE_SOURCE"

	// Request dispatch errors
	CodeEmptyPool               Code = "EMPTY_POOL"
	CodeSourceAuthorityMismatch Code = "SOURCE_AUTHORITY_MISMATCH"
	CodeDuplicatePendingRequest Code = "DUPLICATE_PENDING_REQUEST"

	// Settlement and claim errors
	CodeSourceMismatch Code = "SOURCE_MISMATCH"
	CodeAlreadySettled Code = "ALREADY_SETTLED"
	CodeNotYetSettled  Code = "NOT_YET_SETTLED"
	CodeRecordNotFound Code = "RECORD_NOT_FOUND"

	// Oracle collaborator errors
	CodeSourceUnknown     Code = "SOURCE_UNKNOWN"
	CodeOracleUnavailable Code = "ORACLE_UNAVAILABLE"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - validation failures, bad input
	case CodeInvalidArgument,
		CodeInvalidSourceAuthority,
		CodeDuplicateSource,
		CodeSourceUnknown:
		return codes.InvalidArgument

	// FailedPrecondition - state doesn't allow operation
	case CodePoolNotInitialized,
		CodeEmptyPool,
		CodeSourceAuthorityMismatch,
		CodeAlreadySettled,
		CodeNotYetSettled:
		return codes.FailedPrecondition

	// PermissionDenied - caller is not allowed to act on the resource
	case CodeUnauthorized,
		CodePermissionDenied,
		CodeSourceMismatch:
		return codes.PermissionDenied

	case CodeUnauthenticated:
		return codes.Unauthenticated

	// NotFound - resource doesn't exist
	case CodeRecordNotFound:
		return codes.NotFound

	// AlreadyExists - unique resource constraint
	case CodeAlreadyInitialized,
		CodeDuplicatePendingRequest:
		return codes.AlreadyExists

	case CodeOracleUnavailable:
		return codes.Unavailable

	default:
		return codes.Internal
	}
}
