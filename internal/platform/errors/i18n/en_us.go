package i18n

// Error codes must match the codes defined in internal/platform/errors/codes.go.
// These are duplicated as strings to avoid an import cycle.
const (
	CodeInvalidArgument         = "INVALID_ARGUMENT"
	CodeUnauthenticated         = "UNAUTHENTICATED"
	CodePermissionDenied        = "PERMISSION_DENIED"
	CodePoolNotInitialized      = "POOL_NOT_INITIALIZED"
	CodeAlreadyInitialized      = "ALREADY_INITIALIZED"
	CodeUnauthorized            = "UNAUTHORIZED"
	CodeInvalidSourceAuthority  = "INVALID_SOURCE_AUTHORITY"
	CodeDuplicateSource         = "DUPLICATE_SOURCE"
	CodeEmptyPool               = "EMPTY_POOL"
	CodeSourceAuthorityMismatch = "SOURCE_AUTHORITY_MISMATCH"
	CodeDuplicatePendingRequest = "DUPLICATE_PENDING_REQUEST"
	CodeSourceMismatch          = "SOURCE_MISMATCH"
	CodeAlreadySettled          = "ALREADY_SETTLED"
	CodeNotYetSettled           = "NOT_YET_SETTLED"
	CodeRecordNotFound          = "RECORD_NOT_FOUND"
	CodeSourceUnknown           = "SOURCE_UNKNOWN"
	CodeOracleUnavailable       = "ORACLE_UNAVAILABLE"
)

var enUSCatalog = &Catalog{
	locale: "en-US",
	messages: map[Code]string{
		CodeInvalidArgument:  "Invalid request: {{.Reason}}",
		CodeUnauthenticated:  "A valid identity token is required",
		CodePermissionDenied: "Your identity is not allowed to perform this operation",

		// Pool registry
		CodePoolNotInitialized:     "The randomness pool has not been initialized",
		CodeAlreadyInitialized:     "The randomness pool is already initialized",
		CodeUnauthorized:           "Only the pool administrator can change the pool",
		CodeInvalidSourceAuthority: "Source {{.Source}} is not controlled by this pool",
		CodeDuplicateSource:        "Source {{.Source}} is already in the pool",

		// Dispatch
		CodeEmptyPool:               "The randomness pool has no sources yet",
		CodeSourceAuthorityMismatch: "Source {{.Source}} is no longer controlled by this pool",
		CodeDuplicatePendingRequest: "You already have a roll in progress",

		// Settlement and claim
		CodeSourceMismatch: "Source {{.Source}} is not bound to this roll",
		CodeAlreadySettled: "This roll has already been settled",
		CodeNotYetSettled:  "The die is still rolling",
		CodeRecordNotFound: "No roll was found for {{.Owner}}",

		// Oracle
		CodeSourceUnknown:     "The oracle network does not know source {{.Source}}",
		CodeOracleUnavailable: "The oracle network is unavailable, try again later",
	},
}
