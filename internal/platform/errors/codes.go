// Package errors provides structured error handling with i18n support.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Dice expression errors
	CodeDiceExpressionInvalid Code = "DICE_EXPRESSION_INVALID"
	CodeDiceInvalidSpec       Code = "DICE_INVALID_SPEC"
	CodeDiceLimitExceeded     Code = "DICE_LIMIT_EXCEEDED"

	// Random/seed errors
	CodeSeedUnavailable Code = "SEED_UNAVAILABLE"

	// History errors
	CodeNotFound         Code = "NOT_FOUND"
	CodeHistoryDisabled  Code = "HISTORY_DISABLED"
	CodePageTokenInvalid Code = "PAGE_TOKEN_INVALID"
	CodeFilterInvalid    Code = "FILTER_INVALID"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - validation failures, bad input
	case CodeDiceExpressionInvalid,
		CodeDiceInvalidSpec,
		CodeDiceLimitExceeded,
		CodePageTokenInvalid,
		CodeFilterInvalid:
		return codes.InvalidArgument

	// FailedPrecondition - server configuration doesn't allow operation
	case CodeHistoryDisabled:
		return codes.FailedPrecondition

	// NotFound - resource doesn't exist
	case CodeNotFound:
		return codes.NotFound

	case CodeSeedUnavailable:
		return codes.Unavailable

	default:
		return codes.Internal
	}
}
