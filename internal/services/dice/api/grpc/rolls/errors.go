package rolls

import (
	"context"
	"errors"
	"strconv"

	"github.com/louisbranch/dicebot/internal/core/dice"
	apperrors "github.com/louisbranch/dicebot/internal/platform/errors"
	"google.golang.org/grpc/status"
)

// handleError converts err into a gRPC status. Context errors keep their
// own codes so callers can tell a timeout from a failed roll.
func handleError(err error, locale string) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return status.FromContextError(err).Err()
	}
	return apperrors.HandleError(err, locale)
}

// diceError maps core parse and validation errors to domain errors.
func diceError(err error) error {
	var parseErr *dice.ParseError
	if errors.As(err, &parseErr) {
		return apperrors.WrapWithMetadata(
			apperrors.CodeDiceExpressionInvalid,
			parseErr.Error(),
			map[string]string{"Expression": parseErr.Expression},
			err,
		)
	}

	var validationErr *dice.ValidationError
	if errors.As(err, &validationErr) {
		if validationErr.Limit > 0 {
			return apperrors.WrapWithMetadata(
				apperrors.CodeDiceLimitExceeded,
				validationErr.Error(),
				map[string]string{
					"Field": validationErr.Field,
					"Value": strconv.FormatUint(uint64(validationErr.Value), 10),
					"Limit": strconv.FormatUint(uint64(validationErr.Limit), 10),
				},
				err,
			)
		}
		return apperrors.WrapWithMetadata(
			apperrors.CodeDiceInvalidSpec,
			validationErr.Error(),
			map[string]string{"Field": validationErr.Field},
			err,
		)
	}
	return err
}

func errSeedUnavailable(err error) error {
	return apperrors.Wrap(apperrors.CodeSeedUnavailable, "generate seed", err)
}

func errHistoryDisabled() error {
	return apperrors.New(apperrors.CodeHistoryDisabled, "roll history is disabled")
}

func errRollNotFound(rollID string, err error) error {
	return apperrors.WrapWithMetadata(
		apperrors.CodeNotFound,
		"roll "+rollID+" not found",
		map[string]string{"Resource": "Roll"},
		err,
	)
}

func errFilterInvalid(err error) error {
	return apperrors.WrapWithMetadata(
		apperrors.CodeFilterInvalid,
		"invalid filter",
		map[string]string{"Reason": err.Error()},
		err,
	)
}

func errPageTokenInvalid(err error) error {
	return apperrors.Wrap(apperrors.CodePageTokenInvalid, "invalid page token", err)
}
