package i18n

// Error codes must match the codes defined in internal/platform/errors/codes.go.
// These are duplicated as strings to avoid an import cycle.
const (
	CodeDiceExpressionInvalid = "DICE_EXPRESSION_INVALID"
	CodeDiceInvalidSpec       = "DICE_INVALID_SPEC"
	CodeDiceLimitExceeded     = "DICE_LIMIT_EXCEEDED"
	CodeSeedUnavailable       = "SEED_UNAVAILABLE"
	CodeNotFound              = "NOT_FOUND"
	CodeHistoryDisabled       = "HISTORY_DISABLED"
	CodePageTokenInvalid      = "PAGE_TOKEN_INVALID"
	CodeFilterInvalid         = "FILTER_INVALID"
)

var enUSCatalog = &Catalog{
	locale: "en-US",
	messages: map[Code]string{
		CodeDiceExpressionInvalid: "Could not read dice expression {{.Expression}}",
		CodeDiceInvalidSpec:       "Dice {{.Field}} must be positive",
		CodeDiceLimitExceeded:     "Dice {{.Field}} of {{.Value}} exceeds the limit of {{.Limit}}",
		CodeSeedUnavailable:       "Could not generate a random seed, try again",
		CodeNotFound:              "{{.Resource}} not found",
		CodeHistoryDisabled:       "Roll history is not enabled on this server",
		CodePageTokenInvalid:      "Page token is invalid or no longer matches the request",
		CodeFilterInvalid:         "Filter is invalid: {{.Reason}}",
	},
}
