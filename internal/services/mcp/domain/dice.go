package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	dicev1 "github.com/louisbranch/dicebot/internal/api/dice/v1"
	apperrors "github.com/louisbranch/dicebot/internal/platform/errors"
	"github.com/louisbranch/dicebot/internal/platform/timeouts"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

// grpcCallTimeout caps a single DiceService call from a tool handler.
const grpcCallTimeout = timeouts.GRPCRequest

// SourceMCP labels rolls made through MCP in roll history.
const SourceMCP = "mcp"

// Die is one rolled die in tool output.
type Die struct {
	Value int  `json:"value" jsonschema:"face value of the die"`
	Keep  bool `json:"keep" jsonschema:"whether the die counts towards the set total"`
}

// RollSet is one set of dice in tool output.
type RollSet struct {
	Dice  []Die `json:"dice" jsonschema:"dice in roll order"`
	Total int   `json:"total" jsonschema:"sum of kept dice, zero without a keep or drop modifier"`
}

// Spec is the parsed form of a dice expression in tool output.
type Spec struct {
	Count           int    `json:"count" jsonschema:"number of independent sets"`
	DiceCount       int    `json:"dice_count" jsonschema:"dice per set"`
	Sides           int    `json:"sides" jsonschema:"faces per die"`
	KeepDrop        string `json:"keep_drop,omitempty" jsonschema:"keep or drop modifier: kh, kl, dh or dl"`
	KeepDropCount   int    `json:"keep_drop_count,omitempty" jsonschema:"dice affected by the keep or drop modifier"`
	Arithmetic      string `json:"arithmetic,omitempty" jsonschema:"trailing operator, parsed but not applied"`
	ArithmeticValue int    `json:"arithmetic_value,omitempty" jsonschema:"operand of the trailing operator"`
}

// RollDiceInput represents the MCP tool input for rolling dice.
type RollDiceInput struct {
	Expression string `json:"expression" jsonschema:"dice notation such as 2d6, 4d6kh3 or 3@1d20"`
	Seed       *int64 `json:"seed,omitempty" jsonschema:"optional seed to replay a previous roll"`
}

// RollResult represents a roll in tool output.
type RollResult struct {
	RollID     string    `json:"roll_id,omitempty" jsonschema:"history identifier, empty when history is disabled"`
	Expression string    `json:"expression" jsonschema:"expression that was rolled"`
	Seed       int64     `json:"seed" jsonschema:"seed that replays this roll"`
	Spec       *Spec     `json:"spec,omitempty" jsonschema:"parsed expression"`
	Sets       []RollSet `json:"sets" jsonschema:"rolled sets"`
	Total      int       `json:"total" jsonschema:"sum of set totals"`
	CreatedAt  string    `json:"created_at,omitempty" jsonschema:"RFC3339 time of the roll"`
}

// RollDiceResult represents the MCP tool output for rolling dice.
type RollDiceResult = RollResult

// ParseDiceInput represents the MCP tool input for parsing an expression.
type ParseDiceInput struct {
	Expression string `json:"expression" jsonschema:"dice notation to parse"`
}

// ParseDiceResult represents the MCP tool output for parsing an expression.
type ParseDiceResult struct {
	Spec Spec `json:"spec" jsonschema:"parsed expression"`
}

// GetRollInput represents the MCP tool input for fetching a recorded roll.
type GetRollInput struct {
	RollID string `json:"roll_id" jsonschema:"history identifier returned by roll_dice"`
}

// ListRollsInput represents the MCP tool input for listing roll history.
type ListRollsInput struct {
	PageSize  int    `json:"page_size,omitempty" jsonschema:"maximum rolls to return, default 20, max 100"`
	PageToken string `json:"page_token,omitempty" jsonschema:"token from a previous list_rolls call"`
	Filter    string `json:"filter,omitempty" jsonschema:"AIP-160 filter over expression, source, seed, total and created_at"`
}

// ListRollsResult represents the MCP tool output for listing roll history.
type ListRollsResult struct {
	Rolls         []RollResult `json:"rolls" jsonschema:"rolls, newest first"`
	NextPageToken string       `json:"next_page_token,omitempty" jsonschema:"token for the next page"`
}

// RollDiceTool defines the MCP tool schema for rolling dice.
func RollDiceTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "roll_dice",
		Description: "Rolls a dice expression such as 2d6, 4d6kh3 or 3@1d20",
	}
}

// ParseDiceTool defines the MCP tool schema for parsing dice expressions.
func ParseDiceTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "parse_dice",
		Description: "Parses and validates a dice expression without rolling it",
	}
}

// GetRollTool defines the MCP tool schema for fetching a recorded roll.
func GetRollTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_roll",
		Description: "Fetches a recorded roll by id",
	}
}

// ListRollsTool defines the MCP tool schema for listing roll history.
func ListRollsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "list_rolls",
		Description: "Lists recorded rolls, newest first",
	}
}

// RollDiceHandler executes a dice roll.
func RollDiceHandler(client dicev1.DiceServiceClient) mcp.ToolHandlerFor[RollDiceInput, RollDiceResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input RollDiceInput) (*mcp.CallToolResult, RollDiceResult, error) {
		expression := strings.TrimSpace(input.Expression)
		if expression == "" {
			return nil, RollDiceResult{}, errors.New("expression is required")
		}

		var response *dicev1.RollResponse
		meta, err := invoke(ctx, func(callCtx context.Context, opts ...grpc.CallOption) error {
			var err error
			response, err = client.Roll(callCtx, &dicev1.RollRequest{
				Expression: expression,
				Seed:       input.Seed,
				Source:     SourceMCP,
			}, opts...)
			return err
		})
		if err != nil {
			return nil, RollDiceResult{}, callError("dice roll failed", err)
		}
		if response.GetRoll() == nil {
			return nil, RollDiceResult{}, errors.New("dice roll response is missing")
		}
		return CallToolResultWithMetadata(meta), rollResult(response.GetRoll()), nil
	}
}

// ParseDiceHandler parses a dice expression.
func ParseDiceHandler(client dicev1.DiceServiceClient) mcp.ToolHandlerFor[ParseDiceInput, ParseDiceResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ParseDiceInput) (*mcp.CallToolResult, ParseDiceResult, error) {
		expression := strings.TrimSpace(input.Expression)
		if expression == "" {
			return nil, ParseDiceResult{}, errors.New("expression is required")
		}

		var response *dicev1.ParseResponse
		meta, err := invoke(ctx, func(callCtx context.Context, opts ...grpc.CallOption) error {
			var err error
			response, err = client.ParseExpression(callCtx, &dicev1.ParseRequest{Expression: expression}, opts...)
			return err
		})
		if err != nil {
			return nil, ParseDiceResult{}, callError("parse dice failed", err)
		}
		if response == nil || response.Spec == nil {
			return nil, ParseDiceResult{}, errors.New("parse dice response is missing")
		}
		return CallToolResultWithMetadata(meta), ParseDiceResult{Spec: specResult(response.Spec)}, nil
	}
}

// GetRollHandler fetches a recorded roll.
func GetRollHandler(client dicev1.DiceServiceClient) mcp.ToolHandlerFor[GetRollInput, RollResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input GetRollInput) (*mcp.CallToolResult, RollResult, error) {
		rollID := strings.TrimSpace(input.RollID)
		if rollID == "" {
			return nil, RollResult{}, errors.New("roll_id is required")
		}

		var response *dicev1.RollResponse
		meta, err := invoke(ctx, func(callCtx context.Context, opts ...grpc.CallOption) error {
			var err error
			response, err = client.GetRoll(callCtx, &dicev1.GetRollRequest{RollId: rollID}, opts...)
			return err
		})
		if err != nil {
			return nil, RollResult{}, callError("get roll failed", err)
		}
		if response.GetRoll() == nil {
			return nil, RollResult{}, errors.New("get roll response is missing")
		}
		return CallToolResultWithMetadata(meta), rollResult(response.GetRoll()), nil
	}
}

// ListRollsHandler lists recorded rolls.
func ListRollsHandler(client dicev1.DiceServiceClient) mcp.ToolHandlerFor[ListRollsInput, ListRollsResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ListRollsInput) (*mcp.CallToolResult, ListRollsResult, error) {
		if input.PageSize < 0 {
			return nil, ListRollsResult{}, errors.New("page_size must not be negative")
		}

		var response *dicev1.ListRollsResponse
		meta, err := invoke(ctx, func(callCtx context.Context, opts ...grpc.CallOption) error {
			var err error
			response, err = client.ListRolls(callCtx, &dicev1.ListRollsRequest{
				PageSize:  int32(min(input.PageSize, 1000)),
				PageToken: strings.TrimSpace(input.PageToken),
				Filter:    strings.TrimSpace(input.Filter),
			}, opts...)
			return err
		})
		if err != nil {
			return nil, ListRollsResult{}, callError("list rolls failed", err)
		}
		if response == nil {
			return nil, ListRollsResult{}, errors.New("list rolls response is missing")
		}

		result := ListRollsResult{
			Rolls:         make([]RollResult, 0, len(response.Rolls)),
			NextPageToken: response.NextPageToken,
		}
		for _, roll := range response.Rolls {
			if roll != nil {
				result.Rolls = append(result.Rolls, rollResult(roll))
			}
		}
		return CallToolResultWithMetadata(meta), result, nil
	}
}

// invoke runs call with a bounded timeout and correlation metadata.
func invoke(ctx context.Context, call func(context.Context, ...grpc.CallOption) error) (ToolCallMetadata, error) {
	invocationID, err := NewInvocationID()
	if err != nil {
		return ToolCallMetadata{}, fmt.Errorf("generate invocation id: %w", err)
	}

	runCtx, cancel := context.WithTimeout(ctx, grpcCallTimeout)
	defer cancel()

	callCtx, callMeta, err := NewOutgoingContext(runCtx, invocationID)
	if err != nil {
		return ToolCallMetadata{}, fmt.Errorf("create request metadata: %w", err)
	}

	var header metadata.MD
	if err := call(callCtx, grpc.Header(&header)); err != nil {
		return ToolCallMetadata{}, err
	}
	return MergeResponseMetadata(callMeta, header), nil
}

// callError prefers the localized message the dice service attaches to
// domain errors.
func callError(action string, err error) error {
	if msg := apperrors.LocalizedMessage(err); msg != "" {
		return fmt.Errorf("%s: %s", action, msg)
	}
	return fmt.Errorf("%s: %w", action, err)
}

func rollResult(roll *dicev1.Roll) RollResult {
	result := RollResult{
		RollID:     roll.RollId,
		Expression: roll.Expression,
		Seed:       roll.Seed,
		Sets:       make([]RollSet, 0, len(roll.Sets)),
		Total:      int(roll.Total),
	}
	if roll.Spec != nil {
		spec := specResult(roll.Spec)
		result.Spec = &spec
	}
	if roll.CreatedAt != nil {
		result.CreatedAt = roll.CreatedAt.AsTime().Format(time.RFC3339Nano)
	}
	for _, set := range roll.Sets {
		out := RollSet{Total: int(set.Total), Dice: make([]Die, 0, len(set.Dice))}
		for _, die := range set.Dice {
			out.Dice = append(out.Dice, Die{Value: int(die.Value), Keep: die.Keep})
		}
		result.Sets = append(result.Sets, out)
	}
	return result
}

func specResult(spec *dicev1.Spec) Spec {
	return Spec{
		Count:           int(spec.Count),
		DiceCount:       int(spec.DiceCount),
		Sides:           int(spec.Sides),
		KeepDrop:        spec.KeepDrop,
		KeepDropCount:   int(spec.KeepDropCount),
		Arithmetic:      spec.Arithmetic,
		ArithmeticValue: int(spec.ArithmeticValue),
	}
}
