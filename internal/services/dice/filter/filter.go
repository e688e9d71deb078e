// Package filter translates AIP-160 roll history filters into SQL.
package filter

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.einride.tech/aip/filtering"
	expr "google.golang.org/genproto/googleapis/api/expr/v1alpha1"
)

// SQLCondition is a WHERE clause fragment with positional parameters.
type SQLCondition struct {
	Clause string
	Params []any
}

type field struct {
	column    string
	timestamp bool
}

var fields = map[string]field{
	"expression": {column: "expression"},
	"source":     {column: "source"},
	"seed":       {column: "seed"},
	"total":      {column: "total"},
	"created_at": {column: "created_at", timestamp: true},
}

// RollDeclarations returns the identifiers a roll filter may reference.
func RollDeclarations() (*filtering.Declarations, error) {
	return filtering.NewDeclarations(
		filtering.DeclareStandardFunctions(),
		filtering.DeclareIdent("expression", filtering.TypeString),
		filtering.DeclareIdent("source", filtering.TypeString),
		filtering.DeclareIdent("seed", filtering.TypeInt),
		filtering.DeclareIdent("total", filtering.TypeInt),
		filtering.DeclareIdent("created_at", filtering.TypeTimestamp),
	)
}

// ParseRollFilter parses filterStr and returns the matching SQL condition.
// An empty filter yields an empty condition.
func ParseRollFilter(filterStr string) (SQLCondition, error) {
	if strings.TrimSpace(filterStr) == "" {
		return SQLCondition{}, nil
	}

	decls, err := RollDeclarations()
	if err != nil {
		return SQLCondition{}, fmt.Errorf("create declarations: %w", err)
	}
	parsed, err := filtering.ParseFilterString(filterStr, decls)
	if err != nil {
		return SQLCondition{}, fmt.Errorf("parse filter: %w", err)
	}
	if parsed.CheckedExpr == nil {
		return SQLCondition{}, nil
	}
	return translateExpr(parsed.CheckedExpr.GetExpr())
}

func translateExpr(e *expr.Expr) (SQLCondition, error) {
	if e == nil {
		return SQLCondition{}, errors.New("nil expression")
	}
	call, ok := e.GetExprKind().(*expr.Expr_CallExpr)
	if !ok {
		return SQLCondition{}, fmt.Errorf("unsupported expression type: %T", e.GetExprKind())
	}
	return translateCall(call.CallExpr)
}

func translateCall(call *expr.Expr_Call) (SQLCondition, error) {
	switch call.GetFunction() {
	case filtering.FunctionAnd:
		return translateJunction(call.GetArgs(), "AND")
	case filtering.FunctionOr:
		return translateJunction(call.GetArgs(), "OR")
	case filtering.FunctionNot:
		if len(call.GetArgs()) != 1 {
			return SQLCondition{}, errors.New("NOT requires 1 argument")
		}
		inner, err := translateExpr(call.GetArgs()[0])
		if err != nil {
			return SQLCondition{}, err
		}
		return SQLCondition{Clause: "NOT (" + inner.Clause + ")", Params: inner.Params}, nil
	case filtering.FunctionEquals:
		return translateComparison(call.GetArgs(), "=")
	case filtering.FunctionNotEquals:
		return translateComparison(call.GetArgs(), "!=")
	case filtering.FunctionLessThan:
		return translateComparison(call.GetArgs(), "<")
	case filtering.FunctionLessEquals:
		return translateComparison(call.GetArgs(), "<=")
	case filtering.FunctionGreaterThan:
		return translateComparison(call.GetArgs(), ">")
	case filtering.FunctionGreaterEquals:
		return translateComparison(call.GetArgs(), ">=")
	default:
		return SQLCondition{}, fmt.Errorf("unsupported function: %s", call.GetFunction())
	}
}

func translateJunction(args []*expr.Expr, op string) (SQLCondition, error) {
	if len(args) < 2 {
		return SQLCondition{}, fmt.Errorf("%s requires at least 2 arguments", op)
	}
	clauses := make([]string, 0, len(args))
	var params []any
	for _, arg := range args {
		cond, err := translateExpr(arg)
		if err != nil {
			return SQLCondition{}, err
		}
		clauses = append(clauses, cond.Clause)
		params = append(params, cond.Params...)
	}
	return SQLCondition{
		Clause: "(" + strings.Join(clauses, " "+op+" ") + ")",
		Params: params,
	}, nil
}

func translateComparison(args []*expr.Expr, op string) (SQLCondition, error) {
	if len(args) != 2 {
		return SQLCondition{}, errors.New("comparison requires 2 arguments")
	}
	ident, ok := args[0].GetExprKind().(*expr.Expr_IdentExpr)
	if !ok {
		return SQLCondition{}, fmt.Errorf("expected identifier, got %T", args[0].GetExprKind())
	}
	f, ok := fields[ident.IdentExpr.GetName()]
	if !ok {
		return SQLCondition{}, fmt.Errorf("unknown field: %s", ident.IdentExpr.GetName())
	}

	var value any
	var err error
	if f.timestamp {
		value, err = extractTimestampMillis(args[1])
	} else {
		value, err = extractConstValue(args[1])
	}
	if err != nil {
		return SQLCondition{}, err
	}
	return SQLCondition{
		Clause: fmt.Sprintf("%s %s ?", f.column, op),
		Params: []any{value},
	}, nil
}

func extractConstValue(e *expr.Expr) (any, error) {
	c, ok := e.GetExprKind().(*expr.Expr_ConstExpr)
	if !ok {
		return nil, fmt.Errorf("expected constant, got %T", e.GetExprKind())
	}
	switch kind := c.ConstExpr.GetConstantKind().(type) {
	case *expr.Constant_StringValue:
		return kind.StringValue, nil
	case *expr.Constant_Int64Value:
		return kind.Int64Value, nil
	case *expr.Constant_Uint64Value:
		return kind.Uint64Value, nil
	case *expr.Constant_DoubleValue:
		return kind.DoubleValue, nil
	case *expr.Constant_BoolValue:
		return kind.BoolValue, nil
	default:
		return nil, fmt.Errorf("unsupported constant type: %T", kind)
	}
}

// extractTimestampMillis accepts either a string constant or a
// timestamp("...") call and returns unix milliseconds.
func extractTimestampMillis(e *expr.Expr) (int64, error) {
	switch kind := e.GetExprKind().(type) {
	case *expr.Expr_ConstExpr:
		s, ok := kind.ConstExpr.GetConstantKind().(*expr.Constant_StringValue)
		if !ok {
			return 0, errors.New("timestamp value must be a string")
		}
		return parseTimestamp(s.StringValue)
	case *expr.Expr_CallExpr:
		if kind.CallExpr.GetFunction() != filtering.FunctionTimestamp || len(kind.CallExpr.GetArgs()) != 1 {
			return 0, fmt.Errorf("unsupported function in value position: %s", kind.CallExpr.GetFunction())
		}
		return extractTimestampMillis(kind.CallExpr.GetArgs()[0])
	default:
		return 0, fmt.Errorf("expected timestamp, got %T", kind)
	}
}

func parseTimestamp(value string) (int64, error) {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return 0, fmt.Errorf("invalid timestamp format: %s", value)
	}
	return t.UTC().UnixMilli(), nil
}
