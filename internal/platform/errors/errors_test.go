package errors

import (
	"errors"
	"fmt"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestGRPCCodeMapping(t *testing.T) {
	tests := []struct {
		code Code
		want codes.Code
	}{
		{code: CodeDiceExpressionInvalid, want: codes.InvalidArgument},
		{code: CodeDiceInvalidSpec, want: codes.InvalidArgument},
		{code: CodeDiceLimitExceeded, want: codes.InvalidArgument},
		{code: CodePageTokenInvalid, want: codes.InvalidArgument},
		{code: CodeFilterInvalid, want: codes.InvalidArgument},
		{code: CodeHistoryDisabled, want: codes.FailedPrecondition},
		{code: CodeNotFound, want: codes.NotFound},
		{code: CodeSeedUnavailable, want: codes.Unavailable},
		{code: CodeUnknown, want: codes.Internal},
	}
	for _, tt := range tests {
		if got := tt.code.GRPCCode(); got != tt.want {
			t.Errorf("%s.GRPCCode() = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestErrorIsMatchesByCode(t *testing.T) {
	err := fmt.Errorf("outer: %w", New(CodeNotFound, "roll r1 not found"))
	if !errors.Is(err, New(CodeNotFound, "")) {
		t.Fatal("expected errors.Is to match by code")
	}
	if errors.Is(err, New(CodeHistoryDisabled, "")) {
		t.Fatal("expected different codes not to match")
	}
	if !IsCode(err, CodeNotFound) {
		t.Fatal("expected IsCode to find wrapped code")
	}
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Fatal("expected unknown code for plain error")
	}
}

func TestWrapUnwrapsCause(t *testing.T) {
	cause := errors.New("disk on fire")
	err := Wrap(CodeUnknown, "store roll", cause)
	if !errors.Is(err, cause) {
		t.Fatal("expected wrapped cause to be reachable")
	}
	meta := WrapWithMetadata(CodeNotFound, "missing", map[string]string{"Resource": "Roll"}, cause)
	if GetMetadata(meta)["Resource"] != "Roll" {
		t.Fatal("expected metadata to be preserved")
	}
	if GetMetadata(cause) != nil {
		t.Fatal("expected nil metadata for plain error")
	}
}

func TestHandleErrorLocalizesDomainErrors(t *testing.T) {
	err := WithMetadata(CodeDiceExpressionInvalid, "parse expression", map[string]string{"Expression": "banana"})

	grpcErr := HandleError(err, "")
	if status.Code(grpcErr) != codes.InvalidArgument {
		t.Fatalf("status code = %v, want InvalidArgument", status.Code(grpcErr))
	}
	if got := LocalizedMessage(grpcErr); got != "Could not read dice expression banana" {
		t.Fatalf("LocalizedMessage() = %q", got)
	}
	if got := Reason(grpcErr); got != CodeDiceExpressionInvalid {
		t.Fatalf("Reason() = %q", got)
	}

	ptErr := HandleError(err, "pt-BR")
	if got := LocalizedMessage(ptErr); got != "Não foi possível ler a expressão de dados banana" {
		t.Fatalf("LocalizedMessage(pt-BR) = %q", got)
	}
}

func TestHandleErrorHidesUnknownErrors(t *testing.T) {
	if HandleError(nil, "") != nil {
		t.Fatal("expected nil for nil error")
	}
	grpcErr := HandleError(errors.New("secret detail"), "en-US")
	st, _ := status.FromError(grpcErr)
	if st.Code() != codes.Internal || st.Message() != "an unexpected error occurred" {
		t.Fatalf("unexpected status %v: %q", st.Code(), st.Message())
	}
	if Reason(grpcErr) != CodeUnknown {
		t.Fatal("expected no reason detail")
	}
	if LocalizedMessage(errors.New("plain")) != "" {
		t.Fatal("expected empty localized message for non-status error")
	}
}
