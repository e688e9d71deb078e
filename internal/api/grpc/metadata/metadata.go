// Package metadata carries request correlation and locale hints across
// dicebot gRPC calls.
package metadata

import (
	"context"
	"strings"

	platformerrors "github.com/louisbranch/dicebot/internal/platform/errors"
	"github.com/louisbranch/dicebot/internal/platform/id"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// RequestIDHeader is the gRPC metadata key for request correlation IDs.
const RequestIDHeader = "x-dicebot-request-id"

// InvocationIDHeader is the gRPC metadata key for MCP tool invocation IDs.
const InvocationIDHeader = "x-dicebot-invocation-id"

// LocaleHeader is the gRPC metadata key for the caller's preferred locale.
const LocaleHeader = "x-dicebot-locale"

type contextKey string

const (
	requestIDContextKey    contextKey = "dicebot-request-id"
	invocationIDContextKey contextKey = "dicebot-invocation-id"
)

// RequestIDFromContext returns the request ID stored in context.
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	value, _ := ctx.Value(requestIDContextKey).(string)
	return value
}

// InvocationIDFromContext returns the invocation ID stored in context.
func InvocationIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	value, _ := ctx.Value(invocationIDContextKey).(string)
	return value
}

// LocaleFromContext returns the locale from incoming metadata, falling back
// to "accept-language" and then to the default locale.
func LocaleFromContext(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return platformerrors.DefaultLocale
	}
	if locale := FirstMetadataValue(md, LocaleHeader); locale != "" {
		return locale
	}
	if locale := FirstMetadataValue(md, "accept-language"); locale != "" {
		return locale
	}
	return platformerrors.DefaultLocale
}

// WithRequestID stores the request ID in context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, requestIDContextKey, requestID)
}

// WithInvocationID stores the invocation ID in context.
func WithInvocationID(ctx context.Context, invocationID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, invocationIDContextKey, invocationID)
}

// OutgoingContext appends the invocation ID and locale to outgoing metadata.
// Empty values are skipped.
func OutgoingContext(ctx context.Context, invocationID, locale string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	var pairs []string
	if invocationID != "" {
		pairs = append(pairs, InvocationIDHeader, invocationID)
	}
	if locale != "" {
		pairs = append(pairs, LocaleHeader, locale)
	}
	if len(pairs) == 0 {
		return ctx
	}
	return metadata.AppendToOutgoingContext(ctx, pairs...)
}

// IsPrintableASCII reports whether a string contains only printable ASCII characters.
func IsPrintableASCII(value string) bool {
	if value == "" {
		return false
	}
	for i := 0; i < len(value); i++ {
		if value[i] < 0x20 || value[i] > 0x7e {
			return false
		}
	}
	return true
}

// FirstMetadataValue returns the first printable ASCII metadata value for a key.
func FirstMetadataValue(md metadata.MD, key string) string {
	for mdKey, values := range md {
		if !strings.EqualFold(mdKey, key) {
			continue
		}
		for _, value := range values {
			if IsPrintableASCII(value) {
				return value
			}
		}
	}
	return ""
}

// UnaryServerInterceptor assigns a request ID to every unary call, echoes it
// in the response headers and records it on the active span.
func UnaryServerInterceptor(idGenerator func() (string, error)) grpc.UnaryServerInterceptor {
	if idGenerator == nil {
		idGenerator = id.NewID
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		md, _ := metadata.FromIncomingContext(ctx)
		requestID := FirstMetadataValue(md, RequestIDHeader)
		if requestID == "" {
			generated, err := idGenerator()
			if err != nil {
				return nil, status.Errorf(codes.Internal, "ensure request metadata: %v", err)
			}
			requestID = generated
		}
		invocationID := FirstMetadataValue(md, InvocationIDHeader)

		ctx = WithRequestID(ctx, requestID)
		headers := metadata.Pairs(RequestIDHeader, requestID)
		attrs := []attribute.KeyValue{attribute.String("dicebot.request_id", requestID)}
		if invocationID != "" {
			ctx = WithInvocationID(ctx, invocationID)
			headers.Append(InvocationIDHeader, invocationID)
			attrs = append(attrs, attribute.String("dicebot.invocation_id", invocationID))
		}
		if err := grpc.SetHeader(ctx, headers); err != nil {
			return nil, status.Errorf(codes.Internal, "set response metadata: %v", err)
		}
		trace.SpanFromContext(ctx).SetAttributes(attrs...)

		return handler(ctx, req)
	}
}
