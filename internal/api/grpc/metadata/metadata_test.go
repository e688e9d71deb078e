package metadata

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type fakeTransportStream struct {
	header metadata.MD
}

func (s *fakeTransportStream) Method() string { return "/dice.v1.DiceService/Roll" }

func (s *fakeTransportStream) SetHeader(md metadata.MD) error {
	s.header = metadata.Join(s.header, md)
	return nil
}

func (s *fakeTransportStream) SendHeader(md metadata.MD) error { return s.SetHeader(md) }

func (s *fakeTransportStream) SetTrailer(metadata.MD) error { return nil }

func TestUnaryServerInterceptorGeneratesRequestID(t *testing.T) {
	stream := &fakeTransportStream{}
	ctx := grpc.NewContextWithServerTransportStream(context.Background(), stream)
	interceptor := UnaryServerInterceptor(func() (string, error) { return "generated", nil })

	var seenRequestID string
	_, err := interceptor(ctx, nil, &grpc.UnaryServerInfo{}, func(ctx context.Context, _ any) (any, error) {
		seenRequestID = RequestIDFromContext(ctx)
		return nil, nil
	})
	if err != nil {
		t.Fatalf("interceptor: %v", err)
	}
	if seenRequestID != "generated" {
		t.Fatalf("request id = %q, want generated", seenRequestID)
	}
	if got := stream.header.Get(RequestIDHeader); len(got) != 1 || got[0] != "generated" {
		t.Fatalf("response header = %v", got)
	}
}

func TestUnaryServerInterceptorKeepsIncomingIDs(t *testing.T) {
	stream := &fakeTransportStream{}
	ctx := grpc.NewContextWithServerTransportStream(context.Background(), stream)
	ctx = metadata.NewIncomingContext(ctx, metadata.Pairs(
		RequestIDHeader, "req-1",
		InvocationIDHeader, "inv-1",
	))
	interceptor := UnaryServerInterceptor(func() (string, error) {
		t.Fatal("generator should not run when a request id is present")
		return "", nil
	})

	_, err := interceptor(ctx, nil, &grpc.UnaryServerInfo{}, func(ctx context.Context, _ any) (any, error) {
		if RequestIDFromContext(ctx) != "req-1" {
			t.Fatalf("request id = %q", RequestIDFromContext(ctx))
		}
		if InvocationIDFromContext(ctx) != "inv-1" {
			t.Fatalf("invocation id = %q", InvocationIDFromContext(ctx))
		}
		return nil, nil
	})
	if err != nil {
		t.Fatalf("interceptor: %v", err)
	}
	if got := stream.header.Get(InvocationIDHeader); len(got) != 1 || got[0] != "inv-1" {
		t.Fatalf("invocation header = %v", got)
	}
}

func TestUnaryServerInterceptorGeneratorFailure(t *testing.T) {
	interceptor := UnaryServerInterceptor(func() (string, error) { return "", errors.New("boom") })
	_, err := interceptor(context.Background(), nil, &grpc.UnaryServerInfo{}, func(context.Context, any) (any, error) {
		t.Fatal("handler should not run")
		return nil, nil
	})
	if status.Code(err) != codes.Internal {
		t.Fatalf("code = %v, want Internal", status.Code(err))
	}
}

func TestLocaleFromContext(t *testing.T) {
	tests := []struct {
		name string
		ctx  context.Context
		want string
	}{
		{name: "no metadata", ctx: context.Background(), want: "en-US"},
		{name: "locale header", ctx: metadata.NewIncomingContext(context.Background(), metadata.Pairs(LocaleHeader, "pt-BR")), want: "pt-BR"},
		{name: "accept language", ctx: metadata.NewIncomingContext(context.Background(), metadata.Pairs("accept-language", "pt")), want: "pt"},
		{name: "empty metadata", ctx: metadata.NewIncomingContext(context.Background(), metadata.MD{}), want: "en-US"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LocaleFromContext(tt.ctx); got != tt.want {
				t.Fatalf("LocaleFromContext() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOutgoingContext(t *testing.T) {
	ctx := OutgoingContext(context.Background(), "inv-9", "pt-BR")
	md, ok := metadata.FromOutgoingContext(ctx)
	if !ok {
		t.Fatal("expected outgoing metadata")
	}
	if FirstMetadataValue(md, InvocationIDHeader) != "inv-9" || FirstMetadataValue(md, LocaleHeader) != "pt-BR" {
		t.Fatalf("unexpected metadata: %v", md)
	}

	plain := context.Background()
	if OutgoingContext(plain, "", "") != plain {
		t.Fatal("expected context unchanged without values")
	}
}

func TestFirstMetadataValueSkipsNonPrintable(t *testing.T) {
	md := metadata.MD{"x-dicebot-request-id": {"bad\x01", "good"}}
	if got := FirstMetadataValue(md, RequestIDHeader); got != "good" {
		t.Fatalf("FirstMetadataValue() = %q, want good", got)
	}
	if IsPrintableASCII("") {
		t.Fatal("empty string is not printable")
	}
}
