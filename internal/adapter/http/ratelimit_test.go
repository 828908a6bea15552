package httpadapter

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

func TestIPLimiter_BurstThenRejects(t *testing.T) {
	l := NewIPLimiter(0, 2)
	if !l.Allow("10.0.0.1") || !l.Allow("10.0.0.1") {
		t.Fatalf("expected burst of two to pass")
	}
	if l.Allow("10.0.0.1") {
		t.Fatalf("expected third request to be limited")
	}
	if !l.Allow("10.0.0.2") {
		t.Fatalf("expected separate bucket per address")
	}
}

func TestIPLimiter_ClampsBurst(t *testing.T) {
	l := NewIPLimiter(0, 0)
	if !l.Allow("a") {
		t.Fatalf("expected one request with clamped burst")
	}
	if l.Allow("a") {
		t.Fatalf("expected second request to be limited")
	}
}

func TestRateLimitMiddleware_Returns429(t *testing.T) {
	l := NewIPLimiter(0, 1)
	mw := rateLimitMiddleware(l)

	first := &app.RequestContext{}
	mw(context.Background(), first)
	if first.IsAborted() {
		t.Fatalf("first request should pass")
	}

	second := &app.RequestContext{}
	mw(context.Background(), second)
	if !second.IsAborted() {
		t.Fatalf("second request should abort")
	}
	if got, want := second.Response.StatusCode(), consts.StatusTooManyRequests; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	if got := string(second.Response.Header.Peek("Retry-After")); got != "1" {
		t.Fatalf("retry-after mismatch: got=%q", got)
	}
	var body map[string]map[string]any
	if err := json.Unmarshal(second.Response.Body(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if got, want := body["error"]["code"], "rate_limited"; got != want {
		t.Fatalf("error code mismatch: got=%q want=%q", got, want)
	}
}

func TestRateLimitMiddleware_NilLimiterPasses(t *testing.T) {
	ctx := &app.RequestContext{}
	rateLimitMiddleware(nil)(context.Background(), ctx)
	if ctx.IsAborted() {
		t.Fatalf("nil limiter should not abort")
	}
}
