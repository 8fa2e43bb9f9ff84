package middleware

import (
	"testing"
	"time"
)

func TestRateLimiter_AllowsUpToMax(t *testing.T) {
	rl := NewRateLimiter(RateLimitConfig{
		Max:    3,
		Window: time.Minute,
		KeyFn:  KeyByIP,
	})

	for i := 0; i < 3; i++ {
		if !rl.Allow("ip:1.2.3.4") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if rl.Allow("ip:1.2.3.4") {
		t.Error("request over the limit should be blocked")
	}
}

func TestRateLimiter_IndependentKeys(t *testing.T) {
	rl := NewRateLimiter(RateLimitConfig{
		Max:    1,
		Window: time.Minute,
		KeyFn:  KeyByIP,
	})

	if !rl.Allow("ip:1.1.1.1") {
		t.Fatal("first key should be allowed")
	}
	if !rl.Allow("ip:2.2.2.2") {
		t.Error("a different key must have its own window")
	}
	if rl.Allow("ip:1.1.1.1") {
		t.Error("first key should now be blocked")
	}
}

func TestRateLimiter_WindowReset(t *testing.T) {
	rl := NewRateLimiter(RateLimitConfig{
		Max:    1,
		Window: 10 * time.Millisecond,
		KeyFn:  KeyByIP,
	})

	if !rl.Allow("ip:1.2.3.4") {
		t.Fatal("first request should be allowed")
	}
	if rl.Allow("ip:1.2.3.4") {
		t.Fatal("second request in the window should be blocked")
	}

	time.Sleep(20 * time.Millisecond)

	if !rl.Allow("ip:1.2.3.4") {
		t.Error("request after window expiry should be allowed")
	}
}
