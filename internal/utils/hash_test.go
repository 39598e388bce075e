package utils

import (
	"strings"
	"sync"
	"testing"
)

func TestSecureCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{name: "equal", a: "token-0123456789abcdef", b: "token-0123456789abcdef", want: true},
		{name: "both empty", a: "", b: "", want: true},
		{name: "different", a: "token-a", b: "token-b", want: false},
		{name: "prefix", a: "token", b: "token-longer", want: false},
		{name: "empty vs value", a: "", b: "token", want: false},
		{name: "case matters", a: "Token", b: "token", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SecureCompare(tt.a, tt.b); got != tt.want {
				t.Errorf("SecureCompare(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSecureCompare_Concurrent(t *testing.T) {
	secret := strings.Repeat("s", 64)

	var wg sync.WaitGroup
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				if !SecureCompare(secret, secret) {
					t.Error("expected equal secrets to compare equal")
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestMac_Deterministic(t *testing.T) {
	a := mac([]byte("payload"))
	b := mac([]byte("payload"))
	if string(a) != string(b) {
		t.Fatal("expected mac to be deterministic within a process")
	}
	if len(a) != 32 {
		t.Fatalf("mac length = %d, want 32", len(a))
	}
}
