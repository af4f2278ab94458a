package binance

import (
	"net/url"
	"strings"
	"testing"
)

func TestComputeHmacSha256Hex(t *testing.T) {
	// Test vector from the Binance API documentation (signed endpoint
	// example for POST /api/v3/order).
	secret := "NhqPtmdSJYdKjVHjA7PZj4Mge3R5YNiP1e3UZjInClVN65XAbvqqM6A7H5fATj0j"
	query := "symbol=LTCBTC&side=BUY&type=LIMIT&timeInForce=GTC&quantity=1&price=0.1&recvWindow=5000&timestamp=1499827319559"
	expected := "c8db56825ae71d6d79447849e617115f4a920fa2acdcab2b053c4b2838bd6b71"

	if got := computeHmacSha256Hex(query, secret); got != expected {
		t.Errorf("HMAC mismatch. Expected %s, got %s", expected, got)
	}
}

func TestSigner_SignedQuery(t *testing.T) {
	signer := NewSigner("key", "secret")

	params := url.Values{}
	params.Set("symbol", "BTCUSDT")
	params.Set("side", "BUY")

	query := signer.SignedQuery(params, 5000)

	parsed, err := url.ParseQuery(query)
	if err != nil {
		t.Fatalf("signed query does not parse: %v", err)
	}

	if parsed.Get("symbol") != "BTCUSDT" {
		t.Errorf("symbol = %q, want BTCUSDT", parsed.Get("symbol"))
	}
	if parsed.Get("recvWindow") != "5000" {
		t.Errorf("recvWindow = %q, want 5000", parsed.Get("recvWindow"))
	}
	if len(parsed.Get("timestamp")) != 13 { // Milliseconds
		t.Errorf("expected 13-digit timestamp, got %q", parsed.Get("timestamp"))
	}

	sig := parsed.Get("signature")
	if len(sig) != 64 { // hex-encoded SHA-256
		t.Errorf("expected 64-char signature, got %d chars", len(sig))
	}

	// Signature must be the final parameter and cover everything before it.
	idx := strings.LastIndex(query, "&signature=")
	if idx < 0 {
		t.Fatal("signature must be appended as the last parameter")
	}
	if want := computeHmacSha256Hex(query[:idx], "secret"); sig != want {
		t.Errorf("signature does not cover the encoded query: got %s, want %s", sig, want)
	}
}

func TestSigner_APIKey(t *testing.T) {
	signer := NewSigner("my-key", "secret")
	if signer.APIKey() != "my-key" {
		t.Errorf("APIKey() = %q, want my-key", signer.APIKey())
	}
}
