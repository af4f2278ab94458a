package binance

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"time"
)

// Signer handles Binance signed-endpoint authentication.
// The signature is an HMAC-SHA256 over the encoded query string
// (timestamp included), hex-encoded and appended as the last parameter.
type Signer struct {
	apiKey    string
	secretKey string
}

// NewSigner creates a new Signer instance
func NewSigner(apiKey, secretKey string) *Signer {
	return &Signer{apiKey: apiKey, secretKey: secretKey}
}

// APIKey returns the key for the X-MBX-APIKEY header.
func (s *Signer) APIKey() string {
	return s.apiKey
}

// SignedQuery stamps the params with timestamp/recvWindow and appends
// the signature. The returned string is the final request query.
func (s *Signer) SignedQuery(params url.Values, recvWindowMS int) string {
	// Binance requirement: Unix timestamp in milliseconds
	params.Set("timestamp", fmt.Sprintf("%d", time.Now().UnixMilli()))
	if recvWindowMS > 0 {
		params.Set("recvWindow", fmt.Sprintf("%d", recvWindowMS))
	}

	// Encode sorts keys; the signature must cover exactly the string
	// that goes on the wire.
	encoded := params.Encode()
	return encoded + "&signature=" + computeHmacSha256Hex(encoded, s.secretKey)
}

func computeHmacSha256Hex(message string, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(message))
	return hex.EncodeToString(h.Sum(nil))
}
