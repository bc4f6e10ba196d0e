package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// SignatureHeader is the request header carrying the payload signature,
// formatted as "t=<unix>,v1=<hex hmac-sha256>".
const SignatureHeader = "X-Webhook-Signature"

// DefaultTolerance bounds how stale a signed timestamp may be.
const DefaultTolerance = 5 * time.Minute

var (
	ErrMissingSignature   = errors.New("missing webhook signature")
	ErrMalformedSignature = errors.New("malformed webhook signature")
	ErrExpiredTimestamp   = errors.New("webhook timestamp outside tolerance")
	ErrInvalidSignature   = errors.New("webhook signature mismatch")
)

// Verifier checks HMAC-SHA256 signatures over raw webhook payloads.
type Verifier struct {
	secret    []byte
	tolerance time.Duration
	now       func() time.Time
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{
		secret:    []byte(secret),
		tolerance: DefaultTolerance,
		now:       time.Now,
	}
}

// Verify parses the signature header and checks it against the payload.
// The signed message is "<timestamp>.<payload>".
func (v *Verifier) Verify(payload []byte, header string) error {
	if header == "" {
		return ErrMissingSignature
	}

	timestamp, signatures, err := parseHeader(header)
	if err != nil {
		return err
	}

	ts := time.Unix(timestamp, 0)
	if diff := v.now().Sub(ts); diff > v.tolerance || diff < -v.tolerance {
		return ErrExpiredTimestamp
	}

	expected := v.Sign(payload, timestamp)
	for _, sig := range signatures {
		decoded, err := hex.DecodeString(sig)
		if err != nil {
			continue
		}
		if hmac.Equal(decoded, expected) {
			return nil
		}
	}

	return ErrInvalidSignature
}

// Sign computes the raw HMAC for payload at timestamp. Exposed for
// tests and outbound signing.
func (v *Verifier) Sign(payload []byte, timestamp int64) []byte {
	mac := hmac.New(sha256.New, v.secret)
	fmt.Fprintf(mac, "%d.", timestamp)
	mac.Write(payload)
	return mac.Sum(nil)
}

// SignatureFor renders a complete header value for payload, useful for
// tests and local delivery tooling.
func (v *Verifier) SignatureFor(payload []byte, timestamp int64) string {
	return fmt.Sprintf("t=%d,v1=%s", timestamp, hex.EncodeToString(v.Sign(payload, timestamp)))
}

func parseHeader(header string) (int64, []string, error) {
	var timestamp int64 = -1
	var signatures []string

	for _, part := range strings.Split(header, ",") {
		kv := strings.SplitN(strings.TrimSpace(part), "=", 2)
		if len(kv) != 2 {
			continue
		}
		switch kv[0] {
		case "t":
			ts, err := strconv.ParseInt(kv[1], 10, 64)
			if err != nil {
				return 0, nil, ErrMalformedSignature
			}
			timestamp = ts
		case "v1":
			signatures = append(signatures, kv[1])
		}
	}

	if timestamp < 0 || len(signatures) == 0 {
		return 0, nil, ErrMalformedSignature
	}
	return timestamp, signatures, nil
}
