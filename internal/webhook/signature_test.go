package webhook

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func frozenVerifier(secret string, now time.Time) *Verifier {
	v := NewVerifier(secret)
	v.now = func() time.Time { return now }
	return v
}

func TestVerifyAcceptsValidSignature(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	v := frozenVerifier("whsec_test", now)

	payload := []byte(`{"order_id":"abc","status":"paid"}`)
	header := v.SignatureFor(payload, now.Unix())

	if err := v.Verify(payload, header); err != nil {
		t.Fatalf("expected valid signature, got %v", err)
	}
}

func TestVerifyRejectsTamperedPayload(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	v := frozenVerifier("whsec_test", now)

	header := v.SignatureFor([]byte(`{"total":10}`), now.Unix())

	if err := v.Verify([]byte(`{"total":9999}`), header); !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("expected ErrInvalidSignature, got %v", err)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	signer := frozenVerifier("other_secret", now)
	v := frozenVerifier("whsec_test", now)

	payload := []byte(`{}`)
	header := signer.SignatureFor(payload, now.Unix())

	if err := v.Verify(payload, header); !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("expected ErrInvalidSignature, got %v", err)
	}
}

func TestVerifyRejectsStaleTimestamp(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	v := frozenVerifier("whsec_test", now)

	payload := []byte(`{}`)
	stale := now.Add(-10 * time.Minute).Unix()
	header := v.SignatureFor(payload, stale)

	if err := v.Verify(payload, header); !errors.Is(err, ErrExpiredTimestamp) {
		t.Fatalf("expected ErrExpiredTimestamp, got %v", err)
	}
}

func TestVerifyRejectsMissingOrMalformedHeader(t *testing.T) {
	v := frozenVerifier("whsec_test", time.Unix(1_700_000_000, 0))
	payload := []byte(`{}`)

	if err := v.Verify(payload, ""); !errors.Is(err, ErrMissingSignature) {
		t.Fatalf("expected ErrMissingSignature, got %v", err)
	}

	for _, header := range []string{"garbage", "t=notanumber,v1=aa", "t=123", "v1=abcdef"} {
		if err := v.Verify(payload, header); !errors.Is(err, ErrMalformedSignature) {
			t.Fatalf("expected ErrMalformedSignature for %q, got %v", header, err)
		}
	}
}

func TestVerifyAcceptsAnyMatchingV1Signature(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	v := frozenVerifier("whsec_test", now)

	payload := []byte(`{}`)
	valid := v.SignatureFor(payload, now.Unix())
	header := fmt.Sprintf("t=%d,v1=deadbeef,%s", now.Unix(), valid[len(fmt.Sprintf("t=%d,", now.Unix())):])

	if err := v.Verify(payload, header); err != nil {
		t.Fatalf("expected match on second v1 entry, got %v", err)
	}
}

func TestProcessableStatuses(t *testing.T) {
	cases := map[string]bool{
		"paid":     true,
		"approved": true,
		"pending":  false,
		"refused":  false,
		"refunded": false,
		"":         false,
	}

	for status, want := range cases {
		e := OrderEvent{Status: status}
		if got := e.Processable(); got != want {
			t.Fatalf("Processable(%q) = %v, want %v", status, got, want)
		}
	}
}
