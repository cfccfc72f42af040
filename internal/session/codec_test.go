package session_test

import (
	"strings"
	"testing"

	"github.com/plumeworks/plume-backend/internal/session"
)

// TestEncodeDecodeRoundTrip verifies that a token produced by Encode decodes
// back to the same data with the same codec.
func TestEncodeDecodeRoundTrip(t *testing.T) {
	codec := session.NewCodec("test-secret")

	token, err := codec.Encode(session.Data{UserID: 42})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	got, ok := codec.Decode(token)
	if !ok {
		t.Fatal("expected token to decode")
	}
	if got.UserID != 42 {
		t.Errorf("expected UserID 42, got %d", got.UserID)
	}
}

// TestDecodeRejectsWrongKey verifies that a token signed with one key is not
// accepted by a codec holding another.
func TestDecodeRejectsWrongKey(t *testing.T) {
	token, err := session.NewCodec("key-one").Encode(session.Data{UserID: 7})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	if _, ok := session.NewCodec("key-two").Decode(token); ok {
		t.Error("expected token signed with a different key to be rejected")
	}
}

// TestDecodeRejectsTamperedPayload verifies that altering the payload part of
// a token invalidates its signature.
func TestDecodeRejectsTamperedPayload(t *testing.T) {
	codec := session.NewCodec("test-secret")

	token, err := codec.Encode(session.Data{UserID: 7})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	payload, sig, _ := strings.Cut(token, ".")
	// Swap the first payload character for another valid base64url character.
	replacement := "A"
	if strings.HasPrefix(payload, "A") {
		replacement = "B"
	}
	tampered := replacement + payload[1:]

	if _, ok := codec.Decode(tampered + "." + sig); ok {
		t.Error("expected tampered token to be rejected")
	}
}

// TestDecodeRejectsMalformedTokens verifies that garbage input decodes to
// anonymous instead of failing loudly.
func TestDecodeRejectsMalformedTokens(t *testing.T) {
	codec := session.NewCodec("test-secret")

	for _, token := range []string{
		"",
		"no-separator",
		"not!base64.also!not",
		"eyJ1c2VyX2lkIjo3fQ", // payload only, no signature part
		".",
	} {
		if _, ok := codec.Decode(token); ok {
			t.Errorf("expected %q to be rejected", token)
		}
	}
}
