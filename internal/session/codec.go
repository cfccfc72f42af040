// Package session implements the signed client-side session token. The
// server hands the whole session state to the browser inside a cookie; the
// HMAC signature is what keeps the client from forging or altering it.
package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"strings"
)

// Data is the state carried inside a token. An absent or invalid token means
// the request is anonymous.
type Data struct {
	UserID int64 `json:"user_id"`
}

// Codec signs and verifies session payloads with HMAC-SHA256. The key is
// process configuration, not global state.
type Codec struct {
	secret []byte
}

func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret)}
}

// Encode serializes data and appends its signature. The token layout is
// base64url(payload) + "." + base64url(signature).
func (c *Codec) Encode(data Data) (string, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return "", err
	}

	sig := c.sign(payload)
	return base64.RawURLEncoding.EncodeToString(payload) + "." + base64.RawURLEncoding.EncodeToString(sig), nil
}

// Decode verifies the signature and returns the embedded data. The second
// return value is false for any token this codec did not produce, including
// tokens signed with a different key.
func (c *Codec) Decode(token string) (Data, bool) {
	payloadPart, sigPart, found := strings.Cut(token, ".")
	if !found {
		return Data{}, false
	}

	payload, err := base64.RawURLEncoding.DecodeString(payloadPart)
	if err != nil {
		return Data{}, false
	}
	sig, err := base64.RawURLEncoding.DecodeString(sigPart)
	if err != nil {
		return Data{}, false
	}

	if !hmac.Equal(sig, c.sign(payload)) {
		return Data{}, false
	}

	var data Data
	if err := json.Unmarshal(payload, &data); err != nil {
		return Data{}, false
	}
	return data, true
}

func (c *Codec) sign(payload []byte) []byte {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write(payload)
	return mac.Sum(nil)
}
