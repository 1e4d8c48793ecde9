package nosvault

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/nbd-wtf/go-nostr"
)

// AuthScheme is the authorization scheme prefix for signed-event credentials.
const AuthScheme = "Nostr"

// pubKeyRegex matches a canonical identity: an x-only secp256k1 public
// key as 64 lowercase hex characters.
var pubKeyRegex = regexp.MustCompile(`^[0-9a-f]{64}$`)

// IsValidPubKey reports whether s is a canonically formatted public key.
func IsValidPubKey(s string) bool {
	return pubKeyRegex.MatchString(s)
}

// Verifier validates signed-event credentials carried in Authorization
// headers and extracts the authenticated public key.
type Verifier struct {
	Scheme string
}

// NewVerifier creates a Verifier for the standard "Nostr" scheme.
func NewVerifier() *Verifier {
	return &Verifier{Scheme: AuthScheme}
}

// Verify validates an Authorization header value of the form
// "Nostr <base64(JSON event)>" and returns the event's public key.
//
// The credential is accepted only if:
//  1. The scheme prefix matches (case-insensitive)
//  2. The payload is valid standard base64
//  3. The payload decodes to a well-formed event
//  4. The event's pubkey is a canonically formatted public key
//  5. The event's schnorr signature verifies against that pubkey
//
// Every failure returns an error wrapping ErrUnauthorized. Callers must
// not distinguish failure modes to clients, and the raw credential is
// never logged here.
func (v *Verifier) Verify(header string) (string, error) {
	scheme, payload, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, v.Scheme) {
		return "", fmt.Errorf("missing %s authorization scheme: %w", v.Scheme, ErrUnauthorized)
	}

	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(payload))
	if err != nil {
		return "", fmt.Errorf("decode credential: %w", ErrUnauthorized)
	}

	var evt nostr.Event
	if err := json.Unmarshal(raw, &evt); err != nil {
		return "", fmt.Errorf("parse event: %w", ErrUnauthorized)
	}

	if !IsValidPubKey(evt.PubKey) {
		return "", fmt.Errorf("malformed pubkey: %w", ErrUnauthorized)
	}

	ok, err := evt.CheckSignature()
	if err != nil || !ok {
		return "", fmt.Errorf("signature verification failed: %w", ErrUnauthorized)
	}

	return evt.PubKey, nil
}
