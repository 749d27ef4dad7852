// Package linkcode encodes registry commands into the url-safe tokens
// carried by share links, and decodes them back
package linkcode

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// CommandPrefix marks a decoded payload as a media fetch command. The
// indirection only hides the raw public id in outward links, it is not
// a capability token.
const CommandPrefix = "get-media-"

// ErrDecode is returned for tokens that aren't valid url-safe base64
// or don't carry a fetch command
var ErrDecode = errors.New("malformed share token")

// Encode turns a payload into its url-safe, padding-stripped token form.
// Deterministic and fully reversible via Decode
func Encode(payload string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(payload))
}

// Decode reverses Encode. Non-alphabet characters and impossible
// lengths fail with ErrDecode
func Decode(token string) (string, error) {
	b, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return "", ErrDecode
	}

	return string(b), nil
}

// EncodeCommand builds the token for fetching a stored media item
func EncodeCommand(publicID string) string {
	return Encode(CommandPrefix + publicID)
}

// ParseCommand extracts the public id from a share token. Tokens that
// decode fine but don't follow the command convention are rejected the
// same way as garbage input
func ParseCommand(token string) (string, error) {
	payload, err := Decode(token)
	if err != nil {
		return "", err
	}

	if !strings.HasPrefix(payload, CommandPrefix) {
		return "", ErrDecode
	}

	publicID := strings.TrimPrefix(payload, CommandPrefix)
	if publicID == "" {
		return "", ErrDecode
	}

	return publicID, nil
}

// ShareLink composes the public deep link for a stored media item
func ShareLink(botName, publicID string) string {
	return fmt.Sprintf("https://t.me/%s?start=%s", botName, EncodeCommand(publicID))
}
