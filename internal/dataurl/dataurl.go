// Package dataurl decodes the data: URLs that carry uploaded stylesheets and
// image assets inline in requests.
package dataurl

import (
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"
)

// ErrNotDataURL marks input that is not a well-formed data URL (missing the
// "data:" scheme or the header/payload comma). Payload decode failures are
// returned as ordinary wrapped errors instead.
var ErrNotDataURL = errors.New("not a data URL")

// Status classifies the outcome of a text decode, so callers can tell a
// legitimately empty stylesheet apart from a swallowed decode error.
type Status int

const (
	StatusOK      Status = iota
	StatusEmpty          // decoded, but nothing usable after sanitization
	StatusInvalid        // malformed data URL or undecodable payload
)

// Text is the result of decoding a textual data URL (stylesheets).
type Text struct {
	Status  Status
	Content string
}

// DecodeText decodes a textual data URL and sanitizes the result down to
// printable ASCII plus newline, carriage return, and tab. It never returns an
// error: malformed input degrades to StatusInvalid with a logged diagnostic so
// prompt assembly can skip the file and keep going.
func DecodeText(dataURL string) Text {
	header, payload, ok := splitDataURL(dataURL)
	if !ok {
		return Text{Status: StatusInvalid}
	}

	var decoded string
	if strings.Contains(header, "base64") {
		raw, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			log.Printf("[DATAURL] base64 decode failed: %v", err)
			return Text{Status: StatusInvalid}
		}
		decoded = string(raw)
	} else {
		unescaped, err := url.PathUnescape(payload)
		if err != nil {
			log.Printf("[DATAURL] percent decode failed: %v", err)
			return Text{Status: StatusInvalid}
		}
		decoded = unescaped
	}

	sanitized := sanitizeText(decoded)
	if strings.TrimSpace(sanitized) == "" {
		return Text{Status: StatusEmpty}
	}
	return Text{Status: StatusOK, Content: sanitized}
}

// DecodeBinary decodes a binary data URL verbatim, without sanitization. The
// mime type comes from the data URL header when present, else declaredType.
// Shape problems report ErrNotDataURL; payload decode failures report a
// distinct wrapped error so callers can separate bad input from bad storage.
func DecodeBinary(dataURL, declaredType string) ([]byte, string, error) {
	header, payload, ok := splitDataURL(dataURL)
	if !ok {
		return nil, "", ErrNotDataURL
	}

	mime := mimeFromHeader(header)
	if mime == "" {
		mime = declaredType
	}

	if strings.Contains(header, "base64") {
		raw, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return nil, "", fmt.Errorf("decode base64 payload: %w", err)
		}
		return raw, mime, nil
	}

	unescaped, err := url.PathUnescape(payload)
	if err != nil {
		return nil, "", fmt.Errorf("decode percent-encoded payload: %w", err)
	}
	return []byte(unescaped), mime, nil
}

// splitDataURL validates the "data:" scheme and splits header from payload at
// the first comma.
func splitDataURL(dataURL string) (header, payload string, ok bool) {
	if !strings.HasPrefix(dataURL, "data:") {
		log.Printf("[DATAURL] missing data: scheme: %.50s", dataURL)
		return "", "", false
	}
	header, payload, found := strings.Cut(dataURL, ",")
	if !found {
		log.Printf("[DATAURL] no comma separator in data URL")
		return "", "", false
	}
	return header, payload, true
}

// mimeFromHeader extracts the mime type from a header like
// "data:image/png;base64". Returns "" when the header carries none.
func mimeFromHeader(header string) string {
	rest := strings.TrimPrefix(header, "data:")
	mime, _, _ := strings.Cut(rest, ";")
	return mime
}

// sanitizeText strips everything outside printable ASCII except newline,
// carriage return, and tab, so stylesheet text cannot smuggle control
// characters into the assembled prompt.
func sanitizeText(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= 0x20 && r <= 0x7E) || r == '\n' || r == '\r' || r == '\t' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
