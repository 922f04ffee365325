package dataurl

import (
	"bytes"
	"encoding/base64"
	"errors"
	"testing"
)

func TestDecodeTextBase64(t *testing.T) {
	css := ".button { color: blue; }\n"
	dataURL := "data:text/css;base64," + base64.StdEncoding.EncodeToString([]byte(css))

	result := DecodeText(dataURL)
	if result.Status != StatusOK {
		t.Fatalf("expected StatusOK, got %v", result.Status)
	}
	if result.Content != css {
		t.Errorf("expected %q, got %q", css, result.Content)
	}
}

func TestDecodeTextPercentEncoded(t *testing.T) {
	dataURL := "data:text/css,.nav%20%7B%20display%3A%20flex%3B%20%7D"

	result := DecodeText(dataURL)
	if result.Status != StatusOK {
		t.Fatalf("expected StatusOK, got %v", result.Status)
	}
	if result.Content != ".nav { display: flex; }" {
		t.Errorf("unexpected content: %q", result.Content)
	}
}

func TestDecodeTextInvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		dataURL string
	}{
		{"missing scheme", "text/css;base64,LmJ1dHRvbiB7fQ=="},
		{"no comma", "data:text/css;base64"},
		{"malformed base64", "data:text/css;base64,!!!not-base64!!!"},
		{"bad percent escape", "data:text/css,.a%ZZ"},
		{"empty string", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := DecodeText(tc.dataURL)
			if result.Status != StatusInvalid {
				t.Errorf("expected StatusInvalid, got %v", result.Status)
			}
			if result.Content != "" {
				t.Errorf("expected empty content, got %q", result.Content)
			}
		})
	}
}

func TestDecodeTextStripsControlCharacters(t *testing.T) {
	raw := ".a {\x00 color: red;\x1b }\n\ttab ok\r"
	dataURL := "data:text/css;base64," + base64.StdEncoding.EncodeToString([]byte(raw))

	result := DecodeText(dataURL)
	if result.Status != StatusOK {
		t.Fatalf("expected StatusOK, got %v", result.Status)
	}
	want := ".a { color: red; }\n\ttab ok\r"
	if result.Content != want {
		t.Errorf("expected %q, got %q", want, result.Content)
	}
}

func TestDecodeTextAllWhitespaceIsEmpty(t *testing.T) {
	dataURL := "data:text/css;base64," + base64.StdEncoding.EncodeToString([]byte(" \n\t \x00 "))

	result := DecodeText(dataURL)
	if result.Status != StatusEmpty {
		t.Errorf("expected StatusEmpty, got %v", result.Status)
	}
}

func TestDecodeBinaryRoundTrip(t *testing.T) {
	payload := []byte{0x89, 0x50, 0x4E, 0x47, 0x00, 0x1b, 0xff}
	dataURL := "data:image/png;base64," + base64.StdEncoding.EncodeToString(payload)

	got, mime, err := DecodeBinary(dataURL, "application/octet-stream")
	if err != nil {
		t.Fatalf("DecodeBinary: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("bytes not preserved: got %v", got)
	}
	if mime != "image/png" {
		t.Errorf("expected mime image/png, got %q", mime)
	}
}

func TestDecodeBinaryFallbackMime(t *testing.T) {
	dataURL := "data:;base64," + base64.StdEncoding.EncodeToString([]byte("x"))

	_, mime, err := DecodeBinary(dataURL, "image/svg+xml")
	if err != nil {
		t.Fatalf("DecodeBinary: %v", err)
	}
	if mime != "image/svg+xml" {
		t.Errorf("expected declared type fallback, got %q", mime)
	}
}

func TestDecodeBinaryNotDataURL(t *testing.T) {
	_, _, err := DecodeBinary("http://example.com/logo.png", "image/png")
	if !errors.Is(err, ErrNotDataURL) {
		t.Errorf("expected ErrNotDataURL, got %v", err)
	}

	_, _, err = DecodeBinary("data:image/png;base64", "image/png")
	if !errors.Is(err, ErrNotDataURL) {
		t.Errorf("expected ErrNotDataURL for missing comma, got %v", err)
	}
}

func TestDecodeBinaryBadPayloadIsNotShapeError(t *testing.T) {
	_, _, err := DecodeBinary("data:image/png;base64,@@@@", "image/png")
	if err == nil {
		t.Fatal("expected decode error")
	}
	if errors.Is(err, ErrNotDataURL) {
		t.Error("payload decode failure should not report ErrNotDataURL")
	}
}
