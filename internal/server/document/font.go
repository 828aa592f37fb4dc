package document

import (
	"bytes"
	"errors"
	"fmt"
	"os"
)

// FontStatus reports whether the Unicode body font could be loaded.
type FontStatus int

const (
	FontMissing FontStatus = iota
	FontAvailable
)

func (s FontStatus) String() string {
	if s == FontAvailable {
		return "available"
	}
	return "missing"
}

// Font is the result of probing the configured body font.
type Font struct {
	Status FontStatus
	Path   string
	Data   []byte
	// Reason explains a FontMissing result.
	Reason error
}

var errNotTrueType = errors.New("not a TrueType font")

var sfntVersions = [][]byte{
	{0x00, 0x01, 0x00, 0x00},
	[]byte("true"),
}

// ProbeFont reads the TrueType file at path. It never fails: a missing or
// unreadable font produces a FontMissing result so callers can degrade to
// the built-in font.
func ProbeFont(path string) Font {
	if path == "" {
		return Font{Status: FontMissing, Reason: errors.New("no font configured")}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Font{Status: FontMissing, Path: path, Reason: fmt.Errorf("read font: %w", err)}
	}

	if len(data) < 12 || !hasSfntVersion(data[:4]) {
		return Font{Status: FontMissing, Path: path, Reason: errNotTrueType}
	}

	return Font{Status: FontAvailable, Path: path, Data: data}
}

func hasSfntVersion(b []byte) bool {
	for _, v := range sfntVersions {
		if bytes.Equal(b, v) {
			return true
		}
	}
	return false
}
