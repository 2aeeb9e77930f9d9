// SPDX-License-Identifier: MIT

package codec

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format names a supported file layout.
type Format string

const (
	JSON Format = "json"
	CSV  Format = "csv"
	XLSX Format = "xlsx"
	BIN  Format = "bin"
)

// ParseFormat accepts "json", "csv", "xlsx" or "bin" in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case JSON, CSV, XLSX, BIN:
		return f, nil
	default:
		return "", fmt.Errorf("ParseFormat %q: %w", s, ErrUnknownFormat)
	}
}

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")

	return ParseFormat(ext)
}
