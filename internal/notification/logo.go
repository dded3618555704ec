package notification

import (
	"fmt"
	"os"
)

// Inline logo attachment constants. The HTML bodies reference the image
// by this content id, so both channels must attach it under the same one.
const (
	LogoCID      = "RAG_Logo"
	LogoMIME     = "image/png"
	LogoFilename = "RAG_Logo.png"
)

// InlineLogo holds the logo bytes prepared for inline embedding.
type InlineLogo struct {
	Data []byte
}

// LoadLogo reads the logo file at path. The file handle is released before
// returning on every path. A missing file is reported via the error; the
// dispatcher downgrades to sending without an inline image.
func LoadLogo(path string) (*InlineLogo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load logo %s: %w", path, err)
	}
	return &InlineLogo{Data: data}, nil
}
