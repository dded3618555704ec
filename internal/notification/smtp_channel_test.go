package notification

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildMIME_WithoutLogo(t *testing.T) {
	msg := Message{Subject: "Booking Created", PlainBody: "plain text", HTMLBody: "<p>html body</p>"}

	raw := string(buildMIME("from@example.com", "to@example.com", msg, nil))

	assert.Contains(t, raw, "From: from@example.com\r\n")
	assert.Contains(t, raw, "To: to@example.com\r\n")
	assert.Contains(t, raw, "Subject: Booking Created\r\n")
	assert.Contains(t, raw, "MIME-Version: 1.0")
	assert.Contains(t, raw, "multipart/alternative")
	assert.Contains(t, raw, "text/plain; charset=utf-8")
	assert.Contains(t, raw, "text/html; charset=utf-8")
	assert.Contains(t, raw, "plain text")
	assert.Contains(t, raw, "<p>html body</p>")

	assert.NotContains(t, raw, "multipart/related")
	assert.NotContains(t, raw, "Content-Id")
	assert.NotContains(t, raw, "Content-ID")
}

func TestBuildMIME_WithLogo(t *testing.T) {
	msg := Message{Subject: "s", PlainBody: "p", HTMLBody: `<img src="cid:RAG_Logo">`}
	logo := &InlineLogo{Data: []byte("pretend png bytes")}

	raw := string(buildMIME("from@example.com", "to@example.com", msg, logo))

	assert.Contains(t, raw, "multipart/related")
	assert.Contains(t, raw, "Content-ID: <RAG_Logo>")
	assert.Contains(t, raw, "image/png")
	assert.Contains(t, raw, `inline; filename="RAG_Logo.png"`)
	assert.Contains(t, raw, base64.StdEncoding.EncodeToString(logo.Data))

	// Plain part comes first so clients without HTML still show something.
	plainIdx := strings.Index(raw, "text/plain")
	htmlIdx := strings.Index(raw, "text/html")
	assert.Less(t, plainIdx, htmlIdx)
}

func TestWrapBase64_FoldsLongLines(t *testing.T) {
	data := make([]byte, 600)
	for i := range data {
		data[i] = byte(i % 251)
	}

	wrapped := string(wrapBase64(data))
	for _, line := range strings.Split(wrapped, "\r\n") {
		assert.LessOrEqual(t, len(line), 76)
	}

	joined := strings.ReplaceAll(wrapped, "\r\n", "")
	decoded, err := base64.StdEncoding.DecodeString(joined)
	assert.NoError(t, err)
	assert.Equal(t, data, decoded)
}
