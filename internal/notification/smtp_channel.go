package notification

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/base64"
	"fmt"
	"mime/multipart"
	"mime/quotedprintable"
	"net"
	"net/smtp"
	"net/textproto"
	"time"

	"github.com/Prathamesh666/RAB-Matheran-Website/internal/config"
)

// smtpChannel delivers email over a direct SMTP connection with STARTTLS.
type smtpChannel struct {
	host           string
	port           string
	user           string
	pass           string
	adminEmail     string
	allowAnonymous bool
	timeout        time.Duration
}

// NewSMTPChannel creates the direct SMTP delivery channel.
func NewSMTPChannel(cfg config.Mail) Channel {
	return &smtpChannel{
		host:           cfg.SMTPHost,
		port:           cfg.SMTPPort,
		user:           cfg.SMTPUser,
		pass:           cfg.SMTPPass,
		adminEmail:     cfg.AdminEmail,
		allowAnonymous: cfg.SMTPAllowAnonymous,
		timeout:        cfg.Timeout,
	}
}

func (c *smtpChannel) Name() string { return "smtp" }

func (c *smtpChannel) Deliver(ctx context.Context, to string, msg Message, logo *InlineLogo) error {
	from := c.user
	if from == "" {
		from = c.adminEmail
	}

	addr := net.JoinHostPort(c.host, c.port)
	conn, err := net.DialTimeout("tcp", addr, c.timeout)
	if err != nil {
		return fmt.Errorf("dial %s: %w", addr, err)
	}
	// Bound the whole SMTP conversation, not just the dial.
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	} else {
		_ = conn.SetDeadline(time.Now().Add(c.timeout))
	}

	client, err := smtp.NewClient(conn, c.host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("smtp handshake with %s: %w", addr, err)
	}
	// Connection teardown on all paths, success or failure.
	defer client.Close()

	if err := client.StartTLS(&tls.Config{ServerName: c.host}); err != nil {
		return fmt.Errorf("starttls with %s: %w", addr, err)
	}

	// Authenticate only when both credentials are present; anonymous
	// relay is permitted when configured.
	if c.user != "" && c.pass != "" {
		if err := client.Auth(smtp.PlainAuth("", c.user, c.pass, c.host)); err != nil {
			return fmt.Errorf("smtp auth: %w", err)
		}
	} else if !c.allowAnonymous {
		return fmt.Errorf("smtp credentials incomplete and anonymous relay disabled")
	}

	if err := client.Mail(from); err != nil {
		return fmt.Errorf("smtp mail from %s: %w", from, err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("smtp rcpt to %s: %w", to, err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}
	if _, err := w.Write(buildMIME(from, to, msg, logo)); err != nil {
		w.Close()
		return fmt.Errorf("write message body: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finish message body: %w", err)
	}

	return client.Quit()
}

// buildMIME assembles an RFC 5322 message: multipart/alternative with the
// plain body first and the HTML body as alternative. When the logo is
// present the HTML part is wrapped in multipart/related with the image
// bytes under the content id the HTML references.
func buildMIME(from, to string, msg Message, logo *InlineLogo) []byte {
	var buf bytes.Buffer

	alt := multipart.NewWriter(&buf)
	fmt.Fprintf(&buf, "From: %s\r\n", from)
	fmt.Fprintf(&buf, "To: %s\r\n", to)
	fmt.Fprintf(&buf, "Subject: %s\r\n", msg.Subject)
	fmt.Fprintf(&buf, "MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: multipart/alternative; boundary=%q\r\n", alt.Boundary())
	fmt.Fprintf(&buf, "\r\n")

	writeTextPart(alt, "text/plain; charset=utf-8", msg.PlainBody)

	if logo == nil {
		writeTextPart(alt, "text/html; charset=utf-8", msg.HTMLBody)
		alt.Close()
		return buf.Bytes()
	}

	// Related wrapper ties the HTML part to the inline image bytes.
	var related bytes.Buffer
	rel := multipart.NewWriter(&related)
	writeTextPart(rel, "text/html; charset=utf-8", msg.HTMLBody)
	writeLogoPart(rel, logo)
	rel.Close()

	part, _ := alt.CreatePart(textproto.MIMEHeader{
		"Content-Type": {fmt.Sprintf("multipart/related; boundary=%q", rel.Boundary())},
	})
	part.Write(related.Bytes())
	alt.Close()

	return buf.Bytes()
}

func writeTextPart(w *multipart.Writer, contentType, body string) {
	part, _ := w.CreatePart(textproto.MIMEHeader{
		"Content-Type":              {contentType},
		"Content-Transfer-Encoding": {"quoted-printable"},
	})
	qp := quotedprintable.NewWriter(part)
	qp.Write([]byte(body))
	qp.Close()
}

func writeLogoPart(w *multipart.Writer, logo *InlineLogo) {
	part, _ := w.CreatePart(textproto.MIMEHeader{
		"Content-Type":              {LogoMIME},
		"Content-Transfer-Encoding": {"base64"},
		"Content-ID":                {"<" + LogoCID + ">"},
		"Content-Disposition":       {fmt.Sprintf("inline; filename=%q", LogoFilename)},
	})
	part.Write(wrapBase64(logo.Data))
}

// wrapBase64 encodes data and folds it into 76-character lines.
func wrapBase64(data []byte) []byte {
	encoded := base64.StdEncoding.EncodeToString(data)
	var out bytes.Buffer
	for len(encoded) > 76 {
		out.WriteString(encoded[:76])
		out.WriteString("\r\n")
		encoded = encoded[76:]
	}
	out.WriteString(encoded)
	return out.Bytes()
}
