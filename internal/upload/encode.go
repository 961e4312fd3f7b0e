package upload

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strings"

	"github.com/supchaser/quiz_client/internal/utils/errs"
)

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// Encode renders the parts as multipart/form-data and returns the body and
// its Content-Type header value.
func (r *Request) Encode() ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, p := range r.Parts {
		disposition := fmt.Sprintf(`form-data; name="%s"`, quoteEscaper.Replace(p.Name))
		if p.Filename != "" {
			disposition += fmt.Sprintf(`; filename="%s"`, quoteEscaper.Replace(p.Filename))
		}

		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", disposition)
		h.Set("Content-Type", p.ContentType)

		pw, err := w.CreatePart(h)
		if err != nil {
			return nil, "", fmt.Errorf("%w: create part %s: %w", errs.ErrEncoding, p.Name, err)
		}
		if _, err := pw.Write(p.Data); err != nil {
			return nil, "", fmt.Errorf("%w: write part %s: %w", errs.ErrEncoding, p.Name, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("%w: close writer: %w", errs.ErrEncoding, err)
	}

	return buf.Bytes(), w.FormDataContentType(), nil
}
