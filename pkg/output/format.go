package output

import (
	"strings"
	"xurl/pkg/serrors"

	"github.com/go-faster/jx"
)

// Format is an output file encoding.
type Format string

const (
	// FormatText writes one URL per line, LF terminated.
	FormatText Format = "text"
	// FormatJSON writes a JSON array of URL records.
	FormatJSON Format = "json"
)

// ParseFormat converts a user supplied name into a Format.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatText, FormatJSON:
		return f, nil
	default:
		return "", serrors.With(serrors.ErrBadRequest, "unknown output format %q (want text or json)", name)
	}
}

// Encode renders sorted URLs in the given format.
func Encode(format Format, sorted []string) ([]byte, error) {
	switch format {
	case FormatText, "":
		return encodeText(sorted), nil
	case FormatJSON:
		return encodeJSON(sorted), nil
	default:
		return nil, serrors.With(serrors.ErrBadRequest, "unknown output format %q", format)
	}
}

func encodeText(sorted []string) []byte {
	var b strings.Builder
	for _, u := range sorted {
		b.WriteString(u)
		b.WriteByte('\n')
	}

	return []byte(b.String())
}

func encodeJSON(sorted []string) []byte {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	e.SetIdent(2)
	e.Arr(func(e *jx.Encoder) {
		for _, u := range sorted {
			rec := Describe(u)
			e.Obj(func(e *jx.Encoder) {
				e.Field("url", func(e *jx.Encoder) { e.Str(rec.URL) })
				if rec.Scheme != "" {
					e.Field("scheme", func(e *jx.Encoder) { e.Str(rec.Scheme) })
				}
				if rec.Host != "" {
					e.Field("host", func(e *jx.Encoder) { e.Str(rec.Host) })
				}
			})
		}
	})

	out := append([]byte(nil), e.Bytes()...)

	return append(out, '\n')
}
