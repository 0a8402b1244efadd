package output

import (
	"net"
	"net/url"
	"strings"
)

// Record is a URL plus the parts of it worth indexing on.
type Record struct {
	URL    string
	Scheme string
	Host   string
}

// Describe splits u into a Record. The URL itself is kept verbatim; scheme and
// host are lower-cased, and default ports (http:80, https:443) are dropped
// from the host. When u cannot be parsed only URL is set.
func Describe(u string) Record {
	rec := Record{URL: u}

	parsed, err := url.Parse(u)
	if err != nil {
		return rec
	}

	rec.Scheme = strings.ToLower(parsed.Scheme)

	host := strings.ToLower(parsed.Host)
	if h, port, err := net.SplitHostPort(host); err == nil {
		if (rec.Scheme == "http" && port == "80") || (rec.Scheme == "https" && port == "443") {
			host = h
			if strings.Contains(h, ":") {
				host = "[" + h + "]"
			}
		}
	}
	rec.Host = host

	return rec
}
