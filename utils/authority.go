package utils

import "fmt"

/*
   URI parlance (see https://www.rfc-editor.org/rfc/rfc3986.html#section-3.2):

       https://example.com:8042/over/there?name=ferret
       \___/   \______________/\_________/ \_________/
         |            |             |           |
       scheme     authority        path       query

   A bucket address never carries userinfo, so Authority here is just
   scheme, host, and an optional port.
*/

// Authority represents the scheme, host, and optional port of a bucket address.
// A zero port means "default for the scheme" and is omitted when rendered.
type Authority struct {
	scheme string
	host   string
	port   uint16
}

// NewAuthority initializes an Authority. A port equal to the scheme's default
// (80 for http, 443 for https) is normalized to zero so it never renders.
func NewAuthority(scheme, host string, port uint16) Authority {
	if port == DefaultPort(scheme) {
		port = 0
	}
	return Authority{scheme: scheme, host: host, port: port}
}

// Scheme returns the URI scheme, ie "https".
func (a Authority) Scheme() string {
	return a.scheme
}

// Host returns the host portion of the authority, without port.
func (a Authority) Host() string {
	return a.host
}

// Port returns the port portion of the authority. Zero means the scheme default.
func (a Authority) Port() uint16 {
	return a.port
}

// HostPort returns a concatenated string of host and non-default port, separated
// by a colon, ie "host.com:1234". This is the value signed as the host header.
func (a Authority) HostPort() string {
	if a.port != 0 {
		return fmt.Sprintf("%s:%d", a.host, a.port)
	}
	return a.host
}

// String returns the scheme and authority ready for path concatenation,
// ie "https://host.com:1234".
func (a Authority) String() string {
	return a.scheme + "://" + a.HostPort()
}

// DefaultPort returns the conventional port for a scheme, or 0 if unknown.
func DefaultPort(scheme string) uint16 {
	switch scheme {
	case "http":
		return 80
	case "https":
		return 443
	}
	return 0
}
