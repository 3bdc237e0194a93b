package s3sign

import (
	"fmt"
	"net"
	"net/url"
	"strconv"

	"github.com/s3sign/s3sign/utils"
)

// noRegionSegment is the one region whose default host omits the region segment.
const noRegionSegment = "us-east-1"

// resolveAddress turns (bucket, region, host override, endpoint override) into a
// concrete authority and path prefix. Precedence: host, then endpoint, then the
// default amazonaws.com host for the region.
//
// An endpoint whose host is a literal IPv4 address gets path-style addressing
// (bucket as the first path segment); any other endpoint gets virtual-hosted
// addressing (bucket as a host subdomain).
func resolveAddress(bucket, region, host, endpoint string) (utils.Authority, string, error) {
	if host != "" {
		return utils.NewAuthority("https", host, 0), "", nil
	}

	if endpoint != "" {
		u, err := url.Parse(endpoint)
		if err != nil || u.Scheme == "" || u.Hostname() == "" {
			if err == nil {
				err = fmt.Errorf("missing scheme or host in %q", endpoint)
			}
			return utils.Authority{}, "", fmt.Errorf("%w: %v", ErrBadEndpoint, err)
		}

		var port uint16
		if p := u.Port(); p != "" {
			val, err := strconv.ParseUint(p, 10, 16)
			if err != nil {
				return utils.Authority{}, "", fmt.Errorf("%w: %v", ErrBadEndpoint, err)
			}
			port = uint16(val)
		}

		if ip := net.ParseIP(u.Hostname()); ip != nil && ip.To4() != nil {
			// path-style: bucket is not merged into an IP host
			return utils.NewAuthority(u.Scheme, u.Hostname(), port), "/" + bucket, nil
		}
		return utils.NewAuthority(u.Scheme, bucket+"."+u.Hostname(), port), "", nil
	}

	if region == noRegionSegment {
		return utils.NewAuthority("https", bucket+".s3.amazonaws.com", 0), "", nil
	}
	return utils.NewAuthority("https", fmt.Sprintf("%s.s3.%s.amazonaws.com", bucket, region), 0), "", nil
}
