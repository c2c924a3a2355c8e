package fetcher

import (
	"context"
	"fmt"
	"net"
	"net/url"
)

// ipResolver resolves a hostname to its addresses.
type ipResolver func(ctx context.Context, host string) ([]net.IP, error)

func defaultResolver(ctx context.Context, host string) ([]net.IP, error) {
	addrs, err := net.DefaultResolver.LookupIPAddr(ctx, host)
	if err != nil {
		return nil, err
	}
	ips := make([]net.IP, len(addrs))
	for i, a := range addrs {
		ips[i] = a.IP
	}
	return ips, nil
}

// maxURLLength bounds the URLs accepted for fetching.
const maxURLLength = 2048

// checkURLShape parses rawURL and requires an http or https scheme and a host.
func checkURLShape(rawURL string) (*url.URL, error) {
	switch {
	case rawURL == "":
		return nil, fmt.Errorf("%w: url is empty", ErrInvalidURL)
	case len(rawURL) > maxURLLength:
		return nil, fmt.Errorf("%w: url longer than %d bytes", ErrInvalidURL, maxURLLength)
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: scheme %q", ErrInvalidURL, u.Scheme)
	}
	if u.Hostname() == "" {
		return nil, fmt.Errorf("%w: missing host", ErrInvalidURL)
	}
	return u, nil
}

// validateURL checks scheme and host, and with denyPrivateIPs set rejects
// hosts that resolve to a non-public address.
func validateURL(ctx context.Context, urlStr string, denyPrivateIPs bool, resolve ipResolver) error {
	u, err := checkURLShape(urlStr)
	if err != nil {
		return err
	}
	if !denyPrivateIPs {
		return nil
	}

	hostname := u.Hostname()
	if ip := net.ParseIP(hostname); ip != nil {
		if isPrivateIP(ip) {
			return fmt.Errorf("%w: %s", ErrPrivateIP, ip)
		}
		return nil
	}

	ips, err := resolve(ctx, hostname)
	if err != nil {
		return fmt.Errorf("%w: DNS lookup failed for %s: %v", ErrInvalidURL, hostname, err)
	}
	for _, ip := range ips {
		if isPrivateIP(ip) {
			return fmt.Errorf("%w: hostname '%s' resolves to private IP %s", ErrPrivateIP, hostname, ip)
		}
	}
	return nil
}

// isPrivateIP reports loopback, RFC 1918 / RFC 4193 private, link-local and
// unspecified addresses.
func isPrivateIP(ip net.IP) bool {
	return ip.IsLoopback() ||
		ip.IsPrivate() ||
		ip.IsLinkLocalUnicast() ||
		ip.IsLinkLocalMulticast() ||
		ip.IsUnspecified()
}
