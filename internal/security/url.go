package security

import (
	"errors"
	"fmt"
	"net"
	"net/url"
)

// Hosts that are never acceptable as an embedded surface destination.
// Exact string match only.
var blockedHosts = map[string]bool{
	"localhost": true,
	"127.0.0.1": true,
	"0.0.0.0":   true,
	"::1":       true,
}

// RFC 1918 ranges. The check is IPv4-only on purpose, see the package doc.
var privateNets = []*net.IPNet{
	mustCIDR("10.0.0.0/8"),
	mustCIDR("172.16.0.0/12"),
	mustCIDR("192.168.0.0/16"),
}

func mustCIDR(cidr string) *net.IPNet {
	_, n, err := net.ParseCIDR(cidr)
	if err != nil {
		panic(err)
	}
	return n
}

// ValidateExternalURL decides whether a parsed destination may be loaded
// into an embedded surface. It must run before every surface creation and
// every navigation. It has no side effects.
func ValidateExternalURL(u *url.URL) error {
	if u == nil {
		return errors.New("missing url")
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("blocked scheme: %s", u.Scheme)
	}

	host := u.Hostname()
	if blockedHosts[host] {
		return fmt.Errorf("blocked host: %s", host)
	}

	if ip := net.ParseIP(host); ip != nil {
		if v4 := ip.To4(); v4 != nil {
			for _, n := range privateNets {
				if n.Contains(v4) {
					return fmt.Errorf("blocked private IP: %s", host)
				}
			}
		}
	}

	return nil
}
