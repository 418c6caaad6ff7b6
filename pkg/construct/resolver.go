/*
File: resolver.go
Description: Address-family and command-type resolution for the netglass query
construction engine. Determines the IP protocol of the query target, derives
the VRF-aware catalog key, and resolves the per-VRF address-family record a
builder formats with. Resolution is pure and deterministic: the same request
always resolves to the same values.
*/

package construct

import (
	"fmt"
	"net/netip"
	"strings"

	"github.com/netglass/netglass/pkg/config"
)

// resolveProtocol parses the query target as an IP address or prefix and
// returns the address-family label ("ipv4"/"ipv6"). This runs before any
// catalog access; an unparseable target fails here.
func resolveProtocol(target string) (string, error) {
	version, err := ipVersion(target)
	if err != nil {
		return "", &InvalidTargetError{Target: target}
	}
	return fmt.Sprintf("ipv%d", version), nil
}

// resolveCmdType derives the catalog's second-level key from the target's IP
// version and the routing context: "ipv{v}_vrf" for a named VRF,
// "ipv{v}_default" for the global table. VRF-aware commands are often
// syntactically different from global-table commands, so the two sub-trees
// stay distinct.
func resolveCmdType(target, vrf string) (string, error) {
	version, err := ipVersion(target)
	if err != nil {
		return "", &InvalidTargetError{Target: target}
	}
	if vrf != "" && vrf != config.DefaultVRF {
		return fmt.Sprintf("ipv%d_vrf", version), nil
	}
	return fmt.Sprintf("ipv%d_default", version), nil
}

// ipVersion returns 4 or 6 for an IP address or CIDR prefix string
func ipVersion(target string) (int, error) {
	if strings.Contains(target, "/") {
		prefix, err := netip.ParsePrefix(target)
		if err != nil {
			return 0, err
		}
		// Strict network parsing: host bits set means the string names a
		// host, not a network, and must be written as a bare address.
		if prefix.Masked() != prefix {
			return 0, fmt.Errorf("prefix %q has host bits set", target)
		}
		if prefix.Addr().Is4() {
			return 4, nil
		}
		return 6, nil
	}

	addr, err := netip.ParseAddr(target)
	if err != nil {
		return 0, err
	}
	if addr.Is4() {
		return 4, nil
	}
	return 6, nil
}

// normalizeVRF maps an empty VRF name onto the global routing table
func normalizeVRF(vrf string) string {
	if vrf == "" {
		return config.DefaultVRF
	}
	return vrf
}
