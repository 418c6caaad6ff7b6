/*
File: resolver_test.go
Description: Tests for address-family and command-type resolution. Covers the
cmd_type prefix/suffix laws over IP version and VRF name, prefix targets, and
malformed target rejection.
*/

package construct

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestResolveCmdType covers the cmd_type law: prefix follows the target's IP
// version, suffix follows the routing context.
func TestResolveCmdType(t *testing.T) {
	cases := []struct {
		name     string
		target   string
		vrf      string
		expected string
	}{
		{"ipv4 default", "192.0.2.1", "default", "ipv4_default"},
		{"ipv4 empty vrf", "192.0.2.1", "", "ipv4_default"},
		{"ipv4 named vrf", "192.0.2.1", "customer-a", "ipv4_vrf"},
		{"ipv4 prefix", "10.0.0.0/8", "default", "ipv4_default"},
		{"ipv4 prefix vrf", "10.0.0.0/8", "customer-a", "ipv4_vrf"},
		{"ipv6 default", "2001:db8::1", "default", "ipv6_default"},
		{"ipv6 empty vrf", "2001:db8::1", "", "ipv6_default"},
		{"ipv6 named vrf", "2001:db8::1", "customer-a", "ipv6_vrf"},
		{"ipv6 prefix", "2001:db8::/32", "default", "ipv6_default"},
		{"ipv6 prefix vrf", "2001:db8::/32", "transit", "ipv6_vrf"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmdType, err := resolveCmdType(tc.target, tc.vrf)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, cmdType)
		})
	}
}

// TestResolveProtocol covers the address-family label derivation
func TestResolveProtocol(t *testing.T) {
	cases := []struct {
		target   string
		expected string
	}{
		{"192.0.2.1", "ipv4"},
		{"10.0.0.0/8", "ipv4"},
		{"2001:db8::1", "ipv6"},
		{"2001:db8::/32", "ipv6"},
		{"::1", "ipv6"},
	}

	for _, tc := range cases {
		protocol, err := resolveProtocol(tc.target)
		require.NoError(t, err, "target %s", tc.target)
		assert.Equal(t, tc.expected, protocol, "target %s", tc.target)
	}
}

// TestResolveInvalidTargets verifies that unparseable targets fail with the
// typed error carrying the offending string. Prefixes with host bits set
// name a host, not a network, and are rejected the same way.
func TestResolveInvalidTargets(t *testing.T) {
	for _, target := range []string{"not-an-ip", "", "192.0.2.", "2001:db8::/129", "example.com", "14525:5001", "192.0.2.1/24", "2001:db8::1/32"} {
		_, err := resolveProtocol(target)
		require.Error(t, err, "target %q", target)

		var ite *InvalidTargetError
		require.True(t, errors.As(err, &ite), "target %q", target)
		assert.Equal(t, target, ite.Target)

		_, err = resolveCmdType(target, "default")
		require.Error(t, err, "target %q", target)
	}
}

// TestNormalizeVRF verifies the empty-name mapping onto the global table
func TestNormalizeVRF(t *testing.T) {
	assert.Equal(t, "default", normalizeVRF(""))
	assert.Equal(t, "default", normalizeVRF("default"))
	assert.Equal(t, "customer-a", normalizeVRF("customer-a"))
}
