/*
File: template_test.go
Description: Tests for command template formatting. Covers placeholder
substitution, the format/parse round-trip that keeps formatting injective for
well-formed templates, and rejection of commands that were not produced from
the template.
*/

package construct

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTemplateFormat covers basic substitution across placeholder subsets
func TestTemplateFormat(t *testing.T) {
	args := Args{
		Target: "192.0.2.1",
		Source: "203.0.113.1",
		VRF:    "customer-a",
		AFI:    "vpnv4",
	}

	cases := []struct {
		template Template
		expected string
	}{
		{"ping {target} source {source}", "ping 192.0.2.1 source 203.0.113.1"},
		{"ping vrf {vrf} {target} source {source}", "ping vrf customer-a 192.0.2.1 source 203.0.113.1"},
		{"show bgp {afi} unicast {target}", "show bgp vpnv4 unicast 192.0.2.1"},
		{"show ip route {target}", "show ip route 192.0.2.1"},
		{"show version", "show version"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, tc.template.Format(args), "template %q", tc.template)
	}
}

// TestTemplateRoundTrip verifies that parsing a formatted command yields
// back the arguments that produced it.
func TestTemplateRoundTrip(t *testing.T) {
	templates := []Template{
		"ping {target} source {source}",
		"ping vrf {vrf} {target} source {source}",
		"traceroute ipv6 {target} source {source}",
		"show bgp {afi} unicast vrf {vrf} {target}",
		"show bgp ipv4 unicast quote-regexp {target}",
	}

	args := Args{
		Target: "2001:db8::100",
		Source: "2001:db8::1",
		VRF:    "customer-a",
		AFI:    "ipv6",
	}

	for _, tmpl := range templates {
		cmd := tmpl.Format(args)
		parsed, err := tmpl.Parse(cmd)
		require.NoError(t, err, "template %q", tmpl)

		// Placeholders absent from the template parse back empty
		expected := Args{}
		if strings.Contains(string(tmpl), "{target}") {
			expected.Target = args.Target
		}
		if strings.Contains(string(tmpl), "{source}") {
			expected.Source = args.Source
		}
		if strings.Contains(string(tmpl), "{vrf}") {
			expected.VRF = args.VRF
		}
		if strings.Contains(string(tmpl), "{afi}") {
			expected.AFI = args.AFI
		}
		assert.Equal(t, expected, parsed, "template %q", tmpl)
	}
}

// TestTemplateParseMismatch verifies rejection of commands not produced from
// the template.
func TestTemplateParseMismatch(t *testing.T) {
	tmpl := Template("ping {target} source {source}")

	_, err := tmpl.Parse("traceroute 192.0.2.1")
	require.Error(t, err)

	_, err = tmpl.Parse("")
	require.Error(t, err)
}

// TestTemplateUnknownPlaceholderLiteral verifies that tokens outside the
// known placeholder set pass through formatting verbatim; load-time catalog
// validation is what rejects them.
func TestTemplateUnknownPlaceholderLiteral(t *testing.T) {
	tmpl := Template("ping {destination} source {source}")
	out := tmpl.Format(Args{Source: "203.0.113.1"})
	assert.Equal(t, "ping {destination} source 203.0.113.1", out)
}
