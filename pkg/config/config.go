/*
File: config.go
Description: Device, VRF, and command catalog configuration for netglass. Holds
the read-only lookup structures the query construction engine resolves against:
per-device VRF/address-family tables and the nested per-platform command template
catalog. Provides eager validation so catalog gaps surface at load time rather
than at request time.
*/

package config

import (
	"errors"
	"fmt"
	"net/netip"
	"regexp"
	"sort"
)

// Address family keys used throughout the VRF tables and catalog.
const (
	ProtocolIPv4 = "ipv4"
	ProtocolIPv6 = "ipv6"
)

// DefaultVRF names the global routing table context
const DefaultVRF = "default"

// placeholderPattern matches the named placeholders a command template may use
var placeholderPattern = regexp.MustCompile(`\{([a-z_]+)\}`)

// knownPlaceholders are the only substitutions the engine performs
var knownPlaceholders = map[string]bool{
	"target": true,
	"source": true,
	"vrf":    true,
	"afi":    true,
}

// commonQueryKinds are the query kinds the engine looks up under a
// VRF-derived cmd_type. bgp_aspath is keyed by the AFI label instead.
var commonQueryKinds = []string{"ping", "traceroute", "bgp_route", "bgp_community"}

const aspathQueryKind = "bgp_aspath"

// AFI is one address-family record inside a VRF: the display names and the
// source address used when formatting commands or REST payloads. Exactly one
// AFI record exists per (VRF, IP version) pair on a device.
type AFI struct {
	AFIName       string `mapstructure:"afi_name" yaml:"afi_name" json:"afi_name"`
	VRFName       string `mapstructure:"vrf_name" yaml:"vrf_name" json:"vrf_name"`
	SourceAddress string `mapstructure:"source_address" yaml:"source_address" json:"source_address"`
}

// VRF is a named routing context, keyed by address family ("ipv4"/"ipv6").
// A VRF that omits one family simply does not support queries in that family.
type VRF map[string]AFI

// Device identifies a network element: its display name, the platform whose
// command set it speaks, and its VRF table.
type Device struct {
	Name     string         `mapstructure:"name" yaml:"name" json:"name"`
	Platform string         `mapstructure:"platform" yaml:"platform" json:"platform"`
	VRFs     map[string]VRF `mapstructure:"vrfs" yaml:"vrfs" json:"vrfs"`
}

// Catalog maps platform -> cmd_type -> query_type -> command template.
// Templates use the named placeholders {target}, {source}, {vrf}, {afi}.
// For bgp_aspath the second-level key is the AFI label ("ipv4"/"ipv6")
// instead of a VRF-derived cmd_type.
type Catalog map[string]map[string]map[string]string

// Lookup returns the template at the exact (platform, cmdType, queryType)
// path. The boolean is false when any level of the path is absent; callers
// decide how to surface that.
func (c Catalog) Lookup(platform, cmdType, queryType string) (string, bool) {
	byCmdType, ok := c[platform]
	if !ok {
		return "", false
	}
	byQueryType, ok := byCmdType[cmdType]
	if !ok {
		return "", false
	}
	tmpl, ok := byQueryType[queryType]
	return tmpl, ok
}

// Config is the full read-only configuration the engine resolves against.
// Once loaded and validated it is never mutated; concurrent construction
// calls share one Config without coordination.
type Config struct {
	Devices  map[string]Device `mapstructure:"devices" yaml:"devices" json:"devices"`
	Commands Catalog           `mapstructure:"commands" yaml:"commands" json:"commands"`
}

// Device returns the named device record
func (c *Config) Device(name string) (*Device, bool) {
	dev, ok := c.Devices[name]
	if !ok {
		return nil, false
	}
	return &dev, true
}

// Validate runs every eager check and returns the problems joined into a
// single error, or nil when the configuration is sound.
func (c *Config) Validate() error {
	return errors.Join(c.Problems()...)
}

// Problems runs the eager load-time checks and returns every defect found,
// so operator tooling can report all gaps in one pass instead of failing on
// the first.
func (c *Config) Problems() []error {
	var problems []error

	for name, dev := range c.Devices {
		if dev.Platform == "" {
			problems = append(problems, fmt.Errorf("device %q: platform is empty", name))
			continue
		}
		if _, ok := c.Commands[dev.Platform]; !ok {
			problems = append(problems, fmt.Errorf("device %q: platform %q has no command catalog entry", name, dev.Platform))
		} else {
			problems = append(problems, c.missingTemplates(name, dev)...)
		}
		if len(dev.VRFs) == 0 {
			problems = append(problems, fmt.Errorf("device %q: no VRFs configured", name))
		}
		for vrfName, vrf := range dev.VRFs {
			if len(vrf) == 0 {
				problems = append(problems, fmt.Errorf("device %q vrf %q: no address families configured", name, vrfName))
			}
			for proto, afi := range vrf {
				if proto != ProtocolIPv4 && proto != ProtocolIPv6 {
					problems = append(problems, fmt.Errorf("device %q vrf %q: unknown address family key %q", name, vrfName, proto))
					continue
				}
				if _, err := netip.ParseAddr(afi.SourceAddress); err != nil {
					problems = append(problems, fmt.Errorf("device %q vrf %q %s: source address %q does not parse: %w",
						name, vrfName, proto, afi.SourceAddress, err))
				}
				if afi.AFIName == "" {
					problems = append(problems, fmt.Errorf("device %q vrf %q %s: afi_name is empty", name, vrfName, proto))
				}
			}
		}
	}

	for platform, byCmdType := range c.Commands {
		for cmdType, byQueryType := range byCmdType {
			for queryType, tmpl := range byQueryType {
				if err := validateTemplate(tmpl); err != nil {
					problems = append(problems, fmt.Errorf("catalog %s.%s.%s: %w", platform, cmdType, queryType, err))
				}
			}
		}
	}

	return problems
}

// missingTemplates enumerates every catalog path the engine can request for
// one device and reports the absent ones. The reachable set is static: each
// VRF contributes "ipv{v}_default" or "ipv{v}_vrf" cmd_types for its present
// address families, crossed with the common query kinds, plus the AFI-keyed
// bgp_aspath entries. Requests can only ever fail on paths outside this set
// when the target's family is unsupported, which is a per-request error, not
// a catalog gap.
func (c *Config) missingTemplates(name string, dev Device) []error {
	cmdTypes := make(map[string]bool)
	afiLabels := make(map[string]bool)

	for vrfName, vrf := range dev.VRFs {
		suffix := "vrf"
		if vrfName == DefaultVRF {
			suffix = "default"
		}
		for proto := range vrf {
			if proto != ProtocolIPv4 && proto != ProtocolIPv6 {
				continue // reported as an unknown family key
			}
			cmdTypes[proto+"_"+suffix] = true
			afiLabels[proto] = true
		}
	}

	var problems []error
	for _, cmdType := range sortedKeys(cmdTypes) {
		for _, kind := range commonQueryKinds {
			if _, ok := c.Commands.Lookup(dev.Platform, cmdType, kind); !ok {
				problems = append(problems, fmt.Errorf("device %q: no command template at %s.%s.%s",
					name, dev.Platform, cmdType, kind))
			}
		}
	}
	for _, label := range sortedKeys(afiLabels) {
		if _, ok := c.Commands.Lookup(dev.Platform, label, aspathQueryKind); !ok {
			problems = append(problems, fmt.Errorf("device %q: no command template at %s.%s.%s",
				name, dev.Platform, label, aspathQueryKind))
		}
	}
	return problems
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// validateTemplate rejects templates that reference placeholders the engine
// will never substitute. A stale {dest} or misspelled {taget} would otherwise
// pass through formatting verbatim and reach a live device session.
func validateTemplate(tmpl string) error {
	for _, match := range placeholderPattern.FindAllStringSubmatch(tmpl, -1) {
		if !knownPlaceholders[match[1]] {
			return fmt.Errorf("unknown placeholder {%s}", match[1])
		}
	}
	return nil
}
