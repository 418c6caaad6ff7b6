/*
File: construct.go
Description: The netglass query constructor. Takes a validated request plus one
device's VRF tables and command catalog, and produces the exact artifact to run
the query: an ordered list of CLI command strings for the scrape transport or a
JSON payload for the rest transport. Stateless per request and safe for
concurrent use over an immutable configuration; it never executes anything and
never touches the network.
*/

package construct

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/netglass/netglass/pkg/config"
	"github.com/netglass/netglass/pkg/interfaces"
)

// Constructor builds executable query artifacts for one device. It holds
// immutable references only; every method is a pure computation plus
// diagnostic logging.
type Constructor struct {
	device  *config.Device
	catalog config.Catalog
	log     logrus.FieldLogger
}

var _ interfaces.Builder = (*Constructor)(nil)

// New creates a constructor for the given device and catalog. A nil logger
// falls back to the standard logrus logger.
func New(device *config.Device, catalog config.Catalog, log logrus.FieldLogger) *Constructor {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Constructor{
		device:  device,
		catalog: catalog,
		log:     log,
	}
}

// restPayload is the fixed-shape REST artifact. Field order is stable so
// identical requests produce byte-identical payloads.
type restPayload struct {
	QueryType string `json:"query_type"`
	AFI       string `json:"afi"`
	VRF       string `json:"vrf"`
	Source    string `json:"source"`
	Target    string `json:"target"`
}

// Build dispatches on the request's query kind and returns the constructed
// artifact. All failures are typed and carry the offending field values.
func (c *Constructor) Build(req *interfaces.Request) (interfaces.Query, error) {
	entry := c.log.WithFields(logrus.Fields{
		"request_id": uuid.New().String(),
		"device":     c.device.Name,
		"target":     req.QueryTarget,
		"vrf":        req.QueryVRF,
		"query_type": req.QueryType,
		"transport":  req.Transport,
	})
	entry.Debug("Constructing query")

	var (
		query interfaces.Query
		err   error
	)
	switch req.QueryType {
	case interfaces.QueryPing, interfaces.QueryTraceroute, interfaces.QueryBGPRoute, interfaces.QueryBGPCommunity:
		query, err = c.buildStandard(req)
	case interfaces.QueryBGPASPath:
		query, err = c.buildASPath(req)
	default:
		err = &UnsupportedQueryTypeError{QueryType: req.QueryType}
	}

	if err != nil {
		entry.WithError(err).Debug("Query construction failed")
		return nil, err
	}

	entry.WithField("query", []string(query)).Debug("Constructed query")
	return query, nil
}

// buildStandard is the common two-branch builder shared by ping, traceroute,
// bgp_route, and bgp_community. The command template is looked up under the
// VRF-derived cmd_type.
func (c *Constructor) buildStandard(req *interfaces.Request) (interfaces.Query, error) {
	protocol, err := resolveProtocol(req.QueryTarget)
	if err != nil {
		return nil, err
	}
	cmdType, err := resolveCmdType(req.QueryTarget, req.QueryVRF)
	if err != nil {
		return nil, err
	}
	afi, err := c.resolveAFI(req.QueryVRF, protocol)
	if err != nil {
		return nil, err
	}

	switch req.Transport {
	case interfaces.TransportRest:
		payload, err := encodePayload(req.QueryType, afi, req.QueryTarget)
		if err != nil {
			return nil, err
		}
		return interfaces.Query{payload}, nil

	case interfaces.TransportScrape:
		tmpl, err := c.lookupTemplate(cmdType, req.QueryType)
		if err != nil {
			return nil, err
		}
		cmd := tmpl.Format(Args{
			Target: req.QueryTarget,
			Source: afi.SourceAddress,
			VRF:    afi.VRFName,
			AFI:    afi.AFIName,
		})
		return interfaces.Query{cmd}, nil

	default:
		return nil, &UnsupportedTransportError{Transport: req.Transport, QueryType: req.QueryType}
	}
}

// buildASPath is the alternate resolution path for bgp_aspath: the catalog's
// second-level key is the AFI label itself ("ipv4"/"ipv6") rather than the
// VRF-derived cmd_type. AS-path commands are keyed this way because the same
// command syntax serves both the global table and VRFs. Kept as a distinct
// branch, not unified with buildStandard.
func (c *Constructor) buildASPath(req *interfaces.Request) (interfaces.Query, error) {
	protocol, err := resolveProtocol(req.QueryTarget)
	if err != nil {
		return nil, err
	}
	afi, err := c.resolveAFI(req.QueryVRF, protocol)
	if err != nil {
		return nil, err
	}

	switch req.Transport {
	case interfaces.TransportRest:
		payload, err := encodePayload(req.QueryType, afi, req.QueryTarget)
		if err != nil {
			return nil, err
		}
		return interfaces.Query{payload}, nil

	case interfaces.TransportScrape:
		tmpl, err := c.lookupTemplate(protocol, req.QueryType)
		if err != nil {
			return nil, err
		}
		cmd := tmpl.Format(Args{
			Target: req.QueryTarget,
			Source: afi.SourceAddress,
			VRF:    afi.VRFName,
			AFI:    afi.AFIName,
		})
		return interfaces.Query{cmd}, nil

	default:
		return nil, &UnsupportedTransportError{Transport: req.Transport, QueryType: req.QueryType}
	}
}

// resolveAFI fetches the VRF record for the request's routing context, then
// the address-family sub-record for the resolved protocol.
func (c *Constructor) resolveAFI(vrfName, protocol string) (config.AFI, error) {
	vrfName = normalizeVRF(vrfName)

	vrf, ok := c.device.VRFs[vrfName]
	if !ok {
		return config.AFI{}, &UnknownVRFError{Device: c.device.Name, VRF: vrfName}
	}

	afi, ok := vrf[protocol]
	if !ok {
		return config.AFI{}, &UnsupportedAddressFamilyError{Device: c.device.Name, VRF: vrfName, Protocol: protocol}
	}
	return afi, nil
}

// lookupTemplate resolves the command template at the exact
// (platform, cmdType, queryType) catalog path. A missing path is a
// configuration gap that must surface to the operator; there is no fallback.
func (c *Constructor) lookupTemplate(cmdType string, queryType interfaces.QueryType) (Template, error) {
	tmpl, ok := c.catalog.Lookup(c.device.Platform, cmdType, string(queryType))
	if !ok {
		return "", &UnsupportedQueryError{
			Platform:  c.device.Platform,
			CmdType:   cmdType,
			QueryType: queryType,
		}
	}
	return Template(tmpl), nil
}

// encodePayload marshals the fixed-key REST object
func encodePayload(queryType interfaces.QueryType, afi config.AFI, target string) (string, error) {
	data, err := json.Marshal(restPayload{
		QueryType: string(queryType),
		AFI:       afi.AFIName,
		VRF:       afi.VRFName,
		Source:    afi.SourceAddress,
		Target:    target,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode rest payload: %w", err)
	}
	return string(data), nil
}
