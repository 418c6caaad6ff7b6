/*
File: interfaces.go
Description: Shared types for the netglass query construction engine. Defines the
validated request record, query kind and transport enumerations, and the builder
interface used across all packages to break import cycles and enable proper
modular design.
*/

package interfaces

// QueryType identifies a supported looking glass query kind
type QueryType string

const (
	QueryPing         QueryType = "ping"
	QueryTraceroute   QueryType = "traceroute"
	QueryBGPRoute     QueryType = "bgp_route"
	QueryBGPCommunity QueryType = "bgp_community"
	QueryBGPASPath    QueryType = "bgp_aspath"
)

// QueryTypes lists every query kind the engine can construct
func QueryTypes() []QueryType {
	return []QueryType{
		QueryPing,
		QueryTraceroute,
		QueryBGPRoute,
		QueryBGPCommunity,
		QueryBGPASPath,
	}
}

// Transport identifies the execution channel a constructed query targets.
// Scrape queries run over an interactive device session; REST queries are
// posted to a device API. The engine only constructs the artifact, it never
// opens either channel itself.
type Transport string

const (
	TransportScrape Transport = "scrape"
	TransportRest   Transport = "rest"
)

// Request is a single validated query request. Target syntax and permission
// checks happen upstream; by the time a Request reaches the engine it is
// assumed to have passed validation. Requests are never mutated.
type Request struct {
	// QueryTarget is the IP address or prefix the query runs against
	QueryTarget string

	// QueryVRF names the routing context. "default" (or empty) selects the
	// global routing table.
	QueryVRF string

	// QueryType selects the query kind
	QueryType QueryType

	// Transport selects the execution channel
	Transport Transport
}

// Query is the constructed artifact: an ordered sequence of command strings
// for the scrape transport, or a single-element sequence holding a JSON
// payload for the rest transport. Multi-command sequences are reserved for
// query kinds that need a priming command before the real one.
type Query []string

// Builder constructs the executable artifact for one validated request
// against one device. Implementations must be safe for concurrent use over
// an immutable catalog.
type Builder interface {
	Build(req *Request) (Query, error)
}
