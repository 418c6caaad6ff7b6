/*
File: errors.go
Description: Typed failure modes for the netglass query construction engine.
Every error carries the offending field values so the execution layer can log
actionable diagnostics. Errors are terminal for the request: never retried,
never swallowed, never defaulted.
*/

package construct

import (
	"fmt"

	"github.com/netglass/netglass/pkg/interfaces"
)

// InvalidTargetError reports a query target that is not a parseable IP
// address or prefix. Raised before any catalog access.
type InvalidTargetError struct {
	Target string
}

func (e *InvalidTargetError) Error() string {
	return fmt.Sprintf("query target %q is not a valid IP address or prefix", e.Target)
}

// UnknownVRFError reports a requested VRF name absent on the device
type UnknownVRFError struct {
	Device string
	VRF    string
}

func (e *UnknownVRFError) Error() string {
	return fmt.Sprintf("vrf %q is not configured on device %q", e.VRF, e.Device)
}

// UnsupportedAddressFamilyError reports a VRF that has no record for the
// target's IP version.
type UnsupportedAddressFamilyError struct {
	Device   string
	VRF      string
	Protocol string
}

func (e *UnsupportedAddressFamilyError) Error() string {
	return fmt.Sprintf("vrf %q on device %q does not support %s", e.VRF, e.Device, e.Protocol)
}

// UnsupportedQueryError reports a missing command template. The full
// (platform, cmd_type, query_type) path is included because a missing entry
// is a catalog gap the operator must fix; the engine never falls back to a
// default command.
type UnsupportedQueryError struct {
	Platform  string
	CmdType   string
	QueryType interfaces.QueryType
}

func (e *UnsupportedQueryError) Error() string {
	return fmt.Sprintf("no command template at %s.%s.%s", e.Platform, e.CmdType, e.QueryType)
}

// UnsupportedQueryTypeError reports a query kind the engine does not know
type UnsupportedQueryTypeError struct {
	QueryType interfaces.QueryType
}

func (e *UnsupportedQueryTypeError) Error() string {
	return fmt.Sprintf("unsupported query type %q", e.QueryType)
}

// UnsupportedTransportError reports a transport outside {scrape, rest}
type UnsupportedTransportError struct {
	Transport interfaces.Transport
	QueryType interfaces.QueryType
}

func (e *UnsupportedTransportError) Error() string {
	return fmt.Sprintf("unsupported transport %q for query type %q", e.Transport, e.QueryType)
}
