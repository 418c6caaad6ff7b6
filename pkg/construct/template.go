/*
File: template.go
Description: Command template formatting for the netglass query construction
engine. A Template is a vendor command string with named placeholders {target},
{source}, {vrf}, {afi}; Format substitutes them and Parse reverses a formatted
command back into its arguments, which keeps formatting verifiably injective
for well-formed templates.
*/

package construct

import (
	"fmt"
	"regexp"
	"strings"
)

// Template is one vendor command template from the device catalog
type Template string

// Args holds the substitution values for a template's placeholders
type Args struct {
	Target string
	Source string
	VRF    string
	AFI    string
}

// placeholderNames in the order capture groups are emitted by pattern()
var placeholderNames = []string{"target", "source", "vrf", "afi"}

// Format substitutes the named placeholders with the argument values.
// Placeholders absent from the template are simply not used; unknown
// placeholders never reach this point because the catalog is validated at
// load time.
func (t Template) Format(a Args) string {
	r := strings.NewReplacer(
		"{target}", a.Target,
		"{source}", a.Source,
		"{vrf}", a.VRF,
		"{afi}", a.AFI,
	)
	return r.Replace(string(t))
}

// Parse recovers the argument values from a command previously produced by
// Format. Placeholders the template does not contain come back empty. An
// error means the command was not produced from this template.
func (t Template) Parse(cmd string) (Args, error) {
	re, order, err := t.pattern()
	if err != nil {
		return Args{}, err
	}

	match := re.FindStringSubmatch(cmd)
	if match == nil {
		return Args{}, fmt.Errorf("command %q does not match template %q", cmd, string(t))
	}

	var a Args
	for i, name := range order {
		val := match[i+1]
		switch name {
		case "target":
			a.Target = val
		case "source":
			a.Source = val
		case "vrf":
			a.VRF = val
		case "afi":
			a.AFI = val
		}
	}
	return a, nil
}

// pattern compiles the template into a regular expression with one capture
// group per placeholder occurrence, returning the placeholder order.
func (t Template) pattern() (*regexp.Regexp, []string, error) {
	var (
		expr  strings.Builder
		order []string
		rest  = string(t)
	)
	expr.WriteString("^")

	for len(rest) > 0 {
		idx := strings.IndexByte(rest, '{')
		if idx < 0 {
			expr.WriteString(regexp.QuoteMeta(rest))
			break
		}
		expr.WriteString(regexp.QuoteMeta(rest[:idx]))
		rest = rest[idx:]

		end := strings.IndexByte(rest, '}')
		if end < 0 {
			expr.WriteString(regexp.QuoteMeta(rest))
			break
		}
		name := rest[1:end]
		if isPlaceholder(name) {
			// Non-greedy group keeps adjacent placeholders separable
			expr.WriteString("(.+?)")
			order = append(order, name)
		} else {
			expr.WriteString(regexp.QuoteMeta(rest[:end+1]))
		}
		rest = rest[end+1:]
	}
	expr.WriteString("$")

	re, err := regexp.Compile(expr.String())
	if err != nil {
		return nil, nil, fmt.Errorf("template %q does not compile to a pattern: %w", string(t), err)
	}
	return re, order, nil
}

func isPlaceholder(name string) bool {
	for _, p := range placeholderNames {
		if p == name {
			return true
		}
	}
	return false
}
