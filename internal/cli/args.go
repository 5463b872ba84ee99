package cli

import "strings"

// SplitArgs separates raw command-line arguments into positional command
// tokens and named options.
//
// An argument of the form --key=value, or --key followed by a non-option
// argument, becomes a named option; a bare --key at the end (or followed by
// another option) is recorded with the value "true". A lone "--" ends option
// parsing: everything after it is positional. All other arguments are
// positional tokens in their original order.
func SplitArgs(raw []string) ([]string, map[string]string) {
	tokens := make([]string, 0, len(raw))
	named := make(map[string]string)

	optionsDone := false
	for i := 0; i < len(raw); i++ {
		arg := raw[i]
		if optionsDone {
			tokens = append(tokens, arg)
			continue
		}
		if arg == "--" {
			optionsDone = true
			continue
		}
		if !strings.HasPrefix(arg, "--") {
			tokens = append(tokens, arg)
			continue
		}

		body := strings.TrimPrefix(arg, "--")
		if eq := strings.IndexByte(body, '='); eq >= 0 {
			named[body[:eq]] = body[eq+1:]
			continue
		}
		if i+1 < len(raw) && !strings.HasPrefix(raw[i+1], "--") {
			named[body] = raw[i+1]
			i++
			continue
		}
		named[body] = "true"
	}

	return tokens, named
}
