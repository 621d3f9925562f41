package command

import (
	"fmt"
	"strings"
	"unicode"
)

// Parsed is a command string split into its parts
type Parsed struct {
	Verb   string
	Target string
	Args   []string
}

// Parse splits a command string into fields. Double quotes group a field
// containing spaces.
func Parse(cmd string) (Parsed, error) {
	fields, err := splitFields(cmd)
	if err != nil {
		return Parsed{}, err
	}
	if len(fields) == 0 {
		return Parsed{}, fmt.Errorf("empty command")
	}
	if fields[0] != ShellExec {
		return Parsed{}, fmt.Errorf("unsupported command: %s", fields[0])
	}
	if len(fields) < 2 {
		return Parsed{}, fmt.Errorf("%s needs a target", ShellExec)
	}
	return Parsed{Verb: fields[0], Target: fields[1], Args: fields[2:]}, nil
}

func splitFields(s string) ([]string, error) {
	var (
		fields  []string
		current strings.Builder
		inQuote bool
		hasData bool
	)
	for _, r := range s {
		switch {
		case r == '"':
			inQuote = !inQuote
			hasData = true
		case unicode.IsSpace(r) && !inQuote:
			if hasData {
				fields = append(fields, current.String())
				current.Reset()
				hasData = false
			}
		default:
			current.WriteRune(r)
			hasData = true
		}
	}
	if inQuote {
		return nil, fmt.Errorf("unterminated quote in command: %s", s)
	}
	if hasData {
		fields = append(fields, current.String())
	}
	return fields, nil
}
