package domain

import (
	"fmt"
	"strconv"
	"strings"

	m "gooze.dev/pkg/lit/internal/model"
)

// AnyQualifier matches every package or receiver.
const AnyQualifier = "*"

// DefaultEntryPoints covers the common Go localization helpers.
var DefaultEntryPoints = []string{
	"T",
	"Tr",
	"*.T",
	"*.Tr",
}

// ParseEntryPoints parses configured entry point specs. A spec is
// "Name", "qualifier.Name", "import/path.Name" or "*.Name", optionally
// followed by ":N" to take the key from argument N instead of the first.
func ParseEntryPoints(specs []string) ([]m.EntryPoint, error) {
	entryPoints := make([]m.EntryPoint, 0, len(specs))
	seen := make(map[m.EntryPoint]struct{}, len(specs))

	for _, spec := range specs {
		entryPoint, err := ParseEntryPoint(spec)
		if err != nil {
			return nil, err
		}

		if _, dup := seen[entryPoint]; dup {
			continue
		}

		seen[entryPoint] = struct{}{}
		entryPoints = append(entryPoints, entryPoint)
	}

	if len(entryPoints) == 0 {
		return nil, fmt.Errorf("no translation entry points configured")
	}

	return entryPoints, nil
}

// ParseEntryPoint parses a single entry point spec.
func ParseEntryPoint(spec string) (m.EntryPoint, error) {
	raw := strings.TrimSpace(spec)

	var entryPoint m.EntryPoint

	if i := strings.LastIndex(raw, ":"); i >= 0 {
		arg, err := strconv.Atoi(raw[i+1:])
		if err != nil || arg < 0 {
			return m.EntryPoint{}, fmt.Errorf("entry point %q: invalid argument index %q", spec, raw[i+1:])
		}

		entryPoint.Arg = arg
		raw = raw[:i]
	}

	if i := strings.LastIndex(raw, "."); i >= 0 {
		entryPoint.Qualifier = raw[:i]
		raw = raw[i+1:]
	}

	if !isIdentifier(raw) {
		return m.EntryPoint{}, fmt.Errorf("entry point %q: %q is not a function name", spec, raw)
	}

	if strings.HasSuffix(entryPoint.Qualifier, ".") || strings.Contains(entryPoint.Qualifier, " ") {
		return m.EntryPoint{}, fmt.Errorf("entry point %q: malformed qualifier", spec)
	}

	entryPoint.Name = raw

	return entryPoint, nil
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}

	return true
}
