package manifest

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/radiusxyz/radius-sdk-go/feature"
)

// Expand turns the document's capability entries into declared capability
// names. Entries containing glob metacharacters are matched against the
// lattice's declared names; a pattern matching nothing is fatal. Literal
// entries pass through untouched so that an unknown literal still surfaces
// UnknownCapabilityError from resolution, naming the offender.
//
// The result is deduplicated, preserving first-appearance order.
func Expand(doc *Document, lattice *feature.Lattice) ([]feature.Name, error) {
	declared := lattice.Declared()

	seen := make(map[feature.Name]struct{})
	var out []feature.Name
	add := func(n feature.Name) {
		if _, dup := seen[n]; dup {
			return
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}

	for _, entry := range doc.Capabilities {
		if !isPattern(entry) {
			add(feature.Name(entry))
			continue
		}

		matched := false
		for _, name := range declared {
			ok, err := doublestar.Match(entry, string(name))
			if err != nil {
				return nil, fmt.Errorf("capability pattern %q: %w", entry, err)
			}
			if ok {
				add(name)
				matched = true
			}
		}
		if !matched {
			return nil, &PatternMatchError{Pattern: entry}
		}
	}

	return out, nil
}

func isPattern(s string) bool {
	return strings.ContainsAny(s, "*?[{")
}
