package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Path addresses one item: section index followed by child ordinals, all
// 0-based. The dotted string form shown to users is 1-based ("2.1.3" means
// second section, first item, third child).
type Path []int

// ParsePath parses the 1-based dotted form into a 0-based Path.
// A path needs at least a section and an item component.
func ParsePath(s string) (Path, error) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) < 2 {
		return nil, fmt.Errorf("path %q: need at least SECTION.ITEM", s)
	}
	p := make(Path, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("path %q: component %q is not a positive number", s, part)
		}
		p = append(p, n-1)
	}
	return p, nil
}

// String renders the 1-based dotted form.
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, n := range p {
		parts[i] = strconv.Itoa(n + 1)
	}
	return strings.Join(parts, ".")
}
