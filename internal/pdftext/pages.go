// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdftext

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePageRange parses a 1-indexed page selection such as "1-3,5,9" into
// the list of page numbers it names, in the order written. An empty spec
// means all pages and returns nil.
func ParsePageRange(spec string) ([]int, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, nil
	}

	var pages []int
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if start, end, ok := strings.Cut(part, "-"); ok {
			s, err1 := strconv.Atoi(strings.TrimSpace(start))
			e, err2 := strconv.Atoi(strings.TrimSpace(end))
			if err1 != nil || err2 != nil || s <= 0 || e < s {
				return nil, fmt.Errorf("invalid page range %q", part)
			}
			for p := s; p <= e; p++ {
				pages = append(pages, p)
			}
			continue
		}
		p, err := strconv.Atoi(part)
		if err != nil || p <= 0 {
			return nil, fmt.Errorf("invalid page %q", part)
		}
		pages = append(pages, p)
	}
	return pages, nil
}
