package stagedash

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/aretw0/stagedash/pkg/domain"
)

// SelectPipeline picks a pipeline name out of the source's listing.
//
// An empty match selects the first pipeline. Otherwise an exact name wins, then the
// first name containing match. When nothing matches, the error wraps
// domain.ErrPipelineNotFound and suggests the closest name.
func SelectPipeline(names []string, match string) (string, error) {
	if len(names) == 0 {
		return "", domain.ErrNoPipelines
	}
	if match == "" {
		return names[0], nil
	}

	for _, name := range names {
		if name == match {
			return name, nil
		}
	}
	for _, name := range names {
		if strings.Contains(name, match) {
			return name, nil
		}
	}

	if suggestion := closest(names, match); suggestion != "" {
		return "", fmt.Errorf("%w: %q (did you mean %q?)", domain.ErrPipelineNotFound, match, suggestion)
	}
	return "", fmt.Errorf("%w: %q", domain.ErrPipelineNotFound, match)
}

func closest(names []string, match string) string {
	best, bestDist := "", -1
	for _, name := range names {
		d := levenshtein.ComputeDistance(strings.ToLower(name), strings.ToLower(match))
		if bestDist < 0 || d < bestDist {
			best, bestDist = name, d
		}
	}
	// A name that would need a full rewrite is no suggestion.
	if bestDist >= max(len(best), len(match)) {
		return ""
	}
	return best
}
