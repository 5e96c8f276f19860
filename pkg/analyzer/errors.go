// Package errors pkg/analyzer/errors.go provides errors for the analyzer package.

package analyzer

import (
	"fmt"
	"strings"
)

// UnknownRegionsError reports the regions a strict-policy request asked for
// that are not in the dataset, together with the regions that are.
type UnknownRegionsError struct {
	Unknown   []string
	Available []string
}

func (e *UnknownRegionsError) Error() string {
	return fmt.Sprintf("unknown regions: %s (available: %s)",
		strings.Join(e.Unknown, ", "), strings.Join(e.Available, ", "))
}
