package slug

import (
	"context"
	"fmt"
)

// Checker probes the persistence layer for an existing slug.
type Checker interface {
	SlugTaken(ctx context.Context, slug string) (bool, error)
}

// Resolver finds a free slug by probing and appending -2, -3, ...
// until no collision remains. The probe loop is a fast path only; the
// unique constraint on the news table is the final authority under
// concurrent creates.
type Resolver struct {
	checker Checker
}

func NewResolver(checker Checker) *Resolver {
	return &Resolver{checker: checker}
}

func (r *Resolver) Unique(ctx context.Context, title string) (string, error) {
	base := MakeWithFallback(title)

	candidate := base
	for i := 2; ; i++ {
		taken, err := r.checker.SlugTaken(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("probe slug %q: %w", candidate, err)
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}
