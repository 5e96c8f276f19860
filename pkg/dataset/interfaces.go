package dataset

import "context"

//go:generate mockgen -destination=mock_dataset.go -package=dataset github.com/mfreeman451/regionpulse/pkg/dataset Provider

// Provider supplies the region dataset. Load is side-effect-free from the
// caller's perspective; providers that read from disk handle their own
// failures by returning an empty dataset.
type Provider interface {
	Load(ctx context.Context) (Dataset, error)
}
