package storage

import (
	"context"

	"educonnect/fixtures"
	"educonnect/models"
)

// FixtureSource serves the housing catalog bundled into the binary.
type FixtureSource struct{}

func (FixtureSource) FetchAll(context.Context) ([]*models.RawListing, error) {
	return fixtures.Housing()
}
