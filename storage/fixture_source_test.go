package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixtureSource(t *testing.T) {
	var src ListingSource = FixtureSource{}
	rows, err := src.FetchAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, rows, 6)
}
