package storage

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"educonnect/models"
)

func sampleView() []*models.Listing {
	return []*models.Listing{
		{ID: 5, Title: "Budget-Friendly Room", Address: "654 Bathurst Street, Toronto", Price: 550,
			RoomType: models.PrivateRoom, Amenities: []string{"WiFi", "Laundry"},
			University: "OCAD University", Distance: "1.5km", Rating: 4.1, Available: true},
		{ID: 6, Title: "Spacious 2BR Apartment", Price: 1800, RoomType: models.TwoBedroom,
			University: "George Brown College", Distance: "2.1km", Rating: 4.7},
	}
}

func TestCSVStreamWriter(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewCSVStreamWriter(&buf)
	require.NoError(t, err)
	require.NoError(t, w.Write(sampleView()))
	require.NoError(t, w.Close())

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, csvHeader, records[0])
	assert.Equal(t, []string{
		"5", "Budget-Friendly Room", "654 Bathurst Street, Toronto", "550", "Private Room",
		"WiFi;Laundry", "OCAD University", "1.5km", "4.1", "true",
	}, records[1])
	assert.Equal(t, "2 Bedroom", records[2][4])
}

func TestCSVFileWriterCreatesDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "housing.csv")
	w, err := NewCSVWriter(path)
	require.NoError(t, err)
	require.NoError(t, w.Write(sampleView()[:1]))
	require.NoError(t, w.Close())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 2)
}
