package fixtures

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHousingFixture(t *testing.T) {
	rows, err := Housing()
	require.NoError(t, err)
	require.Len(t, rows, 6)

	first := rows[0]
	assert.Equal(t, 1, first.ID)
	assert.Equal(t, "Private Room", first.RoomType)
	assert.Equal(t, "0.5km", first.Distance)
	assert.Equal(t, []string{"WiFi", "Laundry", "Kitchen Access", "Furnished"}, first.Amenities)
	assert.False(t, rows[5].Available)
}

func TestProfessorsFixture(t *testing.T) {
	profs, err := Professors()
	require.NoError(t, err)
	require.Len(t, profs, 3)
	assert.Equal(t, "Robotics", profs[1].Field)
}

func TestChatbotFixtureOrder(t *testing.T) {
	cb, err := LoadChatbot()
	require.NoError(t, err)

	ids := make([]string, 0, len(cb.Categories))
	for _, c := range cb.Categories {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []string{"scholarships", "visa", "universities", "costs", "sop"}, ids)
	assert.NotEmpty(t, cb.Fallback)
	assert.Len(t, cb.Widget.QuickActions, 4)
	assert.Len(t, cb.Assistant.QuickActions, 4)
	assert.Contains(t, cb.Categories[4].Keywords, "statement of purpose")
}
