package editor_test

import (
	"testing"
	"time"

	"jobboard-admin/internal/domain"
	"jobboard-admin/internal/editor"

	"github.com/stretchr/testify/assert"
)

func TestFieldRowsStableIDs(t *testing.T) {
	now := time.UnixMilli(1700000000000)

	t.Run("Should derive the row id from the timestamp", func(t *testing.T) {
		rows := editor.NewFieldRows()
		row := rows.Add(now)
		assert.Equal(t, "customField_1700000000000", row.ID)
	})

	t.Run("Should bump ids for same-millisecond additions", func(t *testing.T) {
		rows := editor.NewFieldRows()
		a := rows.Add(now)
		b := rows.Add(now)
		c := rows.Add(now)
		assert.Equal(t, "customField_1700000000000", a.ID)
		assert.Equal(t, "customField_1700000000001", b.ID)
		assert.Equal(t, "customField_1700000000002", c.ID)
	})

	t.Run("Should keep ids monotonic even when the clock lags", func(t *testing.T) {
		rows := editor.NewFieldRows()
		rows.Add(now)
		row := rows.Add(now.Add(-time.Minute))
		assert.Equal(t, "customField_1700000000001", row.ID)
	})
}

func TestFieldRowsSetRemove(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	rows := editor.NewFieldRows()
	a := rows.Add(now)
	b := rows.Add(now)

	assert.True(t, rows.Set(a.ID, "benefits", "remote"))
	assert.True(t, rows.Set(b.ID, "visa", "sponsored"))
	assert.False(t, rows.Set("customField_999", "x", "y"))

	assert.True(t, rows.Remove(a.ID))
	assert.False(t, rows.Remove(a.ID))

	got := rows.Rows()
	assert.Len(t, got, 1)
	assert.Equal(t, "visa", got[0].Key)
}

func TestCollectFieldsCollapse(t *testing.T) {
	t.Run("Should let later rows win on duplicate keys", func(t *testing.T) {
		out := editor.CollectFields([]domain.CustomField{
			{Key: "benefits", Value: "gym"},
			{Key: "visa", Value: "sponsored"},
			{Key: "benefits", Value: "remote stipend"},
		})
		assert.Equal(t, map[string]string{
			"benefits": "remote stipend",
			"visa":     "sponsored",
		}, out)
	})

	t.Run("Should skip rows with blank keys and trim keys and values", func(t *testing.T) {
		out := editor.CollectFields([]domain.CustomField{
			{Key: "   ", Value: "ignored"},
			{Key: " team ", Value: " platform "},
		})
		assert.Equal(t, map[string]string{"team": "platform"}, out)
	})
}

func TestFieldRowsPopulateRoundTrip(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	rows := editor.NewFieldRows()
	rows.Populate(map[string]string{"visa": "sponsored", "benefits": "gym"}, now)

	got := rows.Rows()
	assert.Len(t, got, 2)
	// Keys are sorted for deterministic rendering.
	assert.Equal(t, "benefits", got[0].Key)
	assert.Equal(t, "visa", got[1].Key)

	assert.Equal(t, map[string]string{"visa": "sponsored", "benefits": "gym"}, rows.Collect())
}
