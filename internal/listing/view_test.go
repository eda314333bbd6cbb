package listing_test

import (
	"testing"
	"time"

	"jobboard-admin/internal/domain"
	"jobboard-admin/internal/listing"

	"github.com/stretchr/testify/assert"
)

func TestBadgeColor(t *testing.T) {
	assert.Equal(t, listing.BadgeSuccess, listing.BadgeColor(domain.StatusActive))
	assert.Equal(t, listing.BadgeDanger, listing.BadgeColor(domain.StatusExpired))
	assert.Equal(t, listing.BadgeSecondary, listing.BadgeColor(domain.StatusInactive))
	assert.Equal(t, listing.BadgeSecondary, listing.BadgeColor(domain.JobStatus("")))
	assert.Equal(t, listing.BadgeSecondary, listing.BadgeColor(domain.JobStatus("draft")))
}

func TestBuildRows(t *testing.T) {
	loc := time.UTC
	posted := time.Date(2024, 2, 1, 0, 0, 0, 0, loc)

	t.Run("Should render a complete record", func(t *testing.T) {
		rows := listing.BuildRows([]domain.JobRecord{{
			ID:          "a1",
			Title:       "Backend Engineer",
			CompanyName: "Acme",
			Location:    "Berlin",
			Category:    "Technology",
			SubCategory: "Backend Development",
			PostedDate:  &posted,
			Status:      domain.StatusActive,
		}}, loc)

		assert.Len(t, rows, 1)
		row := rows[0]
		assert.Equal(t, "a1", row.ID)
		assert.Equal(t, listing.BadgeSuccess, row.BadgeColor)
		assert.Equal(t, "2024-02-01", row.PostedDate)
		assert.Equal(t, "Pause", row.ToggleLabel)
		assert.Equal(t, string(domain.StatusInactive), row.ToggleTarget)
		assert.Equal(t, []string{listing.ActionEdit, listing.ActionToggleStatus, listing.ActionDelete}, row.Actions)
	})

	t.Run("Should absorb missing fields per record", func(t *testing.T) {
		rows := listing.BuildRows([]domain.JobRecord{
			{ID: "b1", Status: domain.StatusInactive},
			{ID: "b2", Title: "Has Title", PostedDate: &posted, Status: domain.StatusActive},
		}, loc)

		assert.Len(t, rows, 2)
		assert.Equal(t, "No Title", rows[0].Title)
		assert.Equal(t, "N/A", rows[0].CompanyName)
		assert.Equal(t, "N/A", rows[0].PostedDate)
		assert.Equal(t, "Activate", rows[0].ToggleLabel)

		// The bad record never contaminates its neighbors.
		assert.Equal(t, "Has Title", rows[1].Title)
		assert.Equal(t, "2024-02-01", rows[1].PostedDate)
	})

	t.Run("Should render a zero timestamp as N/A", func(t *testing.T) {
		var zero time.Time
		rows := listing.BuildRows([]domain.JobRecord{{ID: "c1", PostedDate: &zero}}, loc)
		assert.Equal(t, "N/A", rows[0].PostedDate)
	})

	t.Run("Should give expired records no toggle target", func(t *testing.T) {
		rows := listing.BuildRows([]domain.JobRecord{{ID: "d1", Status: domain.StatusExpired}}, loc)
		assert.Equal(t, "", rows[0].ToggleTarget)
		assert.Equal(t, listing.BadgeDanger, rows[0].BadgeColor)
		assert.Equal(t, "Activate", rows[0].ToggleLabel)
	})

	t.Run("Should return an empty slice for no records", func(t *testing.T) {
		rows := listing.BuildRows(nil, loc)
		assert.NotNil(t, rows)
		assert.Empty(t, rows)
	})
}
