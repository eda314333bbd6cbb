// Package listing builds the admin summary list: one typed row per record,
// rendered from data so it is testable without markup.
package listing

import (
	"time"

	"jobboard-admin/internal/domain"
)

// Badge colors keyed by record status.
const (
	BadgeSuccess   = "success"
	BadgeDanger    = "danger"
	BadgeSecondary = "secondary"
)

// Row action identifiers dispatched from the list container.
const (
	ActionEdit         = "edit"
	ActionToggleStatus = "toggle-status"
	ActionDelete       = "delete"
)

// Row is one summary line of the dashboard list.
type Row struct {
	ID           string           `json:"id"`
	Title        string           `json:"title"`
	Status       domain.JobStatus `json:"status"`
	BadgeColor   string           `json:"badgeColor"`
	CompanyName  string           `json:"companyName"`
	Location     string           `json:"location"`
	Category     string           `json:"category"`
	SubCategory  string           `json:"subCategory"`
	PostedDate   string           `json:"postedDate"`
	ToggleLabel  string           `json:"toggleLabel"`
	ToggleTarget string           `json:"toggleTarget,omitempty"`
	Actions      []string         `json:"actions"`
	CreatedAt    time.Time        `json:"createdAt"`
}

// BuildRows renders the fetched records into list rows. Date formatting
// failures are absorbed per record ("N/A"); one bad document never aborts
// the whole list.
func BuildRows(records []domain.JobRecord, loc *time.Location) []Row {
	rows := make([]Row, 0, len(records))
	for _, rec := range records {
		rows = append(rows, buildRow(rec, loc))
	}
	return rows
}

func buildRow(rec domain.JobRecord, loc *time.Location) Row {
	row := Row{
		ID:          rec.ID,
		Title:       fallback(rec.Title, "No Title"),
		Status:      rec.Status,
		BadgeColor:  BadgeColor(rec.Status),
		CompanyName: fallback(rec.CompanyName, "N/A"),
		Location:    fallback(rec.Location, "N/A"),
		Category:    fallback(rec.Category, "N/A"),
		SubCategory: fallback(rec.SubCategory, "N/A"),
		PostedDate:  formatPostedDate(rec.PostedDate, loc),
		Actions:     []string{ActionEdit, ActionToggleStatus, ActionDelete},
		CreatedAt:   rec.CreatedAt,
	}
	if target, ok := rec.Status.ToggleTarget(); ok {
		row.ToggleTarget = string(target)
	}
	if rec.Status == domain.StatusActive {
		row.ToggleLabel = "Pause"
	} else {
		row.ToggleLabel = "Activate"
	}
	return row
}

// BadgeColor keys the status badge: active is success, expired is danger,
// everything else neutral.
func BadgeColor(status domain.JobStatus) string {
	switch status {
	case domain.StatusActive:
		return BadgeSuccess
	case domain.StatusExpired:
		return BadgeDanger
	default:
		return BadgeSecondary
	}
}

func formatPostedDate(t *time.Time, loc *time.Location) string {
	if t == nil || t.IsZero() {
		return "N/A"
	}
	return t.In(loc).Format("2006-01-02")
}

func fallback(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
