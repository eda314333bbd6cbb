package editor

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"jobboard-admin/internal/domain"
)

// FieldRow is one custom key/value row with a stable identifier. Row ids are
// timestamp-derived and collision-tolerant at human interaction rates; a
// monotonic bump covers same-millisecond additions.
type FieldRow struct {
	ID    string `json:"id"`
	Key   string `json:"key"`
	Value string `json:"value"`
}

// FieldRows holds the dynamic custom-field rows of the editor.
type FieldRows struct {
	rows   []FieldRow
	lastID int64
}

func NewFieldRows() *FieldRows {
	return &FieldRows{}
}

// Populate replaces the rows with one row per map entry, keys sorted so the
// rendering is deterministic.
func (r *FieldRows) Populate(fields map[string]string, now time.Time) {
	r.rows = r.rows[:0]
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		row := r.Add(now)
		r.Set(row.ID, k, fields[k])
	}
}

// Add appends one blank row and returns it.
func (r *FieldRows) Add(now time.Time) FieldRow {
	id := now.UnixMilli()
	if id <= r.lastID {
		id = r.lastID + 1
	}
	r.lastID = id
	row := FieldRow{ID: fmt.Sprintf("customField_%d", id)}
	r.rows = append(r.rows, row)
	return row
}

// Set updates the key/value of the row with the given id.
func (r *FieldRows) Set(id, key, value string) bool {
	for i := range r.rows {
		if r.rows[i].ID == id {
			r.rows[i].Key = key
			r.rows[i].Value = value
			return true
		}
	}
	return false
}

// Remove deletes the row matching the id, as the delegated remove control
// does.
func (r *FieldRows) Remove(id string) bool {
	for i := range r.rows {
		if r.rows[i].ID == id {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return true
		}
	}
	return false
}

func (r *FieldRows) Rows() []FieldRow {
	out := make([]FieldRow, len(r.rows))
	copy(out, r.rows)
	return out
}

// Collect collapses the rows into the persisted mapping: rows whose trimmed
// key is empty are skipped, later rows overwrite earlier rows of the same
// key.
func (r *FieldRows) Collect() map[string]string {
	fields := make([]domain.CustomField, len(r.rows))
	for i, row := range r.rows {
		fields[i] = domain.CustomField{Key: row.Key, Value: row.Value}
	}
	return CollectFields(fields)
}

// CollectFields applies the same collapse to submitted rows.
func CollectFields(rows []domain.CustomField) map[string]string {
	out := make(map[string]string)
	for _, row := range rows {
		key := strings.TrimSpace(row.Key)
		if key == "" {
			continue
		}
		out[key] = strings.TrimSpace(row.Value)
	}
	return out
}
