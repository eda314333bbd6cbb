package editor

import (
	"encoding/json"
	"strings"
)

// ChipSet is the tech-stack chip collection: an ordered set of unique,
// trimmed, non-empty strings. Duplicates are rejected silently (exact,
// case-sensitive match) and insertion order is preserved.
type ChipSet struct {
	values []string
	seen   map[string]struct{}
}

func NewChipSet(values ...string) *ChipSet {
	s := &ChipSet{seen: make(map[string]struct{})}
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Add appends one trimmed value. Returns false for empty input or a
// duplicate.
func (s *ChipSet) Add(v string) bool {
	v = strings.TrimSpace(v)
	if v == "" {
		return false
	}
	if _, dup := s.seen[v]; dup {
		return false
	}
	s.values = append(s.values, v)
	s.seen[v] = struct{}{}
	return true
}

// Commit consumes the raw chip input as the Enter/comma key handler does:
// the text is split on internal commas and each part is added. The added
// values are returned so the caller can clear the input on success.
func (s *ChipSet) Commit(input string) []string {
	var added []string
	for _, part := range strings.Split(input, ",") {
		part = strings.TrimSpace(part)
		if part != "" && s.Add(part) {
			added = append(added, part)
		}
	}
	return added
}

// Remove deletes the exact string from the collection.
func (s *ChipSet) Remove(v string) bool {
	if _, ok := s.seen[v]; !ok {
		return false
	}
	delete(s.seen, v)
	for i, cur := range s.values {
		if cur == v {
			s.values = append(s.values[:i], s.values[i+1:]...)
			break
		}
	}
	return true
}

// Values returns the chips in insertion order.
func (s *ChipSet) Values() []string {
	out := make([]string, len(s.values))
	copy(out, s.values)
	return out
}

func (s *ChipSet) Len() int {
	return len(s.values)
}

// DecodeTechStacks parses a serialized tech-stack payload. A JSON array is
// preferred; anything unparseable falls back to a comma split. The result
// is not yet deduplicated; feed it through a ChipSet.
func DecodeTechStacks(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	var arr []string
	if err := json.Unmarshal([]byte(raw), &arr); err == nil {
		return arr
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
