package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApply_Defaults(t *testing.T) {
	p := Params{}

	query, args := p.Apply("SELECT id FROM users", nil, Options{})

	assert.Equal(t, "SELECT id FROM users ORDER BY id DESC LIMIT 50 OFFSET 0", query)
	assert.Empty(t, args)
}

func TestApply_OrderingWhitelist(t *testing.T) {
	opts := Options{
		OrderColumns: map[string]string{"name": "u.name", "id": "u.id"},
		DefaultOrder: "u.id DESC",
	}

	tests := []struct {
		name     string
		ordering string
		want     string
	}{
		{"ascending", "name", "ORDER BY u.name ASC"},
		{"descending", "-name", "ORDER BY u.name DESC"},
		{"unknown column falls back", "-password", "ORDER BY u.id DESC"},
		{"empty falls back", "", "ORDER BY u.id DESC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Params{Ordering: tt.ordering}
			query, _ := p.Apply("SELECT u.id FROM users u", nil, opts)
			assert.Contains(t, query, tt.want)
		})
	}
}

func TestApply_Search(t *testing.T) {
	p := Params{Search: "ann"}
	opts := Options{SearchColumns: []string{"name", "email"}}

	query, args := p.Apply("SELECT id FROM users", nil, opts)

	assert.Contains(t, query, "WHERE (name ILIKE $1 OR email ILIKE $1)")
	assert.Equal(t, []interface{}{"%ann%"}, args)
}

func TestApply_SearchAfterExistingWhere(t *testing.T) {
	p := Params{Search: "gold"}
	opts := Options{
		SearchColumns: []string{"f.name"},
		HasWhere:      true,
	}

	query, args := p.Apply("SELECT f.id FROM fitness_clubs f WHERE f.id > $1", []interface{}{10}, opts)

	assert.Contains(t, query, "AND (f.name ILIKE $2)")
	assert.Equal(t, []interface{}{10, "%gold%"}, args)
}

func TestApply_LimitBounds(t *testing.T) {
	tests := []struct {
		name   string
		limit  int
		offset int
		want   string
	}{
		{"explicit", 10, 20, "LIMIT 10 OFFSET 20"},
		{"zero limit", 0, 0, "LIMIT 50 OFFSET 0"},
		{"over max", 5000, 0, "LIMIT 50 OFFSET 0"},
		{"negative offset", 10, -5, "LIMIT 10 OFFSET 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Params{Limit: tt.limit, Offset: tt.offset}
			query, _ := p.Apply("SELECT id FROM checkins", nil, Options{})
			assert.Contains(t, query, tt.want)
		})
	}
}
