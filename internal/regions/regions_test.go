package regions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableIsConsistent(t *testing.T) {
	ids := map[int]string{}
	slugs := map[string]bool{}
	for _, r := range All() {
		prev, dup := ids[r.ID]
		assert.False(t, dup, "id %d used by %s and %s", r.ID, prev, r.Slug)
		ids[r.ID] = r.Slug

		assert.False(t, slugs[r.Slug], "duplicate slug %s", r.Slug)
		slugs[r.Slug] = true
	}
	assert.Equal(t, RestOfWorld, All()[0])
}

func TestBySlug(t *testing.T) {
	r, ok := BySlug("usa")
	require.True(t, ok)
	assert.Equal(t, 2, r.ID)
	assert.Equal(t, "310", r.MCC)

	r, ok = BySlug("worldwide")
	require.True(t, ok)
	assert.Equal(t, RestOfWorld, r)

	r, ok = BySlug("gb")
	require.True(t, ok)
	assert.Equal(t, "gbr", r.Slug)

	_, ok = BySlug("atlantis")
	assert.False(t, ok)
}

func TestByID(t *testing.T) {
	r, ok := ByID(7)
	require.True(t, ok)
	assert.Equal(t, "bra", r.Slug)

	r, ok = ByID(1)
	require.True(t, ok)
	assert.Equal(t, RestOfWorld, r)

	_, ok = ByID(99999)
	assert.False(t, ok)
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"14", "deu", true},
		{"deu", "deu", true},
		{"DEU", "deu", true},
		{"de", "deu", true},
		{"US", "usa", true},
		{"united kingdom", "gbr", true},
		{"  bra ", "bra", true},
		{"restofworld", "restofworld", true},
		{"", "", false},
		{"0", "", false},
		{"nowhere", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			r, ok := Parse(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, r.Slug)
		})
	}
}
