package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerceBool(t *testing.T) {
	cases := []struct {
		in   interface{}
		want bool
	}{
		{true, true},
		{false, false},
		{"Yes", true},
		{"yes", true},
		{" YES ", true},
		{"true", true},
		{"1", true},
		{"No", false},
		{"no", false},
		{"", false},
		{"0", false},
		{float64(1), true},
		{float64(0), false},
		{1, true},
		{0, false},
		{json.Number("1"), true},
		{json.Number("0"), false},
		{nil, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CoerceBool(tc.in), "input %#v", tc.in)
	}
}

func TestNormalizeCollectionMemberAliases(t *testing.T) {
	rows := []map[string]interface{}{
		{
			"name":            "Kala",
			"relationship":    "Wife",
			"education_level": "Primary",
			"bank_account":    "Yes",
			"has_aadhaar":     1.0,
			"date_of_birth":   "1990-05-12",
		},
	}

	out := NormalizeCollection("members", rows)
	require.Len(t, out, 1)

	row := out[0]
	assert.Equal(t, "Wife", row["relation_to_head"])
	assert.Equal(t, "Primary", row["general_education_level"])
	assert.NotContains(t, row, "relationship")
	assert.NotContains(t, row, "education_level")
	assert.Equal(t, true, row["bank_account"])
	assert.Equal(t, true, row["has_aadhaar"])
	assert.Equal(t, "1990-05-12T00:00:00Z", row["date_of_birth"])
}

func TestNormalizeCollectionCanonicalWins(t *testing.T) {
	// when both legacy and canonical keys arrive, the canonical value stays
	rows := []map[string]interface{}{
		{
			"relationship":     "Brother",
			"relation_to_head": "Son",
		},
	}

	out := NormalizeCollection("members", rows)
	require.Len(t, out, 1)
	assert.Equal(t, "Son", out[0]["relation_to_head"])
}

func TestNormalizeCollectionUnknownKeyPassthrough(t *testing.T) {
	rows := []map[string]interface{}{
		{"anything": "goes", "count": 3.0},
	}
	out := NormalizeCollection("no_such_collection", rows)
	assert.Equal(t, rows, out)
}

func TestNormalizeCollectionSanitationBooleans(t *testing.T) {
	rows := []map[string]interface{}{
		{"toilet": "yes", "bathroom": "No", "all_use_toilet": "1"},
	}
	out := NormalizeCollection("sanitation_facilities", rows)
	require.Len(t, out, 1)
	assert.Equal(t, true, out[0]["has_toilet"])
	assert.Equal(t, false, out[0]["has_bathroom"])
	assert.Equal(t, true, out[0]["all_use_toilet"])
}

func TestNormalizeCollectionCoercesLooseCounts(t *testing.T) {
	out := NormalizeCollection("members", []map[string]interface{}{
		{"name": "Kala", "age": "34"},
	})
	require.Len(t, out, 1)
	assert.Equal(t, 34, out[0]["age"])

	out = NormalizeCollection("livestock_details", []map[string]interface{}{
		{"animal_category": "Goat", "animal_count": " 4 "},
	})
	require.Len(t, out, 1)
	assert.Equal(t, 4, out[0]["animal_count"])

	// a non-numeric string is left for the decoder to reject downstream
	out = NormalizeCollection("cash_crops", []map[string]interface{}{
		{"crop_name": "Coffee", "number": "many"},
	})
	assert.Equal(t, "many", out[0]["number"])
}

func TestNormalizeDatePreservesRFC3339(t *testing.T) {
	rows := []map[string]interface{}{
		{"date_of_birth": "1990-05-12T00:00:00Z"},
	}
	out := NormalizeCollection("members", rows)
	assert.Equal(t, "1990-05-12T00:00:00Z", out[0]["date_of_birth"])
}

func TestParseLooseInt(t *testing.T) {
	n, ok := ParseLooseInt(float64(5))
	assert.True(t, ok)
	assert.Equal(t, 5, n)

	n, ok = ParseLooseInt(" 7 ")
	assert.True(t, ok)
	assert.Equal(t, 7, n)

	_, ok = ParseLooseInt("seven")
	assert.False(t, ok)

	_, ok = ParseLooseInt(nil)
	assert.False(t, ok)
}
