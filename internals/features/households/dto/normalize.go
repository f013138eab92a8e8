package dto

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// The data-entry client's payload shape has drifted across form versions:
// the same concept arrives under different field names and booleans arrive
// as "Yes"/"yes"/1/true. All coercion is centralized here so that neither
// validation nor persistence ever sees a legacy shape.

type collectionSpec struct {
	// legacy name → canonical name; applied only when the canonical key is absent
	aliases map[string]string
	// fields coerced to bool from loosely-typed values
	boolFields []string
	// count fields coerced to int; older clients send them as strings
	intFields []string
	// fields normalized from "2006-01-02" to RFC3339 so they decode into time.Time
	dateFields []string
}

var collectionSpecs = map[string]collectionSpec{
	"members": {
		aliases: map[string]string{
			"relationship":    "relation_to_head",
			"education_level": "general_education_level",
			"member_name":     "name",
			"dob":             "date_of_birth",
		},
		boolFields: []string{"bank_account", "has_aadhaar"},
		intFields:  []string{"age"},
		dateFields: []string{"date_of_birth"},
	},
	"education_details": {
		aliases: map[string]string{
			"student": "student_name",
			"class":   "class_grade",
			"school":  "school_institution",
		},
		boolFields: []string{"is_dropout"},
	},
	"sanitation_facilities": {
		aliases: map[string]string{
			"toilet":   "has_toilet",
			"bathroom": "has_bathroom",
		},
		boolFields: []string{
			"has_toilet", "has_bathroom", "all_use_toilet",
			"uses_public_toilet", "satisfied_with_public", "new_toilet_required",
		},
	},
	"phone_connectivity": {
		boolFields: []string{"has_phone", "mobile", "landline", "has_signal", "has_internet"},
	},
	"transportation_facilities": {
		boolFields: []string{"owns_vehicle"},
	},
	"nutrition_access": {
		boolFields: []string{"ration_shop_receiving", "anganwadi_receiving"},
	},
	"housing_details": {
		boolFields: []string{"needs_repair"},
	},
	"traditional_farming": {
		boolFields: []string{"practices", "interest_resume"},
	},
	"cash_crops": {
		boolFields: []string{"older_than_three_years"},
		intFields:  []string{"number"},
	},
	"livestock_details": {
		intFields: []string{"animal_count"},
	},
	"forest_resources": {
		intFields: []string{"collection_days"},
	},
	"entitlements": {
		boolFields: []string{"land_ownership_document", "title_deed_available", "has_pattayam"},
	},
	"exit_wish_houses": {
		boolFields: []string{"wishes_to_move"},
	},
	"child_groups": {
		boolFields: []string{"attends_anganwadi"},
	},
	"malnutrition_records": {
		boolFields: []string{"under_treatment"},
	},
	"employment_details": {
		boolFields: []string{"registered_psc"},
	},
}

// CoerceBool maps the loosely-typed truthy values sent by older clients
// ("Yes", "yes", "true", "1", 1, true) to a boolean.
func CoerceBool(v interface{}) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		s := strings.ToLower(strings.TrimSpace(t))
		return s == "yes" || s == "true" || s == "1"
	case float64:
		return t == 1
	case int:
		return t == 1
	case json.Number:
		n, err := t.Float64()
		return err == nil && n == 1
	default:
		return false
	}
}

// NormalizeCollection rewrites one child-collection entry list into the
// canonical shape: legacy keys renamed, loose booleans coerced, bare dates
// made RFC3339. Unknown collections pass through untouched.
func NormalizeCollection(key string, rows []map[string]interface{}) []map[string]interface{} {
	spec, ok := collectionSpecs[key]
	if !ok {
		return rows
	}

	out := make([]map[string]interface{}, 0, len(rows))
	for _, row := range rows {
		normalized := make(map[string]interface{}, len(row))
		for k, v := range row {
			if canonical, isAlias := spec.aliases[k]; isAlias {
				if _, exists := row[canonical]; !exists {
					normalized[canonical] = v
				}
				continue
			}
			normalized[k] = v
		}
		for _, f := range spec.boolFields {
			if v, exists := normalized[f]; exists {
				normalized[f] = CoerceBool(v)
			}
		}
		for _, f := range spec.intFields {
			if v, exists := normalized[f]; exists {
				if n, ok := ParseLooseInt(v); ok {
					normalized[f] = n
				}
			}
		}
		for _, f := range spec.dateFields {
			if v, exists := normalized[f]; exists {
				if s, isStr := v.(string); isStr {
					normalized[f] = normalizeDate(s)
				}
			}
		}
		out = append(out, normalized)
	}
	return out
}

func normalizeDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	if _, err := time.Parse(time.RFC3339, s); err == nil {
		return s
	}
	if d, err := time.Parse("2006-01-02", s); err == nil {
		return d.UTC().Format(time.RFC3339)
	}
	return s
}

// ParseLooseInt accepts numeric or string-typed counts from legacy clients.
func ParseLooseInt(v interface{}) (int, bool) {
	switch t := v.(type) {
	case float64:
		return int(t), true
	case int:
		return t, true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}
