package dto

import (
	"encoding/json"
	"strings"
	"time"

	model "thunai_backend/internals/features/households/model"
)

/* ===================== REQUESTS ===================== */

// CreateHouseholdRequest carries the top-level scalar fields of the aggregate.
// Child collections are parsed separately (see ParseCreateHouseholdRequest)
// because they arrive as loosely-shaped arrays that must be normalized before
// they can be decoded into models.
type CreateHouseholdRequest struct {
	HouseholdHeadName    string  `json:"household_head_name"`
	HamletID             *uint   `json:"hamlet_id"`
	EnumeratorID         string  `json:"enumerator_id"`
	Address              *string `json:"address"`
	PostOffice           *string `json:"post_office"`
	ColonySettlementName *string `json:"colony_settlement_name"`
	Category             *string `json:"category"`
	MicroPlanNumber      *string `json:"micro_plan_number"`
	GramaPanchayat       *string `json:"grama_panchayat"`
	WardNumber           *string `json:"ward_number"`
	HouseNumber          *string `json:"house_number"`
	FamilyMembersCount   *int    `json:"family_members_count"`
	RationCardNumber     *string `json:"ration_card_number"`
	SurveyDate           *string `json:"survey_date"` // ISO date string

	// collection key → raw entries, keyed by canonical collection name
	Collections map[string][]map[string]interface{} `json:"-"`
}

// collectionTargets maps each known child-collection key to the association
// slice it populates on the aggregate. Keys absent from the payload, or
// present as empty arrays, are never attached.
var collectionTargets = map[string]func(h *model.HouseholdModel) interface{}{
	"members":                   func(h *model.HouseholdModel) interface{} { return &h.Members },
	"migrant_workers":           func(h *model.HouseholdModel) interface{} { return &h.MigrantWorkers },
	"land_assets":               func(h *model.HouseholdModel) interface{} { return &h.LandAssets },
	"govt_scheme_houses":        func(h *model.HouseholdModel) interface{} { return &h.GovtSchemeHouses },
	"exit_wish_houses":          func(h *model.HouseholdModel) interface{} { return &h.ExitWishHouses },
	"housing_details":           func(h *model.HouseholdModel) interface{} { return &h.HousingDetails },
	"sanitation_facilities":     func(h *model.HouseholdModel) interface{} { return &h.SanitationFacilities },
	"water_sources":             func(h *model.HouseholdModel) interface{} { return &h.WaterSources },
	"waste_management":          func(h *model.HouseholdModel) interface{} { return &h.WasteManagement },
	"transportation_facilities": func(h *model.HouseholdModel) interface{} { return &h.TransportationFacilities },
	"phone_connectivity":        func(h *model.HouseholdModel) interface{} { return &h.PhoneConnectivity },
	"public_institutions":       func(h *model.HouseholdModel) interface{} { return &h.PublicInstitutions },
	"health_conditions":         func(h *model.HouseholdModel) interface{} { return &h.HealthConditions },
	"diseases":                  func(h *model.HouseholdModel) interface{} { return &h.Diseases },
	"health_insurance":          func(h *model.HouseholdModel) interface{} { return &h.HealthInsurance },
	"child_groups":              func(h *model.HouseholdModel) interface{} { return &h.ChildGroups },
	"child_health_statuses":     func(h *model.HouseholdModel) interface{} { return &h.ChildHealthStatuses },
	"malnutrition_records":      func(h *model.HouseholdModel) interface{} { return &h.MalnutritionRecords },
	"nutrition_access":          func(h *model.HouseholdModel) interface{} { return &h.NutritionAccess },
	"agricultural_land":         func(h *model.HouseholdModel) interface{} { return &h.AgriculturalLand },
	"cultivation_mode":          func(h *model.HouseholdModel) interface{} { return &h.CultivationMode },
	"traditional_farming":       func(h *model.HouseholdModel) interface{} { return &h.TraditionalFarming },
	"livestock_details":         func(h *model.HouseholdModel) interface{} { return &h.LivestockDetails },
	"food_consumption":          func(h *model.HouseholdModel) interface{} { return &h.FoodConsumption },
	"cash_crops":                func(h *model.HouseholdModel) interface{} { return &h.CashCrops },
	"forest_resources":          func(h *model.HouseholdModel) interface{} { return &h.ForestResources },
	"social_issues":             func(h *model.HouseholdModel) interface{} { return &h.SocialIssues },
	"wage_employment":           func(h *model.HouseholdModel) interface{} { return &h.WageEmployment },
	"livelihood_opportunities":  func(h *model.HouseholdModel) interface{} { return &h.LivelihoodOpportunities },
	"arts_sports":               func(h *model.HouseholdModel) interface{} { return &h.ArtsSports },
	"education_details":         func(h *model.HouseholdModel) interface{} { return &h.EducationDetails },
	"employment_details":        func(h *model.HouseholdModel) interface{} { return &h.EmploymentDetails },
	"entitlements":              func(h *model.HouseholdModel) interface{} { return &h.Entitlements },
	"additional_info":           func(h *model.HouseholdModel) interface{} { return &h.AdditionalInfo },
}

// CollectionKeys lists every child-collection key the create payload accepts.
func CollectionKeys() []string {
	keys := make([]string, 0, len(collectionTargets))
	for k := range collectionTargets {
		keys = append(keys, k)
	}
	return keys
}

// ParseCreateHouseholdRequest decodes the body twice: once into the typed
// scalar struct and once into a generic map from which the known child
// collections are lifted.
func ParseCreateHouseholdRequest(body []byte) (*CreateHouseholdRequest, error) {
	var req CreateHouseholdRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, err
	}

	req.Collections = make(map[string][]map[string]interface{})
	for key := range collectionTargets {
		entry, present := raw[key]
		if !present {
			continue
		}
		var rows []map[string]interface{}
		if err := json.Unmarshal(entry, &rows); err != nil {
			// ignore non-array values for collection keys; legacy clients
			// sometimes send null here
			continue
		}
		if len(rows) == 0 {
			continue
		}
		req.Collections[key] = rows
	}
	return &req, nil
}

// MissingRequired returns the names of absent mandatory fields.
func (r *CreateHouseholdRequest) MissingRequired() []string {
	var missing []string
	if strings.TrimSpace(r.HouseholdHeadName) == "" {
		missing = append(missing, "household_head_name")
	}
	if r.HamletID == nil || *r.HamletID == 0 {
		missing = append(missing, "hamlet_id")
	}
	return missing
}

// ToModel builds the aggregate root from the scalar fields. Children are
// attached separately by AttachCollections.
func (r *CreateHouseholdRequest) ToModel() *model.HouseholdModel {
	h := &model.HouseholdModel{
		HouseholdHeadName:    strings.TrimSpace(r.HouseholdHeadName),
		Address:              trimPtr(r.Address),
		PostOffice:           trimPtr(r.PostOffice),
		ColonySettlementName: trimPtr(r.ColonySettlementName),
		Category:             trimPtr(r.Category),
		MicroPlanNumber:      trimPtr(r.MicroPlanNumber),
		GramaPanchayat:       trimPtr(r.GramaPanchayat),
		WardNumber:           trimPtr(r.WardNumber),
		HouseNumber:          trimPtr(r.HouseNumber),
		FamilyMembersCount:   r.FamilyMembersCount,
		RationCardNumber:     trimPtr(r.RationCardNumber),
	}
	if r.HamletID != nil {
		h.HamletID = *r.HamletID
	}
	if r.SurveyDate != nil {
		if d, err := time.Parse("2006-01-02", strings.TrimSpace(*r.SurveyDate)); err == nil {
			h.SurveyDate = &d
		} else if d, err := time.Parse(time.RFC3339, strings.TrimSpace(*r.SurveyDate)); err == nil {
			h.SurveyDate = &d
		}
	}
	return h
}

// AttachCollections normalizes each present child collection and decodes it
// into the matching association slice so the whole aggregate persists in one
// nested create.
func (r *CreateHouseholdRequest) AttachCollections(h *model.HouseholdModel) error {
	for key, rows := range r.Collections {
		target, known := collectionTargets[key]
		if !known || len(rows) == 0 {
			continue
		}
		normalized := NormalizeCollection(key, rows)
		buf, err := json.Marshal(normalized)
		if err != nil {
			return err
		}
		if err := json.Unmarshal(buf, target(h)); err != nil {
			return err
		}
	}
	return nil
}

/* ===================== UPDATE ===================== */

// UpdateHouseholdRequest: every field optional, partial replacement.
type UpdateHouseholdRequest struct {
	HouseholdHeadName    *string `json:"household_head_name"`
	HamletID             *uint   `json:"hamlet_id"`
	Address              *string `json:"address"`
	PostOffice           *string `json:"post_office"`
	ColonySettlementName *string `json:"colony_settlement_name"`
	Category             *string `json:"category"`
	MicroPlanNumber      *string `json:"micro_plan_number"`
	GramaPanchayat       *string `json:"grama_panchayat"`
	WardNumber           *string `json:"ward_number"`
	HouseNumber          *string `json:"house_number"`
	FamilyMembersCount   *int    `json:"family_members_count"`
	RationCardNumber     *string `json:"ration_card_number"`
	SurveyDate           *string `json:"survey_date"`
}

// ApplyToModel sets only the fields present in the request.
func (r *UpdateHouseholdRequest) ApplyToModel(h *model.HouseholdModel) {
	if r.HouseholdHeadName != nil {
		h.HouseholdHeadName = strings.TrimSpace(*r.HouseholdHeadName)
	}
	if r.HamletID != nil {
		h.HamletID = *r.HamletID
	}
	if r.Address != nil {
		h.Address = trimPtr(r.Address)
	}
	if r.PostOffice != nil {
		h.PostOffice = trimPtr(r.PostOffice)
	}
	if r.ColonySettlementName != nil {
		h.ColonySettlementName = trimPtr(r.ColonySettlementName)
	}
	if r.Category != nil {
		h.Category = trimPtr(r.Category)
	}
	if r.MicroPlanNumber != nil {
		h.MicroPlanNumber = trimPtr(r.MicroPlanNumber)
	}
	if r.GramaPanchayat != nil {
		h.GramaPanchayat = trimPtr(r.GramaPanchayat)
	}
	if r.WardNumber != nil {
		h.WardNumber = trimPtr(r.WardNumber)
	}
	if r.HouseNumber != nil {
		h.HouseNumber = trimPtr(r.HouseNumber)
	}
	if r.FamilyMembersCount != nil {
		h.FamilyMembersCount = r.FamilyMembersCount
	}
	if r.RationCardNumber != nil {
		h.RationCardNumber = trimPtr(r.RationCardNumber)
	}
	if r.SurveyDate != nil {
		s := strings.TrimSpace(*r.SurveyDate)
		if d, err := time.Parse("2006-01-02", s); err == nil {
			h.SurveyDate = &d
		} else if d, err := time.Parse(time.RFC3339, s); err == nil {
			h.SurveyDate = &d
		}
	}
}

/* ===================== QUERIES ===================== */

type ListHouseholdsQuery struct {
	Search    string `query:"search"`
	Category  string `query:"category"`
	Panchayat string `query:"panchayat"`
	Hamlet    string `query:"hamlet"`
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
