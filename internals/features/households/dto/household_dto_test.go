package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "thunai_backend/internals/features/households/model"
)

func TestParseCreateHouseholdRequestLiftsCollections(t *testing.T) {
	body := []byte(`{
		"household_head_name": "Raman",
		"hamlet_id": 3,
		"category": "ST",
		"members": [
			{"name": "Raman", "relationship": "Head"},
			{"name": "Kala", "relationship": "Wife"}
		],
		"sanitation_facilities": [{"toilet": "Yes"}],
		"land_assets": [],
		"health_conditions": null
	}`)

	req, err := ParseCreateHouseholdRequest(body)
	require.NoError(t, err)

	assert.Equal(t, "Raman", req.HouseholdHeadName)
	require.NotNil(t, req.HamletID)
	assert.Equal(t, uint(3), *req.HamletID)

	assert.Len(t, req.Collections["members"], 2)
	assert.Len(t, req.Collections["sanitation_facilities"], 1)
	// empty arrays and nulls never register as collections
	assert.NotContains(t, req.Collections, "land_assets")
	assert.NotContains(t, req.Collections, "health_conditions")
}

func TestParseCreateHouseholdRequestMalformed(t *testing.T) {
	_, err := ParseCreateHouseholdRequest([]byte(`{"household_head_name": `))
	assert.Error(t, err)
}

func TestMissingRequired(t *testing.T) {
	req := &CreateHouseholdRequest{}
	assert.Equal(t, []string{"household_head_name", "hamlet_id"}, req.MissingRequired())

	hamlet := uint(1)
	req = &CreateHouseholdRequest{HouseholdHeadName: "  ", HamletID: &hamlet}
	assert.Equal(t, []string{"household_head_name"}, req.MissingRequired())

	req = &CreateHouseholdRequest{HouseholdHeadName: "Raman", HamletID: &hamlet}
	assert.Empty(t, req.MissingRequired())
}

func TestAttachCollectionsDecodesNormalizedMembers(t *testing.T) {
	body := []byte(`{
		"household_head_name": "Raman",
		"hamlet_id": 1,
		"members": [
			{"name": "Kala", "relationship": "Wife", "bank_account": "Yes", "age": 34}
		]
	}`)
	req, err := ParseCreateHouseholdRequest(body)
	require.NoError(t, err)

	h := req.ToModel()
	require.NoError(t, req.AttachCollections(h))

	require.Len(t, h.Members, 1)
	m := h.Members[0]
	assert.Equal(t, "Kala", m.Name)
	require.NotNil(t, m.RelationToHead)
	assert.Equal(t, "Wife", *m.RelationToHead)
	assert.True(t, m.BankAccount)
}

func TestToModelTrimsAndParsesSurveyDate(t *testing.T) {
	addr := "  Muttil PO  "
	date := "2024-03-10"
	req := &CreateHouseholdRequest{
		HouseholdHeadName: " Raman ",
		Address:           &addr,
		SurveyDate:        &date,
	}

	h := req.ToModel()
	assert.Equal(t, "Raman", h.HouseholdHeadName)
	require.NotNil(t, h.Address)
	assert.Equal(t, "Muttil PO", *h.Address)
	require.NotNil(t, h.SurveyDate)
	assert.Equal(t, "2024-03-10", h.SurveyDate.Format("2006-01-02"))
}

func TestApplyToModelAcceptsBothSurveyDateFormats(t *testing.T) {
	for _, raw := range []string{"2024-03-10", "2024-03-10T00:00:00Z"} {
		h := &model.HouseholdModel{}
		req := &UpdateHouseholdRequest{SurveyDate: &raw}
		req.ApplyToModel(h)
		require.NotNil(t, h.SurveyDate, "format %q", raw)
		assert.Equal(t, "2024-03-10", h.SurveyDate.Format("2006-01-02"))
	}
}

func TestApplyToModelPartialUpdate(t *testing.T) {
	cat := "ST"
	h := &model.HouseholdModel{HouseholdHeadName: "Raman", Category: &cat}

	name := "Kumaran"
	req := &UpdateHouseholdRequest{HouseholdHeadName: &name}
	req.ApplyToModel(h)

	assert.Equal(t, "Kumaran", h.HouseholdHeadName)
	require.NotNil(t, h.Category)
	assert.Equal(t, "ST", *h.Category)
}
