package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"thunai_backend/internals/constants"
	"thunai_backend/internals/features/households/dto"
	model "thunai_backend/internals/features/households/model"
	userModel "thunai_backend/internals/features/users/users/model"
	helper "thunai_backend/internals/helpers"
)

var (
	ErrHouseholdNotFound      = errors.New("household not found")
	ErrEnumeratorUnresolvable = errors.New("unable to resolve system enumerator")
)

// preloadAll lists the child collections loaded unfiltered on a
// single-household read. Members is not here: it carries a soft-delete flag
// and must be preloaded with the is_deleted filter on every read path.
var preloadAll = []string{
	"Hamlet", "Hamlet.Panchayat",
	"MigrantWorkers", "LandAssets", "GovtSchemeHouses", "ExitWishHouses",
	"HousingDetails", "SanitationFacilities", "WaterSources", "WasteManagement",
	"TransportationFacilities", "PhoneConnectivity", "PublicInstitutions",
	"HealthConditions", "Diseases", "HealthInsurance", "ChildGroups",
	"ChildHealthStatuses", "MalnutritionRecords", "NutritionAccess",
	"AgriculturalLand", "CultivationMode", "TraditionalFarming",
	"LivestockDetails", "FoodConsumption", "CashCrops", "ForestResources",
	"SocialIssues", "WageEmployment", "LivelihoodOpportunities", "ArtsSports",
	"EducationDetails", "EmploymentDetails", "Entitlements", "AdditionalInfo",
}

type HouseholdService struct {
	DB *gorm.DB
}

func NewHouseholdService(db *gorm.DB) *HouseholdService {
	return &HouseholdService{DB: db}
}

// ResolveEnumerator maps the client-supplied enumerator identifier to a user
// id. A reserved placeholder (or any non-UUID value) falls back to the seeded
// system user, then to the admin placeholder.
func (s *HouseholdService) ResolveEnumerator(raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw != "" && raw != constants.SystemEnumeratorAlias {
		if id, err := uuid.Parse(raw); err == nil {
			return id, nil
		}
	}

	for _, phone := range []string{constants.SystemUserPhone, constants.AdminPlaceholderPhone} {
		var u userModel.UserModel
		err := s.DB.Where("phone_number = ?", phone).First(&u).Error
		if err == nil {
			return u.UserID, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, err
		}
	}
	return uuid.Nil, ErrEnumeratorUnresolvable
}

// Create persists the household and every present child collection as one
// nested write. The request is expected to be already parsed; normalization
// of legacy field shapes happens in AttachCollections.
func (s *HouseholdService) Create(req *dto.CreateHouseholdRequest) (*model.HouseholdModel, error) {
	enumeratorID, err := s.ResolveEnumerator(req.EnumeratorID)
	if err != nil {
		return nil, err
	}

	h := req.ToModel()
	h.EnumeratorID = enumeratorID
	if err := req.AttachCollections(h); err != nil {
		return nil, fmt.Errorf("mapping child collections: %w", err)
	}

	// GORM FullSaveAssociations is not needed: a plain Create on the root
	// inserts every attached child row inside one transaction.
	if err := s.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(h).Error
	}); err != nil {
		return nil, err
	}

	// Return the created aggregate with members and hamlet eagerly loaded.
	var created model.HouseholdModel
	if err := s.DB.
		Preload("Members", "is_deleted = ?", false).
		Preload("Hamlet").
		First(&created, "household_id = ?", h.HouseholdID).Error; err != nil {
		return nil, err
	}
	if created.Members == nil {
		created.Members = []model.MemberModel{}
	}
	return &created, nil
}

// Read loads one household with all child collections attached.
func (s *HouseholdService) Read(id uuid.UUID) (*model.HouseholdModel, error) {
	q := s.DB.Where("household_id = ? AND is_deleted = ?", id, false).
		Preload("Members", "is_deleted = ?", false)
	for _, assoc := range preloadAll {
		q = q.Preload(assoc)
	}

	var h model.HouseholdModel
	if err := q.First(&h).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHouseholdNotFound
		}
		return nil, err
	}
	if h.Members == nil {
		h.Members = []model.MemberModel{}
	}
	return &h, nil
}

// List returns a filtered, paginated page ordered by creation time descending.
// Search is a case-insensitive substring match over head name, address,
// ration card number and grama panchayat.
func (s *HouseholdService) List(p helper.Params, q dto.ListHouseholdsQuery) ([]model.HouseholdModel, int64, error) {
	base := s.DB.Model(&model.HouseholdModel{}).Where("is_deleted = ?", false)

	if search := strings.TrimSpace(q.Search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		base = base.Where(
			"LOWER(household_head_name) LIKE ? OR LOWER(COALESCE(address, '')) LIKE ? OR LOWER(COALESCE(ration_card_number, '')) LIKE ? OR LOWER(COALESCE(grama_panchayat, '')) LIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}
	if q.Category != "" {
		base = base.Where("category = ?", q.Category)
	}
	if q.Panchayat != "" {
		base = base.Where("grama_panchayat = ?", q.Panchayat)
	}
	if q.Hamlet != "" {
		base = base.Where("hamlet_id = ?", q.Hamlet)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []model.HouseholdModel
	if err := base.
		Preload("Hamlet").
		Preload("Members", "is_deleted = ?", false).
		Order("created_at DESC").
		Limit(p.Limit).
		Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// Update merges the supplied fields into an existing household.
func (s *HouseholdService) Update(id uuid.UUID, req *dto.UpdateHouseholdRequest) (*model.HouseholdModel, error) {
	var h model.HouseholdModel
	if err := s.DB.Where("household_id = ? AND is_deleted = ?", id, false).First(&h).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHouseholdNotFound
		}
		return nil, err
	}

	req.ApplyToModel(&h)
	h.UpdatedAt = time.Now()
	if err := s.DB.Save(&h).Error; err != nil {
		return nil, err
	}
	return &h, nil
}

// SoftDelete flips the delete flag; child rows are left in place.
func (s *HouseholdService) SoftDelete(id uuid.UUID) error {
	res := s.DB.Model(&model.HouseholdModel{}).
		Where("household_id = ? AND is_deleted = ?", id, false).
		Updates(map[string]interface{}{
			"is_deleted": true,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrHouseholdNotFound
	}
	log.WithField("household_id", id).Info("household soft-deleted")
	return nil
}
