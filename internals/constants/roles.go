package constants

// Fixed role IDs, seeded at deployment time.
const (
	RoleAdmin             uint = 1
	RoleEnumerator        uint = 2
	RoleAnganwadi         uint = 3
	RoleSTPromoter        uint = 4
	RoleASHAWorker        uint = 5
	RolePanchayathOfficer uint = 6
	RoleDistrictOfficer   uint = 7
)

// RoleNames maps role id to its seeded display name.
var RoleNames = map[uint]string{
	RoleAdmin:             "Admin",
	RoleEnumerator:        "Enumerator",
	RoleAnganwadi:         "Anganwadi",
	RoleSTPromoter:        "ST Promoter",
	RoleASHAWorker:        "ASHA Worker",
	RolePanchayathOfficer: "Panchayath Officer",
	RoleDistrictOfficer:   "District Officer",
}

// ==========================
// Grouped role slices
// ==========================
var (
	AllRoles = []uint{
		RoleAdmin,
		RoleEnumerator,
		RoleAnganwadi,
		RoleSTPromoter,
		RoleASHAWorker,
		RolePanchayathOfficer,
		RoleDistrictOfficer,
	}

	AdminOnly = []uint{
		RoleAdmin,
	}

	EnumeratorOnly = []uint{
		RoleEnumerator,
	}

	OfficerRoles = []uint{
		RoleAdmin,
		RolePanchayathOfficer,
		RoleDistrictOfficer,
	}
)

// Reserved identities resolved by the household create fallback chain.
const (
	SystemEnumeratorAlias = "system"
	SystemUserPhone       = "0000000000"
	AdminPlaceholderPhone = "9999999999"
)
