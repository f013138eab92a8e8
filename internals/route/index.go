package routes

import (
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"thunai_backend/internals/constants"
	auditController "thunai_backend/internals/features/audit/controller"
	dashboardController "thunai_backend/internals/features/dashboard/controller"
	householdController "thunai_backend/internals/features/households/controller"
	"thunai_backend/internals/features/households/details"
	locationController "thunai_backend/internals/features/locations/controller"
	authController "thunai_backend/internals/features/users/auth/controller"
	userController "thunai_backend/internals/features/users/users/controller"
	"thunai_backend/internals/middlewares"
	authMw "thunai_backend/internals/middlewares/auth"
)

// SetupRoutes wires the full HTTP surface. Household access is deliberately
// asymmetric: reads are public, create is Enumerator-only, update/delete need
// auth + Enumerator role. This mirrors the deployed access policy.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")
	requireAuth := authMw.AuthMiddleware(db)

	// ===================== AUTH =====================
	log.Info("setting up auth routes")
	auth := api.Group("/auth")
	ac := authController.NewAuthController(db)
	auth.Post("/register", middlewares.RegisterRateLimiter(), ac.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ac.Login)
	auth.Get("/verify", ac.Verify)

	// ===================== LOCATIONS (public lookups) =====================
	lc := locationController.NewLocationController(db)
	locations := api.Group("/locations")
	locations.Get("/districts", lc.Districts)
	locations.Get("/blocks", lc.Blocks)
	locations.Get("/panchayats", lc.Panchayats)
	locations.Get("/hamlets", lc.Hamlets)

	// ===================== HOUSEHOLDS =====================
	log.Info("setting up household routes")
	hc := householdController.NewHouseholdController(db)
	households := api.Group("/households")
	households.Get("/", hc.List)
	households.Get("/:id", hc.GetByID)
	households.Post("/",
		requireAuth,
		authMw.OnlyRoles("Only enumerators can submit household surveys", constants.EnumeratorOnly...),
		hc.Create,
	)
	households.Put("/:id",
		requireAuth,
		authMw.OnlyRoles("Only enumerators can modify household surveys", constants.EnumeratorOnly...),
		hc.Update,
	)
	households.Delete("/:id",
		requireAuth,
		authMw.OnlyRoles("Only enumerators can delete household surveys", constants.EnumeratorOnly...),
		hc.Delete,
	)

	// ===================== MEMBERS =====================
	mc := householdController.NewMemberController(db)
	members := api.Group("/members", requireAuth)
	members.Get("/", mc.List)
	members.Get("/:id", mc.GetByID)
	members.Post("/", mc.Create)
	members.Put("/:id", mc.Update)
	members.Delete("/:id", mc.Delete)

	// ===================== DETAIL COLLECTIONS =====================
	log.Info("setting up detail-collection routes")
	details.RegisterAll(api, db, requireAuth)

	// ===================== DASHBOARD =====================
	dc := dashboardController.NewDashboardController(db)
	dashboard := api.Group("/dashboard")
	dashboard.Get("/stats", dc.Stats)
	dashboard.Get("/reports", requireAuth, dc.Reports)
	dashboard.Get("/export/excel", requireAuth, dc.ExportExcel)
	dashboard.Get("/export/pdf", requireAuth, dc.ExportPDF)

	// ===================== ADMIN =====================
	uc := userController.NewUserController(db)
	users := api.Group("/users",
		requireAuth,
		authMw.OnlyRoles("Only admins can manage users", constants.AdminOnly...),
	)
	users.Get("/", uc.List)
	users.Put("/:id/status", uc.SetStatus)

	audc := auditController.NewAuditController(db)
	api.Get("/audit-logs",
		requireAuth,
		authMw.OnlyRoles("Only admins can read audit logs", constants.AdminOnly...),
		audc.List,
	)
}
