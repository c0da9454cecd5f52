package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/AHMADJAN-New/nazim-web-sub011/config"
	"github.com/AHMADJAN-New/nazim-web-sub011/handlers"
	"github.com/AHMADJAN-New/nazim-web-sub011/middlewares"
)

// Register wires all HTTP routes.
func Register(e *echo.Echo, cfg *config.Config) {
	// ===== Handlers (shared singletons) =====
	auth := handlers.NewAuthHandler(cfg.JWTSecret)
	form := handlers.NewAdmissionFormHandler(cfg)
	fields := handlers.NewAdmissionFieldHandler()
	adm := handlers.NewAdmissionHandler()
	std := handlers.NewStudentHandler()
	school := handlers.NewSchoolHandler()
	periods := handlers.NewPeriodHandler()
	users := handlers.NewUserAccountHandler()
	uploads := handlers.NewUploadHandler(cfg)
	dash := handlers.NewDashboardHandler()
	auditLog := handlers.NewAuditHandler()

	// ===== Public =====
	e.GET("/health", handlers.Health)
	e.POST("/auth/staff/login", auth.StaffLogin)

	// Public admissions form: schema + submission intake
	e.GET("/admissions/form", form.GetForm)
	e.POST("/admissions", form.Submit)

	// ===== Protected groups =====
	authMW := middlewares.RequireAuth(cfg.JWTSecret)

	// Moderation is open to staff and admins.
	mod := e.Group("/admin", authMW, middlewares.RequireRole("staff", "admin"))
	mod.GET("/admissions", adm.List)
	mod.GET("/admissions/:id", adm.Get)
	mod.PATCH("/admissions/:id", adm.Patch)
	mod.POST("/admissions/:id/accept", adm.Accept)
	mod.GET("/dashboard/summary", dash.Summary)
	mod.PUT("/profile/password", users.ChangePassword)
	mod.POST("/uploads", uploads.Upload)

	// Everything else under /admin is admin-only.
	admin := e.Group("/admin", authMW, middlewares.RequireRole("admin"))

	admin.GET("/admission-fields", fields.List)
	admin.POST("/admission-fields", fields.Create)
	admin.PUT("/admission-fields/:id", fields.Update)
	admin.DELETE("/admission-fields/:id", fields.Delete)

	admin.GET("/admission-periods", periods.List)
	admin.POST("/admission-periods", periods.Create)
	admin.PUT("/admission-periods/:id", periods.Update)
	admin.DELETE("/admission-periods/:id", periods.Delete)

	admin.GET("/students", std.List)
	admin.GET("/students/:id", std.Get)
	admin.POST("/students", std.Create)
	admin.PUT("/students/:id", std.Update)
	admin.DELETE("/students/:id", std.Delete)

	admin.GET("/school", school.Get)
	admin.POST("/school", school.CreateOrUpdate)

	admin.GET("/users", users.List)
	admin.POST("/users", users.Create)
	admin.POST("/users/:id/reset", users.ResetPassword)
	admin.PATCH("/users/:id", users.Patch)

	admin.GET("/audit-logs", auditLog.List)
}
