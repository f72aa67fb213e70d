package api

import (
	"log"
	stdhttp "net/http"

	"github.com/gin-gonic/gin"

	intconfig "github.com/koard/DukeFarm-Admin-sub000/internal/config"
	"github.com/koard/DukeFarm-Admin-sub000/internal/domain/models"
	h "github.com/koard/DukeFarm-Admin-sub000/internal/http/handlers"
	"github.com/koard/DukeFarm-Admin-sub000/internal/http/middleware"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	h.ConfigureAuth(env.JWTSecret, env.TokenTTL)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.OPTIONS("/*path", func(c *gin.Context) { c.AbortWithStatus(stdhttp.StatusNoContent) })

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"message": "ไม่พบเส้นทางที่เรียก",
			"path":    c.Request.URL.Path,
			"method":  c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/admin/login", h.AdminLogin)
		auth.GET("/me", middleware.RequireAuth(h.JWTSecret()), h.Me)

		authed := api.Group("")
		authed.Use(middleware.RequireAuth(h.JWTSecret()))

		// Farmers
		farmers := authed.Group("/farmers")
		farmers.GET("", h.GetFarmers)
		farmers.GET("/:id", h.GetFarmerByID)
		farmers.POST("", h.CreateFarmer)
		farmers.PUT("/:id", h.UpdateFarmer)
		farmers.DELETE("/:id", h.DeleteFarmer)

		// Researchers
		researchers := authed.Group("/researchers")
		researchers.GET("", h.GetResearchers)
		researchers.GET("/:id", h.GetResearcherByID)
		researchers.POST("", h.CreateResearcher)
		researchers.PUT("/:id", h.UpdateResearcher)
		researchers.DELETE("/:id", h.DeleteResearcher)

		// Admin accounts (superadmin only)
		admins := authed.Group("/admins")
		admins.Use(middleware.RequireRoles(models.RoleSuperadmin))
		admins.GET("", h.GetAdmins)
		admins.GET("/:id", h.GetAdminByID)
		admins.POST("", h.CreateAdmin)
		admins.PUT("/:id", h.UpdateAdmin)
		admins.DELETE("/:id", h.DeleteAdmin)

		// Roles (superadmin only)
		roles := authed.Group("/roles")
		roles.Use(middleware.RequireRoles(models.RoleSuperadmin))
		roles.GET("", h.GetRoles)
		roles.POST("", h.CreateRole)
		roles.PUT("/:id", h.UpdateRole)
		roles.DELETE("/:id", h.DeleteRole)

		// Feed formulas
		formulas := authed.Group("/feed-formulas")
		formulas.GET("", h.GetFeedFormulas)
		formulas.GET("/:id", h.GetFeedFormulaByID)
		formulas.POST("", h.CreateFeedFormula)
		formulas.PUT("/:id", h.UpdateFeedFormula)
		formulas.DELETE("/:id", h.DeleteFeedFormula)
		formulas.GET("/:id/sheet", h.GetFeedFormulaSheet)

		// Farm activity records
		records := authed.Group("/records")
		records.GET("", h.GetRecords)
		records.GET("/form-state", h.GetRecordFormState)
		records.GET("/:id", h.GetRecordByID)
		records.POST("", h.CreateRecord)
		records.PUT("/:id", h.UpdateRecord)
		records.DELETE("/:id", h.DeleteRecord)

		// Pond production cycles
		ponds := authed.Group("/ponds")
		ponds.GET("/:id/active-cycle", h.GetActiveCycle)
		ponds.GET("/:id/cycles", h.GetCycles)
		ponds.GET("/:id/cycle-count", h.GetCycleCount)
		ponds.POST("/:id/start-cycle", h.StartCycle)
		ponds.POST("/:id/end-cycle", h.EndCycle)

		// Dashboard
		dashboard := authed.Group("/dashboard")
		dashboard.GET("/groups/:groupType", h.GetDashboardGroups)
	}

	return r
}
