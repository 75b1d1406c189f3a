package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/makkamasjid/masjid-management-backend/config"
	"github.com/makkamasjid/masjid-management-backend/database"
	_ "github.com/makkamasjid/masjid-management-backend/docs"
	"github.com/makkamasjid/masjid-management-backend/internal/announcement"
	"github.com/makkamasjid/masjid-management-backend/internal/auditlog"
	"github.com/makkamasjid/masjid-management-backend/internal/auth"
	"github.com/makkamasjid/masjid-management-backend/internal/dashboard"
	"github.com/makkamasjid/masjid-management-backend/internal/imam"
	"github.com/makkamasjid/masjid-management-backend/internal/member"
	"github.com/makkamasjid/masjid-management-backend/internal/payment"
	"github.com/makkamasjid/masjid-management-backend/internal/prayertime"
	"github.com/makkamasjid/masjid-management-backend/internal/reports"
	"github.com/makkamasjid/masjid-management-backend/middleware"
)

// Setup wires every component against the shared store and registers routes.
func Setup(r *gin.Engine, cfg *config.Config) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	api.Use(middleware.RateLimiter())
	api.Use(middleware.AuditMiddleware())

	api.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "MAKKA MASJID RIPPONPET - Management System API"})
	})

	// ========== Audit Log ==========
	auditRepo := auditlog.NewRepository(database.DB)
	auditSvc := auditlog.NewService(auditRepo)
	auditHandler := auditlog.NewHandler(auditSvc)

	// ========== Auth ==========
	authRepo := auth.NewRepository(database.DB)
	authSvc := auth.NewService(authRepo, cfg)
	authHandler := auth.NewHandler(authSvc)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/refresh", authHandler.Refresh)
	}

	// ========== Members ==========
	memberRepo := member.NewRepository(database.DB)
	memberSvc := member.NewService(memberRepo, auditSvc)
	memberHandler := member.NewHandler(memberSvc)

	api.POST("/members", memberHandler.CreateMember)
	api.GET("/members", memberHandler.GetMembers)
	api.GET("/members/:id", memberHandler.GetMember)
	api.PUT("/members/:id", memberHandler.UpdateMember)
	api.DELETE("/members/:id", memberHandler.DeleteMember)

	// ========== Payments ==========
	paymentRepo := payment.NewRepository(database.DB)
	paymentSvc := payment.NewService(paymentRepo, memberRepo, cfg, auditSvc)
	paymentHandler := payment.NewHandler(paymentSvc, cfg)

	api.POST("/payments", paymentHandler.CreatePayment)
	api.GET("/payments", paymentHandler.GetPayments)
	api.GET("/payments/member/:id", paymentHandler.GetMemberPayments)
	api.GET("/payments/:id/receipt", paymentHandler.GetReceipt)
	api.POST("/payments/order", paymentHandler.CreateOrder)
	api.POST("/payments/verify", paymentHandler.VerifyPayment)

	// ========== Prayer Times ==========
	prayerRepo := prayertime.NewRepository(database.DB)
	prayerSvc := prayertime.NewService(prayerRepo, prayertime.NewClient(cfg))
	prayerHandler := prayertime.NewHandler(prayerSvc)

	api.GET("/prayer-times", prayerHandler.GetPrayerTimes)

	// ========== Imam ==========
	imamRepo := imam.NewRepository(database.DB)
	imamSvc := imam.NewService(imamRepo, auditSvc)
	imamHandler := imam.NewHandler(imamSvc)

	api.POST("/imam", imamHandler.CreateImam)
	api.GET("/imam", imamHandler.GetActiveImam)
	api.PUT("/imam/:id", imamHandler.UpdateImam)

	// ========== Announcements ==========
	announcementRepo := announcement.NewRepository(database.DB)
	announcementSvc := announcement.NewService(announcementRepo, cfg)
	announcementHandler := announcement.NewHandler(announcementSvc)

	api.POST("/announcements", announcementHandler.CreateAnnouncement)
	api.GET("/announcements", announcementHandler.GetAnnouncements)

	// ========== Dashboard ==========
	dashboardSvc := dashboard.NewService(memberRepo, paymentRepo)
	dashboardHandler := dashboard.NewHandler(dashboardSvc)

	api.GET("/dashboard/stats", dashboardHandler.GetStats)

	// ========== Admin-only: reports and audit logs ==========
	reportsSvc := reports.NewService(memberRepo, paymentRepo)
	reportsHandler := reports.NewHandler(reportsSvc)

	admin := api.Group("/")
	admin.Use(middleware.AuthMiddleware(cfg))
	{
		admin.GET("/reports/members", reportsHandler.ExportMembers)
		admin.GET("/reports/payments", reportsHandler.ExportPayments)
		admin.GET("/auditlogs", auditHandler.GetAuditLogs)
	}
}
