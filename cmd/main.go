package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/makkamasjid/masjid-management-backend/config"
	"github.com/makkamasjid/masjid-management-backend/database"
	"github.com/makkamasjid/masjid-management-backend/internal/announcement"
	"github.com/makkamasjid/masjid-management-backend/internal/auditlog"
	"github.com/makkamasjid/masjid-management-backend/internal/auth"
	"github.com/makkamasjid/masjid-management-backend/internal/imam"
	"github.com/makkamasjid/masjid-management-backend/internal/member"
	"github.com/makkamasjid/masjid-management-backend/internal/payment"
	"github.com/makkamasjid/masjid-management-backend/internal/prayertime"
	"github.com/makkamasjid/masjid-management-backend/routes"
	"github.com/makkamasjid/masjid-management-backend/utils"
)

func main() {
	cfg := config.Load()
	db := database.Connect(cfg)
	defer database.Close()

	// Init Redis (optional, backs the distributed rate limiter)
	if err := utils.InitRedis(); err != nil {
		log.Printf("⚠️ Redis init failed: %v", err)
		log.Println("ℹ️ Continuing with in-memory rate limiting")
	}

	// Init Kafka (optional, announcement events)
	utils.InitializeKafka()
	defer utils.CloseKafka()

	// Init Firebase (optional, announcement push)
	if err := utils.InitFirebase(); err != nil {
		log.Printf("⚠️ Firebase initialization failed: %v", err)
		log.Println("ℹ️ Continuing without Firebase (push notifications will be disabled)")
	} else if utils.IsFCMEnabled() {
		log.Println("✅ Firebase and FCM initialized successfully")
	}

	// Auto-migrate models
	log.Println("🔄 Running database migrations...")
	if err := db.AutoMigrate(
		&member.Member{},
		&payment.Payment{},
		&prayertime.PrayerTimes{},
		&imam.Imam{},
		&announcement.Announcement{},
		&auth.Admin{},
		&auditlog.AuditLog{},
	); err != nil {
		panic(fmt.Sprintf("❌ DB AutoMigrate failed: %v", err))
	}
	log.Println("✅ Database migrations completed")

	// Seed the management login
	if err := auth.SeedAdminUser(db, cfg); err != nil {
		panic(fmt.Sprintf("❌ Failed to seed admin user: %v", err))
	}

	// Setup Gin router
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Cross-origin requests are universally permitted
	router.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(origin string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "Content-Length", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.Setup(router, cfg)

	fmt.Printf("🚀 Server starting on port %s\n", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		panic(fmt.Sprintf("Failed to start server: %v", err))
	}
}
