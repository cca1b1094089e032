package main

import (
	"errors"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/mookistore/vapeshop-api/auth"
	"github.com/mookistore/vapeshop-api/config"
	"github.com/mookistore/vapeshop-api/middleware"
	"github.com/mookistore/vapeshop-api/models"
	"github.com/mookistore/vapeshop-api/routes"
)

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cfg := config.Load()

	db := initDatabase(cfg, log)

	if err := db.AutoMigrate(
		&models.Product{},
		&models.CartSession{},
		&models.Order{},
		&models.OrderItem{},
		&models.ContactMessage{},
		&models.Admin{},
	); err != nil {
		log.Fatal("automigrate failed", zap.Error(err))
	}

	seedDefaults(db, log)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigins},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Session-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.SetupRoutes(r, db, log, cfg.JWTSecret)

	log.Info("server starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("server failed", zap.Error(err))
	}
}

// initDatabase sets up the GORM DB connection.
func initDatabase(cfg config.Config, log *zap.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatal("db connection failed", zap.Error(err))
	}
	return db
}

// seedDefaults creates the featured product and the bootstrap admin account
// on first run so a fresh deployment is immediately usable.
func seedDefaults(db *gorm.DB, log *zap.Logger) {
	var product models.Product
	if err := db.First(&product).Error; errors.Is(err, gorm.ErrRecordNotFound) {
		product = models.Product{
			ID:               uuid.NewString(),
			Name:             "Strawberry Punch",
			Flavor:           "Strawberry Punch",
			NicotineStrength: "5%",
			Price:            29.99,
			Stock:            100,
			IsAvailable:      true,
			Description:      "Premium vape with refreshing strawberry punch flavor",
			CreatedAt:        time.Now().UTC(),
		}
		if err := db.Create(&product).Error; err != nil {
			log.Error("failed to seed default product", zap.Error(err))
		} else {
			log.Info("default product created", zap.String("id", product.ID))
		}
	}

	var admin models.Admin
	if err := db.First(&admin).Error; errors.Is(err, gorm.ErrRecordNotFound) {
		hash, err := auth.HashPassword("admin123")
		if err != nil {
			log.Error("failed to hash bootstrap admin password", zap.Error(err))
			return
		}
		admin = models.Admin{
			ID:           uuid.NewString(),
			Username:     "admin",
			PasswordHash: hash,
			CreatedAt:    time.Now().UTC(),
		}
		if err := db.Create(&admin).Error; err != nil {
			log.Error("failed to seed bootstrap admin", zap.Error(err))
		} else {
			log.Info("bootstrap admin created", zap.String("username", admin.Username))
		}
	}
}
