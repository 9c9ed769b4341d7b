package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/cvaldebenito/serviapp-backend/internal/cache"
	"github.com/cvaldebenito/serviapp-backend/internal/config"
	"github.com/cvaldebenito/serviapp-backend/internal/db"
	"github.com/cvaldebenito/serviapp-backend/internal/models"
	"github.com/cvaldebenito/serviapp-backend/internal/router"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	gdb, err := db.Connect(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	if err := gdb.AutoMigrate(
		&models.User{},
		&models.Employer{},
		&models.Provider{},
		&models.Region{},
		&models.Comuna{},
		&models.Category{},
		&models.Request{},
		&models.Offer{},
		&models.Contract{},
		&models.Review{},
	); err != nil {
		log.Fatal(err)
	}

	rc := cache.New(cfg.RedisAddr, cfg.RedisPassword)
	if rc != nil {
		if err := rc.Ping(context.Background()); err != nil {
			log.Printf("redis unavailable, serving without cache: %v", err)
			rc = nil
		}
	}

	app := router.New(gdb, rc, cfg)

	log.Fatal(app.Listen(":" + cfg.AppPort))
}
