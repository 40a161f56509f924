package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"weddingwall/internal/config"
	"weddingwall/internal/database"
	"weddingwall/internal/domain/admin"
	"weddingwall/internal/domain/contact"
	"weddingwall/internal/domain/gallery"
	"weddingwall/internal/domain/upload"
	"weddingwall/internal/middleware"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := db.AutoMigrate(&upload.Upload{}, &contact.Contact{}); err != nil {
		log.Fatal(err)
	}

	store := upload.NewStore(cfg.UploadDir)

	uploadRepo := upload.NewRepository(db)
	uploadService := upload.NewService(uploadRepo, store)
	uploadHandler := upload.NewHandler(uploadService, store)

	contactRepo := contact.NewRepository(db)
	contactService := contact.NewService(contactRepo)
	contactHandler := contact.NewHandler(contactService)

	adminService := admin.NewService(uploadRepo, contactRepo)
	adminHandler := admin.NewHandler(adminService)

	galleryService := gallery.NewService(uploadRepo)
	galleryHandler := gallery.NewHandler(galleryService)

	r := gin.New()
	r.Use(gin.Logger(), middleware.ErrorLogger(), middleware.CORS())

	root := r.Group("")
	upload.RegisterRoutes(root, uploadHandler)
	contact.RegisterRoutes(root, contactHandler)
	admin.RegisterRoutes(root, adminHandler)
	gallery.RegisterRoutes(root, galleryHandler)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
