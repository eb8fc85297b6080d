package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"miledesigns/admin"
	"miledesigns/auth"
	"miledesigns/common"
	"miledesigns/consultant"
	"miledesigns/content"
	"miledesigns/database"
	"miledesigns/editor"
	"miledesigns/email"
	"miledesigns/site"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	db := common.ConnectDb()
	if db == nil {
		log.Fatal("Failed to connect to database")
	}

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	router := gin.Default()

	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		log.Fatal("SESSION_SECRET environment variable not set")
	}

	store := cookie.NewStore([]byte(sessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		Secure:   false,
	})

	router.Use(sessions.Sessions("miledesigns-session", store))

	mailService := email.NewService()
	authModule := auth.NewModule(db, mailService)
	if err := authModule.EnsureAdmin(context.Background(), os.Getenv("ADMIN_EMAIL"), os.Getenv("ADMIN_PASSWORD")); err != nil {
		log.Fatal("Failed to seed admin login:", err)
	}

	contentStore := content.NewStore(db)
	session := editor.NewSession(contentStore, authModule)

	adminModule := admin.NewModule(authModule, session)
	adminModule.RegisterRoutes(router)

	siteModule := site.NewModule(contentStore)
	siteModule.RegisterRoutes(router)

	consultantModule := consultant.NewModule(os.Getenv("OPENAI_API_KEY"))
	consultantModule.RegisterRoutes(router)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting server on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
