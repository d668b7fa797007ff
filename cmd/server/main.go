package main

import (
	"log"
	"net/http"
	"os"

	"enquete_peche/internal/config"
	"enquete_peche/internal/logger"
	"enquete_peche/internal/middleware"
	"enquete_peche/internal/routes"

	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	// Connect to the database
	config.InitDB()

	// Middleware first so every route gets it
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(ginlog.SetLogger())

	routes.Register(r)

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("🚀 Server running at :%s", port)
	log.Fatal(http.ListenAndServe("0.0.0.0:"+port, handler))
}
