package routes

import (
	"enquete_peche/internal/controllers"

	"github.com/gin-gonic/gin"
)

func StatRoutes(r *gin.Engine) {
	r.GET("/api/stat", controllers.GetStats)
}
