package routes

import (
	"enquete_peche/internal/controllers"

	"github.com/gin-gonic/gin"
)

func EnqueteRoutes(r *gin.Engine) {
	enqueteur := r.Group("/api/enqueteur")
	{
		enqueteur.POST("", controllers.CreateEnqueteur)
		enqueteur.GET("", controllers.ListEnqueteurs)
		enqueteur.GET("/:id", controllers.GetEnqueteur)
		enqueteur.PUT("/:id", controllers.UpdateEnqueteur)
		enqueteur.DELETE("/:id", controllers.DeleteEnqueteur)
	}

	enquete := r.Group("/api/enquete_famille")
	{
		enquete.POST("", controllers.CreateEnquete)
		enquete.GET("", controllers.ListEnquetes)
		enquete.GET("/:id", controllers.GetEnquete)
		enquete.PUT("/:id", controllers.UpdateEnquete)
		enquete.DELETE("/:id", controllers.DeleteEnquete)
	}

	activite := r.Group("/api/activite_eco")
	{
		activite.POST("", controllers.CreateActiviteEco)
		activite.GET("", controllers.ListActivitesEco)
		activite.GET("/:id", controllers.GetActiviteEco)
		activite.PUT("/:id", controllers.UpdateActiviteEco)
		activite.DELETE("/:id", controllers.DeleteActiviteEco)
	}
}
