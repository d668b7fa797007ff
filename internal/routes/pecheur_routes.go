package routes

import (
	"enquete_peche/internal/controllers"

	"github.com/gin-gonic/gin"
)

func PecheurRoutes(r *gin.Engine) {
	pecheur := r.Group("/api/pecheur")
	{
		pecheur.GET("", controllers.ListPecheurs)
		pecheur.GET("/:id", controllers.GetPecheur)
		pecheur.PUT("/:id", controllers.UpdatePecheur)
	}

	pratique := r.Group("/api/activite_peche")
	{
		pratique.POST("", controllers.CreatePratique)
		pratique.GET("", controllers.ListPratiques)
		pratique.GET("/:id", controllers.GetPratique)
		pratique.PUT("/:id", controllers.UpdatePratique)
		pratique.DELETE("/:id", controllers.DeletePratique)
	}

	equipement := r.Group("/api/equip_peche")
	{
		equipement.POST("", controllers.CreateEquipement)
		equipement.GET("", controllers.ListEquipements)
		equipement.GET("/:id", controllers.GetEquipement)
		equipement.PUT("/:id", controllers.UpdateEquipement)
		equipement.DELETE("/:id", controllers.DeleteEquipement)
	}

	embarcation := r.Group("/api/embarc_peche")
	{
		embarcation.POST("", controllers.CreateEmbarcation)
		embarcation.GET("", controllers.ListEmbarcations)
		embarcation.GET("/:id", controllers.GetEmbarcation)
		embarcation.PUT("/:id", controllers.UpdateEmbarcation)
		embarcation.DELETE("/:id", controllers.DeleteEmbarcation)
	}

	circuit := r.Group("/api/circ_commerc")
	{
		circuit.POST("", controllers.CreateCircuit)
		circuit.GET("", controllers.ListCircuits)
		circuit.GET("/:id", controllers.GetCircuit)
		circuit.PUT("/:id", controllers.UpdateCircuit)
		circuit.DELETE("/:id", controllers.DeleteCircuit)
	}
}
