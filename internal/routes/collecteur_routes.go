package routes

import (
	"enquete_peche/internal/controllers"

	"github.com/gin-gonic/gin"
)

func CollecteurRoutes(r *gin.Engine) {
	collecteur := r.Group("/api/collecteur")
	{
		collecteur.GET("", controllers.ListCollecteurs)
		collecteur.GET("/:id", controllers.GetCollecteur)
		collecteur.PUT("/:id", controllers.UpdateCollecteur)
	}

	produit := r.Group("/api/produit-achete")
	{
		produit.POST("", controllers.CreateProduit)
		produit.GET("", controllers.ListProduits)
		produit.GET("/:id", controllers.GetProduit)
		produit.PUT("/:id", controllers.UpdateProduit)
		produit.DELETE("/:id", controllers.DeleteProduit)
	}

	stockage := r.Group("/api/stockage")
	{
		stockage.POST("", controllers.CreateStockage)
		stockage.GET("", controllers.ListStockages)
		stockage.GET("/:id", controllers.GetStockage)
		stockage.PUT("/:id", controllers.UpdateStockage)
		stockage.DELETE("/:id", controllers.DeleteStockage)
	}

	distribution := r.Group("/api/distribution")
	{
		distribution.POST("", controllers.CreateDistribution)
		distribution.GET("", controllers.ListDistributions)
		distribution.GET("/:id", controllers.GetDistribution)
		distribution.PUT("/:id", controllers.UpdateDistribution)
		distribution.DELETE("/:id", controllers.DeleteDistribution)
	}

	contrat := r.Group("/api/contrat_acheteur")
	{
		contrat.POST("", controllers.CreateContrat)
		contrat.GET("", controllers.ListContrats)
		contrat.GET("/:id", controllers.GetContrat)
		contrat.PUT("/:id", controllers.UpdateContrat)
		contrat.DELETE("/:id", controllers.DeleteContrat)
	}
}
