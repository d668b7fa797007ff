package routes

import (
	"enquete_peche/internal/controllers"

	"github.com/gin-gonic/gin"
)

func GeographieRoutes(r *gin.Engine) {
	region := r.Group("/api/region")
	{
		region.POST("", controllers.CreateRegion)
		region.GET("", controllers.ListRegions)
		region.GET("/:id", controllers.GetRegion)
		region.PUT("/:id", controllers.UpdateRegion)
		region.DELETE("/:id", controllers.DeleteRegion)
	}

	district := r.Group("/api/district")
	{
		district.POST("", controllers.CreateDistrict)
		district.GET("", controllers.ListDistricts)
		district.GET("/:id", controllers.GetDistrict)
		district.PUT("/:id", controllers.UpdateDistrict)
		district.DELETE("/:id", controllers.DeleteDistrict)
	}

	commune := r.Group("/api/commune")
	{
		commune.POST("", controllers.CreateCommune)
		commune.GET("", controllers.ListCommunes)
		commune.GET("/:id", controllers.GetCommune)
		commune.PUT("/:id", controllers.UpdateCommune)
		commune.DELETE("/:id", controllers.DeleteCommune)
	}

	fokontany := r.Group("/api/fokontany")
	{
		fokontany.POST("", controllers.CreateFokontany)
		fokontany.GET("", controllers.ListFokontany)
		fokontany.GET("/:id", controllers.GetFokontany)
		fokontany.PUT("/:id", controllers.UpdateFokontany)
		fokontany.DELETE("/:id", controllers.DeleteFokontany)
	}

	secteur := r.Group("/api/secteur")
	{
		secteur.POST("", controllers.CreateSecteur)
		secteur.GET("", controllers.ListSecteurs)
		secteur.GET("/:id", controllers.GetSecteur)
		secteur.PUT("/:id", controllers.UpdateSecteur)
		secteur.DELETE("/:id", controllers.DeleteSecteur)
	}
}
