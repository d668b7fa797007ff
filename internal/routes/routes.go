package routes

import (
	"github.com/gin-gonic/gin"
)

// Register attaches every resource family to the engine. Middleware must be
// added by the caller before this runs.
func Register(r *gin.Engine) {
	GeographieRoutes(r)
	EnqueteRoutes(r)
	PecheurRoutes(r)
	CollecteurRoutes(r)
	StatRoutes(r)
}

// SetupRouter builds a bare engine with all routes, used by the tests.
func SetupRouter() *gin.Engine {
	r := gin.New()
	Register(r)
	return r
}
