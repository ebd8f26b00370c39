package routes

import (
	"github.com/aditbhattarai/Adit-ko-website/db"
	"github.com/aditbhattarai/Adit-ko-website/handlers/visits"

	"github.com/gin-gonic/gin"
)

func VisitsRoutes(r *gin.Engine, admin *gin.RouterGroup, store *db.Store) {
	handler := visits.NewHandler(store)

	r.POST("/api/track-visit", handler.Track)

	admin.GET("/stats", handler.Stats)
}
