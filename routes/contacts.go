package routes

import (
	"github.com/aditbhattarai/Adit-ko-website/db"
	"github.com/aditbhattarai/Adit-ko-website/handlers/contacts"

	"github.com/gin-gonic/gin"
)

func ContactsRoutes(r *gin.Engine, admin *gin.RouterGroup, store *db.Store, notifier contacts.Notifier) {
	handler := contacts.NewHandler(store, notifier)

	r.POST("/api/contact", handler.Create)

	admin.GET("/contacts", handler.GetAll)
	admin.GET("/contacts/:id", handler.GetByID)
	admin.DELETE("/contacts/:id", handler.Delete)
}
