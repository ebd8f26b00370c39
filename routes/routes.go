package routes

import (
	"time"

	"github.com/aditbhattarai/Adit-ko-website/db"
	"github.com/aditbhattarai/Adit-ko-website/handlers/contacts"
	"github.com/aditbhattarai/Adit-ko-website/middleware"
	"github.com/aditbhattarai/Adit-ko-website/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter wires every endpoint of the site: the public contact and
// tracking APIs, the admin surface, swagger, and the static entry page.
func SetupRouter(store *db.Store, notifier contacts.Notifier) *gin.Engine {
	r := gin.New()
	r.Use(gin.LoggerWithWriter(utils.LogWriter()))
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", "X-Admin-Key"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// The admin surface shares one access-control boundary.
	admin := r.Group("/api", middleware.AdminKey())

	ContactsRoutes(r, admin, store, notifier)
	VisitsRoutes(r, admin, store)
	StaticRoutes(r)

	return r
}

// StaticRoutes serves the portfolio page itself.
func StaticRoutes(r *gin.Engine) {
	r.StaticFile("/", "./static/index.html")
	r.StaticFile("/script.js", "./static/script.js")
	r.StaticFile("/styles.css", "./static/styles.css")
}
