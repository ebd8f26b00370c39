package visits

import (
	"net/http"

	"github.com/aditbhattarai/Adit-ko-website/db"
	"github.com/aditbhattarai/Adit-ko-website/models"
	"github.com/aditbhattarai/Adit-ko-website/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

const recentVisitsLimit = 10

// Handler serves visit tracking and the aggregate statistics endpoint.
type Handler struct {
	store *db.Store
}

func NewHandler(store *db.Store) *Handler {
	return &Handler{store: store}
}

// @Summary Track a page view
// @Description Record a visit with the caller's address, user agent and page. Always succeeds from the visitor's point of view.
// @Tags visits
// @Accept json
// @Produce json
// @Param visit body models.VisitCreate false "Visited page, defaults to /"
// @Success 200 {object} utils.Response
// @Router /api/track-visit [post]
func (h *Handler) Track(c *gin.Context) {
	var input models.VisitCreate
	// The body is optional; an absent or malformed one means the default page.
	_ = c.ShouldBindJSON(&input)
	if input.Page == "" {
		input.Page = "/"
	}

	visit := models.Visit{
		IPAddress:   c.ClientIP(),
		UserAgent:   c.Request.UserAgent(),
		PageVisited: input.Page,
	}

	if err := h.store.InsertVisit(&visit); err != nil {
		// Tracking must never break the page for the visitor.
		utils.LogError(err, "Error tracking visit")
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// @Summary Get visitor statistics
// @Description Total visits, unique visitors, total contacts and the 10 most recent visits
// @Tags visits
// @Produce json
// @Success 200 {object} map[string]interface{} "success: true, stats"
// @Failure 500 {object} utils.Response
// @Router /api/stats [get]
func (h *Handler) Stats(c *gin.Context) {
	var stats models.Stats

	// The four aggregates are independent reads; run them together and
	// fail the whole call if any one of them fails.
	var g errgroup.Group
	g.Go(func() (err error) {
		stats.TotalVisits, err = h.store.CountVisits()
		return err
	})
	g.Go(func() (err error) {
		stats.UniqueVisitors, err = h.store.CountUniqueVisitors()
		return err
	})
	g.Go(func() (err error) {
		stats.TotalContacts, err = h.store.CountContacts()
		return err
	})
	g.Go(func() (err error) {
		stats.RecentVisits, err = h.store.RecentVisits(recentVisitsLimit)
		return err
	})

	if err := g.Wait(); err != nil {
		utils.LogError(err, "Error computing stats")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats":   stats,
	})
}
