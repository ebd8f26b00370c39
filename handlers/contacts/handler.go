package contacts

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/aditbhattarai/Adit-ko-website/db"
	"github.com/aditbhattarai/Adit-ko-website/models"
	"github.com/aditbhattarai/Adit-ko-website/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Notifier is the outbound-mail side effect fired after a submission is
// stored. Its outcome never changes the response sent to the visitor.
type Notifier interface {
	Send(name, email, subject, message string) error
}

// Handler serves the public contact endpoint and the admin read/delete
// surface over stored submissions.
type Handler struct {
	store    *db.Store
	notifier Notifier
}

func NewHandler(store *db.Store, notifier Notifier) *Handler {
	return &Handler{store: store, notifier: notifier}
}

// @Summary Submit the contact form
// @Description Store a contact form submission and notify the site owner by mail
// @Tags contacts
// @Accept json
// @Produce json
// @Param contact body models.ContactCreate true "Contact information"
// @Success 200 {object} map[string]interface{} "success: true, message, id"
// @Failure 400 {object} utils.Response "missing field"
// @Failure 500 {object} utils.Response "storage failure"
// @Router /api/contact [post]
func (h *Handler) Create(c *gin.Context) {
	var input models.ContactCreate

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.SendError(c, http.StatusBadRequest, "All fields are required")
		return
	}

	contact := models.Contact{
		Name:    input.Name,
		Email:   input.Email,
		Subject: input.Subject,
		Message: input.Message,
	}

	if err := h.store.InsertContact(&contact); err != nil {
		utils.LogError(err, "Error inserting contact")
		utils.SendError(c, http.StatusInternalServerError, "Error saving contact information")
		return
	}

	// The mail is dispatched without waiting: a slow or failing provider
	// must not change what the visitor sees.
	if h.notifier != nil {
		go func(contact models.Contact) {
			if err := h.notifier.Send(contact.Name, contact.Email, contact.Subject, contact.Message); err != nil {
				utils.LogError(err, "Error sending notification email")
				return
			}
			utils.LogSuccess("Notification email sent")
		}(contact)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Thank you! Your message has been received.",
		"id":      contact.ID,
	})
}

// @Summary List all contact submissions
// @Description Retrieve every stored submission, newest first
// @Tags contacts
// @Produce json
// @Success 200 {object} map[string]interface{} "success: true, contacts"
// @Failure 500 {object} utils.Response
// @Router /api/contacts [get]
func (h *Handler) GetAll(c *gin.Context) {
	contacts, err := h.store.ListContacts()
	if err != nil {
		utils.LogError(err, "Error fetching contacts")
		utils.SendError(c, http.StatusInternalServerError, "Error fetching contacts")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"contacts": contacts,
	})
}

// @Summary Get one contact submission
// @Description Retrieve a single submission by its id
// @Tags contacts
// @Produce json
// @Param id path int true "Contact ID"
// @Success 200 {object} map[string]interface{} "success: true, contact"
// @Failure 404 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /api/contacts/{id} [get]
func (h *Handler) GetByID(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		utils.SendError(c, http.StatusNotFound, "Contact not found")
		return
	}

	contact, err := h.store.GetContact(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.SendError(c, http.StatusNotFound, "Contact not found")
			return
		}
		utils.LogError(err, "Error fetching contact")
		utils.SendError(c, http.StatusInternalServerError, "Error fetching contact")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"contact": contact,
	})
}

// @Summary Delete a contact submission
// @Description Delete a single submission by its id
// @Tags contacts
// @Produce json
// @Param id path int true "Contact ID"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /api/contacts/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		utils.SendError(c, http.StatusNotFound, "Contact not found")
		return
	}

	deleted, err := h.store.DeleteContact(id)
	if err != nil {
		utils.LogError(err, "Error deleting contact")
		utils.SendError(c, http.StatusInternalServerError, "Error deleting contact")
		return
	}
	if !deleted {
		utils.SendError(c, http.StatusNotFound, "Contact not found")
		return
	}

	utils.SendSuccess(c, http.StatusOK, "Contact deleted successfully")
}

// parseID mirrors the lookup behavior for non-numeric path ids: they can
// never match a row, so they read as not-found rather than bad-request.
func parseID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
