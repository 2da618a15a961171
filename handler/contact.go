package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shawalli/contact-card/models"
	"github.com/shawalli/contact-card/store"
)

// Index renders the full contact listing. Ordering is whatever the store
// returns; nothing depends on it.
func (h *Handler) Index(c *gin.Context) {
	contacts, err := h.Store.List(c.Request.Context())
	if err != nil {
		h.Log.Error("list contacts failed", zap.Error(err))
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Contacts": contacts,
		"Flashes":  takeFlashes(c),
	})
}

// ShowContact renders the edit form pre-populated with the record's current
// field values.
func (h *Handler) ShowContact(c *gin.Context) {
	contact, ok := h.lookupContact(c)
	if !ok {
		return
	}
	h.renderContact(c, contact.SFID, models.FormFromContact(*contact))
}

// UpdateContact runs the submit path: validate every field, and either
// commit all five values or commit nothing and surface every violation.
// Either way the form is re-rendered rather than redirected.
func (h *Handler) UpdateContact(c *gin.Context) {
	contact, ok := h.lookupContact(c)
	if !ok {
		return
	}

	var form models.ContactForm
	if err := c.ShouldBind(&form); err != nil {
		// Unparseable submission; treated like a validation failure.
		addFlash(c, flashDanger, "Submitted form could not be read.")
		h.renderContact(c, contact.SFID, models.FormFromContact(*contact))
		return
	}

	if msgs := form.Validate(); len(msgs) > 0 {
		for _, msg := range msgs {
			addFlash(c, flashDanger, msg)
		}
	} else {
		form.ApplyTo(contact)
		if err := h.Store.Update(c.Request.Context(), contact); err != nil {
			h.Log.Error("update contact failed", zap.String("sfid", contact.SFID), zap.Error(err))
			c.String(http.StatusInternalServerError, "internal server error")
			return
		}
		// Heroku Connect picks the row change up and syncs it back to
		// Salesforce in the background.
		addFlash(c, flashSuccess, "Contact successfully updated.")
	}

	h.renderContact(c, contact.SFID, form)
}

// lookupContact resolves the sfid route parameter. A miss flashes a notice
// and bounces to the listing; a store failure is a 500. The second return
// reports whether the caller should continue.
func (h *Handler) lookupContact(c *gin.Context) (*models.Contact, bool) {
	sfid := c.Param("sfid")
	contact, err := h.Store.BySFID(c.Request.Context(), sfid)
	if errors.Is(err, store.ErrNotFound) {
		addFlash(c, flashDanger, "No contact with matching Salesforce ID exists.")
		c.Redirect(http.StatusFound, "/")
		return nil, false
	}
	if err != nil {
		h.Log.Error("contact lookup failed", zap.String("sfid", sfid), zap.Error(err))
		c.String(http.StatusInternalServerError, "internal server error")
		return nil, false
	}
	return contact, true
}

func (h *Handler) renderContact(c *gin.Context, sfid string, form models.ContactForm) {
	c.HTML(http.StatusOK, "contact.html", gin.H{
		"SFID":      sfid,
		"Form":      form,
		"Flashes":   takeFlashes(c),
		"CSRFToken": c.GetString(CSRFTokenKey),
	})
}
