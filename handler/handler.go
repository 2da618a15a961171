// Package handler implements the HTTP surface: the welcome/setup page, the
// contact listing, the single-contact edit form, and the spreadsheet export.
package handler

import (
	"go.uber.org/zap"

	"github.com/shawalli/contact-card/gate"
	"github.com/shawalli/contact-card/store"
)

// CSRFTokenKey is the context key the router uses to hand the per-request
// CSRF token to handlers.
const CSRFTokenKey = "csrf_token"

type Handler struct {
	Store store.ContactStore
	Gate  *gate.Gate
	Log   *zap.Logger
}
