// Package store provides access to the contact table that Heroku Connect
// keeps in sync with Salesforce. The table is shared with the replication
// agent, which may write the same rows concurrently; updates here are
// last-writer-wins with no locking or versioning.
package store

import (
	"context"
	"errors"

	"github.com/shawalli/contact-card/models"
)

// SchemaName is the namespace Heroku Connect provisions once the connection
// has been configured.
const SchemaName = "salesforce"

// ErrNotFound is returned when no contact exists for a given Salesforce ID.
var ErrNotFound = errors.New("store: contact not found")

// ContactStore is the record-store surface the handlers depend on. Contacts
// are created and deleted exclusively by Heroku Connect; this app only lists,
// looks up, and updates.
type ContactStore interface {
	// List returns every contact in unspecified order.
	List(ctx context.Context) ([]models.Contact, error)

	// BySFID returns the contact with the given Salesforce ID, or
	// ErrNotFound.
	BySFID(ctx context.Context, sfid string) (*models.Contact, error)

	// Update persists the contact's five mutable fields. ID and SFID are
	// never written.
	Update(ctx context.Context, c *models.Contact) error

	// SchemaExists reports whether the Heroku Connect schema namespace has
	// been provisioned.
	SchemaExists(ctx context.Context) (bool, error)
}
