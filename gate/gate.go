// Package gate decides whether Heroku Connect has finished provisioning its
// schema namespace. Provisioning is a one-time monotonic event, so a positive
// answer is latched for the remainder of the process and the catalog is never
// probed again.
package gate

import (
	"context"
	"sync/atomic"
)

// SchemaChecker probes the database catalog for the Heroku Connect namespace.
type SchemaChecker interface {
	SchemaExists(ctx context.Context) (bool, error)
}

// Gate caches the readiness of the Heroku Connect schema. The latch is a
// single atomic bool: a race between two requests costs at most one redundant
// catalog query, never a wrong answer.
type Gate struct {
	checker SchemaChecker
	ready   atomic.Bool
}

func New(checker SchemaChecker) *Gate {
	return &Gate{checker: checker}
}

// Ready reports whether the schema namespace exists. Once true it stays true
// without further queries. A false result is never cached, and a probe error
// propagates rather than being read as "not ready".
func (g *Gate) Ready(ctx context.Context) (bool, error) {
	if g.ready.Load() {
		return true, nil
	}

	exists, err := g.checker.SchemaExists(ctx)
	if err != nil {
		return false, err
	}
	if exists {
		g.ready.Store(true)
	}
	return exists, nil
}
