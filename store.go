package javadts

import "context"

// DeclarationStore persists declarations with atomic semantics.
// Save writes to a temporary location; Commit makes changes permanent;
// Abort discards pending changes.
type DeclarationStore interface {
	Save(ctx context.Context, d *Declaration) error
	Commit() error
	Abort() error
}
