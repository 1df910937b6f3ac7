package mock

import (
	"context"

	"github.com/fwojciec/javadts"
)

var _ javadts.DeclarationStore = (*DeclarationStore)(nil)

// DeclarationStore is a mock implementation of javadts.DeclarationStore.
type DeclarationStore struct {
	SaveFn   func(ctx context.Context, d *javadts.Declaration) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *DeclarationStore) Save(ctx context.Context, d *javadts.Declaration) error {
	return s.SaveFn(ctx, d)
}

func (s *DeclarationStore) Commit() error {
	return s.CommitFn()
}

func (s *DeclarationStore) Abort() error {
	return s.AbortFn()
}
