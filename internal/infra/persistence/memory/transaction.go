package memory

import (
	"context"

	"locator/internal/domain/repository"
)

type transactionManager struct {
	data *Dataset
}

// NewTransactionManager runs transactions against a private copy of the
// dataset and publishes the copy only when fn succeeds. Transactions are
// serialized.
func NewTransactionManager(data *Dataset) repository.TransactionManager {
	return &transactionManager{data: data}
}

func (tm *transactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tm.data.txMu.Lock()
	defer tm.data.txMu.Unlock()

	tm.data.mu.RLock()
	scratch := &Dataset{state: tm.data.state.clone(), now: tm.data.now}
	tm.data.mu.RUnlock()

	if err := fn(&repositoryFactory{data: scratch}); err != nil {
		return err
	}

	tm.data.mu.Lock()
	tm.data.state = scratch.state
	tm.data.mu.Unlock()

	return nil
}

type repositoryFactory struct {
	data *Dataset
}

func (f *repositoryFactory) NewStoreRepository() repository.StoreRepository {
	return NewStoreRepository(f.data)
}

func (f *repositoryFactory) NewFlavorRepository() repository.FlavorRepository {
	return NewFlavorRepository(f.data)
}

func (f *repositoryFactory) NewAvailabilityRepository() repository.AvailabilityRepository {
	return NewAvailabilityRepository(f.data)
}

func (f *repositoryFactory) NewUpdateLogRepository() repository.UpdateLogRepository {
	return NewUpdateLogRepository(f.data)
}
