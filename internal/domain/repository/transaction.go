package repository

import "context"

// TransactionManager runs multi-step writes atomically.
type TransactionManager interface {
	// Execute commits when fn returns nil and rolls back otherwise.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repositories bound to the running transaction.
// Only the aggregates written together need a transactional variant.
type RepositoryFactory interface {
	NewUserRepository() UserRepository
	NewContactRepository() ContactRepository
}
