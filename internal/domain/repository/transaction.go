package repository

import "context"

// TransactionManager manages database transactions across repositories
type TransactionManager interface {
	// Execute runs the given function within a transaction. The function
	// receives a RepositoryFactory whose repositories share the transaction;
	// any returned error rolls the transaction back.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory creates repository instances bound to one data source,
// either the root connection or a running transaction. Delivery writes span
// three tables and always go through a transactional factory.
type RepositoryFactory interface {
	// NewDeliveryRepository creates a delivery repository instance
	NewDeliveryRepository() DeliveryRepository

	// NewDeliveryPointRepository creates a delivery point repository instance
	NewDeliveryPointRepository() DeliveryPointRepository

	// NewPointProductRepository creates a point product repository instance
	NewPointProductRepository() PointProductRepository
}
