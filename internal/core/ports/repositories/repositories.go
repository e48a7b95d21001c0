package repositories

// RepositoryProvider bundles the concrete repositories handed to the service
// container at startup.
type RepositoryProvider struct {
	PaymentRepo PaymentRepositoryWithTx
	ClosureRepo ClosureRepositoryWithTx
}
