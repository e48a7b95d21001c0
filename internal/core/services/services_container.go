package services

import (
	"github.com/cargoplus/collections_backend/internal/cache"
	"github.com/cargoplus/collections_backend/internal/core/domain"
	portsrepo "github.com/cargoplus/collections_backend/internal/core/ports/repositories"
	portssvc "github.com/cargoplus/collections_backend/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, billLedger portssvc.BillLedgerSvcFacade, guardCache cache.GuardStatusCache, denoms domain.DenominationSet, currencyExponent int32) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Guard first: the payment service gates on it.
	container.Guard = NewGuardService(
		repos.PaymentRepo,
		repos.ClosureRepo,
		WithGuardCache(guardCache),
	)

	container.Payment = NewPaymentService(
		repos.PaymentRepo,
		billLedger,
		container.Guard,
		WithPaymentGuardCache(guardCache),
	)

	container.Closure = NewClosureService(
		repos.ClosureRepo,
		repos.PaymentRepo,
		denoms,
		currencyExponent,
		WithClosureGuardCache(guardCache),
	)

	container.BillLedger = billLedger

	return container
}

// Compile-time interface checks for the service implementations.
var (
	_ portssvc.PaymentSvcFacade = (*paymentService)(nil)
	_ portssvc.ClosureSvcFacade = (*closureService)(nil)
	_ portssvc.GuardSvcFacade   = (*guardService)(nil)
)
