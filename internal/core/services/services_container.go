package services

import (
	"context"
	"fmt"

	portsrepo "github.com/hodamousavipour/banking-dashboard-front/internal/core/ports/repositories"
	portssvc "github.com/hodamousavipour/banking-dashboard-front/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
func NewServiceContainer(ctx context.Context, repos portsrepo.RepositoryProvider) (*portssvc.ServiceContainer, error) {
	container := &portssvc.ServiceContainer{}

	txService, err := NewTransactionService(ctx, repos.TransactionRepo)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize transaction service: %w", err)
	}
	container.Transaction = txService

	return container, nil
}
