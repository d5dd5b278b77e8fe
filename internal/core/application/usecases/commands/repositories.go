// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// persistence, and post-commit event publication.
package commands

import (
	"context"

	"orderflow/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// HistoryRepoFactory provides access to the history repository within a transaction.
	HistoryRepoFactory interface {
		HistoryRepository() ports.HistoryRepository
	}

	// ReputationRepoFactory provides access to the reputation repository within a transaction.
	ReputationRepoFactory interface {
		ReputationRepository() ports.ReputationRepository
	}

	// OrderUoW manages transactions for order placement: the order row and
	// the seed record of its transition history commit together.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		HistoryRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ReputationUoW manages transactions for reputation-only operations.
	ReputationUoW interface {
		TxManager
		ReputationRepoFactory
	}

	// ReputationUoWFactory creates new reputation unit of work instances.
	ReputationUoWFactory interface {
		Create() ReputationUoW
	}

	// UoW manages transactions spanning the order, its transition history,
	// and the owner's reputation. Used by status updates, where all three
	// commit as one atomic unit.
	UoW interface {
		TxManager
		OrderRepoFactory
		HistoryRepoFactory
		ReputationRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
