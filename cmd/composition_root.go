package cmd

import (
	"log/slog"

	"orderflow/internal/adapters/out/eventbus"
	"orderflow/internal/adapters/out/postgres"
	"orderflow/internal/adapters/out/systemclock"
	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/core/ports"
	"orderflow/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	clock      ports.Clock
	publisher  *eventbus.ChannelPublisher
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		clock:      systemclock.New(),
		publisher:  eventbus.NewChannelPublisher(config.EventBufferSize, logger),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateReputationCommandHandler() commands.CreateReputationCommandHandler {
	var f commands.ReputationUoWFactory = FuncReputationUoWFactory(func() commands.ReputationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateReputationCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.clock, c.publisher)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f, c.clock, c.publisher)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderHistoryQueryHandler() queries.GetOrderHistoryQueryHandler {
	return queries.NewGetOrderHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetReputationQueryHandler() queries.GetReputationQueryHandler {
	return queries.NewGetReputationQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetActiveOrdersQueryHandler(), c.config.MonitorSchedule, c.logger)
}

// EventPublisher exposes the shared in-process event bus so main can attach
// consumers and close it on shutdown.
func (c *CompositionRoot) EventPublisher() *eventbus.ChannelPublisher {
	return c.publisher
}

type FuncReputationUoWFactory func() commands.ReputationUoW

func (f FuncReputationUoWFactory) Create() commands.ReputationUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
