package cmd

import (
	"log/slog"

	"dispatch/internal/adapters/out/amqpnotify"
	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, notifier ports.Notifier, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   notifier,
		logger:     logger,
	}
}

// NewNotifier selects the outbound notification adapter: AMQP when a broker
// URL is configured, otherwise a no-op since couriers poll their offers
// anyway.
func NewNotifier(configs Config, logger *slog.Logger) (ports.Notifier, error) {
	if configs.AmqpURL == "" {
		logger.Info("AMQP URL not configured, offer notifications disabled")
		return amqpnotify.NopNotifier{}, nil
	}
	return amqpnotify.NewAmqpNotifier(configs.AmqpURL)
}

func (c *CompositionRoot) CreateDistributeOrdersCommandHandler() commands.DistributeOrdersCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewDistributeOrdersCommandHandler(f, c.notifier, c.configs.OfferTTL, c.logger)
}

func (c *CompositionRoot) CreateSweepOffersCommandHandler() commands.SweepOffersCommandHandler {
	var f commands.OfferUoWFactory = FuncOfferUoWFactory(func() commands.OfferUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSweepOffersCommandHandler(f, c.configs.OfferTTL, c.logger)
}

func (c *CompositionRoot) CreateAcceptOfferCommandHandler() commands.AcceptOfferCommandHandler {
	var f commands.OrderOfferUoWFactory = FuncOrderOfferUoWFactory(func() commands.OrderOfferUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptOfferCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateRejectOfferCommandHandler() commands.RejectOfferCommandHandler {
	var f commands.OfferUoWFactory = FuncOfferUoWFactory(func() commands.OfferUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRejectOfferCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteDeliveryCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateGetPendingOffersQueryHandler() queries.GetPendingOffersQueryHandler {
	return queries.NewGetPendingOffersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderHistoryQueryHandler() queries.GetOrderHistoryQueryHandler {
	return queries.NewGetOrderHistoryQueryHandler(c.gormDB)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncOfferUoWFactory func() commands.OfferUoW

func (f FuncOfferUoWFactory) Create() commands.OfferUoW {
	return f()
}

type FuncOrderOfferUoWFactory func() commands.OrderOfferUoW

func (f FuncOrderOfferUoWFactory) Create() commands.OrderOfferUoW {
	return f()
}
