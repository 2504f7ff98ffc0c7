package cmd

import (
	"orderlink/internal/adapters/out/postgres"
	"orderlink/internal/core/application/usecases/commands"
	"orderlink/internal/core/application/usecases/queries"
	"orderlink/internal/core/domain/services"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateSubmitOrderCommandHandler() commands.SubmitOrderCommandHandler {
	return commands.NewSubmitOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateSetStatusCommandHandler() commands.SetStatusCommandHandler {
	return commands.NewSetStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateBulkSetStatusCommandHandler() commands.BulkSetStatusCommandHandler {
	return commands.NewBulkSetStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpsertProfileCommandHandler() commands.UpsertProfileCommandHandler {
	return commands.NewUpsertProfileCommandHandler(c.profileUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderByTrackingQueryHandler() queries.GetOrderByTrackingQueryHandler {
	return queries.NewGetOrderByTrackingQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersByOwnerQueryHandler() queries.ListOrdersByOwnerQueryHandler {
	return queries.NewListOrdersByOwnerQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDashboardQueryHandler() queries.GetDashboardQueryHandler {
	// A unit of work that never begins a transaction reads from the base
	// connection, which is all the dashboard needs.
	orderRepo := c.uowFactory.Create().OrderRepository()
	return queries.NewGetDashboardQueryHandler(orderRepo, services.NewOrderGrouper())
}

func (c *CompositionRoot) CreateGetProfileQueryHandler() queries.GetProfileQueryHandler {
	return queries.NewGetProfileQueryHandler(c.gormDB)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) profileUoWFactory() commands.ProfileUoWFactory {
	return FuncProfileUoWFactory(func() commands.ProfileUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncProfileUoWFactory func() commands.ProfileUoW

func (f FuncProfileUoWFactory) Create() commands.ProfileUoW {
	return f()
}
