package cmd

import (
	"log/slog"
	"time"

	"github.com/ericks0nmartinez/burger/internal/adapters/out/postgres"
	"github.com/ericks0nmartinez/burger/internal/core/application/usecases/commands"
	"github.com/ericks0nmartinez/burger/internal/core/application/usecases/queries"
	"github.com/ericks0nmartinez/burger/internal/core/domain/services"
	"github.com/ericks0nmartinez/burger/internal/core/ports"
	"github.com/ericks0nmartinez/burger/internal/jobs"
	"github.com/ericks0nmartinez/burger/internal/pkg/keymutex"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters, domain services and use case handlers.
// Handlers are created per call; shared state (locks, publisher, clock) is
// created once here.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	publisher  ports.EventPublisher
	policy     services.TransitionPolicy
	orderLocks *keymutex.KeyedMutex
	logger     *slog.Logger
	now        func() time.Time
}

// NewCompositionRoot creates the composition root. The transition policy is
// permissive: admins may move orders between any two statuses, matching the
// control board's behavior.
func NewCompositionRoot(
	gormDB *gorm.DB,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  publisher,
		policy:     services.NewPermissiveTransitionPolicy(),
		orderLocks: keymutex.New(),
		logger:     logger,
		now:        time.Now,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) productUoWFactory() commands.ProductUoWFactory {
	return FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) settingsUoWFactory() commands.SettingsUoWFactory {
	return FuncSettingsUoWFactory(func() commands.SettingsUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.publisher, c.now)
}

func (c *CompositionRoot) CreateTransitionOrderStatusCommandHandler() commands.TransitionOrderStatusCommandHandler {
	return commands.NewTransitionOrderStatusCommandHandler(
		c.orderUoWFactory(), c.policy, c.publisher, c.orderLocks, c.now)
}

func (c *CompositionRoot) CreateMarkOrderPaidCommandHandler() commands.MarkOrderPaidCommandHandler {
	return commands.NewMarkOrderPaidCommandHandler(c.orderUoWFactory(), c.publisher, c.orderLocks, c.now)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.orderUoWFactory(), c.publisher, c.orderLocks, c.now)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory(), c.publisher, c.orderLocks, c.now)
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	return commands.NewCreateProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateUpdateProductCommandHandler() commands.UpdateProductCommandHandler {
	return commands.NewUpdateProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateDeleteProductCommandHandler() commands.DeleteProductCommandHandler {
	return commands.NewDeleteProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateUpdateSettingsCommandHandler() commands.UpdateSettingsCommandHandler {
	return commands.NewUpdateSettingsCommandHandler(c.settingsUoWFactory())
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB, c.now)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB, c.now)
}

func (c *CompositionRoot) CreateGetDeliveryOrdersQueryHandler() queries.GetDeliveryOrdersQueryHandler {
	return queries.NewGetDeliveryOrdersQueryHandler(c.gormDB, c.now)
}

func (c *CompositionRoot) CreateGetCashRegisterReportQueryHandler() queries.GetCashRegisterReportQueryHandler {
	return queries.NewGetCashRegisterReportQueryHandler(c.gormDB, c.now)
}

func (c *CompositionRoot) CreateGetProductsQueryHandler() queries.GetProductsQueryHandler {
	return queries.NewGetProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProductQueryHandler() queries.GetProductQueryHandler {
	return queries.NewGetProductQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSettingsQueryHandler() queries.GetSettingsQueryHandler {
	return queries.NewGetSettingsQueryHandler(c.gormDB)
}

// CreateJobManager wires the scheduled background jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetCashRegisterReportQueryHandler(),
		c.publisher,
		c.logger,
		c.now,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncSettingsUoWFactory func() commands.SettingsUoW

func (f FuncSettingsUoWFactory) Create() commands.SettingsUoW {
	return f()
}
