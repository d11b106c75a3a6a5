package cmd

import (
	"context"
	"errors"
	"log/slog"

	"icetube/internal/adapters/in/http"
	"icetube/internal/adapters/out/filestore"
	"icetube/internal/adapters/out/kafka"
	"icetube/internal/adapters/out/postgres"
	"icetube/internal/adapters/out/postgres/activityrepo"
	icredis "icetube/internal/adapters/out/redis"
	"icetube/internal/core/application/usecases/commands"
	"icetube/internal/core/application/usecases/queries"
	"icetube/internal/core/ports"
	"icetube/internal/jobs"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger

	publisher   *kafka.OrderEventPublisher
	redisClient *redis.Client
	cache       *icredis.DashboardCache
}

// NewCompositionRoot wires the optional Kafka publisher and Redis cache when
// they are configured. An unreachable Redis disables the cache.
func NewCompositionRoot(ctx context.Context, cfg Config, gormDB *gorm.DB, logger *slog.Logger) *CompositionRoot {
	c := &CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}

	if brokers := cfg.KafkaBrokers(); len(brokers) > 0 {
		c.publisher = kafka.NewOrderEventPublisher(cfg.KafkaOrderChangedTopic, brokers...)
	} else {
		logger.Info("KAFKA_HOST is empty, order events are not published")
	}

	if cfg.RedisAddr != "" {
		client, err := icredis.NewClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			logger.Warn("dashboard cache disabled", "error", err)
		} else {
			c.redisClient = client
			c.cache = icredis.NewDashboardCache(client, cfg.DashboardCacheTTL)
		}
	}

	return c
}

func (c *CompositionRoot) Notifier() commands.Notifier {
	var events ports.OrderEventPublisher
	if c.publisher != nil {
		events = c.publisher
	}
	return commands.NewNotifier(activityrepo.NewGormActivityLogger(c.gormDB), events, c.logger)
}

func (c *CompositionRoot) dashboardCache() ports.DashboardCache {
	if c.cache == nil {
		return nil
	}
	return c.cache
}

func (c *CompositionRoot) uow() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) inventoryUoW() commands.InventoryUoWFactory {
	return FuncInventoryUoWFactory(func() commands.InventoryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) userUoW() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
}

// Handlers builds every command and query handler the API serves.
func (c *CompositionRoot) Handlers() http.Handlers {
	notifier := c.Notifier()
	cache := c.dashboardCache()

	return http.Handlers{
		CreateInventoryItem:  commands.NewCreateInventoryItemCommandHandler(c.inventoryUoW(), notifier),
		AdjustStock:          commands.NewAdjustStockCommandHandler(c.inventoryUoW(), notifier),
		SetStock:             commands.NewSetStockCommandHandler(c.inventoryUoW(), notifier),
		ChangeInventoryPrice: commands.NewChangeInventoryPriceCommandHandler(c.inventoryUoW(), notifier),
		ArchiveInventoryItem: commands.NewArchiveInventoryItemCommandHandler(c.inventoryUoW(), notifier),

		CreateOrder:      commands.NewCreateOrderCommandHandler(c.uow(), notifier),
		SetOrderStatus:   commands.NewSetOrderStatusCommandHandler(c.uow(), notifier),
		AssignRider:      commands.NewAssignRiderCommandHandler(c.uow(), notifier),
		CompleteDelivery: commands.NewCompleteDeliveryCommandHandler(c.uow(), notifier),
		ArchiveOrder:     commands.NewArchiveOrderCommandHandler(c.uow(), notifier),

		CreateUser:       commands.NewCreateUserCommandHandler(c.userUoW(), notifier),
		ChangeUserStatus: commands.NewChangeUserStatusCommandHandler(c.userUoW(), notifier),

		ListInventory:     queries.NewListInventoryQueryHandler(c.gormDB),
		ListOrders:        queries.NewListOrdersQueryHandler(c.gormDB),
		GetOrder:          queries.NewGetOrderQueryHandler(c.gormDB),
		ListUsers:         queries.NewListUsersQueryHandler(c.gormDB),
		GetUser:           queries.NewGetUserQueryHandler(c.gormDB),
		AdminDashboard:    queries.NewGetAdminDashboardQueryHandler(c.gormDB, cache, c.logger),
		EmployeeDashboard: queries.NewGetEmployeeDashboardQueryHandler(c.gormDB, cache, c.logger),
		ListActivityLogs:  queries.NewListActivityLogsQueryHandler(c.gormDB),
	}
}

// HTTPServer builds the API server storing photos under UPLOAD_DIR.
func (c *CompositionRoot) HTTPServer() (*http.Server, error) {
	photos, err := filestore.NewPhotoStore(c.cfg.UploadDir)
	if err != nil {
		return nil, err
	}

	var opts []http.ServerOption
	if c.cache != nil {
		opts = append(opts, http.WithDashboardInvalidator(c.cache))
	}
	return http.NewServer(c.Handlers(), photos, c.logger, opts...), nil
}

// JobManager scans the inventory outside any transaction.
func (c *CompositionRoot) JobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.uowFactory.Create().InventoryRepository(), c.cfg.StockAlertSchedule, c.logger)
}

// Close releases the Kafka writer and the Redis client.
func (c *CompositionRoot) Close() error {
	var errList []error
	if c.publisher != nil {
		errList = append(errList, c.publisher.Close())
	}
	if c.redisClient != nil {
		errList = append(errList, c.redisClient.Close())
	}
	return errors.Join(errList...)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncInventoryUoWFactory func() commands.InventoryUoW

func (f FuncInventoryUoWFactory) Create() commands.InventoryUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}
