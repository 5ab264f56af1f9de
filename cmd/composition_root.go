package cmd

import (
	"log/slog"
	"os"
	"strings"

	httpin "ordering/internal/adapters/in/http"
	"ordering/internal/adapters/out/kafka"
	"ordering/internal/adapters/out/notification"
	"ordering/internal/adapters/out/outbox"
	"ordering/internal/adapters/out/postgres"
	"ordering/internal/adapters/out/postgres/outboxrepo"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/services"
	"ordering/internal/core/ports"
	"ordering/internal/jobs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}
}

func (c *CompositionRoot) CreatePricingService() (services.PricingService, error) {
	rate, err := decimal.NewFromString(c.config.VIPDiscountRate)
	if err != nil {
		return services.PricingService{}, err
	}
	return services.NewPricingService(rate)
}

func (c *CompositionRoot) CreateOutboxRepository() ports.OutboxRepository {
	return outboxrepo.NewGormOutboxRepository(c.gormDB)
}

func (c *CompositionRoot) CreateEventPublisher() ports.EventPublisher {
	return outbox.NewEventPublisher(c.CreateOutboxRepository(), c.config.KafkaOrderPlacedTopic)
}

func (c *CompositionRoot) CreateNotificationSink() ports.NotificationSink {
	return notification.NewSMTPSink(c.config.SMTPAddr, c.config.SMTPFrom, c.config.SMTPRecipientDomain)
}

func (c *CompositionRoot) CreateIdentityResolver() ports.IdentityResolver {
	adminIDs := make([]string, 0)
	for _, id := range strings.Split(c.config.AdminIDs, ",") {
		id = strings.TrimSpace(id)
		if id != "" {
			adminIDs = append(adminIDs, id)
		}
	}
	return httpin.NewHeaderIdentityResolver(adminIDs)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAddOrderItemCommandHandler() commands.AddOrderItemCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddOrderItemCommandHandler(f)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() (commands.PlaceOrderCommandHandler, error) {
	pricing, err := c.CreatePricingService()
	if err != nil {
		return commands.PlaceOrderCommandHandler{}, err
	}

	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(
		f,
		pricing,
		c.CreateNotificationSink(),
		c.CreateEventPublisher(),
		c.logger,
	), nil
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDraftOrdersQueryHandler() queries.GetDraftOrdersQueryHandler {
	return queries.NewGetDraftOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	producer := kafka.NewProducer(c.config.KafkaHost, c.config.KafkaOrderPlacedTopic)
	return jobs.NewJobManager(c.CreateOutboxRepository(), producer, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
