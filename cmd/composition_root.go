package cmd

import (
	"fmt"
	"log/slog"

	httpin "shipdesk/internal/adapters/in/http"
	"shipdesk/internal/adapters/out/catalog"
	"shipdesk/internal/adapters/out/memory/sessionrepo"
	"shipdesk/internal/adapters/out/postgres"
	"shipdesk/internal/adapters/out/shippo"
	"shipdesk/internal/core/application/usecases/commands"
	"shipdesk/internal/core/application/usecases/queries"
	"shipdesk/internal/core/domain/services"
	"shipdesk/internal/core/ports"
	"shipdesk/internal/jobs"
	"shipdesk/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory ports.UnitOfWorkFactory
	sessions   ports.SessionRepository
	provider   *shippo.Client
	catalog    *catalog.Catalog
	resolver   services.PackagingResolver
	registry   *prometheus.Registry
	jobMetrics *metrics.JobMetrics
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	registry := prometheus.NewRegistry()

	provider, err := shippo.NewClient(
		config.ShippoAPIKey,
		shippo.WithBaseURL(config.ShippoBaseURL),
		shippo.WithAPIVersion(config.ShippoAPIVersion),
		shippo.WithTimeout(config.ShippoTimeout),
		shippo.WithMetrics(metrics.NewProviderMetrics(registry)),
		shippo.WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("shippo client: %w", err)
	}

	flatRates, err := catalog.NewCatalog(provider, config.CatalogCarrier, logger)
	if err != nil {
		return nil, fmt.Errorf("flat-rate catalog: %w", err)
	}

	return &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		sessions:   sessionrepo.NewRepository(),
		provider:   provider,
		catalog:    flatRates,
		resolver:   services.NewPackagingResolver(services.DefaultParcel()),
		registry:   registry,
		jobMetrics: metrics.NewJobMetrics(registry),
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) uow() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoW() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) ruleUoW() commands.RuleUoWFactory {
	return FuncRuleUoWFactory(func() commands.RuleUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateStartSessionCommandHandler() commands.StartSessionCommandHandler {
	return commands.NewStartSessionCommandHandler(c.uow(), c.sessions)
}

func (c *CompositionRoot) CreateResolvePackageCommandHandler() commands.ResolvePackageCommandHandler {
	return commands.NewResolvePackageCommandHandler(c.uow(), c.sessions, c.catalog, c.resolver, c.config.CatalogCarrier)
}

func (c *CompositionRoot) CreateChangePackageCommandHandler() commands.ChangePackageCommandHandler {
	return commands.NewChangePackageCommandHandler(c.sessions, c.catalog, c.config.CatalogCarrier)
}

func (c *CompositionRoot) CreateChangeCarriersCommandHandler() commands.ChangeCarriersCommandHandler {
	return commands.NewChangeCarriersCommandHandler(c.sessions)
}

func (c *CompositionRoot) CreateRequestRatesCommandHandler() commands.RequestRatesCommandHandler {
	return commands.NewRequestRatesCommandHandler(
		c.orderUoW(),
		c.sessions,
		c.catalog,
		c.provider,
		c.config.OriginAddress(),
		c.config.CatalogCarrier,
		c.logger,
	)
}

func (c *CompositionRoot) CreateSelectRateCommandHandler() commands.SelectRateCommandHandler {
	return commands.NewSelectRateCommandHandler(c.sessions)
}

func (c *CompositionRoot) CreatePurchaseLabelCommandHandler() commands.PurchaseLabelCommandHandler {
	return commands.NewPurchaseLabelCommandHandler(c.orderUoW(), c.sessions, c.provider, c.logger)
}

func (c *CompositionRoot) CreateSavePackagingRuleCommandHandler() commands.SavePackagingRuleCommandHandler {
	return commands.NewSavePackagingRuleCommandHandler(c.ruleUoW(), c.sessions)
}

func (c *CompositionRoot) CreateGetSessionQueryHandler() queries.GetSessionQueryHandler {
	return queries.NewGetSessionQueryHandler(c.sessions)
}

func (c *CompositionRoot) CreateListPackagingRulesQueryHandler() queries.ListPackagingRulesQueryHandler {
	return queries.NewListPackagingRulesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListFlatRateTemplatesQueryHandler() queries.ListFlatRateTemplatesQueryHandler {
	return queries.NewListFlatRateTemplatesQueryHandler(c.catalog)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateStartSessionCommandHandler(),
		c.CreateResolvePackageCommandHandler(),
		c.CreateChangePackageCommandHandler(),
		c.CreateChangeCarriersCommandHandler(),
		c.CreateRequestRatesCommandHandler(),
		c.CreateSelectRateCommandHandler(),
		c.CreatePurchaseLabelCommandHandler(),
		c.CreateSavePackagingRuleCommandHandler(),
		c.CreateGetSessionQueryHandler(),
		c.CreateListPackagingRulesQueryHandler(),
		c.CreateListFlatRateTemplatesQueryHandler(),
		c.config.CatalogCarrier,
	)
}

func (c *CompositionRoot) CreateRouterConfig() httpin.RouterConfig {
	return httpin.RouterConfig{
		APIKey:   c.config.OperatorAPIKey,
		Gatherer: c.registry,
		Logger:   c.logger,
	}
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		jobs.NewCatalogRefreshJob(c.catalog, c.config.CatalogRefreshSpec, c.jobMetrics, c.logger),
	)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncRuleUoWFactory func() commands.RuleUoW

func (f FuncRuleUoWFactory) Create() commands.RuleUoW {
	return f()
}
