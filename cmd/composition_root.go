package cmd

import (
	"log/slog"

	httpin "routing/internal/adapters/in/http"
	"routing/internal/adapters/out/metrics"
	"routing/internal/adapters/out/postgres"
	"routing/internal/core/application/usecases/commands"
	"routing/internal/core/application/usecases/queries"
	"routing/internal/core/domain/services"
	"routing/internal/jobs"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	sequencer  *services.Sequencer
	generator  *services.ZoneGenerator
	collector  *metrics.Collector
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	checker, err := services.NewFeasibilityChecker(config.Engine.SpeedKmh)
	if err != nil {
		return CompositionRoot{}, err
	}
	sequencer, err := services.NewSequencer(checker, config.Engine.Budget.toDomain())
	if err != nil {
		return CompositionRoot{}, err
	}
	generator, err := services.NewZoneGenerator(config.Engine.CircleSegments)
	if err != nil {
		return CompositionRoot{}, err
	}

	collector := metrics.NewCollector()
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, collector),
		sequencer:  sequencer,
		generator:  generator,
		collector:  collector,
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) CreateCreateCourierCommandHandler() *commands.CreateCourierCommandHandler {
	var f commands.CourierUoWFactory = FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
	handler := commands.NewCreateCourierCommandHandler(f)
	return &handler
}

func (c *CompositionRoot) CreateUpdateCourierLocationCommandHandler() *commands.UpdateCourierLocationCommandHandler {
	var f commands.CourierUoWFactory = FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
	handler := commands.NewUpdateCourierLocationCommandHandler(f)
	return &handler
}

func (c *CompositionRoot) CreateGetAllCouriersQueryHandler() queries.GetAllCouriersQueryHandler {
	return queries.NewGetAllCouriersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreatePlanRouteQueryHandler() queries.PlanRouteQueryHandler {
	return queries.NewPlanRouteQueryHandler(c.sequencer, c.collector, c.logger)
}

func (c *CompositionRoot) CreateApplySequenceQueryHandler() queries.ApplySequenceQueryHandler {
	return queries.NewApplySequenceQueryHandler(c.sequencer, c.collector, c.logger)
}

func (c *CompositionRoot) CreateEstimateRouteQueryHandler() queries.EstimateRouteQueryHandler {
	return queries.NewEstimateRouteQueryHandler(c.sequencer)
}

func (c *CompositionRoot) CreateFindNearbyCouriersQueryHandler() queries.FindNearbyCouriersQueryHandler {
	return queries.NewFindNearbyCouriersQueryHandler(c.uowFactory.CourierReader())
}

func (c *CompositionRoot) CreateCreateZonesQueryHandler() queries.CreateZonesQueryHandler {
	return queries.NewCreateZonesQueryHandler(c.generator, c.uowFactory.CourierReader())
}

// CreateRouter builds the HTTP entry point with every use case wired in.
func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	server := httpin.NewServer(httpin.Handlers{
		CreateCourier:         c.CreateCreateCourierCommandHandler(),
		UpdateCourierLocation: c.CreateUpdateCourierLocationCommandHandler(),
		GetAllCouriers:        c.CreateGetAllCouriersQueryHandler(),
		PlanRoute:             c.CreatePlanRouteQueryHandler(),
		ApplySequence:         c.CreateApplySequenceQueryHandler(),
		EstimateRoute:         c.CreateEstimateRouteQueryHandler(),
		FindNearbyCouriers:    c.CreateFindNearbyCouriersQueryHandler(),
		CreateZones:           c.CreateCreateZonesQueryHandler(),
	}, c.logger)

	reports := c.config.Engine.LocationReports
	return httpin.NewRouter(server, c.collector, httpin.RateLimit{
		RequestsPerSecond: reports.RequestsPerSecond,
		Burst:             reports.Burst,
		ExpiresIn:         reports.ExpiresIn,
	}, c.logger)
}

// CreateJobManager returns nil when zone coverage is not configured.
func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	coverage := c.config.Engine.ZoneCoverage
	if !coverage.Enabled() {
		return nil, nil
	}

	query, err := queries.NewCreateZonesQuery(coverage.Center.toDomain(), coverage.RadiusKm, coverage.Count, true)
	if err != nil {
		return nil, err
	}

	return jobs.NewJobManager(c.CreateCreateZonesQueryHandler(), jobs.ZoneCoverageConfig{
		Query:    query,
		Schedule: c.config.ZoneJobSchedule,
	}, c.collector, c.logger), nil
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}
