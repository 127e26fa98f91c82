package cmd

import (
	"fmt"
	"log/slog"

	httpin "sparrow/internal/adapters/in/http"
	"sparrow/internal/adapters/out/driverdir"
	"sparrow/internal/adapters/out/memrepo"
	"sparrow/internal/adapters/out/notify"
	"sparrow/internal/adapters/out/postgres/jobrepo"
	"sparrow/internal/core/application/usecases/commands"
	"sparrow/internal/core/application/usecases/queries"
	"sparrow/internal/core/domain/services"
	"sparrow/internal/core/ports"
	"sparrow/internal/jobs"

	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// CompositionRoot wires the application: storage, domain services, command
// and query handlers, and background jobs.
type CompositionRoot struct {
	jobRepo    ports.JobRepository
	directory  *driverdir.InMemoryDirectory
	notifier   ports.NotificationPublisher
	calculator services.PriceCalculator
	matcher    services.DriverMatcher
	logger     *slog.Logger
}

// NewCompositionRoot builds the object graph from the configuration. The
// storage driver selects between the in-memory repository and PostgreSQL.
func NewCompositionRoot(config Config, logger *slog.Logger) (*CompositionRoot, error) {
	calculator, err := services.NewPriceCalculator(services.DefaultTariff())
	if err != nil {
		return nil, err
	}

	var jobRepo ports.JobRepository
	switch config.StorageDriver {
	case StoragePostgres:
		db, err := gorm.Open(postgresdriver.Open(config.DSN()), &gorm.Config{TranslateError: true})
		if err != nil {
			return nil, fmt.Errorf("connect to postgres: %w", err)
		}
		if err := db.AutoMigrate(&jobrepo.JobDTO{}, &jobrepo.JobIndexDTO{}); err != nil {
			return nil, fmt.Errorf("migrate schema: %w", err)
		}
		jobRepo = jobrepo.NewGormJobRepository(db)
	case StorageMemory:
		jobRepo = memrepo.NewJobRepository()
	default:
		return nil, fmt.Errorf("unknown storage driver %q", config.StorageDriver)
	}

	return &CompositionRoot{
		jobRepo:    jobRepo,
		directory:  driverdir.NewInMemoryDirectory(),
		notifier:   notify.NewLogPublisher(logger),
		calculator: calculator,
		matcher:    services.NewDriverMatcher(),
		logger:     logger,
	}, nil
}

// DriverDirectory exposes the directory so presence updates can be fed in.
func (c *CompositionRoot) DriverDirectory() *driverdir.InMemoryDirectory {
	return c.directory
}

func (c *CompositionRoot) CreateCreateJobCommandHandler() commands.CreateJobCommandHandler {
	return commands.NewCreateJobCommandHandler(c.jobRepo, c.calculator)
}

func (c *CompositionRoot) CreateAssignDriverCommandHandler() commands.AssignDriverCommandHandler {
	return commands.NewAssignDriverCommandHandler(c.jobRepo, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateUpdateJobStatusCommandHandler() commands.UpdateJobStatusCommandHandler {
	return commands.NewUpdateJobStatusCommandHandler(c.jobRepo, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateCancelJobCommandHandler() commands.CancelJobCommandHandler {
	return commands.NewCancelJobCommandHandler(c.jobRepo)
}

func (c *CompositionRoot) CreateCompleteJobCommandHandler() commands.CompleteJobCommandHandler {
	return commands.NewCompleteJobCommandHandler(c.jobRepo, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateExpireJobCommandHandler() commands.ExpireJobCommandHandler {
	return commands.NewExpireJobCommandHandler(c.jobRepo)
}

func (c *CompositionRoot) CreateGetJobQueryHandler() queries.GetJobQueryHandler {
	return queries.NewGetJobQueryHandler(c.jobRepo)
}

func (c *CompositionRoot) CreateGetCustomerJobsQueryHandler() queries.GetCustomerJobsQueryHandler {
	return queries.NewGetCustomerJobsQueryHandler(c.jobRepo)
}

func (c *CompositionRoot) CreateGetDriverJobsQueryHandler() queries.GetDriverJobsQueryHandler {
	return queries.NewGetDriverJobsQueryHandler(c.jobRepo)
}

func (c *CompositionRoot) CreateCalculateEstimateQueryHandler() queries.CalculateEstimateQueryHandler {
	return queries.NewCalculateEstimateQueryHandler(c.calculator)
}

func (c *CompositionRoot) CreateFindAvailableDriversQueryHandler() queries.FindAvailableDriversQueryHandler {
	return queries.NewFindAvailableDriversQueryHandler(c.jobRepo, c.directory, c.matcher)
}

// CreateHTTPServer assembles the HTTP server from the use case handlers.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateJobCommandHandler(),
		c.CreateAssignDriverCommandHandler(),
		c.CreateUpdateJobStatusCommandHandler(),
		c.CreateCancelJobCommandHandler(),
		c.CreateCompleteJobCommandHandler(),
		c.CreateGetJobQueryHandler(),
		c.CreateGetCustomerJobsQueryHandler(),
		c.CreateGetDriverJobsQueryHandler(),
		c.CreateCalculateEstimateQueryHandler(),
		c.CreateFindAvailableDriversQueryHandler(),
	)
}

// CreateJobManager assembles the background job manager.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.jobRepo, c.CreateExpireJobCommandHandler(), c.logger)
}
