// Package http exposes the job lifecycle over a JSON API.
package http

import (
	"errors"
	"net/http"

	"sparrow/internal/core/application/usecases/commands"
	"sparrow/internal/core/application/usecases/queries"
	"sparrow/internal/core/domain/model/job"
	"sparrow/internal/core/domain/services"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createJobHandler       commands.CreateJobCommandHandler
	assignDriverHandler    commands.AssignDriverCommandHandler
	updateJobStatusHandler commands.UpdateJobStatusCommandHandler
	cancelJobHandler       commands.CancelJobCommandHandler
	completeJobHandler     commands.CompleteJobCommandHandler

	getJobHandler               queries.GetJobQueryHandler
	getCustomerJobsHandler      queries.GetCustomerJobsQueryHandler
	getDriverJobsHandler        queries.GetDriverJobsQueryHandler
	calculateEstimateHandler    queries.CalculateEstimateQueryHandler
	findAvailableDriversHandler queries.FindAvailableDriversQueryHandler
}

// NewServer creates an HTTP server with the required command and query
// handlers.
func NewServer(
	createJobHandler commands.CreateJobCommandHandler,
	assignDriverHandler commands.AssignDriverCommandHandler,
	updateJobStatusHandler commands.UpdateJobStatusCommandHandler,
	cancelJobHandler commands.CancelJobCommandHandler,
	completeJobHandler commands.CompleteJobCommandHandler,
	getJobHandler queries.GetJobQueryHandler,
	getCustomerJobsHandler queries.GetCustomerJobsQueryHandler,
	getDriverJobsHandler queries.GetDriverJobsQueryHandler,
	calculateEstimateHandler queries.CalculateEstimateQueryHandler,
	findAvailableDriversHandler queries.FindAvailableDriversQueryHandler,
) *Server {
	return &Server{
		createJobHandler:            createJobHandler,
		assignDriverHandler:         assignDriverHandler,
		updateJobStatusHandler:      updateJobStatusHandler,
		cancelJobHandler:            cancelJobHandler,
		completeJobHandler:          completeJobHandler,
		getJobHandler:               getJobHandler,
		getCustomerJobsHandler:      getCustomerJobsHandler,
		getDriverJobsHandler:        getDriverJobsHandler,
		calculateEstimateHandler:    calculateEstimateHandler,
		findAvailableDriversHandler: findAvailableDriversHandler,
	}
}

// RegisterRoutes attaches every endpoint to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/jobs", s.CreateJob)
	api.GET("/jobs/:id", s.GetJob)
	api.POST("/jobs/:id/assign", s.AssignDriver)
	api.POST("/jobs/:id/status", s.UpdateJobStatus)
	api.POST("/jobs/:id/cancel", s.CancelJob)
	api.POST("/jobs/:id/complete", s.CompleteJob)
	api.GET("/jobs/:id/drivers", s.FindAvailableDrivers)
	api.GET("/customers/:id/jobs", s.GetCustomerJobs)
	api.GET("/drivers/:id/jobs", s.GetDriverJobs)
	api.POST("/estimates", s.CalculateEstimate)

	e.GET("/health", s.Health)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateJob handles POST /api/v1/jobs.
func (s *Server) CreateJob(ctx echo.Context) error {
	var req CreateJobRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	priority, err := job.PriorityFromString(req.Priority)
	if err != nil {
		return writeError(ctx, err)
	}

	packageType, err := job.PackageTypeFromString(req.Package.Type)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateJobCommand(
		req.CustomerID,
		priority,
		toLocationSpec(req.Pickup),
		toLocationSpec(req.Dropoff),
		commands.PackageSpec{
			Type:              packageType,
			Description:       req.Package.Description,
			WeightKg:          req.Package.WeightKg,
			LengthCm:          req.Package.LengthCm,
			WidthCm:           req.Package.WidthCm,
			HeightCm:          req.Package.HeightCm,
			EstimatedValue:    req.Package.EstimatedValue,
			IsFragile:         req.Package.IsFragile,
			RequiresSignature: req.Package.RequiresSignature,
			Contains:          req.Package.Contains,
		},
		req.PaymentMethodID,
		req.Notes,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.createJobHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toJobResponse(created))
}

// GetJob handles GET /api/v1/jobs/:id.
func (s *Server) GetJob(ctx echo.Context) error {
	query, err := queries.NewGetJobQuery(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	aggregate, err := s.getJobHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toJobResponse(aggregate))
}

// AssignDriver handles POST /api/v1/jobs/:id/assign.
func (s *Server) AssignDriver(ctx echo.Context) error {
	var req AssignDriverRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewAssignDriverCommand(ctx.Param("id"), req.DriverID)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.assignDriverHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toJobResponse(updated))
}

// UpdateJobStatus handles POST /api/v1/jobs/:id/status.
func (s *Server) UpdateJobStatus(ctx echo.Context) error {
	var req UpdateStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	status, err := job.StatusFromString(req.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateJobStatusCommand(ctx.Param("id"), status, req.DriverID)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.updateJobStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toJobResponse(updated))
}

// CancelJob handles POST /api/v1/jobs/:id/cancel.
func (s *Server) CancelJob(ctx echo.Context) error {
	var req CancelJobRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCancelJobCommand(ctx.Param("id"), req.Reason)
	if err != nil {
		return writeError(ctx, err)
	}

	cancelled, err := s.cancelJobHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toJobResponse(cancelled))
}

// CompleteJob handles POST /api/v1/jobs/:id/complete.
func (s *Server) CompleteJob(ctx echo.Context) error {
	cmd, err := commands.NewCompleteJobCommand(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	completed, err := s.completeJobHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toJobResponse(completed))
}

// FindAvailableDrivers handles GET /api/v1/jobs/:id/drivers. No drivers in
// range is an empty candidate list, not an error.
func (s *Server) FindAvailableDrivers(ctx echo.Context) error {
	query, err := queries.NewFindAvailableDriversQuery(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	driverIDs, err := s.findAvailableDriversHandler.Handle(ctx.Request().Context(), query)
	if err != nil && !errors.Is(err, services.ErrNoDriversAvailable) {
		return writeError(ctx, err)
	}
	if driverIDs == nil {
		driverIDs = []string{}
	}

	return ctx.JSON(http.StatusOK, DriverCandidatesResponse{
		JobID:     query.JobID(),
		DriverIDs: driverIDs,
	})
}

// GetCustomerJobs handles GET /api/v1/customers/:id/jobs.
func (s *Server) GetCustomerJobs(ctx echo.Context) error {
	query, err := queries.NewGetCustomerJobsQuery(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	jobs, err := s.getCustomerJobsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]JobResponse, len(jobs))
	for i, aggregate := range jobs {
		response[i] = toJobResponse(aggregate)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDriverJobs handles GET /api/v1/drivers/:id/jobs.
func (s *Server) GetDriverJobs(ctx echo.Context) error {
	query, err := queries.NewGetDriverJobsQuery(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	jobs, err := s.getDriverJobsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]JobResponse, len(jobs))
	for i, aggregate := range jobs {
		response[i] = toJobResponse(aggregate)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CalculateEstimate handles POST /api/v1/estimates.
func (s *Server) CalculateEstimate(ctx echo.Context) error {
	var req EstimateRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	query, err := queries.NewCalculateEstimateQuery(
		req.PickupLatitude, req.PickupLongitude,
		req.DropoffLatitude, req.DropoffLongitude,
		req.Priority, req.PackageType,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	estimate, err := s.calculateEstimateHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toEstimateResponse(estimate))
}
