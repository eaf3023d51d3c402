package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"routing/internal/core/application/usecases/commands"
	"routing/internal/core/application/usecases/queries"
	"routing/internal/core/domain/model/courier"
	"routing/internal/core/domain/model/kernel"
	"routing/internal/core/domain/model/route"
	"routing/internal/generated/servers"
	"routing/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// DefaultNearbyLimit applies when a proximity request names no limit.
const DefaultNearbyLimit = 10

type (
	CreateCourierHandler interface {
		Handle(ctx context.Context, cmd commands.CreateCourierCommand) error
	}
	UpdateCourierLocationHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateCourierLocationCommand) error
	}
	GetAllCouriersHandler interface {
		Handle(ctx context.Context, query queries.GetAllCouriersQuery) ([]queries.GetAllCouriersQueryResponse, error)
	}
	PlanRouteHandler interface {
		Handle(ctx context.Context, query queries.PlanRouteQuery) (route.Plan, error)
	}
	ApplySequenceHandler interface {
		Handle(ctx context.Context, query queries.ApplySequenceQuery) (route.Plan, error)
	}
	EstimateRouteHandler interface {
		Handle(ctx context.Context, query queries.EstimateRouteQuery) (queries.EstimateRouteQueryResponse, error)
	}
	FindNearbyCouriersHandler interface {
		Handle(ctx context.Context, query queries.FindNearbyCouriersQuery) (queries.FindNearbyCouriersQueryResponse, error)
	}
	CreateZonesHandler interface {
		Handle(ctx context.Context, query queries.CreateZonesQuery) (queries.CreateZonesQueryResponse, error)
	}
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	// Command handlers
	CreateCourier         CreateCourierHandler
	UpdateCourierLocation UpdateCourierLocationHandler

	// Query handlers
	GetAllCouriers     GetAllCouriersHandler
	PlanRoute          PlanRouteHandler
	ApplySequence      ApplySequenceHandler
	EstimateRoute      EstimateRouteHandler
	FindNearbyCouriers FindNearbyCouriersHandler
	CreateZones        CreateZonesHandler
}

// errInvalidBody is returned when a body that passed request validation
// still cannot be decoded into the generated model.
var errInvalidBody = echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")

var _ servers.ServerInterface = (*Server)(nil)

// Server implements servers.ServerInterface. It translates requests into
// commands and queries and maps their results and errors back to JSON.
type Server struct {
	handlers Handlers
	now      func() time.Time
	logger   *slog.Logger
}

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		now:      time.Now,
		logger:   logger.With("component", "http_server"),
	}
}

// PlanRoute handles POST /api/v1/routes/plan - orders the stops of one courier.
func (s *Server) PlanRoute(ctx echo.Context) error {
	var req servers.PlanRouteJSONRequestBody
	if err := ctx.Bind(&req); err != nil {
		return errInvalidBody
	}

	stops, err := stopsToDomain(req)
	if err != nil {
		return s.fail(ctx, err, "Invalid route")
	}
	query, err := queries.NewPlanRouteQuery(stops, coordinateToDomain(req.Start), req.StartTime)
	if err != nil {
		return s.fail(ctx, err, "Invalid route")
	}

	plan, err := s.handlers.PlanRoute.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to plan route")
	}

	return ctx.JSON(http.StatusOK, planFromDomain(plan))
}

// ApplySequence handles POST /api/v1/routes/apply - evaluates stops in the given order.
func (s *Server) ApplySequence(ctx echo.Context) error {
	var req servers.ApplySequenceJSONRequestBody
	if err := ctx.Bind(&req); err != nil {
		return errInvalidBody
	}

	stops, err := stopsToDomain(req)
	if err != nil {
		return s.fail(ctx, err, "Invalid route")
	}
	query, err := queries.NewApplySequenceQuery(route.NewSequence(stops...), coordinateToDomain(req.Start), req.StartTime)
	if err != nil {
		return s.fail(ctx, err, "Invalid route")
	}

	plan, err := s.handlers.ApplySequence.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to apply sequence")
	}

	return ctx.JSON(http.StatusOK, planFromDomain(plan))
}

// EstimateRoute handles POST /api/v1/routes/estimate - distance and time of the given order.
func (s *Server) EstimateRoute(ctx echo.Context) error {
	var req servers.EstimateRouteJSONRequestBody
	if err := ctx.Bind(&req); err != nil {
		return errInvalidBody
	}

	stops, err := stopsToDomain(req)
	if err != nil {
		return s.fail(ctx, err, "Invalid route")
	}
	query, err := queries.NewEstimateRouteQuery(route.NewSequence(stops...), coordinateToDomain(req.Start), req.StartTime)
	if err != nil {
		return s.fail(ctx, err, "Invalid route")
	}

	estimate, err := s.handlers.EstimateRoute.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to estimate route")
	}

	return ctx.JSON(http.StatusOK, servers.Estimate{
		DistanceKm:        estimate.DistanceKm,
		TravelSeconds:     estimate.TravelTime.Seconds(),
		WithinTimeWindows: estimate.WithinTimeWindows,
		ValidSequence:     estimate.ValidSequence,
	})
}

// FindNearbyCouriers handles GET /api/v1/couriers/nearby.
func (s *Server) FindNearbyCouriers(ctx echo.Context, params servers.FindNearbyCouriersParams) error {
	limit := DefaultNearbyLimit
	if params.Limit != nil {
		limit = *params.Limit
	}

	var opts []queries.NearbyOption
	if params.RadiusKm != nil {
		opts = append(opts, queries.WithRadius(*params.RadiusKm))
	}
	area, err := areaFromParams(params)
	if err != nil {
		return s.fail(ctx, err, "Invalid area")
	}
	if area != nil {
		opts = append(opts, queries.WithArea(*area))
	}

	target := kernel.Coordinate{Lat: params.Lat, Lon: params.Lon}
	query, err := queries.NewFindNearbyCouriersQuery(target, limit, opts...)
	if err != nil {
		return s.fail(ctx, err, "Invalid proximity search")
	}

	found, err := s.handlers.FindNearbyCouriers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to find couriers")
	}

	response := servers.NearbyCouriers{Couriers: make([]servers.NearbyCourier, len(found.Couriers))}
	for i, c := range found.Couriers {
		response.Couriers[i] = nearbyCourierFromQuery(c)
	}
	if found.Fastest != nil {
		fastest := nearbyCourierFromQuery(*found.Fastest)
		response.Fastest = &fastest
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateZones handles POST /api/v1/zones - partitions an area into sectors.
func (s *Server) CreateZones(ctx echo.Context) error {
	var req servers.CreateZonesJSONRequestBody
	if err := ctx.Bind(&req); err != nil {
		return errInvalidBody
	}

	includeLoad := req.IncludeLoad != nil && *req.IncludeLoad
	query, err := queries.NewCreateZonesQuery(coordinateToDomain(req.Center), req.RadiusKm, req.Count, includeLoad)
	if err != nil {
		return s.fail(ctx, err, "Invalid zone request")
	}

	created, err := s.handlers.CreateZones.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to create zones")
	}

	response := servers.Zones{Zones: make([]servers.Zone, len(created.Zones)), Uncovered: created.Uncovered}
	for i, z := range created.Zones {
		response.Zones[i] = zoneFromDomain(z.Zone, z.CourierIDs)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCouriers handles GET /api/v1/couriers - retrieves all couriers.
func (s *Server) GetCouriers(ctx echo.Context) error {
	couriers, err := s.handlers.GetAllCouriers.Handle(ctx.Request().Context(), queries.NewGetAllCouriersQuery())
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve couriers")
	}

	response := make([]servers.Courier, len(couriers))
	for i, c := range couriers {
		response[i] = servers.Courier{
			Id:         c.ID.Bytes(),
			Name:       c.Name,
			SpeedKmh:   c.SpeedKmh,
			Location:   coordinateFromDomain(c.Location),
			ReportedAt: c.ReportedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateCourier handles POST /api/v1/couriers - registers a courier at its first position.
func (s *Server) CreateCourier(ctx echo.Context) error {
	var req servers.CreateCourierJSONRequestBody
	if err := ctx.Bind(&req); err != nil {
		return errInvalidBody
	}

	reportedAt := s.now()
	if req.ReportedAt != nil {
		reportedAt = *req.ReportedAt
	}

	cmd, err := commands.NewCreateCourierCommand(req.Name, req.SpeedKmh, coordinateToDomain(req.Location), reportedAt)
	if err != nil {
		return s.fail(ctx, err, "Invalid courier data")
	}

	if err = s.handlers.CreateCourier.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to create courier")
	}

	return ctx.JSON(http.StatusCreated, servers.CreatedCourier{Id: cmd.CourierID().Bytes()})
}

// ReportCourierLocation handles PUT /api/v1/couriers/{courierId}/location.
func (s *Server) ReportCourierLocation(ctx echo.Context, courierId openapi_types.UUID) error {
	id, err := uuidToDomain("courierId", courierId)
	if err != nil {
		return s.fail(ctx, err, "Invalid courier id")
	}

	var req servers.ReportCourierLocationJSONRequestBody
	if err = ctx.Bind(&req); err != nil {
		return errInvalidBody
	}

	reportedAt := s.now()
	if req.ReportedAt != nil {
		reportedAt = *req.ReportedAt
	}

	cmd, err := commands.NewUpdateCourierLocationCommand(id, coordinateToDomain(req.Location), reportedAt)
	if err != nil {
		return s.fail(ctx, err, "Invalid location report")
	}

	if err = s.handlers.UpdateCourierLocation.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err, "Failed to report location")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// fail maps domain errors to a status. Client errors carry the error text;
// server errors carry only the summary and are logged.
func (s *Server) fail(ctx echo.Context, err error, summary string) error {
	status := statusOf(err)
	if status >= http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), summary,
			"method", ctx.Request().Method, "path", ctx.Path(), "error", err)
		return ctx.JSON(status, servers.Error{Code: status, Message: summary})
	}

	return ctx.JSON(status, servers.Error{Code: status, Message: summary + ": " + err.Error()})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, courier.ErrStaleLocationReport):
		return http.StatusConflict
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
