package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"os-scheduler/config"
	"os-scheduler/internal/requests"
	"os-scheduler/internal/schedulers"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	ShortestRemainingTimeFirst(ctx *fiber.Ctx) error
	PriorityNonPreemptive(ctx *fiber.Ctx) error
	PriorityPreemptive(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config}
}

// Register mounts the handler's routes under /api/v1.
func Register(app *fiber.App, handler SchedulerHandler) {
	v1 := app.Group("/api").Group("/v1")
	{
		v1.Post("/"+schedulers.FirstComeFirstServe.Slug(), handler.FirstComeFirstServe)
		v1.Post("/"+schedulers.ShortestJobFirst.Slug(), handler.ShortestJobFirst)
		v1.Post("/"+schedulers.ShortestRemainingTimeFirst.Slug(), handler.ShortestRemainingTimeFirst)
		v1.Post("/"+schedulers.PriorityNonPreemptive.Slug(), handler.PriorityNonPreemptive)
		v1.Post("/"+schedulers.PriorityPreemptive.Slug(), handler.PriorityPreemptive)
		v1.Post("/"+schedulers.RoundRobin.Slug(), handler.RoundRobin)
		v1.Post("/all", handler.AllAlgorithms)
		v1.Get("/health", handler.Health)
	}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.FirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestJobFirst)
}

func (s *SchedulerHandlerImpl) ShortestRemainingTimeFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestRemainingTimeFirst)
}

func (s *SchedulerHandlerImpl) PriorityNonPreemptive(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.PriorityNonPreemptive)
}

func (s *SchedulerHandlerImpl) PriorityPreemptive(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.PriorityPreemptive)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.RoundRobin)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	return ctx.JSON(schedulers.RunAll(request.Processes(s.config.PriorityLabels), s.options(request)))
}

func (s *SchedulerHandlerImpl) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"status": "ok"})
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, algorithm schedulers.Algorithm) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	response, err := schedulers.Schedule(algorithm, request.Processes(s.config.PriorityLabels), s.options(request))
	if err != nil {
		status := fiber.StatusInternalServerError
		if errors.Is(err, schedulers.ErrUnknownAlgorithm) {
			status = fiber.StatusNotFound
		}
		zap.L().Error("schedule failed", zap.String("algorithm", string(algorithm)), zap.Error(err))
		return ctx.Status(status).JSON(fiber.Map{"error": "can not process request"})
	}
	return ctx.JSON(response)
}

// options applies a per-request quantum on top of the configured ones.
func (s *SchedulerHandlerImpl) options(request *requests.ScheduleRequests) schedulers.Options {
	opts := s.config.Options()
	if request.TimeQuantum > 0 {
		opts.TimeQuantum = request.TimeQuantum
	}
	return opts
}

func parseRequest(ctx *fiber.Ctx) (*requests.ScheduleRequests, error) {
	request := &requests.ScheduleRequests{}
	if err := ctx.BodyParser(request); err != nil {
		return nil, errInvalidFormat
	}
	if err := request.Validate(); err != nil {
		return nil, err
	}
	return request, nil
}

var errInvalidFormat = errors.New("invalid request format")

func badRequest(ctx *fiber.Ctx, err error) error {
	zap.L().Debug("rejected request", zap.String("path", ctx.Path()), zap.Error(err))
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
}
