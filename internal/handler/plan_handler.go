package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-notification-planning/internal/domain"
	"github.com/KasumiMercury/primind-notification-planning/internal/infra/schedulefeed"
	"github.com/KasumiMercury/primind-notification-planning/internal/infra/taskqueue"
	"github.com/KasumiMercury/primind-notification-planning/internal/observability/tracing"
	"github.com/KasumiMercury/primind-notification-planning/internal/service/planner"
)

type PlanHandler struct {
	plannerService *planner.Service
	scheduleFeed   schedulefeed.ScheduleFeed
	planRepo       domain.PlanRepository
	completionRepo domain.CompletionRepository
	taskQueue      taskqueue.TaskQueue
	resultRecorder domain.PlanResultRecorder
}

func NewPlanHandler(
	plannerService *planner.Service,
	scheduleFeed schedulefeed.ScheduleFeed,
	planRepo domain.PlanRepository,
	completionRepo domain.CompletionRepository,
	taskQueue taskqueue.TaskQueue,
	resultRecorder domain.PlanResultRecorder,
) *PlanHandler {
	return &PlanHandler{
		plannerService: plannerService,
		scheduleFeed:   scheduleFeed,
		planRepo:       planRepo,
		completionRepo: completionRepo,
		taskQueue:      taskQueue,
		resultRecorder: resultRecorder,
	}
}

// HandleBuildPlan builds a plan from a caller-supplied applet snapshot. The
// result is returned without persisting or registering anything; callers use
// it for previews and diagnostics.
func (h *PlanHandler) HandleBuildPlan(c *gin.Context) {
	ctx := c.Request.Context()

	var req PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "plan request binding failed",
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	completions := make(domain.CompletionRecords)
	for _, entry := range req.Completions {
		completions.Add(entry.EntityID, entry.EventID, entry.CompletedAt)
	}
	progress := make(domain.ProgressRecords)
	for _, entry := range req.Progress {
		progress.Add(entry.EntityID, entry.EventID, entry.StartedAt)
	}

	ctx, span := tracing.StartBuildSpan(ctx, req.AppletID, len(req.Events))
	defer span.End()

	resp := h.plannerService.Build(ctx, planner.Input{
		AppletID:      req.AppletID,
		AppletName:    req.AppletName,
		EventEntities: req.Events,
		Completions:   completions,
		Progress:      progress,
	})

	c.JSON(http.StatusOK, resp)
}

// HandlePlanApplet runs the full planning pass for one applet: fetch the
// schedule snapshot, merge locally recorded completions, build the plan,
// persist it, register the notifications with the delivery queue and record
// run statistics.
func (h *PlanHandler) HandlePlanApplet(c *gin.Context) {
	ctx := c.Request.Context()

	appletID := c.Param("appletId")
	if appletID == "" {
		respondError(c, http.StatusBadRequest, "validation_error", "appletId is required")
		return
	}

	runID := c.GetHeader("X-Run-ID")

	schedule, err := h.scheduleFeed.GetAppletSchedule(ctx, appletID)
	if err != nil {
		if errors.Is(err, schedulefeed.ErrAppletNotFound) {
			respondError(c, http.StatusNotFound, "not_found", "applet not found")
			return
		}
		slog.ErrorContext(ctx, "failed to fetch applet schedule",
			slog.String("applet_id", appletID),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusBadGateway, "upstream_error", "failed to fetch applet schedule")
		return
	}

	completions := schedule.CompletionRecords()
	if local, err := h.completionRepo.GetCompletions(ctx, appletID); err != nil {
		if !errors.Is(err, domain.ErrCompletionsNotFound) {
			slog.WarnContext(ctx, "failed to load locally recorded completions",
				slog.String("applet_id", appletID),
				slog.String("error", err.Error()),
			)
		}
	} else {
		completions.Merge(local)
	}

	ctx, span := tracing.StartBuildSpan(ctx, appletID, len(schedule.Events))
	defer span.End()

	resp := h.plannerService.Build(ctx, planner.Input{
		AppletID:      schedule.AppletID,
		AppletName:    schedule.AppletName,
		EventEntities: schedule.Events,
		Completions:   completions,
		Progress:      schedule.ProgressRecords(),
	})

	builtAt := time.Now()

	plan := &domain.NotificationPlan{
		AppletID:   resp.AppletID,
		AppletName: resp.AppletName,
		Events:     resp.Events,
		BuiltAt:    builtAt,
	}

	if err := h.planRepo.SavePlan(ctx, plan); err != nil {
		slog.ErrorContext(ctx, "failed to persist plan",
			slog.String("applet_id", appletID),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "storage_error", "failed to persist plan")
		return
	}

	registered := h.registerNotifications(c, resp)

	h.recordResults(c, runID, resp, builtAt)

	c.JSON(http.StatusOK, &AppletPlanResponse{
		AppletID:          resp.AppletID,
		AppletName:        resp.AppletName,
		Events:            resp.Events,
		NotificationCount: resp.NotificationCount,
		BrokenCount:       resp.BrokenCount,
		RegisteredCount:   registered,
	})
}

func (h *PlanHandler) registerNotifications(c *gin.Context, resp *planner.Response) int {
	ctx := c.Request.Context()

	if h.taskQueue == nil {
		return 0
	}

	registered := 0
	for i := range resp.Events {
		for _, n := range resp.Events[i].Notifications {
			task := &taskqueue.NotificationTask{
				NotificationID: n.NotificationID,
				AppletID:       n.AppletID,
				ScheduleAt:     n.ScheduledAt,

				TaskID:   n.NotificationID,
				TaskType: n.Type.String(),
				EventID:  n.EventID,
				Header:   n.NotificationHeader,
				Body:     n.NotificationBody,
			}

			if _, err := h.taskQueue.RegisterNotification(ctx, task); err != nil {
				slog.WarnContext(ctx, "failed to register notification task",
					slog.String("notification_id", n.NotificationID),
					slog.String("event_id", n.EventID),
					slog.String("error", err.Error()),
				)
				continue
			}
			registered++
		}
	}

	return registered
}

func (h *PlanHandler) recordResults(c *gin.Context, runID string, resp *planner.Response, builtAt time.Time) {
	ctx := c.Request.Context()

	if h.resultRecorder == nil {
		return
	}

	records := make([]domain.PlanResultRecord, 0, len(resp.Events))
	for i := range resp.Events {
		event := &resp.Events[i]

		reminderCount := 0
		for _, n := range event.Notifications {
			if n.Type == domain.NotificationReminder {
				reminderCount++
			}
		}

		records = append(records, domain.PlanResultRecord{
			RunID:             runID,
			AppletID:          resp.AppletID,
			EventID:           event.EventID,
			EventName:         event.EventName,
			BreakReason:       event.BreakReason.String(),
			NotificationCount: len(event.Notifications),
			ReminderCount:     reminderCount,
			BuiltAt:           builtAt,
		})
	}

	if err := h.resultRecorder.RecordPlanResults(ctx, records); err != nil {
		slog.WarnContext(ctx, "failed to record plan results",
			slog.String("applet_id", resp.AppletID),
			slog.String("error", err.Error()),
		)
	}
}

// HandleCompletion records one completion day mark for later reminder
// computation.
func (h *PlanHandler) HandleCompletion(c *gin.Context) {
	ctx := c.Request.Context()

	var req CompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "completion request binding failed",
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	completedAt := req.CompletedAt
	if completedAt.IsZero() {
		completedAt = time.Now()
	}

	if err := h.completionRepo.SaveCompletion(ctx, req.AppletID, req.EntityID, req.EventID, completedAt); err != nil {
		slog.ErrorContext(ctx, "failed to save completion",
			slog.String("applet_id", req.AppletID),
			slog.String("entity_id", req.EntityID),
			slog.String("event_id", req.EventID),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "storage_error", "failed to save completion")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"applet_id":    req.AppletID,
		"entity_id":    req.EntityID,
		"event_id":     req.EventID,
		"completed_at": completedAt.Format(time.RFC3339),
	})
}

func respondError(c *gin.Context, status int, errType, message string) {
	c.JSON(status, gin.H{
		"error":   errType,
		"message": message,
	})
}
