package generatedocumentfields

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"

	"document-workers/internal/common/camunda"
	"document-workers/internal/common/config"
	apperrors "document-workers/internal/common/errors"
	"document-workers/internal/common/logger"
	"document-workers/internal/common/metrics"
	"document-workers/internal/common/observability"
	"document-workers/internal/common/validation"
	"document-workers/internal/document/assembler"
	"document-workers/internal/document/diagnostics"
	"document-workers/internal/document/dispatch"
	"document-workers/internal/document/tabs"
	"document-workers/internal/models"
)

const TaskType = "generate-document-fields"

type Assembler interface {
	Assemble(ctx context.Context, req assembler.Request) (*models.GenericObject, error)
}

type FieldMapper interface {
	GetFieldMap(environment, templateID string, g *models.GenericObject) (*dispatch.Result, error)
}

type Handler struct {
	config        *Config
	logger        logger.Logger
	assembler     Assembler
	mapper        FieldMapper
	publisher     diagnostics.Publisher
	observability *observability.Observability
	errorHandler  *apperrors.ErrorHandler
	retry         *camunda.RetryConfig
}

type HandlerOptions struct {
	AppConfig     *config.Config
	CustomConfig  *Config
	Logger        logger.Logger
	Assembler     Assembler
	Mapper        FieldMapper
	Publisher     diagnostics.Publisher
	Observability *observability.Observability
}

func NewHandler(opts HandlerOptions) (*Handler, error) {
	workerConfig := createConfigFromAppConfig(opts.AppConfig, opts.CustomConfig)

	if err := workerConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration for %s: %w", TaskType, err)
	}
	if opts.Assembler == nil || opts.Mapper == nil {
		return nil, fmt.Errorf("%s requires an assembler and a field mapper", TaskType)
	}

	var loggerInstance logger.Logger
	if opts.Logger != nil {
		loggerInstance = opts.Logger
	} else {
		loggerInstance = logger.NewStructured("info", "json")
	}
	loggerInstance = loggerInstance.WithFields(map[string]interface{}{"worker": TaskType})

	publisher := opts.Publisher
	if !workerConfig.PublishDiagnostics {
		publisher = nil
	}

	return &Handler{
		config:        workerConfig,
		logger:        loggerInstance,
		assembler:     opts.Assembler,
		mapper:        opts.Mapper,
		publisher:     publisher,
		observability: opts.Observability,
		errorHandler:  apperrors.NewErrorHandler(loggerInstance),
		retry:         camunda.DefaultRetryConfig,
	}, nil
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	startTime := time.Now()
	metrics.WorkerJobsActive.WithLabelValues(TaskType).Inc()
	defer metrics.WorkerJobsActive.WithLabelValues(TaskType).Dec()

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	h.logger.Info("Processing document field generation", map[string]interface{}{
		"jobKey":             job.GetKey(),
		"processInstanceKey": job.GetProcessInstanceKey(),
	})

	input, err := h.parseInput(job)
	if err != nil {
		h.failJob(ctx, client, job, err, startTime)
		return
	}

	output, err := h.Execute(ctx, input)
	if err != nil {
		h.failJob(ctx, client, job, err, startTime)
		return
	}

	h.reportFallbacks(ctx, job, input, output)

	if err := h.completeJob(ctx, client, job, output); err != nil {
		h.logger.Error("Failed to complete job", map[string]interface{}{
			"jobKey": job.GetKey(),
			"error":  err.Error(),
		})
		h.observability.RecordJobProcessed(ctx, TaskType, "complete_failed")
		return
	}

	duration := time.Since(startTime)
	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(duration.Seconds())
	h.observability.RecordJobProcessed(ctx, TaskType, "completed")
	h.observability.RecordJobDuration(ctx, TaskType, duration, "completed")
}

// Execute assembles the generic object for the input's records and resolves
// the requested template against it.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	g, err := h.assembler.Assemble(ctx, assembler.Request{
		ContractID:    input.ContractID,
		OpportunityID: input.OpportunityID,
		QuoteID:       input.QuoteID,
	})
	if err != nil {
		return nil, h.mapError(ctx, input, err)
	}

	result, err := h.mapper.GetFieldMap(input.Environment, input.TemplateID, g)
	if err != nil {
		return nil, h.mapError(ctx, input, err)
	}

	if len(result.Fallbacks) > 0 {
		h.logger.Warn("Document fields fell back to empty values", map[string]interface{}{
			"template":   result.Template,
			"templateId": result.TemplateID,
			"fields":     fallbackNames(result.Fallbacks),
		})
	}

	fallbacks := result.Fallbacks
	if fallbacks == nil {
		fallbacks = []tabs.Fallback{}
	}

	return &Output{
		ResolutionID:   uuid.New().String(),
		TemplateID:     result.TemplateID,
		Environment:    result.Environment,
		Template:       result.Template,
		Mode:           string(result.Mode),
		Fields:         result.Fields,
		Tabs:           result.Tabs(),
		FallbackFields: fallbacks,
	}, nil
}

func (h *Handler) parseInput(job entities.Job) (*Input, error) {
	variables, err := job.GetVariablesAsMap()
	if err != nil {
		return nil, apperrors.NewInvalidJobInputError(fmt.Sprintf("parse job variables: %v", err))
	}

	validationResult := validation.ValidateInput(variables, GetInputSchema())
	if !validationResult.Valid {
		return nil, apperrors.NewInvalidJobInputError(strings.Join(validationResult.GetErrorMessages(), "; "))
	}

	var input Input
	if err := json.Unmarshal([]byte(job.GetVariables()), &input); err != nil {
		return nil, apperrors.NewInvalidJobInputError(fmt.Sprintf("decode job variables: %v", err))
	}
	if input.Environment == "" {
		input.Environment = h.config.Environment
	}
	return &input, nil
}

// mapError translates engine and store errors into StandardErrors so the
// error handler can pick between a retry and a BPMN error.
func (h *Handler) mapError(ctx context.Context, input *Input, err error) error {
	var notFound *assembler.NotFoundError

	switch {
	case errors.Is(err, dispatch.ErrTemplateNotFound):
		return apperrors.NewTemplateNotFoundError(input.Environment, input.TemplateID)
	case errors.Is(err, dispatch.ErrBuildFailed):
		return apperrors.NewTemplateBuildFailedError(input.TemplateID, err)
	case errors.Is(err, tabs.ErrConfiguration):
		return apperrors.NewTemplateConfigurationError(err)
	case errors.As(err, &notFound):
		return apperrors.NewSourceRecordNotFoundError(string(notFound.Kind), notFound.ID)
	case errors.Is(err, assembler.ErrStoreUnavailable):
		return apperrors.NewDatabaseConnectionFailedError(err)
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded):
		return apperrors.NewQueryTimeoutError("assemble")
	case errors.Is(err, assembler.ErrSearchFailed):
		return apperrors.NewSearchQueryFailedError(h.config.UtilityUsageIndex, err)
	default:
		return apperrors.NewQueryExecutionFailedError("assemble", err)
	}
}

// reportFallbacks publishes a diagnostics report. Publishing never fails
// the job.
func (h *Handler) reportFallbacks(ctx context.Context, job entities.Job, input *Input, output *Output) {
	if h.publisher == nil || len(output.FallbackFields) == 0 {
		return
	}

	reportID, err := h.publisher.Publish(ctx, diagnostics.Report{
		ReportID:           output.ResolutionID,
		Environment:        output.Environment,
		TemplateID:         output.TemplateID,
		Template:           output.Template,
		Mode:               output.Mode,
		ContractID:         input.ContractID,
		JobKey:             job.GetKey(),
		ProcessInstanceKey: job.GetProcessInstanceKey(),
		Fallbacks:          output.FallbackFields,
	})
	if err != nil {
		stdErr := apperrors.NewNotificationSendFailedError("fallback-report", err)
		h.logger.Warn("Failed to publish fallback report", map[string]interface{}{
			"jobKey":    job.GetKey(),
			"errorCode": stdErr.Code,
			"error":     stdErr.Details,
		})
		return
	}

	h.logger.Debug("Fallback report published", map[string]interface{}{
		"jobKey":   job.GetKey(),
		"reportId": reportID,
	})
}

func (h *Handler) completeJob(ctx context.Context, client worker.JobClient, job entities.Job, output *Output) error {
	request, err := client.NewCompleteJobCommand().JobKey(job.GetKey()).VariablesFromObject(output)
	if err != nil {
		return fmt.Errorf("create complete job command: %w", err)
	}

	err = camunda.WithRetry(ctx, h.retry, "complete-job", func(ctx context.Context) error {
		_, err := request.Send(ctx)
		return err
	})
	if err != nil {
		return err
	}

	h.logger.Info("Document fields generated", map[string]interface{}{
		"jobKey":    job.GetKey(),
		"template":  output.Template,
		"mode":      output.Mode,
		"fields":    output.Fields.Len(),
		"fallbacks": len(output.FallbackFields),
	})
	return nil
}

func (h *Handler) failJob(ctx context.Context, client worker.JobClient, job entities.Job, err error, startTime time.Time) {
	stdErr := apperrors.Normalize(err)
	metrics.WorkerJobsFailed.WithLabelValues(TaskType, string(stdErr.Code)).Inc()
	h.observability.RecordJobProcessed(ctx, TaskType, "failed")
	h.observability.RecordJobDuration(ctx, TaskType, time.Since(startTime), "failed")

	h.errorHandler.HandleJobError(ctx, client, job, stdErr)
}

func (h *Handler) WorkerOptions() camunda.WorkerOptions {
	return camunda.WorkerOptions{
		TaskType:       TaskType,
		MaxJobsActive:  h.config.MaxJobsActive,
		Timeout:        h.config.Timeout,
		FetchVariables: inputVariables,
	}
}

func (h *Handler) GetTaskType() string {
	return TaskType
}

func (h *Handler) IsEnabled() bool {
	return h.config.Enabled
}

func (h *Handler) GetConfig() *Config {
	return h.config
}

func fallbackNames(fallbacks []tabs.Fallback) []string {
	names := make([]string, len(fallbacks))
	for i, f := range fallbacks {
		names[i] = f.Field
	}
	return names
}
