package generatedocumentfields

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/pb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"document-workers/internal/common/config"
	apperrors "document-workers/internal/common/errors"
	"document-workers/internal/common/logger"
	"document-workers/internal/document/assembler"
	"document-workers/internal/document/builders"
	"document-workers/internal/document/diagnostics"
	"document-workers/internal/document/dispatch"
	"document-workers/internal/document/tabs"
	"document-workers/internal/document/templates"
	"document-workers/internal/models"
)

// ==========================
// Mock Implementations
// ==========================

type MockAssembler struct {
	mock.Mock
}

func (m *MockAssembler) Assemble(ctx context.Context, req assembler.Request) (*models.GenericObject, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GenericObject), args.Error(1)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, report diagnostics.Report) (string, error) {
	args := m.Called(ctx, report)
	return args.String(0), args.Error(1)
}

// ==========================
// Mock Job Helper
// ==========================

func createMockJob(key int64, variables map[string]interface{}) entities.Job {
	variablesJSON, _ := json.Marshal(variables)

	activatedJob := &pb.ActivatedJob{
		Key:                      key,
		Type:                     TaskType,
		ProcessInstanceKey:       key * 10,
		BpmnProcessId:            "contract-signing",
		ProcessDefinitionVersion: 1,
		ProcessDefinitionKey:     1,
		ElementId:                "Activity_GenerateDocumentFields",
		ElementInstanceKey:       1,
		CustomHeaders:            "{}",
		Worker:                   "test-worker",
		Retries:                  3,
		Deadline:                 0,
		Variables:                string(variablesJSON),
	}

	return entities.Job{ActivatedJob: activatedJob}
}

// ==========================
// Test Helpers
// ==========================

func createTestConfig() *Config {
	return &Config{
		Enabled:            true,
		MaxJobsActive:      5,
		Timeout:            5 * time.Second,
		Environment:        templates.EnvDemo,
		UtilityUsageIndex:  "utility-usage",
		PublishDiagnostics: true,
	}
}

func createTestDispatcher(t *testing.T) *dispatch.Dispatcher {
	t.Helper()
	descriptors := tabs.NewRegistry()
	builderRegistry := builders.NewRegistry()
	require.NoError(t, templates.Load(descriptors, builderRegistry))
	return dispatch.New(descriptors, builderRegistry, logger.NewNoOpLogger())
}

func createTestHandler(t *testing.T, asm *MockAssembler, pub *MockPublisher) *Handler {
	t.Helper()
	opts := HandlerOptions{
		CustomConfig: createTestConfig(),
		Logger:       logger.NewTestLogger(t),
		Assembler:    asm,
		Mapper:       createTestDispatcher(t),
	}
	if pub != nil {
		opts.Publisher = pub
	}
	h, err := NewHandler(opts)
	require.NoError(t, err)
	return h
}

func gridServicesID(t *testing.T, env string) string {
	t.Helper()
	id, ok := templates.TemplateID("Grid Services Agreement", env)
	require.True(t, ok)
	return id
}

func createTestGenericObject() *models.GenericObject {
	return &models.GenericObject{
		Contact:  &models.Contact{FirstName: "Jane", LastName: "Doe"},
		Contract: &models.Contract{ID: "c-1", ContractNumber: "CN-100"},
		SignerDetails: []models.SignerDetail{
			{Role: models.SignerRolePrimaryOwner, FullName: "Jane Doe", Email: "jane@x.com"},
		},
	}
}

// ==========================
// Constructor Tests
// ==========================

func TestNewHandler(t *testing.T) {
	t.Run("requires assembler and mapper", func(t *testing.T) {
		_, err := NewHandler(HandlerOptions{CustomConfig: createTestConfig(), Logger: logger.NewTestLogger(t)})
		require.Error(t, err)
	})

	t.Run("rejects invalid config", func(t *testing.T) {
		cfg := createTestConfig()
		cfg.Environment = ""
		_, err := NewHandler(HandlerOptions{
			CustomConfig: cfg,
			Assembler:    &MockAssembler{},
			Mapper:       createTestDispatcher(t),
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "environment is required")
	})

	t.Run("publisher dropped when diagnostics disabled", func(t *testing.T) {
		cfg := createTestConfig()
		cfg.PublishDiagnostics = false
		h, err := NewHandler(HandlerOptions{
			CustomConfig: cfg,
			Logger:       logger.NewTestLogger(t),
			Assembler:    &MockAssembler{},
			Mapper:       createTestDispatcher(t),
			Publisher:    &MockPublisher{},
		})
		require.NoError(t, err)
		assert.Nil(t, h.publisher)
	})
}

func TestCreateConfigFromAppConfig(t *testing.T) {
	appCfg := &config.Config{
		Workers: map[string]config.WorkerConfig{
			TaskType: {Enabled: true, MaxJobsActive: 9, Timeout: 12000},
		},
	}
	appCfg.Documents.Environment = "staging"
	appCfg.Documents.UtilityUsageIndex = "usage-v2"
	appCfg.Integrations.AWS.SNS.Enabled = true

	cfg := createConfigFromAppConfig(appCfg, nil)
	assert.True(t, cfg.Enabled)
	assert.Equal(t, 9, cfg.MaxJobsActive)
	assert.Equal(t, 12*time.Second, cfg.Timeout)
	assert.Equal(t, "staging", cfg.Environment)
	assert.Equal(t, "usage-v2", cfg.UtilityUsageIndex)
	assert.True(t, cfg.PublishDiagnostics)

	custom := createTestConfig()
	assert.Same(t, custom, createConfigFromAppConfig(appCfg, custom))
}

// ==========================
// Input Parsing Tests
// ==========================

func TestHandler_ParseInput(t *testing.T) {
	h := createTestHandler(t, &MockAssembler{}, nil)

	tests := []struct {
		name      string
		variables map[string]interface{}
		wantErr   string
		check     func(t *testing.T, in *Input)
	}{
		{
			name: "defaults environment",
			variables: map[string]interface{}{
				"contractId": "c-1",
				"templateId": "tmpl-1",
			},
			check: func(t *testing.T, in *Input) {
				assert.Equal(t, "c-1", in.ContractID)
				assert.Equal(t, templates.EnvDemo, in.Environment)
			},
		},
		{
			name: "explicit environment and overrides",
			variables: map[string]interface{}{
				"contractId":    "c-1",
				"templateId":    "tmpl-1",
				"environment":   "production",
				"opportunityId": "o-2",
				"quoteId":       "q-3",
				"customerTier":  "gold",
			},
			check: func(t *testing.T, in *Input) {
				assert.Equal(t, "production", in.Environment)
				assert.Equal(t, "o-2", in.OpportunityID)
				assert.Equal(t, "q-3", in.QuoteID)
			},
		},
		{
			name:      "missing contract id",
			variables: map[string]interface{}{"templateId": "tmpl-1"},
			wantErr:   "contractId",
		},
		{
			name:      "empty template id",
			variables: map[string]interface{}{"contractId": "c-1", "templateId": ""},
			wantErr:   "templateId",
		},
		{
			name: "unknown environment",
			variables: map[string]interface{}{
				"contractId":  "c-1",
				"templateId":  "tmpl-1",
				"environment": "qa",
			},
			wantErr: "environment",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, err := h.parseInput(createMockJob(1, tt.variables))
			if tt.wantErr != "" {
				require.Error(t, err)
				stdErr, ok := apperrors.AsStandardError(err)
				require.True(t, ok)
				assert.Equal(t, apperrors.ErrCodeInvalidJobInput, stdErr.Code)
				assert.Contains(t, stdErr.Details, tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, in)
		})
	}
}

// ==========================
// Execute Tests
// ==========================

func TestHandler_Execute_GridServices(t *testing.T) {
	asm := &MockAssembler{}
	asm.On("Assemble", mock.Anything, assembler.Request{ContractID: "c-1"}).
		Return(createTestGenericObject(), nil)
	h := createTestHandler(t, asm, nil)

	templateID := gridServicesID(t, templates.EnvDemo)
	out, err := h.Execute(context.Background(), &Input{
		ContractID:  "c-1",
		TemplateID:  templateID,
		Environment: templates.EnvDemo,
	})
	require.NoError(t, err)
	asm.AssertExpectations(t)

	assert.NotEmpty(t, out.ResolutionID)
	assert.Equal(t, templateID, out.TemplateID)
	assert.Equal(t, "Grid Services Agreement", out.Template)
	assert.Equal(t, "declarative", out.Mode)
	assert.Equal(t, 15, out.Fields.Len())

	name, _ := out.Fields.Get("primary_owner_full_name")
	assert.Equal(t, "Jane Doe", name)
	coOwner, _ := out.Fields.Get("co_owner_full_name")
	assert.Equal(t, "", coOwner)

	require.Len(t, out.Tabs, 15)
	assert.Equal(t, tabs.Tab{TabLabel: "primary_owner_full_name", Value: "Jane Doe", TabType: tabs.TabKindPrefill}, out.Tabs[0])
	assert.Contains(t, fallbackNames(out.FallbackFields), "co_owner_full_name")
	assert.NotContains(t, fallbackNames(out.FallbackFields), "contract_number")
}

func TestHandler_Execute_OutputKeepsFieldOrder(t *testing.T) {
	asm := &MockAssembler{}
	asm.On("Assemble", mock.Anything, mock.Anything).Return(createTestGenericObject(), nil)
	h := createTestHandler(t, asm, nil)

	out, err := h.Execute(context.Background(), &Input{
		ContractID:  "c-1",
		TemplateID:  gridServicesID(t, templates.EnvDemo),
		Environment: templates.EnvDemo,
	})
	require.NoError(t, err)

	raw, err := json.Marshal(out)
	require.NoError(t, err)
	body := string(raw)

	first := strings.Index(body, `"primary_owner_full_name":"Jane Doe"`)
	last := strings.Index(body, `"contract_number":"CN-100"`)
	require.Greater(t, first, 0)
	assert.Greater(t, last, first)
	assert.Contains(t, body, `"fallbackFields":[`)
}

func TestHandler_Execute_Errors(t *testing.T) {
	tests := []struct {
		name          string
		templateID    string
		assembleErr   error
		wantCode      apperrors.ErrorCode
		wantRetryable bool
	}{
		{
			name:       "unknown template",
			templateID: "unknown-id",
			wantCode:   apperrors.ErrCodeTemplateNotFound,
		},
		{
			name:        "missing contract",
			assembleErr: &assembler.NotFoundError{Kind: models.RecordKindContract, ID: "c-1"},
			wantCode:    apperrors.ErrCodeSourceRecordNotFound,
		},
		{
			name:          "search failure",
			assembleErr:   errors.Join(assembler.ErrSearchFailed, errors.New("503")),
			wantCode:      apperrors.ErrCodeSearchQueryFailed,
			wantRetryable: true,
		},
		{
			name:          "store timeout",
			assembleErr:   context.DeadlineExceeded,
			wantCode:      apperrors.ErrCodeQueryTimeout,
			wantRetryable: true,
		},
		{
			name:          "store unreachable",
			assembleErr:   fmt.Errorf("query contract c-1: %w", assembler.ErrStoreUnavailable),
			wantCode:      apperrors.ErrCodeDatabaseConnectionFailed,
			wantRetryable: true,
		},
		{
			name:          "store failure",
			assembleErr:   errors.New("connection reset by peer"),
			wantCode:      apperrors.ErrCodeQueryExecutionFailed,
			wantRetryable: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			asm := &MockAssembler{}
			if tt.assembleErr != nil {
				asm.On("Assemble", mock.Anything, mock.Anything).Return(nil, tt.assembleErr)
			} else {
				asm.On("Assemble", mock.Anything, mock.Anything).Return(createTestGenericObject(), nil)
			}
			h := createTestHandler(t, asm, nil)

			templateID := tt.templateID
			if templateID == "" {
				templateID = gridServicesID(t, templates.EnvDemo)
			}

			out, err := h.Execute(context.Background(), &Input{ContractID: "c-1", TemplateID: templateID, Environment: templates.EnvDemo})
			assert.Nil(t, out)

			stdErr, ok := apperrors.AsStandardError(err)
			require.True(t, ok, "got %v", err)
			assert.Equal(t, tt.wantCode, stdErr.Code)
			assert.Equal(t, tt.wantRetryable, stdErr.Retryable)
		})
	}
}

func TestHandler_MapError_BuildFailed(t *testing.T) {
	h := createTestHandler(t, &MockAssembler{}, nil)

	err := h.mapError(context.Background(), &Input{TemplateID: "t-1"}, errors.Join(dispatch.ErrBuildFailed, errors.New("nil quote")))
	stdErr, ok := apperrors.AsStandardError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeTemplateBuildFailed, stdErr.Code)
	assert.False(t, stdErr.Retryable)
}

// ==========================
// Diagnostics Tests
// ==========================

func TestHandler_ReportFallbacks(t *testing.T) {
	asm := &MockAssembler{}
	asm.On("Assemble", mock.Anything, mock.Anything).Return(createTestGenericObject(), nil)
	pub := &MockPublisher{}
	h := createTestHandler(t, asm, pub)

	input := &Input{ContractID: "c-1", TemplateID: gridServicesID(t, templates.EnvDemo), Environment: templates.EnvDemo}
	out, err := h.Execute(context.Background(), input)
	require.NoError(t, err)

	pub.On("Publish", mock.Anything, mock.MatchedBy(func(r diagnostics.Report) bool {
		return r.JobKey == 7 &&
			r.ProcessInstanceKey == 70 &&
			r.ContractID == "c-1" &&
			r.ReportID == out.ResolutionID &&
			len(r.Fallbacks) == len(out.FallbackFields)
	})).Return(out.ResolutionID, nil).Once()

	h.reportFallbacks(context.Background(), createMockJob(7, nil), input, out)
	pub.AssertExpectations(t)
}

func TestHandler_ReportFallbacks_PublishErrorIsLogged(t *testing.T) {
	pub := &MockPublisher{}
	pub.On("Publish", mock.Anything, mock.Anything).Return("", errors.New("throttled"))
	h := createTestHandler(t, &MockAssembler{}, pub)

	out := &Output{FallbackFields: []tabs.Fallback{{Field: "x", Reason: tabs.ReasonAbsent}}}
	assert.NotPanics(t, func() {
		h.reportFallbacks(context.Background(), createMockJob(1, nil), &Input{}, out)
	})
	pub.AssertNumberOfCalls(t, "Publish", 1)
}

func TestHandler_ReportFallbacks_SkipsCleanResolutions(t *testing.T) {
	pub := &MockPublisher{}
	h := createTestHandler(t, &MockAssembler{}, pub)

	h.reportFallbacks(context.Background(), createMockJob(1, nil), &Input{}, &Output{FallbackFields: []tabs.Fallback{}})
	pub.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestHandler_WorkerOptions(t *testing.T) {
	h := createTestHandler(t, &MockAssembler{}, nil)

	opts := h.WorkerOptions()
	assert.Equal(t, TaskType, opts.TaskType)
	assert.Equal(t, 5, opts.MaxJobsActive)
	assert.ElementsMatch(t, []string{"contractId", "opportunityId", "quoteId", "templateId", "environment"}, opts.FetchVariables)
}
