// Package assembler fetches the source records for one document and
// aggregates them into a models.GenericObject.
package assembler

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"document-workers/internal/common/logger"
	"document-workers/internal/common/metrics"
	"document-workers/internal/models"
)

const tracerName = "document-workers/assembler"

// UsageSource looks up utility usage for an opportunity.
type UsageSource interface {
	FindByOpportunity(ctx context.Context, opportunityID string) (*models.UtilityUsageDetails, error)
}

// Request names the records a document is generated from. Opportunity and
// quote ids default to the ones referenced by the contract.
type Request struct {
	ContractID    string
	OpportunityID string
	QuoteID       string
}

type Assembler struct {
	store  Store
	usage  UsageSource
	logger logger.Logger
	tracer trace.Tracer
}

type Option func(*Assembler)

func WithTracer(t trace.Tracer) Option {
	return func(a *Assembler) { a.tracer = t }
}

// New returns an assembler reading from store. usage may be nil, in which
// case utility usage details are never populated.
func New(store Store, usage UsageSource, log logger.Logger, opts ...Option) *Assembler {
	a := &Assembler{
		store:  store,
		usage:  usage,
		logger: log.WithFields(map[string]interface{}{"component": "assembler"}),
		tracer: otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Assemble loads the contract and then, concurrently, the contact,
// opportunity, quote and utility usage it refers to. Only a missing contract
// is an error; any other missing record leaves its section nil.
func (a *Assembler) Assemble(ctx context.Context, req Request) (obj *models.GenericObject, err error) {
	ctx, span := a.tracer.Start(ctx, "assembler.Assemble",
		trace.WithAttributes(attribute.String("contract.id", req.ContractID)))
	start := time.Now()
	defer func() {
		outcome := "ok"
		if err != nil {
			outcome = "error"
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		metrics.DocumentAssemblyDuration.WithLabelValues(outcome).Observe(time.Since(start).Seconds())
		span.End()
	}()

	var contract models.Contract
	if err := a.fetch(ctx, models.RecordKindContract, req.ContractID, &contract); err != nil {
		return nil, err
	}

	obj = &models.GenericObject{
		Contract:      &contract,
		SignerDetails: contract.SignerDetails,
	}
	opportunityID := firstNonEmpty(req.OpportunityID, contract.OpportunityID)
	quoteID := firstNonEmpty(req.QuoteID, contract.QuoteID)

	var (
		contact     models.Contact
		opportunity models.Opportunity
		quote       models.Quote
		usage       *models.UtilityUsageDetails
	)
	var hasContact, hasOpportunity, hasQuote bool

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		hasContact, err = a.optional(gctx, models.RecordKindContact, contract.ContactID, &contact)
		return err
	})
	g.Go(func() (err error) {
		hasOpportunity, err = a.optional(gctx, models.RecordKindOpportunity, opportunityID, &opportunity)
		return err
	})
	g.Go(func() (err error) {
		hasQuote, err = a.optional(gctx, models.RecordKindQuote, quoteID, &quote)
		return err
	})
	if a.usage != nil && opportunityID != "" {
		g.Go(func() error {
			u, err := a.usage.FindByOpportunity(gctx, opportunityID)
			if errors.Is(err, ErrRecordNotFound) {
				a.logger.Debug("no utility usage for opportunity", map[string]interface{}{"opportunityId": opportunityID})
				return nil
			}
			usage = u
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if hasContact {
		obj.Contact = &contact
	}
	if hasOpportunity {
		obj.Opportunity = &opportunity
	}
	if hasQuote {
		obj.Quote = &quote
	}
	obj.UtilityUsageDetails = usage

	span.SetAttributes(
		attribute.Bool("section.contact", obj.Contact != nil),
		attribute.Bool("section.opportunity", obj.Opportunity != nil),
		attribute.Bool("section.quote", obj.Quote != nil),
		attribute.Bool("section.utility_usage", obj.UtilityUsageDetails != nil),
		attribute.Int("signers", len(obj.SignerDetails)),
	)
	return obj, nil
}

func (a *Assembler) fetch(ctx context.Context, kind models.RecordKind, id string, dest interface{}) error {
	ctx, span := a.tracer.Start(ctx, "assembler.fetch",
		trace.WithAttributes(attribute.String("record.kind", string(kind)), attribute.String("record.id", id)))
	defer span.End()

	if err := a.store.Get(ctx, kind, id, dest); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

// optional fetches a section that may legitimately be missing.
func (a *Assembler) optional(ctx context.Context, kind models.RecordKind, id string, dest interface{}) (bool, error) {
	if id == "" {
		return false, nil
	}
	err := a.fetch(ctx, kind, id, dest)
	if errors.Is(err, ErrRecordNotFound) {
		a.logger.Debug("section not found", map[string]interface{}{"kind": string(kind), "id": id})
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
