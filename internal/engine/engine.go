// Package engine implements ADSC's evaluation engine and event
// router (spec.md §4.1, §4.3): the single-threaded, event-driven core
// that consumes ingress events, maintains per-slot trackers, and
// emits outbound requests to the Switcher.
package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/emperorhan/auto-data-switch-controller/internal/decisionlog"
	"github.com/emperorhan/auto-data-switch-controller/internal/domain/event"
	"github.com/emperorhan/auto-data-switch-controller/internal/domain/model"
	"github.com/emperorhan/auto-data-switch-controller/internal/host"
	"github.com/emperorhan/auto-data-switch-controller/internal/metrics"
	"github.com/emperorhan/auto-data-switch-controller/internal/retry"
	"github.com/emperorhan/auto-data-switch-controller/internal/stability"
	"github.com/emperorhan/auto-data-switch-controller/internal/switcher"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ingressBuffer and internalBuffer size the two channels the serial
// loop selects over. Evaluation coalescing keeps steady-state
// occupancy near zero; these only need headroom for bursts.
const (
	ingressBuffer = 256
	internalBuffer = 64
)

// Engine is ADSC's decision engine. Every exported method is safe to
// call from any goroutine; all state mutation happens on the single
// goroutine running Run.
type Engine struct {
	host     host.Host
	switcher switcher.Switcher
	logger   *slog.Logger
	tracer   trace.Tracer

	cfg model.Config

	phones         map[model.SlotId]*model.PhoneSignalStatus
	defaultOnNonCellular bool
	selectedTarget model.SlotId
	pendingReason  event.Reason

	stabilityTimer *stability.Timer
	retryCounter   *retry.Counter
	log            *decisionlog.Log

	ingress  chan event.Event
	internal chan func()
}

// Option customizes an Engine at construction.
type Option func(*Engine)

// WithTracer attaches an OpenTelemetry tracer; evaluation passes are
// otherwise untraced.
func WithTracer(t trace.Tracer) Option {
	return func(e *Engine) { e.tracer = t }
}

// WithDecisionLog overrides the default-capacity decision ring buffer.
func WithDecisionLog(l *decisionlog.Log) Option {
	return func(e *Engine) { e.log = l }
}

// New creates an Engine bound to the given Host and Switcher. Every
// slot the Host reports as active at construction time is subscribed
// (boot-time policy: subscribe all slots until the first
// SubscriptionsChanged prunes them).
func New(h host.Host, sw switcher.Switcher, logger *slog.Logger, opts ...Option) *Engine {
	cfg := h.Config()
	e := &Engine{
		host:           h,
		switcher:       sw,
		logger:         logger.With("component", "engine"),
		cfg:            cfg,
		phones:         make(map[model.SlotId]*model.PhoneSignalStatus),
		selectedTarget: model.InvalidSlot,
		stabilityTimer: stability.New(cfg.StabilityDwell),
		retryCounter:   retry.NewCounter(cfg.MaxValidationRetries),
		log:            decisionlog.New(decisionlog.DefaultCapacity),
		ingress:        make(chan event.Event, ingressBuffer),
		internal:       make(chan func(), internalBuffer),
	}
	for _, opt := range opts {
		opt(e)
	}
	for _, sub := range h.ActiveSubscriptions() {
		e.ensureTracker(sub.Slot, true)
	}
	return e
}

// Run drives the serial event loop until ctx is cancelled. It is the
// only goroutine that ever mutates Engine state.
func (e *Engine) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-e.ingress:
			e.processBatch(ev)
		case fn := <-e.internal:
			fn()
		}
	}
}

// Submit enqueues an ingress event, non-blocking. If the ingress
// channel is saturated the event is dropped and logged — a host
// generating ingress faster than ADSC can coalesce it is itself a
// diagnostic condition.
func (e *Engine) Submit(ev event.Event) {
	select {
	case e.ingress <- ev:
	default:
		e.logger.Warn("ingress channel full, dropping event", "kind", ev.Kind.String())
	}
}

// SubmitValidationFailure is the Switcher's asynchronous feedback
// path: evaluateRetryOnValidationFailed in spec.md §6/§7. err, if
// non-nil, is classified for diagnostics only — it never affects
// retry counting.
func (e *Engine) SubmitValidationFailure(err error) {
	e.internal <- func() { e.handleValidationFailure(err) }
}

// processBatch applies one ingress event and then drains every event
// already queued without blocking, before running at most one
// Evaluate — this is evaluation coalescing (spec.md §4.1, S5): a
// burst of events queued ahead of the loop's next turn is observed in
// full by a single evaluation pass.
func (e *Engine) processBatch(first event.Event) {
	e.applyRaw(first)
drain:
	for {
		select {
		case ev := <-e.ingress:
			e.applyRaw(ev)
		default:
			break drain
		}
	}
	if e.pendingReason != "" {
		reason := e.pendingReason
		e.pendingReason = ""
		e.evaluate(reason)
	}
}

// requestEvaluate marks reason as the pending evaluation trigger,
// unless one is already pending — at most one Evaluate is ever
// pending at a time.
func (e *Engine) requestEvaluate(reason event.Reason) {
	if e.pendingReason == "" {
		e.pendingReason = reason
	}
}

func (e *Engine) ensureTracker(slot model.SlotId, listening bool) *model.PhoneSignalStatus {
	if st, ok := e.phones[slot]; ok {
		return st
	}
	st := model.NewPhoneSignalStatus(slot, e.host.DisplayInfo(slot), e.host.SignalStrength(slot))
	st.Listening = listening
	e.phones[slot] = st
	return st
}

func (e *Engine) recordDecision(reason event.Reason, outcome decisionlog.Outcome, target model.SlotId, detail string) {
	e.log.Record(decisionlog.Decision{
		At:      time.Now().UTC(),
		Reason:  reason,
		Outcome: outcome,
		Target:  target,
		Detail:  detail,
	})
	metrics.EvaluationsTotal.WithLabelValues(string(outcome)).Inc()
}

// startSpan starts a span for one evaluation pass if a tracer is
// configured, returning a no-op end function otherwise.
func (e *Engine) startSpan(ctx context.Context, reason event.Reason) (context.Context, func()) {
	if e.tracer == nil {
		return ctx, func() {}
	}
	ctx, span := e.tracer.Start(ctx, "engine.evaluate", trace.WithAttributes(
		attribute.String("reason", string(reason)),
	))
	return ctx, func() { span.End() }
}
