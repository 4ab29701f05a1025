// Package otelsieve decorates a LookupProvider with OpenTelemetry tracing,
// recording one span per provider operation.
package otelsieve

import (
	"context"

	"github.com/go-sif/sieve"
	"github.com/go-sif/sieve/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// tracerName is the instrumentation scope reported on every span
const tracerName = "github.com/go-sif/sieve/otelsieve"

// Conf configures a tracing provider stage
type Conf struct {
	TracerProvider trace.TracerProvider // Source of this stage's Tracer. Defaults to the global TracerProvider.
}

// A tracingProvider decorates a LookupProvider with one span per operation,
// without altering the underlying contract
type tracingProvider struct {
	inner  sieve.LookupProvider
	tracer trace.Tracer
}

// CreateTracingProvider decorates inner with OpenTelemetry tracing
func CreateTracingProvider(inner sieve.LookupProvider, conf *Conf) (sieve.LookupProvider, error) {
	if inner == nil {
		return nil, errors.MissingProviderError{}
	}
	if conf == nil {
		conf = &Conf{}
	}
	tp := conf.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	return &tracingProvider{inner: inner, tracer: tp.Tracer(tracerName)}, nil
}

// Signature returns the Signature shared by all Rules in this provider
func (p *tracingProvider) Signature() sieve.Signature {
	return p.inner.Signature()
}

// Rules returns all Rules currently held by this provider
func (p *tracingProvider) Rules() []sieve.Rule {
	return p.inner.Rules()
}

// Add introduces a Rule to this provider
func (p *tracingProvider) Add(rule sieve.Rule) error {
	_, span := p.tracer.Start(context.Background(), "sieve.Add")
	defer span.End()
	return p.record(span, p.inner.Add(rule))
}

// Remove discards a Rule from this provider
func (p *tracingProvider) Remove(rule sieve.Rule) error {
	_, span := p.tracer.Start(context.Background(), "sieve.Remove")
	defer span.End()
	return p.record(span, p.inner.Remove(rule))
}

// Lookup returns the Rules whose values equal the query's value for every
// queried dimension
func (p *tracingProvider) Lookup(query map[string]interface{}) (sieve.RuleIterator, error) {
	_, span := p.tracer.Start(context.Background(), "sieve.Lookup",
		trace.WithAttributes(attribute.Int("sieve.query.dimensions", len(query))))
	defer span.End()
	it, err := p.inner.Lookup(query)
	if err != nil {
		return nil, p.record(span, err)
	}
	return it, nil
}

// Update unindexes rule, applies mutate to it, then reindexes it under the
// values it holds afterwards
func (p *tracingProvider) Update(rule sieve.Rule, mutate sieve.MutateOperation) (bool, error) {
	_, span := p.tracer.Start(context.Background(), "sieve.Update")
	defer span.End()
	mutated, err := p.inner.Update(rule, mutate)
	span.SetAttributes(attribute.Bool("sieve.update.mutated", mutated))
	return mutated, p.record(span, err)
}

// record marks span with err's outcome, passing err through for the caller
func (p *tracingProvider) record(span trace.Span, err error) error {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}
