package planner

import (
	"context"
	"log"
)

// OutputAdapter binds the shared pipeline to one plan contract: the prompt it
// sends, how raw output is decoded and validated, and what the fallback plan
// looks like.
type OutputAdapter[T any] interface {
	Flow() string
	Prompt() string
	Format() ResponseFormat
	Decode(raw string) (T, error)
	Fallback(s Synthesizer) T
}

// Pipeline runs prompt → generate → parse → validate for any OutputAdapter.
// It holds no per-request state and is safe for concurrent use.
type Pipeline struct {
	gen   Generator
	synth Synthesizer
}

// NewPipeline wires a pipeline. gen may be nil when no credential is
// configured; every run then fails with ErrCredentialMissing without touching
// the network.
func NewPipeline(gen Generator, synth Synthesizer) *Pipeline {
	return &Pipeline{gen: gen, synth: synth}
}

// Configured reports whether a generation backend is wired.
func (p *Pipeline) Configured() bool {
	return p.gen != nil
}

// Synthesizer returns the fallback synthesizer used by the pipeline.
func (p *Pipeline) Synthesizer() Synthesizer {
	return p.synth
}

// Run executes the pipeline once and returns typed errors: *BackendError,
// *MalformedResponseError or *SchemaViolationError. There is no retry.
func Run[T any](ctx context.Context, p *Pipeline, a OutputAdapter[T]) (T, error) {
	var zero T
	if p.gen == nil {
		return zero, ErrCredentialMissing
	}

	// A started generation call runs to completion even if the caller leaves.
	raw, err := p.gen.Generate(context.WithoutCancel(ctx), a.Prompt(), a.Format())
	if err != nil {
		return zero, asBackendError(err)
	}
	return a.Decode(raw)
}

// Outcome is the result of RunWithFallback.
type Outcome[T any] struct {
	Plan          T
	Fallback      bool
	QuotaExceeded bool
	// Cause is the error that triggered the fallback, kept for diagnostics.
	Cause error
}

// RunWithFallback executes the pipeline and substitutes the adapter's
// fallback plan on any generation, parse or schema failure. It never fails.
func RunWithFallback[T any](ctx context.Context, p *Pipeline, a OutputAdapter[T]) Outcome[T] {
	plan, err := Run(ctx, p, a)
	if err == nil {
		return Outcome[T]{Plan: plan}
	}

	kind := KindOf(err)
	log.Printf("[planner] %s: using fallback plan (%s): %v", a.Flow(), kind, err)
	return Outcome[T]{
		Plan:          a.Fallback(p.synth),
		Fallback:      true,
		QuotaExceeded: kind == KindQuotaExceeded,
		Cause:         err,
	}
}

func asBackendError(err error) error {
	if KindOf(err) != KindUnknown {
		return err
	}
	return &BackendError{Kind: KindTransport, Message: err.Error(), Err: err}
}
