package boundary

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/luaoutline/internal/logging"
	"github.com/yaklabco/luaoutline/pkg/source"
)

// Service resolves boundaries with structural-then-heuristic fallback.
// It holds no per-document state and is safe for concurrent use when its
// parser is.
type Service struct {
	strategies []Strategy
	logger     *log.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithParser enables the structural route. Without it every call goes straight
// to the heuristic route.
func WithParser(parser Parser) Option {
	return func(s *Service) {
		if parser != nil {
			s.strategies = append([]Strategy{NewStructuralResolver(parser)}, s.strategies...)
		}
	}
}

// WithLogger sets the logger used for fallback diagnostics. By default the
// logger carried by the context is used.
func WithLogger(logger *log.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// NewService creates a Service. The heuristic route is always last.
func NewService(opts ...Option) *Service {
	svc := &Service{
		strategies: []Strategy{NewHeuristicResolver()},
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// Strategies returns the strategy names in the order they are tried.
func (s *Service) Strategies() []string {
	names := make([]string, len(s.strategies))
	for i, strategy := range s.strategies {
		names[i] = strategy.Name()
	}
	return names
}

// Resolve computes the boundary for sym. Structural failures are logged and
// recovered; only the final strategy's error is returned.
func (s *Service) Resolve(ctx context.Context, doc *source.Document, sym RoughSymbol) (ResolvedBoundary, error) {
	if err := ctx.Err(); err != nil {
		return ResolvedBoundary{}, err
	}

	logger := s.logger
	if logger == nil {
		logger = logging.FromContext(ctx)
	}

	var lastErr error
	for idx, strategy := range s.strategies {
		result, err := strategy.Resolve(ctx, doc, sym)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if idx < len(s.strategies)-1 {
			logger.Debug("falling back",
				logging.FieldStrategy, strategy.Name(),
				logging.FieldSymbol, sym.Name,
				logging.FieldPath, doc.Path,
				logging.FieldError, err,
			)
		}
	}

	return ResolvedBoundary{}, fmt.Errorf("resolve %q: %w", sym.Name, lastErr)
}

// SymbolResult is the outcome for one symbol of a ResolveAll call.
type SymbolResult struct {
	Symbol   RoughSymbol
	Boundary ResolvedBoundary
	Err      error
}

// OK reports whether the symbol resolved.
func (r SymbolResult) OK() bool {
	return r.Err == nil
}

// ResolveAll resolves each symbol independently. A failing symbol never stops
// the others; only context cancellation ends the loop early, and the returned
// error is then the context error.
func (s *Service) ResolveAll(ctx context.Context, doc *source.Document, syms []RoughSymbol) ([]SymbolResult, error) {
	results := make([]SymbolResult, 0, len(syms))

	for _, sym := range syms {
		boundary, err := s.Resolve(ctx, doc, sym)
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
			return results, ctxErr
		}
		results = append(results, SymbolResult{Symbol: sym, Boundary: boundary, Err: err})
	}

	return results, nil
}

// SubOutline would enumerate the constructs inside rng. It is not built and
// always fails with ErrNotImplemented, so callers never mistake an empty
// result for an absence of symbols.
func (s *Service) SubOutline(_ context.Context, _ *source.Document, rng source.Range) ([]RoughSymbol, error) {
	return nil, fmt.Errorf("sub-outline of %s: %w", rng, ErrNotImplemented)
}
