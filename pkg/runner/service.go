package runner

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/luaoutline/internal/logging"
	"github.com/yaklabco/luaoutline/pkg/boundary"
	"github.com/yaklabco/luaoutline/pkg/config"
	"github.com/yaklabco/luaoutline/pkg/parser/treesitter"
)

// NewService builds the resolution service described by cfg. A nil logger
// leaves the service logging through the request context.
func NewService(cfg *config.Config, logger *log.Logger) (*boundary.Service, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}

	var opts []boundary.Option
	if logger != nil {
		opts = append(opts, boundary.WithLogger(logger))
	}

	if cfg.Parser == config.ParserTreeSitter {
		var parser boundary.Parser = treesitter.New()
		if cfg.CacheSize > 0 {
			cached, err := boundary.NewCachingParser(parser, cfg.CacheSize)
			if err != nil {
				return nil, fmt.Errorf("build parser: %w", err)
			}
			parser = cached
		}
		opts = append(opts, boundary.WithParser(parser))

		if logger != nil && !treesitter.Available {
			logger.Debug("structural parser not built in; heuristic only",
				logging.FieldParser, treesitter.Name)
		}
	}

	return boundary.NewService(opts...), nil
}
