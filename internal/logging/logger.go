package logging

import (
	"io"

	"github.com/rs/zerolog"
)

// Config controls logger construction.
type Config struct {
	Level   string
	Service string
	Out     io.Writer
}

// New builds a console zerolog logger writing to cfg.Out. Unknown levels
// fall back to warn so diagnostics never crowd command output.
func New(cfg Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.WarnLevel
	}

	writer := zerolog.ConsoleWriter{Out: cfg.Out}
	ctx := zerolog.New(writer).Level(level).With().Timestamp()
	if cfg.Service != "" {
		ctx = ctx.Str(FieldService, cfg.Service)
	}
	return ctx.Logger()
}
