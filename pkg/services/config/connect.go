package config

import (
	"context"
	"fmt"
	"io"

	"github.com/de-tools/budget-atlas/pkg/services/budget"
	"github.com/de-tools/budget-atlas/pkg/services/fanout"
	"github.com/rs/zerolog"
)

func (c FanoutConfig) Resolver() (fanout.Resolver, error) {
	mode, err := fanout.ParseMode(c.Mode)
	if err != nil {
		return fanout.Resolver{}, err
	}
	return fanout.Resolver{Mode: mode, Limit: c.Concurrency}, nil
}

// Logger builds the process logger. Pretty output is meant for terminals.
func (c LogConfig) Logger(w io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(c.Level)
	if err != nil {
		return zerolog.Logger{}, fmt.Errorf("invalid log level %q: %w", c.Level, err)
	}
	if c.Pretty {
		w = zerolog.ConsoleWriter{Out: w}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}

// Connect opens the named profile, or the configured default when name is empty, and
// builds the services over it. The returned func closes the datasource.
func (c AppConfig) Connect(ctx context.Context, name string) (budget.Services, func(context.Context) error, error) {
	if name == "" {
		name = c.Datasource.Profile
	}

	resolver, err := c.Fanout.Resolver()
	if err != nil {
		return budget.Services{}, nil, err
	}

	registry, err := NewRegistry(expandHome(c.Datasource.ProfilesPath))
	if err != nil {
		return budget.Services{}, nil, err
	}
	profile, err := registry.GetProfile(ctx, name)
	if err != nil {
		return budget.Services{}, nil, err
	}

	ds, err := OpenDatasource(ctx, profile)
	if err != nil {
		return budget.Services{}, nil, err
	}

	zerolog.Ctx(ctx).Info().Msgf("Connected to profile `%s`", profile)
	return budget.NewServices(ds.Runner, resolver, ds.Driver), ds.Close, nil
}
