package command

import (
	"context"
	"fmt"
	"io"

	"github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"
	"github.com/src-d/nodefactory"
	"github.com/src-d/nodefactory/internal/astlib"
	"github.com/uber/jaeger-client-go/config"
)

const TracerServiceName = "nodefactory"

// Common holds the options shared by every command.
type Common struct {
	Verbose      bool   `short:"v" description:"Activates the verbose mode"`
	LogLevel     string `long:"log-level" env:"NODEFACTORY_LOG_LEVEL" choice:"info" choice:"debug" choice:"warning" choice:"error" choice:"fatal" default:"info" description:"logging level"`
	TraceEnabled bool   `long:"trace" env:"NODEFACTORY_TRACE" description:"Enables jaeger tracing"`
}

type jaegerLogrus struct {
	*logrus.Entry
}

func (l *jaegerLogrus) Error(s string) {
	l.Entry.Error(s)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// setup configures logging and, when enabled, the global tracer. The
// returned closer flushes the tracer.
func (c *Common) setup() (io.Closer, error) {
	if c.Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	// info is the default log level
	if c.LogLevel != "" && c.LogLevel != "info" {
		level, err := logrus.ParseLevel(c.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("cannot parse log level: %s", err.Error())
		}
		logrus.SetLevel(level)
	}

	if !c.TraceEnabled {
		return nopCloser{}, nil
	}

	cfg, err := config.FromEnv()
	if err != nil {
		logrus.WithField("error", err).Error("unable to read jaeger environment")
		return nil, err
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = TracerServiceName
	}

	logger := &jaegerLogrus{logrus.WithField("subsystem", "jaeger")}
	closer, err := cfg.InitGlobalTracer(cfg.ServiceName, config.Logger(logger))
	if err != nil {
		logrus.WithField("error", err).Error("unable to initialize global tracer")
		return nil, err
	}

	logrus.Info("tracing enabled")
	return closer, nil
}

// facade loads a library generation and builds its facade.
func facade(ctx context.Context, version string) (interface{}, nodefactory.Factory, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "nodefactory.load",
		opentracing.Tag{Key: "version", Value: version},
	)
	defer span.Finish()

	lib, err := astlib.Load(version)
	if err != nil {
		return nil, nil, err
	}

	f, err := nodefactory.BuildFacadeContext(ctx, lib)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"version": version,
			"error":   err,
		}).Error("unable to build facade")
		return nil, nil, err
	}

	return lib, f, nil
}
