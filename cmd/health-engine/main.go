package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"log/slog"

	"github.com/famcare/health-engine/internal/pkg/application/analytics"
	"github.com/famcare/health-engine/internal/pkg/application/circuitbreaker"
	"github.com/famcare/health-engine/internal/pkg/application/escalation"
	"github.com/famcare/health-engine/internal/pkg/application/rules"
	"github.com/famcare/health-engine/internal/pkg/application/telemetry"
	"github.com/famcare/health-engine/internal/pkg/infrastructure/clock"
	"github.com/famcare/health-engine/internal/pkg/infrastructure/notifications"
	"github.com/famcare/health-engine/internal/pkg/infrastructure/storage"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
)

const serviceName string = "health-engine"

type flagType int
type flagMap map[flagType]string

const (
	thresholdsFile flagType = iota
	policiesFile

	dbHost
	dbUser
	dbPassword
	dbPort
	dbName
	dbSSLMode
)

func defaultFlags() flagMap {
	return flagMap{
		thresholdsFile: "/opt/famcare/config/thresholds.yaml",
		policiesFile:   "/opt/famcare/config/policies.yaml",

		dbHost:     "",
		dbUser:     "",
		dbPassword: "",
		dbPort:     "5432",
		dbName:     "famcare",
		dbSSLMode:  "disable",
	}
}

func main() {
	ctx, flags := parseExternalConfig(context.Background(), defaultFlags())

	serviceVersion := buildinfo.SourceVersion()
	ctx, logger, cleanup := o11y.Init(ctx, serviceName, serviceVersion, "json")
	defer cleanup()

	rulesCfg, err := loadRulesConfig(flags[thresholdsFile])
	exitIf(err, logger, "could not load threshold configuration")

	escalationCfg, err := loadEscalationConfig(flags[policiesFile])
	exitIf(err, logger, "could not load escalation policies")

	s, err := storage.New(ctx, storage.NewConfig(flags[dbHost], flags[dbUser], flags[dbPassword], flags[dbPort], flags[dbName], flags[dbSSLMode]))
	exitIf(err, logger, "could not create or connect to database")

	err = s.CreateTables(ctx)
	exitIf(err, logger, "could not create database tables")

	messenger, err := messaging.Initialize(ctx, messaging.LoadConfiguration(ctx, serviceName, logger))
	exitIf(err, logger, "failed to init messenger")

	clk := clock.New()

	emitter := telemetry.New(s, clk)
	breaker := circuitbreaker.New(emitter, clk)
	analyticsSvc := analytics.New(s, analytics.NewWindowStore(), breaker, clk)
	notifier := notifications.New(messenger, clk)
	escalationSvc := escalation.New(s, s, notifier, emitter, messenger, breaker, escalationCfg, clk)
	engine := rules.New(analyticsSvc, escalationSvc, emitter, rulesCfg, clk)

	err = messenger.RegisterTopicMessageHandler(rules.VitalReadingTopic, rules.NewVitalReadingHandler(messenger, engine, clk))
	exitIf(err, logger, "could not register topic message handler")

	messenger.Start()
	emitter.Start(ctx)
	escalationSvc.Start(ctx)

	logger.Info("health engine running", "version", serviceVersion)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("shutting down")

	escalationSvc.Stop(ctx)
	emitter.Stop(ctx)
	messenger.Close()
	s.Close()
}

func loadRulesConfig(path string) (*rules.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return rules.DefaultConfig(), nil
		}
		return nil, err
	}
	defer f.Close()

	return rules.NewConfig(f)
}

func loadEscalationConfig(path string) (*escalation.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return escalation.DefaultConfig(), nil
		}
		return nil, err
	}
	defer f.Close()

	return escalation.NewConfig(f)
}

func parseExternalConfig(ctx context.Context, flags flagMap) (context.Context, flagMap) {
	// Allow environment variables to override certain defaults
	envOrDef := env.GetVariableOrDefault

	flags[dbHost] = envOrDef(ctx, "POSTGRES_HOST", flags[dbHost])
	flags[dbPort] = envOrDef(ctx, "POSTGRES_PORT", flags[dbPort])
	flags[dbName] = envOrDef(ctx, "POSTGRES_DBNAME", flags[dbName])
	flags[dbUser] = envOrDef(ctx, "POSTGRES_USER", flags[dbUser])
	flags[dbPassword] = envOrDef(ctx, "POSTGRES_PASSWORD", flags[dbPassword])
	flags[dbSSLMode] = envOrDef(ctx, "POSTGRES_SSLMODE", flags[dbSSLMode])

	apply := func(f flagType) func(string) error {
		return func(value string) error {
			flags[f] = value
			return nil
		}
	}

	// Allow command line arguments to override defaults and environment variables
	flag.Func("thresholds", "vital sign threshold configuration file", apply(thresholdsFile))
	flag.Func("policies", "escalation policy configuration file", apply(policiesFile))
	flag.Parse()

	return ctx, flags
}

func exitIf(err error, logger *slog.Logger, msg string, args ...any) {
	if err != nil {
		logger.With(args...).Error(msg, "err", err.Error())
		time.Sleep(2 * time.Second)
		os.Exit(1)
	}
}
