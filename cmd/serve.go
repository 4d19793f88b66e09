// Copyright 2026 Voicedesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/voicedesk/dashboard-service/internal/authorization"
	calprovider "github.com/voicedesk/dashboard-service/internal/calendar"
	"github.com/voicedesk/dashboard-service/internal/config"
	"github.com/voicedesk/dashboard-service/internal/db"
	"github.com/voicedesk/dashboard-service/internal/kratos"
	"github.com/voicedesk/dashboard-service/internal/logging"
	"github.com/voicedesk/dashboard-service/internal/monitoring"
	"github.com/voicedesk/dashboard-service/internal/monitoring/prometheus"
	"github.com/voicedesk/dashboard-service/internal/openfga"
	"github.com/voicedesk/dashboard-service/internal/payments"
	"github.com/voicedesk/dashboard-service/internal/storage"
	"github.com/voicedesk/dashboard-service/internal/tracing"
	"github.com/voicedesk/dashboard-service/internal/voice"
	"github.com/voicedesk/dashboard-service/pkg/assistants"
	"github.com/voicedesk/dashboard-service/pkg/authentication"
	"github.com/voicedesk/dashboard-service/pkg/billing"
	"github.com/voicedesk/dashboard-service/pkg/calendar"
	"github.com/voicedesk/dashboard-service/pkg/intents"
	"github.com/voicedesk/dashboard-service/pkg/metrics"
	"github.com/voicedesk/dashboard-service/pkg/organisations"
	"github.com/voicedesk/dashboard-service/pkg/status"
	"github.com/voicedesk/dashboard-service/pkg/tenancy"
	"github.com/voicedesk/dashboard-service/pkg/web"
	"github.com/voicedesk/dashboard-service/pkg/webhooks"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := serve(); err != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	// .env is a local development convenience; absence is not an error
	_ = godotenv.Load()

	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("dashboard-service", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}
	dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()
	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	var authorizer *authorization.Authorizer
	if specs.AuthorizationEnabled {
		ofga := openfga.NewClient(
			openfga.NewConfig(
				specs.OpenfgaApiScheme,
				specs.OpenfgaApiHost,
				specs.OpenfgaStoreId,
				specs.OpenfgaApiToken,
				specs.OpenfgaModelId,
				specs.Debug,
				tracer,
				monitor,
				logger,
			),
		)
		authorizer = authorization.NewAuthorizer(ofga, tracer, monitor, logger)
		logger.Info("Authorization is enabled")
	} else {
		authorizer = authorization.NewAuthorizer(
			openfga.NewNoopClient(tracer, monitor, logger),
			tracer,
			monitor,
			logger,
		)
		logger.Info("Using noop authorizer")
	}

	kratosClient := kratos.NewClient(specs.KratosPublicURL, tracer, monitor, logger)
	voiceClient := voice.NewClient(specs.VoiceAPIURL, specs.VoiceAPIKey, tracer, monitor, logger)
	paymentsClient := payments.NewClient(specs.StripeAPIKey, tracer, monitor, logger)
	calendarProvider := calprovider.NewProvider(
		specs.GoogleClientID,
		specs.GoogleClientSecret,
		specs.AppBaseURL+"/api/v0/calendar/callback",
		specs.StateSigningKey,
	)

	tenancyService := tenancy.NewService(s, authorizer, tracer, monitor, logger)
	intentsService := intents.NewService(s, tracer, monitor, logger)
	assistantsService := assistants.NewService(s, voiceClient, tracer, monitor, logger)
	billingService := billing.NewService(s, paymentsClient, specs.AppBaseURL+"/dashboard", tracer, monitor, logger)
	webhooksService := webhooks.NewService(s, authorizer, tracer, monitor, logger)

	router := web.NewRouter(web.Config{
		DB: dbClient,

		Gate:    authentication.NewMiddleware(kratosClient, tracer, monitor, logger),
		Tenancy: tenancy.NewMiddleware(tenancyService, tracer, logger),

		Organisations: organisations.NewAPI(s, tracer, logger),
		Intents:       intents.NewAPI(intentsService, tracer, logger),
		Assistants:    assistants.NewAPI(assistantsService, tracer, logger),
		Billing:       billing.NewAPI(billingService, tracer, logger),
		Calendar:      calendar.NewAPI(calendarProvider, s, tracer, logger),
		Webhooks: webhooks.NewAPI(
			webhooksService,
			specs.RegistrationWebhookApiKey,
			specs.MessagingWebhookSecret,
			tracer,
			logger,
		),
		Status:  status.NewAPI(),
		Metrics: metrics.NewAPI(),

		AllowedOrigins: specs.CORSAllowedOrigins,

		Tracing: tracing.NewMiddleware(monitor, logger),
		Monitor: monitoring.NewMiddleware(monitor, logger),
		Logger:  logger,
	})

	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}
