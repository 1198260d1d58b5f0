package main

import (
	"context"
	"io"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/alecthomas/kingpin"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/client_golang/prometheus/push"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rvl/hydra-build-products-action/pkg/api"
	"github.com/rvl/hydra-build-products-action/pkg/clients/githubapi"
	"github.com/rvl/hydra-build-products-action/pkg/clients/hydraapi"
	"github.com/rvl/hydra-build-products-action/pkg/services/hydra"
	jaegercfg "github.com/uber/jaeger-client-go/config"
	jprom "github.com/uber/jaeger-lib/metrics/prometheus"
)

const appName = "hydra-build-products-action"

var (
	version   string
	branch    string
	revision  string
	buildDate string
	goVersion = runtime.Version()
)

var (
	// flags
	hydraURL      = kingpin.Flag("hydra", "The base url of the hydra instance.").Envar("HYDRA_URL").String()
	statusName    = kingpin.Flag("status-name", "The prefix of the github status context set by hydra.").Envar("HYDRA_EVAL_STATUS_NAME").String()
	jobs          = kingpin.Flag("jobs", "Space separated names of the jobs to wait for.").Envar("HYDRA_JOBS").String()
	buildProducts = kingpin.Flag("build-products", "Numbers of the build products to download, all of them if empty.").Envar("HYDRA_BUILD_PRODUCTS").String()
	requiredJob   = kingpin.Flag("required-job", "The job that decides whether the badge is green.").Envar("HYDRA_REQUIRED_JOB").String()
	project       = kingpin.Flag("project", "The hydra project.").Envar("HYDRA_PROJECT").String()
	jobset        = kingpin.Flag("jobset", "The hydra jobset.").Envar("HYDRA_JOBSET").String()
	resolveBy     = kingpin.Flag("resolve-by", "How to find the evaluation: status or jobset.").Envar("HYDRA_RESOLVE_BY").String()
	evaluation    = kingpin.Flag("evaluation", "Evaluation json from an earlier run.").Envar("HYDRA_EVAL_JSON").String()
	builds        = kingpin.Flag("builds", "Builds json from an earlier run.").Envar("HYDRA_BUILDS_JSON").String()
	badge         = kingpin.Flag("badge", "Whether to produce a status badge url.").Envar("DO_BADGE").String()
	githubToken   = kingpin.Flag("github-token", "The token for the github api.").Envar("GITHUB_TOKEN").String()

	configPath     = kingpin.Flag("config-path", "Path to an optional yaml config file.").Envar("CONFIG_PATH").String()
	repositoryPath = kingpin.Flag("repository-path", "Path to the git checkout used when the event doesn't name a commit.").Envar("GITHUB_WORKSPACE").String()
	outputPath     = kingpin.Flag("output-path", "File to append action outputs to; outputs go to stdout if empty.").Envar("GITHUB_OUTPUT").String()

	logFormat = kingpin.Flag("log-format", "The log format: json or console.").Envar("LOG_FORMAT").Default("console").Enum("json", "console")
	logLevel  = kingpin.Flag("log-level", "The minimum level to log.").Envar("LOG_LEVEL").Default("info").String()

	prometheusMetricsAddress = kingpin.Flag("metrics-listen-address", "The address to listen on for Prometheus metrics requests.").Envar("METRICS_LISTEN_ADDRESS").String()
	prometheusMetricsPath    = kingpin.Flag("metrics-path", "The path to listen for Prometheus metrics requests.").Default("/metrics").String()
	pushgatewayURL           = kingpin.Flag("pushgateway-url", "Prometheus pushgateway to push metrics to when done.").Envar("PUSHGATEWAY_URL").String()

	tracing = kingpin.Flag("tracing", "Report traces to jaeger, configured by the JAEGER_* environment variables.").Envar("TRACING").Bool()
)

func main() {

	// parse command line parameters
	kingpin.Parse()

	// configure logging
	initLogging()

	closer := initTracing()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigs
		log.Warn().Msg("Received signal, cancelling...")
		cancel()
	}()

	if *prometheusMetricsAddress != "" {
		go startPrometheus()
	}

	err := run(ctx)

	pushMetrics()
	if err := closer.Close(); err != nil {
		log.Warn().Err(err).Msg("Failed closing tracer")
	}

	if err != nil {
		log.Fatal().Err(err).Msg("Failed getting hydra build products")
	}

	log.Info().Msg("Finished successfully")
}

func run(ctx context.Context) error {

	config, err := api.NewConfigReader().ReadConfig(*configPath, os.Environ(), flagInputs())
	if err != nil {
		return err
	}

	actionContext, err := api.ReadActionContext(os.Environ(), *repositoryPath)
	if err != nil {
		return err
	}

	return runAction(ctx, config, actionContext, createService(config), api.NewOutputWriter(*outputPath, os.Stdout))
}

// runAction turns the action context into run parameters, runs the service and writes its outputs
func runAction(ctx context.Context, config *api.ActionConfig, actionContext api.ActionContext, hydraService hydra.Service, outputWriter api.OutputWriter) error {

	previousEvaluation, err := hydraapi.ParseEvaluationJSON(config.Hydra.EvaluationJSON)
	if err != nil {
		return err
	}

	previousBuilds, err := hydraapi.ParseBuildsJSON(config.Hydra.BuildsJSON)
	if err != nil {
		return err
	}

	if previousEvaluation.IsGhost() {
		if err := actionContext.Repo.Validate(); err != nil {
			return err
		}
	}

	log.Info().
		Str("repo", actionContext.Repo.String()).
		Str("event", actionContext.EventName).
		Strs("jobs", config.Hydra.Jobs).
		Msgf("Getting hydra builds from %v", config.Hydra.URL)

	result, err := hydraService.Run(ctx, hydra.RunParams{
		Repo:               actionContext.Repo,
		PreviousStatus:     githubapi.StatusFromPrevious(actionContext.PreviousStatus),
		PreviousEvaluation: previousEvaluation,
		PreviousBuilds:     previousBuilds,
		Downloads:          config.Hydra.Downloads(),
	})
	if err != nil {
		return err
	}

	outputs, err := result.Outputs()
	if err != nil {
		return errors.Wrap(err, "Failed rendering outputs")
	}

	return outputWriter.WriteOutputs(outputs)
}

func flagInputs() api.ActionInputs {
	return api.ActionInputs{
		Hydra:         *hydraURL,
		StatusName:    *statusName,
		Jobs:          *jobs,
		BuildProducts: *buildProducts,
		RequiredJob:   *requiredJob,
		Project:       *project,
		Jobset:        *jobset,
		ResolveBy:     *resolveBy,
		Evaluation:    *evaluation,
		Builds:        *builds,
		Badge:         *badge,
		Token:         *githubToken,
	}
}

func createService(config *api.ActionConfig) hydra.Service {

	githubapiClient := githubapi.NewTracingClient(githubapi.NewLoggingClient(githubapi.NewMetricsClient(githubapi.NewClient(config.Github), api.NewRequestCounter("githubapi"), api.NewRequestHistogram("githubapi"))))
	hydraapiClient := hydraapi.NewTracingClient(hydraapi.NewLoggingClient(hydraapi.NewMetricsClient(hydraapi.NewClient(config.Hydra), api.NewRequestCounter("hydraapi"), api.NewRequestHistogram("hydraapi"))))

	return hydra.NewTracingService(hydra.NewLoggingService(hydra.NewMetricsService(
		hydra.NewService(config, githubapiClient, hydraapiClient, api.NewSleeper(), api.RandomJitter),
		api.NewRequestCounter("hydra"), api.NewRequestHistogram("hydra"),
	)))
}

func startPrometheus() {
	log.Debug().
		Str("port", *prometheusMetricsAddress).
		Str("path", *prometheusMetricsPath).
		Msg("Serving Prometheus metrics...")

	http.Handle(*prometheusMetricsPath, promhttp.Handler())

	if err := http.ListenAndServe(*prometheusMetricsAddress, nil); err != nil {
		log.Error().Err(err).Msg("Starting Prometheus listener failed")
	}
}

func pushMetrics() {
	if *pushgatewayURL == "" {
		return
	}

	err := push.New(*pushgatewayURL, appName).
		Gatherer(prometheus.DefaultGatherer).
		Grouping("version", version).
		Push()
	if err != nil {
		log.Warn().Err(err).Msgf("Failed pushing metrics to %v", *pushgatewayURL)
	}
}

func initLogging() {

	// log as severity for stackdriver logging to recognize the level
	zerolog.LevelFieldName = "severity"

	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	// stdout is kept free for outputs
	var output io.Writer = os.Stderr
	if *logFormat == "console" {
		output = zerolog.ConsoleWriter{Out: os.Stderr}
	}

	// set some default fields added to all logs
	log.Logger = zerolog.New(output).With().
		Timestamp().
		Str("app", appName).
		Str("version", version).
		Str("runID", uuid.New().String()).
		Logger()

	// use zerolog for any logs sent via standard log library
	stdlog.SetFlags(0)
	stdlog.SetOutput(log.Logger)

	// log startup message
	log.Info().
		Str("branch", branch).
		Str("revision", revision).
		Str("buildDate", buildDate).
		Str("goVersion", goVersion).
		Msgf("Starting %v...", appName)
}

func initTracing() io.Closer {
	if !*tracing {
		return io.NopCloser(nil)
	}

	cfg, err := jaegercfg.FromEnv()
	if err != nil {
		log.Warn().Err(err).Msg("Generating jaeger configuration from environment variables failed, continuing without tracing")
		return io.NopCloser(nil)
	}

	closer, err := cfg.InitGlobalTracer(appName, jaegercfg.Metrics(jprom.New()))
	if err != nil {
		log.Warn().Err(err).Msg("Initializing jaeger tracer failed, continuing without tracing")
		return io.NopCloser(nil)
	}

	return closer
}
