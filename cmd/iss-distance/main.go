package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/DIMO-Network/iss-distance/internal/config"
	"github.com/DIMO-Network/iss-distance/internal/ui"
	"github.com/DIMO-Network/iss-distance/services/distance"
	"github.com/DIMO-Network/iss-distance/services/position"
	"github.com/DIMO-Network/iss-distance/services/report"
	"github.com/DIMO-Network/iss-distance/services/satellite"
	"github.com/DIMO-Network/iss-distance/services/session"

	"github.com/DIMO-Network/shared"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	logRetentionDays = 28
	logMaxSizeMB     = 16

	// The terminal UI owns the screen, so its session logs go here unless
	// --log-file says otherwise.
	uiLogFileName = "iss-distance.log"
)

type Options struct {
	Settings string `short:"s" long:"settings"  env:"SETTINGS_FILE" description:"Path to settings file"               default:"settings.yaml"`
	Unit     string `short:"u" long:"unit"      env:"UNIT"          description:"Initial unit (kilometers or miles)"`
	Plain    bool   `short:"p" long:"plain"                         description:"Print the result once instead of running the terminal UI"`
	JSON     bool   `short:"j" long:"json"                          description:"Print the session report as a CloudEvent"`
	LogLevel string `long:"log-level" env:"LOG_LEVEL" description:"Log level" default:"info" choice:"trace" choice:"debug" choice:"info" choice:"warn" choice:"error"`
	LogFile  string `long:"log-file"  env:"LOG_FILE"  description:"Write logs to this file instead of stderr (the terminal UI defaults to iss-distance.log in the temp dir)"`
}

func serveMonitoring(port string, logger *zerolog.Logger) *fiber.App {
	logger.Info().Str("port", port).Msg("Starting monitoring web server.")

	monApp := fiber.New(fiber.Config{DisableStartupMessage: true})

	monApp.Get("/", func(c *fiber.Ctx) error { return nil })
	monApp.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	go func() {
		if err := monApp.Listen(":" + port); err != nil {
			logger.Fatal().Err(err).Str("port", port).Msg("Failed to start monitoring web server.")
		}
	}()

	return monApp
}

func newLogger(opts *Options) (zerolog.Logger, io.Closer, error) {
	level, err := zerolog.ParseLevel(opts.LogLevel)
	if err != nil {
		return zerolog.Logger{}, nil, err
	}

	var out io.WriteCloser = os.Stderr
	if opts.LogFile != "" {
		out = newLogFile(opts.LogFile)
	}

	logger := zerolog.New(out).Level(level).With().Timestamp().Str("app", "iss-distance").Logger()
	return logger, out, nil
}

func newLogFile(path string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename: path,
		MaxSize:  logMaxSizeMB,
		MaxAge:   logRetentionDays,
	}
}

// sessionLogFile is where session logs go when they cannot share the main
// logger's output. Empty means they can.
func sessionLogFile(opts *Options) string {
	if opts.LogFile != "" || opts.Plain || opts.JSON {
		return ""
	}
	return filepath.Join(os.TempDir(), uiLogFileName)
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	logger, logOut, err := newLogger(&opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if logOut != os.Stderr {
		defer logOut.Close()
	}

	settings, err := shared.LoadConfig[config.Settings](opts.Settings)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed loading settings.")
	}
	if opts.Unit != "" {
		settings.Unit = opts.Unit
	}
	logger.Debug().Interface("settings", settings).Msg("Settings loaded.")

	if settings.MonPort != "" {
		monApp := serveMonitoring(settings.MonPort, &logger)
		defer monApp.Shutdown() //nolint:errcheck
	}

	unit, err := distance.ParseUnit(settings.Unit)
	if err != nil {
		logger.Fatal().Err(err).Msg("Invalid unit.")
	}
	surface, err := distance.FormulaByName(settings.DistanceFormula)
	if err != nil {
		logger.Fatal().Err(err).Msg("Invalid distance formula.")
	}
	locator, err := position.LocatorFromSettings(&settings)
	if err != nil {
		logger.Fatal().Err(err).Msg("Invalid geolocation capability.")
	}
	source, err := satellite.FromSettings(&settings)
	if err != nil {
		logger.Fatal().Err(err).Msg("Invalid satellite source.")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sat, err := satellite.Fetch(ctx, source)
	if err != nil {
		logger.Fatal().Err(err).Str("source", source.Name()).Msg("Failed to fetch the satellite position.")
	}
	logger.Info().Str("source", source.Name()).Stringer("satellite", sat).Msg("Satellite position fetched.")

	sessLogger := logger
	if path := sessionLogFile(&opts); path != "" {
		uiLog := newLogFile(path)
		defer uiLog.Close()
		sessLogger = logger.Output(uiLog)
		logger.Info().Str("file", path).Msg("Session logs redirected while the terminal UI runs.")
	}
	sess := session.New(&sessLogger, sat, position.NewProvider(locator, &sessLogger), surface, unit)

	switch {
	case opts.JSON:
		st, _ := sess.Load(ctx)
		ev, err := report.Event(st, sat, time.Now())
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to build the report.")
		}
		data, err := report.Encode(ev)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to encode the report.")
		}
		fmt.Println(string(data))
	case opts.Plain:
		st, _ := sess.Load(ctx)
		fmt.Print(ui.Plain(st, sat))
	default:
		if _, err := tea.NewProgram(ui.NewModel(ctx, sess)).Run(); err != nil {
			fmt.Println(ui.RenderErrorLine(err))
			os.Exit(1)
		}
	}
}
