package cmdutil

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	sloggraylog "github.com/samber/slog-graylog/v2"
	slogmulti "github.com/samber/slog-multi"
	"github.com/spf13/cobra"
	gelf "gopkg.in/Graylog2/go-gelf.v2/gelf"
)

// WithLogVerboseFlag adds a --verbose flag that switches the default
// logger between info and debug level. The console output uses a tint
// handler.
func WithLogVerboseFlag() Option {
	var (
		enabled bool
	)

	return func(cmd *cobra.Command) error {
		cmd.PersistentFlags().BoolVarP(
			&enabled, "verbose", "v", false,
			"prints debug log messages")

		cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if enabled {
				level = slog.LevelDebug
			}

			setupLogger(consoleHandler(level), "", level)
		}

		return nil
	}
}

// WithLogToGraylog adds a --gelf-address flag. When set, log records get
// fanned out to both the console and the Graylog endpoint, tagged with
// the binary name and version.
func WithLogToGraylog() Option {
	var (
		gelfAddress string
	)

	return func(cmd *cobra.Command) error {
		cmd.PersistentFlags().StringVar(
			&gelfAddress, "gelf-address", "",
			`Address to Graylog for logging (format: "ip:port").`)

		cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
			setupLogger(slog.Default().Handler(), gelfAddress, slog.LevelInfo)
		}

		return nil
	}
}

func consoleHandler(level slog.Level) slog.Handler {
	return tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	})
}

func setupLogger(console slog.Handler, gelfAddress string, level slog.Level) {
	if gelfAddress == "" {
		slog.SetDefault(slog.New(console))
		return
	}

	writer, err := gelf.NewUDPWriter(gelfAddress)
	if err != nil {
		slog.SetDefault(slog.New(console))
		slog.Error("failed to connect to Graylog, falling back to console only",
			"error", err, "gelf-address", gelfAddress)
		return
	}

	graylog := sloggraylog.Option{
		Level:  level,
		Writer: writer,
	}.NewGraylogHandler()

	logger := slog.New(slogmulti.Fanout(console, graylog))
	slog.SetDefault(logger.With(
		"facility", Name,
		"version", Version,
	))
}
