// Package sdk is a library for HTTP request/response logging in our
// Golang services.
//
// Development Status: httplog-go-sdk is designed for internal use. Since
// it uses Semantic Versioning (https://semver.org/) it is safe to use,
// but expect big changes between major version updates.
//
// # Overview
//
// The SDK is built around a small middleware pipeline that logs the
// start and finish of every HTTP request:
//
//   - pkg/recutil holds the record model: string-keyed maps, path
//     access and an insertion-ordered map for stable rendering.
//   - pkg/selutil selects and reshapes record fields with declarative
//     selector specs.
//   - pkg/redactutil censors values whose keys contain configured
//     substrings, for keeping credentials out of logs.
//   - pkg/traceutil generates and extends trace ID chains.
//   - pkg/midutil is the pipeline core: transform, censor, format and
//     emit hooks around a handler, plus timing and trace middlewares
//     and ready-made presets.
//   - pkg/webutil adapts the pipeline to net/http and chi and provides
//     a context-aware server loop.
//   - pkg/logutil carries slog loggers and trace chains through
//     contexts.
//   - pkg/instutil provides Prometheus instrumentation for emitted log
//     events and request durations.
//   - pkg/cmdutil wires all of it into Cobra commands.
//
// Please take a look at the examples directory to see how an
// application using the SDK looks like.
//
// # Application Layout
//
//	/
//	├── cmd/
//	│   ├── root.go
//	│   └── ...
//	├── pkg/...
//	├── go.mod
//	├── go.sum
//	├── main.go
//	└── README.md
//
// - /main.go is the entrypoint of the application. It's typically very
// minimal, containing just enough code to initialize the command
// framework and handle errors. Its primary responsibility is to set up
// the application with the SDK's cmdutil package and delegate execution
// to the Cobra command structure defined in /cmd/root.go.
//
// - /cmd/root.go contains the definition for all Cobra commands of the
// application. This is where you define your command-line interface
// structure, options, and connect the commands to their
// implementations.
//
// main.go - Minimal application entry point:
//
//	func main() {
//	   defer cmdutil.HandleExit()
//
//	   if err := cmd.NewRootCommand().Execute(); err != nil {
//	       slog.Error("command failed", "error", err)
//	       cmdutil.Exit(1)
//	   }
//	}
//
// cmd/root.go - Command definition:
//
//	func NewRootCommand() *cobra.Command {
//	   return cmdutil.New(
//	       "myapp", "github.com/org/myapp",
//	       cmdutil.WithLogVerboseFlag(),
//	       cmdutil.WithVersionCommand(),
//	       cmdutil.WithRun(run),
//	   )
//	}
//
// The run function then sets up the router with the SDK middlewares:
//
//	func run(ctx context.Context, cmd *cobra.Command, args []string) {
//	   router := chi.NewRouter()
//	   router.Use(webutil.Tracing(traceutil.Header))
//	   router.Use(webutil.Logging(midutil.SlogEmitter{}, midutil.PresetInboundText()))
//
//	   cmdutil.Must(webutil.ListenAndServeWithContext(ctx, ":8080", router))
//	}
package sdk
