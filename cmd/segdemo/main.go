package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"pkt.systems/psi"
	"pkt.systems/pslog"

	"segctl/internal/config"
	"segctl/internal/eventbus"
	"segctl/internal/ui"
)

func main() {
	psi.Run(submain)
}

func submain(ctx context.Context) int {
	root := newRootCmd()
	root.SetArgs(os.Args[1:])

	if err := root.ExecuteContext(ctx); err != nil {
		pslog.Ctx(ctx).With("err", err).Error("segdemo command failed")
		return 1
	}
	return 0
}

type rootOptions struct {
	configPath string
	logFile    string
	titles     []string
	width      int
	hideSlider bool
	autoWidth  bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "segdemo",
		Short:         "Segmented control demo",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := withLogger(cmd.Context(), cmd, opts.logFile)
			if err != nil {
				return err
			}
			cmd.SetContext(ctx)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "config file (default: user config dir)")
	flags.StringVar(&opts.logFile, "log-file", "segdemo.log", "log file, empty for stderr")
	flags.StringSliceVar(&opts.titles, "titles", nil, "segment titles, comma separated")
	flags.IntVar(&opts.width, "width", 0, "control width in cells")
	flags.BoolVar(&opts.hideSlider, "hide-slider", false, "hide the selection indicator")
	flags.BoolVar(&opts.autoWidth, "auto-width", false, "follow the terminal width")

	root.AddCommand(newDumpConfigCmd(opts))

	return root
}

// withLogger puts a logger on the context. The TUI owns the terminal, so
// logs go to a file unless none is named. A log file that cannot be opened
// is an error rather than a silent switch to stderr.
func withLogger(ctx context.Context, cmd *cobra.Command, path string) (context.Context, error) {
	var w io.Writer = cmd.ErrOrStderr()
	if path != "" {
		logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
		if err != nil {
			return ctx, fmt.Errorf("open log file: %w", err)
		}
		cobra.OnFinalize(func() { _ = logFile.Close() })
		w = logFile
	}

	logger := pslog.LoggerFromEnv(
		pslog.WithEnvWriter(w),
		pslog.WithEnvOptions(pslog.Options{Mode: pslog.ModeStructured, NoColor: true}),
	)
	log.SetOutput(pslog.LogLogger(logger).Writer())
	log.SetFlags(0)
	return pslog.ContextWithLogger(ctx, logger), nil
}

// loadConfig reads the config file and applies the flags that were set
func loadConfig(cmd *cobra.Command, opts *rootOptions, svc config.ConfigService) (*config.Config, error) {
	cfg, err := svc.Load()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("titles") {
		cfg.Control.Titles = opts.titles
	}
	if flags.Changed("width") {
		cfg.Control.Frame.Width = opts.width
	}
	if flags.Changed("hide-slider") {
		cfg.Control.Slider.Hidden = opts.hideSlider
	}
	if flags.Changed("auto-width") {
		cfg.UISettings.AutoWidth = opts.autoWidth
	}
	if len(cfg.Control.Titles) == 0 {
		return nil, ui.ErrNoTitles
	}
	return cfg, nil
}

func runDemo(cmd *cobra.Command, opts *rootOptions) error {
	ctx := cmd.Context()
	logger := pslog.Ctx(ctx)

	bus := eventbus.New(logger)
	defer bus.Close()

	// Set up event forwarding to UI. Subscribing before the config loads
	// keeps the ConfigLoaded event.
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			logger.Warn("event channel full, dropping event", "type", e.Type())
		}
	}
	for _, eventType := range []eventbus.EventType{
		eventbus.EventSelectionIndexChanged,
		eventbus.EventSelectionTextChanged,
		eventbus.EventTitlesChanged,
		eventbus.EventConfigLoaded,
		eventbus.EventConfigSaved,
		eventbus.EventError,
	} {
		bus.Subscribe(eventType, forward)
	}

	svc := config.NewConfigServiceWithBus(opts.configPath, bus)
	cfg, err := loadConfig(cmd, opts, svc)
	if err != nil {
		return err
	}
	logger.Info("config loaded", "path", svc.Path(), "titles", cfg.Control.Titles)

	model, err := ui.NewModel(bus, cfg, svc, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	model.SetProgram(p)

	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			select {
			case event := <-eventChan:
				p.Send(ui.EventMsg{Event: event})
			case <-done:
				return
			}
		}
	}()

	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil || errors.Is(err, tea.ErrProgramKilled) {
			logger.Info("segdemo interrupted")
			return nil
		}
		return err
	}
	return nil
}
