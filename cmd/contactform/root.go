package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-contactform/internal/config"
	"github.com/goliatone/go-contactform/internal/logging"
	"github.com/goliatone/go-contactform/internal/themes"
	"github.com/goliatone/go-contactform/pkg/render"
	"github.com/goliatone/go-contactform/pkg/renderers/tui"
	"github.com/goliatone/go-contactform/pkg/renderers/vanilla"
)

// app holds what every subcommand needs once flags and config are resolved.
type app struct {
	configPath string
	logLevel   string

	cfg    config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "contactform",
		Short:         "Serve, render and prompt the contact form",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(
		newServeCmd(a),
		newRenderCmd(a),
		newPromptCmd(a),
		newSchemaCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = strings.TrimSpace(a.logLevel)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	return nil
}

// htmlRenderer builds the vanilla renderer from config.
func (a *app) htmlRenderer(page bool) (*vanilla.Renderer, error) {
	options := []vanilla.Option{
		vanilla.WithThemeSelector(themes.Builtin(), a.cfg.Theme, a.cfg.ThemeVariant),
	}
	if a.cfg.TemplatesDir != "" {
		options = append(options, vanilla.WithTemplatesDir(a.cfg.TemplatesDir))
	}
	if page {
		options = append(options, vanilla.WithPage(), vanilla.WithStylesheet("/assets/"+vanilla.StylesheetName))
	}
	return vanilla.New(options...)
}

// registry exposes every renderer by name with config.Renderer as the
// default.
func (a *app) registry(page bool, tuiOptions ...tui.Option) (*render.Registry, error) {
	html, err := a.htmlRenderer(page)
	if err != nil {
		return nil, err
	}
	format, ok := tui.ParseOutputFormat(a.cfg.OutputFormat)
	if !ok {
		return nil, fmt.Errorf("unsupported output format %q", a.cfg.OutputFormat)
	}
	terminal, err := tui.New(append([]tui.Option{tui.WithOutputFormat(format)}, tuiOptions...)...)
	if err != nil {
		return nil, err
	}

	registry := render.NewRegistry()
	registry.MustRegister(html)
	registry.MustRegister(terminal)
	if err := registry.SetDefault(a.cfg.Renderer); err != nil {
		return nil, err
	}
	return registry, nil
}
