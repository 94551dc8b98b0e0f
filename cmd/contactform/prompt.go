package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-contactform/pkg/contact"
	"github.com/goliatone/go-contactform/pkg/render"
	"github.com/goliatone/go-contactform/pkg/renderers/tui"
)

func newPromptCmd(a *app) *cobra.Command {
	var (
		format  string
		confirm bool
	)

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Fill in the form interactively in the terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("format") {
				a.cfg.OutputFormat = format
			}
			options := []tui.Option{tui.WithInfoWriter(cmd.ErrOrStderr())}
			if confirm {
				options = append(options, tui.WithConfirm())
			}

			registry, err := a.registry(false, options...)
			if err != nil {
				return err
			}
			r, err := registry.Get("tui")
			if err != nil {
				return err
			}

			out, err := r.Render(cmd.Context(), contact.New(), render.RenderOptions{})
			if errors.Is(err, tui.ErrAborted) {
				fmt.Fprintln(cmd.ErrOrStderr(), "aborted")
				return nil
			}
			if err != nil {
				return err
			}
			a.logger.Info("contact submitted from terminal")
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "output format: json, form or pretty (overrides config)")
	cmd.Flags().BoolVar(&confirm, "confirm", false, "ask for confirmation before submitting")
	return cmd
}
