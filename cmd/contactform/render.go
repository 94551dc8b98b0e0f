package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-contactform/pkg/contact"
	"github.com/goliatone/go-contactform/pkg/render"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		output   string
		page     bool
		submit   bool
		action   string
		renderer string
		values   contact.FormState
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the form, optionally prefilled and submitted",
		RunE: func(cmd *cobra.Command, _ []string) error {
			registry, err := a.registry(page)
			if err != nil {
				return err
			}
			r, err := registry.Get(renderer)
			if err != nil {
				return err
			}

			form := contact.New()
			form.Fill(values)
			if submit {
				if _, ok := form.Submit(); !ok {
					a.logger.Info("form rendered with errors", zap.Stringers("invalid_fields", form.Errors().Fields()))
				}
			}

			out, err := r.Render(cmd.Context(), form, render.RenderOptions{Action: action})
			if err != nil {
				return err
			}

			if output == "" {
				_, err = cmd.OutOrStdout().Write(out)
				return err
			}
			if err := os.WriteFile(output, out, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Form written to %s\n", output)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	flags.BoolVar(&page, "page", false, "wrap the form in a full HTML page")
	flags.BoolVar(&submit, "submit", false, "submit the prefilled values before rendering")
	flags.StringVar(&action, "action", "/contact", "form action URL")
	flags.StringVar(&renderer, "renderer", "", "renderer name (config default if empty)")
	flags.StringVar(&values.FirstName, "first-name", "", "prefill first name")
	flags.StringVar(&values.LastName, "last-name", "", "prefill last name")
	flags.StringVar(&values.Email, "email", "", "prefill email")
	flags.StringVar(&values.Message, "message", "", "prefill message")
	return cmd
}
