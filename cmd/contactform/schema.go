package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-contactform/pkg/openapi"
)

func newSchemaCmd(_ *app) *cobra.Command {
	var (
		format    string
		path      string
		serverURL string
	)

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the OpenAPI description of the HTTP endpoints",
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := openapi.Document(cmd.Context(), openapi.Options{
				SubmitPath: path,
				ServerURL:  serverURL,
			})
			if err != nil {
				return err
			}

			var out []byte
			switch format {
			case "json":
				out, err = openapi.MarshalJSON(doc)
			case "yaml":
				out, err = openapi.MarshalYAML(doc)
			default:
				return fmt.Errorf("unsupported schema format %q (want json or yaml)", format)
			}
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().StringVar(&format, "format", "json", "output format: json or yaml")
	cmd.Flags().StringVar(&path, "path", "/contact", "mount path of the form")
	cmd.Flags().StringVar(&serverURL, "server-url", "", "server URL to advertise")
	return cmd
}
