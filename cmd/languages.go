package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/bnema/cliptranslate/internal/application"
	"github.com/spf13/cobra"
)

type languageOutput struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

func newLanguagesCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "languages",
		Short: "List the language codes the translator accepts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			languages, err := application.NewTranslateService(app.translator, app.clipboard, nil).Languages(cmd.Context())
			if err != nil {
				return err
			}

			output := make([]languageOutput, 0, len(languages))
			for _, language := range languages {
				output = append(output, languageOutput{Code: language.Code, Name: language.Name})
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(output)
			}

			for _, language := range output {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s\n", language.Code, language.Name); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
