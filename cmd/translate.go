package cmd

import (
	"fmt"
	"strings"

	statusadapter "github.com/bnema/cliptranslate/internal/adapters/render/status"
	"github.com/bnema/cliptranslate/internal/application"
	"github.com/bnema/cliptranslate/internal/domain"
	"github.com/spf13/cobra"
)

func newTranslateCmd(app *app) *cobra.Command {
	var copyResult bool
	var plain bool

	cmd := &cobra.Command{
		Use:   "translate [text...]",
		Short: "Translate text once, or the current clipboard when no text is given",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranslate(cmd, app, args, copyResult, plain)
		},
	}

	cmd.Flags().BoolVar(&copyResult, "copy", false, "Write the translation to the clipboard")
	cmd.Flags().BoolVar(&plain, "plain", false, "Print only the translated text")

	return cmd
}

func runTranslate(cmd *cobra.Command, app *app, args []string, copyResult, plain bool) error {
	svc := application.NewTranslateService(app.translator, app.clipboard, nil)
	pair := app.settings.Pair

	var (
		translation domain.Translation
		err         error
	)
	if len(args) > 0 {
		translation, err = svc.TranslateText(cmd.Context(), strings.Join(args, " "), pair)
	} else {
		translation, err = svc.TranslateClipboard(cmd.Context(), pair)
	}
	if err != nil {
		return err
	}

	if copyResult {
		if err := svc.CopyToClipboard(cmd.Context(), translation); err != nil {
			return err
		}
	}

	if plain {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), translation.Translated)
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), statusadapter.RenderTranslation(translation))
	return err
}
