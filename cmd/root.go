package cmd

import (
	"github.com/bnema/cliptranslate/internal/domain"
	"github.com/spf13/cobra"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	return newRootCmdWithApp(newApp())
}

func newRootCmdWithApp(app *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "cliptr",
		Short:         "Clipboard translator: replaces copied text with its translation",
		Long:          "cliptr watches the clipboard and replaces every newly copied text with its machine translation, showing progress in the terminal and through desktop notifications.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.wire(cmd.Context())
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String(flagFrom, "", "Source language code, or auto (default "+domain.DefaultSourceLang+")")
	flags.String(flagTo, "", "Target language code (default "+domain.DefaultTargetLang+")")
	flags.Int(flagDelay, int(domain.DefaultPollDelay.Milliseconds()), "Delay between clipboard polls in milliseconds")
	flags.String(flagConfig, "", "Config file (default ~/.config/cliptr/config.toml)")
	flags.String(flagLogLevel, defaultLogLevel, "Log level: debug, info, warn or error")

	bindFlags(app.cfg, flags)

	rootCmd.AddCommand(
		newVersionCmd(),
		newWatchCmd(app),
		newTranslateCmd(app),
		newLanguagesCmd(app),
	)

	return rootCmd
}
