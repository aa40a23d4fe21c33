package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var cfgFile string

// rootCmd starts an interactive conversation when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "lingodesk",
	Short: "Multilingual customer support bot",
	Long: `Lingodesk answers customer questions in the customer's own language.
Known intents (greetings, business hours, returns, contact, goodbyes) get a
canned reply; anything else is answered by the configured language model.`,
	SilenceUsage: true,
	RunE:         runChat,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and exit",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "lingodesk %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to config file (e.g. configs/lingodesk.yaml)")

	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}
