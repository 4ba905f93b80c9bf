// Command api es el servidor HTTP del POS multi-tenant y sus tareas de operación.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Versión del binario; se sobreescribe con -ldflags en el build.
var (
	Version   = "0.1.0"
	BuildTime = "dev"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	serve := serveCmd()
	cmd := &cobra.Command{
		Use:           "api",
		Short:         "API del punto de venta multi-tenant",
		SilenceUsage:  true,
		SilenceErrors: true,
		// sin subcomando = serve
		RunE: serve.RunE,
	}
	cmd.Flags().AddFlagSet(serve.Flags())

	cmd.AddCommand(serve, migrateCmd(), createSuperAdminCmd(), versionCmd())
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Muestra la versión",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "pos-api version %s (build: %s)\n", Version, BuildTime)
		},
	}
}
