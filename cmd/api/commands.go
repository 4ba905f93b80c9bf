package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/pos-api/internal/application/usecase"
	"github.com/jhoicas/pos-api/pkg/config"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Aplica las migraciones SQL embebidas en PostgreSQL",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}
			if cfg.Store.Driver != config.StoreDriverPostgres {
				return fmt.Errorf("migrate requiere STORE_DRIVER=postgres (actual %q)", cfg.Store.Driver)
			}
			return runMigrations(cmd.Context(), cfg, log)
		},
	}
}

func createSuperAdminCmd() *cobra.Command {
	var username, password string
	cmd := &cobra.Command{
		Use:   "create-superadmin",
		Short: "Crea un usuario SUPERADMIN sin tenant",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}
			if cfg.Store.Driver != config.StoreDriverPostgres {
				return fmt.Errorf("create-superadmin requiere STORE_DRIVER=postgres; con memory use serve --superadmin-username")
			}
			st, err := openStores(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			defer st.Close()

			uc := usecase.NewSuperAdminUseCase(st.TenantTx, st.Tenants, st.Users)
			out, err := uc.CreateSuperAdmin(cmd.Context(), username, password)
			if err != nil {
				return fmt.Errorf("crear superadmin: %w", err)
			}
			log.Info().Str("id", out.ID).Str("username", out.Username).Msg("superadmin creado")
			return nil
		},
	}
	cmd.Flags().StringVar(&username, "username", "", "Nombre de usuario")
	cmd.Flags().StringVar(&password, "password", "", "Contraseña")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
