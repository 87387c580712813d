package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/you/rentalfront/internal/app"
	"github.com/you/rentalfront/internal/config"
)

func main() {
	var cfgPath string

	root := &cobra.Command{
		Use:   "rentalfront",
		Short: "Room-rental frontend service",
	}

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				cfg *config.Config
				err error
			)
			if cfgPath != "" {
				cfg, err = config.LoadFile(cfgPath)
			} else {
				cfg, err = config.Load()
			}
			if err != nil {
				return err
			}
			return app.Run(cfg)
		},
	}
	serve.Flags().StringVarP(&cfgPath, "config", "c", "", "path to the config file")
	root.AddCommand(serve)

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}
