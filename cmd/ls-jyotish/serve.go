package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/litescript/ls-jyotish/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the Panchang, festival and chart API over HTTP",
	Long: `Serve JSON endpoints under /api/v1:

  GET  /api/v1/panchang?date=&time=
  GET  /api/v1/panchang/range?from=&to=&time=
  GET  /api/v1/festivals?year=&month=&limit=
  GET  /api/v1/muhurat/active?start=&end=
  POST /api/v1/chart

The server stops gracefully on SIGINT or SIGTERM.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "listen address")
	_ = viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	rt, err := loadApp()
	if err != nil {
		return err
	}

	gen, err := rt.cfg.ChartGenerator()
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()
	rt.watchFestivals(ctx)

	api := server.NewWebAPI(rt.log, server.Config{
		Addr:            rt.cfg.Server.Addr,
		ShutdownTimeout: rt.cfg.Server.ShutdownTimeout,
		Dependencies: server.Dependencies{
			Calculator: rt.cfg.Calculator(),
			Generator:  gen,
			Festivals:  rt.festivals,
		},
	})

	rt.log.Info().Str("addr", rt.cfg.Server.Addr).Msg("serving")
	return api.Start(ctx)
}
