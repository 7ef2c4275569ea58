// Command ls-jyotish is a terminal Panchang, muhurat and birth chart tool.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/litescript/ls-jyotish/internal/config"
	"github.com/litescript/ls-jyotish/internal/festival"
)

var rootCmd = &cobra.Command{
	Use:   "ls-jyotish",
	Short: "Panchang, muhurat windows and birth charts in the terminal",
	Long: `ls-jyotish computes the daily Panchang (tithi, nakshatra, yoga, karana),
Rahu Kaal and auspicious muhurat windows, the festival calendar and Vedic or
Western birth charts. Run without a subcommand on a terminal to open the
live dashboard.`,
	SilenceUsage: true,
	RunE:         runRootDefault,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .ls-jyotish.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "auto", "log format (auto, console)")
	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
}

func initConfig() {
	if cfgFile, _ := rootCmd.PersistentFlags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".ls-jyotish")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	config.ConfigureEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

// runRootDefault opens the dashboard on a terminal and prints today's
// Panchang otherwise.
func runRootDefault(cmd *cobra.Command, args []string) error {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return runTUI(tuiCmd, nil)
	}
	return runPanchang(panchangCmd, nil)
}

// app bundles what every subcommand loads first.
type app struct {
	cfg       config.Config
	log       zerolog.Logger
	festivals *festival.Store
}

func loadApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	rt := &app{
		cfg: cfg,
		log: cfg.Logger(os.Stderr),
	}

	var cal *festival.Calendar
	if cfg.FestivalsFile != "" {
		cal, err = festival.LoadFile(cfg.FestivalsFile)
		if err != nil {
			return nil, err
		}
		rt.log.Debug().Str("path", cfg.FestivalsFile).Int("festivals", len(cal.Rules)).Msg("loaded festival calendar")
	}
	rt.festivals = festival.NewStore(cal)

	return rt, nil
}

// watchFestivals reloads the festival file in the background when one is
// configured.
func (rt *app) watchFestivals(ctx context.Context) {
	if rt.cfg.FestivalsFile == "" {
		return
	}
	go func() {
		if err := rt.festivals.Watch(ctx, rt.cfg.FestivalsFile, rt.log); err != nil {
			rt.log.Warn().Err(err).Msg("festival watcher stopped")
		}
	}()
}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
