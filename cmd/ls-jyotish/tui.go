package main

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/litescript/ls-jyotish/internal/astro"
	"github.com/litescript/ls-jyotish/internal/chart"
	"github.com/litescript/ls-jyotish/internal/festival"
	"github.com/litescript/ls-jyotish/internal/panchang"
	"github.com/litescript/ls-jyotish/internal/state"
	"github.com/litescript/ls-jyotish/internal/ui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the live dashboard",
	Long: `Open the live dashboard: today's Panchang with the active muhurat window
highlighted, the birth chart when birth details are given, and a log of
window and tithi changes. Keys: 1-3 or tab switch views, q quits.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().String("birth-date", "", "birth date as YYYY-MM-DD")
	tuiCmd.Flags().String("birth-time", "", "birth time as HH:MM")
	tuiCmd.Flags().String("lat", "", "birth latitude in degrees")
	tuiCmd.Flags().String("lon", "", "birth longitude in degrees")
	tuiCmd.Flags().String("tz", "", "birth timezone label")
	tuiCmd.Flags().String("system", "vedic", "astrology system: vedic or western")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	rt, err := loadApp()
	if err != nil {
		return err
	}

	c, err := tuiChart(rt, cmd)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()
	rt.watchFestivals(ctx)

	stateMgr := state.NewManager(state.Config{
		MaxEvents:       state.DefaultConfig().MaxEvents,
		RefreshInterval: rt.cfg.Refresh,
	})

	p := tea.NewProgram(ui.New(stateMgr, c), tea.WithAltScreen(), tea.WithContext(ctx))

	go runRefreshLoop(ctx, rt.cfg.Calculator(), rt.festivals, stateMgr, p, rt.log, time.Now)

	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("running dashboard: %w", err)
	}
	return nil
}

// tuiChart builds the birth chart when --birth-date is given.
func tuiChart(rt *app, cmd *cobra.Command) (*chart.Chart, error) {
	if !cmd.Flags().Changed("birth-date") {
		return nil, nil
	}
	systemName, _ := cmd.Flags().GetString("system")
	system, err := chart.ParseSystem(systemName)
	if err != nil {
		return nil, err
	}
	gen, err := rt.cfg.ChartGenerator()
	if err != nil {
		return nil, err
	}
	return gen.Calculate(birthDetailsFromFlags(cmd, "birth-date", "birth-time"), system, time.Now())
}

// sender is the part of *tea.Program the refresh loop needs.
type sender interface {
	Send(msg tea.Msg)
}

func runRefreshLoop(ctx context.Context, calc *panchang.Calculator, store *festival.Store,
	stateMgr *state.Manager, p sender, log zerolog.Logger, now func() time.Time) {
	// Compute immediately
	refresh(calc, store, stateMgr, p, log, now())

	ticker := time.NewTicker(stateMgr.RefreshInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Debug().Msg("refresh loop shutting down")
			return
		case <-ticker.C:
			refresh(calc, store, stateMgr, p, log, now())
		}
	}
}

func refresh(calc *panchang.Calculator, store *festival.Store, stateMgr *state.Manager, p sender,
	log zerolog.Logger, at time.Time) {
	at = at.In(astro.IST)
	start := time.Now()
	day := calc.Calculate(at)
	took := time.Since(start)

	stateMgr.Update(&day, store.Upcoming(at, 0), at, took, nil)
	snap := stateMgr.Snapshot()

	log.Debug().
		Int("tithi", day.Tithi.Number).
		Str("nakshatra", day.Nakshatra.Name).
		Int("active_windows", len(snap.ActiveWindows)).
		Dur("took", took).
		Msg("panchang refreshed")

	p.Send(ui.DataUpdateMsg{Snapshot: snap})
}
