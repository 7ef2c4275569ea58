package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/litescript/ls-jyotish/internal/astro"
	"github.com/litescript/ls-jyotish/internal/export"
	"github.com/litescript/ls-jyotish/internal/festival"
	"github.com/litescript/ls-jyotish/internal/panchang"
	"github.com/litescript/ls-jyotish/internal/state"
)

var panchangCmd = &cobra.Command{
	Use:   "panchang",
	Short: "Print the Panchang for a date and time",
	Long: `Print tithi, nakshatra, yoga, karana, sunrise and sunset, Rahu Kaal and
the auspicious muhurat windows. Date and time are read as IST and default
to now. With --watch the output repeats at the given interval and window
changes are reported.`,
	Args: cobra.NoArgs,
	RunE: runPanchang,
}

func init() {
	panchangCmd.Flags().String("date", "", "date as YYYY-MM-DD (default: today)")
	panchangCmd.Flags().String("time", "", "time as HH:MM (default: now)")
	panchangCmd.Flags().Bool("json", false, "print JSON instead of a table")
	panchangCmd.Flags().Duration("watch", 0, "repeat at interval (e.g. 1m); implies the current time")
	rootCmd.AddCommand(panchangCmd)
}

func runPanchang(cmd *cobra.Command, _ []string) error {
	rt, err := loadApp()
	if err != nil {
		return err
	}

	date, _ := cmd.Flags().GetString("date")
	clock, _ := cmd.Flags().GetString("time")
	asJSON, _ := cmd.Flags().GetBool("json")
	watch, _ := cmd.Flags().GetDuration("watch")

	calc := rt.cfg.Calculator()
	out := cmd.OutOrStdout()

	if watch <= 0 {
		at, err := parseMoment(date, clock, time.Now())
		if err != nil {
			return err
		}
		return printPanchang(out, calc, rt.festivals, at, asJSON)
	}

	if date != "" || clock != "" {
		return fmt.Errorf("--watch cannot be combined with --date or --time")
	}
	if watch < time.Second {
		watch = time.Second
	}

	ctx, cancel := signalContext()
	defer cancel()
	rt.watchFestivals(ctx)

	stateCfg := state.DefaultConfig()
	stateCfg.RefreshInterval = watch
	return watchPanchang(ctx, out, calc, rt.festivals, state.NewManager(stateCfg), asJSON, time.Now)
}

func printPanchang(w io.Writer, calc *panchang.Calculator, store *festival.Store, at time.Time, asJSON bool) error {
	day := calc.Calculate(at)
	if asJSON {
		return export.ExportPanchang(&day, store.Upcoming(at, 0), at).WriteJSON(w)
	}
	export.WritePanchangTable(w, &day, at)
	fmt.Fprintln(w)
	export.WriteFestivals(w, store.Upcoming(at, 0))
	return nil
}

// watchPanchang prints the Panchang once per refresh interval until ctx is
// cancelled, followed by any window or tithi changes since the last print.
// Each reading of now is moved to IST before it is computed.
func watchPanchang(ctx context.Context, w io.Writer, calc *panchang.Calculator, store *festival.Store,
	mgr *state.Manager, asJSON bool, now func() time.Time) error {
	tick := func() error {
		at := now().In(astro.IST)
		start := time.Now()
		day := calc.Calculate(at)
		mgr.Update(&day, store.Upcoming(at, 0), at, time.Since(start), nil)

		if err := printPanchang(w, calc, store, at, asJSON); err != nil {
			return err
		}

		if asJSON {
			return nil
		}
		// Events raised by this update carry its timestamp
		for _, e := range mgr.RecentEvents(10) {
			if e.Timestamp.Equal(at) {
				fmt.Fprintf(w, "event: %s %s%s%s\n", e.Type, e.Window, e.Old, arrow(e))
			}
		}
		return nil
	}

	if err := tick(); err != nil {
		return err
	}

	ticker := time.NewTicker(mgr.RefreshInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if !asJSON {
				fmt.Fprintln(w) // Blank line between outputs
			}
			if err := tick(); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
		}
	}
}

func arrow(e state.Event) string {
	if e.New == "" {
		return ""
	}
	return " -> " + e.New
}
