package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/litescript/ls-jyotish/internal/astro"
	"github.com/litescript/ls-jyotish/internal/export"
	"github.com/litescript/ls-jyotish/internal/festival"
)

var festivalsCmd = &cobra.Command{
	Use:   "festivals",
	Short: "List festivals for a year or month",
	Long: `List festivals from the built-in calendar, or from festivals_file when one
is configured. Without flags, the festivals of the current month are shown.
--toml prints the active calendar rules in the festivals_file format, a
starting point for a custom calendar.`,
	Args: cobra.NoArgs,
	RunE: runFestivals,
}

func init() {
	festivalsCmd.Flags().Int("year", 0, "year (default: current)")
	festivalsCmd.Flags().Int("month", 0, "month 1-12 (default: whole year when --year is set)")
	festivalsCmd.Flags().Bool("json", false, "print JSON instead of a table")
	festivalsCmd.Flags().Bool("toml", false, "print the calendar rules as TOML")
	rootCmd.AddCommand(festivalsCmd)
}

func runFestivals(cmd *cobra.Command, _ []string) error {
	rt, err := loadApp()
	if err != nil {
		return err
	}

	year, _ := cmd.Flags().GetInt("year")
	month, _ := cmd.Flags().GetInt("month")
	asJSON, _ := cmd.Flags().GetBool("json")

	if dump, _ := cmd.Flags().GetBool("toml"); dump {
		return writeCalendarTOML(cmd.OutOrStdout(), rt.festivals.Calendar())
	}

	list, err := selectFestivals(rt.festivals.Calendar(), year, month, time.Now().In(astro.IST))
	if err != nil {
		return err
	}

	if asJSON {
		if list == nil {
			list = []festival.Festival{}
		}
		return export.WriteJSON(cmd.OutOrStdout(), list)
	}
	export.WriteFestivals(cmd.OutOrStdout(), list)
	return nil
}

// selectFestivals picks the month, the year or, with neither, now's month.
func selectFestivals(cal *festival.Calendar, year, month int, now time.Time) ([]festival.Festival, error) {
	if month < 0 || month > 12 {
		return nil, fmt.Errorf("--month %d: want 1-12", month)
	}
	if year < 0 {
		return nil, fmt.Errorf("--year %d: must be positive", year)
	}

	switch {
	case year == 0 && month == 0:
		return cal.ForMonth(now.Year(), now.Month(), astro.IST), nil
	case year == 0:
		year = now.Year()
	}
	if month == 0 {
		return cal.ForYear(year, astro.IST), nil
	}
	return cal.ForMonth(year, time.Month(month), astro.IST), nil
}

func writeCalendarTOML(w io.Writer, cal *festival.Calendar) error {
	data, err := cal.Marshal()
	if err != nil {
		return fmt.Errorf("encoding festival calendar: %w", err)
	}
	_, err = w.Write(data)
	return err
}
