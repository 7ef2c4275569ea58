package main

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/litescript/ls-jyotish/internal/chart"
	"github.com/litescript/ls-jyotish/internal/export"
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Generate a birth chart",
	Long: `Generate a Vedic (sidereal) or Western (tropical) birth chart: ascendant,
planet positions, houses, aspects, current transits, element balance,
traits, compatibility, life areas and the planetary period timeline.`,
	Example: `  ls-jyotish chart --date 1990-06-15 --time 08:30 --lat 28.6139 --lon 77.2090
  ls-jyotish chart --date 1990-06-15 --time 08:30 --lat 28.6139 --lon 77.2090 --system western --json`,
	Args: cobra.NoArgs,
	RunE: runChart,
}

func init() {
	chartCmd.Flags().String("date", "", "birth date as YYYY-MM-DD")
	chartCmd.Flags().String("time", "", "birth time as HH:MM")
	chartCmd.Flags().String("lat", "", "birth latitude in degrees, north positive")
	chartCmd.Flags().String("lon", "", "birth longitude in degrees, east positive")
	chartCmd.Flags().String("tz", "", "birth timezone label, e.g. +05:30 (recorded, not applied)")
	chartCmd.Flags().String("system", "vedic", "astrology system: vedic or western")
	chartCmd.Flags().StringSlice("planets", nil, "planets to chart (default from config: Sun,Moon)")
	chartCmd.Flags().Bool("json", false, "print JSON instead of a summary")
	for _, name := range []string{"date", "time", "lat", "lon"} {
		_ = chartCmd.MarkFlagRequired(name)
	}
	rootCmd.AddCommand(chartCmd)
}

// birthDetailsFromFlags reads the birth flags shared by chart and tui.
func birthDetailsFromFlags(cmd *cobra.Command, dateFlag, timeFlag string) chart.BirthDetails {
	date, _ := cmd.Flags().GetString(dateFlag)
	clock, _ := cmd.Flags().GetString(timeFlag)
	lat, _ := cmd.Flags().GetString("lat")
	lon, _ := cmd.Flags().GetString("lon")
	tz, _ := cmd.Flags().GetString("tz")
	return chart.BirthDetails{Date: date, Time: clock, Latitude: lat, Longitude: lon, Timezone: tz}
}

// chartGenerator builds the generator from config, with --planets taking
// precedence over chart.planets.
func chartGenerator(rt *app, cmd *cobra.Command) (*chart.Generator, error) {
	cfg := rt.cfg
	if cmd.Flags().Changed("planets") {
		planets, _ := cmd.Flags().GetStringSlice("planets")
		cfg.Chart.Planets = planets
	}
	return cfg.ChartGenerator()
}

func runChart(cmd *cobra.Command, _ []string) error {
	rt, err := loadApp()
	if err != nil {
		return err
	}

	systemName, _ := cmd.Flags().GetString("system")
	system, err := chart.ParseSystem(systemName)
	if err != nil {
		return err
	}

	gen, err := chartGenerator(rt, cmd)
	if err != nil {
		return err
	}

	c, err := gen.Calculate(birthDetailsFromFlags(cmd, "date", "time"), system, time.Now())
	if err != nil {
		return err
	}
	rt.log.Debug().
		Str("system", system.String()).
		Str("ephemeris", c.Ephemeris).
		Str("planets", strings.Join(planetNames(c.Planets), ",")).
		Msg("chart generated")

	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		return export.ExportChart(c).WriteJSON(cmd.OutOrStdout())
	}
	export.WriteChartSummary(cmd.OutOrStdout(), c)
	return nil
}

func planetNames(positions []chart.PlanetPosition) []string {
	names := make([]string, len(positions))
	for i, p := range positions {
		names[i] = p.Planet.String()
	}
	return names
}
