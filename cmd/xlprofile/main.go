// Package main provides the CLI entry point for xlprofile.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/ukaji3/xlprofile-go/pkg/logger"
	"github.com/ukaji3/xlprofile-go/pkg/xlprofile"
	"github.com/ukaji3/xlprofile-go/pkg/xlprofile/output"
)

var (
	pretty    bool
	asJSON    bool
	naValues  []string
	logLevel  string
	seed      uint64
	samples   int
	noChart   bool
	chartPath string
)

func main() {
	// A missing .env is fine.
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("Error: %v", err))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "xlprofile",
		Short: "Profile the sheets of Excel workbooks",
		Long: `xlprofile loads Excel workbooks and prints a data overview, a data
quality assessment and value samples for a sheet, with a chart of missing
values per column.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (default: $LOG_LEVEL or info)")
	rootCmd.PersistentFlags().BoolVar(&asJSON, "json", false, "Write JSON instead of tables")
	rootCmd.PersistentFlags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentFlags().StringSliceVar(&naValues, "na", nil, "Extra cell texts read as missing")

	sheetsCmd := &cobra.Command{
		Use:   "sheets [input.xlsx]",
		Short: "Load every sheet and list its size",
		Args:  cobra.ExactArgs(1),
		RunE:  runSheets,
	}

	profileCmd := &cobra.Command{
		Use:   "profile [input.xlsx] [sheet]",
		Short: "Print the profile of one sheet",
		Args:  cobra.ExactArgs(2),
		RunE:  runProfile,
	}
	profileCmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for value sampling (default: random)")
	profileCmd.Flags().IntVar(&samples, "samples", xlprofile.DefaultSampleSize, "Number of sample values per column")
	profileCmd.Flags().BoolVar(&noChart, "no-chart", false, "Skip the missing-values chart")
	profileCmd.Flags().StringVar(&chartPath, "chart-out", "", "Save the chart page to this file instead of opening a browser")

	rootCmd.AddCommand(sheetsCmd, profileCmd)
	return rootCmd
}

func options(cmd *cobra.Command) xlprofile.Options {
	opts := xlprofile.DefaultOptions()
	opts.Output = cmd.OutOrStdout()
	opts.Logger = logger.New(logLevel)
	opts.NAValues = append(opts.NAValues, naValues...)
	return opts
}

func runSheets(cmd *cobra.Command, args []string) error {
	opts := options(cmd)
	defer opts.Logger.Sync()

	wb, err := xlprofile.ReadAllSheets(args[0], opts)
	if err != nil {
		return fmt.Errorf("load failed: %w", err)
	}

	if asJSON {
		data, err := output.WorkbookToJSON(wb, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		_, err = fmt.Fprintln(opts.Output, string(data))
		return err
	}

	return listSheets(opts.Output, wb.SheetNames, func(name string) (int, int) {
		s := wb.Sheets[name]
		return s.Rows, s.NumColumns()
	})
}

func listSheets(w io.Writer, names []string, size func(string) (int, int)) error {
	for _, name := range names {
		rows, cols := size(name)
		if _, err := fmt.Fprintf(w, "%s  %d rows x %d columns\n", color.CyanString(name), rows, cols); err != nil {
			return err
		}
	}
	return nil
}

func runProfile(cmd *cobra.Command, args []string) error {
	opts := options(cmd)
	defer opts.Logger.Sync()

	inputPath, sheetName := args[0], args[1]
	opts.SampleSize = samples
	if cmd.Flags().Changed("seed") {
		opts.Seed = &seed
	}
	if noChart {
		show := false
		opts.ShowChart = &show
	}
	opts.ChartPath = chartPath

	if !asJSON {
		xlprofile.Overview(inputPath, sheetName, opts)
		return nil
	}

	report, err := xlprofile.Profile(inputPath, sheetName, opts)
	if err != nil {
		return err
	}
	data, err := output.ReportToJSON(report, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	_, err = fmt.Fprintln(opts.Output, string(data))
	return err
}
