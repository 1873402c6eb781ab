package main

import (
	"encoding/json"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/offsetlab/tzq/tzdir"
	"github.com/offsetlab/tzq/tzq"
)

var (
	transitionsYear int
	transitionsAll  bool
	transitionsJSON bool
)

var transitionsCmd = &cobra.Command{
	Use:   "transitions <zone>",
	Short: "List a zone's UTC offset transitions",
	Long: `List a zone's UTC offset transitions.

By default only the current year's transitions are shown. Use --year to
select another year, or --all for every transition recorded in the file.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := tzdir.FromEnv()
		if err != nil {
			return err
		}
		log.Debug().Str("dir", cfg.Dir).Str("zone", args[0]).Msg("loading zone")
		z, err := cfg.Load(args[0])
		if err != nil {
			return err
		}

		var views []tzq.TransitionTime
		if transitionsAll {
			views, err = tzq.AllTransitions(z)
		} else {
			views, err = tzq.TransitionsForYear(z, transitionsYear, time.Now())
		}
		if err != nil {
			return err
		}

		if transitionsJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(views)
		}
		printTransitions(views)
		return nil
	},
}

func init() {
	transitionsCmd.Flags().IntVar(&transitionsYear, "year", 0, "year to query (0 = current year)")
	transitionsCmd.Flags().BoolVar(&transitionsAll, "all", false, "list every recorded transition")
	transitionsCmd.Flags().BoolVar(&transitionsJSON, "json", false, "print as JSON")
}

func printTransitions(views []tzq.TransitionTime) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Time (UTC)", "Offset", "DST", "Abbreviation"})
	for _, v := range views {
		t.AppendRow(table.Row{
			v.Time.Format(time.RFC3339),
			tzq.Offset(v.UTCOffset),
			v.IsDST,
			v.Abbreviation,
		})
	}
	t.Render()
}
