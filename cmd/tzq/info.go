package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/offsetlab/tzq/tzdir"
	"github.com/offsetlab/tzq/tzq"
)

var infoJSON bool

var infoCmd = &cobra.Command{
	Use:   "info <zone>",
	Short: "Show the current offset, DST period and local time of a zone",
	Args:  cobra.ExactArgs(1),
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
		state, err := tzq.Resolve(z, time.Now())
		if err != nil {
			return fmt.Errorf("resolving %s: %w", z.Name, err)
		}
		if infoJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(state)
		}
		printState(state)
		return nil
	},
}

func init() {
	infoCmd.Flags().BoolVar(&infoJSON, "json", false, "print as JSON")
}

func printState(s tzq.ZoneState) {
	fmt.Println("Timezone     =", s.Timezone)
	fmt.Println("UTC time     =", s.UTCDatetime.Format(time.RFC3339))
	fmt.Println("Local time   =", s.Datetime.Format(time.RFC3339))
	if s.DSTFrom != nil && s.DSTUntil != nil {
		fmt.Println("DST from     =", s.DSTFrom.Format(time.RFC3339))
		fmt.Println("DST until    =", s.DSTUntil.Format(time.RFC3339))
	}
	fmt.Println("DST period   =", s.DSTPeriod)
	fmt.Println("Raw offset   =", s.RawOffset)
	fmt.Println("DST offset   =", s.DSTOffset)
	fmt.Println("UTC offset   =", s.UTCOffset)
	fmt.Println("Abbreviation =", s.Abbreviation)
	fmt.Println("ISO week     =", s.WeekNumber)
}
