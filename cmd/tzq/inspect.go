package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/offsetlab/tzq/tzif"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <tzif file>",
	Short: "Dump the decoded contents of a TZif file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		buf, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading file: %w", err)
		}
		h, err := tzif.DecodeHeader(buf)
		if err != nil {
			return fmt.Errorf("decoding: %w", err)
		}
		z, err := tzif.Decode(buf)
		if err != nil {
			return fmt.Errorf("decoding: %w", err)
		}
		if err := tzif.Validate(z); err != nil {
			log.Warn().Err(err).Msg("zone failed validation")
		}

		fmt.Println("Header")
		fmt.Println("  isutcnt  =", h.Isutcnt)
		fmt.Println("  isstdcnt =", h.Isstdcnt)
		fmt.Println("  leapcnt  =", h.Leapcnt)
		fmt.Println("  timecnt  =", h.Timecnt)
		fmt.Println("  typecnt  =", h.Typecnt)
		fmt.Println("  charcnt  =", h.Charcnt)
		fmt.Println("  v2start  =", h.V2Start)
		fmt.Println()
		fmt.Printf("Transitions (%d)\n", len(z.Transitions))
		for _, tr := range z.Transitions {
			fmt.Printf("  %d type=%d\n", tr.Instant, tr.TypeIndex)
		}
		fmt.Printf("Local time types (%d)\n", len(z.Types))
		for i, lt := range z.Types {
			fmt.Printf("  %d: utoff=%d dst=%v abbr=%d\n", i, lt.UTCOffset, lt.IsDST, lt.AbbrIndex)
		}
		fmt.Printf("Abbreviations (%d) = %q\n", len(z.Abbreviations), z.Abbreviations)
		return nil
	},
}
