package main

import (
	"fmt"
	"os"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"

	"github.com/offsetlab/tzq/tzif"
)

var diffCmd = &cobra.Command{
	Use:   "diff <tzif file A> <tzif file B>",
	Short: "Compare the decoded contents of two TZif files",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := decodeFile(args[0])
		if err != nil {
			return err
		}
		b, err := decodeFile(args[1])
		if err != nil {
			return err
		}
		if diff := cmp.Diff(a, b); diff != "" {
			fmt.Println("files are different: -A +B")
			fmt.Println(diff)
		} else {
			fmt.Println("files are identical")
		}
		return nil
	},
}

func decodeFile(path string) (tzif.Zone, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return tzif.Zone{}, err
	}
	z, err := tzif.Decode(buf)
	if err != nil {
		return tzif.Zone{}, fmt.Errorf("decoding %s: %w", path, err)
	}
	return z, nil
}
