package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/henderiw/timespan/pkg/timespan"
)

var rootCmd = &cobra.Command{
	Use:           "timespan",
	Short:         "Inspect and convert time-of-day spans",
	SilenceUsage:  true,
	SilenceErrors: false,
}

var containsCmd = &cobra.Command{
	Use:   "contains <span> <point> <template> <start-layout> <end-layout> <point-layout>",
	Short: "Check whether a point in time falls inside a span",
	Args:  cobra.ExactArgs(6),
	RunE: func(cmd *cobra.Command, args []string) error {
		sp, err := timespan.ParseFormat(args[0], args[2], args[3], args[4])
		if err != nil {
			return err
		}
		p, err := timespan.ParseTime(args[1], args[5])
		if err != nil {
			return err
		}
		if !sp.Contains(p) {
			return fmt.Errorf("%s does not contain %s", sp, p)
		}
		fmt.Printf("%s contains %s\n", sp, p)
		return nil
	},
}

var convertCmd = &cobra.Command{
	Use:   "convert <span> <from-template> <from-start> <from-end> <to-template> <to-start> <to-end>",
	Short: "Reparse a span under one template and render it under another",
	Args:  cobra.ExactArgs(7),
	RunE: func(cmd *cobra.Command, args []string) error {
		sp, err := timespan.ParseFormat(args[0], args[1], args[2], args[3])
		if err != nil {
			return err
		}
		out, err := timespan.Format(sp, args[4], args[5], args[6]).Render()
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	},
}

var durationCmd = &cobra.Command{
	Use:   "duration <span> <template> <start-layout> <end-layout>",
	Short: "Print the duration covered by a span",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		sp, err := timespan.ParseFormat(args[0], args[1], args[2], args[3])
		if err != nil {
			return err
		}
		fmt.Printf("duration for %s: %s\n", sp, sp.Duration())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(containsCmd, convertCmd, durationCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
