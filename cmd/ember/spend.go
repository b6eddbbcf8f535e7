package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sp301415/ember-stark/circuit"
	"github.com/sp301415/ember-stark/ember"
)

// generateSpendCmd represents the generate-spend command
var generateSpendCmd = &cobra.Command{
	Use: "generate-spend",

	Short: "generates a spend proof from a witness file",
	Run:   cmdGenerateSpend,
}

func init() {
	rootCmd.AddCommand(generateSpendCmd)
	generateSpendCmd.PersistentFlags().StringVarP(&fInputPath, "input", "i", "", "specifies the path of the spend witness JSON file")
	generateSpendCmd.PersistentFlags().StringVarP(&fOutputPath, "output", "o", "", "specifies the path of the proof bundle to write")
	generateSpendCmd.PersistentFlags().IntVar(&fLogNRows, "log-rows", 16, "specifies the log2 of the number of trace rows")
	_ = generateSpendCmd.MarkPersistentFlagRequired("input")
	_ = generateSpendCmd.MarkPersistentFlagRequired("output")
}

func cmdGenerateSpend(cmd *cobra.Command, args []string) {
	var inputs circuit.SpendInputs
	if err := readJSON(fInputPath, &inputs); err != nil {
		fmt.Println("can't read witness:", err)
		os.Exit(-1)
	}

	pf, err := ember.ProveSpend(params(), starkParams(), inputs)
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(-1)
	}

	if err := writeJSON(fOutputPath, pf); err != nil {
		fmt.Println("can't write proof:", err)
		os.Exit(-1)
	}

	fmt.Printf("%-24s %v\n", "coin", pf.Outputs.Coin)
	fmt.Printf("%-24s %v\n", "remaining coin", pf.Outputs.RemainingCoin)
	fmt.Printf("%-24s %v\n", "commitment", pf.Outputs.Commitment)
	fmt.Println("proof written to", fOutputPath)
}
