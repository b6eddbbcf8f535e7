package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sp301415/ember-stark/circuit"
	"github.com/sp301415/ember-stark/ember"
)

// generateBurnCmd represents the generate-burn command
var generateBurnCmd = &cobra.Command{
	Use: "generate-burn",

	Short: "generates a burn proof from a witness file",
	Run:   cmdGenerateBurn,
}

var fSimplePath string

func init() {
	rootCmd.AddCommand(generateBurnCmd)
	generateBurnCmd.PersistentFlags().StringVarP(&fInputPath, "input", "i", "", "specifies the path of the burn witness JSON file")
	generateBurnCmd.PersistentFlags().StringVarP(&fOutputPath, "output", "o", "", "specifies the path of the proof bundle to write")
	generateBurnCmd.PersistentFlags().StringVar(&fSimplePath, "simple", "", "optionally writes the minimal proof record to this path")
	generateBurnCmd.PersistentFlags().IntVar(&fLogNRows, "log-rows", 16, "specifies the log2 of the number of trace rows")
	_ = generateBurnCmd.MarkPersistentFlagRequired("input")
	_ = generateBurnCmd.MarkPersistentFlagRequired("output")
}

func cmdGenerateBurn(cmd *cobra.Command, args []string) {
	var inputs circuit.BurnInputs
	if err := readJSON(fInputPath, &inputs); err != nil {
		fmt.Println("can't read witness:", err)
		os.Exit(-1)
	}

	pf, err := ember.ProveBurn(params(), starkParams(), inputs)
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(-1)
	}

	if err := writeJSON(fOutputPath, pf); err != nil {
		fmt.Println("can't write proof:", err)
		os.Exit(-1)
	}
	if fSimplePath != "" {
		if err := writeJSON(fSimplePath, pf.Simple); err != nil {
			fmt.Println("can't write proof record:", err)
			os.Exit(-1)
		}
	}

	fmt.Printf("%-24s %v\n", "nullifier", pf.Outputs.Nullifier)
	fmt.Printf("%-24s %v\n", "remaining coin", pf.Outputs.RemainingCoin)
	fmt.Printf("%-24s %v\n", "commitment", pf.Outputs.Commitment)
	fmt.Printf("%-24s %v\n", "proof id", pf.Simple.ProofID)
	fmt.Println("proof written to", fOutputPath)
}
