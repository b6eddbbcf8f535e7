package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sp301415/ember-stark/ember"
)

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use: "verify [proof.json]",

	Short: "verifies a proof bundle",
	Run:   cmdVerify,
}

var fCircuit string

func init() {
	rootCmd.AddCommand(verifyCmd)
	verifyCmd.PersistentFlags().StringVar(&fCircuit, "circuit", "burn", "specifies the circuit of the proof: burn or spend")
	verifyCmd.PersistentFlags().IntVar(&fLogNRows, "log-rows", 16, "specifies the log2 of the number of trace rows")
}

func cmdVerify(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		fmt.Println("missing proof path -- ember verify -h for help")
		os.Exit(-1)
	}

	switch fCircuit {
	case "burn":
		var pf ember.BurnProof
		if err := readJSON(args[0], &pf); err != nil {
			fmt.Println("can't read proof:", err)
			os.Exit(-1)
		}
		if err := ember.VerifyBurn(params(), starkParams(), pf); err != nil {
			fmt.Println("proof rejected:", err)
			os.Exit(-1)
		}

	case "spend":
		var pf ember.SpendProof
		if err := readJSON(args[0], &pf); err != nil {
			fmt.Println("can't read proof:", err)
			os.Exit(-1)
		}
		if err := ember.VerifySpend(params(), starkParams(), pf); err != nil {
			fmt.Println("proof rejected:", err)
			os.Exit(-1)
		}

	default:
		fmt.Println("unknown circuit:", fCircuit)
		os.Exit(-1)
	}

	fmt.Println("proof verified")
}
