package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use: "info",

	Short: "prints the compiled protocol and prover parameters",
	Run:   cmdInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
	infoCmd.PersistentFlags().IntVar(&fLogNRows, "log-rows", 16, "specifies the log2 of the number of trace rows")
}

func cmdInfo(cmd *cobra.Command, args []string) {
	p := params()
	sp := starkParams()

	fmt.Printf("%-28s %s\n", "domain tag", p.DomainTag())
	fmt.Printf("%-28s %d\n", "burn address prefix", p.BurnAddressPrefix().Uint32())
	fmt.Printf("%-28s %d\n", "nullifier prefix", p.NullifierPrefix().Uint32())
	fmt.Printf("%-28s %d\n", "coin prefix", p.CoinPrefix().Uint32())
	fmt.Printf("%-28s %v\n", "max intended balance", p.MaxIntendedBalance())
	fmt.Printf("%-28s %v\n", "max actual balance", p.MaxActualBalance())
	fmt.Printf("%-28s %v\n", "max encodable amount", p.MaxAmount())
	fmt.Printf("%-28s %d\n", "min leaf address nibbles", p.MinLeafAddressNibbles())
	fmt.Printf("%-28s %d\n", "max proof layers", p.MaxProofLayers())
	fmt.Printf("%-28s %d\n", "max header bytes", p.MaxHeaderBytes())
	fmt.Printf("%-28s %d\n", "pow min zero bytes", p.PowMinZeroBytes())

	fmt.Printf("%-28s %d\n", "trace rows", sp.NRows())
	fmt.Printf("%-28s %d\n", "grinding bits", sp.PowBits())
	fmt.Printf("%-28s %d\n", "fri log blowup", sp.FriLogBlowup())
	fmt.Printf("%-28s %d\n", "fri log last layer", sp.FriLogLastLayer())
	fmt.Printf("%-28s %d\n", "fri queries", sp.FriNQueries())
	fmt.Printf("%-28s %d\n", "constraint degree bound", sp.MaxConstraintLogDegreeBound())
}
