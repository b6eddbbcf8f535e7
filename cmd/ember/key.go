package main

import (
	"fmt"
	"os"

	"github.com/holiman/uint256"
	"github.com/spf13/cobra"
	"github.com/tuneinsight/lattigo/v6/utils/sampling"

	"github.com/sp301415/ember-stark/m31"
	"github.com/sp301415/ember-stark/protocol"
)

// newKeyCmd represents the new-key command
var newKeyCmd = &cobra.Command{
	Use: "new-key",

	Short: "samples a fresh burn key passing the proof-of-work gate",
	Run:   cmdNewKey,
}

var (
	fRevealAmount  string
	fExtra         uint32
	fRelax         int
	fMaxCandidates uint32
)

func init() {
	rootCmd.AddCommand(newKeyCmd)
	newKeyCmd.PersistentFlags().StringVar(&fRevealAmount, "reveal", "", "specifies the amount in wei the burn will reveal")
	newKeyCmd.PersistentFlags().Uint32Var(&fExtra, "extra", 0, "specifies the extra commitment bound to the burn address")
	newKeyCmd.PersistentFlags().IntVar(&fRelax, "relax", 0, "specifies the byte security relax level, adding proof-of-work zero bytes")
	newKeyCmd.PersistentFlags().Uint32Var(&fMaxCandidates, "max-candidates", 1<<26, "specifies the number of keys to try before giving up")
	_ = newKeyCmd.MarkPersistentFlagRequired("reveal")
}

func cmdNewKey(cmd *cobra.Command, args []string) {
	p := params()

	revealAmount, err := uint256.FromDecimal(fRevealAmount)
	if err != nil {
		fmt.Println("can't parse reveal amount:", err)
		os.Exit(-1)
	}
	extra := m31.New(fExtra)

	prng, err := sampling.NewPRNG()
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(-1)
	}

	// Scan forward from a random key so that two miners never race
	// over the same candidates.
	start := protocol.GenerateBurnKey(prng)
	minZeroBytes := p.PowMinZeroBytes() + fRelax

	var burnKey m31.Elem
	found := false
	for i := uint32(0); i < fMaxCandidates; i++ {
		candidate := start.Add(m31.New(i))
		if protocol.VerifyPow(p, candidate, revealAmount, extra, minZeroBytes) {
			burnKey, found = candidate, true
			break
		}
	}
	if !found {
		fmt.Println("no burn key found, retry or raise --max-candidates")
		os.Exit(-1)
	}

	fmt.Printf("%-24s %v\n", "burn key", burnKey)
	fmt.Printf("%-24s %v\n", "burn address", protocol.BurnAddress(p, burnKey, revealAmount, extra))
	fmt.Printf("%-24s %v\n", "nullifier", protocol.Nullifier(p, burnKey))
}
