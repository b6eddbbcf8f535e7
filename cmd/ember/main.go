// ember is a CLI tool to generate and verify burn and spend proofs.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sp301415/ember-stark/protocol"
	"github.com/sp301415/ember-stark/stark"
)

var rootCmd = &cobra.Command{
	Use:   "ember",
	Short: "ember generates and verifies proof-of-burn STARK proofs",
}

var (
	fInputPath  string
	fOutputPath string
	fLogNRows   int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println("error:", err)
		os.Exit(-1)
	}
}

func params() protocol.Parameters {
	return protocol.ParamsEIP7503.Compile()
}

func starkParams() stark.Parameters {
	if fLogNRows < 4 || fLogNRows > 20 {
		fmt.Println("log-rows must be between 4 and 20")
		os.Exit(-1)
	}

	paramsLit := stark.ParamsLogN16
	paramsLit.LogNRows = fLogNRows
	return paramsLit.Compile()
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
