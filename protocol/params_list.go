package protocol

import "github.com/holiman/uint256"

var (
	// ParamsEIP7503 is the parameter set of the EIP-7503 burn protocol:
	// intended balances up to 10 ETH, actual balances up to 100 ETH,
	// 248-bit spendable amounts, 200 bits of leaf-path security
	// and 16 bits of proof-of-work over burn keys.
	ParamsEIP7503 = ParametersLiteral{
		DomainTag: "EIP-7503",

		MaxIntendedBalance: uint256.MustFromDecimal("10000000000000000000"),
		MaxActualBalance:   uint256.MustFromDecimal("100000000000000000000"),

		MaxAmountBytes: 31,

		MinLeafAddressNibbles: 50,
		MaxProofLayers:        16,
		MaxHeaderBlocks:       8,

		PowMinZeroBytes: 2,
	}
)
