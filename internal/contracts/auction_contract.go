package contracts

import (
	"bytes"
	_ "embed"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

const (
	ShowWinnerMethod = "showWinner"
	ShowOffersMethod = "showOffers"
)

//go:embed auction/abi.json
var auctionABIJSON []byte

// expectedOutputs is the fixed read schema the viewer depends on
var expectedOutputs = map[string][]string{
	ShowWinnerMethod: {"address", "uint256"},
	ShowOffersMethod: {"(address,uint256)[]"},
}

// AuctionABI is the parsed auction interface together with its raw JSON
type AuctionABI struct {
	ABI abi.ABI
	Raw string
}

// LoadAuctionABI parses and validates the bundled auction ABI
func LoadAuctionABI() (*AuctionABI, error) {
	return ParseAuctionABI(auctionABIJSON)
}

// ParseAuctionABI parses an ABI document and checks that it exposes the
// read-only showWinner and showOffers functions with the expected shapes.
func ParseAuctionABI(data []byte) (*AuctionABI, error) {
	parsedABI, err := abi.JSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse auction ABI: %w", err)
	}

	for name, outputs := range expectedOutputs {
		method, exists := parsedABI.Methods[name]
		if !exists {
			return nil, fmt.Errorf("auction ABI is missing function %s", name)
		}
		if err := validateMethod(method, outputs); err != nil {
			return nil, err
		}
	}

	return &AuctionABI{ABI: parsedABI, Raw: string(data)}, nil
}

func validateMethod(method abi.Method, outputs []string) error {
	if !method.IsConstant() {
		return fmt.Errorf("auction function %s must be view or pure, got %q", method.Name, method.StateMutability)
	}
	if len(method.Inputs) != 0 {
		return fmt.Errorf("auction function %s must take no arguments, got %d", method.Name, len(method.Inputs))
	}
	if len(method.Outputs) != len(outputs) {
		return fmt.Errorf("auction function %s must return %d values, got %d", method.Name, len(outputs), len(method.Outputs))
	}
	for i, output := range method.Outputs {
		if output.Type.String() != outputs[i] {
			return fmt.Errorf("auction function %s output %d must be %s, got %s", method.Name, i, outputs[i], output.Type.String())
		}
	}
	return nil
}
