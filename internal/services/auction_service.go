package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/rxtech-lab/auction-viewer/internal/contracts"
	"github.com/rxtech-lab/auction-viewer/internal/models"
	"github.com/rxtech-lab/auction-viewer/internal/utils"
)

var (
	ErrNotConnected = errors.New("not connected")
	ErrRPCCall      = errors.New("contract call failed")
	ErrDecode       = errors.New("unexpected contract response")
)

// ContractBackend is the subset of an Ethereum client the auction reader needs.
// *ethclient.Client satisfies it.
type ContractBackend interface {
	bind.ContractCaller
	ChainID(ctx context.Context) (*big.Int, error)
}

// AuctionService reads the state of the configured auction contract
type AuctionService interface {
	// Fetch never fails: any error is folded into models.FallbackResult.
	Fetch(ctx context.Context) models.ContractQueryResult
	InterfaceDescription() string
	ContractAddress() common.Address
}

type auctionService struct {
	backend ContractBackend
	address common.Address
	abi     *contracts.AuctionABI
}

type winnerOutput struct {
	Winner common.Address
	Amount *big.Int
}

type offerOutput struct {
	Bidder common.Address
	Amount *big.Int
}

// NewAuctionService binds the auction ABI to the contract at address.
// No RPC call is made until Fetch.
func NewAuctionService(backend ContractBackend, address common.Address, auctionABI *contracts.AuctionABI) AuctionService {
	return &auctionService{
		backend: backend,
		address: address,
		abi:     auctionABI,
	}
}

func (s *auctionService) InterfaceDescription() string {
	return s.abi.Raw
}

func (s *auctionService) ContractAddress() common.Address {
	return s.address
}

// Fetch reads the winner and all offers from the contract
func (s *auctionService) Fetch(ctx context.Context) models.ContractQueryResult {
	result, err := s.fetch(ctx)
	if err != nil {
		log.Printf("Error fetching contract data: %v", err)
		return models.FallbackResult(err)
	}
	return result
}

func (s *auctionService) fetch(ctx context.Context) (models.ContractQueryResult, error) {
	if err := s.checkConnection(ctx); err != nil {
		return models.ContractQueryResult{}, err
	}

	var winner winnerOutput
	if err := s.call(ctx, &winner, contracts.ShowWinnerMethod); err != nil {
		return models.ContractQueryResult{}, err
	}

	var rawOffers []offerOutput
	if err := s.call(ctx, &rawOffers, contracts.ShowOffersMethod); err != nil {
		return models.ContractQueryResult{}, err
	}

	offers := make([]models.Offer, 0, len(rawOffers))
	for _, offer := range rawOffers {
		offers = append(offers, models.Offer{
			BidderAddress: offer.Bidder.Hex(),
			Amount:        utils.WeiToEther(offer.Amount),
		})
	}

	return models.ContractQueryResult{
		WinnerAddress: winner.Winner.Hex(),
		WinningAmount: utils.WeiToEther(winner.Amount),
		Offers:        offers,
	}, nil
}

func (s *auctionService) checkConnection(ctx context.Context) error {
	chainID, err := s.backend.ChainID(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNotConnected, err)
	}
	if chainID == nil {
		return ErrNotConnected
	}
	return nil
}

// call invokes a read-only method and copies its outputs into out
func (s *auctionService) call(ctx context.Context, out interface{}, method string) (err error) {
	// abi decoding panics on some malformed payloads
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %s: %v", ErrDecode, method, r)
		}
	}()

	input, err := s.abi.ABI.Pack(method)
	if err != nil {
		return fmt.Errorf("%w: failed to pack %s: %v", ErrRPCCall, method, err)
	}

	msg := ethereum.CallMsg{To: &s.address, Data: input}
	output, err := s.backend.CallContract(ctx, msg, nil)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrRPCCall, method, err)
	}

	// An empty reply usually means there is no contract at the address
	if len(output) == 0 {
		code, err := s.backend.CodeAt(ctx, s.address, nil)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrRPCCall, method, err)
		}
		if len(code) == 0 {
			return fmt.Errorf("%w: %s: no contract code at %s", ErrRPCCall, method, s.address.Hex())
		}
	}

	values, err := s.abi.ABI.Unpack(method, output)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDecode, method, err)
	}
	if err := s.abi.ABI.Methods[method].Outputs.Copy(out, values); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDecode, method, err)
	}
	return nil
}
