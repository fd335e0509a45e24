package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/rxtech-lab/auction-viewer/internal/config"
	"github.com/rxtech-lab/auction-viewer/internal/contracts"
	"github.com/rxtech-lab/auction-viewer/internal/services"
	"github.com/rxtech-lab/auction-viewer/internal/utils"
)

// InitializeServices builds the auction reader for the configured contract.
// It only fails on a bad ABI or configuration; the node is not contacted.
func InitializeServices(cfg *config.Config) (services.AuctionService, error) {
	if !utils.IsValidEthereumAddress(cfg.ContractAddress) {
		return nil, fmt.Errorf("invalid contract address: %s", cfg.ContractAddress)
	}

	auctionABI, err := contracts.LoadAuctionABI()
	if err != nil {
		return nil, err
	}

	client, err := DialRPC(cfg)
	if err != nil {
		return nil, err
	}

	return services.NewAuctionService(client, common.HexToAddress(cfg.ContractAddress), auctionABI), nil
}

// DialRPC creates an Ethereum client for cfg.RPCURL. Over HTTP no request is sent.
func DialRPC(cfg *config.Config) (*ethclient.Client, error) {
	rpcClient, err := rpc.DialOptions(context.Background(), cfg.RPCURL,
		rpc.WithHTTPClient(&http.Client{Timeout: cfg.RPCTimeout}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create RPC client for %s: %w", cfg.RPCURL, err)
	}
	return ethclient.NewClient(rpcClient), nil
}
