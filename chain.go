package main

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"

	"github.com/sljivkov/oraclefeeder/chains"
	"github.com/sljivkov/oraclefeeder/config"
)

// newChain dials the node and builds the feed client for the configured network
func newChain(ctx context.Context, cfg *config.Config, log *zap.Logger) (*chains.EVM, *ethclient.Client, error) {
	client, err := ethclient.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to dial %s: %w", cfg.RPCURL, err)
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.PrivateKey, "0x"))
	if err != nil {
		client.Close()
		return nil, nil, fmt.Errorf("failed to parse private key: %w", err)
	}

	chainID := big.NewInt(cfg.ChainID)
	if cfg.ChainID == 0 {
		if chainID, err = client.ChainID(ctx); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("failed to query chain id: %w", err)
		}
	}

	book := chains.NewAddressBook(cfg.Tokens, cfg.DeploymentsDir, cfg.Network)

	evm, err := chains.NewEVM(client, key, chainID, book, log)
	if err != nil {
		client.Close()
		return nil, nil, err
	}

	log.Info("⛓️ connected to chain",
		zap.String("network", cfg.Network),
		zap.String("chain_id", chainID.String()),
		zap.String("from", evm.From().Hex()),
	)

	return evm, client, nil
}
