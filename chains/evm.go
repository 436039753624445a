// Package chains provides blockchain interaction implementations
package chains

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/sljivkov/oraclefeeder/contract"
	"github.com/sljivkov/oraclefeeder/pricefeed"
)

// Backend is what the feed client needs from a node connection; *ethclient.Client satisfies it
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
}

// feedContract is the subset of the generated binding the client uses
type feedContract interface {
	SetAnswer(opts *bind.TransactOpts, answer *big.Int) (*types.Transaction, error)
	LatestAnswer(opts *bind.CallOpts) (*big.Int, error)
	Decimals(opts *bind.CallOpts) (uint8, error)
}

// EVM resolves and updates price feed contracts on an EVM chain
type EVM struct {
	auth *bind.TransactOpts
	book *AddressBook
	log  *zap.Logger

	codeAt    func(ctx context.Context, addr common.Address) ([]byte, error)
	bindFeed  func(addr common.Address) (feedContract, error)
	waitMined func(ctx context.Context, tx *types.Transaction) (*types.Receipt, error)

	mu    sync.Mutex
	feeds map[pricefeed.Symbol]*Feed
}

// NewEVM creates a feed client that signs with key for chainID
func NewEVM(backend Backend, key *ecdsa.PrivateKey, chainID *big.Int, book *AddressBook, log *zap.Logger) (*EVM, error) {
	auth, err := bind.NewKeyedTransactorWithChainID(key, chainID)
	if err != nil {
		return nil, fmt.Errorf("failed to create transactor: %w", err)
	}

	return &EVM{
		auth: auth,
		book: book,
		log:  log,
		codeAt: func(ctx context.Context, addr common.Address) ([]byte, error) {
			return backend.CodeAt(ctx, addr, nil)
		},
		bindFeed: func(addr common.Address) (feedContract, error) {
			return contract.NewPriceFeed(addr, backend)
		},
		waitMined: func(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
			return bind.WaitMined(ctx, backend, tx)
		},
		feeds: make(map[pricefeed.Symbol]*Feed),
	}, nil
}

// From returns the address transactions are sent from
func (e *EVM) From() common.Address {
	return e.auth.From
}

// ResolveFeed returns the feed contract for symbol. Resolved feeds are cached
// for the lifetime of the client since deployments do not move.
func (e *EVM) ResolveFeed(ctx context.Context, symbol pricefeed.Symbol) (pricefeed.Feed, error) {
	return e.resolve(ctx, symbol)
}

func (e *EVM) resolve(ctx context.Context, symbol pricefeed.Symbol) (*Feed, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if f, ok := e.feeds[symbol]; ok {
		return f, nil
	}

	addr, err := e.book.Lookup(symbol)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", pricefeed.ErrFeedResolution, err)
	}

	code, err := e.codeAt(ctx, addr)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read code of %s feed at %s: %w", pricefeed.ErrFeedResolution, symbol, addr.Hex(), err)
	}
	if len(code) == 0 {
		return nil, fmt.Errorf("%w: no contract deployed for %s at %s", pricefeed.ErrFeedResolution, symbol, addr.Hex())
	}

	c, err := e.bindFeed(addr)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to bind %s feed: %w", pricefeed.ErrFeedResolution, symbol, err)
	}

	f := &Feed{
		symbol:   symbol,
		address:  addr,
		contract: c,
		evm:      e,
	}
	e.feeds[symbol] = f

	e.log.Debug("🔗 resolved feed", zap.String("symbol", string(symbol)), zap.String("address", addr.Hex()))

	return f, nil
}

// transactOpts returns a copy of the signer options bound to ctx
func (e *EVM) transactOpts(ctx context.Context) *bind.TransactOpts {
	opts := *e.auth
	opts.Context = ctx

	return &opts
}

// Feed is a resolved price feed contract
type Feed struct {
	symbol   pricefeed.Symbol
	address  common.Address
	contract feedContract
	evm      *EVM
}

// Address returns the feed contract address
func (f *Feed) Address() string {
	return f.address.Hex()
}

// SetPrice sends setAnswer(answer) and waits until the transaction is mined.
// A mined transaction with a failed status counts as a revert.
func (f *Feed) SetPrice(ctx context.Context, answer *big.Int) (string, error) {
	tx, err := f.contract.SetAnswer(f.evm.transactOpts(ctx), answer)
	if err != nil {
		return "", fmt.Errorf("%w: setAnswer on %s feed: %w", pricefeed.ErrSubmission, f.symbol, err)
	}

	hash := tx.Hash().Hex()

	f.evm.log.Debug("⏳ waiting for confirmation",
		zap.String("symbol", string(f.symbol)),
		zap.String("tx", hash),
	)

	receipt, err := f.evm.waitMined(ctx, tx)
	if err != nil {
		return hash, fmt.Errorf("%w: confirmation of %s for %s: %w", pricefeed.ErrSubmission, hash, f.symbol, err)
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		return hash, fmt.Errorf("%w: transaction %s for %s reverted in block %s",
			pricefeed.ErrSubmission, hash, f.symbol, receipt.BlockNumber)
	}

	return hash, nil
}

// LatestAnswer reads the answer currently stored in the feed
func (f *Feed) LatestAnswer(ctx context.Context) (*big.Int, error) {
	return f.contract.LatestAnswer(&bind.CallOpts{Context: ctx})
}

// Decimals reads the number of decimals the feed reports
func (f *Feed) Decimals(ctx context.Context) (uint8, error) {
	return f.contract.Decimals(&bind.CallOpts{Context: ctx})
}
