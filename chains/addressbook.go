package chains

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ethereum/go-ethereum/common"
	"github.com/tidwall/gjson"

	"github.com/sljivkov/oraclefeeder/pricefeed"
)

// AddressBook maps token symbols to feed contract addresses.
// Addresses from the token manifest win; otherwise the hardhat-deploy artifact
// <dir>/<network>/<SYMBOL>PriceFeed.json is read.
type AddressBook struct {
	static map[pricefeed.Symbol]common.Address
	dir    string
}

// NewAddressBook creates an address book for network from tokens and the deployments directory
func NewAddressBook(tokens []pricefeed.Token, deploymentsDir, network string) *AddressBook {
	static := make(map[pricefeed.Symbol]common.Address)
	for _, t := range tokens {
		if t.Feed != "" {
			static[t.Symbol] = common.HexToAddress(t.Feed)
		}
	}

	return &AddressBook{
		static: static,
		dir:    filepath.Join(deploymentsDir, network),
	}
}

// FeedName returns the deployment name of the feed for symbol
func FeedName(symbol pricefeed.Symbol) string {
	return string(symbol) + "PriceFeed"
}

// Lookup returns the feed address for symbol
func (b *AddressBook) Lookup(symbol pricefeed.Symbol) (common.Address, error) {
	if addr, ok := b.static[symbol]; ok {
		return addr, nil
	}

	path := filepath.Join(b.dir, FeedName(symbol)+".json")

	data, err := os.ReadFile(path)
	if err != nil {
		return common.Address{}, fmt.Errorf("no deployment %s for %s: %w", FeedName(symbol), symbol, err)
	}

	addr := gjson.GetBytes(data, "address").String()
	if !common.IsHexAddress(addr) {
		return common.Address{}, fmt.Errorf("deployment %s has invalid address %q", path, addr)
	}

	return common.HexToAddress(addr), nil
}
