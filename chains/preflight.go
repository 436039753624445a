package chains

import (
	"context"
	"math/big"

	"go.uber.org/zap"

	"github.com/sljivkov/oraclefeeder/pricefeed"
)

// FeedState is what a feed reports before the first update
type FeedState struct {
	Symbol   pricefeed.Symbol
	Address  string
	Answer   *big.Int
	Decimals uint8
	Err      error
}

// USD returns the answer scaled down by the feed's decimals
func (s FeedState) USD() float64 {
	if s.Answer == nil {
		return 0
	}

	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(s.Decimals)), nil)
	usd, _ := new(big.Float).Quo(new(big.Float).SetInt(s.Answer), new(big.Float).SetInt(scale)).Float64()

	return usd
}

// Preflight resolves every token's feed and reads its current answer.
// Problems are logged and returned per token; they never stop startup since
// the update cycle handles unresolved feeds on its own.
func Preflight(ctx context.Context, e *EVM, tokens []pricefeed.Token, log *zap.Logger) []FeedState {
	states := make([]FeedState, 0, len(tokens))

	for _, t := range tokens {
		state := FeedState{Symbol: t.Symbol}

		feed, err := e.resolve(ctx, t.Symbol)
		if err != nil {
			state.Err = err
			log.Warn("⚠️ feed not available", zap.String("symbol", string(t.Symbol)), zap.Error(err))
			states = append(states, state)

			continue
		}

		state.Address = feed.Address()

		if state.Answer, err = feed.LatestAnswer(ctx); err != nil {
			state.Err = err
			log.Warn("⚠️ failed to read latest answer", zap.String("symbol", string(t.Symbol)), zap.Error(err))
			states = append(states, state)

			continue
		}

		if state.Decimals, err = feed.Decimals(ctx); err != nil {
			state.Err = err
			log.Warn("⚠️ failed to read feed decimals", zap.String("symbol", string(t.Symbol)), zap.Error(err))
			states = append(states, state)

			continue
		}

		if state.Decimals != pricefeed.FeedDecimals {
			log.Warn("⚠️ feed decimals differ from the updater's fixed-point scale",
				zap.String("symbol", string(t.Symbol)),
				zap.Uint8("decimals", state.Decimals),
				zap.Int("expected", pricefeed.FeedDecimals),
			)
		}

		log.Info("🔗 on-chain answer",
			zap.String("symbol", string(t.Symbol)),
			zap.String("feed", state.Address),
			zap.String("answer", state.Answer.String()),
			zap.Float64("usd", state.USD()),
		)

		states = append(states, state)
	}

	return states
}
