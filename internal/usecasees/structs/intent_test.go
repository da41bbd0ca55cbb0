package structs_test

import (
	"testing"

	"swaphub/internal/usecasees/structs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ParseSwapIntent(t *testing.T) {
	raw := []byte(`{
		"intent": "swap",
		"fromAsset": "BTC",
		"fromNetwork": "bitcoin",
		"toAsset": "ETH",
		"toNetwork": "ethereum",
		"amount": "0.5"
	}`)

	intent, err := structs.ParseIntent(raw)
	require.NoError(t, err)

	assert.Equal(t, structs.IntentSwap, intent.Kind)
	require.NotNil(t, intent.Swap)
	assert.Equal(t, "BTC", intent.Swap.FromAsset)
	assert.Equal(t, "0.5", intent.Swap.Amount.String())
}

func Test_ParseSwapIntent_MissingFields(t *testing.T) {
	raw := []byte(`{"intent": "swap", "fromAsset": "BTC"}`)

	_, err := structs.ParseIntent(raw)
	require.Error(t, err)

	vErr, ok := err.(*structs.ValidationError)
	require.True(t, ok)

	assert.Contains(t, vErr.Fields, "fromNetwork")
	assert.Contains(t, vErr.Fields, "toAsset")
	assert.Contains(t, vErr.Fields, "toNetwork")
	assert.Contains(t, vErr.Fields, "amount")
	assert.NotContains(t, vErr.Fields, "fromAsset")
}

func Test_ParseLimitOrderIntent(t *testing.T) {
	raw := []byte(`{
		"intent": "limit_order",
		"fromAsset": "USDC",
		"fromNetwork": "ethereum",
		"toAsset": "ETH",
		"toNetwork": "ethereum",
		"amount": "500",
		"targetPrice": "2000",
		"condition": "below",
		"refAsset": "ETH",
		"refChain": "ethereum"
	}`)

	intent, err := structs.ParseIntent(raw)
	require.NoError(t, err)

	assert.Equal(t, structs.IntentLimitOrder, intent.Kind)
	assert.Equal(t, "below", intent.LimitOrder.Condition)
}

func Test_ParseLimitOrderIntent_BadCondition(t *testing.T) {
	raw := []byte(`{
		"intent": "limit_order",
		"fromAsset": "USDC",
		"fromNetwork": "ethereum",
		"toAsset": "ETH",
		"toNetwork": "ethereum",
		"amount": "500",
		"targetPrice": "2000",
		"condition": "crosses",
		"refAsset": "ETH",
		"refChain": "ethereum"
	}`)

	_, err := structs.ParseIntent(raw)
	require.Error(t, err)

	vErr, ok := err.(*structs.ValidationError)
	require.True(t, ok)
	assert.Equal(t, []string{"condition"}, vErr.Fields)
}

func Test_ParseDCAIntent_BadInterval(t *testing.T) {
	raw := []byte(`{
		"intent": "dca",
		"fromAsset": "USDC",
		"fromNetwork": "ethereum",
		"toAsset": "BTC",
		"toNetwork": "bitcoin",
		"amount": "100",
		"intervalHours": 0
	}`)

	_, err := structs.ParseIntent(raw)
	require.Error(t, err)

	vErr, ok := err.(*structs.ValidationError)
	require.True(t, ok)
	assert.Equal(t, []string{"intervalHours"}, vErr.Fields)
}

func Test_ParseUnknownIntent(t *testing.T) {
	_, err := structs.ParseIntent([]byte(`{"intent": "teleport"}`))
	require.Error(t, err)
}

func Test_ParsePortfolioIntent(t *testing.T) {
	intent, err := structs.ParseIntent([]byte(`{"intent": "portfolio"}`))
	require.NoError(t, err)

	assert.Equal(t, structs.IntentPortfolio, intent.Kind)
}
