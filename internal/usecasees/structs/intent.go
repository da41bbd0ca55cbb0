package structs

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type IntentKind string

const (
	IntentSwap       IntentKind = "swap"
	IntentDCA        IntentKind = "dca"
	IntentPortfolio  IntentKind = "portfolio"
	IntentCheckout   IntentKind = "checkout"
	IntentYieldScout IntentKind = "yield_scout"
	IntentLimitOrder IntentKind = "limit_order"
)

// ValidationError carries the explicit field list reported back to the
// caller. Never retried.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid intent: %s", strings.Join(e.Fields, ", "))
}

type SwapIntent struct {
	FromAsset   string          `json:"fromAsset"`
	FromNetwork string          `json:"fromNetwork"`
	ToAsset     string          `json:"toAsset"`
	ToNetwork   string          `json:"toNetwork"`
	Amount      decimal.Decimal `json:"amount"`
}

type DCAIntent struct {
	FromAsset     string          `json:"fromAsset"`
	FromNetwork   string          `json:"fromNetwork"`
	ToAsset       string          `json:"toAsset"`
	ToNetwork     string          `json:"toNetwork"`
	Amount        decimal.Decimal `json:"amount"`
	IntervalHours int             `json:"intervalHours"`
}

type PortfolioIntent struct {
	Limit int `json:"limit"`
}

type CheckoutIntent struct {
	ToAsset   string          `json:"toAsset"`
	ToNetwork string          `json:"toNetwork"`
	Amount    decimal.Decimal `json:"amount"`
}

type YieldScoutIntent struct {
	Asset string `json:"asset"`
}

type LimitOrderIntent struct {
	FromAsset   string          `json:"fromAsset"`
	FromNetwork string          `json:"fromNetwork"`
	ToAsset     string          `json:"toAsset"`
	ToNetwork   string          `json:"toNetwork"`
	Amount      decimal.Decimal `json:"amount"`
	TargetPrice decimal.Decimal `json:"targetPrice"`
	Condition   string          `json:"condition"`
	RefAsset    string          `json:"refAsset"`
	RefChain    string          `json:"refChain"`
}

// Intent is a tagged variant: exactly one member matching Kind is set.
type Intent struct {
	Kind       IntentKind
	Swap       *SwapIntent
	DCA        *DCAIntent
	Portfolio  *PortfolioIntent
	Checkout   *CheckoutIntent
	YieldScout *YieldScoutIntent
	LimitOrder *LimitOrderIntent
}

func ParseIntent(raw []byte) (*Intent, error) {
	var envelope struct {
		Intent IntentKind `json:"intent"`
	}

	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, &ValidationError{Fields: []string{"intent"}}
	}

	out := Intent{Kind: envelope.Intent}

	var err error

	switch envelope.Intent {
	case IntentSwap:
		out.Swap = &SwapIntent{}
		err = json.Unmarshal(raw, out.Swap)
	case IntentDCA:
		out.DCA = &DCAIntent{}
		err = json.Unmarshal(raw, out.DCA)
	case IntentPortfolio:
		out.Portfolio = &PortfolioIntent{}
		err = json.Unmarshal(raw, out.Portfolio)
	case IntentCheckout:
		out.Checkout = &CheckoutIntent{}
		err = json.Unmarshal(raw, out.Checkout)
	case IntentYieldScout:
		out.YieldScout = &YieldScoutIntent{}
		err = json.Unmarshal(raw, out.YieldScout)
	case IntentLimitOrder:
		out.LimitOrder = &LimitOrderIntent{}
		err = json.Unmarshal(raw, out.LimitOrder)
	default:
		return nil, &ValidationError{Fields: []string{"intent"}}
	}

	if err != nil {
		return nil, &ValidationError{Fields: []string{"intent"}}
	}

	if err := out.Validate(); err != nil {
		return nil, err
	}

	return &out, nil
}

func (i *Intent) Validate() error {
	var missing []string

	require := func(field, value string) {
		if value == "" {
			missing = append(missing, field)
		}
	}

	requirePositive := func(field string, value decimal.Decimal) {
		if !value.IsPositive() {
			missing = append(missing, field)
		}
	}

	switch i.Kind {
	case IntentSwap:
		require("fromAsset", i.Swap.FromAsset)
		require("fromNetwork", i.Swap.FromNetwork)
		require("toAsset", i.Swap.ToAsset)
		require("toNetwork", i.Swap.ToNetwork)
		requirePositive("amount", i.Swap.Amount)
	case IntentDCA:
		require("fromAsset", i.DCA.FromAsset)
		require("fromNetwork", i.DCA.FromNetwork)
		require("toAsset", i.DCA.ToAsset)
		require("toNetwork", i.DCA.ToNetwork)
		requirePositive("amount", i.DCA.Amount)

		if i.DCA.IntervalHours <= 0 {
			missing = append(missing, "intervalHours")
		}
	case IntentPortfolio:
	case IntentCheckout:
		require("toAsset", i.Checkout.ToAsset)
		require("toNetwork", i.Checkout.ToNetwork)
		requirePositive("amount", i.Checkout.Amount)
	case IntentYieldScout:
		require("asset", i.YieldScout.Asset)
	case IntentLimitOrder:
		require("fromAsset", i.LimitOrder.FromAsset)
		require("fromNetwork", i.LimitOrder.FromNetwork)
		require("toAsset", i.LimitOrder.ToAsset)
		require("toNetwork", i.LimitOrder.ToNetwork)
		require("refAsset", i.LimitOrder.RefAsset)
		require("refChain", i.LimitOrder.RefChain)
		requirePositive("amount", i.LimitOrder.Amount)
		requirePositive("targetPrice", i.LimitOrder.TargetPrice)

		if i.LimitOrder.Condition != "above" && i.LimitOrder.Condition != "below" {
			missing = append(missing, "condition")
		}
	}

	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}

	return nil
}
