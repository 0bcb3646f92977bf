package trading

import "fmt"

// Decision is the outcome of evaluating an order against a market price.
// Either the order executes at FillPrice or Reason explains the rejection.
type Decision struct {
	Executed  bool
	FillPrice float64
	Reason    string
}

// Evaluate decides whether an order executes at the given market price.
//
// Market orders always execute at the market price; the limit price field
// is ignored entirely. Limit buys execute iff limitPrice >= marketPrice,
// limit sells iff limitPrice <= marketPrice, both filling at the market
// price. Equality executes on both sides.
//
// Rejection reasons report the signed delta limitPrice - marketPrice, so a
// correctly rejected buy shows a negative delta and a correctly rejected
// sell a positive one.
func Evaluate(order OrderRequest, marketPrice float64) Decision {
	if !order.Limit {
		return Decision{Executed: true, FillPrice: marketPrice}
	}

	delta := order.LimitPrice - marketPrice

	switch order.Side {
	case SideBuy:
		if order.LimitPrice >= marketPrice {
			return Decision{Executed: true, FillPrice: marketPrice}
		}
		return Decision{
			Reason: fmt.Sprintf(
				"limit not met: market price %.2f exceeds limit %.2f (delta %.2f)",
				marketPrice, order.LimitPrice, delta,
			),
		}
	default:
		if order.LimitPrice <= marketPrice {
			return Decision{Executed: true, FillPrice: marketPrice}
		}
		return Decision{
			Reason: fmt.Sprintf(
				"limit not met: market price %.2f below limit %.2f (delta %.2f)",
				marketPrice, order.LimitPrice, delta,
			),
		}
	}
}
