// Package session holds per-session user state: the portfolio ledger and the
// favorites set. State lives for the hosting session only and is mutated
// solely by that session's own sequential actions.
package session

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation failures for portfolio input. They are reported inline to the
// user and never mutate ledger state.
var (
	ErrInvalidQuantity = errors.New("quantity must be a positive number")
	ErrUnknownAsset    = errors.New("unknown asset id")
	ErrIndexOutOfRange = errors.New("position index out of range")
)

// Position is one held entry: asset id plus quantity. Positions are
// identified by insertion index, so duplicate asset ids may coexist.
type Position struct {
	AssetID  string
	Quantity decimal.Decimal
}

// ValuedPosition is a position valued against a live price snapshot,
// annotated with its index for removal addressing.
type ValuedPosition struct {
	Index    int
	AssetID  string
	Quantity decimal.Decimal
	Price    float64
	Value    decimal.Decimal
}

// Ledger is an append-only (except explicit removal) list of positions.
type Ledger struct {
	positions []Position
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// Add parses and validates user input, then appends a new position. The asset
// id is case-normalized to lowercase and must be present in known, the set of
// ids from the last successful batch fetch. Quantities accept both "." and
// "," as decimal separator and must be strictly positive. Adds never merge
// with an existing position for the same asset.
func (l *Ledger) Add(assetID, rawQuantity string, known map[string]struct{}) error {
	id := strings.ToLower(strings.TrimSpace(assetID))
	if id == "" {
		return fmt.Errorf("%w: empty id", ErrUnknownAsset)
	}
	if _, ok := known[id]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAsset, id)
	}

	qty, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(rawQuantity), ",", "."))
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidQuantity, rawQuantity)
	}
	if qty.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: %s", ErrInvalidQuantity, qty)
	}

	l.positions = append(l.positions, Position{AssetID: id, Quantity: qty})
	return nil
}

// Remove deletes the position at index. An out-of-range index is rejected
// without mutating state.
func (l *Ledger) Remove(index int) error {
	if index < 0 || index >= len(l.positions) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	l.positions = append(l.positions[:index], l.positions[index+1:]...)
	return nil
}

// Value computes per-position values against the supplied price snapshot plus
// the ledger total. A position whose asset is missing from the snapshot
// values at 0; that is a transient price-fetch gap, not an error. Output
// order matches insertion order.
func (l *Ledger) Value(prices map[string]float64) ([]ValuedPosition, decimal.Decimal) {
	valued := make([]ValuedPosition, len(l.positions))
	total := decimal.Zero

	for i, pos := range l.positions {
		price := prices[pos.AssetID]
		value := decimal.NewFromFloat(price).Mul(pos.Quantity)
		valued[i] = ValuedPosition{
			Index:    i,
			AssetID:  pos.AssetID,
			Quantity: pos.Quantity,
			Price:    price,
			Value:    value,
		}
		total = total.Add(value)
	}
	return valued, total
}

// Len reports the number of held positions.
func (l *Ledger) Len() int {
	return len(l.positions)
}

// AssetIDs returns the distinct asset ids currently held, in insertion order
// of first appearance.
func (l *Ledger) AssetIDs() []string {
	seen := make(map[string]struct{}, len(l.positions))
	ids := make([]string, 0, len(l.positions))
	for _, pos := range l.positions {
		if _, ok := seen[pos.AssetID]; ok {
			continue
		}
		seen[pos.AssetID] = struct{}{}
		ids = append(ids, pos.AssetID)
	}
	return ids
}
