package entities

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// MaxSymbolCodeLen caps ticker codes at seven characters.
	MaxSymbolCodeLen = 7

	// MaxAssetPrecision bounds the number of decimal places an asset may
	// carry. int64 sub-units overflow beyond 18 digits.
	MaxAssetPrecision = 18

	// MaxAssetAmount is the largest magnitude an asset amount may hold in
	// sub-units. Keeps headroom for intermediate arithmetic.
	MaxAssetAmount = (1 << 62) - 1
)

// Symbol identifies a fungible unit type: an uppercase ticker code plus a
// fixed decimal precision. Two symbols with the same code but different
// precision are distinct and never interchangeable.
type Symbol struct {
	Code      string
	Precision uint8
}

func (s Symbol) Valid() bool {
	if len(s.Code) == 0 || len(s.Code) > MaxSymbolCodeLen {
		return false
	}
	if s.Precision > MaxAssetPrecision {
		return false
	}
	for _, r := range s.Code {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

func (s Symbol) Equal(other Symbol) bool {
	return s.Code == other.Code && s.Precision == other.Precision
}

// String renders "precision,CODE", e.g. "4,EUSD".
func (s Symbol) String() string {
	return strconv.Itoa(int(s.Precision)) + "," + s.Code
}

// Asset is a quantity of a symbol, held as an integer count of the smallest
// sub-unit. "100.0000 EUSD" is stored as Amount=1000000 with Precision=4.
type Asset struct {
	Amount int64
	Symbol Symbol
}

func ZeroAsset(symbol Symbol) Asset {
	return Asset{Amount: 0, Symbol: symbol}
}

func (a Asset) Valid() bool {
	if !a.Symbol.Valid() {
		return false
	}
	return a.Amount >= -MaxAssetAmount && a.Amount <= MaxAssetAmount
}

func (a Asset) Positive() bool {
	return a.Amount > 0
}

// Add returns a+b. Both assets must carry the same symbol and the result
// must stay within asset bounds.
func (a Asset) Add(b Asset) (Asset, error) {
	if !a.Symbol.Equal(b.Symbol) {
		return Asset{}, fmt.Errorf("asset symbol mismatch: %s vs %s", a.Symbol, b.Symbol)
	}
	sum := a.Amount + b.Amount
	result := Asset{Amount: sum, Symbol: a.Symbol}
	if (b.Amount > 0 && sum < a.Amount) || (b.Amount < 0 && sum > a.Amount) || !result.Valid() {
		return Asset{}, fmt.Errorf("asset addition overflows: %s + %s", a, b)
	}
	return result, nil
}

// Sub returns a-b under the same rules as Add.
func (a Asset) Sub(b Asset) (Asset, error) {
	return a.Add(Asset{Amount: -b.Amount, Symbol: b.Symbol})
}

// String renders the conventional form "100.0000 EUSD". Precision zero
// drops the decimal point entirely.
func (a Asset) String() string {
	amount := a.Amount
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	if a.Symbol.Precision == 0 {
		return fmt.Sprintf("%s%d %s", sign, amount, a.Symbol.Code)
	}
	divisor := pow10(a.Symbol.Precision)
	whole := amount / divisor
	frac := amount % divisor
	return fmt.Sprintf("%s%d.%0*d %s", sign, whole, int(a.Symbol.Precision), frac, a.Symbol.Code)
}

// ParseAsset reverses Asset.String: "100.0000 EUSD" becomes an asset with
// precision 4. The number of fractional digits fixes the precision.
func ParseAsset(raw string) (Asset, error) {
	fields := strings.Fields(strings.TrimSpace(raw))
	if len(fields) != 2 {
		return Asset{}, fmt.Errorf("malformed asset %q: want \"<amount> <code>\"", raw)
	}
	number, code := fields[0], fields[1]

	negative := strings.HasPrefix(number, "-")
	number = strings.TrimPrefix(number, "-")

	whole := number
	frac := ""
	if dot := strings.IndexByte(number, '.'); dot >= 0 {
		whole, frac = number[:dot], number[dot+1:]
	}
	if whole == "" || len(frac) > MaxAssetPrecision {
		return Asset{}, fmt.Errorf("malformed asset amount %q", fields[0])
	}

	wholeUnits, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return Asset{}, fmt.Errorf("malformed asset amount %q: %w", fields[0], err)
	}
	var fracUnits int64
	if frac != "" {
		fracUnits, err = strconv.ParseInt(frac, 10, 64)
		if err != nil || fracUnits < 0 {
			return Asset{}, fmt.Errorf("malformed asset amount %q", fields[0])
		}
	}

	precision := uint8(len(frac))
	divisor := pow10(precision)
	// Reject before multiplying: a wrapped product can land back inside
	// the valid range and silently change the requested quantity.
	if wholeUnits > MaxAssetAmount/divisor {
		return Asset{}, fmt.Errorf("asset amount %q out of range", fields[0])
	}
	amount := wholeUnits*divisor + fracUnits
	if negative {
		amount = -amount
	}

	asset := Asset{Amount: amount, Symbol: Symbol{Code: code, Precision: precision}}
	if !asset.Valid() {
		return Asset{}, fmt.Errorf("invalid asset %q", raw)
	}
	return asset, nil
}

func pow10(p uint8) int64 {
	result := int64(1)
	for i := uint8(0); i < p; i++ {
		result *= 10
	}
	return result
}
