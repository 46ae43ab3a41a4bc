package usd

import (
	"fmt"
	"math/big"
)

// hundred is the number of cents in a dollar. It is shared and must never
// be mutated.
var hundred = big.NewInt(100)

// Amount type represents a monetary amount in US dollars with a fixed scale
// of two decimal places.
// Its zero value corresponds to "$0.00".
// Amount is designed to be safe for concurrent use by multiple goroutines.
//
// The amount is stored as a single signed arbitrary-precision integer
// counted in whole cents, so all operations are exact and total: there is
// no representable-range limit and no overflow error path.
// An Amount is immutable once constructed; every operation returns a new
// Amount and never modifies its operands.
type Amount struct {
	cents big.Int // total cents, never mutated after construction
}

// New returns an amount equal to dollars + cents / 100.
// The cents argument may exceed 99; whole dollars are carried out of it in
// the direction of the sign of the dollars argument, so negative dollar
// inputs with large cent counts grow more negative, not less.
// Zero dollars is treated as positive, so cents alone can never make the
// result negative.
// See also constructors [FromCents] and [FromCents64].
//
//	New(1, 150)  = $2.50
//	New(-1, 150) = -$2.50
//	New(0, 150)  = $1.50
func New(dollars int64, cents uint64) Amount {
	carry := new(big.Int).SetUint64(cents / 100)
	rem := int64(cents % 100)
	if dollars < 0 {
		carry.Neg(carry)
		rem = -rem
	}
	t := big.NewInt(dollars)
	t.Add(t, carry)
	t.Mul(t, hundred)
	t.Add(t, big.NewInt(rem))
	return Amount{cents: *t}
}

// FromCents returns an amount equal to totalCents / 100.
// The argument is already in canonical units, so no normalization is
// performed.
// This is the primitive all other constructors and operations reduce to.
// FromCents copies the argument, so the caller may freely reuse it.
// See also method [Amount.TotalCents].
func FromCents(totalCents *big.Int) Amount {
	return Amount{cents: *new(big.Int).Set(totalCents)}
}

// FromCents64 returns an amount equal to totalCents / 100.
// It is shorthand for [FromCents] with a fixed-width magnitude.
// See also method [Amount.MinorUnits].
func FromCents64(totalCents int64) Amount {
	return Amount{cents: *big.NewInt(totalCents)}
}

// TotalCents returns the canonical cent magnitude of the amount.
// The result is a copy and may be mutated by the caller.
// See also constructor [FromCents].
func (a Amount) TotalCents() *big.Int {
	return new(big.Int).Set(&a.cents)
}

// MinorUnits returns the amount in cents, if the cent magnitude can be
// represented as an int64, and false otherwise.
// See also constructor [FromCents64].
func (a Amount) MinorUnits() (units int64, ok bool) {
	if !a.cents.IsInt64() {
		return 0, false
	}
	return a.cents.Int64(), true
}

// Dollars returns the whole-dollar part of the amount, the quotient of the
// cent magnitude and 100 rounded toward zero.
// The result is a copy and may be mutated by the caller.
// See also method [Amount.Cents].
func (a Amount) Dollars() *big.Int {
	return new(big.Int).Quo(&a.cents, hundred)
}

// Cents returns the cent part of the amount, always in the range [0, 99]
// regardless of the sign of the amount, so -$7.04 reports 4.
// The cent magnitude is reconstructed from the two parts as
// Dollars() * 100 + Sign() * Cents().
// See also method [Amount.Dollars].
func (a Amount) Cents() int {
	r := new(big.Int).Rem(&a.cents, hundred)
	return int(r.Abs(r).Int64())
}

// Sign returns:
//
//	-1 if a < 0
//	 0 if a = 0
//	+1 if a > 0
func (a Amount) Sign() int {
	return a.cents.Sign()
}

// IsNeg returns:
//
//	true  if a < 0
//	false otherwise
func (a Amount) IsNeg() bool {
	return a.cents.Sign() < 0
}

// IsPos returns:
//
//	true  if a > 0
//	false otherwise
func (a Amount) IsPos() bool {
	return a.cents.Sign() > 0
}

// IsZero returns:
//
//	true  if a = 0
//	false otherwise
func (a Amount) IsZero() bool {
	return a.cents.Sign() == 0
}

// Neg returns an amount with the opposite sign.
func (a Amount) Neg() Amount {
	return Amount{cents: *new(big.Int).Neg(&a.cents)}
}

// Abs returns the absolute value of the amount.
func (a Amount) Abs() Amount {
	return Amount{cents: *new(big.Int).Abs(&a.cents)}
}

// Add returns the sum of amounts a and b.
func (a Amount) Add(b Amount) Amount {
	return Amount{cents: *new(big.Int).Add(&a.cents, &b.cents)}
}

// Sub returns the difference between amounts a and b.
// It is equivalent to a.Add(b.Neg()), so a.Sub(a) is always the canonical
// zero amount.
func (a Amount) Sub(b Amount) Amount {
	return Amount{cents: *new(big.Int).Sub(&a.cents, &b.cents)}
}

// Cmp compares amounts by their cent magnitudes and returns:
//
//	-1 if a < b
//	 0 if a = b
//	+1 if a > b
func (a Amount) Cmp(b Amount) int {
	return a.cents.Cmp(&b.cents)
}

// Equal returns true if the cent magnitudes of a and b are equal.
// Amounts are normalized by construction, so there is no other notion of
// equality.
func (a Amount) Equal(b Amount) bool {
	return a.Cmp(b) == 0
}

// Less returns true if a is strictly less than b.
func (a Amount) Less(b Amount) bool {
	return a.Cmp(b) < 0
}

// Min returns the smaller of amounts a and b.
// See also method [Amount.Max].
func (a Amount) Min(b Amount) Amount {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}

// Max returns the larger of amounts a and b.
// See also method [Amount.Min].
func (a Amount) Max(b Amount) Amount {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}

// String implements the [fmt.Stringer] interface and returns a string
// representation of the amount in the form "$D.CC", or "-$D.CC" for
// negative amounts.
// The dollar part carries no leading zeros except the single digit 0, and
// the cent part is zero-padded to exactly two digits.
// The sign is taken from the cent magnitude, not the whole-dollar part, so
// an amount of -4 cents renders as "-$0.04".
// See also method [Amount.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (a Amount) String() string {
	dollars := a.Dollars()
	digs := dollars.Abs(dollars).String()
	cents := a.Cents()

	buf := make([]byte, 0, len(digs)+5)

	// Sign
	if a.IsNeg() {
		buf = append(buf, '-')
	}

	// Dollars
	buf = append(buf, '$')
	buf = append(buf, digs...)

	// Cents
	buf = append(buf, '.', byte(cents/10)+'0', byte(cents%10)+'0')

	return string(buf)
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	%s, %v: $D.CC
//	%q:     "$D.CC"
//
// The '-' format flag pads to the width on the right rather than the left,
// and the '0' format flag pads the dollar part with leading zeros.
// The '+' format flag prints an explicit sign for non-negative amounts.
// See also method [Amount.String].
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (a Amount) Format(state fmt.State, verb rune) {
	// Dollar digits
	dollars := a.Dollars()
	digs := dollars.Abs(dollars).String()

	// Arithmetic sign
	rsign := 0
	if a.IsNeg() || state.Flag('+') || state.Flag(' ') {
		rsign = 1
	}

	// Opening and closing quotes
	lquote, tquote := 0, 0
	if verb == 'q' || verb == 'Q' {
		lquote, tquote = 1, 1
	}

	// Calculating padding
	width := lquote + rsign + 1 + len(digs) + 3 + tquote
	lspaces, lzeros, tspaces := 0, 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		case state.Flag('0'):
			lzeros = w - width
		default:
			lspaces = w - width
		}
		width = w
	}

	buf := make([]byte, width)
	pos := width - 1

	// Trailing spaces
	for i := 0; i < tspaces; i++ {
		buf[pos] = ' '
		pos--
	}

	// Closing quote
	if tquote > 0 {
		buf[pos] = '"'
		pos--
	}

	// Cents
	cents := a.Cents()
	buf[pos] = byte(cents%10) + '0'
	pos--
	buf[pos] = byte(cents/10) + '0'
	pos--
	buf[pos] = '.'
	pos--

	// Dollar digits
	for i := len(digs) - 1; i >= 0; i-- {
		buf[pos] = digs[i]
		pos--
	}

	// Leading zeros
	for i := 0; i < lzeros; i++ {
		buf[pos] = '0'
		pos--
	}

	// Currency symbol
	buf[pos] = '$'
	pos--

	// Arithmetic sign
	if rsign > 0 {
		if a.IsNeg() {
			buf[pos] = '-'
		} else if state.Flag(' ') {
			buf[pos] = ' '
		} else {
			buf[pos] = '+'
		}
		pos--
	}

	// Opening quote
	if lquote > 0 {
		buf[pos] = '"'
		pos--
	}

	// Leading spaces
	for i := 0; i < lspaces; i++ {
		buf[pos] = ' '
		pos--
	}

	// Writing result
	//nolint:errcheck
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V':
		state.Write(buf)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(usd.Amount="))
		state.Write(buf)
		state.Write([]byte(")"))
	}
}
