/*
Package usd implements fixed-point monetary values in US dollars.
It represents an amount as a single signed arbitrary-precision integer
counted in whole cents, so arithmetic is exact at any magnitude and there
is no floating-point rounding or overflow to account for.

# Features

  - Immutable monetary values, ensuring safe usage across multiple goroutines
  - Exact arithmetic with no representable-range limit
  - Construction from separate dollar and cent magnitudes with cent carry
  - Total ordering and equality by cent magnitude
  - Canonical "$D.CC" / "-$D.CC" text formatting

# Representation

An [Amount] stores its value as a total-cents magnitude, from which the
whole-dollar part and the cent part are derived on demand: the dollar part
is the quotient of the magnitude and 100 rounded toward zero, and the cent
part is always reported in the range [0, 99] regardless of sign, so -$7.04
has a dollar part of -7 and a cent part of 4.

Construction from separate parts carries whole dollars out of the cents
argument in the direction of the sign of the dollars argument: New(1, 150)
is $2.50 and New(-1, 150) is -$2.50.

# Operations

The package provides addition, subtraction, negation, and absolute value,
plus comparison operations Cmp, Equal, Less, Min, and Max.
Every operation returns a new Amount and never modifies its operands.

# Errors

All operations are total: the arbitrary-precision magnitude cannot
overflow, and a single-currency type cannot mismatch, so no operation
returns an error.
*/
package usd
