// Package checksum provides the checksum algorithms used with bytemsg
// checksum fields: two's-complement sums, one's-complement sums (the
// internet checksum for the 16-bit width), XOR, Luhn's mod-N and Fletcher.
//
// Every function is pure: it maps a byte region to an unsigned value of the
// algorithm's width and never fails. Optimized forms defer modulus or carry
// folding across bounded blocks sized so the accumulator cannot overflow
// before the next reduction; where the original algorithm family has a
// well-known straightforward form (one's-complement, Luhn) it is exported
// with a Textbook suffix and kept numerically identical to the optimized
// form for every input.
package checksum
