// Package rollin implements a calculator for dice rolls.
//
// Expressions are made of non-negative integers and the operators + - * / and
// d, with no spaces. "2d6+3" rolls two six-sided dice and adds three. A
// leading - negates, and a leading d rolls a single die, so "-d20" is the
// negation of one twenty-sided die.
//
// Precedence comes from position rather than from climbing: an expression is
// split at its leftmost + or -, otherwise at its leftmost * or /, otherwise at
// its leftmost d. Consequently "1-2+3" is 1-(2+3), "10/2/5" is 10/(2/5), and
// "3*-2" is a syntax error.
//
// Results are float64. Division by zero yields an infinity or NaN rather than
// an error.
package rollin
