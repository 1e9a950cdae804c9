/*
Package coin provides a checked arithmetic representation of monetary
amounts.

A Coin is a whole number of indivisible base units of a given ticker. All
arithmetic is bounds checked and fails with an error rather than silently
wrapping around.
*/
package coin
