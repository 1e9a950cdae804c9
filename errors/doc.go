/*
Package errors implements custom error interfaces for the covenant module.

Each returned error is built from a registered root error that provides a
unique code. Errors are tested for their kind using the Is method of the
root error, regardless of how many times they were wrapped.
*/
package errors
