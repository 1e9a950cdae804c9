/*
Package x contains some standard extensions.

Extensions implement common functionality (authentication, token transfer,
covenants) and are combined with the basic framework pieces at compile time
to form an application.
*/
package x
