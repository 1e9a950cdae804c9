/*
Package orm provides an easy to use db wrapper.

It breaks the state space into prefixed sections called buckets. Each bucket
contains only one type of object and serializes it with the amino codec
before handing the bytes to the key-value store.
*/
package orm
