/*
Package covenant defines the common interfaces that tie the extension
packages together: addresses and conditions, transactions and messages,
handlers, the key-value store contracts and block time context helpers.

State transitions are expressed as messages. A message is routed to a
handler which validates it and applies it against a cache-wrapped store.
The caller writes the cache on success and discards it on failure, so
every operation is all-or-nothing.
*/
package covenant
