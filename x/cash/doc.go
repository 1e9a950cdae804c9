/*
Package cash defines a simple wallet implementation and the controller that
moves coins between wallets.

Other extensions do not touch wallets directly. They express "transfer
value" through the Controller interface, which keeps the value-movement
primitive replaceable and the extensions testable in isolation.
*/
package cash
