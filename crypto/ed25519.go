package crypto

import (
	"github.com/covenant-labs/covenant"
	"golang.org/x/crypto/ed25519"
)

// ExtensionName is the condition extension all signature conditions use.
const ExtensionName = "sig"

// PublicKey wraps an ed25519 public key.
type PublicKey struct {
	Ed25519 ed25519.PublicKey
}

// Verify verifies the signature was created with this message and public
// key.
func (p *PublicKey) Verify(message []byte, sig []byte) bool {
	return ed25519.Verify(p.Ed25519, message, sig)
}

// Condition encodes the public key into a permission.
func (p *PublicKey) Condition() covenant.Condition {
	return covenant.NewCondition(ExtensionName, "ed25519", p.Ed25519)
}

// Address is a shortcut for Condition().Address().
func (p *PublicKey) Address() covenant.Address {
	return p.Condition().Address()
}

// PrivateKey wraps an ed25519 private key.
type PrivateKey struct {
	Ed25519 ed25519.PrivateKey
}

// Sign returns a matching signature for this private key.
func (p *PrivateKey) Sign(message []byte) ([]byte, error) {
	return ed25519.Sign(p.Ed25519, message), nil
}

// PublicKey returns the corresponding PublicKey.
func (p *PrivateKey) PublicKey() *PublicKey {
	pub := p.Ed25519.Public().(ed25519.PublicKey)
	return &PublicKey{Ed25519: pub}
}

// GenPrivKeyEd25519 returns a random new private key.
func GenPrivKeyEd25519() *PrivateKey {
	_, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		panic(err)
	}
	return &PrivateKey{Ed25519: priv}
}

// PrivKeyEd25519FromSeed will deterministically generate a private key from
// a given seed. Use if you have a strong source of external randomness, or
// for deterministic keys in test cases.
func PrivKeyEd25519FromSeed(seed []byte) *PrivateKey {
	return &PrivateKey{Ed25519: ed25519.NewKeyFromSeed(seed)}
}
