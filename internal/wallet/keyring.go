// Package wallet holds the server side signers for configured addresses.
package wallet

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/artvault/artvault-api/internal/transfer"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	solanago "github.com/gagliardetto/solana-go"
)

// ErrNoSigningKey is returned when the keyring holds no key for an address.
var ErrNoSigningKey = errors.New("no signing key for address")

// KeyringConfig is the JSON shape of the SIGNING_KEYS secret. Solana keys are base58 encoded
// 64 byte keypairs. Ethereum keys are hex encoded.
type KeyringConfig struct {
	Solana   []string `json:"solana"`
	Ethereum []string `json:"ethereum"`
}

// Keyring maps wallet addresses to signers.
type Keyring struct {
	mu      sync.RWMutex
	wallets map[transfer.Chain]map[string]transfer.Wallet
}

func NewKeyring() *Keyring {
	return &Keyring{wallets: make(map[transfer.Chain]map[string]transfer.Wallet)}
}

// LoadKeyring parses every key in config. chainID is used for Ethereum signatures.
func LoadKeyring(config KeyringConfig, chainID *big.Int) (*Keyring, error) {
	k := NewKeyring()

	for i, encoded := range config.Solana {
		key, err := solanago.PrivateKeyFromBase58(strings.TrimSpace(encoded))
		if err != nil {
			return nil, fmt.Errorf("invalid solana key at index %d: %w", i, err)
		}
		k.Add(NewSolanaWallet(key))
	}

	for i, encoded := range config.Ethereum {
		key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(encoded), "0x"))
		if err != nil {
			return nil, fmt.Errorf("invalid ethereum key at index %d: %w", i, err)
		}
		k.Add(NewEthereumWallet(key, chainID))
	}

	return k, nil
}

func (k *Keyring) Add(w transfer.Wallet) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.wallets[w.Chain()] == nil {
		k.wallets[w.Chain()] = make(map[string]transfer.Wallet)
	}
	k.wallets[w.Chain()][normalize(w.Chain(), w.Address())] = w
}

// Wallet returns the signer for address on chain.
func (k *Keyring) Wallet(chain transfer.Chain, address string) (transfer.Wallet, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	if w, ok := k.wallets[chain][normalize(chain, address)]; ok {
		return w, nil
	}
	return nil, fmt.Errorf("%w %s on %s", ErrNoSigningKey, address, chain)
}

// Addresses lists the configured addresses for chain.
func (k *Keyring) Addresses(chain transfer.Chain) []string {
	k.mu.RLock()
	defer k.mu.RUnlock()
	out := make([]string, 0, len(k.wallets[chain]))
	for _, w := range k.wallets[chain] {
		out = append(out, w.Address())
	}
	return out
}

func normalize(chain transfer.Chain, address string) string {
	if chain == transfer.ChainEthereum && common.IsHexAddress(address) {
		return common.HexToAddress(address).Hex()
	}
	return address
}
