package wallet

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"

	"github.com/artvault/artvault-api/internal/transfer"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

// EthereumWallet signs EIP-1559 transactions for one secp256k1 key.
type EthereumWallet struct {
	key    *ecdsa.PrivateKey
	signer types.Signer
}

func NewEthereumWallet(key *ecdsa.PrivateKey, chainID *big.Int) *EthereumWallet {
	return &EthereumWallet{key: key, signer: types.LatestSignerForChainID(chainID)}
}

func (w *EthereumWallet) Chain() transfer.Chain { return transfer.ChainEthereum }

func (w *EthereumWallet) Address() string {
	return crypto.PubkeyToAddress(w.key.PublicKey).Hex()
}

func (w *EthereumWallet) Sign(ctx context.Context, unsigned *transfer.UnsignedTransfer) (*transfer.SignedTransfer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	tx, ok := unsigned.Payload.(*types.Transaction)
	if !ok {
		return nil, fmt.Errorf("unexpected ethereum payload %T", unsigned.Payload)
	}

	signed, err := types.SignTx(tx, w.signer, w.key)
	if err != nil {
		return nil, fmt.Errorf("failed to sign ethereum transaction: %w", err)
	}

	return &transfer.SignedTransfer{
		Unsigned:  unsigned,
		Signature: signed.Hash().Hex(),
		Payload:   signed,
	}, nil
}

var _ transfer.Wallet = (*EthereumWallet)(nil)
