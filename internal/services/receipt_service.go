package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/artvault/artvault-api/internal/db"
	"github.com/artvault/artvault-api/internal/helpers"
	"github.com/artvault/artvault-api/internal/transfer"
	"github.com/shopspring/decimal"
)

// ShortSignature keeps the first and last four characters of a signature.
func ShortSignature(signature string) string {
	if len(signature) <= 8 {
		return signature
	}
	return signature[:4] + "..." + signature[len(signature)-4:]
}

// ReceiptFilename is the download name for a receipt.
func ReceiptFilename(signature string) string {
	return fmt.Sprintf("receipt-%s.txt", ShortSignature(signature))
}

// Receipt is the printable summary of a recorded transfer.
type Receipt struct {
	Signature    string          `json:"signature"`
	ShortSig     string          `json:"short_signature"`
	Chain        transfer.Chain  `json:"chain"`
	Kind         transfer.Kind   `json:"kind"`
	Amount       decimal.Decimal `json:"amount"`
	Symbol       string          `json:"symbol"`
	Recipient    string          `json:"recipient"`
	ArtworkTitle string          `json:"artwork_title,omitempty"`
	ExplorerURL  string          `json:"explorer_url"`
	Date         time.Time       `json:"date"`
}

// Text renders the plain text receipt.
func (r Receipt) Text() string {
	var b strings.Builder
	b.WriteString("Transaction Receipt\n")
	b.WriteString("-------------------\n")
	fmt.Fprintf(&b, "Date: %s\n", r.Date.UTC().Format("2006-01-02 15:04:05 MST"))
	if r.Kind == transfer.KindPurchase {
		title := r.ArtworkTitle
		if title == "" {
			title = "Purchase"
		}
		fmt.Fprintf(&b, "Artwork: %s\n", title)
		fmt.Fprintf(&b, "Price: %s %s\n", r.Amount.String(), r.Symbol)
	} else {
		b.WriteString("Transaction Type: Transfer\n")
		fmt.Fprintf(&b, "Amount: %s %s\n", r.Amount.String(), r.Symbol)
	}
	fmt.Fprintf(&b, "Recipient: %s\n", r.Recipient)
	fmt.Fprintf(&b, "Transaction ID: %s\n", r.Signature)
	fmt.Fprintf(&b, "Explorer Link: %s\n", r.ExplorerURL)
	return b.String()
}

// ReceiptService builds receipts and explorer links.
type ReceiptService struct {
	queries          db.Querier
	solanaCluster    string
	ethereumExplorer string
}

func NewReceiptService(queries db.Querier, solanaCluster, ethereumExplorer string) *ReceiptService {
	if solanaCluster == "" {
		solanaCluster = "devnet"
	}
	if ethereumExplorer == "" {
		ethereumExplorer = "https://sepolia.etherscan.io"
	}
	return &ReceiptService{
		queries:          queries,
		solanaCluster:    solanaCluster,
		ethereumExplorer: strings.TrimSuffix(ethereumExplorer, "/"),
	}
}

func (s *ReceiptService) ExplorerURL(chain transfer.Chain, signature string) string {
	if chain == transfer.ChainEthereum {
		return fmt.Sprintf("%s/tx/%s", s.ethereumExplorer, signature)
	}
	if s.solanaCluster == "mainnet-beta" {
		return fmt.Sprintf("https://explorer.solana.com/tx/%s", signature)
	}
	return fmt.Sprintf("https://explorer.solana.com/tx/%s?cluster=%s", signature, s.solanaCluster)
}

// FromRecord builds the receipt for record, looking up the artwork title for purchases.
func (s *ReceiptService) FromRecord(ctx context.Context, record db.TransferRecord) Receipt {
	chain := transfer.Chain(record.Chain)
	r := Receipt{
		Signature:   record.Signature,
		ShortSig:    ShortSignature(record.Signature),
		Chain:       chain,
		Kind:        transfer.Kind(record.Kind),
		Amount:      helpers.NumericToDecimal(record.Amount),
		Symbol:      chain.Symbol(),
		Recipient:   record.RecipientAddress,
		ExplorerURL: s.ExplorerURL(chain, record.Signature),
		Date:        record.CreatedAt.Time,
	}
	if record.ArtworkID.Valid {
		if artwork, err := s.queries.GetArtwork(ctx, helpers.PgtypeToUUID(record.ArtworkID)); err == nil {
			r.ArtworkTitle = artwork.Title
		}
	}
	return r
}

// ForSignature loads the record and builds its receipt.
func (s *ReceiptService) ForSignature(ctx context.Context, signature string) (Receipt, db.TransferRecord, error) {
	record, err := s.queries.GetTransferRecordBySignature(ctx, signature)
	if err != nil {
		if db.IsNotFound(err) {
			return Receipt{}, db.TransferRecord{}, ErrRecordNotFound
		}
		return Receipt{}, db.TransferRecord{}, fmt.Errorf("failed to get transfer record: %w", err)
	}
	return s.FromRecord(ctx, record), record, nil
}
