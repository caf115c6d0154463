package services

import (
	"context"
	"errors"
	"testing"

	"github.com/artvault/artvault-api/internal/logger"
	"github.com/resend/resend-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.InitLogger("test")
}

type fakeEmailSender struct {
	sent []*resend.SendEmailRequest
	err  error
}

func (f *fakeEmailSender) Send(params *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.sent = append(f.sent, params)
	return &resend.SendEmailResponse{Id: "email-1"}, nil
}

func TestReceiptMailer_Send(t *testing.T) {
	receipt := Receipt{
		Signature: "abcdefghijkl",
		ShortSig:  "abcd...ijkl",
		Recipient: "addr-recipient",
		Symbol:    "SOL",
	}

	t.Run("sends text and attachment", func(t *testing.T) {
		sender := &fakeEmailSender{}
		mailer := newReceiptMailer(sender, "receipts@artvault.app", "ArtVault")

		require.NoError(t, mailer.Send(context.Background(), receipt, "ada@example.com"))
		require.Len(t, sender.sent, 1)

		sent := sender.sent[0]
		assert.Equal(t, "ArtVault <receipts@artvault.app>", sent.From)
		assert.Equal(t, []string{"ada@example.com"}, sent.To)
		assert.Equal(t, "Your ArtVault receipt abcd...ijkl", sent.Subject)
		assert.Contains(t, sent.Text, "Transaction ID: abcdefghijkl")
		require.Len(t, sent.Attachments, 1)
		assert.Equal(t, "receipt-abcd...ijkl.txt", sent.Attachments[0].Filename)
	})

	t.Run("provider error", func(t *testing.T) {
		mailer := newReceiptMailer(&fakeEmailSender{err: errors.New("quota exceeded")}, "receipts@artvault.app", "ArtVault")

		err := mailer.Send(context.Background(), receipt, "ada@example.com")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to send receipt email")
	})

	t.Run("cancelled context", func(t *testing.T) {
		sender := &fakeEmailSender{}
		mailer := newReceiptMailer(sender, "receipts@artvault.app", "ArtVault")
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.ErrorIs(t, mailer.Send(ctx, receipt, "ada@example.com"), context.Canceled)
		assert.Empty(t, sender.sent)
	})
}
