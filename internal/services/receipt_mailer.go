package services

import (
	"context"
	"fmt"

	"github.com/artvault/artvault-api/internal/logger"
	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

type emailSender interface {
	Send(params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// ReceiptMailer emails a copy of a receipt through Resend.
type ReceiptMailer struct {
	emails    emailSender
	fromEmail string
	fromName  string
	logger    *zap.Logger
}

func NewReceiptMailer(apiKey, fromEmail, fromName string) *ReceiptMailer {
	return newReceiptMailer(resend.NewClient(apiKey).Emails, fromEmail, fromName)
}

func newReceiptMailer(emails emailSender, fromEmail, fromName string) *ReceiptMailer {
	return &ReceiptMailer{emails: emails, fromEmail: fromEmail, fromName: fromName, logger: logger.Log}
}

// Send emails receipt to toEmail with the text receipt attached.
func (m *ReceiptMailer) Send(ctx context.Context, receipt Receipt, toEmail string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	text := receipt.Text()
	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", m.fromName, m.fromEmail),
		To:      []string{toEmail},
		Subject: fmt.Sprintf("Your ArtVault receipt %s", receipt.ShortSig),
		Text:    text,
		Attachments: []*resend.Attachment{{
			Content:  []byte(text),
			Filename: ReceiptFilename(receipt.Signature),
		}},
		Tags: []resend.Tag{{Name: "type", Value: "receipt"}},
	}

	sent, err := m.emails.Send(params)
	if err != nil {
		m.logger.Error("Failed to send receipt email",
			zap.String("signature", receipt.Signature),
			zap.Error(err),
		)
		return fmt.Errorf("failed to send receipt email: %w", err)
	}

	m.logger.Info("Receipt email sent",
		zap.String("email_id", sent.Id),
		zap.String("signature", receipt.Signature),
	)
	return nil
}
