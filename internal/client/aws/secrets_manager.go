package aws

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/artvault/artvault-api/internal/logger"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"go.uber.org/zap"
)

type secretsAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// SecretsManagerClient wraps the AWS Secrets Manager client.
type SecretsManagerClient struct {
	svc secretsAPI
}

// NewSecretsManagerClient uses the default AWS configuration chain (environment, shared config, IAM role).
func NewSecretsManagerClient(ctx context.Context) (*SecretsManagerClient, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}
	return &SecretsManagerClient{svc: secretsmanager.NewFromConfig(cfg)}, nil
}

// GetSecretString reads the secret whose ARN is in secretArnEnvVar. When that variable is unset or
// the fetch fails, the value of fallbackEnvVar is used instead.
func (c *SecretsManagerClient) GetSecretString(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string) (string, error) {
	if value, ok := c.fetch(ctx, secretArnEnvVar); ok {
		return value, nil
	}

	if value := os.Getenv(fallbackEnvVar); value != "" {
		logger.Log.Debug("Using secret value from environment", zap.String("envVar", fallbackEnvVar))
		return value, nil
	}

	return "", fmt.Errorf("secret not found using ARN env var '%s' or direct env var '%s'", secretArnEnvVar, fallbackEnvVar)
}

// GetSecretJSON is GetSecretString followed by json.Unmarshal into target.
func (c *SecretsManagerClient) GetSecretJSON(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string, target interface{}) error {
	raw, err := c.GetSecretString(ctx, secretArnEnvVar, fallbackEnvVar)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(raw), target); err != nil {
		return fmt.Errorf("secret %s is not valid JSON: %w", fallbackEnvVar, err)
	}
	return nil
}

func (c *SecretsManagerClient) fetch(ctx context.Context, secretArnEnvVar string) (string, bool) {
	secretArn := os.Getenv(secretArnEnvVar)
	if secretArn == "" || c.svc == nil {
		return "", false
	}

	result, err := c.svc.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretArn),
	})
	if err != nil || result.SecretString == nil || *result.SecretString == "" {
		logger.Log.Warn("Failed to retrieve secret from Secrets Manager, falling back to env var",
			zap.String("secretArnEnvVar", secretArnEnvVar),
			zap.Error(err),
		)
		return "", false
	}

	logger.Log.Info("Fetched secret from Secrets Manager", zap.String("secretArnEnvVar", secretArnEnvVar))
	return *result.SecretString, true
}
