package aws

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/artvault/artvault-api/internal/logger"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.InitLogger("test")
}

type fakeSecrets struct {
	value *string
	err   error
}

func (f fakeSecrets) GetSecretValue(context.Context, *secretsmanager.GetSecretValueInput, ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &secretsmanager.GetSecretValueOutput{SecretString: f.value}, nil
}

func TestGetSecretString(t *testing.T) {
	tests := []struct {
		name     string
		arn      string
		fallback string
		svc      fakeSecrets
		want     string
		wantErr  bool
	}{
		{name: "from secrets manager", arn: "arn:secret", svc: fakeSecrets{value: aws.String("from-sm")}, want: "from-sm"},
		{name: "fetch fails uses fallback", arn: "arn:secret", fallback: "from-env", svc: fakeSecrets{err: errors.New("denied")}, want: "from-env"},
		{name: "no arn uses fallback", fallback: "from-env", want: "from-env"},
		{name: "nothing configured", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_SECRET_ARN", tt.arn)
			t.Setenv("TEST_SECRET", tt.fallback)

			c := &SecretsManagerClient{svc: tt.svc}
			got, err := c.GetSecretString(context.Background(), "TEST_SECRET_ARN", "TEST_SECRET")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetSecretJSON(t *testing.T) {
	t.Setenv("KEYS_ARN", "")
	t.Setenv("KEYS", `{"addr":"key"}`)

	c := &SecretsManagerClient{}
	var keys map[string]string
	require.NoError(t, c.GetSecretJSON(context.Background(), "KEYS_ARN", "KEYS", &keys))
	assert.Equal(t, "key", keys["addr"])

	t.Setenv("KEYS", "not json")
	assert.Error(t, c.GetSecretJSON(context.Background(), "KEYS_ARN", "KEYS", &keys))
}

type fakeSQS struct {
	input *sqs.SendMessageInput
}

func (f *fakeSQS) SendMessage(_ context.Context, in *sqs.SendMessageInput, _ ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	f.input = in
	return &sqs.SendMessageOutput{MessageId: aws.String("m-1")}, nil
}

func TestEventPublisher_Publish(t *testing.T) {
	fake := &fakeSQS{}
	p := &EventPublisher{svc: fake, queueURL: "https://sqs.local/queue"}

	err := p.Publish(context.Background(), "transfer.recorded", map[string]string{"signature": "sig-1"})
	require.NoError(t, err)

	assert.Equal(t, "https://sqs.local/queue", aws.ToString(fake.input.QueueUrl))
	assert.Equal(t, "transfer.recorded", aws.ToString(fake.input.MessageAttributes["event_type"].StringValue))

	var body map[string]string
	require.NoError(t, json.Unmarshal([]byte(aws.ToString(fake.input.MessageBody)), &body))
	assert.Equal(t, "sig-1", body["signature"])
}
