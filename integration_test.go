//go:build s3signintegration

package s3sign_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/require"

	"github.com/s3sign/s3sign"
)

// TestPresignedRoundTrip uploads an object through the AWS SDK, then fetches it
// back over plain HTTP through a URL produced by this library.
//
// Required environment variables:
//   - S3SIGN_ENDPOINT: S3-compatible endpoint URL, ie a local MinIO instance
//   - S3SIGN_BUCKET: existing bucket to write the test object into
//   - AWS_REGION, AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY
func TestPresignedRoundTrip(t *testing.T) {
	endpoint := os.Getenv("S3SIGN_ENDPOINT")
	bucket := os.Getenv("S3SIGN_BUCKET")
	if endpoint == "" || bucket == "" {
		t.Skip("S3SIGN_ENDPOINT or S3SIGN_BUCKET not set, skipping presign round-trip test")
	}
	region := os.Getenv("AWS_REGION")
	if region == "" {
		region = "us-east-1"
	}

	ctx := context.Background()
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			os.Getenv("AWS_ACCESS_KEY_ID"),
			os.Getenv("AWS_SECRET_ACCESS_KEY"),
			os.Getenv("AWS_SESSION_TOKEN"),
		)),
	)
	require.NoError(t, err)

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
	})

	key := "s3sign-integration/dir/one two.txt"
	body := []byte("round-trip payload")
	uploader := manager.NewUploader(client)
	_, err = uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(body),
	})
	require.NoError(t, err)

	creds, err := cfg.Credentials.Retrieve(ctx)
	require.NoError(t, err)

	signer, err := s3sign.NewSigner(bucket, region, creds,
		s3sign.WithEndpoint(endpoint),
		s3sign.WithSigningKeyCache(),
	)
	require.NoError(t, err)

	u, err := signer.PresignedURL(key,
		s3sign.ExpiresIn(5*time.Minute),
		s3sign.ResponseContentType("text/plain"),
	)
	require.NoError(t, err)

	resp, err := http.Get(u)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "text/plain", resp.Header.Get("Content-Type"))

	got, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, body, got)

	// an expired URL must be refused by the server
	u, err = signer.PresignedURL(key,
		s3sign.At(time.Now().Add(-time.Hour)),
		s3sign.ExpiresIn(time.Second),
	)
	require.NoError(t, err)

	resp, err = http.Get(u)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}
