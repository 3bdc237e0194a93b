/*
Package s3sign produces GET URLs for objects in an S3-compatible bucket: unsigned
"public" URLs, and time-limited presigned URLs using the query-parameter flavor
of AWS Signature Version 4. It performs no network I/O and never checks that a
bucket or object exists; it is a pure computation library built to make URL
production cheap in hot paths.

# Usage

Construct one Signer per bucket configuration. Address resolution (scheme, host,
port, path prefix) happens once, at construction:

	signer, err := s3sign.NewSigner("my-bucket", "us-west-2", aws.Credentials{
		AccessKeyID:     keyID,
		SecretAccessKey: secret,
	})
	if err != nil {
		return err
	}

	public := signer.PublicURL("some/directory/file.jpg")

	presigned, err := signer.PresignedURL("some/directory/file.jpg",
		s3sign.ExpiresIn(1*time.Hour),
		s3sign.ResponseContentType("image/jpeg"),
	)

S3-compatible services like MinIO are addressed with WithEndpoint. An endpoint
whose host is a literal IPv4 address gets path-style addressing, anything else
gets virtual-hosted-style:

	signer, err := s3sign.NewSigner("my-bucket", "us-east-1", creds,
		s3sign.WithEndpoint("http://127.0.0.1:9000"),
	)

# Performance

Signing-key derivation is a four-step HMAC chain that only depends on the
calendar date, the region, and the secret. WithSigningKeyCache keeps the last
five derived keys so batches of same-day presigns derive once. The cache trades
away thread-safety for a lock-free fast path: a caching Signer must be confined
to one goroutine or serialized externally, while a non-caching Signer may be
shared freely.

# Errors

Construction problems (missing credentials, both host and endpoint set,
malformed endpoint) surface as ConfigError. An out-of-range expiry surfaces as
InvalidArgumentError. Nothing else fails: object keys and response-header
override values are escaped byte-for-byte, never rejected.
*/
package s3sign
