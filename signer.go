package s3sign

import (
	"github.com/aws/aws-sdk-go-v2/aws"

	"github.com/s3sign/s3sign/utils"
)

// Signer produces URLs for objects in one bucket. All address resolution happens
// once at construction; every field is read-only afterwards except the optional
// signing-key cache.
//
// A Signer without the cache is safe for concurrent use from multiple
// goroutines. A Signer constructed WithSigningKeyCache is not: the cache's
// check-derive-insert-evict sequence is not atomic, so callers must serialize
// access or give each goroutine its own Signer.
type Signer struct {
	bucket string
	region string
	creds  aws.Credentials

	host     string // raw override, set by WithHost
	endpoint string // raw override, set by WithEndpoint

	authority  utils.Authority
	pathPrefix string

	defaultPublic bool
	cache         *signingKeyCache
}

// NewSigner initializes a Signer for a bucket, validating configuration eagerly.
// Credentials must carry AccessKeyID and SecretAccessKey; SessionToken is
// optional and, when present, is included in presigned URLs.
func NewSigner(bucket, region string, creds aws.Credentials, opts ...Option) (*Signer, error) {
	s := &Signer{
		bucket:        bucket,
		region:        region,
		creds:         creds,
		defaultPublic: true,
	}
	for _, o := range opts {
		o.Apply(s)
	}

	switch {
	case s.bucket == "":
		return nil, ErrBucketRequired
	case s.region == "":
		return nil, ErrRegionRequired
	case s.creds.AccessKeyID == "" || s.creds.SecretAccessKey == "":
		return nil, ErrCredentialsRequired
	case s.host != "" && s.endpoint != "":
		return nil, ErrHostEndpointConflict
	}

	authority, pathPrefix, err := resolveAddress(s.bucket, s.region, s.host, s.endpoint)
	if err != nil {
		return nil, err
	}
	s.authority = authority
	s.pathPrefix = pathPrefix

	return s, nil
}

// Bucket returns the bucket this signer addresses.
func (s *Signer) Bucket() string {
	return s.bucket
}

// Region returns the region the signer signs for.
func (s *Signer) Region() string {
	return s.region
}

// PublicURL returns the unsigned URL of an object. No cryptographic work is done.
func (s *Signer) PublicURL(key string) string {
	return s.authority.String() + s.pathPrefix + "/" + utils.EscapeObjectKey(key)
}

// URL returns either a public or a presigned URL for an object, based on the
// signer's configured default visibility or a per-call Public option. Public
// dispatch silently discards any presign-only options.
func (s *Signer) URL(key string, opts ...PresignOption) (string, error) {
	po := newPresignOptions(opts)

	public := s.defaultPublic
	if po.Public != nil {
		public = *po.Public
	}
	if public {
		return s.PublicURL(key), nil
	}
	return s.presign(key, po)
}
