package s3sign

import "time"

const (
	optionNameHost             = "host"
	optionNameEndpoint         = "endpoint"
	optionNameDefaultPresigned = "default presigned"
	optionNameSigningKeyCache  = "signing key cache"
)

// Option interface contains functions that should be implemented by any custom option
// to qualify as a Signer construction option.
type Option interface {
	Apply(*Signer)
	OptionName() string
}

// WithHost returns hostOpt implementation of Option
//
// WithHost pins the bucket address to the given host verbatim, with https and no
// path prefix. Mutually exclusive with WithEndpoint.
func WithHost(host string) Option {
	return &hostOpt{host: host}
}

type hostOpt struct {
	host string
}

func (o *hostOpt) Apply(s *Signer) {
	s.host = o.host
}

func (o *hostOpt) OptionName() string {
	return optionNameHost
}

// WithEndpoint returns endpointOpt implementation of Option
//
// WithEndpoint points the signer at an S3-compatible endpoint URL, ie a MinIO
// instance. An endpoint with a literal IPv4 host produces path-style addresses,
// any other endpoint produces virtual-hosted-style addresses. Mutually exclusive
// with WithHost.
func WithEndpoint(endpoint string) Option {
	return &endpointOpt{endpoint: endpoint}
}

type endpointOpt struct {
	endpoint string
}

func (o *endpointOpt) Apply(s *Signer) {
	s.endpoint = o.endpoint
}

func (o *endpointOpt) OptionName() string {
	return optionNameEndpoint
}

// WithDefaultPresigned returns defaultPresignedOpt implementation of Option
//
// WithDefaultPresigned makes URL produce presigned URLs unless a call overrides
// it with Public(true). Without this option URL produces public URLs.
func WithDefaultPresigned() Option {
	return &defaultPresignedOpt{}
}

type defaultPresignedOpt struct{}

func (o *defaultPresignedOpt) Apply(s *Signer) {
	s.defaultPublic = false
}

func (o *defaultPresignedOpt) OptionName() string {
	return optionNameDefaultPresigned
}

// WithSigningKeyCache returns signingKeyCacheOpt implementation of Option
//
// WithSigningKeyCache caches derived signing keys per calendar date, bounded at
// five dates with insertion-order eviction. A signer using the cache is not safe
// for unsynchronized concurrent use; see Signer.
func WithSigningKeyCache() Option {
	return &signingKeyCacheOpt{}
}

type signingKeyCacheOpt struct{}

func (o *signingKeyCacheOpt) Apply(s *Signer) {
	s.cache = newSigningKeyCache()
}

func (o *signingKeyCacheOpt) OptionName() string {
	return optionNameSigningKeyCache
}

// PresignOptions holds the per-call presign parameters. Nil pointer fields are
// omitted from the produced URL rather than encoded as empty.
type PresignOptions struct {
	// Time is the signing time. Zero means current UTC time.
	Time time.Time

	// ExpiresIn is the presign lifetime, bounded by (0, MaxExpiry].
	ExpiresIn time.Duration

	// Public overrides the signer's configured default visibility for URL dispatch.
	Public *bool

	// response-* header overrides, returned by S3 in place of the stored values
	ResponseCacheControl       *string
	ResponseContentDisposition *string
	ResponseContentEncoding    *string
	ResponseContentLanguage    *string
	ResponseContentType        *string
	ResponseExpires            *time.Time

	// VersionID selects a specific object version.
	VersionID *string
}

// PresignOption applies a per-call presign parameter.
type PresignOption func(*PresignOptions)

// At fixes the signing time instead of using the current UTC time.
func At(t time.Time) PresignOption {
	return func(o *PresignOptions) { o.Time = t }
}

// ExpiresIn sets the presign lifetime. Default is DefaultExpiry.
func ExpiresIn(d time.Duration) PresignOption {
	return func(o *PresignOptions) { o.ExpiresIn = d }
}

// Public overrides the signer's default visibility for a URL call.
func Public(public bool) PresignOption {
	return func(o *PresignOptions) { o.Public = &public }
}

// ResponseCacheControl overrides the Cache-Control header of the GET response.
func ResponseCacheControl(v string) PresignOption {
	return func(o *PresignOptions) { o.ResponseCacheControl = &v }
}

// ResponseContentDisposition overrides the Content-Disposition header of the GET response.
func ResponseContentDisposition(v string) PresignOption {
	return func(o *PresignOptions) { o.ResponseContentDisposition = &v }
}

// ResponseContentEncoding overrides the Content-Encoding header of the GET response.
func ResponseContentEncoding(v string) PresignOption {
	return func(o *PresignOptions) { o.ResponseContentEncoding = &v }
}

// ResponseContentLanguage overrides the Content-Language header of the GET response.
func ResponseContentLanguage(v string) PresignOption {
	return func(o *PresignOptions) { o.ResponseContentLanguage = &v }
}

// ResponseContentType overrides the Content-Type header of the GET response.
func ResponseContentType(v string) PresignOption {
	return func(o *PresignOptions) { o.ResponseContentType = &v }
}

// ResponseExpires overrides the Expires header of the GET response. The value is
// rendered as an IMF-fixdate; use utils.ParseHTTPDate to accept looser inputs.
func ResponseExpires(t time.Time) PresignOption {
	return func(o *PresignOptions) { o.ResponseExpires = &t }
}

// VersionID selects a specific version of the object.
func VersionID(v string) PresignOption {
	return func(o *PresignOptions) { o.VersionID = &v }
}
