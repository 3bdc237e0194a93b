package s3sign

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/s3sign/s3sign/utils"
)

// Signature Version 4 constants.
// See https://docs.aws.amazon.com/AmazonS3/latest/API/sigv4-query-string-auth.html
const (
	signingAlgorithm = "AWS4-HMAC-SHA256"
	unsignedPayload  = "UNSIGNED-PAYLOAD"
	serviceName      = "s3"
	requestSuffix    = "aws4_request"

	// amzDateFormat is the X-Amz-Date timestamp format, YYYYMMDD'T'HHMMSS'Z'
	amzDateFormat = "20060102T150405Z"
)

func newPresignOptions(opts []PresignOption) *PresignOptions {
	po := &PresignOptions{ExpiresIn: DefaultExpiry}
	for _, o := range opts {
		o(po)
	}
	return po
}

// PresignedURL returns a time-limited URL granting GET access to an object,
// signed with the query-parameter flavor of SigV4. The signature covers only
// the host header and an unsigned payload.
func (s *Signer) PresignedURL(key string, opts ...PresignOption) (string, error) {
	return s.presign(key, newPresignOptions(opts))
}

func (s *Signer) presign(key string, po *PresignOptions) (string, error) {
	expires := int64(po.ExpiresIn / time.Second)
	if expires <= 0 || expires > int64(MaxExpiry/time.Second) {
		return "", ErrExpiryOutOfRange
	}

	now := po.Time
	if now.IsZero() {
		now = time.Now()
	}
	amzDate := now.UTC().Format(amzDateFormat)
	datestamp := amzDate[:8]
	scope := datestamp + "/" + s.region + "/" + serviceName + "/" + requestSuffix

	params := []queryParam{
		{"X-Amz-Algorithm", signingAlgorithm},
		{"X-Amz-Credential", utils.EscapeComponent(s.creds.AccessKeyID + "/" + scope)},
		{"X-Amz-Date", amzDate},
		{"X-Amz-Expires", strconv.FormatInt(expires, 10)},
		{"X-Amz-SignedHeaders", "host"},
	}
	if s.creds.SessionToken != "" {
		params = append(params, queryParam{"X-Amz-Security-Token", utils.EscapeComponent(s.creds.SessionToken)})
	}
	params = appendParam(params, "response-cache-control", po.ResponseCacheControl)
	params = appendParam(params, "response-content-disposition", po.ResponseContentDisposition)
	params = appendParam(params, "response-content-encoding", po.ResponseContentEncoding)
	params = appendParam(params, "response-content-language", po.ResponseContentLanguage)
	params = appendParam(params, "response-content-type", po.ResponseContentType)
	if po.ResponseExpires != nil {
		httpDate := utils.FormatHTTPDate(*po.ResponseExpires)
		params = append(params, queryParam{"response-expires", utils.EscapeComponent(httpDate)})
	}
	params = appendParam(params, "versionId", po.VersionID)

	// a correct signature requires byte-ordered parameter names
	sort.Slice(params, func(i, j int) bool { return params[i].name < params[j].name })

	var qs strings.Builder
	for i, p := range params {
		if i > 0 {
			qs.WriteByte('&')
		}
		qs.WriteString(p.name)
		qs.WriteByte('=')
		qs.WriteString(p.value)
	}
	canonicalQuery := qs.String()

	canonicalURI := s.pathPrefix + "/" + utils.EscapeObjectKey(key)
	canonicalRequest := strings.Join([]string{
		"GET",
		canonicalURI,
		canonicalQuery,
		"host:" + s.authority.HostPort() + "\n",
		"host",
		unsignedPayload,
	}, "\n")

	hashed := sha256.Sum256([]byte(canonicalRequest))
	stringToSign := strings.Join([]string{
		signingAlgorithm,
		amzDate,
		scope,
		hex.EncodeToString(hashed[:]),
	}, "\n")

	signature := hex.EncodeToString(hmacSHA256(s.signingKey(datestamp), stringToSign))

	return s.authority.String() + canonicalURI + "?" + canonicalQuery + "&X-Amz-Signature=" + signature, nil
}

type queryParam struct {
	name  string
	value string
}

func appendParam(params []queryParam, name string, value *string) []queryParam {
	if value == nil {
		return params
	}
	return append(params, queryParam{name, utils.EscapeComponent(*value)})
}

// signingKey returns the derived key for a datestamp, consulting the cache when
// one is configured.
func (s *Signer) signingKey(datestamp string) []byte {
	if s.cache == nil {
		return deriveKey(s.creds.SecretAccessKey, datestamp, s.region)
	}
	if key, ok := s.cache.get(datestamp); ok {
		return key
	}
	key := deriveKey(s.creds.SecretAccessKey, datestamp, s.region)
	s.cache.put(datestamp, key)
	return key
}

// deriveKey runs the four-step AWS4 HMAC chain. It is a pure function of
// (secret, datestamp, region); time of day, object key, and query parameters
// never enter it.
func deriveKey(secret, datestamp, region string) []byte {
	kDate := hmacSHA256([]byte("AWS4"+secret), datestamp)
	kRegion := hmacSHA256(kDate, region)
	kService := hmacSHA256(kRegion, serviceName)
	return hmacSHA256(kService, requestSuffix)
}

func hmacSHA256(key []byte, data string) []byte {
	h := hmac.New(sha256.New, key)
	h.Write([]byte(data))
	return h.Sum(nil)
}
