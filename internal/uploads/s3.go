package uploads

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/wnjuguna/portfolio/internal/config"
	"github.com/wnjuguna/portfolio/internal/errs"
)

// S3Store writes uploads to an S3-compatible bucket (R2 in deployment).
// PublicURL is a format string with one %s verb for the object key.
type S3Store struct {
	Client    *s3.Client
	Bucket    string
	PublicURL string
}

// NewS3Store connects to the configured bucket using static credentials and
// a pinned-down TLS client.
func NewS3Store(ctx context.Context, cfg config.UploadsConfig) (*S3Store, error) {
	tr := &http.Transport{
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
			MaxVersion: tls.VersionTLS13,
			CipherSuites: []uint16{
				tls.TLS_ECDHE_ECDSA_WITH_AES_256_GCM_SHA384,
				tls.TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384,
				tls.TLS_ECDHE_ECDSA_WITH_AES_128_GCM_SHA256,
				tls.TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256,
			},
		},
	}
	httpClient := &http.Client{Transport: tr}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithHTTPClient(httpClient),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.AccessKeySecret, "")),
		awsconfig.WithRegion("auto"),
	)
	if err != nil {
		return nil, errs.Wrap(err, "load aws config")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.AccountID))
	})

	return &S3Store{
		Client:    client,
		Bucket:    cfg.Bucket,
		PublicURL: cfg.PublicURL,
	}, nil
}

func (s *S3Store) Save(ctx context.Context, dir, filename, contentType string, r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", errs.Wrap(err, "read upload")
	}
	data = normalize(data, contentType)

	key := objectKey(dir, filepath.Base(filename))
	_, err = s.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", errs.Wrap(err, "put object")
	}

	return CleanURL(fmt.Sprintf(s.PublicURL, key)), nil
}
