package s3

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"baanthai-construction-api/config"
)

type Uploader struct {
	Client           *s3.Client
	Bucket           string
	Region           string
	CloudFrontDomain string
	KeyPrefix        string
}

func NewUploader(cfg config.S3Config) (*Uploader, error) {
	sdkConfig, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &Uploader{
		Client:           s3.NewFromConfig(sdkConfig),
		Bucket:           cfg.Bucket,
		Region:           cfg.Region,
		CloudFrontDomain: cfg.CloudFrontDomain,
		KeyPrefix:        "uploads",
	}, nil
}

// Upload stores the file under a generated key and returns its public URL.
func (u *Uploader) Upload(ctx context.Context, file io.Reader, contentType string) (string, error) {
	if contentType == "" {
		contentType = "image/jpeg"
	}
	objectKey := fmt.Sprintf("%s/%s%s", u.KeyPrefix, uuid.New().String(), extensionFor(contentType))

	_, err := u.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.Bucket),
		Key:         aws.String(objectKey),
		Body:        file,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file to S3: %w", err)
	}

	return u.publicURL(objectKey), nil
}

// DeleteByURL removes the object behind a previously returned public URL.
// Callers treat failures as best-effort cleanup; a URL that does not belong
// to this bucket is reported as an error and otherwise ignored upstream.
func (u *Uploader) DeleteByURL(ctx context.Context, publicURL string) error {
	objectKey, err := u.keyFromURL(publicURL)
	if err != nil {
		return err
	}

	_, err = u.Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(u.Bucket),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object %s: %w", objectKey, err)
	}
	return nil
}

func (u *Uploader) publicURL(objectKey string) string {
	if u.CloudFrontDomain != "" {
		return fmt.Sprintf("https://%s/%s", u.CloudFrontDomain, objectKey)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.Bucket, u.Region, objectKey)
}

func (u *Uploader) keyFromURL(publicURL string) (string, error) {
	parsed, err := url.Parse(publicURL)
	if err != nil {
		return "", fmt.Errorf("unparseable image URL %q: %w", publicURL, err)
	}

	ownHosts := []string{
		fmt.Sprintf("%s.s3.%s.amazonaws.com", u.Bucket, u.Region),
	}
	if u.CloudFrontDomain != "" {
		ownHosts = append(ownHosts, u.CloudFrontDomain)
	}
	for _, host := range ownHosts {
		if parsed.Host == host {
			return strings.TrimPrefix(parsed.Path, "/"), nil
		}
	}
	// Pasted external URLs were never uploaded by us; nothing to delete.
	return "", fmt.Errorf("URL %q is not served from this blob store", publicURL)
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	default:
		return ".jpg"
	}
}
