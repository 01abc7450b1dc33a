// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3Config selects the bucket and, for MinIO-style deployments, a custom endpoint.
type S3Config struct {
	Bucket          string
	Region          string
	Endpoint        string
	PathStyle       bool
	AccessKeyID     string
	SecretAccessKey string

	// PublicURL overrides the URL prefix returned for objects (CDN or proxy).
	PublicURL string
}

// S3 stores objects in a single bucket; keys map to object keys verbatim.
type S3 struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

// NewS3 loads the AWS configuration and builds the client.
func NewS3(ctx context.Context, cfg S3Config, optFns ...func(*s3.Options)) (*S3, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("storage: s3 bucket is required")
	}

	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	loadOptions := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if cfg.AccessKeyID != "" {
		loadOptions = append(loadOptions, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOptions...)
	if err != nil {
		return nil, fmt.Errorf("storage: load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, append([]func(*s3.Options){func(options *s3.Options) {
		options.UsePathStyle = cfg.PathStyle
		if cfg.Endpoint != "" {
			options.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	}}, optFns...)...)

	publicURL := cfg.PublicURL
	if publicURL == "" || strings.HasPrefix(publicURL, "/") {
		publicURL = defaultBucketURL(cfg, region)
	}

	return &S3{client: client, bucket: cfg.Bucket, publicURL: publicURL}, nil
}

func defaultBucketURL(cfg S3Config, region string) string {
	if cfg.Endpoint != "" {
		return joinURL(cfg.Endpoint, cfg.Bucket)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, region)
}

func (store *S3) Put(ctx context.Context, key string, body io.Reader, contentType string) (Object, error) {
	clean, err := cleanKey(key)
	if err != nil {
		return Object{}, err
	}

	// Buffer so the SDK can compute the payload hash and length
	payload, err := io.ReadAll(body)
	if err != nil {
		return Object{}, fmt.Errorf("storage: read body: %w", err)
	}

	input := &s3.PutObjectInput{
		Bucket:        aws.String(store.bucket),
		Key:           aws.String(clean),
		Body:          bytes.NewReader(payload),
		ContentLength: aws.Int64(int64(len(payload))),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := store.client.PutObject(ctx, input); err != nil {
		return Object{}, fmt.Errorf("storage: put %s: %w", clean, err)
	}

	return Object{Key: clean, URL: store.URL(clean), Size: int64(len(payload)), ContentType: contentType}, nil
}

func (store *S3) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	clean, err := cleanKey(key)
	if err != nil {
		return nil, err
	}

	output, err := store.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(store.bucket),
		Key:    aws.String(clean),
	})
	if err != nil {
		var missing *types.NoSuchKey
		if errors.As(err, &missing) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("storage: get %s: %w", clean, err)
	}
	return output.Body, nil
}

func (store *S3) Delete(ctx context.Context, key string) error {
	clean, err := cleanKey(key)
	if err != nil {
		return err
	}

	_, err = store.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(store.bucket),
		Key:    aws.String(clean),
	})
	if err != nil {
		return fmt.Errorf("storage: delete %s: %w", clean, err)
	}
	return nil
}

func (store *S3) URL(key string) string {
	return joinURL(store.publicURL, key)
}
