package views

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3Store persists views as JSON objects in an S3 bucket, one object per
// view under a key prefix. Instances sharing a bucket share their views.
//
// Example:
//
//	cfg, _ := config.LoadDefaultConfig(ctx)
//	store := views.NewS3Store(s3.NewFromConfig(cfg), "my-bucket", "views/")
type S3Store struct {
	client *s3.Client
	bucket string
	prefix string
}

// NewS3Store creates a store over the given S3 client.
//
// Parameters:
//   - client: AWS S3 client from aws-sdk-go-v2
//   - bucket: S3 bucket name
//   - prefix: key prefix for view objects (e.g. "views/")
func NewS3Store(client *s3.Client, bucket, prefix string) *S3Store {
	return &S3Store{client: client, bucket: bucket, prefix: prefix}
}

// Save stores the view, overwriting any existing view with the same name.
func (s *S3Store) Save(ctx context.Context, v View) error {
	if v.Name == "" {
		return ErrEmptyName
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("views: marshal %q: %w", v.Name, err)
	}
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.key(v.Name)),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("views: put %q: %w", v.Name, err)
	}
	return nil
}

// Get returns the view with the given name.
func (s *S3Store) Get(ctx context.Context, name string) (View, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(name)),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return View{}, ErrNotFound
		}
		return View{}, fmt.Errorf("views: get %q: %w", name, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return View{}, fmt.Errorf("views: read %q: %w", name, err)
	}
	var v View
	if err := json.Unmarshal(data, &v); err != nil {
		return View{}, fmt.Errorf("views: decode %q: %w", name, err)
	}
	return v, nil
}

// List returns all views ordered by name.
func (s *S3Store) List(ctx context.Context) ([]View, error) {
	var out []View
	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(s.prefix),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("views: list: %w", err)
		}
		for _, obj := range page.Contents {
			name := (*obj.Key)[len(s.prefix):]
			v, err := s.Get(ctx, name)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Delete removes the view with the given name. S3 deletes are idempotent,
// so a missing view is checked first to honor the Store contract.
func (s *S3Store) Delete(ctx context.Context, name string) error {
	if _, err := s.Get(ctx, name); err != nil {
		return err
	}
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(name)),
	})
	if err != nil {
		return fmt.Errorf("views: delete %q: %w", name, err)
	}
	return nil
}

// key maps a view name to its object key.
func (s *S3Store) key(name string) string {
	return s.prefix + name
}
