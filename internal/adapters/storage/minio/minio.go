package minio

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"partflow/internal/config"
	"partflow/internal/core/domain"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Adapter implements the blob store gateway on MinIO's multipart Core API
type Adapter struct {
	client *minio.Client
	core   *minio.Core
	config config.MinioConfig
	logger *slog.Logger
}

// NewAdapter returns Adapter
func NewAdapter(ctx context.Context, cfg config.MinioConfig, logger *slog.Logger) (*Adapter, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.BucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to check if bucket exists: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.BucketName, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	core := minio.Core{Client: client}
	return &Adapter{client: client, config: cfg, core: &core, logger: logger}, nil
}

// StartUpload opens a new remote multipart upload for the key
func (a *Adapter) StartUpload(ctx context.Context, key string, contentType string) (string, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	opts := minio.PutObjectOptions{ContentType: contentType}

	uploadID, err := a.core.NewMultipartUpload(ctx, a.config.BucketName, key, opts)
	if err != nil {
		return "", a.remoteErr("failed to init multipart upload", err)
	}
	return uploadID, nil
}

// PresignPart mints a time-bounded URL authorizing the transfer of one part
func (a *Adapter) PresignPart(ctx context.Context, key string, uploadID string, partNumber int, contentLength int64) (string, *time.Time, error) {
	reqParams := make(url.Values)
	reqParams.Set("partNumber", fmt.Sprintf("%d", partNumber))
	reqParams.Set("uploadId", uploadID)

	reqHeaders := make(http.Header)
	if contentLength > 0 {
		reqHeaders.Set("Content-Length", fmt.Sprintf("%d", contentLength))
	}

	presignedURL, err := a.core.PresignHeader(ctx, http.MethodPut, a.config.BucketName, key, a.config.PartPresignedDuration, reqParams, reqHeaders)
	if err != nil {
		return "", nil, a.remoteErr("failed to presign part", err)
	}

	expiresAt := time.Now().Add(a.config.PartPresignedDuration)
	return presignedURL.String(), &expiresAt, nil
}

// Complete instructs the store to assemble the object from exactly the given parts
func (a *Adapter) Complete(ctx context.Context, key string, uploadID string, parts []domain.Part) error {

	completeParts := make([]minio.CompletePart, 0, len(parts))
	for _, part := range parts {
		completeParts = append(completeParts, minio.CompletePart{
			PartNumber: part.PartNumber,
			ETag:       strings.Trim(part.Receipt, "\""),
		})
	}
	// S3 insists on ascending part numbers; order our copy, not the caller's slice
	sort.Slice(completeParts, func(i, j int) bool {
		return completeParts[i].PartNumber < completeParts[j].PartNumber
	})

	_, err := a.core.CompleteMultipartUpload(ctx, a.config.BucketName, key, uploadID, completeParts, minio.PutObjectOptions{})
	if err != nil {
		return a.remoteErr("failed to complete multipart upload", err)
	}
	return nil
}

// Abort discards the multipart upload; an already-gone upload counts as success
func (a *Adapter) Abort(ctx context.Context, key string, uploadID string) error {
	err := a.core.AbortMultipartUpload(ctx, a.config.BucketName, key, uploadID)
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchUpload" {
			return nil
		}
		return a.remoteErr("failed to abort multipart upload", err)
	}

	a.logger.Info("multipart upload aborted",
		slog.String("key", key),
		slog.String("uploadID", uploadID))

	return nil
}

// ListParts returns every part the store currently knows for the upload,
// walking all result pages, ordered by part number
func (a *Adapter) ListParts(ctx context.Context, key string, uploadID string) ([]domain.Part, error) {

	var parts []domain.Part
	marker := 0
	for {
		result, err := a.core.ListObjectParts(ctx, a.config.BucketName, key, uploadID, marker, 1000)
		if err != nil {
			return nil, a.remoteErr("failed to list parts", err)
		}
		for _, part := range result.ObjectParts {
			parts = append(parts, domain.Part{
				PartNumber: part.PartNumber,
				Receipt:    strings.Trim(part.ETag, "\""),
			})
		}
		if !result.IsTruncated {
			break
		}
		marker = result.NextPartNumberMarker
	}

	sort.Slice(parts, func(i, j int) bool {
		return parts[i].PartNumber < parts[j].PartNumber
	})
	return parts, nil
}

// remoteErr folds a minio failure into the gateway error taxonomy:
// no response code means the store was unreachable, part bookkeeping
// codes mean the submitted parts disagree with the store, anything else
// is a rejection.
func (a *Adapter) remoteErr(msg string, err error) error {
	resp := minio.ToErrorResponse(err)
	switch resp.Code {
	case "":
		return fmt.Errorf("%w: %s: %v", domain.ErrRemoteUnavailable, msg, err)
	case "InvalidPart", "InvalidPartOrder", "NoSuchUpload", "EntityTooSmall":
		return fmt.Errorf("%w: %s: %v", domain.ErrPartMismatch, msg, err)
	default:
		return fmt.Errorf("%w: %s: %v", domain.ErrRemoteRejected, msg, err)
	}
}
