package admin

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gabriel-vasile/mimetype"

	"github.com/RobertLJordan/ak-energy-admin/contenttype"
	adminerrors "github.com/RobertLJordan/ak-energy-admin/errors"
	"github.com/RobertLJordan/ak-energy-admin/internal/keyutil"
)

// UploadFile uploads one local file to the bucket under destKey, with the
// content type resolved from the file's extension.
//
// Returns an error wrapping ErrNotFound if the local file cannot be read and
// ErrTransfer if the remote write is rejected.
//
// Example:
//
//	err := client.UploadFile(ctx, "output/prices.csv", "data/prices.csv")
func (c *Client) UploadFile(ctx context.Context, localPath, destKey string) error {
	if err := keyutil.ValidateObjectKey(destKey); err != nil {
		return err
	}

	info, err := c.fs.Stat(localPath)
	if err != nil {
		return adminerrors.NewObjectError("uploadFile", c.bucket, localPath, adminerrors.ErrNotFound).
			WithMessage(err.Error())
	}
	if info.IsDir() {
		return adminerrors.NewObjectError("uploadFile", c.bucket, localPath, adminerrors.ErrInvalidInput).
			WithMessage("path points to a directory, not a file")
	}

	file, err := c.fs.Open(localPath)
	if err != nil {
		return adminerrors.NewObjectError("uploadFile", c.bucket, localPath, adminerrors.ErrNotFound).
			WithMessage(err.Error())
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return adminerrors.NewObjectError("uploadFile", c.bucket, localPath, err)
	}

	ct := c.resolveContentType(localPath, data)

	input := &s3.PutObjectInput{
		Bucket:        aws.String(c.bucket),
		Key:           aws.String(destKey),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(ct),
		ContentLength: aws.Int64(int64(len(data))),
	}
	if _, err := c.s3Client.PutObject(ctx, input); err != nil {
		return transferError("uploadFile", c.bucket, destKey, err)
	}

	c.log.Info().
		Str("file", localPath).
		Str("key", destKey).
		Str("content_type", ct).
		Msgf("uploaded %s with content type %s", localPath, ct)
	return nil
}

// ClearPrefix deletes every object whose key starts with prefix. Leading and
// trailing slashes on prefix are normalized away first. One log line is
// emitted per deleted key. Clearing an already-empty prefix is a no-op.
func (c *Client) ClearPrefix(ctx context.Context, prefix string) error {
	prefix = keyutil.NormalizePrefix(prefix)

	keys, err := c.listKeys(ctx, prefix)
	if err != nil {
		return err
	}
	for _, key := range keys {
		c.log.Info().Str("key", key).Msgf("deleting %s", key)
		input := &s3.DeleteObjectInput{
			Bucket: aws.String(c.bucket),
			Key:    aws.String(key),
		}
		if _, err := c.s3Client.DeleteObject(ctx, input); err != nil {
			return transferError("clearPrefix", c.bucket, key, err)
		}
	}
	return nil
}

// UploadDir uploads the immediate regular files of localDir to the bucket
// under destPrefix. Subdirectories are skipped with a warning and are never
// descended into; dot-prefixed files are skipped silently. When clearFirst is
// true the destination prefix is cleared before uploading.
//
// Upload order follows the directory listing and is not guaranteed stable
// across platforms.
func (c *Client) UploadDir(ctx context.Context, localDir, destPrefix string, clearFirst bool) error {
	destPrefix = keyutil.NormalizePrefix(destPrefix)

	if clearFirst {
		if err := c.ClearPrefix(ctx, destPrefix); err != nil {
			return err
		}
	}

	entries, err := c.fs.ReadDir(localDir)
	if err != nil {
		return adminerrors.NewObjectError("uploadDir", c.bucket, localDir, adminerrors.ErrNotFound).
			WithMessage(err.Error())
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() {
			c.log.Warn().Str("dir", name).Msgf("skipping subdirectory %s", name)
			continue
		}
		if strings.HasPrefix(name, ".") {
			continue
		}
		localPath := joinPath(localDir, name)
		if err := c.UploadFile(ctx, localPath, keyutil.Join(destPrefix, name)); err != nil {
			return err
		}
	}
	return nil
}

// MovePrefix moves every object under srcPrefix to destPrefix by copying each
// object and then deleting the original. The bare prefix-marker object, if
// present, is skipped. When clearDestFirst is true the destination prefix is
// cleared before moving. One log line is emitted per object copied.
//
// The operation is sequential and non-transactional: a failure part way
// through leaves objects already moved at the destination and unprocessed
// objects at the source. Re-running the same move converges, because copies
// overwrite and deletes are idempotent.
func (c *Client) MovePrefix(ctx context.Context, srcPrefix, destPrefix string, clearDestFirst bool) error {
	srcPrefix = keyutil.NormalizePrefix(srcPrefix)
	destPrefix = keyutil.NormalizePrefix(destPrefix)

	if srcPrefix == destPrefix {
		return adminerrors.NewObjectError("movePrefix", c.bucket, srcPrefix, adminerrors.ErrInvalidInput).
			WithMessage("source and destination prefixes are the same")
	}

	if clearDestFirst {
		if err := c.ClearPrefix(ctx, destPrefix); err != nil {
			return err
		}
	}

	keys, err := c.listKeys(ctx, srcPrefix)
	if err != nil {
		return err
	}

	for _, key := range keys {
		// A bare "folder" object created by console tools carries the
		// prefix itself as its key; moving it would produce a stray copy.
		if keyutil.NormalizePrefix(key) == srcPrefix {
			continue
		}
		destKey := keyutil.Join(destPrefix, keyutil.Base(key))
		src := c.bucket + "/" + key

		c.log.Info().Str("src", src).Str("dest", destKey).Msgf("copying %s", src)

		copyInput := &s3.CopyObjectInput{
			Bucket:     aws.String(c.bucket),
			Key:        aws.String(destKey),
			CopySource: aws.String(src),
		}
		if _, err := c.s3Client.CopyObject(ctx, copyInput); err != nil {
			return transferError("movePrefix", c.bucket, destKey, err).
				WithMessage("failed to copy from " + src)
		}

		deleteInput := &s3.DeleteObjectInput{
			Bucket: aws.String(c.bucket),
			Key:    aws.String(key),
		}
		if _, err := c.s3Client.DeleteObject(ctx, deleteInput); err != nil {
			return transferError("movePrefix", c.bucket, key, err).
				WithMessage("failed to delete original after copy")
		}
	}
	return nil
}

// ListPrefix returns the keys of every object under the normalized prefix.
// Pagination is handled internally; keys arrive in the listing order of the
// backend (lexicographic for S3).
func (c *Client) ListPrefix(ctx context.Context, prefix string) ([]string, error) {
	return c.listKeys(ctx, keyutil.NormalizePrefix(prefix))
}

// Exists checks whether an object exists under key using a HEAD request.
// A missing object returns (false, nil); other failures return an error.
func (c *Client) Exists(ctx context.Context, key string) (bool, error) {
	if err := keyutil.ValidateObjectKey(key); err != nil {
		return false, err
	}

	input := &s3.HeadObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	}
	if _, err := c.s3Client.HeadObject(ctx, input); err != nil {
		errMsg := err.Error()
		if strings.Contains(errMsg, "NotFound") || strings.Contains(errMsg, "NoSuchKey") {
			return false, nil
		}
		return false, transferError("exists", c.bucket, key, err)
	}
	return true, nil
}

// listKeys pages through ListObjectsV2 and returns every key under prefix.
func (c *Client) listKeys(ctx context.Context, prefix string) ([]string, error) {
	var keys []string
	var continuationToken *string

	for {
		input := &s3.ListObjectsV2Input{
			Bucket:            aws.String(c.bucket),
			Prefix:            aws.String(prefix),
			MaxKeys:           aws.Int32(1000),
			ContinuationToken: continuationToken,
		}
		result, err := c.s3Client.ListObjectsV2(ctx, input)
		if err != nil {
			return nil, transferError("list", c.bucket, prefix, err)
		}
		for _, obj := range result.Contents {
			keys = append(keys, aws.ToString(obj.Key))
		}
		if !aws.ToBool(result.IsTruncated) {
			return keys, nil
		}
		continuationToken = result.NextContinuationToken
	}
}

// resolveContentType applies the fixed extension table, optionally falling
// back to content sniffing for unmapped extensions when enabled.
func (c *Client) resolveContentType(localPath string, data []byte) string {
	if contenttype.Known(localPath) {
		return contenttype.Resolve(localPath)
	}
	if c.sniff && len(data) > 0 {
		if mt := mimetype.Detect(data); mt != nil {
			return mt.String()
		}
	}
	return contenttype.Resolve(localPath)
}

// transferError wraps a failed remote call as an ErrTransfer with the SDK
// error text preserved.
func transferError(op, bucket, key string, err error) *adminerrors.Error {
	return adminerrors.NewObjectError(op, bucket, key, adminerrors.ErrTransfer).
		WithMessage(err.Error())
}

// joinPath joins a directory and entry name with a forward slash, matching
// the path convention of the filesystem abstraction.
func joinPath(dir, name string) string {
	if dir == "" {
		return name
	}
	return strings.TrimSuffix(dir, "/") + "/" + name
}
