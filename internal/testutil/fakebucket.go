package testutil

import (
	"context"
	"errors"
	"io"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/RobertLJordan/ak-energy-admin/internal/s3api"
)

// FakeBucket is a stateful in-memory implementation of the S3API subset.
// It lets batch-operation tests assert on the final object set instead of
// scripting every call, while keeping S3 semantics: flat keyspace, prefix
// listing in lexicographic order, idempotent deletes, and paginated listing
// honoring MaxKeys and ContinuationToken.
type FakeBucket struct {
	Name    string
	objects map[string]fakeObject
}

type fakeObject struct {
	data        []byte
	contentType string
}

// NewFakeBucket creates an empty fake bucket with the given name.
func NewFakeBucket(name string) *FakeBucket {
	return &FakeBucket{
		Name:    name,
		objects: make(map[string]fakeObject),
	}
}

// Seed stores an object directly, bypassing PutObject.
func (f *FakeBucket) Seed(key, contentType string, data []byte) {
	f.objects[key] = fakeObject{data: data, contentType: contentType}
}

// Keys returns all object keys in lexicographic order.
func (f *FakeBucket) Keys() []string {
	keys := make([]string, 0, len(f.objects))
	for k := range f.objects {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Data returns the payload stored under key, or nil if absent.
func (f *FakeBucket) Data(key string) []byte {
	return f.objects[key].data
}

// ContentType returns the content type stored under key.
func (f *FakeBucket) ContentType(key string) string {
	return f.objects[key].contentType
}

// PutObject stores the object body and content type under the given key.
func (f *FakeBucket) PutObject(
	_ context.Context,
	params *s3.PutObjectInput,
	_ ...func(*s3.Options),
) (*s3.PutObjectOutput, error) {
	data, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	f.objects[aws.ToString(params.Key)] = fakeObject{
		data:        data,
		contentType: aws.ToString(params.ContentType),
	}
	return &s3.PutObjectOutput{ETag: aws.String("fake-etag")}, nil
}

// ListObjectsV2 lists keys with the requested prefix in lexicographic order,
// paginating by MaxKeys with the next key as continuation token.
func (f *FakeBucket) ListObjectsV2(
	_ context.Context,
	params *s3.ListObjectsV2Input,
	_ ...func(*s3.Options),
) (*s3.ListObjectsV2Output, error) {
	prefix := aws.ToString(params.Prefix)
	start := aws.ToString(params.ContinuationToken)
	maxKeys := int(aws.ToInt32(params.MaxKeys))
	if maxKeys <= 0 {
		maxKeys = 1000
	}

	var matched []string
	for _, key := range f.Keys() {
		if strings.HasPrefix(key, prefix) && key >= start {
			matched = append(matched, key)
		}
	}

	out := &s3.ListObjectsV2Output{IsTruncated: aws.Bool(false)}
	for i, key := range matched {
		if i == maxKeys {
			out.IsTruncated = aws.Bool(true)
			out.NextContinuationToken = aws.String(key)
			break
		}
		out.Contents = append(out.Contents, types.Object{
			Key:  aws.String(key),
			Size: aws.Int64(int64(len(f.objects[key].data))),
		})
	}
	return out, nil
}

// DeleteObject removes the key; deleting a missing key is not an error.
func (f *FakeBucket) DeleteObject(
	_ context.Context,
	params *s3.DeleteObjectInput,
	_ ...func(*s3.Options),
) (*s3.DeleteObjectOutput, error) {
	delete(f.objects, aws.ToString(params.Key))
	return &s3.DeleteObjectOutput{}, nil
}

// CopyObject copies within the fake bucket. CopySource is "bucket/key".
func (f *FakeBucket) CopyObject(
	_ context.Context,
	params *s3.CopyObjectInput,
	_ ...func(*s3.Options),
) (*s3.CopyObjectOutput, error) {
	src := aws.ToString(params.CopySource)
	srcKey, ok := strings.CutPrefix(src, f.Name+"/")
	if !ok {
		return nil, errors.New("fakebucket: copy source outside bucket: " + src)
	}
	obj, ok := f.objects[srcKey]
	if !ok {
		return nil, errors.New("NoSuchKey: " + srcKey)
	}
	f.objects[aws.ToString(params.Key)] = obj
	return &s3.CopyObjectOutput{}, nil
}

// HeadObject reports metadata for the key or a NotFound error.
func (f *FakeBucket) HeadObject(
	_ context.Context,
	params *s3.HeadObjectInput,
	_ ...func(*s3.Options),
) (*s3.HeadObjectOutput, error) {
	key := aws.ToString(params.Key)
	obj, ok := f.objects[key]
	if !ok {
		return nil, errors.New("NotFound: " + key)
	}
	return &s3.HeadObjectOutput{
		ContentType:   aws.String(obj.contentType),
		ContentLength: aws.Int64(int64(len(obj.data))),
	}, nil
}

// Ensure FakeBucket implements the s3api.S3API interface
var _ s3api.S3API = (*FakeBucket)(nil)
