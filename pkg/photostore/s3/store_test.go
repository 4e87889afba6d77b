package s3_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"midcar/pkg/domain"
	"midcar/pkg/photostore"
	photos3 "midcar/pkg/photostore/s3"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type fakeUploader struct {
	input *s3manager.UploadInput
	body  string
	err   error
}

func (f *fakeUploader) Upload(in *s3manager.UploadInput, _ ...func(*s3manager.Uploader)) (*s3manager.UploadOutput, error) {
	return f.UploadWithContext(context.Background(), in)
}

func (f *fakeUploader) UploadWithContext(_ aws.Context,
	in *s3manager.UploadInput,
	_ ...func(*s3manager.Uploader)) (*s3manager.UploadOutput, error) {
	f.input = in
	b, _ := io.ReadAll(in.Body)
	f.body = string(b)

	return &s3manager.UploadOutput{}, f.err
}

type fakeS3 struct {
	s3iface.S3API

	deleted []string
	err     error
}

func (f *fakeS3) DeleteObjectWithContext(_ aws.Context,
	in *s3.DeleteObjectInput,
	_ ...request.Option) (*s3.DeleteObjectOutput, error) {
	f.deleted = append(f.deleted, aws.StringValue(in.Key))

	return &s3.DeleteObjectOutput{}, f.err
}

func TestStore_Put(t *testing.T) {
	up := &fakeUploader{}
	store := photos3.NewWithClients("photos", "https://cdn.midcar.test/", up, &fakeS3{})

	url, err := store.Put(context.Background(), "vehicles/a/b.jpg", "image/jpeg", strings.NewReader("jpeg"))
	require.NoError(t, err)
	require.Equal(t, "https://cdn.midcar.test/vehicles/a/b.jpg", url)
	require.Equal(t, "photos", aws.StringValue(up.input.Bucket))
	require.Equal(t, "image/jpeg", aws.StringValue(up.input.ContentType))
	require.Equal(t, "jpeg", up.body)

	up.err = errors.New("denied")
	_, err = store.Put(context.Background(), "k", "image/png", strings.NewReader(""))
	require.ErrorContains(t, err, "denied")
}

func TestStore_Delete(t *testing.T) {
	client := &fakeS3{}
	store := photos3.NewWithClients("photos", "https://cdn", &fakeUploader{}, client)

	require.NoError(t, store.Delete(context.Background(), "vehicles/a/b.jpg"))
	require.Equal(t, []string{"vehicles/a/b.jpg"}, client.deleted)

	client.err = awserr.New(s3.ErrCodeNoSuchKey, "gone", nil)
	require.NoError(t, store.Delete(context.Background(), "x"))

	client.err = awserr.New("AccessDenied", "no", nil)
	require.Error(t, store.Delete(context.Background(), "x"))
}

func TestNew_requiresBucket(t *testing.T) {
	_, err := photos3.New(photos3.Options{Region: "eu-west-1"})
	require.Error(t, err)

	s, err := photos3.New(photos3.Options{
		Bucket:    "photos",
		Region:    "us-east-1",
		Endpoint:  "http://localhost:9000",
		PathStyle: true,
	})
	require.NoError(t, err)
	require.NotNil(t, s)
}

func TestPhotoKey(t *testing.T) {
	id := domain.VehicleID(uuid.MustParse("6f1c1b8e-1f7a-4f5e-9b7c-0a4f3e2d1c0b"))
	a := photostore.PhotoKey(id, ".jpg")
	b := photostore.PhotoKey(id, ".jpg")

	require.True(t, strings.HasPrefix(a, "vehicles/6f1c1b8e-1f7a-4f5e-9b7c-0a4f3e2d1c0b/"))
	require.True(t, strings.HasSuffix(a, ".jpg"))
	require.NotEqual(t, a, b)
}
