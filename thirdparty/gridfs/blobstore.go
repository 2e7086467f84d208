// Package gridfs stores listing images in a MongoDB GridFS bucket.
package gridfs

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/prettyirrelevant/ecx-property-hub-hackathon/model"
	"github.com/segmentio/ksuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned by Open for an unknown key.
var ErrNotFound = errors.New("blob not found")

// BlobStore keys every file by a KSUID, which doubles as the GridFS file id.
type BlobStore struct {
	bucket  *gridfs.Bucket
	baseURL string
}

func NewBlobStore(db *mongo.Database, bucketName, publicBaseURL string) (*BlobStore, error) {
	bucket, err := gridfs.NewBucket(db, options.GridFSBucket().SetName(bucketName))
	if err != nil {
		return nil, err
	}
	return &BlobStore{bucket: bucket, baseURL: strings.TrimRight(publicBaseURL, "/")}, nil
}

func (s *BlobStore) Store(ctx context.Context, filename string, data []byte) (model.StoredBlob, error) {
	if err := ctx.Err(); err != nil {
		return model.StoredBlob{}, err
	}

	key := ksuid.New().String()
	opts := options.GridFSUpload().SetMetadata(bson.D{
		{Key: "content_type", Value: http.DetectContentType(data)},
		{Key: "original_name", Value: filename},
	})
	if err := s.bucket.UploadFromStreamWithID(key, filename, bytes.NewReader(data), opts); err != nil {
		return model.StoredBlob{}, err
	}
	return model.StoredBlob{Key: key, URL: PublicURL(s.baseURL, key)}, nil
}

// Delete removes the blob. Deleting an unknown key is not an error.
func (s *BlobStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := s.bucket.Delete(key)
	if errors.Is(err, gridfs.ErrFileNotFound) {
		return nil
	}
	return err
}

// Open streams a stored blob together with its detected content type.
func (s *BlobStore) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}
	stream, err := s.bucket.OpenDownloadStream(key)
	if err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return nil, "", ErrNotFound
		}
		return nil, "", err
	}

	contentType := "application/octet-stream"
	if file := stream.GetFile(); file != nil && file.Metadata != nil {
		if ct, ok := file.Metadata.Lookup("content_type").StringValueOK(); ok {
			contentType = ct
		}
	}
	return stream, contentType, nil
}

// PublicURL is where the transport serves the blob with the given key.
func PublicURL(baseURL, key string) string {
	return baseURL + "/images/" + key
}
