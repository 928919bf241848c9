package storage

import "io"

// BlobStorage stores uploaded photo files. Save returns the public
// path the blob is reachable under; Delete takes that same path back.
type BlobStorage interface {
	Save(filename string, reader io.Reader) (string, error)
	Delete(publicPath string) error
}
