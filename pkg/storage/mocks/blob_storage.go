package mocks

import (
	"io"

	"github.com/stretchr/testify/mock"
)

type BlobStorage struct {
	mock.Mock
}

func (m *BlobStorage) Save(filename string, reader io.Reader) (string, error) {
	args := m.Called(filename, reader)
	return args.String(0), args.Error(1)
}

func (m *BlobStorage) Delete(publicPath string) error {
	args := m.Called(publicPath)
	return args.Error(0)
}
