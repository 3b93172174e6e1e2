package storage

import (
	"fmt"

	"github.com/avGenie/go-coffee-settlement/internal/app/config"
	"github.com/avGenie/go-coffee-settlement/internal/app/storage/api/model"
	storage "github.com/avGenie/go-coffee-settlement/internal/app/storage/file"
)

func InitStorage(config config.Config) (model.Storage, error) {
	format, err := storage.ParseFormat(config.InputFormat)
	if err != nil {
		return nil, fmt.Errorf("error while parsing input format: %w", err)
	}

	return storage.NewFileStorage(format), nil
}
