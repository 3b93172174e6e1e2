package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/avGenie/go-coffee-settlement/internal/app/converter"
	"github.com/avGenie/go-coffee-settlement/internal/app/entity"
	"github.com/avGenie/go-coffee-settlement/internal/app/model"
	err_storage "github.com/avGenie/go-coffee-settlement/internal/app/storage/api/errors"
	"github.com/avGenie/go-coffee-settlement/internal/app/validator"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatAuto Format = ``
	FormatJSON Format = `json`
	FormatYAML Format = `yaml`
)

func ParseFormat(raw string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "auto":
		return FormatAuto, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return FormatAuto, fmt.Errorf("%w: %s", err_storage.ErrUnsupportedFormat, raw)
	}
}

// FileStorage reads settlement sources from local files.
// With FormatAuto the decoder is picked by file extension.
type FileStorage struct {
	format Format
}

func NewFileStorage(format Format) *FileStorage {
	return &FileStorage{
		format: format,
	}
}

func (s *FileStorage) LoadPayments(ctx context.Context, path string) (entity.Payments, error) {
	var payments model.Payments
	err := s.decode(ctx, path, &payments)
	if err != nil {
		return nil, err
	}

	for i, payment := range payments {
		if !validator.Payment(payment) {
			return nil, fmt.Errorf("%w: payment #%d in %s has empty user", err_storage.ErrInvalidRecord, i, path)
		}
	}

	return converter.ConvertPaymentsToEntity(payments), nil
}

func (s *FileStorage) LoadProducts(ctx context.Context, path string) (entity.Products, error) {
	var products model.Products
	err := s.decode(ctx, path, &products)
	if err != nil {
		return nil, err
	}

	for i, product := range products {
		if !validator.Product(product) {
			return nil, fmt.Errorf("%w: product #%d in %s has empty drink name or prices", err_storage.ErrInvalidRecord, i, path)
		}
	}

	return converter.ConvertProductsToEntity(products), nil
}

func (s *FileStorage) LoadOrders(ctx context.Context, path string) (entity.Orders, error) {
	var orders model.Orders
	err := s.decode(ctx, path, &orders)
	if err != nil {
		return nil, err
	}

	for i, order := range orders {
		if !validator.Order(order) {
			return nil, fmt.Errorf("%w: order #%d in %s has empty user, drink or size", err_storage.ErrInvalidRecord, i, path)
		}
	}

	return converter.ConvertOrdersToEntity(orders), nil
}

func (s *FileStorage) decode(ctx context.Context, path string, target any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	format, err := s.sourceFormat(path)
	if err != nil {
		return err
	}

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", err_storage.ErrSourceNotFound, path)
		}

		return fmt.Errorf("error while opening source file %s: %w", path, err)
	}
	defer file.Close()

	zap.L().Debug("decoding source file", zap.String("path", path), zap.String("format", string(format)))

	switch format {
	case FormatYAML:
		err = decodeYAML(file, target)
	default:
		err = decodeJSON(file, target)
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", err_storage.ErrMalformedSource, path, err)
	}

	return nil
}

func (s *FileStorage) sourceFormat(path string) (Format, error) {
	if s.format != FormatAuto {
		return s.format, nil
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return FormatAuto, fmt.Errorf("%w: %s", err_storage.ErrUnsupportedFormat, path)
	}
}

func decodeJSON(r io.Reader, target any) error {
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()

	err := decoder.Decode(target)
	if err != nil {
		return err
	}

	if decoder.More() {
		return errors.New("unexpected data after top-level value")
	}

	return nil
}

func decodeYAML(r io.Reader, target any) error {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	return decoder.Decode(target)
}
