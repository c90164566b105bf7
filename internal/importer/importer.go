package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"webstore/internal/domain"

	"github.com/shopspring/decimal"
)

type ItemWriter interface {
	Create(ctx context.Context, it domain.Item) (*domain.Item, error)
}

// CSVImporter reads catalog CSV files and inserts items. The file must have a
// header row naming at least the name and price columns.
type CSVImporter struct {
	reader   *csv.Reader
	itemRepo ItemWriter
}

func NewCSVImporter(r io.Reader, repo ItemWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader:   csvr,
		itemRepo: repo,
	}
}

// Run parses CSV rows and inserts one item per row, returning the number of
// items imported.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)
	if _, ok := index["name"]; !ok {
		return 0, errors.New("missing name column")
	}
	if _, ok := index["price"]; !ok {
		return 0, errors.New("missing price column")
	}

	imported := 0
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}

		it, err := parseRow(record, index)
		if err != nil {
			return imported, fmt.Errorf("row %d: %w", imported+1, err)
		}
		if it == nil {
			continue
		}

		if _, err := i.itemRepo.Create(ctx, *it); err != nil {
			return imported, fmt.Errorf("insert item %s: %w", it.Name, err)
		}
		imported++
	}

	return imported, nil
}

func headerIndex(headers []string) map[string]int {
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return index
}

func parseRow(record []string, index map[string]int) (*domain.Item, error) {
	name := strings.TrimSpace(field(record, index, "name"))
	if name == "" {
		return nil, nil
	}

	rawPrice := strings.TrimSpace(field(record, index, "price"))
	price, err := decimal.NewFromString(rawPrice)
	if err != nil {
		return nil, fmt.Errorf("parse price %q: %w", rawPrice, err)
	}
	if price.IsNegative() {
		return nil, fmt.Errorf("negative price %q", rawPrice)
	}

	return &domain.Item{
		Name:        name,
		Description: strings.TrimSpace(field(record, index, "description")),
		Price:       price,
	}, nil
}

func field(record []string, index map[string]int, name string) string {
	i, ok := index[name]
	if !ok || i >= len(record) {
		return ""
	}
	return record[i]
}
