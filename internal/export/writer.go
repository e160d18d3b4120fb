// Package export writes a gallery listing snapshot to a dataset file,
// either Parquet or JSONL.
package export

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/pixstash/pixstash/internal/models"
)

// Record is one flattened image row in an exported dataset.
type Record struct {
	ID           string `parquet:"id" json:"id"`
	Title        string `parquet:"title" json:"title"`
	CategoryID   string `parquet:"category_id" json:"category_id"`
	CategoryName string `parquet:"category_name" json:"category_name"`
	ImageURL     string `parquet:"image_url" json:"image_url"`
	StorageKey   string `parquet:"storage_key" json:"storage_key"`
	CreatedAt    string `parquet:"created_at" json:"created_at"`
}

// FromImages flattens image records into export rows.
func FromImages(images []models.Image) []Record {
	records := make([]Record, 0, len(images))
	for _, img := range images {
		records = append(records, Record{
			ID:           img.ID,
			Title:        img.Title,
			CategoryID:   img.Category.ID,
			CategoryName: img.Category.Name,
			ImageURL:     img.ImageURL,
			StorageKey:   img.StorageKey,
			CreatedAt:    img.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return records
}

// Write saves records to path, picking the format from the file extension
// (.parquet, .jsonl, or .json).
func Write(path string, records []Record) error {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".parquet":
		return writeParquet(path, records)
	case ".jsonl", ".json":
		return writeJSONL(path, records)
	default:
		return fmt.Errorf("unsupported file format: %s (supported: .parquet, .jsonl)", ext)
	}
}

func writeJSONL(path string, records []Record) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create dataset file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	for _, record := range records {
		if err := encoder.Encode(record); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}

	slog.Debug("Wrote JSONL dataset", "path", path, "records", len(records))
	return nil
}

func writeParquet(path string, records []Record) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create dataset file: %w", err)
	}
	defer file.Close()

	writer := parquet.NewGenericWriter[Record](file)
	if _, err := writer.Write(records); err != nil {
		writer.Close()
		return fmt.Errorf("failed to write parquet rows: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}

	slog.Debug("Wrote Parquet dataset", "path", path, "records", len(records))
	return nil
}

// Read loads records back from a dataset file. Mostly useful for verifying
// an export.
func Read(path string) ([]Record, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".parquet":
		return readParquet(path)
	case ".jsonl", ".json":
		return readJSONL(path)
	default:
		return nil, fmt.Errorf("unsupported file format: %s (supported: .parquet, .jsonl)", ext)
	}
}

func readJSONL(path string) ([]Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset file: %w", err)
	}
	defer file.Close()

	var records []Record
	decoder := json.NewDecoder(file)
	for decoder.More() {
		var record Record
		if err := decoder.Decode(&record); err != nil {
			return nil, fmt.Errorf("failed to parse record: %w", err)
		}
		records = append(records, record)
	}
	return records, nil
}

func readParquet(path string) ([]Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pf, err := parquet.OpenFile(file, info.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet: %w", err)
	}

	reader := parquet.NewGenericReader[Record](pf)
	defer reader.Close()

	var records []Record
	rows := make([]Record, 128)
	for {
		n, err := reader.Read(rows)
		if n > 0 {
			records = append(records, rows[:n]...)
		}
		if err != nil {
			break
		}
	}
	return records, nil
}
