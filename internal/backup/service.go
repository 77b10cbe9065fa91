package backup

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"shoestock/internal/models"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
)

const (
	FormatJSON = "json"
	FormatBSON = "bson"
)

type Service struct {
	now func() time.Time
}

func NewService() *Service {
	return &Service{now: time.Now}
}

// Backup writes shoes to a timestamped file in outputDir and returns its path.
func (s *Service) Backup(shoes []models.Shoe, outputDir, format string) (string, error) {
	if format != FormatJSON && format != FormatBSON {
		return "", fmt.Errorf("invalid format: %s. Use 'bson' or 'json'", format)
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	timestamp := s.now().Format("20060102_150405")
	filename := fmt.Sprintf("backup_inventory_%s.%s", timestamp, format)
	path := filepath.Join(outputDir, filename)

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create backup file: %w", err)
	}
	defer file.Close()

	if err := Encode(file, shoes, format); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("backup failed: %w", err)
	}

	log.Info().Str("file", path).Int("records", len(shoes)).Msg("backup written")
	return path, nil
}

// Restore reads every record of a backup file. An empty format is detected
// from the file extension.
func (s *Service) Restore(inputFile, format string) ([]models.Shoe, error) {
	if format == "" {
		detected, err := DetectFormat(inputFile)
		if err != nil {
			return nil, err
		}
		format = detected
	}
	if err := s.ValidateBackupFile(inputFile, format); err != nil {
		return nil, fmt.Errorf("backup file validation failed: %w", err)
	}

	file, err := os.Open(inputFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open backup file: %w", err)
	}
	defer file.Close()

	shoes, err := Decode(file, format)
	if err != nil {
		return nil, fmt.Errorf("restore failed: %w", err)
	}

	log.Info().Str("file", inputFile).Int("records", len(shoes)).Msg("backup read")
	return shoes, nil
}

func (s *Service) ValidateBackupFile(filename, expectedFormat string) error {
	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("cannot open backup file: %w", err)
	}
	defer file.Close()

	fileInfo, err := file.Stat()
	if err != nil {
		return fmt.Errorf("cannot get file info: %w", err)
	}

	if fileInfo.Size() == 0 {
		return fmt.Errorf("backup file is empty")
	}

	extension := filepath.Ext(filename)
	if expectedFormat == FormatJSON && extension != ".json" {
		return fmt.Errorf("expected JSON file but got %s", extension)
	}
	if expectedFormat == FormatBSON && extension != ".bson" {
		return fmt.Errorf("expected BSON file but got %s", extension)
	}

	return nil
}

func DetectFormat(filename string) (string, error) {
	switch extension := filepath.Ext(filename); extension {
	case ".bson":
		return FormatBSON, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("cannot auto-detect format from extension '%s'. Please specify --format", extension)
	}
}

// Encode writes one JSON document per line, or concatenated BSON documents.
func Encode(w io.Writer, shoes []models.Shoe, format string) error {
	for _, shoe := range shoes {
		var data []byte
		var err error
		if format == FormatJSON {
			data, err = json.Marshal(shoe)
			if err != nil {
				return fmt.Errorf("failed to marshal to JSON: %w", err)
			}
			data = append(data, '\n')
		} else {
			data, err = bson.Marshal(shoe)
			if err != nil {
				return fmt.Errorf("failed to marshal to BSON: %w", err)
			}
		}

		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("failed to write backup data: %w", err)
		}
	}
	return nil
}

func Decode(r io.Reader, format string) ([]models.Shoe, error) {
	var shoes []models.Shoe

	if format == FormatJSON {
		decoder := json.NewDecoder(r)
		for {
			var shoe models.Shoe
			if err := decoder.Decode(&shoe); err == io.EOF {
				break
			} else if err != nil {
				return nil, fmt.Errorf("failed to decode JSON: %w", err)
			}
			shoes = append(shoes, shoe)
		}
		return shoes, nil
	}

	for {
		raw, err := bson.NewFromIOReader(r)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read BSON data: %w", err)
		}

		var shoe models.Shoe
		if err := bson.Unmarshal(raw, &shoe); err != nil {
			return nil, fmt.Errorf("failed to unmarshal BSON: %w", err)
		}
		shoes = append(shoes, shoe)
	}
	return shoes, nil
}
