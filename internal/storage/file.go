package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/newslens/newslens/internal/types"
)

// Headers is the fixed column order of the delimited export. Downstream
// consumers key on these names.
var Headers = []string{
	"Category",
	"Title",
	"URL",
	"Sentiment",
	"Meta Title",
	"Meta Description",
	"Meta Keywords",
	"Keyword Density",
	"Flesch Reading Ease",
	"Flesch-Kincaid Grade",
	"Content",
}

// --- CSV Storage ---

// CSVStorage writes records as UTF-8 CSV with a header row. The keyword
// density mapping is serialized as JSON text inside its cell so the
// mapping stays readable after export.
type CSVStorage struct {
	path        string
	file        *os.File
	writer      *csv.Writer
	wroteHeader bool
	mu          sync.Mutex
	count       int
	logger      *slog.Logger
}

// NewCSVStorage creates a new CSV file storage.
func NewCSVStorage(outputPath string, logger *slog.Logger) (*CSVStorage, error) {
	dir := filepath.Dir(outputPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return nil, fmt.Errorf("create output file: %w", err)
	}

	return &CSVStorage{
		path:   outputPath,
		file:   f,
		writer: csv.NewWriter(f),
		logger: logger.With("component", "csv_storage"),
	}, nil
}

func (s *CSVStorage) Name() string { return "csv" }

func (s *CSVStorage) Store(records []types.ArticleRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.wroteHeader {
		if err := s.writer.Write(Headers); err != nil {
			return fmt.Errorf("write CSV header: %w", err)
		}
		s.wroteHeader = true
	}

	for _, r := range records {
		row, err := Row(r)
		if err != nil {
			return err
		}
		if err := s.writer.Write(row); err != nil {
			return fmt.Errorf("write CSV row: %w", err)
		}
		s.count++
	}

	s.writer.Flush()
	return s.writer.Error()
}

func (s *CSVStorage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.writer != nil {
		s.writer.Flush()
	}
	s.logger.Info("CSV written", "path", s.path, "records", s.count)
	if s.file != nil {
		return s.file.Close()
	}
	return nil
}

// Row flattens one record into the fixed column order.
func Row(r types.ArticleRecord) ([]string, error) {
	density, err := json.Marshal(r.KeywordDensity)
	if err != nil {
		return nil, fmt.Errorf("marshal keyword density: %w", err)
	}
	return []string{
		r.Category,
		r.Title,
		r.URL,
		strconv.FormatFloat(r.Sentiment, 'g', -1, 64),
		r.MetaTitle,
		r.MetaDescription,
		r.MetaKeywords,
		string(density),
		r.Readability.EaseString(),
		r.Readability.GradeString(),
		r.Content,
	}, nil
}

// --- JSON Storage ---

// JSONStorage buffers records and writes one indented JSON array on
// Close.
type JSONStorage struct {
	path    string
	records []types.ArticleRecord
	mu      sync.Mutex
	logger  *slog.Logger
}

// NewJSONStorage creates a new JSON file storage.
func NewJSONStorage(outputPath string, logger *slog.Logger) (*JSONStorage, error) {
	dir := filepath.Dir(outputPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	return &JSONStorage{
		path:    outputPath,
		records: make([]types.ArticleRecord, 0),
		logger:  logger.With("component", "json_storage"),
	}, nil
}

func (s *JSONStorage) Name() string { return "json" }

func (s *JSONStorage) Store(records []types.ArticleRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, records...)
	s.logger.Debug("records buffered", "count", len(records), "total", len(s.records))
	return nil
}

func (s *JSONStorage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s.records); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}

	s.logger.Info("JSON written", "path", s.path, "records", len(s.records))
	return nil
}

// --- JSONL Storage ---

// JSONLStorage writes records as newline-delimited JSON (one object per
// line, streaming).
type JSONLStorage struct {
	path   string
	file   *os.File
	enc    *json.Encoder
	mu     sync.Mutex
	count  int
	logger *slog.Logger
}

// NewJSONLStorage creates a new JSONL file storage.
func NewJSONLStorage(outputPath string, logger *slog.Logger) (*JSONLStorage, error) {
	dir := filepath.Dir(outputPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return nil, fmt.Errorf("create output file: %w", err)
	}

	return &JSONLStorage{
		path:   outputPath,
		file:   f,
		enc:    json.NewEncoder(f),
		logger: logger.With("component", "jsonl_storage"),
	}, nil
}

func (s *JSONLStorage) Name() string { return "jsonl" }

func (s *JSONLStorage) Store(records []types.ArticleRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range records {
		if err := s.enc.Encode(r); err != nil {
			return fmt.Errorf("encode JSONL: %w", err)
		}
		s.count++
	}
	return nil
}

func (s *JSONLStorage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.logger.Info("JSONL written", "path", s.path, "records", s.count)
	if s.file != nil {
		return s.file.Close()
	}
	return nil
}

// NewFileStorage creates the appropriate file-based storage by type.
func NewFileStorage(storageType, outputDir string, logger *slog.Logger) (Storage, error) {
	switch storageType {
	case "csv":
		return NewCSVStorage(filepath.Join(outputDir, "articles.csv"), logger)
	case "json":
		return NewJSONStorage(filepath.Join(outputDir, "articles.json"), logger)
	case "jsonl":
		return NewJSONLStorage(filepath.Join(outputDir, "articles.jsonl"), logger)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", storageType)
	}
}
