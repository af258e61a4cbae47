package compat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"github.com/airecruit/api/internal/domain"
	"github.com/airecruit/api/internal/repository"
)

// Validation and processing failures surfaced by Submit.
var (
	ErrMissingResume         = errors.New("resume file is required")
	ErrUnsupportedFileType   = errors.New("only PDF files are allowed")
	ErrFileTooLarge          = errors.New("resume file exceeds the size limit")
	ErrMissingJobDescription = errors.New("job description is required")
	ErrAnalysisFailed        = errors.New("failed to analyze job compatibility")
	ErrAnalysisUnparsable    = errors.New("failed to parse analysis results")
)

const resumeContentType = "application/pdf"

// Upload describes an incoming resume file.
type Upload struct {
	Reader      io.Reader
	Filename    string
	Size        int64
	ContentType string
}

// Service accepts resume submissions, delegates scoring to an Analyzer, and
// guarantees the staged upload never outlives the request.
type Service struct {
	reports  repository.ReportRepository
	analyzer Analyzer
	logger   *slog.Logger

	uploadDir string
	maxBytes  int64
}

// New constructs a Service.
func New(reports repository.ReportRepository, analyzer Analyzer, logger *slog.Logger, uploadDir string, maxBytes int64) Service {
	return Service{
		reports:   reports,
		analyzer:  analyzer,
		logger:    logger,
		uploadDir: uploadDir,
		maxBytes:  maxBytes,
	}
}

// Submit validates and stages the upload, runs the analyzer exactly once, and
// returns its JSON verdict. userID may be empty for anonymous submissions.
func (s Service) Submit(ctx context.Context, upload *Upload, jobDescription, userID string) (json.RawMessage, error) {
	if upload == nil || upload.Reader == nil {
		return nil, ErrMissingResume
	}
	if upload.ContentType != resumeContentType {
		return nil, ErrUnsupportedFileType
	}
	if s.maxBytes > 0 && upload.Size > s.maxBytes {
		return nil, ErrFileTooLarge
	}

	path, err := s.stage(upload)
	if err != nil {
		return nil, err
	}
	// The upload is transient: it is removed on every exit path from here on.
	defer func() {
		if err := os.Remove(path); err != nil {
			s.logger.Error("failed to remove staged resume", "path", path, "error", err)
		}
	}()

	if strings.TrimSpace(jobDescription) == "" {
		return nil, ErrMissingJobDescription
	}

	output, err := s.analyzer.Analyze(ctx, path, jobDescription)
	if err != nil {
		s.logger.Error("resume analysis failed", "path", path, "error", err)
		return nil, ErrAnalysisFailed
	}

	trimmed := json.RawMessage(strings.TrimSpace(string(output)))
	var verdict map[string]any
	if err := json.Unmarshal(trimmed, &verdict); err != nil {
		s.logger.Error("analyzer output is not valid JSON", "error", err, "output", string(output))
		return nil, ErrAnalysisUnparsable
	}

	s.record(ctx, upload.Filename, jobDescription, trimmed, verdict, userID)
	return trimmed, nil
}

// History returns the most recent reports submitted by the user.
func (s Service) History(ctx context.Context, userID string, limit int) ([]domain.CompatibilityReport, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.reports.ListReportsByUser(ctx, userID, limit)
}

// stage writes the upload to the spool directory under a collision-resistant
// name that preserves the original extension.
func (s Service) stage(upload *Upload) (string, error) {
	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	ext := strings.ToLower(filepath.Ext(upload.Filename))
	if ext == "" {
		ext = ".pdf"
	}
	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString(), ext)
	path := filepath.Join(s.uploadDir, name)

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create staged file: %w", err)
	}

	reader := upload.Reader
	if s.maxBytes > 0 {
		reader = io.LimitReader(reader, s.maxBytes+1)
	}
	written, err := io.Copy(file, reader)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("write staged file: %w", err)
	}
	if s.maxBytes > 0 && written > s.maxBytes {
		_ = os.Remove(path)
		return "", ErrFileTooLarge
	}
	return path, nil
}

// record persists the report best-effort; a storage failure must not fail a
// submission that already has a verdict.
func (s Service) record(ctx context.Context, resumeName, jobDescription string, result json.RawMessage, verdict map[string]any, userID string) {
	if s.reports == nil {
		return
	}
	report := &domain.CompatibilityReport{
		ID:             uuid.NewString(),
		UserID:         userID,
		ResumeName:     resumeName,
		JobDescription: jobDescription,
		Result:         result,
		CreatedAt:      time.Now().UTC(),
	}
	if score, ok := verdict["score"].(float64); ok {
		report.Score = int(score)
	}
	if err := s.reports.CreateReport(ctx, report); err != nil {
		s.logger.Error("failed to record compatibility report", "error", err)
	}
}
