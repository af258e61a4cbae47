package compat

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/airecruit/api/internal/domain"
)

type analyzerMock struct {
	output   []byte
	err      error
	lastPath string
	lastDesc string
	calls    int
}

func (m *analyzerMock) Analyze(_ context.Context, resumePath, jobDescription string) ([]byte, error) {
	m.calls++
	m.lastPath = resumePath
	m.lastDesc = jobDescription
	return m.output, m.err
}

type reportRepoMock struct {
	reports []domain.CompatibilityReport
	err     error
}

func (m *reportRepoMock) CreateReport(_ context.Context, report *domain.CompatibilityReport) error {
	if m.err != nil {
		return m.err
	}
	m.reports = append(m.reports, *report)
	return nil
}

func (m *reportRepoMock) ListReportsByUser(_ context.Context, userID string, limit int) ([]domain.CompatibilityReport, error) {
	out := make([]domain.CompatibilityReport, 0)
	for _, report := range m.reports {
		if report.UserID == userID {
			out = append(out, report)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func pdfUpload(content string) *Upload {
	return &Upload{
		Reader:      strings.NewReader(content),
		Filename:    "resume.pdf",
		Size:        int64(len(content)),
		ContentType: "application/pdf",
	}
}

func assertDirEmpty(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return
		}
		t.Fatalf("read upload dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty upload dir, found %d entries", len(entries))
	}
}

func TestSubmitMissingResume(t *testing.T) {
	dir := t.TempDir()
	analyzer := &analyzerMock{}
	svc := New(&reportRepoMock{}, analyzer, testLogger(), dir, 5<<20)

	if _, err := svc.Submit(context.Background(), nil, "job", ""); !errors.Is(err, ErrMissingResume) {
		t.Fatalf("expected ErrMissingResume, got %v", err)
	}
	if analyzer.calls != 0 {
		t.Fatalf("analyzer should not run without a file")
	}
	assertDirEmpty(t, dir)
}

func TestSubmitRejectsNonPDF(t *testing.T) {
	dir := t.TempDir()
	svc := New(&reportRepoMock{}, &analyzerMock{}, testLogger(), dir, 5<<20)

	upload := pdfUpload("plain text")
	upload.ContentType = "text/plain"
	upload.Filename = "resume.txt"
	if _, err := svc.Submit(context.Background(), upload, "job", ""); !errors.Is(err, ErrUnsupportedFileType) {
		t.Fatalf("expected ErrUnsupportedFileType, got %v", err)
	}
	assertDirEmpty(t, dir)
}

func TestSubmitRejectsOversizedFile(t *testing.T) {
	dir := t.TempDir()
	svc := New(&reportRepoMock{}, &analyzerMock{}, testLogger(), dir, 16)

	upload := pdfUpload(strings.Repeat("a", 64))
	if _, err := svc.Submit(context.Background(), upload, "job", ""); !errors.Is(err, ErrFileTooLarge) {
		t.Fatalf("expected ErrFileTooLarge, got %v", err)
	}
	assertDirEmpty(t, dir)
}

func TestSubmitOversizedStreamCleansUp(t *testing.T) {
	dir := t.TempDir()
	svc := New(&reportRepoMock{}, &analyzerMock{}, testLogger(), dir, 16)

	// Declared size lies; the stream itself exceeds the ceiling.
	upload := pdfUpload(strings.Repeat("a", 64))
	upload.Size = 8
	if _, err := svc.Submit(context.Background(), upload, "job", ""); !errors.Is(err, ErrFileTooLarge) {
		t.Fatalf("expected ErrFileTooLarge, got %v", err)
	}
	assertDirEmpty(t, dir)
}

func TestSubmitMissingJobDescriptionCleansUp(t *testing.T) {
	dir := t.TempDir()
	analyzer := &analyzerMock{}
	svc := New(&reportRepoMock{}, analyzer, testLogger(), dir, 5<<20)

	if _, err := svc.Submit(context.Background(), pdfUpload("%PDF-1.4"), "  ", ""); !errors.Is(err, ErrMissingJobDescription) {
		t.Fatalf("expected ErrMissingJobDescription, got %v", err)
	}
	if analyzer.calls != 0 {
		t.Fatalf("analyzer should not run without a job description")
	}
	assertDirEmpty(t, dir)
}

func TestSubmitAnalyzerFailureCleansUp(t *testing.T) {
	dir := t.TempDir()
	analyzer := &analyzerMock{err: errors.New("exit status 1")}
	svc := New(&reportRepoMock{}, analyzer, testLogger(), dir, 5<<20)

	if _, err := svc.Submit(context.Background(), pdfUpload("%PDF-1.4"), "job", ""); !errors.Is(err, ErrAnalysisFailed) {
		t.Fatalf("expected ErrAnalysisFailed, got %v", err)
	}
	if analyzer.calls != 1 {
		t.Fatalf("expected exactly one analyzer invocation, got %d", analyzer.calls)
	}
	assertDirEmpty(t, dir)
}

func TestSubmitUnparsableOutputCleansUp(t *testing.T) {
	dir := t.TempDir()
	analyzer := &analyzerMock{output: []byte("Traceback (most recent call last)")}
	svc := New(&reportRepoMock{}, analyzer, testLogger(), dir, 5<<20)

	if _, err := svc.Submit(context.Background(), pdfUpload("%PDF-1.4"), "job", ""); !errors.Is(err, ErrAnalysisUnparsable) {
		t.Fatalf("expected ErrAnalysisUnparsable, got %v", err)
	}
	assertDirEmpty(t, dir)
}

func TestSubmitSuccess(t *testing.T) {
	dir := t.TempDir()
	analyzer := &analyzerMock{output: []byte(`{"score": 87, "strengths": ["go"]}`)}
	reports := &reportRepoMock{}
	svc := New(reports, analyzer, testLogger(), dir, 5<<20)

	result, err := svc.Submit(context.Background(), pdfUpload("%PDF-1.4"), "Senior Go engineer", "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(result), `"score": 87`) {
		t.Fatalf("expected analyzer payload returned verbatim, got %s", result)
	}
	if analyzer.lastDesc != "Senior Go engineer" {
		t.Fatalf("unexpected description passed to analyzer: %q", analyzer.lastDesc)
	}
	if filepath.Ext(analyzer.lastPath) != ".pdf" {
		t.Fatalf("staged file should keep original extension, got %q", analyzer.lastPath)
	}
	if filepath.Dir(analyzer.lastPath) != dir {
		t.Fatalf("staged file outside upload dir: %q", analyzer.lastPath)
	}
	assertDirEmpty(t, dir)

	if len(reports.reports) != 1 {
		t.Fatalf("expected one recorded report, got %d", len(reports.reports))
	}
	report := reports.reports[0]
	if report.UserID != "user-1" || report.Score != 87 || report.ResumeName != "resume.pdf" {
		t.Fatalf("unexpected report: %+v", report)
	}
}

func TestSubmitRecordFailureDoesNotFailRequest(t *testing.T) {
	dir := t.TempDir()
	analyzer := &analyzerMock{output: []byte(`{"score": 10}`)}
	reports := &reportRepoMock{err: errors.New("db down")}
	svc := New(reports, analyzer, testLogger(), dir, 5<<20)

	if _, err := svc.Submit(context.Background(), pdfUpload("%PDF-1.4"), "job", "user-1"); err != nil {
		t.Fatalf("persistence failure should not surface: %v", err)
	}
	assertDirEmpty(t, dir)
}

func TestHistoryDefaultsLimit(t *testing.T) {
	reports := &reportRepoMock{}
	for i := 0; i < 30; i++ {
		reports.reports = append(reports.reports, domain.CompatibilityReport{UserID: "user-1"})
	}
	svc := New(reports, &analyzerMock{}, testLogger(), t.TempDir(), 5<<20)

	out, err := svc.History(context.Background(), "user-1", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 20 {
		t.Fatalf("expected default limit of 20, got %d", len(out))
	}
}
