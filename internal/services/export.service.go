package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"toolcrib/config"
	"toolcrib/internal/types"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/xuri/excelize/v2"
)

const (
	partFilePrefix = ".toolcrib-"
	partFileSuffix = ".part"
)

type SheetSummary struct {
	Name string
	Rows int
}

type WorkbookSummary struct {
	Path   string
	Sheets []SheetSummary
}

type ExportService struct {
	downloadDir string
	log         logger.Logger
}

func NewExportService(cfg config.Config) *ExportService {
	dir := cfg.DownloadDir
	if dir == "" {
		dir = "."
	}

	return &ExportService{
		downloadDir: dir,
		log:         logger.New("exportService"),
	}
}

func (es *ExportService) DownloadDir() string {
	return es.downloadDir
}

// Save writes an export payload as {resource}.pdf or {resource}.xlsx. The
// payload goes to a transient part file first, which is renamed into place
// and never left behind.
func (es *ExportService) Save(
	resource types.ExportResource,
	format types.ExportFormat,
	payload []byte,
) (string, error) {
	log := es.log.Function("Save")

	if err := ensureDirectory(es.downloadDir, log); err != nil {
		return "", err
	}

	part, err := os.CreateTemp(es.downloadDir, partFilePrefix+"*"+partFileSuffix)
	if err != nil {
		return "", log.Err("failed to create part file", err, "directory", es.downloadDir)
	}
	partName := part.Name()
	defer func() {
		if removeErr := os.Remove(partName); removeErr != nil && !os.IsNotExist(removeErr) {
			log.Warn("failed to release part file", "error", removeErr, "file", partName)
		}
	}()

	if _, err := part.Write(payload); err != nil {
		_ = part.Close()
		return "", log.Err("failed to write export payload", err, "file", partName)
	}
	if err := part.Close(); err != nil {
		return "", log.Err("failed to close part file", err, "file", partName)
	}

	target := filepath.Join(es.downloadDir, types.FileName(resource, format))
	if err := os.Rename(partName, target); err != nil {
		return "", log.Err("failed to move export into place", err, "target", target)
	}

	log.Info("Export saved", "file", target, "bytes", len(payload))
	return target, nil
}

// InspectWorkbook opens a downloaded .xlsx and counts the rows of every sheet.
func (es *ExportService) InspectWorkbook(path string) (*WorkbookSummary, error) {
	log := es.log.Function("InspectWorkbook")

	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, log.Err("failed to open workbook", err, "file", path)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			log.Warn("failed to close workbook", "error", closeErr, "file", path)
		}
	}()

	summary := &WorkbookSummary{Path: path}
	for _, sheet := range file.GetSheetList() {
		rows, err := file.GetRows(sheet)
		if err != nil {
			return nil, log.Err("failed to read sheet", err, "file", path, "sheet", sheet)
		}
		summary.Sheets = append(summary.Sheets, SheetSummary{Name: sheet, Rows: len(rows)})
	}

	if len(summary.Sheets) == 0 {
		return nil, log.Err("workbook has no sheets", fmt.Errorf("empty workbook: %s", path))
	}

	return summary, nil
}

// CleanupPartFiles removes part files older than maxAge. Save always releases
// its own part file, so these are only left behind by a killed process.
func (es *ExportService) CleanupPartFiles(ctx context.Context, maxAge time.Duration) (int, error) {
	log := es.log.Function("CleanupPartFiles")

	entries, err := os.ReadDir(es.downloadDir)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, log.Err("failed to read download directory", err, "directory", es.downloadDir)
	}

	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for _, entry := range entries {
		if ctx.Err() != nil {
			return removed, ctx.Err()
		}

		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, partFilePrefix) || !strings.HasSuffix(name, partFileSuffix) {
			continue
		}

		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}

		path := filepath.Join(es.downloadDir, name)
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.Warn("failed to remove part file", "error", err, "file", path)
			continue
		}
		removed++
	}

	if removed > 0 {
		log.Info("Removed leftover part files", "count", removed, "directory", es.downloadDir)
	}
	return removed, nil
}

func ensureDirectory(dir string, log logger.Logger) error {
	log = log.Function("ensureDirectory")

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return log.Err("failed to create directory", err, "directory", dir)
		}
		log.Info("Created download directory", "directory", dir)
	}
	return nil
}
