package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
	"toolcrib/config"
	"toolcrib/internal/backendtest"
	"toolcrib/internal/models"
	"toolcrib/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportService_DefaultsToWorkingDirectory(t *testing.T) {
	service := NewExportService(config.Config{})
	assert.Equal(t, ".", service.DownloadDir())
}

func TestExportService_SaveLeavesNoPartFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	service := NewExportService(config.Config{DownloadDir: dir})

	path, err := service.Save(types.ExportAssignments, types.ExportPDF, []byte("%PDF-1.4"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "atribuicoes.pdf"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(content))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "atribuicoes.pdf", entries[0].Name())
}

func TestExportService_SaveOverwrites(t *testing.T) {
	dir := t.TempDir()
	service := NewExportService(config.Config{DownloadDir: dir})

	_, err := service.Save(types.ExportExternalServices, types.ExportExcel, []byte("first"))
	require.NoError(t, err)
	path, err := service.Save(types.ExportExternalServices, types.ExportExcel, []byte("second"))
	require.NoError(t, err)

	assert.Equal(t, "servicos-externos.xlsx", filepath.Base(path))
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(content))
}

func TestExportService_InspectDownloadedWorkbook(t *testing.T) {
	api, backend := newTestAPI(t)
	login(t, api, backendtest.AdminUsername, backendtest.AdminPassword)

	ana := backend.SeedElectrician("Ana")
	bruno := backend.SeedElectrician("Bruno")
	pliers := backend.SeedToolPPE("Alicate", models.ItemTypeTool)
	gloves := backend.SeedToolPPE("Luva", models.ItemTypePPE)
	backend.SeedAssignment(ana.ID, pliers.ID, "", true)
	backend.SeedAssignment(bruno.ID, gloves.ID, "", false)

	payload, err := api.Export(context.Background(), types.ExportAssignments, types.ExportExcel)
	require.NoError(t, err)

	service := NewExportService(config.Config{DownloadDir: t.TempDir()})
	path, err := service.Save(types.ExportAssignments, types.ExportExcel, payload)
	require.NoError(t, err)

	summary, err := service.InspectWorkbook(path)
	require.NoError(t, err)
	require.Len(t, summary.Sheets, 1)
	assert.Equal(t, "atribuicoes", summary.Sheets[0].Name)
	assert.Equal(t, 3, summary.Sheets[0].Rows)
}

func TestExportService_InspectRejectsNonWorkbook(t *testing.T) {
	dir := t.TempDir()
	service := NewExportService(config.Config{DownloadDir: dir})

	path, err := service.Save(types.ExportAssignments, types.ExportPDF, []byte("%PDF-1.4"))
	require.NoError(t, err)

	_, err = service.InspectWorkbook(path)
	assert.Error(t, err)
}

func TestExportService_CleanupPartFiles(t *testing.T) {
	dir := t.TempDir()
	service := NewExportService(config.Config{DownloadDir: dir})

	old := filepath.Join(dir, ".toolcrib-123.part")
	fresh := filepath.Join(dir, ".toolcrib-456.part")
	export := filepath.Join(dir, "atribuicoes.pdf")
	for _, path := range []string{old, fresh, export} {
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	}
	past := time.Now().Add(-2 * time.Hour)
	require.NoError(t, os.Chtimes(old, past, past))
	require.NoError(t, os.Chtimes(export, past, past))

	removed, err := service.CleanupPartFiles(context.Background(), time.Hour)
	require.NoError(t, err)

	assert.Equal(t, 1, removed)
	assert.NoFileExists(t, old)
	assert.FileExists(t, fresh)
	assert.FileExists(t, export)
}

func TestExportService_CleanupMissingDirectory(t *testing.T) {
	service := NewExportService(config.Config{DownloadDir: filepath.Join(t.TempDir(), "missing")})

	removed, err := service.CleanupPartFiles(context.Background(), time.Hour)

	require.NoError(t, err)
	assert.Zero(t, removed)
}
