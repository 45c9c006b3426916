package web

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"legion-stats/connectors/config"
)

func newTestServer() *echo.Echo {
	cfg := &config.Config{}
	cfg.Input.Sheet = config.DefaultSheet
	s := &server{cfg: cfg}
	e := echo.New()
	s.register(e)
	return e
}

func workbookBytes(t *testing.T) []byte {
	t.Helper()
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName("Sheet1", config.DefaultSheet))
	rows := [][]any{
		{"Joueur", "Legion", "Date", "Heure", "Score", "Result"},
		{"P1", "L1", "01/01/2024", "9H", "1,000", "Victory"},
		{"P2", "L1", "01/01/2024", "9H", "0", "Defeat"},
		{"P3", "L2", "08/01/2024", "21H", "250", "Victory"},
	}
	for i := range rows {
		ref, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(config.DefaultSheet, ref, &rows[i]))
	}
	var buf bytes.Buffer
	_, err := f.WriteTo(&buf)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return buf.Bytes()
}

func uploadFixture(t *testing.T, e *echo.Echo) {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	fw, err := mw.CreateFormFile("file", "activity.xlsx")
	require.NoError(t, err)
	_, err = fw.Write(workbookBytes(t))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set(echo.HeaderContentType, mw.FormDataContentType())
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func get(e *echo.Echo, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

const weekOne = "2024 W01 (01/01)"

func TestQueriesBeforeUpload(t *testing.T) {
	e := newTestServer()
	for _, path := range []string{
		"/api/weeks", "/api/global/players", "/api/raw", "/export/global", "/charts/global",
	} {
		rec := get(e, path)
		assert.Equal(t, http.StatusConflict, rec.Code, path)
	}
}

func TestUploadThenWeeks(t *testing.T) {
	e := newTestServer()
	uploadFixture(t, e)

	rec := get(e, "/api/weeks")
	require.Equal(t, http.StatusOK, rec.Code)
	var weeks []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &weeks))
	assert.Equal(t, []string{"2024 W02 (08/01)", weekOne}, weeks)
}

func TestWeeklySummaryEndpoint(t *testing.T) {
	e := newTestServer()
	uploadFixture(t, e)

	rec := get(e, "/api/weekly/summary?week="+strings.ReplaceAll(weekOne, " ", "%20"))
	require.Equal(t, http.StatusOK, rec.Code)

	var rows []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 2) // L1 + TOTAL
	assert.Equal(t, "L1", rows[0]["legion"])
	assert.Equal(t, "TOTAL", rows[1]["legion"])
}

func TestWeeklyUnknownLabel(t *testing.T) {
	e := newTestServer()
	uploadFixture(t, e)

	rec := get(e, "/api/weekly/summary?week=nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = get(e, "/api/weekly/summary")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadMissingFile(t *testing.T) {
	e := newTestServer()
	req := httptest.NewRequest(http.MethodPost, "/api/upload", strings.NewReader("not multipart"))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadBadWorkbook(t *testing.T) {
	e := newTestServer()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	fw, err := mw.CreateFormFile("file", "garbage.xlsx")
	require.NoError(t, err)
	_, err = fw.Write([]byte("this is not a workbook"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set(echo.HeaderContentType, mw.FormDataContentType())
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestGlobalEndpoints(t *testing.T) {
	e := newTestServer()
	uploadFixture(t, e)

	rec := get(e, "/api/global/players")
	require.Equal(t, http.StatusOK, rec.Code)
	var players []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &players))
	assert.Len(t, players, 3)

	rec = get(e, "/api/global/schedule")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = get(e, "/api/global/hourly")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = get(e, "/api/raw")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestExportAttachments(t *testing.T) {
	e := newTestServer()
	uploadFixture(t, e)

	rec := get(e, "/export/global")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, xlsxMIME, rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "Legion_Global_History.xlsx")

	// The payload is a readable workbook.
	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, []string{"Global_Stats", "Schedule_Matrix", "Global_Hourly", "Full_History_Raw"}, f.GetSheetList())
	require.NoError(t, f.Close())

	rec = get(e, "/export/weekly?week="+strings.ReplaceAll(weekOne, " ", "%20"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "Weekly_Report_2024_W01_01-01.xlsx")
}

func TestChartPages(t *testing.T) {
	e := newTestServer()
	uploadFixture(t, e)

	rec := get(e, "/charts/weekly?week="+strings.ReplaceAll(weekOne, " ", "%20"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "echarts")

	rec = get(e, "/charts/global")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "echarts")
}

func TestUploadReplacesDataset(t *testing.T) {
	e := newTestServer()
	uploadFixture(t, e)
	uploadFixture(t, e)

	rec := get(e, "/api/raw")
	require.Equal(t, http.StatusOK, rec.Code)
	var records []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &records))
	// Re-uploading the same file keeps the record count, no accumulation.
	assert.Len(t, records, 3)
}
