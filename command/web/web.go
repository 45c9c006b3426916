package web

import (
	"bytes"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"

	"legion-stats/connectors/config"
	"legion-stats/connectors/echarts"
	"legion-stats/connectors/xlsx"
	"legion-stats/domain/legion"
)

// Run starts a small Echo web server around one in-memory dataset.
//
// Usage:
//
//	legion-stats web [-addr :8080]
//
// Endpoints:
//
//	POST /api/upload              -> multipart "file": replace the dataset wholesale
//	GET  /api/weeks               -> week labels, most recent first
//	GET  /api/weekly/summary      -> ?week=<label> legion summary incl. TOTAL row
//	GET  /api/weekly/rosters      -> ?week=<label> active/inactive name tables
//	GET  /api/weekly/hourly       -> ?week=<label> active-by-hour histogram
//	GET  /api/global/players      -> lifetime per-player stats
//	GET  /api/global/schedule     -> player x hour active-session matrix
//	GET  /api/global/hourly       -> global active-by-hour histogram
//	GET  /api/raw                 -> full cleaned record set
//	GET  /export/weekly           -> ?week=<label> weekly bundle as xlsx attachment
//	GET  /export/global           -> global bundle as xlsx attachment
//	GET  /charts/weekly           -> ?week=<label> legion health + hourly charts (HTML)
//	GET  /charts/global           -> global hourly chart (HTML)
//
// Every upload is processed from a clean slate; queries before the first
// upload answer 409.
func Run(args []string) error {
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	addr := fs.String("addr", "", "http listen address (host:port, default from config)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	listen := *addr
	if listen == "" {
		listen = cfg.Web.Addr
	}

	s := &server{cfg: cfg}
	e := echo.New()
	e.HideBanner = true
	s.register(e)
	return e.Start(listen)
}

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// server holds the single current dataset. Echo runs handlers on concurrent
// goroutines, so the pointer swap on upload is guarded; views only ever read a
// fully built dataset, never partial state.
type server struct {
	cfg *config.Config

	mu sync.RWMutex
	ds *legion.Dataset
}

func (s *server) register(e *echo.Echo) {
	e.POST("/api/upload", s.upload)
	e.GET("/api/weeks", s.weeks)
	e.GET("/api/weekly/summary", s.weeklySummary)
	e.GET("/api/weekly/rosters", s.weeklyRosters)
	e.GET("/api/weekly/hourly", s.weeklyHourly)
	e.GET("/api/global/players", s.globalPlayers)
	e.GET("/api/global/schedule", s.globalSchedule)
	e.GET("/api/global/hourly", s.globalHourly)
	e.GET("/api/raw", s.raw)
	e.GET("/export/weekly", s.exportWeekly)
	e.GET("/export/global", s.exportGlobal)
	e.GET("/charts/weekly", s.chartsWeekly)
	e.GET("/charts/global", s.chartsGlobal)
}

func (s *server) upload(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{
			"error":   err.Error(),
			"message": "multipart field 'file' is required",
		})
	}
	src, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	defer src.Close()

	rows, err := xlsx.ReadRecords(src, s.cfg.Input.Sheet)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]any{
			"error":   err.Error(),
			"message": "failed to read workbook",
		})
	}
	ds, err := legion.Ingest(rows, legion.Options{WinToken: s.cfg.Input.WinToken})
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]any{
			"error":   err.Error(),
			"message": "failed to ingest records",
		})
	}

	s.mu.Lock()
	s.ds = ds
	s.mu.Unlock()
	slog.Info("dataset replaced", "file", fh.Filename, "records", len(ds.Records))

	return c.JSON(http.StatusOK, map[string]any{
		"records": len(ds.Records),
		"weeks":   ds.WeekLabels(),
	})
}

func (s *server) current() *legion.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ds
}

var errNoDataset = echo.NewHTTPError(http.StatusConflict, "no dataset loaded, upload a workbook first")

// weekScope resolves the ?week= parameter against the current dataset.
func (s *server) weekScope(c echo.Context) (*legion.Dataset, string, error) {
	ds := s.current()
	if ds == nil {
		return nil, "", errNoDataset
	}
	label := c.QueryParam("week")
	if label == "" {
		return nil, "", echo.NewHTTPError(http.StatusBadRequest, "missing query parameter 'week'")
	}
	if !ds.HasWeek(label) {
		return nil, "", echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("unknown week label %q", label))
	}
	return ds, label, nil
}

func (s *server) weeks(c echo.Context) error {
	ds := s.current()
	if ds == nil {
		return errNoDataset
	}
	return c.JSON(http.StatusOK, ds.WeekLabels())
}

func (s *server) weeklySummary(c echo.Context) error {
	ds, label, err := s.weekScope(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, legion.LegionSummary(ds.Week(label)))
}

func (s *server) weeklyRosters(c echo.Context) error {
	ds, label, err := s.weekScope(c)
	if err != nil {
		return err
	}
	active, inactive := legion.Rosters(ds.Week(label))
	return c.JSON(http.StatusOK, map[string]legion.RosterTable{
		"active":   active,
		"inactive": inactive,
	})
}

func (s *server) weeklyHourly(c echo.Context) error {
	ds, label, err := s.weekScope(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, legion.HourlyHistogram(ds.Week(label)))
}

func (s *server) globalPlayers(c echo.Context) error {
	ds := s.current()
	if ds == nil {
		return errNoDataset
	}
	return c.JSON(http.StatusOK, legion.PlayerStats(ds.Records))
}

func (s *server) globalSchedule(c echo.Context) error {
	ds := s.current()
	if ds == nil {
		return errNoDataset
	}
	return c.JSON(http.StatusOK, legion.BuildScheduleMatrix(ds.Records))
}

func (s *server) globalHourly(c echo.Context) error {
	ds := s.current()
	if ds == nil {
		return errNoDataset
	}
	return c.JSON(http.StatusOK, legion.HourlyHistogram(ds.Records))
}

func (s *server) raw(c echo.Context) error {
	ds := s.current()
	if ds == nil {
		return errNoDataset
	}
	return c.JSON(http.StatusOK, ds.Records)
}

func (s *server) exportWeekly(c echo.Context) error {
	ds, label, err := s.weekScope(c)
	if err != nil {
		return err
	}
	return s.attachment(c, legion.WeeklyBundleFileName(label), ds.WeeklyBundle(label))
}

func (s *server) exportGlobal(c echo.Context) error {
	ds := s.current()
	if ds == nil {
		return errNoDataset
	}
	return s.attachment(c, legion.GlobalBundleFileName, ds.GlobalBundle())
}

func (s *server) attachment(c echo.Context, name string, tables []legion.Table) error {
	var buf bytes.Buffer
	if err := xlsx.WriteWorkbook(&buf, tables); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	return c.Blob(http.StatusOK, xlsxMIME, buf.Bytes())
}

func (s *server) chartsWeekly(c echo.Context) error {
	ds, label, err := s.weekScope(c)
	if err != nil {
		return err
	}
	week := ds.Week(label)
	health := echarts.LegionHealthBar(legion.LegionSummary(week), "Legion Health - "+label)
	hourly := echarts.HourlyBar(legion.HourlyHistogram(week),
		"Sum of Active Players by Hour - "+label, echarts.WeeklyHourColor)

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)
	return echarts.RenderPage(c.Response(), "Weekly Report "+label, health, hourly)
}

func (s *server) chartsGlobal(c echo.Context) error {
	ds := s.current()
	if ds == nil {
		return errNoDataset
	}
	hourly := echarts.HourlyBar(legion.HourlyHistogram(ds.Records),
		"Sum of Active Participations by Hour (All Time)", echarts.GlobalHourColor)

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)
	return echarts.RenderPage(c.Response(), "Global Report", hourly)
}
