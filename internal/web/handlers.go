package web

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/ysmz/kakeibo/internal/importer"
	"github.com/ysmz/kakeibo/internal/logging"
)

// handleImport accepts a multipart submission with optional "combined" and
// "asset" file fields and runs the full import pipeline. At least one file
// must be present.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	logger := logging.FromContext(r.Context())

	maxSize := s.cfg.Import.MaxFileSize
	r.Body = http.MaxBytesReader(w, r.Body, maxSize)

	if err := r.ParseMultipartForm(maxSize); err != nil {
		writeError(w, http.StatusBadRequest, "file too large or invalid form")
		return
	}

	combined, err := readFormFile(r, "combined")
	if err != nil {
		writeError(w, http.StatusBadRequest, "reading combined ledger file failed")
		return
	}
	asset, err := readFormFile(r, "asset")
	if err != nil {
		writeError(w, http.StatusBadRequest, "reading asset ledger file failed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.Import.Timeout)
	defer cancel()

	start := time.Now()
	result, err := s.importer.Import(ctx, combined, asset)
	switch {
	case errors.Is(err, importer.ErrNoFiles), errors.Is(err, importer.ErrEmptyCombined):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		logger.Error("import failed", "error", err, "duration", time.Since(start))
		writeError(w, http.StatusInternalServerError, "import failed")
		return
	}

	logger.Info("import complete",
		"import_id", result.ImportID,
		"transactions_inserted", result.Transactions.Inserted,
		"transactions_skipped", result.Transactions.Skipped,
		"snapshots_inserted", result.Assets.Inserted,
		"duration", time.Since(start),
	)
	writeJSON(w, result)
}

// readFormFile reads an optional multipart file field in full.
// A missing field is not an error; it returns nil bytes.
func readFormFile(r *http.Request, field string) ([]byte, error) {
	file, _, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}

// handleListTransactions returns the canonical transactions for one period.
func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	year, month, ok := periodParams(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "year and month query parameters are required")
		return
	}

	txs, err := s.transactions.ListPeriod(r.Context(), year, month)
	if err != nil {
		logging.FromContext(r.Context()).Error("list transactions failed", "error", err)
		writeError(w, http.StatusInternalServerError, "query failed")
		return
	}
	writeJSON(w, map[string]any{"transactions": txs})
}

// handleListAssets returns the monthly snapshots for one period.
func (s *Server) handleListAssets(w http.ResponseWriter, r *http.Request) {
	year, month, ok := periodParams(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "year and month query parameters are required")
		return
	}

	snaps, err := s.snapshots.ListPeriod(r.Context(), year, month)
	if err != nil {
		logging.FromContext(r.Context()).Error("list snapshots failed", "error", err)
		writeError(w, http.StatusInternalServerError, "query failed")
		return
	}
	writeJSON(w, map[string]any{"assets": snaps})
}

// handleHealth reports process and database liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.pinger != nil {
		if err := s.pinger.Ping(r.Context()); err != nil {
			writeError(w, http.StatusServiceUnavailable, "database unreachable")
			return
		}
	}
	writeJSON(w, map[string]string{"status": "ok"})
}

// periodParams parses the required year/month query parameters.
func periodParams(r *http.Request) (year, month int, ok bool) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		return 0, 0, false
	}
	month, err = strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		return 0, 0, false
	}
	return year, month, true
}
