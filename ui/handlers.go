package ui

import (
	"bytes"
	"io"
	"log"
	"net/http"
	"strconv"

	"sheetmap/adapters/spreadsheet"
	"sheetmap/domain/core"
	"sheetmap/domain/ingest"
	"sheetmap/domain/record"
	"sheetmap/internal/profile"

	"github.com/gin-gonic/gin"
)

// importResponse is the envelope returned after a successful upload
type importResponse struct {
	Import   *ingest.Import          `json:"import"`
	Records  []*record.Dynamic       `json:"records"`
	Profiles []profile.ColumnProfile `json:"profiles"`
}

// handleCreateImport accepts a multipart spreadsheet upload, extracts its
// dynamic records and persists the import summary. The content type decides
// the decoder; anything outside the accepted set is rejected before any
// bytes are read.
func (s *Server) handleCreateImport(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "multipart field 'file' is required"})
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !spreadsheet.SupportedContentType(contentType) {
		log.Printf("[ImportHandler] Rejected upload %s with content type %q", header.Filename, contentType)
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": "unsupported content type: " + contentType})
		return
	}

	if header.Size > s.maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file exceeds upload limit"})
		return
	}

	if !s.uploadSem.TryAcquire(1) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "too many concurrent imports, retry later"})
		return
	}
	defer s.uploadSem.Release(1)

	data, err := io.ReadAll(io.LimitReader(file, s.maxUploadBytes+1))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read upload"})
		return
	}
	if int64(len(data)) > s.maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file exceeds upload limit"})
		return
	}

	imp := ingest.NewImport(header.Filename, contentType, int64(len(data)), core.NewFileChecksum(data))
	if err := s.imports.Create(c.Request.Context(), imp); err != nil {
		log.Printf("[ImportHandler] Failed to record import %s: %v", imp.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record import"})
		return
	}

	source, err := spreadsheet.NewSource(bytes.NewReader(data), contentType)
	if err != nil {
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": err.Error()})
		return
	}

	rows, err := source.Rows()
	if err != nil {
		log.Printf("[ImportHandler] Parse failure for %s: %v", header.Filename, err)
		imp.Fail(err.Error())
		if updateErr := s.imports.Update(c.Request.Context(), imp); updateErr != nil {
			log.Printf("[ImportHandler] Failed to mark import %s failed: %v", imp.ID, updateErr)
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "import_id": imp.ID})
		return
	}

	records := s.extractor.FromRows(rows)
	profiles := s.profiler.Profile(records)

	dataRows := len(rows) - 1
	if dataRows < 0 {
		dataRows = 0
	}
	imp.Complete(dataRows, len(records), dataRows-len(records))
	if err := s.imports.Update(c.Request.Context(), imp); err != nil {
		log.Printf("[ImportHandler] Failed to finalize import %s: %v", imp.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to finalize import"})
		return
	}

	c.JSON(http.StatusCreated, importResponse{
		Import:   imp,
		Records:  records,
		Profiles: profiles,
	})
}

func (s *Server) handleGetImport(c *gin.Context) {
	id, err := core.ParseImportID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	imp, err := s.imports.GetByID(c.Request.Context(), id)
	if err != nil {
		if core.IsNotFoundError(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "import not found"})
			return
		}
		log.Printf("[ImportHandler] Failed to load import %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load import"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"import": imp})
}

func (s *Server) handleListImports(c *gin.Context) {
	limit := parseIntParam(c, "limit", 50)
	offset := parseIntParam(c, "offset", 0)

	imports, err := s.imports.List(c.Request.Context(), limit, offset)
	if err != nil {
		log.Printf("[ImportHandler] Failed to list imports: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list imports"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"imports": imports, "count": len(imports)})
}

func parseIntParam(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	if v, err := strconv.Atoi(raw); err == nil && v >= 0 {
		return v
	}
	return fallback
}
