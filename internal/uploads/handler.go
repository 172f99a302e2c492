package uploads

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"skillgap-backend/internal/extract"
	"skillgap-backend/internal/shared/server/respond"
	"skillgap-backend/internal/shared/telemetry"
)

// Handler accepts résumé uploads and returns extracted text.
type Handler struct {
	UploadDir string
	MaxBytes  int64
}

// NewHandler constructs a Handler.
func NewHandler(uploadDir string, maxBytes int64) *Handler {
	return &Handler{UploadDir: uploadDir, MaxBytes: maxBytes}
}

// RegisterRoutes attaches upload routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/upload-resume", h.upload)
}

// multipartOverhead covers boundaries, part headers, and non-file fields so
// the size cap applies to the file itself, not the enclosing body.
const multipartOverhead = 64 << 10

func (h *Handler) upload(c *gin.Context) {
	bodyLimit := h.MaxBytes + multipartOverhead
	if c.Request.ContentLength > bodyLimit {
		respond.Error(c, http.StatusBadRequest, "File size exceeds 10MB limit")
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, bodyLimit)

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			respond.Error(c, http.StatusBadRequest, "File size exceeds 10MB limit")
			return
		}
		respond.Error(c, http.StatusBadRequest, "No file uploaded")
		return
	}
	if fileHeader.Size > h.MaxBytes {
		respond.Error(c, http.StatusBadRequest, "File size exceeds 10MB limit")
		return
	}

	declaredType := fileHeader.Header.Get("Content-Type")
	if !extract.Supported(declaredType, fileHeader.Filename) {
		respond.Error(c, http.StatusBadRequest, "Invalid file type. Only PDF and DOCX files are allowed.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "Unable to read uploaded file")
		return
	}
	defer file.Close()

	path, err := StoragePath(h.UploadDir, time.Now(), uuid.NewString(), fileHeader.Filename)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid file name")
		return
	}

	cleanup, err := saveTemp(path, file)
	if err != nil {
		telemetry.Error("uploads.save.failed", map[string]any{
			"path":       path,
			"err":        err.Error(),
			"request_id": c.GetString("requestId"),
		})
		respond.Error(c, http.StatusInternalServerError, "Failed to store uploaded file")
		return
	}
	// The temp file is deleted on every exit path from here on.
	defer cleanup()

	data, err := os.ReadFile(path)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "Failed to read uploaded file")
		return
	}

	result, err := extract.Text(c.Request.Context(), data, declaredType, fileHeader.Filename)
	if err != nil {
		switch {
		case errors.Is(err, extract.ErrInsufficientContent):
			respond.Error(c, http.StatusBadRequest, "Could not extract enough text from the resume. Please ensure the file is not empty or corrupted.")
		case errors.Is(err, extract.ErrUnreadableDocument):
			respond.Error(c, http.StatusBadRequest, "Could not read the uploaded file. Please ensure it is a valid PDF or DOCX document.")
		case errors.Is(err, extract.ErrUnsupportedType):
			respond.Error(c, http.StatusBadRequest, "Invalid file type. Only PDF and DOCX files are allowed.")
		default:
			respond.Error(c, http.StatusInternalServerError, "Failed to process resume")
		}
		return
	}

	respond.OK(c, result)
}
