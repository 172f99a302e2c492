package extract

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

const (
	// MimePDF and MimeDOCX are the only document types accepted for extraction.
	MimePDF  = "application/pdf"
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

	// MinTextLength is the minimum trimmed length for an extraction to count as usable.
	MinTextLength = 50
)

var (
	// ErrUnsupportedType is returned for declared MIME types outside PDF/DOCX.
	ErrUnsupportedType = errors.New("unsupported file type")
	// ErrUnreadableDocument is returned when the document cannot be decoded.
	ErrUnreadableDocument = errors.New("unreadable document")
	// ErrInsufficientContent is returned when extracted text is shorter than MinTextLength.
	ErrInsufficientContent = errors.New("insufficient content")
)

// Result carries extracted text plus provenance metadata.
type Result struct {
	Text       string    `json:"text"`
	FileName   string    `json:"fileName"`
	FileSize   int64     `json:"fileSize"`
	FileType   string    `json:"fileType"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// Supported reports whether the declared MIME type is extractable.
// Browsers occasionally declare DOCX as application/zip; the extension settles it.
func Supported(mimeType, fileName string) bool {
	return normalizeMimeType(mimeType, fileName) != ""
}

// Text extracts plain text from an in-memory document. The MIME type is
// checked before any parsing is attempted.
func Text(ctx context.Context, data []byte, mimeType string, fileName string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	normalized := normalizeMimeType(mimeType, fileName)
	if normalized == "" {
		return Result{}, fmt.Errorf("%w: %s", ErrUnsupportedType, mimeType)
	}

	var (
		text string
		err  error
	)
	switch normalized {
	case MimePDF:
		text, err = extractPDF(data)
	case MimeDOCX:
		text, err = extractDOCX(data)
	}
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrUnreadableDocument, err)
	}

	text = strings.TrimSpace(text)
	if len(text) < MinTextLength {
		return Result{}, ErrInsufficientContent
	}

	return Result{
		Text:       text,
		FileName:   fileName,
		FileSize:   int64(len(data)),
		FileType:   normalized,
		UploadedAt: time.Now().UTC(),
	}, nil
}

func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", err
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(pageText)
	}
	return b.String(), nil
}

func extractDOCX(data []byte) (string, error) {
	if len(data) == 0 {
		return "", errors.New("empty docx data")
	}
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	defer doc.Close()

	return stripDocxXML(doc.Editable().GetContent()), nil
}

// stripDocxXML flattens document.xml content into plain text, turning
// paragraph and line-break boundaries into newlines.
func stripDocxXML(raw string) string {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	var buf strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return raw
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.WriteString(string(t))
		case xml.EndElement:
			if t.Name.Local == "p" || t.Name.Local == "br" {
				if buf.Len() > 0 {
					buf.WriteString("\n")
				}
			}
		}
	}
	return buf.String()
}

func normalizeMimeType(mimeType, fileName string) string {
	clean := strings.ToLower(strings.TrimSpace(strings.Split(mimeType, ";")[0]))
	switch clean {
	case MimePDF:
		return MimePDF
	case MimeDOCX:
		return MimeDOCX
	case "application/zip", "application/octet-stream", "":
		if strings.ToLower(filepath.Ext(fileName)) == ".docx" {
			return MimeDOCX
		}
		if strings.ToLower(filepath.Ext(fileName)) == ".pdf" && clean != "application/zip" {
			return MimePDF
		}
	}
	return ""
}
