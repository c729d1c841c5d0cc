package services

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	pdf "github.com/ledongthuc/pdf"

	"github.com/lumenlearn/lumenlearn-backend/internal/pkg/apperr"
)

// ExtractText sniffs the true file type from the bytes, then extracts plain
// text. Supported: PDF, TXT/MD, HTML. An extraction that produces no readable
// text is an error; empty text never succeeds.
func ExtractText(originalName string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))

	if len(data) == 0 {
		return "", fmt.Errorf("%w: empty file %s", apperr.ErrValidation, originalName)
	}

	var (
		text string
		err  error
	)
	switch {
	case isPDF(data):
		text, err = extractPDF(data)
	case looksLikeHTML(data) || ext == ".html" || ext == ".htm":
		text = extractHTML(string(data))
	case isProbablyText(data) || ext == ".txt" || ext == ".md":
		text = collapseWhitespace(string(data))
	case ext == ".pdf":
		// Claims pdf but is missing the %PDF header.
		return "", fmt.Errorf("%w: %s is not a valid PDF", apperr.ErrValidation, originalName)
	default:
		return "", fmt.Errorf("%w: unsupported file type %s", apperr.ErrValidation, originalName)
	}
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: no readable text found in %s", apperr.ErrValidation, originalName)
	}
	return strings.TrimSpace(text), nil
}

func isPDF(b []byte) bool {
	return len(b) >= 5 && string(b[:5]) == "%PDF-"
}

func looksLikeHTML(b []byte) bool {
	s := strings.ToLower(strings.TrimSpace(string(b[:minInt(len(b), 2048)])))
	return strings.HasPrefix(s, "<!doctype") || strings.HasPrefix(s, "<html")
}

func isProbablyText(b []byte) bool {
	sample := b[:minInt(len(b), 4096)]
	good := 0
	for _, c := range sample {
		if c == 0x00 {
			return false
		}
		if c == '\n' || c == '\r' || c == '\t' || (c >= 0x20 && c <= 0x7E) || c >= 0x80 {
			good++
		}
	}
	return float64(good)/float64(len(sample)) > 0.9
}

func extractPDF(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: pdf reader: %v", apperr.ErrValidation, err)
	}
	plain, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("%w: pdf plaintext: %v", apperr.ErrValidation, err)
	}
	b, err := io.ReadAll(plain)
	if err != nil {
		return "", fmt.Errorf("%w: pdf read: %v", apperr.ErrValidation, err)
	}
	return collapseWhitespace(string(b)), nil
}

var htmlTagRe = regexp.MustCompile(`(?s)<[^>]*>`)

func extractHTML(s string) string {
	s = htmlTagRe.ReplaceAllString(s, " ")
	s = strings.ReplaceAll(s, "&nbsp;", " ")
	s = strings.ReplaceAll(s, "&amp;", "&")
	return collapseWhitespace(s)
}

func collapseWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	return strings.Join(strings.Fields(s), " ")
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
