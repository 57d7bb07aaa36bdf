package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/sirupsen/logrus"

	"github.com/nexconsult/cnpj-geo/internal/cnpj"
)

// attributes whose values are scanned alongside visible text
var scannedAttributes = []string{"value", "content", "href", "title", "data-cnpj"}

// ExtractorService finds CNPJs in documents
type ExtractorService struct {
	logger *logrus.Logger
}

// NewExtractorService creates a new extractor service
func NewExtractorService(logger *logrus.Logger) *ExtractorService {
	return &ExtractorService{
		logger: logger,
	}
}

// ExtractFromHTML returns the valid CNPJs, as written, found in the visible text and in
// common attributes of an HTML document. Scripts and styles are skipped.
func (e *ExtractorService) ExtractFromHTML(html []byte) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("script, style, noscript").Remove()

	var sb strings.Builder
	sb.WriteString(doc.Text())

	doc.Find("*").Each(func(_ int, s *goquery.Selection) {
		for _, attr := range scannedAttributes {
			if v, ok := s.Attr(attr); ok && v != "" {
				sb.WriteString("\n")
				sb.WriteString(v)
			}
		}
	})

	found := cnpj.FindAll(sb.String())

	e.logger.WithFields(logrus.Fields{
		"bytes": len(html),
		"found": len(found),
	}).Debug("HTML extraction completed")

	return found, nil
}

// ExtractFromText returns the valid CNPJs found in plain text, as written.
func (e *ExtractorService) ExtractFromText(text []byte) []string {
	found := cnpj.FindAll(string(text))

	e.logger.WithFields(logrus.Fields{
		"bytes": len(text),
		"found": len(found),
	}).Debug("Text extraction completed")

	return found
}

// IsHTML reports whether a content type or the body itself looks like HTML.
func IsHTML(contentType string, body []byte) bool {
	ct := strings.ToLower(contentType)
	if strings.Contains(ct, "html") || strings.Contains(ct, "xml") {
		return true
	}
	if ct != "" && !strings.HasPrefix(ct, "application/octet-stream") {
		return false
	}
	head := strings.ToLower(strings.TrimSpace(string(body[:min(len(body), 512)])))
	return strings.HasPrefix(head, "<!doctype html") || strings.HasPrefix(head, "<html")
}
