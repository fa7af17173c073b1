package services

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

type PDFParserService interface {
	ExtractText(filepath string) (*ResumeContent, error)
	ExtractTextFromBytes(data []byte) (*ResumeContent, error)
}

// ResumeContent is the concatenated extractable text of every page.
type ResumeContent struct {
	Text      string
	PageCount int
}

type pdfParserService struct{}

func NewPDFParserService() PDFParserService {
	return &pdfParserService{}
}

func (p *pdfParserService) ExtractText(filePath string) (*ResumeContent, error) {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, &ExtractionError{Path: filePath, Cause: fmt.Errorf("file does not exist")}
	}

	f, r, err := pdf.Open(filePath)
	if err != nil {
		return nil, &ExtractionError{Path: filePath, Cause: err}
	}
	defer f.Close()

	content, err := readAllPages(r)
	if err != nil {
		return nil, &ExtractionError{Path: filePath, Cause: err}
	}

	return content, nil
}

func (p *pdfParserService) ExtractTextFromBytes(data []byte) (*ResumeContent, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &ExtractionError{Path: "(upload)", Cause: err}
	}

	content, err := readAllPages(r)
	if err != nil {
		return nil, &ExtractionError{Path: "(upload)", Cause: err}
	}

	return content, nil
}

func readAllPages(r *pdf.Reader) (*ResumeContent, error) {
	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages, keep the rest
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n\n")
	}

	text := textBuilder.String()
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("no text content found in PDF")
	}

	return &ResumeContent{
		Text:      text,
		PageCount: totalPage,
	}, nil
}

// CleanText collapses blank lines and trims whitespace before the text is
// interpolated into a prompt.
func CleanText(text string) string {
	text = strings.TrimSpace(text)

	lines := strings.Split(text, "\n")
	var cleanedLines []string

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleanedLines = append(cleanedLines, line)
		}
	}

	return strings.Join(cleanedLines, "\n")
}
