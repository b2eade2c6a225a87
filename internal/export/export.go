// Package export renders an invoice snapshot into shareable artifacts. The
// spreadsheet layout is the contract the recipient's back office expects; csv
// and pdf are alternate renderings of the same fields.
package export

import "fmt"

type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
	FormatPDF  Format = "pdf"
)

func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatXLSX, FormatCSV, FormatPDF:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown export format '%s', expected xlsx, csv or pdf", s)
	}
}

// FileName builds the output file name from the invoice title, replacing
// anything that is not filesystem-safe.
func FileName(title string, format Format) string {
	return sanitizeFileName(title) + "." + string(format)
}

func sanitizeFileName(fileName string) string {
	result := ""
	for _, r := range fileName {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' || r == '-' || r == '.' {
			result += string(r)
		} else if r == ' ' {
			result += "_"
		}
	}
	return result
}
