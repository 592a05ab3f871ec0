package domain

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/studex/marketplace/internal/errs"
)

const (
	maxFileSizeMB = 1000

	minUniversityYear = 1900
	maxUniversityYear = 2100
)

var allowedFileFormats = map[string]bool{
	"pdf": true, "doc": true, "docx": true,
	"ppt": true, "pptx": true, "txt": true,
	"zip": true, "jpg": true, "png": true,
}

var allowedURLSchemes = map[string]bool{
	"http": true, "https": true, "ftp": true, "file": true,
}

// FreeResource is a downloadable listing that is never for sale.
type FreeResource struct {
	listing

	fileURL         string
	universityPaper bool
	university      string
	courseCode      string
	year            int
	fileSizeMB      float64
	fileFormat      string
	downloads       int64
}

// FreeResourceParams are the constructor inputs for a free resource.
type FreeResourceParams struct {
	ListingParams

	FileURL           string
	IsUniversityPaper bool
	University        string
	CourseCode        string
	Year              int
	FileSizeMB        float64
	FileFormat        string
}

// NewFreeResource validates and creates a free resource.
func NewFreeResource(p FreeResourceParams, now time.Time) (*FreeResource, error) {
	base, err := newListing(p.ListingParams, now)
	if err != nil {
		return nil, fmt.Errorf("free resource: %w", err)
	}
	u, err := url.Parse(strings.TrimSpace(p.FileURL))
	if err != nil || !allowedURLSchemes[u.Scheme] || (u.Scheme != "file" && u.Host == "") {
		return nil, errs.Validationf("free resource: file url must use http, https, ftp or file")
	}
	if p.FileSizeMB < 0 || p.FileSizeMB > maxFileSizeMB {
		return nil, errs.Validationf("free resource: file size must be between 0 and %d MB", maxFileSizeMB)
	}
	format := strings.ToLower(strings.TrimSpace(p.FileFormat))
	if !allowedFileFormats[format] {
		return nil, errs.Validationf("free resource: unsupported file format %q", p.FileFormat)
	}
	fr := &FreeResource{
		listing:         base,
		fileURL:         strings.TrimSpace(p.FileURL),
		universityPaper: p.IsUniversityPaper,
		fileSizeMB:      p.FileSizeMB,
		fileFormat:      format,
	}
	if p.IsUniversityPaper {
		if strings.TrimSpace(p.University) == "" {
			return nil, errs.Validationf("free resource: university is required for a university paper")
		}
		if strings.TrimSpace(p.CourseCode) == "" {
			return nil, errs.Validationf("free resource: course code is required for a university paper")
		}
		if p.Year < minUniversityYear || p.Year > maxUniversityYear {
			return nil, errs.Validationf("free resource: year must be between %d and %d", minUniversityYear, maxUniversityYear)
		}
		fr.university = strings.TrimSpace(p.University)
		fr.courseCode = strings.TrimSpace(p.CourseCode)
		fr.year = p.Year
	}
	return fr, nil
}

func (f *FreeResource) FileURL() string         { return f.fileURL }
func (f *FreeResource) IsUniversityPaper() bool { return f.universityPaper }
func (f *FreeResource) University() string      { return f.university }
func (f *FreeResource) CourseCode() string      { return f.courseCode }
func (f *FreeResource) Year() int               { return f.year }
func (f *FreeResource) FileSizeMB() float64     { return f.fileSizeMB }
func (f *FreeResource) FileFormat() string      { return f.fileFormat }

// DownloadCount returns the number of recorded downloads.
func (f *FreeResource) DownloadCount() int64 { return f.downloads }

// RecordDownload bumps the download counter. The count only ever
// grows.
func (f *FreeResource) RecordDownload() {
	f.downloads++
}

// IsAvailable is always true; free resources never leave the market.
func (f *FreeResource) IsAvailable() bool { return true }

// Details returns a human-readable summary of the resource.
func (f *FreeResource) Details() string {
	if !f.valid() {
		return f.invalidDetails()
	}
	if f.universityPaper {
		return fmt.Sprintf("%s (%s %s %d, %s, %.1f MB, %d downloads) - free",
			f.title, f.university, f.courseCode, f.year, f.fileFormat, f.fileSizeMB, f.downloads)
	}
	return fmt.Sprintf("%s (%s, %.1f MB, %d downloads) - free",
		f.title, f.fileFormat, f.fileSizeMB, f.downloads)
}

// MatchesSearch checks the common fields first, then university and
// course code for university papers.
func (f *FreeResource) MatchesSearch(keyword string) bool {
	if f.matchesSearch(keyword) {
		return true
	}
	if !f.universityPaper {
		return false
	}
	kw := strings.ToLower(strings.TrimSpace(keyword))
	if kw == "" {
		return false
	}
	return strings.Contains(strings.ToLower(f.university), kw) ||
		strings.Contains(strings.ToLower(f.courseCode), kw)
}
