package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"catalog-export/internal/domain"
)

// Keep header order EXACT, rows are positional.
var courseHeader = []string{
	"id",
	"name",
	"subdomain",
	"providers",
	"description",
	"course_status",
	"image_url",
	"course_type",
}

// CourseHeader returns a copy of the export header row.
func CourseHeader() []string {
	return append([]string(nil), courseHeader...)
}

// FileIOError reports a failure creating or writing the output file.
type FileIOError struct {
	Path string
	Err  error
}

func (e *FileIOError) Error() string {
	return fmt.Sprintf("export: %s: %v", e.Path, e.Err)
}

func (e *FileIOError) Unwrap() error { return e.Err }

// WriteCourseCSV writes the header and one row per record.
func WriteCourseCSV(w io.Writer, records []domain.EnrichedCourse) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(courseHeader); err != nil {
		return err
	}
	for _, r := range records {
		if err := cw.Write(toCourseRow(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// toCourseRow flattens a record. Providers are joined with a bare comma, so a
// provider name that itself contains a comma cannot be split back apart.
func toCourseRow(r domain.EnrichedCourse) []string {
	return []string{
		r.ID,                           // id
		r.Name,                         // name
		r.Subdomain,                    // subdomain
		strings.Join(r.Providers, ","), // providers
		r.Description,                  // description
		r.CourseStatus,                 // course_status
		r.PhotoURL,                     // image_url
		r.CourseType,                   // course_type
	}
}

// CourseCSVPath names the output file after the run time in unix seconds.
func CourseCSVPath(dir string, now time.Time) string {
	return filepath.Join(dir, strconv.FormatInt(now.Unix(), 10)+".csv")
}

// WriteCourseCSVFile creates path and writes records to it. The file must not
// already exist; two runs in the same second fail instead of overwriting.
// The directory is not created.
func WriteCourseCSVFile(path string, records []domain.EnrichedCourse) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return &FileIOError{Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &FileIOError{Path: path, Err: cerr}
		}
	}()

	if err := WriteCourseCSV(f, records); err != nil {
		return &FileIOError{Path: path, Err: err}
	}
	return nil
}
