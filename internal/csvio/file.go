package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	apperrors "budgetbook/internal/errors"
	"budgetbook/internal/models"
)

// Reader reads transactions from a CSV stream that starts with Header.
type Reader struct {
	r    *csv.Reader
	line int
}

// NewReader checks the header row and returns a Reader positioned at the
// first data row.
func NewReader(r io.Reader) (*Reader, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, apperrors.WithMessage(apperrors.ErrParse, "header: file is empty")
		}
		return nil, apperrors.Wrap(apperrors.ErrParse, err)
	}
	if len(header) != len(Header) {
		return nil, parseError("header", "expected %d columns, got %d", len(Header), len(header))
	}
	for i, name := range Header {
		if header[i] != name {
			return nil, parseError("header", "column %d must be %q, got %q", i+1, name, header[i])
		}
	}
	return &Reader{r: cr, line: 1}, nil
}

// Next returns the next transaction. It returns io.EOF after the last row.
// A PARSE_ERROR for one row does not stop the reader; callers may keep
// calling Next to collect the remaining rows.
func (r *Reader) Next() (*models.Transaction, error) {
	record, err := r.r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		r.line++
		return nil, apperrors.WithMessage(apperrors.ErrParse, fmt.Sprintf("line %d: %v", r.line, err))
	}
	r.line++
	tx, err := ParseTransactionRow(record)
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return nil, apperrors.WithMessage(apperrors.ErrParse, fmt.Sprintf("line %d: %s", r.line, appErr.Message))
		}
		return nil, err
	}
	return tx, nil
}

// Line returns the line number of the record most recently returned by Next.
func (r *Reader) Line() int {
	return r.line
}

// Writer writes transactions as CSV, emitting Header before the first row.
type Writer struct {
	w           *csv.Writer
	wroteHeader bool
}

// NewWriter returns a Writer on w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: csv.NewWriter(w)}
}

// Write appends one transaction.
func (w *Writer) Write(tx *models.Transaction) error {
	if err := w.writeHeader(); err != nil {
		return err
	}
	return w.w.Write(SerializeTransaction(tx))
}

// Flush writes any buffered data. A file with no rows still gets its header.
func (w *Writer) Flush() error {
	if err := w.writeHeader(); err != nil {
		return err
	}
	w.w.Flush()
	return w.w.Error()
}

func (w *Writer) writeHeader() error {
	if w.wroteHeader {
		return nil
	}
	w.wroteHeader = true
	return w.w.Write(Header)
}
