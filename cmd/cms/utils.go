package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"github.com/jesses-code-adventures/cms/internal/service"
)

// outcomeErr turns a failed outcome into a command error.
func outcomeErr(o service.Outcome) error {
	if o.Success {
		return nil
	}
	return errors.New(o.Message)
}

// writeDocument saves doc to output, or to its own file name in the current
// directory when output is empty. A directory output keeps the file name.
func writeDocument(doc *service.Document, o service.Outcome, output string) error {
	if err := outcomeErr(o); err != nil {
		return err
	}

	path := output
	if path == "" {
		path = doc.FileName
	} else if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, doc.FileName)
	}

	if err := os.WriteFile(path, doc.Data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	fmt.Printf("Wrote %s (%d bytes)\n", path, len(doc.Data))
	return nil
}

func formatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}
