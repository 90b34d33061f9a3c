// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package output renders papers as a CSV file or as console text.
package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/pdiddy/pubmed-papers/pkg/types"
)

// useCRLF follows the platform newline convention for CSV rows.
var useCRLF = runtime.GOOS == "windows"

// EncodeCSV writes the header row and one row per paper to w.
func EncodeCSV(w io.Writer, papers []types.Paper) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = useCRLF

	if err := cw.Write(types.CSVHeader); err != nil {
		return err
	}
	for _, p := range papers {
		if err := cw.Write(p.Fields()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSV renders papers in memory and writes them to path, replacing any
// existing file. Failures are types.KindIO errors.
func WriteCSV(path string, papers []types.Paper) error {
	var buf bytes.Buffer
	if err := EncodeCSV(&buf, papers); err != nil {
		return types.IOError("write csv", fmt.Errorf("encoding rows: %w", err))
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return types.IOError("write csv", err)
	}
	return nil
}
