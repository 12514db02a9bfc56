// Package emit converts rendered markup into a PDF file on disk.
//
// The conversion engine is a black box behind the Converter interface;
// PDF binary layout, font shaping, and CSS layout are its concern, not
// this package's. After conversion the emitter optionally rewrites the
// document's information dictionary in place.
package emit

import (
	"context"
	"os"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// Emitter writes one PDF per call using the configured converter.
type Emitter struct {
	conv Converter
}

// NewEmitter returns an emitter backed by conv.
func NewEmitter(conv Converter) *Emitter {
	return &Emitter{conv: conv}
}

// Emit converts doc to PDF and writes it to outputPath, creating parent
// directories as needed. Non-empty metadata is validated against the
// recognized key set before any file is written, then stamped onto the
// finished PDF's information dictionary.
//
// On failure after a partial write, the partial file is left in place.
func (e *Emitter) Emit(ctx context.Context, doc string, outputPath string, metadata map[string]string) error {
	props, err := mapMetadata(metadata)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(outputPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &EmitError{Kind: IOFailure, Subject: dir, Cause: err}
		}
	}

	pdf, err := e.conv.Convert(ctx, doc)
	if err != nil {
		return &EmitError{Kind: ConversionFailure, Subject: outputPath, Cause: err}
	}

	if err := os.WriteFile(outputPath, pdf, 0o644); err != nil {
		return &EmitError{Kind: IOFailure, Subject: outputPath, Cause: err}
	}

	if len(props) > 0 {
		// In-place rewrite of the information dictionary.
		if err := api.AddPropertiesFile(outputPath, "", props, nil); err != nil {
			return &EmitError{Kind: IOFailure, Subject: outputPath, Cause: err}
		}
	}

	return nil
}
