// Package storage persiste en disco local los PDFs generados.
package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Jawbreaker1989/queenscorner-api/internal/application/ports"
)

var _ ports.PDFStorage = (*Local)(nil)

// Local guarda archivos bajo un directorio base configurable.
type Local struct {
	baseDir string
}

// NewLocal construye el almacenamiento y garantiza el directorio base.
func NewLocal(baseDir string) (*Local, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio %s: %w", baseDir, err)
	}
	return &Local{baseDir: baseDir}, nil
}

// SaveInvoicePDF escribe el PDF y devuelve la ruta registrable.
func (s *Local) SaveInvoicePDF(filename string, data []byte) (string, error) {
	path := filepath.Join(s.baseDir, filepath.Base(filename))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("escribir %s: %w", path, err)
	}
	return path, nil
}
