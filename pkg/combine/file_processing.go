package combine

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/spf13/afero"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/charmap"
)

// Placeholders emitted instead of a file's content.
const (
	minifiedPlaceholder  = "/* ARCHIVO OMITIDO: Parece ser código minificado o generado */\n"
	readErrorPlaceholder = "/* ERROR AL LEER ARCHIVO: %v */\n"
)

// ProcessSingleFile reads filePath and returns the body to emit for it.
// It never fails: read errors and minified content become placeholders.
func ProcessSingleFile(fsys afero.Fs, filePath, parentDir string, logger *zap.Logger) FileContent {
	logger.Debug("Processing file", zap.String("filePath", filePath))

	relativePath, relErr := filepath.Rel(parentDir, filePath)
	if relErr != nil {
		logger.Warn("Unable to determine relative path, using absolute path",
			zap.String("filePath", filePath),
			zap.String("parentDir", parentDir),
			zap.Error(relErr))
		relativePath = filePath
	}
	result := FileContent{Path: filepath.ToSlash(relativePath)}

	fileBytes, readErr := afero.ReadFile(fsys, filePath)
	if readErr != nil {
		logger.Warn("Failed to read file", zap.String("filePath", filePath), zap.Error(readErr))
		result.Content = fmt.Sprintf(readErrorPlaceholder, readErr)
		result.Status = StatusError
		return result
	}

	content, fallback := decodeText(fileBytes)
	content = normalizeNewlines(content)

	// Fallback-decoded text is emitted as is, without the minified sniff.
	if fallback {
		logger.Debug("Decoded file as ISO-8859-1", zap.String("filePath", filePath))
		result.Status = StatusFallback
	} else if looksMinified(content) {
		logger.Debug("Skipping minified content", zap.String("filePath", filePath))
		result.Content = minifiedPlaceholder
		result.Status = StatusMinified
		return result
	}

	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	result.Content = content
	return result
}

// decodeText returns b as text: UTF-8 when valid, ISO-8859-1 otherwise.
// The second result reports whether the fallback was used; ISO-8859-1
// accepts every byte sequence, so decoding cannot fail.
func decodeText(b []byte) (string, bool) {
	if utf8.Valid(b) {
		return string(b), false
	}
	decoded, _ := charmap.ISO8859_1.NewDecoder().Bytes(b)
	return string(decoded), true
}
