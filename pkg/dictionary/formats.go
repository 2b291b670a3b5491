package dictionary

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// FileFormat represents different word list file formats
type FileFormat int

const (
	FormatUnknown FileFormat = iota
	FormatText               // One word per line
	FormatJSON               // JSON array of strings or objects
	FormatMsgpack            // MessagePack array of strings or maps
)

// FormatInfo contains metadata about a word list file format
type FormatInfo struct {
	Format      FileFormat
	Description string
	Extensions  []string
}

var supportedFormats = map[FileFormat]FormatInfo{
	FormatText: {
		Format:      FormatText,
		Description: "Plain Text Word List",
		Extensions:  []string{".txt", ".lst"},
	},
	FormatJSON: {
		Format:      FormatJSON,
		Description: "JSON Word List",
		Extensions:  []string{".json"},
	},
	FormatMsgpack: {
		Format:      FormatMsgpack,
		Description: "MessagePack Word List",
		Extensions:  []string{".msgpack", ".mpk"},
	},
}

func (f FileFormat) String() string {
	if info, ok := supportedFormats[f]; ok {
		return info.Description
	}
	return "Unknown"
}

// DetectFileFormat picks the format of a file from its extension
func DetectFileFormat(filename string) (FileFormat, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	for format, info := range supportedFormats {
		for _, candidate := range info.Extensions {
			if ext == candidate {
				return format, nil
			}
		}
	}

	return FormatUnknown, fmt.Errorf("unable to detect format for file %s (supported: %s)",
		filename, strings.Join(SupportedExtensions(), ", "))
}

// ValidateFile checks that a file exists, is a regular file and has a known format
func ValidateFile(fs afero.Fs, filename string) (FileFormat, error) {
	fileInfo, err := fs.Stat(filename)
	if err != nil {
		return FormatUnknown, fmt.Errorf("failed to stat file %s: %w", filename, err)
	}
	if fileInfo.IsDir() {
		return FormatUnknown, fmt.Errorf("%s is a directory", filename)
	}

	return DetectFileFormat(filename)
}

// SupportedExtensions lists the recognized file extensions in format order.
func SupportedExtensions() []string {
	var exts []string
	for format := FormatText; format <= FormatMsgpack; format++ {
		exts = append(exts, supportedFormats[format].Extensions...)
	}
	return exts
}
