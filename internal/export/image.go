// Copyright (c) 2025 Mohamed Abdalla
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Moham3dabdalla/ai-tui/internal/util"
)

// =============================================================================
// IMAGE ATTACHMENTS
// =============================================================================

// mimeExtensions maps the image MIME types we accept to file extensions.
var mimeExtensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// ReadImageDataURL loads an image file and encodes it as a data URL suitable
// for storing inside a message.
func ReadImageDataURL(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}

	mime := mimeForExtension(filepath.Ext(path))
	if mime == "" {
		return "", fmt.Errorf("unsupported image type: %s", filepath.Ext(path))
	}

	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// SaveImage decodes a data URL and writes it to dataDir/exports, returning
// the output path.
func SaveImage(dataURL, dataDir string) (string, error) {
	mime, payload, err := splitDataURL(dataURL)
	if err != nil {
		return "", err
	}

	ext, ok := mimeExtensions[mime]
	if !ok {
		ext = ".bin"
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("decode image data: %w", err)
	}

	dir := filepath.Join(dataDir, ExportsDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}

	path := filepath.Join(dir, "image_"+time.Now().Format("20060102_150405")+ext)
	if err := util.AtomicWriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write image: %w", err)
	}
	return path, nil
}

// splitDataURL parses "data:<mime>;base64,<payload>" into its parts.
func splitDataURL(dataURL string) (mime, payload string, err error) {
	if !strings.HasPrefix(dataURL, "data:") {
		return "", "", fmt.Errorf("not a data URL")
	}
	rest := strings.TrimPrefix(dataURL, "data:")

	header, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", "", fmt.Errorf("malformed data URL")
	}
	mime = strings.TrimSuffix(header, ";base64")
	if mime == header {
		return "", "", fmt.Errorf("data URL is not base64 encoded")
	}
	return mime, payload, nil
}

func mimeForExtension(ext string) string {
	switch strings.ToLower(ext) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	default:
		return ""
	}
}
