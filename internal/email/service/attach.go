package service

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

// imageExtensions classifies attachments that are embedded inline with
// a content identifier, so HTML bodies can reference them via cid:.
var imageExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".gif":  {},
	".bmp":  {},
	".tiff": {},
	".webp": {},
}

// IsImageFile reports whether the path has an image extension,
// case-insensitively.
func IsImageFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	_, ok := imageExtensions[ext]
	return ok
}

// attach resolves one attachment path onto the message. Images become
// inline parts with Content-ID equal to the base name; everything else
// becomes a base64 attachment part. A missing or unreadable file is
// logged and skipped; it never aborts the send.
func (s *Service) attach(msg *mail.Msg, path string) {
	if _, err := os.Stat(path); err != nil {
		s.log.Warn("attachment not found, skipping", zap.String("path", path))
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		s.log.Error("failed to read attachment, skipping",
			zap.String("path", path), zap.Error(err))
		return
	}

	name := filepath.Base(path)
	if IsImageFile(path) {
		err = msg.EmbedReader(name, bytes.NewReader(data))
	} else {
		err = msg.AttachReader(name, bytes.NewReader(data))
	}
	if err != nil {
		s.log.Error("failed to attach file, skipping",
			zap.String("path", path), zap.Error(err))
	}
}
