package controllers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	sampleFileName   = "Vocabulary With Kanjis-sample.pdf"
	sampleAttachment = "Vocabulary-With-Kanjis-sample.pdf"
)

// FilesController serves the static storefront assets and the gated sample.
type FilesController struct {
	PublicDir string
	Logger    *zap.Logger
}

func NewFilesController(publicDir string, logger *zap.Logger) *FilesController {
	return &FilesController{PublicDir: publicDir, Logger: logger}
}

// DownloadSample streams the sample PDF as an attachment, or answers 404
// plain text when the file is not present.
func (fc *FilesController) DownloadSample(c *gin.Context) {
	file := filepath.Join(fc.PublicDir, "sample", sampleFileName)
	if _, err := os.Stat(file); err != nil {
		c.String(http.StatusNotFound, "Sample not found")
		return
	}
	c.FileAttachment(file, sampleAttachment)
}

// StaticFallback serves files out of the public directory for any route no
// handler claimed, falling back to index.html so the single-page storefront
// handles unknown paths itself.
func (fc *FilesController) StaticFallback(c *gin.Context) {
	if c.Request.Method != http.MethodGet {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	rel := strings.TrimPrefix(filepath.Clean("/"+c.Request.URL.Path), "/")
	file := filepath.Join(fc.PublicDir, rel)
	if info, err := os.Stat(file); err == nil && !info.IsDir() {
		c.File(file)
		return
	}

	c.File(filepath.Join(fc.PublicDir, "index.html"))
}
