package journal

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"golang.org/x/image/draw"
)

const (
	maxImageWidth = 1600
	jpegQuality   = 80
)

// handleImage serves a content image from the images directory. An optional
// w query parameter re-encodes the image as JPEG scaled down to that width;
// images are never scaled up.
func (a *App) handleImage(c echo.Context) error {
	filename := c.Param("filename")
	if filename == "" || strings.ContainsAny(filename, `/\`) || strings.Contains(filename, "..") {
		return echo.NewHTTPError(http.StatusNotFound)
	}

	path := filepath.Join(a.Config.ImagesDir, filename)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		return err
	}

	width, err := parseWidth(c.QueryParam("w"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid width")
	}
	if width == 0 {
		return c.File(path)
	}

	data, err := resizeImage(path, width)
	if err != nil {
		return fmt.Errorf("journal: resize %s: %w", filename, err)
	}
	return c.Blob(http.StatusOK, "image/jpeg", data)
}

func parseWidth(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	w, err := strconv.Atoi(raw)
	if err != nil || w <= 0 {
		return 0, errors.New("width must be a positive integer")
	}
	if w > maxImageWidth {
		w = maxImageWidth
	}
	return w, nil
}

// resizeImage decodes the image at path, scales it down to width if it is
// wider, and encodes it as JPEG.
func resizeImage(path string, width int) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w > width {
		newH := h * width / w
		dst := image.NewRGBA(image.Rect(0, 0, width, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}
