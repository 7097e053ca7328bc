package host

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

// screenshotter queues labeled captures and writes them as PNG files once the
// frame has been drawn.
type screenshotter struct {
	dir   string
	queue []string
	now   func() time.Time
	log   zerolog.Logger
}

// Queue schedules a capture of the next drawn frame.
func (s *screenshotter) Queue(label string) {
	s.queue = append(s.queue, label)
}

// Pending reports the number of captures not yet written.
func (s *screenshotter) Pending() int {
	return len(s.queue)
}

// flush captures screen for every queued label. Must be called from Draw.
func (s *screenshotter) flush(screen *ebiten.Image) {
	if len(s.queue) == 0 {
		return
	}
	bounds := screen.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, 4*w*h)
	screen.ReadPixels(pixels)
	s.save(unpremultiply(pixels, w, h))
}

// save writes img once per queued label and empties the queue. Failures are
// logged; a broken screenshot never stops the host.
func (s *screenshotter) save(img *image.NRGBA) []string {
	defer func() { s.queue = s.queue[:0] }()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		s.log.Error().Err(err).Str("dir", s.dir).Msg("screenshot: mkdir failed")
		return nil
	}

	stamp := s.now().Format("20060102_150405")
	var written []string
	for _, label := range s.queue {
		path := filepath.Join(s.dir, fmt.Sprintf("%s_%s.png", stamp, sanitizeLabel(label)))
		if err := writePNG(path, img); err != nil {
			s.log.Error().Err(err).Msg("screenshot failed")
			continue
		}
		s.log.Info().Str("path", path).Msg("screenshot saved")
		written = append(written, path)
	}
	return written
}

// unpremultiply converts premultiplied RGBA pixels to straight-alpha NRGBA.
func unpremultiply(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i+3 < len(pixels) && i+3 < len(img.Pix); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}
	return img
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel keeps [A-Za-z0-9.-], maps everything else to '_' and falls
// back to "unlabeled" for blank labels.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
