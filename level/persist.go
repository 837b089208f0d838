package level

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/klauspost/compress/gzip"
	"go.uber.org/zap"
)

var (
	// ErrSizeMismatch is returned by Load when the payload length differs from Width*Height*Depth
	ErrSizeMismatch = errors.New("level data size mismatch")

	// ErrUnknownGenerator is returned for an unrecognized generator name
	ErrUnknownGenerator = errors.New("unknown generator")
)

// Save writes the block array as a single gzip stream with no header
func (g *Grid) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create level %s: %w", path, err)
	}
	defer f.Close()

	if err := g.Encode(f); err != nil {
		return fmt.Errorf("write level %s: %w", path, err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("sync level %s: %w", path, err)
	}

	if info, err := f.Stat(); err == nil {
		g.logger.Info("level saved",
			zap.String("path", path),
			zap.String("size", humanize.Bytes(uint64(info.Size()))),
			zap.String("raw", humanize.Bytes(uint64(len(g.blocks)))),
		)
	}
	return nil
}

// Encode gzip-compresses the raw block array into w
func (g *Grid) Encode(w io.Writer) error {
	zw := gzip.NewWriter(w)
	if _, err := zw.Write(g.blocks); err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}

// Load replaces the blocks from a gzip stream written by Save
// On any failure, including a length mismatch, the grid is left untouched and no listener is notified
func (g *Grid) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open level %s: %w", path, err)
	}
	defer f.Close()

	if err := g.Decode(bufio.NewReader(f)); err != nil {
		return fmt.Errorf("read level %s: %w", path, err)
	}

	g.logger.Info("level loaded",
		zap.String("path", path),
		zap.String("raw", humanize.Bytes(uint64(len(g.blocks)))),
	)
	return nil
}

// Decode decompresses r into the grid, then recomputes all light depths and emits AllChanged
func (g *Grid) Decode(r io.Reader) error {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return err
	}
	defer zr.Close()

	// Read one byte past the expected size to detect oversized payloads
	want := len(g.blocks)
	data, err := io.ReadAll(io.LimitReader(zr, int64(want)+1))
	if err != nil {
		return err
	}
	if len(data) != want {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrSizeMismatch, len(data), want)
	}

	copy(g.blocks, data)
	g.CalcLightDepths(0, 0, g.Width, g.Height)
	g.AllChanged()
	return nil
}
