package utils

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
)

var (
	ErrNoFrames   = errors.New("no frame images found")
	ErrFrameGap   = errors.New("frame sequence has a gap")
	reFrameImage  = regexp.MustCompile(`^frame_(\d+)\.png$`)
	frameImageExt = ".png"
)

// ScanFrames returns the number of frame images in dir. Frames must be
// numbered contiguously from zero.
func ScanFrames(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, err
	}

	present := make(map[int]bool, len(entries))
	last := -1
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		match := reFrameImage.FindStringSubmatch(entry.Name())
		if match == nil {
			continue
		}
		n, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		present[n] = true
		last = max(last, n)
	}

	if last < 0 {
		return 0, fmt.Errorf("%w in %s", ErrNoFrames, dir)
	}
	for n := 0; n <= last; n++ {
		if !present[n] {
			return 0, fmt.Errorf("%w: frame_%d.png missing in %s", ErrFrameGap, n, dir)
		}
	}
	return last + 1, nil
}

// RemoveFrameImages deletes every .png file directly inside dir.
func RemoveFrameImages(dir string) (removed int, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, err
	}

	for _, entry := range entries {
		if !entry.Type().IsRegular() || filepath.Ext(entry.Name()) != frameImageExt {
			continue
		}
		if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
			return removed, err
		}
		removed++
	}

	slog.Debug("removed frame images", slog.String("dir", dir), slog.Int("count", removed))
	return removed, nil
}
