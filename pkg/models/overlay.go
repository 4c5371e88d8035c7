package models

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidFrameRate  = errors.New("frame rate must be a positive finite number")
	ErrNegativeFrame     = errors.New("event frame must not be negative")
	ErrDuplicateFrame    = errors.New("event frame appears more than once")
	ErrSnippetMismatch   = errors.New("number of snippets does not match number of event frames")
	ErrMissingPath       = errors.New("required path is empty")
	ErrTimestampOverflow = errors.New("event timestamp does not fit in an integer millisecond delay")
)

// OverlayJob describes a single render: a video, a silent base audio track and
// one sound snippet per event frame.
type OverlayJob struct {
	VideoPath       string   `toml:"video_path"`
	SilentAudioPath string   `toml:"silent_audio_path"`
	SnippetPaths    []string `toml:"snippet_paths"`
	EventFrames     []int    `toml:"event_frames"`
	FrameRate       float64  `toml:"frame_rate"`
	OutputPath      string   `toml:"output_path"`
	FfmpegBinary    string   `toml:"ffmpeg_binary"`
	Overwrite       bool     `toml:"overwrite"`
}

// DefaultOverlayJob returns the job used when nothing else is provided.
func DefaultOverlayJob() OverlayJob {
	return OverlayJob{
		VideoPath:       "simulation.avi",
		SilentAudioPath: "silent.wav",
		SnippetPaths:    []string{"sound_snippet1.wav", "sound_snippet2.wav", "sound_snippet3.wav"},
		EventFrames:     []int{100, 200, 300},
		FrameRate:       30,
		OutputPath:      "final_video_with_sound.avi",
		FfmpegBinary:    "ffmpeg",
	}
}

// Validate checks the invariants the filter graph relies on.
func (job OverlayJob) Validate() error {
	if job.VideoPath == "" {
		return fmt.Errorf("video path: %w", ErrMissingPath)
	}
	if job.SilentAudioPath == "" {
		return fmt.Errorf("silent audio path: %w", ErrMissingPath)
	}
	if job.OutputPath == "" {
		return fmt.Errorf("output path: %w", ErrMissingPath)
	}
	if !validFrameRate(job.FrameRate) {
		return fmt.Errorf("%w: %v", ErrInvalidFrameRate, job.FrameRate)
	}
	if len(job.SnippetPaths) != len(job.EventFrames) {
		return fmt.Errorf("%w: %d snippets, %d frames", ErrSnippetMismatch, len(job.SnippetPaths), len(job.EventFrames))
	}

	seen := make(map[int]int, len(job.EventFrames))
	for i, frame := range job.EventFrames {
		if frame < 0 {
			return fmt.Errorf("event %d: %w: %d", i, ErrNegativeFrame, frame)
		}
		if first, ok := seen[frame]; ok {
			return fmt.Errorf("events %d and %d: %w: %d", first, i, ErrDuplicateFrame, frame)
		}
		seen[frame] = i

		if job.SnippetPaths[i] == "" {
			return fmt.Errorf("snippet %d: %w", i, ErrMissingPath)
		}
	}

	return nil
}

// Events pairs every event frame with its snippet and computed delay.
func (job OverlayJob) Events() (SoundEvents, error) {
	if err := job.Validate(); err != nil {
		return nil, err
	}

	events := make(SoundEvents, 0, len(job.EventFrames))
	for i, frame := range job.EventFrames {
		delay, err := TimestampMillis(frame, job.FrameRate)
		if err != nil {
			return nil, err
		}
		events = append(events, SoundEvent{
			Frame:       frame,
			SnippetPath: job.SnippetPaths[i],
			DelayMillis: delay,
		})
	}
	return events, nil
}

// InputPaths lists every file ffmpeg reads, in input index order.
func (job OverlayJob) InputPaths() []string {
	paths := make([]string, 0, len(job.SnippetPaths)+2)
	paths = append(paths, job.VideoPath, job.SilentAudioPath)
	return append(paths, job.SnippetPaths...)
}

type SoundEvent struct {
	Frame       int
	SnippetPath string
	DelayMillis int
}

// Label is the filter graph label of the delayed snippet stream.
func (event SoundEvent) Label() string {
	return fmt.Sprintf("a%d", event.Frame)
}

type SoundEvents []SoundEvent

// Latest returns the largest delay of all events, zero when empty.
func (events SoundEvents) Latest() (latest int) {
	for _, event := range events {
		latest = max(latest, event.DelayMillis)
	}
	return
}

// TimestampMillis converts a frame index into a start offset in milliseconds,
// truncated toward zero.
func TimestampMillis(frame int, frameRate float64) (int, error) {
	if !validFrameRate(frameRate) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidFrameRate, frameRate)
	}
	if frame < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeFrame, frame)
	}
	ms := math.Floor(float64(frame) * 1000 / frameRate)
	// float64(math.MaxInt) rounds up to 2^63, which is already out of range.
	if ms >= float64(math.MaxInt) {
		return 0, fmt.Errorf("%w: frame %d at %v fps", ErrTimestampOverflow, frame, frameRate)
	}
	return int(ms), nil
}

func validFrameRate(rate float64) bool {
	return rate > 0 && !math.IsInf(rate, 0) && !math.IsNaN(rate)
}
