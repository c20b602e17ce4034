package recorder

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"sync"
	"viewermon/internal/app/ports"
	"viewermon/pkg/logger"
)

// Recorder appends one CSV row per tick to the output file. The header
// time,youtube,twitch,<names...> is written only when the file is new or
// empty, so a restarted process keeps appending to its old log.
type Recorder struct {
	log     logger.Logger
	mu      sync.Mutex
	file    *os.File
	writer  *csv.Writer
	columns int
}

func New(log logger.Logger, path string, streams []ports.Stream) (*Recorder, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open output file: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat output file: %w", err)
	}

	r := &Recorder{
		log:     log,
		file:    f,
		writer:  csv.NewWriter(f),
		columns: 3 + len(streams),
	}

	if info.Size() == 0 {
		header := append([]string{"time", "youtube", "twitch"}, names(streams)...)
		if err := r.writer.Write(header); err != nil {
			f.Close()
			return nil, fmt.Errorf("write header: %w", err)
		}
		r.writer.Flush()
		if err := r.writer.Error(); err != nil {
			f.Close()
			return nil, fmt.Errorf("flush header: %w", err)
		}
		log.Info("Created new output file", slog.String("path", path))
	} else {
		log.Info("Appending to existing output file", slog.String("path", path))
	}

	return r, nil
}

func (r *Recorder) Append(row ports.Row) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	record := make([]string, 0, r.columns)
	record = append(record,
		row.Time.Format("2006-01-02 15:04:05"),
		strconv.Itoa(row.YouTubeTotal),
		strconv.Itoa(row.TwitchTotal),
	)
	for _, count := range row.Counts {
		record = append(record, strconv.Itoa(count))
	}

	if len(record) != r.columns {
		return fmt.Errorf("row has %d columns, want %d", len(record), r.columns)
	}

	if err := r.writer.Write(record); err != nil {
		return fmt.Errorf("write row: %w", err)
	}

	r.writer.Flush()
	if err := r.writer.Error(); err != nil {
		return fmt.Errorf("flush row: %w", err)
	}
	return nil
}

func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.writer.Flush()
	return r.file.Close()
}

func names(streams []ports.Stream) []string {
	out := make([]string, 0, len(streams))
	for _, s := range streams {
		out = append(out, s.Name)
	}
	return out
}
