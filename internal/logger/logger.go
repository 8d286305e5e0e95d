package logger

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// DefaultPath is the log file, relative to the working directory.
const DefaultPath = "logs/demo.log"

// maxLines caps the in-memory history shown by the terminal overlay.
const maxLines = 500

const timeLayout = "2006-01-02 15:04:05"

// Options configures New. Zero values fall back to DefaultPath, info level, 10 MB files and
// three backups.
type Options struct {
	Path       string
	Level      string
	MaxSizeMB  int
	MaxBackups int
	Console    bool // also write to stderr
}

// Logger is a zap sugared logger writing to a rotated file. Every entry that passes the level
// is also kept in memory as "[timestamp] message {fields}" so the terminal overlay can show
// recent output. Lines passed to Log are kept whatever the level.
type Logger struct {
	*zap.SugaredLogger
	file  *zap.SugaredLogger // same outputs, without the history
	mu    sync.Mutex
	lines []string
	sink  *lumberjack.Logger
}

// New builds the logger and creates the log directory.
func New(opts Options) (*Logger, error) {
	if opts.Path == "" {
		opts.Path = DefaultPath
	}
	if opts.MaxSizeMB <= 0 {
		opts.MaxSizeMB = 10
	}
	if opts.MaxBackups <= 0 {
		opts.MaxBackups = 3
	}
	level := zapcore.InfoLevel
	if opts.Level != "" {
		lvl, err := zapcore.ParseLevel(opts.Level)
		if err != nil {
			return nil, err
		}
		level = lvl
	}
	if err := os.MkdirAll(filepath.Dir(opts.Path), 0755); err != nil {
		return nil, err
	}

	l := &Logger{
		sink: &lumberjack.Logger{
			Filename:   opts.Path,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
		},
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(l.sink), level),
	}
	if opts.Console {
		devCfg := zap.NewDevelopmentEncoderConfig()
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(devCfg), zapcore.Lock(os.Stderr), level))
	}
	l.build(cores, level)
	return l, nil
}

// NewNop returns a logger that discards output but still records lines in memory.
func NewNop() *Logger {
	l := &Logger{}
	discard := zapcore.NewCore(zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()), zapcore.AddSync(io.Discard), zapcore.DebugLevel)
	l.build([]zapcore.Core{discard}, zapcore.DebugLevel)
	return l
}

func (l *Logger) build(outputs []zapcore.Core, level zapcore.Level) {
	l.file = zap.New(zapcore.NewTee(outputs...)).Sugar()
	history := zapcore.NewCore(historyEncoder(), zapcore.AddSync(historyWriter{l}), level)
	l.SugaredLogger = zap.New(zapcore.NewTee(append(outputs, history)...)).Sugar()
}

// historyEncoder renders entries the way the terminal shows them.
func historyEncoder() zapcore.Encoder {
	return zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		TimeKey:          "ts",
		MessageKey:       "msg",
		EncodeTime:       zapcore.TimeEncoderOfLayout("[" + timeLayout + "]"),
		EncodeDuration:   zapcore.StringDurationEncoder,
		ConsoleSeparator: " ",
		LineEnding:       "\n",
	})
}

type historyWriter struct{ l *Logger }

func (w historyWriter) Write(p []byte) (int, error) {
	w.l.record(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

func (l *Logger) record(line string) {
	l.mu.Lock()
	l.lines = append(l.lines, line)
	if len(l.lines) > maxLines {
		l.lines = append(l.lines[:0], l.lines[len(l.lines)-maxLines:]...)
	}
	l.mu.Unlock()
}

// Log records a plain line (e.g. terminal input or command output). It always reaches the
// history; the log file gets it at info level.
func (l *Logger) Log(line string) {
	l.record("[" + time.Now().Format(timeLayout) + "] " + line)
	l.file.Info(line)
}

// Lines returns a copy of the recorded lines, oldest first.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// Close flushes buffered entries and closes the log file.
func (l *Logger) Close() error {
	_ = l.Sync()
	if l.sink != nil {
		return l.sink.Close()
	}
	return nil
}

// Clip shortens line to at most limit bytes for display, ending in "..." when cut. The cut
// never splits a UTF-8 sequence.
func Clip(line string, limit int) string {
	const ellipsis = "..."
	if len(line) <= limit {
		return line
	}
	if limit <= len(ellipsis) {
		return ellipsis[:limit]
	}
	cut := limit - len(ellipsis)
	for cut > 0 && !utf8.RuneStart(line[cut]) {
		cut--
	}
	return line[:cut] + ellipsis
}
