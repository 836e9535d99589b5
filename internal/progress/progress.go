package progress

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"banks-etl/internal/telemetry"
)

const TimestampLayout = "2006-01-02 15:04:05"

// Logger appends "<timestamp> : <message>" lines to a file, opening and
// closing it for every line so a crash can only lose the line in flight.
type Logger struct {
	path string
	tel  telemetry.API
	now  func() time.Time
}

func New(path string, tel telemetry.API) Logger {
	if tel == nil {
		tel = telemetry.SlogAPI{}
	}
	return Logger{
		path: path,
		tel:  telemetry.NewScopedAPI("progress", tel),
		now:  time.Now,
	}
}

// WithClock returns a copy of the logger that stamps lines using now.
func (l Logger) WithClock(now func() time.Time) Logger {
	l.now = now
	return l
}

// Log never fails, write errors are reported as warnings.
func (l Logger) Log(message string) {
	slog.Debug("progress", "message", message)
	if l.path == "" {
		return
	}
	err := l.write(fmt.Sprintf("%s : %s\n", l.now().Format(TimestampLayout), message))
	if err != nil {
		l.tel.ReportWarning("write", l.path, err)
	}
}

func (l Logger) write(line string) error {
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	_, err = f.WriteString(line)
	closeErr := f.Close()
	if err != nil {
		return err
	}
	return closeErr
}
