package logio

import "time"

// Level mirrors the two severities the pipeline ever emits: stdout lines
// are Info, stderr lines are Error.
type Level string

const (
	LevelInfo  Level = "INFO"
	LevelError Level = "ERROR"
)

// Record is one captured output line plus the metadata the file writer
// stamps onto it.
type Record struct {
	Time    time.Time
	Level   Level
	Target  string
	Message string
}

// NewRecord builds a record for the given stream line, tagging it with
// the fixed target "service" per the wire contract.
func NewRecord(level Level, message string) Record {
	return Record{Time: time.Now(), Level: level, Target: "service", Message: message}
}

// format renders the record as one line: timestamp, level, bracketed
// target, message.
func (r Record) format() string {
	return r.Time.Format("2006-01-02T15:04:05.000Z07:00") + " " +
		string(r.Level) + " [" + r.Target + "] " + r.Message + "\n"
}
