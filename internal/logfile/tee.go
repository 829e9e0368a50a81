package logfile

// Leveled is the minimal leveled logger implemented by both the
// console logger and the file logger.
type Leveled interface {
	Debug(s string)
	Info(s string)
	Warn(s string)
	Error(s string)
}

// Tee fans each log entry out to every underlying logger, so a
// message reaches the console and the log file in one call.
type Tee struct {
	loggers []Leveled
}

func NewTee(loggers ...Leveled) *Tee {
	return &Tee{loggers: loggers}
}

func (t *Tee) Debug(s string) {
	for _, logger := range t.loggers {
		logger.Debug(s)
	}
}

func (t *Tee) Info(s string) {
	for _, logger := range t.loggers {
		logger.Info(s)
	}
}

func (t *Tee) Warn(s string) {
	for _, logger := range t.loggers {
		logger.Warn(s)
	}
}

func (t *Tee) Error(s string) {
	for _, logger := range t.loggers {
		logger.Error(s)
	}
}
