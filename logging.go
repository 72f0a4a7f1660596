package seisutil

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// SetupLogging configures the global logrus logger the way the toolkit
// programs expect it and returns an entry tagged with the program name.
// Level is one of the logrus level names ("debug", "info", "warning",
// "error", ...). Most programs call this once at startup.
func SetupLogging(program, level string) (*logrus.Entry, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrapf(err, "seisutil: unknown log level %q", level)
	}

	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(lvl)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: DefaultTimeLayout,
	})

	return logrus.WithField("program", program), nil
}
