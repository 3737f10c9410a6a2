package providers

import (
	"os"
	"path/filepath"
	"qrd/internal/structures"

	"github.com/rs/zerolog"
)

type TypeEnum int

const (
	TypeApp TypeEnum = iota
	TypeGet
	TypePost
)

// Logger is the narrow logging facade injected everywhere. Log lines are
// split into per-traffic-class files so access noise never drowns the
// application log.
type Logger interface {
	Errorf(t TypeEnum, format string, args ...interface{})
	Warnf(t TypeEnum, format string, args ...interface{})
	Debugf(t TypeEnum, format string, args ...interface{})
	Infof(t TypeEnum, format string, args ...interface{})
	Fatalf(t TypeEnum, format string, args ...interface{})
	Close()
}

func GetLogTypeByRequestType(method string) TypeEnum {
	if method == "POST" {
		return TypePost
	}
	return TypeGet
}

type LogProvider struct {
	app   zerolog.Logger
	get   zerolog.Logger
	post  zerolog.Logger
	files []*os.File
}

func NewLogProvider(conf *structures.Config) (Logger, error) {
	level, err := zerolog.ParseLevel(conf.Logger.Level)
	if err != nil {
		return nil, err
	}

	lp := &LogProvider{}
	mode := os.FileMode(conf.Logger.Mode)

	open := func(name string) (zerolog.Logger, error) {
		f, err := os.OpenFile(filepath.Join(conf.Logger.Dir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, mode)
		if err != nil {
			return zerolog.Logger{}, err
		}
		lp.files = append(lp.files, f)

		var w zerolog.LevelWriter = zerolog.MultiLevelWriter(f)
		if conf.Debug {
			w = zerolog.MultiLevelWriter(f, zerolog.ConsoleWriter{Out: os.Stderr})
		}
		return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
	}

	if lp.app, err = open("app.log"); err != nil {
		lp.Close()
		return nil, err
	}
	if lp.get, err = open("get.log"); err != nil {
		lp.Close()
		return nil, err
	}
	if lp.post, err = open("post.log"); err != nil {
		lp.Close()
		return nil, err
	}

	return lp, nil
}

func (lp *LogProvider) pick(t TypeEnum) *zerolog.Logger {
	switch t {
	case TypeGet:
		return &lp.get
	case TypePost:
		return &lp.post
	default:
		return &lp.app
	}
}

func (lp *LogProvider) Errorf(t TypeEnum, format string, args ...interface{}) {
	lp.pick(t).Error().Msgf(format, args...)
}

func (lp *LogProvider) Warnf(t TypeEnum, format string, args ...interface{}) {
	lp.pick(t).Warn().Msgf(format, args...)
}

func (lp *LogProvider) Debugf(t TypeEnum, format string, args ...interface{}) {
	lp.pick(t).Debug().Msgf(format, args...)
}

func (lp *LogProvider) Infof(t TypeEnum, format string, args ...interface{}) {
	lp.pick(t).Info().Msgf(format, args...)
}

func (lp *LogProvider) Fatalf(t TypeEnum, format string, args ...interface{}) {
	lp.pick(t).Fatal().Msgf(format, args...)
}

func (lp *LogProvider) Close() {
	for _, f := range lp.files {
		_ = f.Close()
	}
	lp.files = nil
}
