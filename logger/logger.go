package logger

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Name 日志名称，出现在每一行中
const Name = "WelcomeBot"

// TimeLayout 时间格式，毫秒用逗号分隔
const TimeLayout = "2006-01-02 15:04:05,000"

// Options 日志配置
type Options struct {
	Dir        string
	File       string
	MaxSizeMB  int
	MaxBackups int
	Level      string
}

// Formatter 输出 "时间 - 名称 - 级别 - 消息" 格式
type Formatter struct {
	Name string
}

// Format 实现 logrus.Formatter
func (f *Formatter) Format(e *logrus.Entry) ([]byte, error) {
	b := e.Buffer
	if b == nil {
		b = &bytes.Buffer{}
	}
	fmt.Fprintf(b, "%s - %s - %s - %s",
		e.Time.Format(TimeLayout), f.Name, levelName(e.Level), e.Message)
	if err, ok := e.Data[logrus.ErrorKey]; ok {
		fmt.Fprintf(b, ": %v", err)
	}
	b.WriteByte('\n')
	return b.Bytes(), nil
}

func levelName(l logrus.Level) string {
	if l == logrus.WarnLevel {
		return "WARNING"
	}
	return strings.ToUpper(l.String())
}

// New 创建日志目录，返回同时写入轮转文件和标准输出的 logger
func New(opts Options) (*logrus.Logger, error) {
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("创建日志目录失败: %w", err)
	}

	file := &lumberjack.Logger{
		Filename:   filepath.Join(opts.Dir, opts.File),
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
	}

	return newLogger(io.MultiWriter(os.Stdout, file), opts.Level)
}

func newLogger(out io.Writer, level string) (*logrus.Logger, error) {
	lvl := logrus.InfoLevel
	if level != "" {
		var err error
		if lvl, err = logrus.ParseLevel(level); err != nil {
			return nil, fmt.Errorf("日志级别无效: %w", err)
		}
	}

	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(lvl)
	l.SetFormatter(&Formatter{Name: Name})
	return l, nil
}
