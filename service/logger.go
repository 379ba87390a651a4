package service

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"
)

const (
	levelInfo = iota
	levelWarning
	levelError
)

type message struct {
	text     string
	source   string
	logLevel int
}

type LoggerService struct {
	messages  chan message
	waitGroup *sync.WaitGroup
	logPath   string
	version   string
}

func NewLoggerService(path string, version string) (*LoggerService, error) {
	file, errLog := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0640)
	if errLog != nil {
		return nil, errLog
	}

	l := LoggerService{
		messages:  make(chan message),
		waitGroup: &sync.WaitGroup{},
		logPath:   path,
		version:   "v" + version,
	}

	l.waitGroup.Add(1)
	go l.run(file)

	return &l, nil
}

func (l *LoggerService) run(file *os.File) {
	mw := io.MultiWriter(os.Stdout, file)
	infoLogger := log.New(mw, "[INFO] ", log.Ldate|log.Ltime)
	warningLogger := log.New(mw, "[WARNING] ", log.Ldate|log.Ltime)
	errorLogger := log.New(mw, "[ERROR] ", log.Ldate|log.Ltime)

	defer l.waitGroup.Done()
	defer file.Close()

	for msg := range l.messages {
		switch msg.logLevel {
		case levelInfo:
			infoLogger.Println(l.version + " " + msg.source + " " + msg.text)
		case levelWarning:
			warningLogger.Println(l.version + " " + msg.source + " " + msg.text)
		case levelError:
			errorLogger.Println(l.version + " " + msg.source + " " + msg.text)
		}
	}
}

func (l *LoggerService) Shutdown() {
	close(l.messages)
	l.waitGroup.Wait()
}

func getModuleName() string {
	_, fileName, line, ok := runtime.Caller(2)
	if ok {
		return fmt.Sprintf("%s:%d", fileName, line)
	}
	return "<unknown>"
}

func (l *LoggerService) Debug(msg string) {
	l.messages <- message{text: msg, source: getModuleName(), logLevel: levelInfo}
}

func (l *LoggerService) Info(msg string) {
	l.messages <- message{text: msg, source: getModuleName(), logLevel: levelInfo}
}

func (l *LoggerService) Warning(msg string) {
	l.messages <- message{text: msg, source: getModuleName(), logLevel: levelWarning}
}

func (l *LoggerService) Exception(msg string) {
	l.messages <- message{text: msg, source: getModuleName(), logLevel: levelError}
}

func (l *LoggerService) ClearOldLogs(retentionPeriod time.Duration) error {
	dir := filepath.Dir(l.logPath)
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		normalizedPath, err := filepath.Abs(filepath.Clean(path))
		if err != nil {
			return fmt.Errorf("error normalizing path: %w", err)
		}
		normalizedLogPath, err := filepath.Abs(filepath.Clean(l.logPath))
		if err != nil {
			return fmt.Errorf("error normalizing log path: %w", err)
		}

		if normalizedPath == normalizedLogPath {
			return nil
		}

		if !info.IsDir() && filepath.Ext(info.Name()) == ".log" {
			if time.Since(info.ModTime()) > retentionPeriod {
				l.Info(fmt.Sprintf("Deleting old log: %s", path))
				return os.Remove(path)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("error deleting old logs: %w", err)
	}

	return nil
}
