// Package xlog is a user-defined log, include multi-level highlight support, output redirection support
package xlog

import (
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"
	"sync"
)

var colorMap = map[string]int{
	"RED":       31,
	"red":       31,
	"GREEN":     32,
	"green":     32,
	"YELLOW":    33,
	"yellow":    33,
	"BLUE":      34,
	"blue":      34,
	"PURPLE":    35,
	"purple":    35,
	"DARKGREEN": 36,
	"darkgreen": 36,
	"WHITE":     37,
	"white":     37,
}

func getPatternMono(word, color string) string {
	return fmt.Sprintf("\x1b[%dm%s \x1b[0m", colorMap[color], word)
}

func getPatternMix(word, foreground, background string) string {
	return fmt.Sprintf("\x1b[%d;%dm%s \x1b[0m", colorMap[background], colorMap[foreground], word)
}

var (
	debugLog = log.New(os.Stdout, getPatternMono("[Debug]", "darkgreen"), log.LstdFlags|log.Lshortfile)
	infoLog  = log.New(os.Stdout, getPatternMono("[Info]", "blue"), log.LstdFlags|log.Lshortfile)
	warnLog  = log.New(os.Stdout, getPatternMono("[Warn]", "yellow"), log.LstdFlags|log.Lshortfile)
	errorLog = log.New(os.Stdout, getPatternMono("[Error]", "red"), log.LstdFlags|log.Lshortfile)
	fatalLog = log.New(os.Stdout, getPatternMix("[Fatal]", "purple", "white"), log.LstdFlags|log.Lshortfile)

	loggers = []*log.Logger{debugLog, infoLog, warnLog, errorLog, fatalLog}
	mu      sync.Mutex
)

//log alias
var (
	Debugln = debugLog.Println
	Debug   = debugLog.Print
	Debugf  = debugLog.Printf

	Infoln = infoLog.Println
	Infof  = infoLog.Printf
	Info   = infoLog.Print

	Warnln = warnLog.Println
	Warn   = warnLog.Print
	Warnf  = warnLog.Printf

	Errorln = errorLog.Println
	Error   = errorLog.Print
	Errorf  = errorLog.Printf

	Fatalln = fatalLog.Fatalln
	Fatalf  = fatalLog.Fatalf
	Fatal   = fatalLog.Fatal
)

//log levels
const (
	DebugLevel = iota
	InfoLevel
	WarnLevel
	ErrorLevel
	Disabled
)

//SetLevel redirects all loggers to w and discards every level below level.
//A nil w keeps stdout.
func SetLevel(level int, w io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	if w == nil {
		w = os.Stdout
	}
	for i, logger := range loggers {
		if i < level {
			logger.SetOutput(ioutil.Discard)
		} else {
			logger.SetOutput(w)
		}
	}
}

//SetOutputFile redirects all loggers at or above level into the file at path,
//truncating it first. An empty path keeps stdout.
func SetOutputFile(level int, path string) error {
	if path == "" {
		SetLevel(level, os.Stdout)
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	SetLevel(level, f)
	return nil
}
