package xlog

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestSetLevel(t *testing.T) {
	defer SetLevel(DebugLevel, os.Stdout)

	var buf bytes.Buffer
	SetLevel(WarnLevel, &buf)
	Debugln("dropped")
	Infoln("dropped too")
	Warnln("kept")
	if strings.Contains(buf.String(), "dropped") {
		t.Fatal("low level output not discarded")
	}
	if !strings.Contains(buf.String(), "kept") {
		t.Fatal("warn output missing")
	}
}

func TestColor(t *testing.T) {
	Debugln("the permutation draw begins...")
	Infof("candidate %d scored %.4f\n", 1, 3.5)
	Warnln("plan holds a single candidate, nothing to compare")
	Errorf("rejected layout (ndevs:%d nspares:%d)\n", 2, 2)
}
