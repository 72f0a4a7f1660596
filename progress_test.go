package seisutil

import (
	"bytes"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestProgress(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = old }()

	var buf bytes.Buffer
	p := NewProgress(&buf)
	p.Begin("selecting files...")
	p.End("3 files selected.")

	assert.Equal(t, "selecting files... done. 3 files selected.\n", buf.String())
}

func TestProgressDisabled(t *testing.T) {
	var buf bytes.Buffer
	p := &Progress{Writer: &buf}
	p.Begin("working...")
	p.End("")
	assert.Empty(t, buf.String())
}

func TestProgressNil(t *testing.T) {
	var p *Progress
	p.Begin("working...")
	p.End("")
}

func TestStopwatch(t *testing.T) {
	sw := NewStopwatch()
	time.Sleep(10 * time.Millisecond)
	assert.GreaterOrEqual(t, sw.Elapsed(), 10*time.Millisecond)
}

func TestPluralS(t *testing.T) {
	assert.Equal(t, "s", PluralS(0))
	assert.Equal(t, "", PluralS(1))
	assert.Equal(t, "s", PluralS(2))
}
