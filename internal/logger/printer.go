package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Printer adapts a zap logger to the Println/Printf interface expected by
// libraries that ship their own logging hooks.
type Printer struct {
	// logger receives every formatted line.
	logger *zap.Logger
	// level is the zap level the lines are written at.
	level zapcore.Level
}

// NewPrinter returns a Printer writing at the provided level.
func NewPrinter(l *zap.SugaredLogger, level zapcore.Level) *Printer {
	return &Printer{
		logger: l.Desugar(),
		level:  level,
	}
}

// Println writes the operands separated by spaces.
func (p *Printer) Println(v ...any) {
	p.write(fmt.Sprintln(v...))
}

// Printf writes a formatted line.
func (p *Printer) Printf(format string, v ...any) {
	p.write(fmt.Sprintf(format, v...))
}

func (p *Printer) write(line string) {
	if ce := p.logger.Check(p.level, strings.TrimRight(line, "\n")); ce != nil {
		ce.Write()
	}
}
