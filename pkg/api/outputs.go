package api

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Output is a single named action output
type Output struct {
	Name  string
	Value string
}

// OutputWriter publishes action outputs
type OutputWriter interface {
	WriteOutputs(outputs []Output) error
}

// NewOutputWriter appends to the file named by GITHUB_OUTPUT, or prints name=value lines to stdout when it's empty
func NewOutputWriter(outputPath string, stdout io.Writer) OutputWriter {
	return &outputWriterImpl{
		outputPath: outputPath,
		stdout:     stdout,
		delimiter: func() string {
			return "ghadelimiter_" + uuid.New().String()
		},
	}
}

type outputWriterImpl struct {
	outputPath string
	stdout     io.Writer
	delimiter  func() string
}

func (w *outputWriterImpl) WriteOutputs(outputs []Output) (err error) {
	for _, o := range outputs {
		log.Info().Str("output", o.Name).Msgf("OUTPUT %v: %v", o.Name, o.Value)
	}

	if w.outputPath == "" {
		for _, o := range outputs {
			if _, err = fmt.Fprintf(w.stdout, "%v=%v\n", o.Name, o.Value); err != nil {
				return
			}
		}
		return nil
	}

	file, err := os.OpenFile(w.outputPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrapf(err, "Failed opening output file %v", w.outputPath)
	}
	defer file.Close()

	var sb strings.Builder
	for _, o := range outputs {
		delimiter := w.delimiter()
		if strings.Contains(o.Value, delimiter) {
			return fmt.Errorf("value of output %v contains delimiter %v", o.Name, delimiter)
		}
		fmt.Fprintf(&sb, "%v<<%v\n%v\n%v\n", o.Name, delimiter, o.Value, delimiter)
	}

	if _, err = file.WriteString(sb.String()); err != nil {
		return errors.Wrapf(err, "Failed writing output file %v", w.outputPath)
	}

	return nil
}
