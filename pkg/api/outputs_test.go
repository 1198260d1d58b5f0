package api

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteOutputs(t *testing.T) {

	t.Run("PrintsNameValueLinesWithoutOutputFile", func(t *testing.T) {

		var stdout bytes.Buffer
		writer := NewOutputWriter("", &stdout)

		// act
		err := writer.WriteOutputs([]Output{{Name: "evalURL", Value: "https://hydra.iohk.io/eval/1"}, {Name: "badge", Value: ""}})

		assert.Nil(t, err)
		assert.Equal(t, "evalURL=https://hydra.iohk.io/eval/1\nbadge=\n", stdout.String())
	})

	t.Run("AppendsHeredocsToOutputFile", func(t *testing.T) {

		outputPath := filepath.Join(t.TempDir(), "output")
		err := os.WriteFile(outputPath, []byte("existing=1\n"), 0644)
		assert.Nil(t, err)

		writer := &outputWriterImpl{
			outputPath: outputPath,
			delimiter: func() string {
				return "EOF"
			},
		}

		// act
		err = writer.WriteOutputs([]Output{{Name: "buildURLs", Value: "a b"}, {Name: "evaluation", Value: "{\n}"}})

		assert.Nil(t, err)
		data, err := os.ReadFile(outputPath)
		assert.Nil(t, err)
		assert.Equal(t, "existing=1\nbuildURLs<<EOF\na b\nEOF\nevaluation<<EOF\n{\n}\nEOF\n", string(data))
	})

	t.Run("ReturnsErrorIfValueContainsDelimiter", func(t *testing.T) {

		outputPath := filepath.Join(t.TempDir(), "output")
		writer := &outputWriterImpl{
			outputPath: outputPath,
			delimiter: func() string {
				return "EOF"
			},
		}

		// act
		err := writer.WriteOutputs([]Output{{Name: "evaluation", Value: "EOF"}})

		assert.NotNil(t, err)
	})
}
