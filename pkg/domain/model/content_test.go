package model_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/ghloc/pkg/domain/model"
	"github.com/secmon-lab/ghloc/pkg/domain/types"
)

func TestCountLines(t *testing.T) {
	testCases := map[string]struct {
		input    string
		expected int
	}{
		"empty content counts as one": {
			input:    "",
			expected: 1,
		},
		"single line without newline": {
			input:    "print('hello')",
			expected: 1,
		},
		"trailing newline adds a segment": {
			input:    "a\nb\n",
			expected: 3,
		},
		"no trailing newline": {
			input:    "a\nb",
			expected: 2,
		},
		"only newlines": {
			input:    "\n\n\n",
			expected: 4,
		},
		"carriage returns are not separators": {
			input:    "a\r\nb\r\n",
			expected: 3,
		},
		"multibyte text": {
			input:    "# こんにちは\nprint('世界')\n",
			expected: 3,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			n, err := model.CountLines([]byte(tc.input))
			gt.NoError(t, err)
			gt.V(t, n).Equal(tc.expected)
		})
	}

	t.Run("invalid UTF-8 fails", func(t *testing.T) {
		_, err := model.CountLines([]byte{0xff, 0xfe, '\n'})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrInvalidContent))
	})
}

func TestFileContent(t *testing.T) {
	t.Run("found content", func(t *testing.T) {
		c := model.NewFoundContent("main.py", []byte("x = 1\n"))
		gt.True(t, c.Found())
		gt.V(t, c.Status.String()).Equal("found")
		gt.V(t, string(c.Data)).Equal("x = 1\n")
	})

	t.Run("not found content", func(t *testing.T) {
		c := model.NewNotFoundContent("vendor/lib.py")
		gt.False(t, c.Found())
		gt.V(t, c.Status.String()).Equal("not_found")
		gt.V(t, len(c.Data)).Equal(0)
	})

	t.Run("nil content is not found", func(t *testing.T) {
		var c *model.FileContent
		gt.False(t, c.Found())
	})
}
