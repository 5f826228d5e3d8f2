package input

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewService(t *testing.T) {
	t.Parallel()
	service := NewService()
	require.Nil(t, service.Input)  // Should be nil to use os.Stdin
	require.Nil(t, service.Output) // Should be nil to use os.Stdout
}

func TestNewTestService(t *testing.T) {
	t.Parallel()
	input := strings.NewReader("test input")
	output := &bytes.Buffer{}

	service := NewTestService(input, output)
	require.Equal(t, input, service.Input)
	require.Equal(t, output, service.Output)
}

func TestPrompt(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name         string
		prompt       string
		defaultValue string
		input        string
		expected     string
		shouldError  bool
	}{
		{
			name:     "simple prompt with input",
			prompt:   "Enter name",
			input:    "John\n",
			expected: "John",
		},
		{
			name:         "prompt with default value used",
			prompt:       "Enter name",
			defaultValue: "DefaultName",
			input:        "\n",
			expected:     "DefaultName",
		},
		{
			name:     "prompt with whitespace input",
			prompt:   "Enter value",
			input:    "  test value  \n",
			expected: "test value",
		},
		{
			name:        "exhausted input",
			prompt:      "Enter value",
			input:       "",
			shouldError: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			input := strings.NewReader(tt.input)
			output := &bytes.Buffer{}
			service := NewTestService(input, output)

			result, err := service.Prompt(context.Background(), tt.prompt, tt.defaultValue)

			if tt.shouldError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				require.Equal(t, tt.expected, result)
			}
		})
	}
}

func TestPromptWithContextCancellation(t *testing.T) {
	t.Parallel()
	service := NewTestService(strings.NewReader("test\n"), &bytes.Buffer{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately

	_, err := service.Prompt(ctx, "Test prompt", "")
	require.Error(t, err)
	require.Equal(t, context.Canceled, err)
}

func TestConfirm(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name         string
		defaultValue string
		input        string
		expected     bool
	}{
		{
			name:     "confirm with y",
			input:    "y\n",
			expected: true,
		},
		{
			name:     "confirm with yes",
			input:    "yes\n",
			expected: true,
		},
		{
			name:     "decline with n",
			input:    "n\n",
			expected: false,
		},
		{
			name:     "decline with no",
			input:    "no\n",
			expected: false,
		},
		{
			name:         "empty input uses default",
			defaultValue: "n",
			input:        "\n",
			expected:     false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			input := strings.NewReader(tt.input)
			output := &bytes.Buffer{}
			service := NewTestService(input, output)

			result, err := service.Confirm(context.Background(), "Continue?", tt.defaultValue)

			require.NoError(t, err)
			require.Equal(t, tt.expected, result)
		})
	}
}

func TestConfirmRetryKeepsBufferedInput(t *testing.T) {
	t.Parallel()
	// An invalid answer must not swallow the rest of the piped input.
	input := strings.NewReader("maybe\ny\n")
	output := &bytes.Buffer{}
	service := NewTestService(input, output)

	result, err := service.Confirm(context.Background(), "Continue?", "")

	require.NoError(t, err)
	require.True(t, result)
	require.Contains(t, output.String(), "Invalid input")
}

func TestPromptSequentialReads(t *testing.T) {
	t.Parallel()
	input := strings.NewReader("first\nsecond\n")
	output := &bytes.Buffer{}
	service := NewTestService(input, output)

	first, err := service.Prompt(context.Background(), "One", "")
	require.NoError(t, err)
	require.Equal(t, "first", first)

	second, err := service.Prompt(context.Background(), "Two", "")
	require.NoError(t, err)
	require.Equal(t, "second", second)
}
