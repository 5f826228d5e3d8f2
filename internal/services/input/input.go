package input

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/paulrsmithjnr/firebase-user-password-reset/common/printer"
)

// NewService creates a new input service with standard stdin/stdout.
func NewService() Service {
	return Service{
		Input:  nil, // Will use os.Stdin if nil
		Output: nil, // Will use os.Stdout if nil
	}
}

// NewTestService creates a new input service for testing with custom input/output.
func NewTestService(input io.Reader, output io.Writer) Service {
	return Service{
		Input:  input,
		Output: output,
	}
}

// Prompt displays a prompt and returns user input.
func (s *Service) Prompt(ctx context.Context, prompt, defaultValue string) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
		if prompt != "" {
			s.printf("%s", prompt)
		}
		if defaultValue != "" {
			s.printf(" [%s]: ", defaultValue)
		} else {
			s.printf(": ")
		}

		input, err := s.readLine()
		if err != nil {
			return "", eris.Wrap(err, "failed to read input")
		}

		input = strings.TrimSpace(input)
		if input == "" && defaultValue != "" {
			// Display the default value as if they typed it in
			s.moveCursorUp(1)
			s.moveCursorRight(len(defaultValue) + 4 + len(prompt))
			s.println(defaultValue)
			return defaultValue, nil
		}
		return input, nil
	}
}

// Confirm asks for Y/n confirmation with default.
func (s *Service) Confirm(ctx context.Context, prompt, defaultValue string) (bool, error) {
	for {
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		default:
			input, err := s.Prompt(ctx, prompt, defaultValue)
			if err != nil {
				return false, err
			}

			switch strings.ToLower(input) {
			case "y", "yes":
				return true, nil
			case "n", "no":
				return false, nil
			default:
				s.println("Invalid input. Please enter 'y' or 'n'")
			}
		}
	}
}

// Helper methods for I/O operations

func (s *Service) readLine() (string, error) {
	if s.reader == nil {
		input := s.Input
		if input == nil {
			input = os.Stdin
		}
		s.reader = bufio.NewReader(input)
	}

	line, err := s.reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return line, nil
}

func (s *Service) printf(format string, args ...interface{}) {
	output := s.Output
	if output == nil {
		printer.Info(fmt.Sprintf(format, args...))
		return
	}
	fmt.Fprintf(output, format, args...)
}

func (s *Service) println(text string) {
	output := s.Output
	if output == nil {
		printer.Infoln(text)
		return
	}
	fmt.Fprintln(output, text)
}

func (s *Service) moveCursorUp(lines int) {
	// Cursor movement only makes sense on a real terminal.
	if s.Output == nil {
		printer.MoveCursorUp(lines)
	}
}

func (s *Service) moveCursorRight(chars int) {
	if s.Output == nil {
		printer.MoveCursorRight(chars)
	}
}
