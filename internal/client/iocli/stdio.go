package iocli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Stdio реализует IO поверх stdin/stdout
type Stdio struct {
	out    io.Writer
	reader *bufio.Reader
	// file задан, когда ввод идет из терминала или другого *os.File
	file *os.File
}

// NewStdio создает IO для стандартных потоков процесса
func NewStdio() IO {
	return NewStdioWith(os.Stdin, os.Stdout)
}

// NewStdioWith создает IO поверх произвольных потоков
func NewStdioWith(in io.Reader, out io.Writer) *Stdio {
	s := &Stdio{
		out:    out,
		reader: bufio.NewReader(in),
	}
	if f, ok := in.(*os.File); ok {
		s.file = f
	}
	return s
}

func (s *Stdio) Println(a ...any) {
	_, _ = fmt.Fprintln(s.out, a...)
}

func (s *Stdio) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(s.out, format, a...)
}

func (s *Stdio) Write(p []byte) (int, error) {
	return s.out.Write(p)
}

// ReadInput печатает prompt и читает строку без завершающих пробелов.
// Последняя строка без перевода строки тоже принимается.
func (s *Stdio) ReadInput(prompt string) (string, error) {
	s.Printf("%s", prompt)
	input, err := s.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && input != "") {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

// ReadPassword читает пароль без эха, если ввод идет из терминала.
// При перенаправленном вводе пароль читается как обычная строка.
func (s *Stdio) ReadPassword(prompt string) (string, error) {
	if s.file == nil || !term.IsTerminal(int(s.file.Fd())) {
		s.Printf("%s", prompt)
		input, err := s.reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && input != "") {
			return "", err
		}
		return strings.TrimRight(input, "\r\n"), nil
	}

	s.Printf("%s", prompt)
	pwBytes, err := term.ReadPassword(int(s.file.Fd()))
	s.Println("")
	if err != nil {
		return "", err
	}
	return string(pwBytes), nil
}
