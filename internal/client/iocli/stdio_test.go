package iocli

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Проверяем что NewStdio возвращает валидный объект
func TestNewStdio(t *testing.T) {
	stdio := NewStdio()
	assert.NotNil(t, stdio)
}

func TestPrintlnPrintfWrite(t *testing.T) {
	var out bytes.Buffer
	stdio := NewStdioWith(strings.NewReader(""), &out)

	stdio.Println("hello", "world")
	stdio.Printf("test %d %s\n", 1, "abc")
	n, err := stdio.Write([]byte("raw"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	assert.Equal(t, "hello world\ntest 1 abc\nraw", out.String())
}

func TestReadInput(t *testing.T) {
	var out bytes.Buffer
	stdio := NewStdioWith(strings.NewReader("  user input \nsecond\nlast"), &out)

	result, err := stdio.ReadInput("Prompt: ")
	require.NoError(t, err)
	assert.Equal(t, "user input", result)
	assert.Equal(t, "Prompt: ", out.String())

	// Буфер не теряется между вызовами
	result, err = stdio.ReadInput("")
	require.NoError(t, err)
	assert.Equal(t, "second", result)

	// Последняя строка без \n
	result, err = stdio.ReadInput("")
	require.NoError(t, err)
	assert.Equal(t, "last", result)

	_, err = stdio.ReadInput("")
	assert.ErrorIs(t, err, io.EOF)
}

// Тест ReadInput через os.Pipe, как при перенаправленном stdin
func TestReadInput_Pipe(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()

	go func() {
		_, _ = w.Write([]byte("piped\n"))
		_ = w.Close()
	}()

	stdio := NewStdioWith(r, io.Discard)
	result, err := stdio.ReadInput("Prompt: ")
	require.NoError(t, err)
	assert.Equal(t, "piped", result)
}

func TestReadPassword_NotTerminal(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()

	go func() {
		// Пробелы в пароле сохраняются
		_, _ = w.Write([]byte(" s3cret \n"))
		_ = w.Close()
	}()

	var out bytes.Buffer
	stdio := NewStdioWith(r, &out)
	password, err := stdio.ReadPassword("Password: ")
	require.NoError(t, err)
	assert.Equal(t, " s3cret ", password)
	assert.Equal(t, "Password: ", out.String())
}

func TestReadPassword_EmptyInput(t *testing.T) {
	stdio := NewStdioWith(strings.NewReader(""), io.Discard)
	_, err := stdio.ReadPassword("Password: ")
	assert.ErrorIs(t, err, io.EOF)
}
