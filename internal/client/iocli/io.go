package iocli

//go:generate moq -out io_mock.go . IO

// IO is the terminal used by CLI commands: output, line input and hidden password input
type IO interface {
	Println(a ...any)
	Printf(format string, a ...any)
	// Write нужен для text/template и flag.FlagSet.SetOutput
	Write(p []byte) (n int, err error)

	// ReadInput печатает prompt и читает строку без перевода строки
	ReadInput(prompt string) (string, error)
	// ReadPassword читает пароль без эха, если stdin терминал
	ReadPassword(prompt string) (string, error)
}
