package cli

import (
	"errors"
	"flag"
	"fmt"
	"slices"
	"strings"
	"text/template"
	"unicode/utf8"

	"github.com/iudanet/cloudstore/internal/client/api"
	"github.com/iudanet/cloudstore/internal/models"
)

// displayTimeLayout формат времени в выводе CLI
const displayTimeLayout = "2006-01-02 15:04:05 UTC"

var templateFuncs = template.FuncMap{
	"formatTime": formatTime,
	"truncate":   truncate,
}

// render выполняет шаблон и пишет результат в IO
func (c *Cli) render(name, text string, data any) error {
	tmpl, err := template.New(name).Funcs(templateFuncs).Parse(text)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}
	if err := tmpl.Execute(c.io, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}
	return nil
}

// formatTime показывает ISO-8601 время сервера в читаемом виде
func formatTime(s string) string {
	t, err := models.ParseTimestamp(s)
	if err != nil {
		return s
	}
	return t.Format(displayTimeLayout)
}

// truncate обрезает строку до n символов, переводы строк заменяются пробелами
func truncate(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n-1]) + "…"
}

// requireSession добавляет подсказку к ErrNoSession
func requireSession(err error) error {
	if errors.Is(err, api.ErrNoSession) {
		return fmt.Errorf("%w: please run 'cloudstore login' first", err)
	}
	return err
}

// parseArgs разбирает флаги в любом месте списка аргументов.
// Все после "--" считается позиционными аргументами.
func parseArgs(fs *flag.FlagSet, args []string) ([]string, error) {
	var tail []string
	if i := slices.Index(args, "--"); i >= 0 {
		args, tail = args[:i], args[i+1:]
	}

	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		args = fs.Args()
		if len(args) == 0 {
			break
		}
		positional = append(positional, args[0])
		args = args[1:]
	}

	return append(positional, tail...), nil
}

// isYes сообщает, что пользователь подтвердил действие
func isYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes", "д", "да":
		return true
	}
	return false
}
