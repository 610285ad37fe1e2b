// Package prompt читает ввод с терминала и печатает уведомления CLI.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"itemdesk/internal/app/client/gateway"
	"itemdesk/internal/domain/validation"
)

type Prompter struct {
	in  *bufio.Reader
	out io.Writer
	fd  int
}

// New читает из in. Пароли читаются без эха, только если in является терминалом.
func New(in io.Reader, out io.Writer) *Prompter {
	p := &Prompter{in: bufio.NewReader(in), out: out, fd: -1}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		p.fd = int(f.Fd())
	}
	return p
}

func Stdio() *Prompter {
	return New(os.Stdin, os.Stdout)
}

// Ask выводит вопрос и возвращает строку без пробелов по краям.
// Пустой ответ заменяется на def.
func (p *Prompter) Ask(question, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(p.out, "%s [%s]: ", question, def)
	} else {
		fmt.Fprintf(p.out, "%s: ", question)
	}

	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return def, nil
	}
	return line, nil
}

func (p *Prompter) Password(question string) (string, error) {
	if p.fd < 0 {
		return p.Ask(question, "")
	}

	fmt.Fprintf(p.out, "%s: ", question)
	b, err := term.ReadPassword(p.fd)
	fmt.Fprintln(p.out)
	if err != nil {
		return "", fmt.Errorf("ошибка чтения пароля: %w", err)
	}
	return string(b), nil
}

// Confirm спрашивает да/нет. Пустой ответ считается отказом.
func (p *Prompter) Confirm(question string) bool {
	answer, err := p.Ask(question+" (y/N)", "")
	if err != nil {
		return false
	}
	switch strings.ToLower(answer) {
	case "y", "yes", "д", "да":
		return true
	}
	return false
}

// Report печатает результат неудачной операции. Ошибки валидации
// выводятся построчно у полей, остальные печатаются одним уведомлением.
// Возвращает ошибку для кода выхода.
func Report(out io.Writer, err error) error {
	if err == nil {
		return nil
	}

	switch gateway.Classify(err) {
	case gateway.OutcomeValidation:
		var verr *validation.Error
		errors.As(err, &verr)
		warn := color.New(color.FgYellow)
		for _, msg := range verr.Fields.List() {
			warn.Fprintf(out, "  • %s\n", msg)
		}
		return errors.New("данные не прошли проверку")
	case gateway.OutcomeAuthorization:
		if errors.Is(err, gateway.ErrUnauthorized) {
			return fmt.Errorf("требуется вход: itemdesk auth login (%w)", err)
		}
		return fmt.Errorf("действие запрещено: %w", err)
	}
	return err
}
