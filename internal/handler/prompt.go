package handler

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/pkordes/bikeshare-explorer/internal/domain"
)

// prompter asks questions on out and reads one line of input per answer.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// ask writes question and returns the next input line, trimmed and lowercased.
// Returns io.EOF once input is exhausted.
func (p *prompter) ask(question string) (string, error) {
	if _, err := fmt.Fprint(p.out, question); err != nil {
		return "", err
	}
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.ToLower(strings.TrimSpace(p.in.Text())), nil
}

// choose asks question until valid accepts the answer, printing a retry hint
// after every rejected answer.
func (p *prompter) choose(question string, valid func(string) bool) (string, error) {
	for {
		answer, err := p.ask(question)
		if err != nil {
			return "", err
		}
		if valid(answer) {
			return answer, nil
		}
		if _, err := fmt.Fprint(p.out, "\nPlease try again.\n"); err != nil {
			return "", err
		}
	}
}

// yesNo asks a y/n question until the answer is "y" or "n".
func (p *prompter) yesNo(question string) (bool, error) {
	answer, err := p.choose(question, func(s string) bool { return s == "y" || s == "n" })
	if err != nil {
		return false, err
	}
	return answer == "y", nil
}

// validCity accepts any supported city name.
func validCity(s string) bool {
	_, err := domain.ParseCity(s)
	return err == nil
}

// validMonth accepts "all" or one of the months the datasets cover.
func validMonth(s string) bool {
	return s == "all" || slices.Contains(domain.SelectableMonths, s)
}

// validDay accepts "all" or any weekday name.
func validDay(s string) bool {
	_, ok := domain.ParseWeekday(s)
	return ok
}
