// Package prompts asks for the details of an import that were not given on
// the command line.
package prompts

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Nydauron/wcif/wcif"
)

// Prompter reads answers from in after writing each question to out.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Terminal prompts on stderr so that stdout stays free for output.
func Terminal() *Prompter {
	return NewPrompter(os.Stdin, os.Stderr)
}

// Prompt fails only once the input is exhausted.
func (p *Prompter) Prompt(message string) (string, error) {
	fmt.Fprint(p.out, message)
	input, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || input == "") {
		return "", err
	}
	return strings.TrimRight(input, "\r\n"), nil
}

func (p *Prompter) EventPrompt() (wcif.EventID, error) {
	for {
		userInput, err := p.Prompt("Event (id or name): ")
		if err != nil {
			return "", err
		}
		if event, ok := LookupEvent(userInput); ok {
			return event, nil
		}
		fmt.Fprintf(p.out, "Unknown event %q. Try one of: %s\n", userInput, strings.Join(eventKeywords, ", "))
	}
}

func (p *Prompter) RoundPrompt() (uint32, error) {
	for {
		userInput, err := p.Prompt("Round number: ")
		if err != nil {
			return 0, err
		}
		round, err := strconv.ParseUint(strings.TrimSpace(userInput), 10, 32)
		if err == nil && round > 0 {
			return uint32(round), nil
		}
	}
}

// RoundFormatPrompt defaults to the format the event is usually ranked by.
func (p *Prompter) RoundFormatPrompt(event wcif.EventID) (wcif.RoundFormat, error) {
	defaultFormat := DefaultFormat(event)
	for {
		userInput, err := p.Prompt(fmt.Sprintf("Round format (1, 2, 3, a, m) [%s]: ", defaultFormat))
		if err != nil {
			return "", err
		}
		userInput = strings.ToLower(strings.TrimSpace(userInput))
		if userInput == "" {
			return defaultFormat, nil
		}
		if format, err := wcif.ParseRoundFormat(userInput); err == nil {
			return format, nil
		}
	}
}

func (p *Prompter) DatePrompt() (wcif.Date, error) {
	for {
		userInput, err := p.Prompt(fmt.Sprintf("Competition date [%s]: ", time.Now().Format(time.DateOnly)))
		if err != nil {
			return wcif.Date{}, err
		}
		if strings.TrimSpace(userInput) == "" {
			return wcif.ParseDate(time.Now().Format(time.DateOnly))
		}
		if date, err := wcif.ParseDate(strings.TrimSpace(userInput)); err == nil {
			return date, nil
		}
	}
}

func DefaultFormat(event wcif.EventID) wcif.RoundFormat {
	switch {
	case event.IsMultiBlind():
		return wcif.BestOf1
	case event.IsBlind():
		return wcif.BestOf3
	case event.HasAverage():
		return wcif.AverageOf5
	case event.HasMean():
		return wcif.MeanOf3
	}
	return wcif.BestOf3
}
