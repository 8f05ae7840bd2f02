// Package console reads the player's answers from an input stream and
// prints prompts and stories to an output stream.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	domainerrors "github.com/andrejsstepanovs/madlibs/pkg/errors"
	"github.com/andrejsstepanovs/madlibs/pkg/story"
	"github.com/andrejsstepanovs/madlibs/pkg/utils"
	"github.com/fatih/color"
)

// Presenter is the console side of a round. It implements story.Prompter.
type Presenter struct {
	in      *bufio.Reader
	out     io.Writer
	colored bool

	prompt *color.Color
	pick   *color.Color
	echo   *color.Color
	trace  *color.Color
	result *color.Color
	warn   *color.Color
}

// New returns a Presenter reading lines from in and writing to out.
func New(in io.Reader, out io.Writer, colored bool) *Presenter {
	p := &Presenter{
		in:      bufio.NewReader(in),
		out:     out,
		colored: colored,
		prompt:  color.New(color.FgCyan, color.Bold),
		pick:    color.New(color.FgYellow),
		echo:    color.New(color.FgGreen),
		trace:   color.New(color.Faint),
		result:  color.New(color.FgMagenta, color.Bold),
		warn:    color.New(color.FgRed),
	}
	if !colored {
		for _, c := range []*color.Color{p.prompt, p.pick, p.echo, p.trace, p.result, p.warn} {
			c.DisableColor()
		}
	}
	return p
}

// ReadLine returns the next input line without its line ending. A last line
// without a trailing newline is accepted; reaching the end of input before
// any text is a failure.
func (p *Presenter) ReadLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			return "", domainerrors.ErrIOFailure.WithCause(err)
		}
		if line == "" {
			return "", domainerrors.IOFailure("unexpected end of input")
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// AskGenre prints the genre prompt and returns the raw reply.
func (p *Presenter) AskGenre() (string, error) {
	if _, err := p.prompt.Fprintf(p.out, "Select a type of story (%s): \n", story.GenreNames()); err != nil {
		return "", domainerrors.ErrIOFailure.WithCause(err)
	}
	return p.ReadLine()
}

// Ask prompts for one placeholder and echoes the trimmed reply.
func (p *Presenter) Ask(placeholder string) (string, error) {
	if _, err := p.prompt.Fprintf(p.out, "Enter a %s: \n", placeholder); err != nil {
		return "", domainerrors.ErrIOFailure.WithCause(err)
	}
	line, err := p.ReadLine()
	if err != nil {
		return "", err
	}
	value := strings.TrimSpace(line)
	if _, err := p.echo.Fprintf(p.out, "%s: %s\n", placeholder, value); err != nil {
		return "", domainerrors.ErrIOFailure.WithCause(err)
	}
	return value, nil
}

// ShowPick prints the template that was drawn.
func (p *Presenter) ShowPick(template string) error {
	_, err := p.pick.Fprintf(p.out, "Random pick: %s\n", template)
	return wrapWrite(err)
}

// ShowReplacements dumps every replacement pair.
func (p *Presenter) ShowReplacements(r *story.Replacements) error {
	var err error
	r.Each(func(token, value string) {
		if err != nil {
			return
		}
		_, err = p.trace.Fprintf(p.out, "old word: %s\nnew word: %s\n", token, value)
	})
	return wrapWrite(err)
}

// ShowStory prints the completed story.
func (p *Presenter) ShowStory(text string) error {
	if _, err := p.result.Fprintln(p.out, "Your new story:"); err != nil {
		return wrapWrite(err)
	}
	_, err := fmt.Fprintln(p.out, text)
	return wrapWrite(err)
}

// ShowProblem prints a recoverable problem, e.g. a rejected genre before a
// new attempt.
func (p *Presenter) ShowProblem(problem error) error {
	_, err := p.warn.Fprintln(p.out, problem.Error())
	return wrapWrite(err)
}

// ShowJSON prints v as indented JSON.
func (p *Presenter) ShowJSON(v any) error {
	text, err := utils.ToJsonStr(v, p.colored)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(p.out, text)
	return wrapWrite(err)
}

// Printf writes plain text.
func (p *Presenter) Printf(format string, args ...any) error {
	_, err := fmt.Fprintf(p.out, format, args...)
	return wrapWrite(err)
}

func wrapWrite(err error) error {
	if err == nil {
		return nil
	}
	return domainerrors.ErrIOFailure.WithCause(err)
}
