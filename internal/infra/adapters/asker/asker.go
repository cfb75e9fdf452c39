// asker implements the ports.ForAsking interface on top of survey.
package asker

import (
	"context"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"golang.org/x/term"

	"podsite/internal/app/ports"
	"podsite/internal/infra/adapters/logger"
)

type forAsking struct {
	dryrun bool
	force  bool
}

// New returns a terminal asker. With dryrun every question is
// answered no, with force every question is answered yes, otherwise
// the user is prompted (non-terminals answer no).
func New(dryrun, force bool) ports.ForAsking {
	return &forAsking{
		dryrun: dryrun,
		force:  force,
	}
}

func (p *forAsking) Ask(ctx context.Context, format string, a ...any) bool {
	l := logger.FromContext(ctx)
	if p.dryrun {
		l.Info(fmt.Sprintf("%s No (dry-run)", fmt.Sprintf(format, a...)))
		return false
	}
	if p.force {
		l.Info(fmt.Sprintf("%s Yes", fmt.Sprintf(format, a...)))
		return true
	}
	return p.yes(ctx, format, a...)
}

func (p *forAsking) yes(ctx context.Context, format string, a ...any) bool {
	l := logger.FromContext(ctx)
	if !p.isTerminal() {
		l.Warn("Stdout is not a terminal, will answer no", "question", fmt.Sprintf(format, a...))
		return false
	}
	choice := ""
	prompt := &survey.Select{
		Message: fmt.Sprintf(format, a...),
		Options: []string{"No", "Yes", "Exit program"},
		Default: "Yes",
	}
	survey.AskOne(prompt, &choice)
	switch choice {
	case "", "No":
		return false
	case "Yes":
		return true
	case "Exit program":
		l.Warn("Exiting")
		os.Exit(0)
	}
	return false
}

func (p *forAsking) isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
