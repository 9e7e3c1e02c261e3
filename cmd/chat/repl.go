package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/maisondeculture/leguide/internal/conversation"
	"github.com/maisondeculture/leguide/internal/domain"
	"github.com/maisondeculture/leguide/internal/generator"
)

const helpText = `Commands:
  /help                         Show this help
  /quick [id]                   List quick actions, or send one
  /retry                        Retry the last failed message
  /dismiss                      Dismiss the current error
  /lang <en|fr|ro>              Switch language
  /voice                        Start voice input
  /history                      Print the whole conversation
  /guide <scenario> <culture..> Team strategies (scenarios: %s)
  /clear                        Clear the conversation
  /quit                         Exit`

// repl drives a Controller from line-oriented input.
type repl struct {
	ctrl    *conversation.Controller
	in      io.Reader
	out     io.Writer
	printed int

	you, guide, warn, dim func(a ...interface{}) string
}

func newREPL(ctrl *conversation.Controller, in io.Reader, out io.Writer) *repl {
	return &repl{
		ctrl:  ctrl,
		in:    in,
		out:   out,
		you:   color.New(color.FgGreen, color.Bold).SprintFunc(),
		guide: color.New(color.FgCyan, color.Bold).SprintFunc(),
		warn:  color.New(color.FgYellow).SprintFunc(),
		dim:   color.New(color.Faint).SprintFunc(),
	}
}

// run reads commands until EOF, /quit or ctx is done.
func (r *repl) run(ctx context.Context) {
	fmt.Fprintln(r.out, r.guide("Le Guide by Maison de Culture"))
	fmt.Fprintln(r.out, r.dim("Type a message, or /help for commands."))
	fmt.Fprintln(r.out)
	r.flush()

	lines := make(chan string)
	done := make(chan struct{})
	defer close(done)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			case <-done:
				return
			}
		}
	}()

	for {
		fmt.Fprint(r.out, r.you("You: "))
		select {
		case <-ctx.Done():
			fmt.Fprintln(r.out, "\nShutting down...")
			return
		case line, ok := <-lines:
			if !ok {
				fmt.Fprintln(r.out)
				return
			}
			if !r.handle(ctx, strings.TrimSpace(line)) {
				return
			}
		}
	}
}

// handle executes one input line. It returns false when the session should end.
func (r *repl) handle(ctx context.Context, line string) bool {
	if line == "" {
		return true
	}
	if !strings.HasPrefix(line, "/") {
		r.ctrl.SetInput(line)
		fmt.Fprintln(r.out, r.dim("Le Guide is typing..."))
		err := r.ctrl.Send(ctx)
		r.flush()
		if err != nil {
			r.banner()
		}
		return true
	}

	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]
	switch cmd {
	case "/quit", "/exit":
		return false
	case "/help":
		fmt.Fprintf(r.out, helpText+"\n", strings.Join(generator.Scenarios(), ", "))
	case "/clear":
		r.ctrl.Clear(ctx)
		r.printed = 0
		fmt.Fprintln(r.out, r.dim("History cleared."))
	case "/retry":
		r.retry(ctx)
	case "/dismiss":
		r.ctrl.DismissError()
	case "/lang":
		r.setLanguage(ctx, args)
	case "/quick":
		r.quick(ctx, args)
	case "/voice":
		r.ctrl.StartVoice()
		s := r.ctrl.State()
		if s.Error != nil {
			r.banner()
		} else if s.Input != "" {
			fmt.Fprintf(r.out, "%s %s\n", r.dim("Heard:"), s.Input)
			if err := r.ctrl.Send(ctx); err != nil {
				r.flush()
				r.banner()
				return true
			}
			r.flush()
		}
	case "/history":
		r.printed = 0
		r.flush()
	case "/guide":
		if len(args) < 2 {
			fmt.Fprintln(r.out, r.warn("Usage: /guide <scenario> <culture...>"))
			return true
		}
		fmt.Fprintln(r.out, generator.TeamGuidance(args[0], args[1:]))
	default:
		fmt.Fprintf(r.out, "%s %s\n", r.warn("Unknown command:"), cmd)
	}
	return true
}

func (r *repl) retry(ctx context.Context) {
	fmt.Fprintln(r.out, r.dim("Retrying..."))
	err := r.ctrl.Retry(ctx)
	switch {
	case errors.Is(err, conversation.ErrNothingToRetry):
		fmt.Fprintln(r.out, r.dim("Nothing to retry."))
	case errors.Is(err, conversation.ErrMaxRetries):
		r.banner()
	case err != nil:
		r.flush()
		r.banner()
	default:
		r.flush()
	}
}

func (r *repl) setLanguage(ctx context.Context, args []string) {
	if len(args) != 1 || !domain.IsSupportedLanguage(args[0]) {
		fmt.Fprintln(r.out, r.warn("Usage: /lang <en|fr|ro>"))
		return
	}
	r.ctrl.SetLanguage(ctx, args[0])
	if msgs := r.ctrl.State().Messages; len(msgs) == 1 && msgs[0].ID == conversation.WelcomeMessageID {
		r.printed = 0
		r.flush()
	}
	fmt.Fprintf(r.out, "%s %s\n", r.dim("Language:"), r.ctrl.Language())
}

func (r *repl) quick(ctx context.Context, args []string) {
	if len(args) == 0 {
		for _, qa := range conversation.QuickActions() {
			fmt.Fprintf(r.out, "  %-20s %s\n", qa.ID, qa.Title)
		}
		return
	}
	err := r.ctrl.QuickAction(ctx, args[0])
	if errors.Is(err, conversation.ErrUnknownQuickAction) {
		fmt.Fprintf(r.out, "%s %s\n", r.warn("Unknown quick action:"), args[0])
		return
	}
	r.flush()
	if err != nil {
		r.banner()
	}
}

// flush prints the messages added since the last flush.
func (r *repl) flush() {
	msgs := r.ctrl.State().Messages
	if r.printed > len(msgs) {
		r.printed = 0
	}
	for _, m := range msgs[r.printed:] {
		if m.Role == domain.RoleUser {
			fmt.Fprintf(r.out, "%s %s\n", r.you("You:"), m.Content)
			continue
		}
		fmt.Fprintf(r.out, "%s\n%s\n\n", r.guide("Le Guide:"), m.Content)
	}
	r.printed = len(msgs)
}

func (r *repl) banner() {
	b, ok := conversation.BannerFor(r.ctrl.State())
	if !ok {
		return
	}
	fmt.Fprintf(r.out, "%s %s\n", r.warn(b.Title+":"), b.Message)
	if b.Notice != "" {
		line := b.Notice
		if b.RetryLabel != "" {
			line = b.RetryLabel + " with /retry. " + b.Notice
		}
		fmt.Fprintln(r.out, r.dim(line))
	}
}
