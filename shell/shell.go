// Package shell is the interactive front end: a readline loop that solves
// puzzles repeatedly against a word list kept warm in the cache.
package shell

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/mlatu/beesolver/config"
	"github.com/mlatu/beesolver/report"
	"github.com/mlatu/beesolver/solver"
	"github.com/mlatu/beesolver/wordlist"
)

const helpText = `commands:
  solve <may-use> <must-use> [minlength]   find every usable word and the max score
  generate [size]                          make a puzzle from a random word (default size 7)
  set minlength <n>                        change the minimum word length
  set dialect <default|alternate>          switch word lists
  set parallel <on|off>                    toggle parallel filtering
  show config                              print the current settings
  help                                     this text
  exit                                     leave the shell

letter expressions may use [x-y] ranges, e.g. solve [a-i] oy[r-v]
`

// ShellController owns the readline instance and dispatches commands.
type ShellController struct {
	l   *readline.Instance
	cfg *config.Config
	out io.Writer
}

func filterInput(r rune) (rune, bool) {
	// block CtrlZ feature
	if r == readline.CharCtrlZ {
		return r, false
	}
	return r, true
}

// NewShellController builds a controller with a readline prompt.
func NewShellController(cfg *config.Config) *ShellController {
	l, err := readline.NewEx(&readline.Config{
		Prompt:              "\033[33mbeesolver>\033[0m ",
		HistoryFile:         "/tmp/beesolver_readline.tmp",
		EOFPrompt:           "exit",
		InterruptPrompt:     "^C",
		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	return &ShellController{l: l, cfg: cfg, out: os.Stdout}
}

func (sc *ShellController) showMessage(msg string) {
	io.WriteString(sc.out, msg)
	io.WriteString(sc.out, "\n")
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("error: " + err.Error())
}

// Loop reads and executes commands until EOF, interrupt, or an exit
// command; it then signals the main goroutine to shut down.
func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()
	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			}
			continue
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		if sc.executeLine(strings.TrimSpace(line)) {
			sig <- syscall.SIGINT
			break
		}
	}
	log.Debug().Msg("exiting readline loop")
}

// executeLine runs one command line; it returns true when the shell
// should quit.
func (sc *ShellController) executeLine(line string) bool {
	if line == "" {
		return false
	}
	fields, err := shellquote.Split(line)
	if err != nil {
		sc.showError(err)
		return false
	}
	switch fields[0] {
	case "solve":
		if err := sc.solve(fields[1:]); err != nil {
			sc.showError(err)
		}
	case "generate":
		if err := sc.generate(fields[1:]); err != nil {
			sc.showError(err)
		}
	case "set":
		if err := sc.set(fields[1:]); err != nil {
			sc.showError(err)
		}
	case "show":
		sc.showMessage(fmt.Sprintf("%v", sc.cfg.SanitizedSettings()))
	case "help":
		sc.showMessage(helpText)
	case "exit", "quit":
		return true
	default:
		sc.showMessage("unknown command " + strconv.Quote(fields[0]) + "; try help")
	}
	return false
}

func (sc *ShellController) solve(args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return fmt.Errorf("usage: solve <may-use> <must-use> [minlength]")
	}
	rawMinLength := strconv.Itoa(sc.cfg.GetInt(config.KeyMinWordLength))
	if len(args) == 3 {
		rawMinLength = args[2]
	}
	words, err := wordlist.Load(sc.cfg)
	if err != nil {
		return err
	}
	opts := solver.Options{Parallel: sc.cfg.GetBool(config.KeyParallel)}
	res, err := solver.Solve(context.Background(), words, args[0], args[1], rawMinLength, opts)
	if err != nil {
		return err
	}
	return report.Write(sc.out, res, report.Options{ShowSummary: true})
}

func (sc *ShellController) generate(args []string) error {
	size := solver.DefaultPuzzleSize
	if len(args) > 0 {
		var err error
		size, err = strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("bad puzzle size %q", args[0])
		}
	}
	words, err := wordlist.Load(sc.cfg)
	if err != nil {
		return err
	}
	p, err := solver.GeneratePuzzle(words, size)
	if err != nil {
		return err
	}
	sc.showMessage(fmt.Sprintf("may-use: %s  must-use: %s", p.MayUse, p.MustUse))
	sc.showMessage(fmt.Sprintf("solve it with: solve %s %s", p.MayUse, p.MustUse))
	return nil
}

func (sc *ShellController) set(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: set <minlength|dialect|parallel> <value>")
	}
	switch args[0] {
	case "minlength":
		n, err := strconv.Atoi(args[1])
		if err != nil || n <= 0 {
			return fmt.Errorf("minlength needs a positive integer, got %q", args[1])
		}
		sc.cfg.Set(config.KeyMinWordLength, n)
	case "dialect":
		sc.cfg.Set(config.KeyDialect, args[1])
	case "parallel":
		switch args[1] {
		case "on":
			sc.cfg.Set(config.KeyParallel, true)
		case "off":
			sc.cfg.Set(config.KeyParallel, false)
		default:
			return fmt.Errorf("parallel is on or off, got %q", args[1])
		}
	default:
		return fmt.Errorf("unknown setting %q", args[0])
	}
	sc.showMessage(fmt.Sprintf("set %s to %s", args[0], args[1]))
	return nil
}
