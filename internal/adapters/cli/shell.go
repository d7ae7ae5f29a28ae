package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// Shell executes command lines against one session. A failed line is reported
// and the shell moves on to the next one.
type Shell struct {
	session *Session
	out     io.Writer
	prompt  string
	echo    bool
}

func NewShell(s *Session, out io.Writer) *Shell {
	sh := &Shell{session: s, out: out}
	if s.Config != nil {
		sh.prompt = s.Config.Shell.Prompt
		sh.echo = s.Config.Shell.Echo
	}
	return sh
}

// newWorldCommand builds the command tree understood by the shell.
// It is rebuilt per line so flag values never leak between lines.
func newWorldCommand(s *Session) *cobra.Command {
	root := &cobra.Command{
		Use:           "",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	addWorldCommands(root, s)
	return root
}

func addWorldCommands(root *cobra.Command, s *Session) {
	root.AddCommand(newProducerCommand(s))
	root.AddCommand(newFactoryCommand(s))
	root.AddCommand(newMarketCommand(s))
	root.AddCommand(newCustomerCommand(s))
	root.AddCommand(newBalancesCommand(s))
	root.AddCommand(newLedgerCommand(s))
}

// Execute runs a single line. exit is true when the line asks the shell to stop.
func (sh *Shell) Execute(ctx context.Context, line string) (exit bool, err error) {
	args, err := Tokenize(line)
	if err != nil {
		return false, err
	}
	if len(args) == 0 {
		return false, nil
	}

	switch strings.ToLower(args[0]) {
	case "exit", "quit":
		return true, nil
	}

	cmd := newWorldCommand(sh.session)
	cmd.SetArgs(args)
	cmd.SetOut(sh.out)
	cmd.SetErr(sh.out)
	return false, cmd.ExecuteContext(ctx)
}

// Run reads lines until EOF or exit and returns how many lines failed.
// interactive turns the prompt on.
func (sh *Shell) Run(ctx context.Context, in io.Reader, interactive bool) (int, error) {
	scanner := bufio.NewScanner(in)
	failures := 0

	for {
		if interactive {
			fmt.Fprint(sh.out, sh.prompt)
		}
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if sh.echo && strings.TrimSpace(line) != "" {
			fmt.Fprintf(sh.out, "%s%s\n", sh.prompt, line)
		}

		exit, err := sh.Execute(ctx, line)
		if err != nil {
			failures++
			fmt.Fprintln(sh.out, formatError(err))
		}
		if exit {
			break
		}
		if ctx.Err() != nil {
			return failures, ctx.Err()
		}
	}

	if interactive {
		fmt.Fprintln(sh.out)
	}
	return failures, scanner.Err()
}

// newShellCommand starts an interactive session on stdin
func newShellCommand(s *Session) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive shell against a single world",
		Long: `Start an interactive shell. Every line is one command, for example:

  factory manufacture "Furniture Factory" Chair 2
  customer buy John "Downtown Mall" Chair 1

Type "help" for the command list and "exit" to leave.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			shell := NewShell(s, cmd.OutOrStdout())
			_, err := shell.Run(cmd.Context(), cmd.InOrStdin(), isTerminal(cmd.InOrStdin()))
			return err
		},
	}
}

// newRunCommand executes script files line by line
func newRunCommand(s *Session) *cobra.Command {
	var stopOnError bool

	cmd := &cobra.Command{
		Use:   "run <script> [script ...]",
		Short: "Execute shell scripts against a single world",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shell := NewShell(s, cmd.OutOrStdout())
			failures := 0
			for _, path := range args {
				n, err := runScript(cmd.Context(), shell, path, stopOnError)
				failures += n
				if err != nil {
					return err
				}
				if stopOnError && failures > 0 {
					break
				}
			}
			if failures > 0 {
				return fmt.Errorf("%d command(s) failed", failures)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&stopOnError, "stop-on-error", false, "Stop at the first failing line")
	return cmd
}

func runScript(ctx context.Context, shell *Shell, path string, stopOnError bool) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open script: %w", err)
	}
	defer f.Close()

	if !stopOnError {
		return shell.Run(ctx, f, false)
	}

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if shell.echo && strings.TrimSpace(scanner.Text()) != "" {
			fmt.Fprintf(shell.out, "%s%s\n", shell.prompt, scanner.Text())
		}
		exit, err := shell.Execute(ctx, scanner.Text())
		if err != nil {
			fmt.Fprintln(shell.out, formatError(err))
			return 1, nil
		}
		if exit {
			break
		}
	}
	return 0, scanner.Err()
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
