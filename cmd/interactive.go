package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"swap-preview/pkg/parser"
	"swap-preview/pkg/selection"
)

const sessionHelp = `Session commands:
  source <SYMBOL>   choose the source token (clears the target)
  target <SYMBOL>   choose the target token
  amount <USD>      enter the USD amount, e.g. 100 or $1,250.50
  invert            swap source and target
  tokens            list tokens you can pick as target (or source)
  show              print the current preview
  help              show this help
  quit              leave the session`

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"i"},
	Short:   "Build a preview step by step",
	Long: `Start an interactive session: choose a source token, then a target token,
then type a USD amount. The preview updates after every step.

` + sessionHelp,
	Run: runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

func runInteractive(cmd *cobra.Command, args []string) {
	tokens, err := loadCatalog(cmd)
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	sel := selection.New(tokens)
	displayTokenList(os.Stdout, "Available tokens", sel.Catalog())
	fmt.Println("\nType 'help' for commands.")

	if err := runSession(os.Stdin, os.Stdout, sel); err != nil {
		printError(err)
		os.Exit(1)
	}
}

// runSession reads session commands until quit or end of input
func runSession(in io.Reader, out io.Writer, sel *selection.Selection) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprintf(out, "\n[%s] > ", sel.State())
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		if quit := handleLine(out, sel, scanner.Text()); quit {
			return nil
		}
	}
}

// handleLine applies one session command. It reports whether to quit.
func handleLine(out io.Writer, sel *selection.Selection, line string) bool {
	command, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(command) {
	case "":
		return false
	case "quit", "exit", "q":
		return true
	case "help", "?":
		fmt.Fprintln(out, sessionHelp)
		return false
	case "tokens", "ls":
		if sel.State() == selection.Empty {
			displayTokenList(out, "Source tokens", sel.Catalog())
		} else {
			displayTokenList(out, "Target tokens", sel.TargetCandidates())
		}
		return false
	case "source", "from":
		if err := sel.SelectSource(parser.NormalizeTokenSymbol(arg)); err != nil {
			printHint(out, err)
			return false
		}
		if sel.State() == selection.SourceOnly {
			displayTokenList(out, "Target tokens", sel.TargetCandidates())
		}
	case "target", "to":
		if err := sel.SelectTarget(parser.NormalizeTokenSymbol(arg)); err != nil {
			printHint(out, err)
			return false
		}
	case "amount", "usd":
		if err := sel.SetAmountInput(arg); err != nil {
			printHint(out, err)
		}
	case "invert", "swap":
		if err := sel.Invert(); err != nil {
			printHint(out, err)
			return false
		}
	case "show":
	default:
		if arg == "" && strings.ContainsAny(command[:1], "$.0123456789") {
			// A bare number is an amount
			if err := sel.SetAmountInput(command); err != nil {
				printHint(out, err)
			}
			break
		}
		fmt.Fprintf(out, "Unknown command %q. Type 'help' for commands.\n", command)
		return false
	}

	showStatus(out, sel)
	return false
}

// showStatus prints the preview once it's ready, otherwise what is missing
func showStatus(out io.Writer, sel *selection.Selection) {
	p, err := sel.Preview()
	if err == nil {
		displayPreview(out, p)
		return
	}

	switch sel.State() {
	case selection.Empty:
		fmt.Fprintln(out, "Choose a source token: source <SYMBOL>")
	case selection.SourceOnly:
		fmt.Fprintln(out, "Choose a target token: target <SYMBOL>")
	default:
		if sel.USDAmount() <= 0 {
			fmt.Fprintln(out, "Enter a USD amount: amount <USD>")
		} else {
			fmt.Fprintln(out, "Quote not ready: a selected token has no price.")
		}
	}
}

func printHint(out io.Writer, err error) {
	switch {
	case errors.Is(err, parser.ErrInvalidAmount):
		fmt.Fprintln(out, color.YellowString("Not a number, amount reset to 0."))
	default:
		fmt.Fprintln(out, color.YellowString("%v", err))
	}
}
