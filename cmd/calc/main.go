/*
Calc is the sample arithmetic calculator built on the table-driven
shift-reduce runtime. It evaluates expressions over non-negative
integer literals with + - * / and parentheses (there is no unary minus).

Usage:

	calc [flags] [EXPRESSION]

If EXPRESSION is given, it is evaluated once and the result (or error)
is printed. Otherwise calc reads one expression per line: via GNU
readline-style interactive editing when stdin is a tty, or directly
from stdin otherwise.

The flags are:

	-d, --direct
		Force reading directly from stdin instead of going through
		the readline line editor, even when connected to a tty.
*/
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"

	"github.com/ZhukDmitryOlegovich/compgen/calc"
)

const (
	ExitSuccess = iota
	ExitEvalError
)

var (
	returnCode  = ExitSuccess
	forceDirect = pflag.BoolP("direct", "d", false, "force reading directly from stdin instead of readline")
)

func main() {
	defer func() { os.Exit(returnCode) }()
	pflag.Parse()

	if expr := pflag.Arg(0); expr != "" {
		printResult(expr)
		return
	}

	if *forceDirect || !isatty.IsTerminal(os.Stdin.Fd()) {
		runDirect()
		return
	}
	runInteractive()
}

func printResult(expr string) {
	result, err := calc.Evaluate(expr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		returnCode = ExitEvalError
		return
	}
	fmt.Println(result)
}

func runDirect() {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		result, err := calc.Evaluate(line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
			returnCode = ExitEvalError
			continue
		}
		fmt.Println(result)
	}
}

func runInteractive() {
	rl, err := readline.NewEx(&readline.Config{Prompt: "calc> "})
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: create readline config: %s\n", err)
		returnCode = ExitEvalError
		return
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err == io.EOF || err == readline.ErrInterrupt {
			return
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
			return
		}
		if line == "" {
			continue
		}
		result, err := calc.Evaluate(line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
			returnCode = ExitEvalError
			continue
		}
		fmt.Println(result)
	}
}
