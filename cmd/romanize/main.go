package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/jusunglee/vocabmigrate/internal/transliteration"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
)

func main() {
	if err := mainE(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

// mainE romanizes its arguments joined by spaces, or each line of stdin when
// there are none.
func mainE() error {
	fs := ff.NewFlagSet("romanize")

	if err := ff.Parse(fs, os.Args[1:]); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("parsing flags: %w", err)
	}

	if args := fs.GetArgs(); len(args) > 0 {
		fmt.Println(transliteration.Romanize(strings.Join(args, " ")))
		return nil
	}

	scanner := bufio.NewScanner(os.Stdin)
	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	for scanner.Scan() {
		fmt.Fprintln(w, transliteration.Romanize(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}
	return nil
}
