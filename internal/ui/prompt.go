package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirm asks a single yes/no question on out and reads one answer line from in.
// An empty answer, or EOF before any input, returns def. Only "y" and "yes"
// (any case) count as yes; everything else is no. There is no retry loop.
func Confirm(in io.Reader, out io.Writer, question string, def bool) (bool, error) {
	hint := "[y/N]"
	if def {
		hint = "[Y/n]"
	}
	fmt.Fprintf(out, "%s %s: ", question, hint)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	if err == io.EOF && line == "" {
		fmt.Fprintln(out)
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "":
		return def, nil
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
