// Command passhash prints a bcrypt hash for AUTH_PASSPHRASE_HASH.
//
// The passphrase is read from the first argument or, when absent, from the
// first line of standard input.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/pageza/calorie-quest/backend/internal/service"
)

func main() {
	var passphrase string
	if len(os.Args) > 1 {
		passphrase = os.Args[1]
	} else {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(os.Stderr, "usage: passhash <passphrase>")
			os.Exit(2)
		}
		passphrase = strings.TrimRight(line, "\r\n")
	}

	hash, err := service.HashPassphrase(passphrase)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to hash passphrase: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(hash)
}
