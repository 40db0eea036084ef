package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

// getStatus renders the prompt segment describing the current session:
// empty when anonymous, "(username)" when logged in, "(username admin)"
// for administrators.
func (a *App) getStatus() string {
	u, ok := a.session.User()
	if !ok {
		return ""
	}
	s := u.Username
	if u.IsAdmin {
		s += " admin"
	}
	return fmt.Sprintf("(%s)", s)
}

// Root runs the interactive command loop until EOF or an exit command.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to Olyst CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
