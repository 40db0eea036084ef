package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isAdmin() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Categories(ctx context.Context) error
	Products(ctx context.Context) error
	Featured(ctx context.Context) error
	Show(ctx context.Context) error
	Review(ctx context.Context) error
	Buy(ctx context.Context) error
	Purchases(ctx context.Context) error
	Referral(ctx context.Context) error
	AdminProducts(ctx context.Context) error
	AddProduct(ctx context.Context) error
	EditProduct(ctx context.Context) error
	DeleteProduct(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the Olyst CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Always available:
//	  - help           — show available commands
//	  - categories     — list product categories
//	  - products       — browse products with optional filters
//	  - featured       — show the featured selection
//	  - show           — show a single product (interactive ID prompt)
//	  - review         — leave a review on a product
//	  - exit | quit    — leave the program
//
//	Not logged in:
//	  - register       — create an account
//	  - login          — authenticate
//
//	Logged in:
//	  - whoami         — show the current identity
//	  - buy            — order a product
//	  - purchases      — list past purchases
//	  - referral       — show the referral code and link
//	  - logout         — log out
//
//	Admin only:
//	  - aproducts      — list all products, active and inactive
//	  - addproduct     — create a product
//	  - editproduct    — update a product
//	  - delproduct     — delete a product
//
// Any errors returned by command handlers are ignored here; handlers print
// their own messages. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("olyst %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			printHelp(a)

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "categories":
			_ = a.Categories(ctx)

		case "p", "products":
			_ = a.Products(ctx)

		case "featured":
			_ = a.Featured(ctx)

		case "show":
			_ = a.Show(ctx)

		case "review":
			_ = a.Review(ctx)

		case "buy":
			_ = a.Buy(ctx)

		case "purchases":
			_ = a.Purchases(ctx)

		case "referral":
			_ = a.Referral(ctx)

		case "aproducts":
			_ = a.AdminProducts(ctx)

		case "addproduct":
			_ = a.AddProduct(ctx)

		case "editproduct":
			_ = a.EditProduct(ctx)

		case "delproduct":
			_ = a.DeleteProduct(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func printHelp(a execIface) {
	printlnFn("Available commands: categories, (p)roducts, featured, show, review, exit")
	if a.isLoggedIn() {
		printlnFn("Account: whoami, buy, purchases, referral, logout")
	} else {
		printlnFn("Account: register, login")
	}
	if a.isAdmin() {
		printlnFn("Admin: aproducts, addproduct, editproduct, delproduct")
	}
}
