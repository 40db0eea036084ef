package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool
	admin    bool

	calls []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) isAdmin() bool    { return f.admin }
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) Whoami(ctx context.Context) error {
	f.calls = append(f.calls, "whoami")
	return nil
}
func (f *fakeExec) Categories(ctx context.Context) error {
	f.calls = append(f.calls, "categories")
	return nil
}
func (f *fakeExec) Products(ctx context.Context) error {
	f.calls = append(f.calls, "products")
	return nil
}
func (f *fakeExec) Featured(ctx context.Context) error {
	f.calls = append(f.calls, "featured")
	return nil
}
func (f *fakeExec) Show(ctx context.Context) error {
	f.calls = append(f.calls, "show")
	return nil
}
func (f *fakeExec) Review(ctx context.Context) error {
	f.calls = append(f.calls, "review")
	return nil
}
func (f *fakeExec) Buy(ctx context.Context) error {
	f.calls = append(f.calls, "buy")
	return nil
}
func (f *fakeExec) Purchases(ctx context.Context) error {
	f.calls = append(f.calls, "purchases")
	return nil
}
func (f *fakeExec) Referral(ctx context.Context) error {
	f.calls = append(f.calls, "referral")
	return nil
}
func (f *fakeExec) AdminProducts(ctx context.Context) error {
	f.calls = append(f.calls, "aproducts")
	return nil
}
func (f *fakeExec) AddProduct(ctx context.Context) error {
	f.calls = append(f.calls, "addproduct")
	return nil
}
func (f *fakeExec) EditProduct(ctx context.Context) error {
	f.calls = append(f.calls, "editproduct")
	return nil
}
func (f *fakeExec) DeleteProduct(ctx context.Context) error {
	f.calls = append(f.calls, "delproduct")
	return nil
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"products",
		"show",
		"buy",
		"purchases",
		"foobar",
		"logout",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"login", "products", "show", "buy", "purchases", "logout"}
	if len(exec.calls) < len(wantOrder) {
		t.Fatalf("few calls: %+v", exec.calls)
	}
	idx := 0
	for _, c := range exec.calls {
		if idx < len(wantOrder) && c == wantOrder[idx] {
			idx++
		}
	}
	if idx != len(wantOrder) {
		t.Fatalf("commands order mismatch: got %v, want subseq %v", exec.calls, wantOrder)
	}
}

func TestRunREPL_AdminCommands(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("aproducts\naddproduct\neditproduct\ndelproduct\nquit\n")
	exec := &fakeExec{loggedIn: true, admin: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "(root admin)" }, sc)

	want := []string{"aproducts", "addproduct", "editproduct", "delproduct"}
	if len(exec.calls) != len(want) {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
	for i, c := range want {
		if exec.calls[i] != c {
			t.Fatalf("call %d: got %q, want %q", i, exec.calls[i], c)
		}
	}
}

func TestRunREPL_UnknownAndQuit(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("frobnicate\n\nquit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
