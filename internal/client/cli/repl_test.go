package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	calls []string
	args  []string
}

func (f *fakeExec) record(call, arg string) {
	f.calls = append(f.calls, call)
	f.args = append(f.args, arg)
}

func (f *fakeExec) Folders(ctx context.Context, filter string) { f.record("folders", filter) }
func (f *fakeExec) Select(ctx context.Context, arg string)     { f.record("cd", arg) }
func (f *fakeExec) List(ctx context.Context)                   { f.record("ls", "") }
func (f *fakeExec) Find(ctx context.Context, term string)      { f.record("find", term) }
func (f *fakeExec) Upload(ctx context.Context, path string)    { f.record("upload", path) }
func (f *fakeExec) Open(ctx context.Context, idx string)       { f.record("open", idx) }
func (f *fakeExec) CopyLink(ctx context.Context, idx string)   { f.record("copy", idx) }
func (f *fakeExec) Remove(ctx context.Context, idx string)     { f.record("rm", idx) }
func (f *fakeExec) Tasks(ctx context.Context, args []string) {
	f.record("task", strings.Join(args, " "))
}

func TestRunREPL_CommandDispatch(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader(strings.Join([]string{
		"help",
		"folders dinas",
		"cd dinas-kesehatan",
		"ls",
		"find laporan keuangan",
		"upload ./report.pdf",
		"open 2",
		"copy 1",
		"rm 3",
		"task done 1",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantCalls := []string{"folders", "cd", "ls", "find", "upload", "open", "copy", "rm", "task"}
	wantArgs := []string{"dinas", "dinas-kesehatan", "", "laporan keuangan", "./report.pdf", "2", "1", "3", "done 1"}
	if len(exec.calls) != len(wantCalls) {
		t.Fatalf("calls mismatch: got %v, want %v", exec.calls, wantCalls)
	}
	for i := range wantCalls {
		if exec.calls[i] != wantCalls[i] || exec.args[i] != wantArgs[i] {
			t.Fatalf("call %d: got %s(%q), want %s(%q)", i, exec.calls[i], exec.args[i], wantCalls[i], wantArgs[i])
		}
	}
}

func TestRunREPL_UsageAndQuit(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	// Commands missing their required argument print usage and dispatch
	// nothing.
	input := strings.NewReader("cd\nupload\nopen\ncopy\nrm\nquit\n")
	exec := &fakeExec{}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}

func TestRunREPL_EmptyLinesIgnored(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("\n   \nls\n")
	exec := &fakeExec{}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 1 || exec.calls[0] != "ls" {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
