package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it
// with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	Folders(ctx context.Context, filter string)
	Select(ctx context.Context, arg string)
	List(ctx context.Context)
	Find(ctx context.Context, term string)
	Upload(ctx context.Context, path string)
	Open(ctx context.Context, idx string)
	CopyLink(ctx context.Context, idx string)
	Remove(ctx context.Context, idx string)
	Tasks(ctx context.Context, args []string)
}

// runREPL starts a simple read–eval–print loop for the docshare client.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands:
//
//	help              — show available commands
//	folders [term]    — list departments, optionally filtered by name
//	cd <folder>       — switch to a department (by slug or name)
//	ls                — list the active department's files
//	find <term>       — filter the file list by name
//	upload <path>     — upload a local file into the active department
//	open <n>          — print the fetch URL of file #n
//	copy <n>          — copy the fetch URL of file #n to the clipboard
//	rm <n>            — delete file #n (asks for confirmation)
//	task ...          — manage follow-up actions (task help for details)
//	exit | quit       — leave the program
//
// Any errors returned by command handlers are ignored here; handlers log
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("docshare (%s) > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			printlnFn("Available commands: folders [term], cd <folder>, ls, find <term>, upload <path>, open <n>, copy <n>, rm <n>, task, exit")

		case "folders":
			a.Folders(ctx, strings.Join(args, " "))

		case "cd":
			if len(args) == 0 {
				printlnFn("Usage: cd <folder>")
				continue
			}
			a.Select(ctx, strings.Join(args, " "))

		case "l", "ls", "list":
			a.List(ctx)

		case "find":
			a.Find(ctx, strings.Join(args, " "))

		case "upload":
			if len(args) == 0 {
				printlnFn("Usage: upload <path>")
				continue
			}
			a.Upload(ctx, strings.Join(args, " "))

		case "open":
			if len(args) == 0 {
				printlnFn("Usage: open <n>")
				continue
			}
			a.Open(ctx, args[0])

		case "copy":
			if len(args) == 0 {
				printlnFn("Usage: copy <n>")
				continue
			}
			a.CopyLink(ctx, args[0])

		case "rm":
			if len(args) == 0 {
				printlnFn("Usage: rm <n>")
				continue
			}
			a.Remove(ctx, args[0])

		case "task", "tasks":
			a.Tasks(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command: " + cmd)
		}
	}
}
