package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/docshare/internal/client/models"
)

// Tasks dispatches the follow-up subcommands: a small personal tracker for
// actions agreed on shared documents, stored in the local database only.
func (a *App) Tasks(ctx context.Context, args []string) {
	sub := "list"
	if len(args) > 0 {
		sub = args[0]
	}

	switch sub {
	case "list":
		a.printTasks(ctx)

	case "add":
		a.addTask(ctx)

	case "done":
		if task, ok := a.taskAt(args[1:]); ok {
			if err := a.followUps.Toggle(ctx, task.ID); err != nil {
				fmt.Fprintln(a.out, "Update failed:", err)
				return
			}
			a.printTasks(ctx)
		}

	case "rm":
		if task, ok := a.taskAt(args[1:]); ok {
			if err := a.followUps.Delete(ctx, task.ID); err != nil {
				fmt.Fprintln(a.out, "Delete failed:", err)
				return
			}
			a.printTasks(ctx)
		}

	default:
		fmt.Fprintln(a.out, "Usage: task [list|add|done <n>|rm <n>]")
	}
}

func (a *App) printTasks(ctx context.Context) {
	tasks, err := a.followUps.List(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Cannot read follow-ups:", err)
		return
	}
	a.tasks = tasks

	if len(tasks) == 0 {
		fmt.Fprintln(a.out, "No follow-ups.")
		return
	}
	for i, t := range tasks {
		mark := " "
		if t.Completed {
			mark = "x"
		}
		fmt.Fprintf(a.out, "%3d. [%s] %-40s %-20s %s\n", i+1, mark, t.Title, t.Responsible, t.DueDate)
		if t.Notes != "" {
			fmt.Fprintf(a.out, "         %s\n", t.Notes)
		}
	}
}

func (a *App) addTask(ctx context.Context) {
	title, err := GetSimpleText(a.reader, "What needs to be done?", a.out)
	if err != nil {
		return
	}
	responsible, err := GetSimpleText(a.reader, "Who is responsible?", a.out)
	if err != nil {
		return
	}
	dueDate, err := GetSimpleText(a.reader, "Due date (free text, e.g. 2026-09-15)", a.out)
	if err != nil {
		return
	}
	notes, err := GetSimpleText(a.reader, "Notes (optional)", a.out)
	if err != nil {
		return
	}

	task, err := a.followUps.Add(ctx, title, responsible, dueDate, notes)
	if err != nil {
		fmt.Fprintln(a.out, "Cannot add follow-up:", err)
		return
	}
	fmt.Fprintf(a.out, "Added: %s\n", task.Title)
	a.printTasks(ctx)
}

// taskAt resolves a printed row number to its follow-up.
func (a *App) taskAt(args []string) (*models.FollowUp, bool) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: task done|rm <n>")
		return nil, false
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(a.tasks) {
		fmt.Fprintln(a.out, "No such follow-up. Run task list first and pick a number.")
		return nil, false
	}
	return a.tasks[n-1], true
}
