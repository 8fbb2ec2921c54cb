package cmd

import (
	"strings"
	"testing"

	"github.com/boozedog/smoovboard/internal/ticket"
)

func TestStatus_MovesTicket(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.runCmd(t, "status", "tk_cli01", "in-progress", "-m", "picking this up")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "tk_cli01: → In Progress") {
		t.Errorf("output = %q, want substring %q", out, "tk_cli01: → In Progress")
	}

	tk, err := env.Board.Tickets().Get("tk_cli01")
	if err != nil {
		t.Fatalf("get ticket: %v", err)
	}
	if tk.Status != ticket.StatusInProgress {
		t.Errorf("status = %q, want In Progress", tk.Status)
	}
	if len(tk.Comments) != 1 || tk.Comments[0].Text != "picking this up" {
		t.Errorf("comments = %+v, want the move comment", tk.Comments)
	}
}

func TestStatus_RequiresComment(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.runCmd(t, "status", "tk_cli01", "in-progress")
	if err == nil {
		t.Fatal("expected error when no comment given")
	}
	if !strings.Contains(err.Error(), "a comment is required") {
		t.Errorf("error = %q, want substring %q", err.Error(), "a comment is required")
	}

	tk, err := env.Board.Tickets().Get("tk_cli01")
	if err != nil {
		t.Fatalf("get ticket: %v", err)
	}
	if tk.Status != ticket.StatusTodo || len(tk.Comments) != 0 {
		t.Error("ticket changed despite missing comment")
	}
}

func TestStatus_InvalidAlias(t *testing.T) {
	env := newTestEnv(t)
	_ = env

	_, err := env.runCmd(t, "status", "tk_cli01", "bogus", "-m", "x")
	if err == nil {
		t.Fatal("expected error for unknown status")
	}
}

func TestStatus_RejectsSkippedColumn(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.runCmd(t, "status", "tk_cli01", "done", "-m", "skipping ahead")
	if err == nil {
		t.Fatal("expected error for To Do → Done")
	}
	if !strings.Contains(err.Error(), "cannot move") {
		t.Errorf("error = %q, want substring %q", err.Error(), "cannot move")
	}

	tk, err := env.Board.Tickets().Get("tk_cli01")
	if err != nil {
		t.Fatalf("get ticket: %v", err)
	}
	if tk.Status != ticket.StatusTodo {
		t.Errorf("status = %q, want To Do", tk.Status)
	}
}
