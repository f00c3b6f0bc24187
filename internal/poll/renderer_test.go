package poll

import (
	"strings"
	"testing"
)

func TestBuildResults(t *testing.T) {
	p := pollFromExamplePayload(t, nil)
	r := BuildResults(p)

	if r.Question != "Pick one" {
		t.Errorf("Question = %q, want %q", r.Question, "Pick one")
	}
	if r.Total != 4 {
		t.Errorf("Total = %d, want 4", r.Total)
	}
	if !r.Finalized {
		t.Error("expected finalized results")
	}
	if len(r.Lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(r.Lines))
	}
	if !r.Lines[0].Winner || r.Lines[1].Winner {
		t.Errorf("winner flags = %v/%v, want answer A to win", r.Lines[0].Winner, r.Lines[1].Winner)
	}
	if !r.Lines[0].MeVoted {
		t.Error("expected the self-vote to land on answer A")
	}
}

func TestBuildResults_Draft(t *testing.T) {
	p := New("Pick one", 24).AddAnswer("A", nil).AddAnswer("B", nil)
	r := BuildResults(p)

	if r.Total != 0 {
		t.Errorf("Total = %d, want 0 for a draft", r.Total)
	}
	for i, line := range r.Lines {
		if line.Count != 0 || line.Winner {
			t.Errorf("lines[%d] = %+v, want zero count and no winner", i, line)
		}
	}
}

func TestRenderResults(t *testing.T) {
	p := pollFromExamplePayload(t, nil)

	out, err := RenderResults(p)
	if err != nil {
		t.Fatalf("RenderResults failed: %v", err)
	}

	for _, want := range []string{"Pick one", "A — 3", "B — 1", "4 votes in total", "poll closed", "(including me)"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered results missing %q:\n%s", want, out)
		}
	}
}
