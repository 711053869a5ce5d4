// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	t.Parallel()

	for _, id := range []Id{
		DocumentNotFoundId,
		ReferenceNotFoundId,
		MalformedDocumentId,
		CyclicReferenceId,
		SchemaNotFoundId,
		NoModulesFoundId,
		NoTestCasesFoundId,
		ConfigLoadFailedId,
	} {
		card := Get(id)
		if card == nil {
			t.Errorf("Get(%d) = nil", id)
			continue
		}
		if card.Id() != id {
			t.Errorf("Get(%d).Id() = %d", id, card.Id())
		}
		if strings.TrimSpace(string(card.MarkdownMsg())) == "" {
			t.Errorf("Get(%d) has an empty card body", id)
		}
	}

	if Get(Id(999)) != nil {
		t.Error("Get(unknown) should return nil")
	}
}

func TestValues(t *testing.T) {
	t.Parallel()

	all := Values()
	if len(all) != len(issues) {
		t.Fatalf("Values() len = %d, want %d", len(all), len(issues))
	}
}

func TestSorted(t *testing.T) {
	t.Parallel()

	sorted := Sorted()
	if len(sorted) != len(issues) {
		t.Fatalf("Sorted() len = %d, want %d", len(sorted), len(issues))
	}
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].Id() >= sorted[i].Id() {
			t.Fatalf("Sorted() out of order at %d: %d >= %d", i, sorted[i-1].Id(), sorted[i].Id())
		}
	}
}

func TestIssue_Render(t *testing.T) {
	t.Parallel()

	origRender := render
	t.Cleanup(func() { render = origRender })

	var gotStyle string
	render = func(in, style string) (string, error) {
		gotStyle = style
		return "rendered:" + in, nil
	}

	out, err := Get(DocumentNotFoundId).Render("dark")
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if gotStyle != "dark" {
		t.Errorf("style passed through = %q, want dark", gotStyle)
	}
	if !strings.Contains(out, "Module description file not found") {
		t.Errorf("Render() output does not carry the card body:\n%s", out)
	}
}
