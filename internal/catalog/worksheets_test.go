package catalog_test

import (
	"testing"

	"github.com/capyhoc/capyhoc/internal/catalog"
	"github.com/capyhoc/capyhoc/internal/sheet"
)

const worksheetHeader = "id_bai_tap\ttieu_de_bai_tap\tcau_hoi\tloai_cau_hoi\tdap_an_a\tdap_an_b\tdap_an_c\tdap_an_d\tdap_an_dung\tgiai_thich\n"

func parseWorksheets(t *testing.T, text string) []catalog.Worksheet {
	t.Helper()
	return catalog.Worksheets(sheet.Parse(text, sheet.Underscore))
}

func TestWorksheets_Grouping(t *testing.T) {
	text := worksheetHeader +
		"ws1\tÔn tập Ngữ pháp\t\t\t\t\t\t\t\t\n" +
		"ws1\t\t1 + 1 = ?\t\t1\t2\t3\t4\t2\t\n" +
		"ws1\t\t2 + 2 = ?\t\t2\t3\t4\t5\t4\t\n"

	sheets := parseWorksheets(t, text)
	if len(sheets) != 1 {
		t.Fatalf("Worksheets() produced %d worksheets, want 1", len(sheets))
	}

	ws := sheets[0]
	if ws.ID != "ws1" {
		t.Errorf("ID = %q, want ws1", ws.ID)
	}
	if ws.Title != "Ôn tập Ngữ pháp" {
		t.Errorf("Title = %q, want title from the header row", ws.Title)
	}
	if len(ws.Questions) != 2 {
		t.Fatalf("len(Questions) = %d, want 2 (title-only row adds no question)", len(ws.Questions))
	}
	if ws.Questions[0].Text != "1 + 1 = ?" || ws.Questions[1].Text != "2 + 2 = ?" {
		t.Errorf("question order not preserved: %q, %q", ws.Questions[0].Text, ws.Questions[1].Text)
	}
}

func TestWorksheets_OutputOrderIsFirstSeen(t *testing.T) {
	text := worksheetHeader +
		"b\tB\tq1\t\t\t\t\t\t\t\n" +
		"a\tA\tq2\t\t\t\t\t\t\t\n" +
		"b\t\tq3\t\t\t\t\t\t\t\n"

	sheets := parseWorksheets(t, text)
	if len(sheets) != 2 {
		t.Fatalf("Worksheets() produced %d worksheets, want 2", len(sheets))
	}
	if sheets[0].ID != "b" || sheets[1].ID != "a" {
		t.Errorf("order = %q, %q, want first-seen order b, a", sheets[0].ID, sheets[1].ID)
	}
	if len(sheets[0].Questions) != 2 {
		t.Errorf("len(b.Questions) = %d, want 2 (disjoint rows aggregate)", len(sheets[0].Questions))
	}
}

func TestWorksheets_SkipsKeylessRows(t *testing.T) {
	text := worksheetHeader +
		"\tNo key\torphan question\t\t\t\t\t\t\t\n" +
		"ws1\tReal\tq\t\t\t\t\t\t\t\n"

	sheets := parseWorksheets(t, text)
	if len(sheets) != 1 {
		t.Fatalf("Worksheets() produced %d worksheets, want 1 (keyless row skipped)", len(sheets))
	}
}

func TestWorksheets_IDAlias(t *testing.T) {
	text := "id\ttitle\tcau_hoi\n" +
		"ws9\tFallback headers\tq\n"

	sheets := parseWorksheets(t, text)
	if len(sheets) != 1 || sheets[0].ID != "ws9" {
		t.Fatalf("Worksheets() = %+v, want one worksheet keyed by the id fallback header", sheets)
	}
	if sheets[0].Title != "Fallback headers" {
		t.Errorf("Title = %q, want value from title fallback header", sheets[0].Title)
	}
}

func TestWorksheets_UntitledSentinel(t *testing.T) {
	text := worksheetHeader +
		"ws1\t\tq\t\t\t\t\t\t\t\n"

	sheets := parseWorksheets(t, text)
	if sheets[0].Title != catalog.UntitledWorksheet {
		t.Errorf("Title = %q, want sentinel %q", sheets[0].Title, catalog.UntitledWorksheet)
	}
}

func TestWorksheets_QuestionTypes(t *testing.T) {
	text := worksheetHeader +
		"ws1\tT\tDefault type?\t\tA\tB\t\t\tA\t\n" +
		"ws1\t\tFree text?\tText\tA\tB\t\t\tanswer\t\n" +
		"ws1\t\tUpper free text?\tTEXT\t\t\t\t\tanswer\t\n" +
		"ws1\t\tUnknown type?\ttrắc nghiệm\tA\tB\t\t\tB\t\n"

	qs := parseWorksheets(t, text)[0].Questions
	if len(qs) != 4 {
		t.Fatalf("len(Questions) = %d, want 4", len(qs))
	}

	if qs[0].Type != catalog.MultipleChoice {
		t.Errorf("empty loai_cau_hoi: Type = %q, want multiple-choice default", qs[0].Type)
	}
	if qs[1].Type != catalog.FreeText || qs[2].Type != catalog.FreeText {
		t.Errorf("Types = %q, %q, want text for any casing of \"text\"", qs[1].Type, qs[2].Type)
	}
	if qs[1].Options != nil {
		t.Errorf("Options = %v, want none for free-text questions", qs[1].Options)
	}
	if qs[3].Type != catalog.MultipleChoice {
		t.Errorf("unrecognized type: Type = %q, want multiple-choice", qs[3].Type)
	}
}

func TestWorksheets_OptionGaps(t *testing.T) {
	text := worksheetHeader +
		"ws1\tT\tPick one\t\tX\t\tY\tZ\tY\t\n"

	qs := parseWorksheets(t, text)[0].Questions
	want := []string{"X", "Y", "Z"}
	if len(qs[0].Options) != len(want) {
		t.Fatalf("Options = %v, want %v (blank skipped, order kept)", qs[0].Options, want)
	}
	for i, o := range want {
		if qs[0].Options[i] != o {
			t.Errorf("Options[%d] = %q, want %q", i, qs[0].Options[i], o)
		}
	}
}

func TestWorksheets_QuestionIDsUnique(t *testing.T) {
	text := worksheetHeader +
		"ws1\tT\tq1\t\t\t\t\t\t\t\n" +
		"ws2\tU\tq\t\t\t\t\t\t\t\n" +
		"ws1\t\tq2\t\t\t\t\t\t\t\n"

	sheets := parseWorksheets(t, text)
	seen := map[string]bool{}
	for _, ws := range sheets {
		for _, q := range ws.Questions {
			if seen[q.ID] {
				t.Errorf("duplicate question id %q", q.ID)
			}
			seen[q.ID] = true
		}
	}

	// Ids are tied to worksheet key and source line position.
	if got := sheets[0].Questions[0].ID; got != "q-ws1-1" {
		t.Errorf("Question.ID = %q, want q-ws1-1", got)
	}
	if got := sheets[0].Questions[1].ID; got != "q-ws1-3" {
		t.Errorf("Question.ID = %q, want q-ws1-3", got)
	}
}

func TestWorksheets_AnswerAndExplanation(t *testing.T) {
	text := worksheetHeader +
		"ws1\tT\tq\t\tA\tB\t\t\tB\tBecause B\n" +
		"ws1\t\tq2\t\tA\tB\t\t\t\t\n"

	qs := parseWorksheets(t, text)[0].Questions
	if qs[0].CorrectAnswer != "B" || qs[0].Explanation != "Because B" {
		t.Errorf("got answer %q explanation %q", qs[0].CorrectAnswer, qs[0].Explanation)
	}
	if qs[1].CorrectAnswer != "" {
		t.Errorf("CorrectAnswer = %q, want empty default", qs[1].CorrectAnswer)
	}
}

func TestWorksheets_EmptyInput(t *testing.T) {
	if got := parseWorksheets(t, ""); len(got) != 0 {
		t.Errorf("Worksheets(empty) produced %d worksheets, want 0", len(got))
	}
	if got := parseWorksheets(t, worksheetHeader); len(got) != 0 {
		t.Errorf("Worksheets(header-only) produced %d worksheets, want 0", len(got))
	}
}
