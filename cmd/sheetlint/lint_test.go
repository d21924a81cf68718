package main

import (
	"strings"
	"testing"

	"github.com/capyhoc/capyhoc/internal/sheet"
)

func findingWith(findings []Finding, level, substr string) bool {
	for _, f := range findings {
		if f.Level == level && strings.Contains(f.Message, substr) {
			return true
		}
	}
	return false
}

func TestLintResources(t *testing.T) {
	text := "id\ttitle\tLink Url\tmystery\n" +
		"1\tGood row\thttps://youtu.be/ABCDEFGHIJK\t\n" +
		"2\t\t#\t\n" +
		"1\tDuplicate id\t#\t\n" +
		"3\tBad link\thttps://www.youtube.com/channel/abc\t\n"

	findings := lintResources(sheet.Parse(text, sheet.Collapse))

	if !findingWith(findings, "error", "empty title") {
		t.Error("missing-title row not reported")
	}
	if !findingWith(findings, "warn", `reuses id "1"`) {
		t.Error("duplicate id not reported")
	}
	if !findingWith(findings, "warn", "no recognizable video id") {
		t.Error("unrecognizable YouTube link not reported")
	}
	if !findingWith(findings, "warn", `unknown header "mystery"`) {
		t.Error("unknown header not reported")
	}

	if countErrors(findings) != 1 {
		t.Errorf("countErrors() = %d, want 1", countErrors(findings))
	}
}

func TestLintResources_CleanSheet(t *testing.T) {
	text := "id\ttitle\tdescription\tLink Url\tgrade\n" +
		"1\tClean\td\thttps://youtu.be/ABCDEFGHIJK\t3\n"

	findings := lintResources(sheet.Parse(text, sheet.Collapse))
	if len(findings) != 0 {
		t.Errorf("findings = %v, want none for a clean sheet", findings)
	}
}

func TestLintWorksheets(t *testing.T) {
	text := "id_bai_tap\ttieu_de_bai_tap\tcau_hoi\tloai_cau_hoi\tdap_an_a\tdap_an_b\tdap_an_c\tdap_an_d\tdap_an_dung\tgiai_thich\n" +
		"\tOrphan\tq\t\tA\tB\t\t\tA\t\n" +
		"ws1\tT\tNo options\t\t\t\t\t\tA\t\n" +
		"ws1\t\tAnswer mismatch\t\tA\tB\t\t\tC\t\n" +
		"ws1\t\tNo answer\t\tA\tB\t\t\t\t\n" +
		"ws1\t\tWeird type\tmc\tA\tB\t\t\tA\t\n" +
		"ws1\t\tFine\t\tA\tB\t\t\tA\t\n"

	findings := lintWorksheets(sheet.Parse(text, sheet.Underscore))

	if !findingWith(findings, "error", "no worksheet id") {
		t.Error("keyless row not reported")
	}
	if !findingWith(findings, "error", "no options") {
		t.Error("optionless question not reported")
	}
	if !findingWith(findings, "warn", "not among the options") {
		t.Error("answer mismatch not reported")
	}
	if !findingWith(findings, "warn", "can never be marked correct") {
		t.Error("missing answer not reported")
	}
	if !findingWith(findings, "warn", `question type "mc"`) {
		t.Error("unrecognized type not reported")
	}

	if countErrors(findings) != 2 {
		t.Errorf("countErrors() = %d, want 2", countErrors(findings))
	}
}

func TestLintWorksheets_MetadataRowIsFine(t *testing.T) {
	text := "id_bai_tap\ttieu_de_bai_tap\tcau_hoi\tloai_cau_hoi\tdap_an_a\tdap_an_b\tdap_an_c\tdap_an_d\tdap_an_dung\tgiai_thich\n" +
		"ws1\tTitle only\t\t\t\t\t\t\t\t\n" +
		"ws1\t\tq\ttext\t\t\t\t\tanswer\t\n"

	findings := lintWorksheets(sheet.Parse(text, sheet.Underscore))
	if len(findings) != 0 {
		t.Errorf("findings = %v, want none", findings)
	}
}
