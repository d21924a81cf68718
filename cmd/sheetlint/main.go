// Command sheetlint validates a sheet export before it is published. It
// reports rows the content viewer would silently drop and questions that
// cannot be answered, so editors can fix the sheet instead of wondering
// where their content went.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"

	"github.com/capyhoc/capyhoc/internal/sheet"
)

var kind string

func main() {
	rootCmd := &cobra.Command{
		Use:   "sheetlint [sheet file]",
		Short: "Validate a TSV or XLSX sheet export before publishing",
		Long: `sheetlint parses a sheet export exactly the way the content viewer does
and reports every row that would be dropped or degraded: missing titles,
missing worksheet ids, unanswerable questions, unknown headers.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVar(&kind, "kind", "resources", "Sheet kind: resources or worksheets")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	path := args[0]

	text, err := readSheet(path)
	if err != nil {
		return err
	}

	var findings []Finding
	switch kind {
	case "resources":
		findings = lintResources(sheet.Parse(text, sheet.Collapse))
	case "worksheets":
		findings = lintWorksheets(sheet.Parse(text, sheet.Underscore))
	default:
		return fmt.Errorf("unknown kind %q: want resources or worksheets", kind)
	}

	for _, f := range findings {
		fmt.Println(f)
	}

	if n := countErrors(findings); n > 0 {
		return fmt.Errorf("%d row(s) would be dropped", n)
	}
	fmt.Printf("%s: ok (%d warning(s))\n", path, len(findings))
	return nil
}

// readSheet loads a sheet export as TSV text. XLSX files are flattened to
// the same tab-separated form the published export produces.
func readSheet(path string) (string, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return readXLSX(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

func readXLSX(path string) (string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", fmt.Errorf("%s has no sheets", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return "", fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}

	var b strings.Builder
	for _, row := range rows {
		b.WriteString(strings.Join(row, "\t"))
		b.WriteByte('\n')
	}
	return b.String(), nil
}
