package diag

import (
	"fmt"

	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
)

// RenderTextDiff computes a unified diff between expected and actual and
// renders it as an error-themed PrintRecord section, enrichment over
// plain MakePrintRecord_AssertText for the common case where
// the two asserted values are both multi-line text: a line-level diff is
// far more useful than printing both values in full.
func RenderTextDiff(expectedName, expected, actualName, actual string) *PrintRecord {
	edits := myers.ComputeEdits(span.URIFromPath(expectedName), expected, actual)
	unified := gotextdiff.ToUnified(expectedName, actualName, expected, edits)
	return MakePrintRecord(fmt.Sprint(unified), ThemeError)
}
