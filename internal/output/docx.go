package output

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/nguyentantai21042004/summary-flow/internal/pipeline"
)

var (
	reHeading  = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	reBullet   = regexp.MustCompile(`^[\-\*+]\s+(.+)$`)
	reNumbered = regexp.MustCompile(`^\d+[.)]\s+.+$`)
	reStrong   = regexp.MustCompile(`\*\*(.+?)\*\*|__(.+?)__`)
)

// writeDocx renders a summary as a Word document: a title, the metadata line
// and the summary body with headings, list items and bold spans mapped onto the
// template's paragraph styles.
func writeDocx(path, title, meta string, res *pipeline.Result) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("new document: %w", err)
	}

	if _, err := doc.AddHeading(title, 0); err != nil {
		return fmt.Errorf("add title: %w", err)
	}
	sub := doc.AddEmptyParagraph()
	sub.Style("Subtitle")
	sub.AddText(meta).Italic(true)

	for _, line := range strings.Split(res.Summary, "\n") {
		if err := addSummaryLine(doc, strings.TrimSpace(line)); err != nil {
			return err
		}
	}

	return doc.SaveTo(path)
}

func addSummaryLine(doc *docx.RootDoc, line string) error {
	switch {
	case line == "" || line == "---":
		return nil
	case reHeading.MatchString(line):
		m := reHeading.FindStringSubmatch(line)
		if _, err := doc.AddHeading(stripInline(m[2]), uint(len(m[1]))); err != nil {
			return fmt.Errorf("add heading: %w", err)
		}
	case reBullet.MatchString(line):
		p := doc.AddEmptyParagraph()
		p.Style("ListBullet")
		addSpans(p, reBullet.FindStringSubmatch(line)[1])
	case reNumbered.MatchString(line):
		p := doc.AddEmptyParagraph()
		p.Style("ListNumber")
		addSpans(p, line)
	default:
		addSpans(doc.AddEmptyParagraph(), line)
	}
	return nil
}

// addSpans appends text runs, bold where the markdown marks it strong.
func addSpans(p *docx.Paragraph, text string) {
	last := 0
	for _, loc := range reStrong.FindAllStringSubmatchIndex(text, -1) {
		if loc[0] > last {
			p.AddText(stripInline(text[last:loc[0]]))
		}
		var inner string
		if loc[2] >= 0 {
			inner = text[loc[2]:loc[3]]
		} else {
			inner = text[loc[4]:loc[5]]
		}
		p.AddText(stripInline(inner)).Bold(true)
		last = loc[1]
	}
	if last < len(text) {
		p.AddText(stripInline(text[last:]))
	}
}

func stripInline(s string) string {
	return strings.NewReplacer("**", "", "__", "", "`", "").Replace(s)
}
