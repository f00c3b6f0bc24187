package poll

import (
	"bytes"
	"embed"
	"text/template"
)

//go:embed templates/*.tmpl
var templates embed.FS

var resultsTmpl *template.Template

func init() {
	var err error
	resultsTmpl, err = template.ParseFS(templates, "templates/results.tmpl")
	if err != nil {
		panic(err)
	}
}

// ResultLine is one answer's row in a rendered summary.
type ResultLine struct {
	Text    string
	Count   int
	MeVoted bool
	Winner  bool
}

// Results is the view rendered into a channel-postable summary.
type Results struct {
	Question  string
	Total     int
	Finalized bool
	Lines     []ResultLine
}

// BuildResults pairs the poll's answers with its tallies in poll order.
// Answers without a reported tally count as zero, so a draft or still-open
// poll renders with all-zero counts.
func BuildResults(p *Poll) *Results {
	counts := make(map[int]*AnswerCount)
	for _, c := range p.AnswerCounts() {
		counts[c.ID] = c
	}

	r := &Results{
		Question:  p.Question,
		Finalized: p.IsFinalized(),
	}

	best := 0
	for _, a := range p.Answers() {
		line := ResultLine{Text: a.Text()}
		if c, ok := counts[a.ID]; ok {
			line.Count = c.Count
			line.MeVoted = c.MeVoted
		}
		r.Total += line.Count
		if line.Count > best {
			best = line.Count
		}
		r.Lines = append(r.Lines, line)
	}

	if best > 0 {
		for i := range r.Lines {
			r.Lines[i].Winner = r.Lines[i].Count == best
		}
	}
	return r
}

// RenderResults renders the poll's results summary as channel markdown.
func RenderResults(p *Poll) (string, error) {
	var buf bytes.Buffer
	if err := resultsTmpl.Execute(&buf, BuildResults(p)); err != nil {
		return "", err
	}
	return buf.String(), nil
}
