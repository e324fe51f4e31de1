package journal

import (
	"bytes"
	"os"
	"text/template"
	"time"

	"github.com/rustyeddy/tradebook/patterns"
	"github.com/rustyeddy/tradebook/stats"
	"github.com/rustyeddy/tradebook/whatif"
)

// Report gathers everything a periodic review needs: headline statistics,
// the what-if summary for the enabled exclusion toggles, and the pattern
// breakdowns. It renders to an Org-mode file.
type Report struct {
	Created time.Time
	Ledger  string // where the ledger came from, for the header

	Stats   stats.Stats
	Filters whatif.ExclusionFilters
	WhatIf  whatif.OptimizationStats

	Hours    []patterns.HourPnL
	Setups   []patterns.SetupPnL
	Weekdays []patterns.WeekdayPnL
}

var reportOrgFuncs = template.FuncMap{
	"orNow": func(t time.Time) time.Time {
		if t.IsZero() {
			return time.Now()
		}
		return t
	},
}

// Render executes the Org template into a byte buffer.
func (r *Report) Render() ([]byte, error) {
	t, err := template.New("report").Funcs(reportOrgFuncs).Parse(ReportOrgTemplate)
	if err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	if err := t.Execute(buf, r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteOrg renders the report and writes it to path.
func (r *Report) WriteOrg(path string) error {
	out, err := r.Render()
	if err != nil {
		return err
	}
	return os.WriteFile(path, out, 0644)
}

const ReportOrgTemplate = `
* JOURNAL REVIEW {{if .Ledger}}({{.Ledger}}){{end}}
:PROPERTIES:
:CREATED:      [{{(orNow .Created).Format "2006-01-02 Mon 15:04"}}]
:TRADES:       {{.Stats.TotalTrades}}
:WINS:         {{.Stats.Wins}}
:LOSSES:       {{.Stats.Losses}}
:WIN_RATE:     {{printf "%.2f" .Stats.WinRate}}
:PROFIT_FAC:   {{printf "%.2f" .Stats.ProfitFactor}}
:GROSS_PROFIT: {{printf "%.2f" .Stats.GrossProfit}}
:GROSS_LOSS:   {{printf "%.2f" .Stats.GrossLoss}}
:END:

** Performance Summary
- Win Rate:        *{{printf "%.2f" .Stats.WinRate}}%*
- Profit Factor:   *{{printf "%.2f" .Stats.ProfitFactor}}*
- Best Trade:      {{printf "%.2f" .Stats.BestTrade}}
- Worst Trade:     {{printf "%.2f" .Stats.WorstTrade}}
- Avg Win:         {{printf "%.2f" .Stats.AvgWin}}
- Avg Loss:        {{printf "%.2f" .Stats.AvgLoss}}
- Long Win Rate:   {{printf "%.2f" .Stats.LongWinRate}}%
- Short Win Rate:  {{printf "%.2f" .Stats.ShortWinRate}}%

** What-If Eraser
| Toggle              | On |
|---------------------+----|
| Mistake trades      | {{if .Filters.ExcludeMistakes}}X{{else}} {{end}} |
| Fridays             | {{if .Filters.ExcludeFridays}}X{{else}} {{end}} |
| Under 5 minutes     | {{if .Filters.ExcludeShortDuration}}X{{else}} {{end}} |
| Entries after 14:00 | {{if .Filters.ExcludeAfter2PM}}X{{else}} {{end}} |

- Actual Equity:    {{printf "%.2f" .WhatIf.Actual}}
- Simulated Equity: {{printf "%.2f" .WhatIf.Simulated}}
- Delta:            *{{printf "%+.2f" .WhatIf.Delta}}* ({{printf "%+.2f" .WhatIf.Pct}}%)

{{- if .Hours }}

** PnL by Entry Hour
| Hour | PnL |
|------+-----|
{{- range .Hours }}
| {{printf "%02d:00" .Hour}} | {{printf "%.2f" .PnL}} |
{{- end }}
{{- end }}

{{- if .Setups }}

** Top Setups
| Setup | PnL |
|-------+-----|
{{- range .Setups }}
| {{.Setup}} | {{printf "%.2f" .PnL}} |
{{- end }}
{{- end }}

{{- if .Weekdays }}

** PnL by Weekday
| Day | PnL |
|-----+-----|
{{- range .Weekdays }}
| {{.Day}} | {{printf "%.2f" .PnL}} |
{{- end }}
{{- end }}
`
