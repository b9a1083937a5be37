package report

import (
	"strings"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dongqixiaoquan-sketch/gold/src/models"
)

func renderTable(title string, snapshots []models.ProfitSnapshot, withTimestamp bool) string {
	display := &strings.Builder{}
	p := message.NewPrinter(language.English)

	table := tablewriter.NewWriter(display)
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetColumnSeparator("")

	display.WriteString(title + "\n")

	header := []string{"Price", "Change", "Profit Up", "Profit Down", "Up", "Down"}
	if withTimestamp {
		header = append([]string{"Time"}, header...)
	}
	table.SetHeader(header)

	for _, s := range snapshots {
		row := []string{
			p.Sprintf("%.2f", s.CurrentPrice),
			p.Sprintf("%+.2f", s.PriceChange),
			p.Sprintf("%.2f", s.ProfitUp),
			p.Sprintf("%.2f", s.ProfitDown),
			string(s.ProfitUpStatus()),
			string(s.ProfitDownStatus()),
		}
		if withTimestamp {
			row = append([]string{s.Timestamp.Format("15:04:05")}, row...)
		}
		table.Append(row)
	}

	table.Render()
	return display.String()
}

// LadderTable renders a profit ladder for display.
func LadderTable(snapshots []models.ProfitSnapshot) string {
	return renderTable("Profit Ladder:", snapshots, false)
}

// HistoryTable renders the monitoring history, oldest first.
func HistoryTable(snapshots []models.ProfitSnapshot) string {
	return renderTable("Monitoring History:", snapshots, true)
}
