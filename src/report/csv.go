package report

import (
	"fmt"
	"os"
	"path"

	"github.com/gocarina/gocsv"
	log "github.com/sirupsen/logrus"

	"github.com/dongqixiaoquan-sketch/gold/src/models"
)

type snapshotDTO struct {
	Timestamp    string  `csv:"timestamp"`
	CurrentPrice float64 `csv:"current_price"`
	PriceChange  float64 `csv:"price_change"`
	ProfitUp     float64 `csv:"profit_up"`
	ProfitDown   float64 `csv:"profit_down"`
}

func toDTO(snapshots []models.ProfitSnapshot) []snapshotDTO {
	out := make([]snapshotDTO, 0, len(snapshots))
	for _, s := range snapshots {
		out = append(out, snapshotDTO{
			Timestamp:    s.Timestamp.Format("2006-01-02 15:04:05"),
			CurrentPrice: s.CurrentPrice,
			PriceChange:  s.PriceChange,
			ProfitUp:     s.ProfitUp,
			ProfitDown:   s.ProfitDown,
		})
	}

	return out
}

// ExportToCsv writes the snapshots to outDir/fname.csv, oldest first, and
// returns the written path. The export collaborator has no opinion on the
// numbers; it serializes them as-is.
func ExportToCsv(outDir, fname string, snapshots []models.ProfitSnapshot) (string, error) {
	if len(snapshots) == 0 {
		return "", fmt.Errorf("report.ExportToCsv: no snapshots to export")
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", fmt.Errorf("report.ExportToCsv: failed to create directory: %w", err)
	}

	outFile := path.Join(outDir, fmt.Sprintf("%s.csv", fname))

	file, err := os.Create(outFile)
	if err != nil {
		return "", fmt.Errorf("report.ExportToCsv: error creating CSV file: %w", err)
	}

	defer file.Close()

	rows := toDTO(snapshots)
	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return "", fmt.Errorf("report.ExportToCsv: error marshalling file: %w", err)
	}

	log.Infof("Exported %d snapshots to %s", len(rows), outFile)

	return outFile, nil
}
