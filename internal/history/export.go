package history

import (
	"bytes"
	"encoding/csv"
	"time"

	"github.com/BruksfildServices01/estetica-scheduler/internal/models"
)

var csvHeader = []string{"cliente_id", "nombre", "fecha", "evento", "detalles"}

// CSV renders entries in the given order with fecha in RFC 3339.
func CSV(entries []models.HistoryEntry) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, e := range entries {
		if err := w.Write([]string{
			e.ClientID,
			e.Name,
			e.Date.Format(time.RFC3339),
			e.Event,
			e.Details,
		}); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func CSVFileName(clientID string) string {
	return "historial_" + clientID + ".csv"
}
