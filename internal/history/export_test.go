package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/estetica-scheduler/internal/models"
)

func TestCSV(t *testing.T) {
	at := time.Date(2026, 10, 20, 13, 15, 0, 0, time.UTC)

	out, err := CSV([]models.HistoryEntry{
		{ClientID: "c1", Name: "Ana", Date: at, Event: EventAppointmentArchived, Details: "Láser | Axilas, Cara | 2026-10-20 10:00-10:35"},
	})
	require.NoError(t, err)

	assert.Equal(t,
		"cliente_id,nombre,fecha,evento,detalles\n"+
			"c1,Ana,2026-10-20T13:15:00Z,Turno finalizado,\"Láser | Axilas, Cara | 2026-10-20 10:00-10:35\"\n",
		string(out),
	)
}

func TestCSV_Empty(t *testing.T) {
	out, err := CSV(nil)
	require.NoError(t, err)
	assert.Equal(t, "cliente_id,nombre,fecha,evento,detalles\n", string(out))
	assert.Equal(t, "historial_c1.csv", CSVFileName("c1"))
}
