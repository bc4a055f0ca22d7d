package dto

type AgendaItemDTO struct {
	ID            string `json:"turno_id"`
	Date          string `json:"fecha"`
	StartTime     string `json:"inicio"`
	EndTime       string `json:"fin"`
	ClientID      string `json:"cliente_id"`
	Client        string `json:"cliente"`
	ServiceType   string `json:"tipo"`
	Zones         string `json:"zonas"`
	TotalDuration int    `json:"duracion_total"`
	Status        string `json:"estado"`
	Notes         string `json:"notas"`
}

type QuoteDTO struct {
	ServiceType     string   `json:"tipo"`
	Zones           []string `json:"zonas"`
	DurationMinutes int      `json:"duracion"`
	Price           int64    `json:"precio"`
	PriceLabel      string   `json:"precio_label"`
}
