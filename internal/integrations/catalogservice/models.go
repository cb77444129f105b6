package catalogservice

// Doctor психолог из каталога
type Doctor struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Specialty  string  `json:"specialty"`
	HourlyRate float64 `json:"hourlyRate"`
	Available  bool    `json:"available"`
}

// DurationOption вариант длительности консультации
type DurationOption struct {
	Code    int    `json:"code"`
	Units   int    `json:"units"` // часы
	Minutes int    `json:"minutes"`
	Label   string `json:"label"`
}

// WorkshopProduct продукт автосервиса
type WorkshopProduct struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Workshop автосервис из каталога
type Workshop struct {
	ID       int64             `json:"id"`
	Name     string            `json:"name"`
	Address  string            `json:"address"`
	Products []WorkshopProduct `json:"products"`
}

// DailyServiceOffering предложение бытовой услуги
type DailyServiceOffering struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
}
