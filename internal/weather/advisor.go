package weather

import (
	"strings"

	"github.com/agrodat/property360/internal/model"
)

// Forecast returns the advisory-panel dataset. No external provider is
// wired; the panel runs on the reference forecast.
func Forecast() model.Forecast {
	return model.Forecast{
		Current: model.CurrentConditions{
			Temp:          29,
			FeelsLike:     32,
			Humidity:      58,
			WindSpeed:     14,
			WindDirection: "NE",
			Condition:     "Parcialmente Nublado",
			Icon:          "cloud-sun",
			Description:   "Possibilidade de chuva isolada no final da tarde.",
			SoilMoisture:  45,
		},
		Hourly: []model.HourlyForecast{
			{Time: "13:00", Temp: 30, RainProb: 10, Icon: "sun"},
			{Time: "14:00", Temp: 31, RainProb: 20, Icon: "cloud-sun"},
			{Time: "15:00", Temp: 30, RainProb: 45, Icon: "cloud-sun-rain"},
			{Time: "16:00", Temp: 28, RainProb: 60, Icon: "cloud-rain"},
			{Time: "17:00", Temp: 27, RainProb: 40, Icon: "cloud-drizzle"},
			{Time: "18:00", Temp: 26, RainProb: 20, Icon: "cloud"},
			{Time: "19:00", Temp: 25, RainProb: 10, Icon: "moon"},
		},
		Daily: []model.DailyForecast{
			{Date: "Hoje", Min: 22, Max: 31, RainMm: 5, RainProb: 60, Condition: "Chuva Tarde", Icon: "cloud-rain"},
			{Date: "Amanhã", Min: 21, Max: 28, RainMm: 12, RainProb: 80, Condition: "Chuvoso", Icon: "cloud-lightning"},
			{Date: "Quarta", Min: 20, Max: 26, RainMm: 2, RainProb: 30, Condition: "Nublado", Icon: "cloud"},
			{Date: "Quinta", Min: 19, Max: 27, RainMm: 0, RainProb: 10, Condition: "Parc. Nublado", Icon: "cloud-sun"},
			{Date: "Sexta", Min: 20, Max: 30, RainMm: 0, RainProb: 0, Condition: "Ensolarado", Icon: "sun"},
			{Date: "Sábado", Min: 22, Max: 32, RainMm: 0, RainProb: 0, Condition: "Ensolarado", Icon: "sun"},
			{Date: "Domingo", Min: 23, Max: 33, RainMm: 0, RainProb: 10, Condition: "Ensolarado", Icon: "sun"},
		},
	}
}

// SprayAdvisory grades the spraying window from the current conditions.
// Ideal window: wind 3-10 km/h, temperature below 30°C, humidity above 55%.
func SprayAdvisory(current model.CurrentConditions) model.SprayAdvisory {
	condition := strings.ToLower(current.Condition)

	switch {
	case current.WindSpeed > 15:
		return model.SprayAdvisory{
			Status:  model.SprayProhibited,
			Message: "ALERTA: Vento muito forte. Risco severo de deriva.",
			Icon:    "alert-octagon",
		}
	case current.WindSpeed < 3:
		return model.SprayAdvisory{
			Status:  model.SprayWarning,
			Message: "Cuidado: Vento muito calmo. Risco de inversão térmica.",
			Icon:    "alert-triangle",
		}
	case current.Temp > 32:
		return model.SprayAdvisory{
			Status:  model.SprayWarning,
			Message: "Temperatura elevada. Alta taxa de evaporação.",
			Icon:    "thermometer-sun",
		}
	case current.Humidity < 50:
		return model.SprayAdvisory{
			Status:  model.SprayWarning,
			Message: "Umidade relativa baixa. Evaporação rápida da gota.",
			Icon:    "droplets",
		}
	case strings.Contains(condition, "chuva") || strings.Contains(condition, "tempestade"):
		return model.SprayAdvisory{
			Status:  model.SprayProhibited,
			Message: "Chuva ou tempestade em andamento.",
			Icon:    "cloud-lightning",
		}
	default:
		return model.SprayAdvisory{
			Status:  model.SprayRecommended,
			Message: "Condições ideais para aplicação.",
			Icon:    "check-circle",
		}
	}
}
