package weather

import (
	"testing"

	"github.com/agrodat/property360/internal/model"
)

func TestSprayAdvisoryRules(t *testing.T) {
	base := model.CurrentConditions{
		Temp: 28, Humidity: 60, WindSpeed: 8, Condition: "Ensolarado",
	}

	cases := []struct {
		name   string
		mutate func(*model.CurrentConditions)
		want   model.SprayStatus
	}{
		{"ideal window", func(*model.CurrentConditions) {}, model.SprayRecommended},
		{"strong wind", func(c *model.CurrentConditions) { c.WindSpeed = 16 }, model.SprayProhibited},
		{"calm wind", func(c *model.CurrentConditions) { c.WindSpeed = 2 }, model.SprayWarning},
		{"hot", func(c *model.CurrentConditions) { c.Temp = 33 }, model.SprayWarning},
		{"dry air", func(c *model.CurrentConditions) { c.Humidity = 45 }, model.SprayWarning},
		{"rain", func(c *model.CurrentConditions) { c.Condition = "Chuva Fraca" }, model.SprayProhibited},
		{"storm", func(c *model.CurrentConditions) { c.Condition = "Tempestade" }, model.SprayProhibited},
	}

	for _, c := range cases {
		conditions := base
		c.mutate(&conditions)
		got := SprayAdvisory(conditions)
		if got.Status != c.want {
			t.Fatalf("%s: status = %q, want %q", c.name, got.Status, c.want)
		}
		if got.Message == "" || got.Icon == "" {
			t.Fatalf("%s: advisory missing message or icon: %+v", c.name, got)
		}
	}
}

// Wind dominates: a gale during rain still reads as the wind alert.
func TestSprayAdvisoryWindBeatsRain(t *testing.T) {
	advisory := SprayAdvisory(model.CurrentConditions{
		Temp: 28, Humidity: 60, WindSpeed: 20, Condition: "Chuva",
	})
	if advisory.Status != model.SprayProhibited || advisory.Icon != "alert-octagon" {
		t.Fatalf("advisory = %+v", advisory)
	}
}

func TestForecastShape(t *testing.T) {
	forecast := Forecast()
	if len(forecast.Hourly) != 7 {
		t.Fatalf("hourly entries = %d, want 7", len(forecast.Hourly))
	}
	if len(forecast.Daily) != 7 {
		t.Fatalf("daily entries = %d, want 7", len(forecast.Daily))
	}
	if forecast.Current.Condition == "" {
		t.Fatalf("current conditions empty")
	}
}
