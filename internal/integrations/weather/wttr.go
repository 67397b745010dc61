package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Dan9191/unidash/internal/models"
	"github.com/PaesslerAG/jsonpath"
	"github.com/sirupsen/logrus"
)

const forecastDays = 3

// WttrClient reads the wttr.in j1 JSON format
type WttrClient struct {
	baseURL string
	client  *http.Client
	log     *logrus.Logger
}

// NewWttrClient initializes a new wttr.in client
func NewWttrClient(baseURL string, log *logrus.Logger) *WttrClient {
	return &WttrClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		log: log,
	}
}

func (c *WttrClient) Name() string { return "wttr" }

// Current retrieves current conditions and a short forecast for city
func (c *WttrClient) Current(ctx context.Context, city string) (*models.Weather, error) {
	body, err := get(ctx, c.client, c.baseURL+"/"+url.PathEscape(city)+"?format=j1")
	if err != nil {
		return nil, err
	}
	c.log.Debugf("wttr response for %s: %d bytes", city, len(body))

	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	w := &models.Weather{City: city}
	fields := []struct {
		path string
		dst  *string
	}{
		{"$.current_condition[0].temp_C", &w.TempC},
		{"$.current_condition[0].weatherDesc[0].value", &w.Description},
		{"$.current_condition[0].humidity", &w.Humidity},
		{"$.current_condition[0].windspeedKmph", &w.WindKmph},
	}
	for _, f := range fields {
		v, err := lookupString(doc, f.path)
		if err != nil {
			return nil, err
		}
		*f.dst = v
	}
	w.Icon = Icon(w.Description)

	days, err := jsonpath.Get("$.weather", doc)
	if err != nil {
		return w, nil
	}
	list, _ := days.([]any)
	for i := 0; i < len(list) && i < forecastDays; i++ {
		day := list[i]
		date, _ := lookupString(day, "$.date")
		maxT, _ := lookupString(day, "$.maxtempC")
		minT, _ := lookupString(day, "$.mintempC")
		desc, _ := lookupString(day, "$.hourly[4].weatherDesc[0].value")
		w.Forecast = append(w.Forecast, models.Forecast{
			Date:     date,
			MaxTempC: maxT,
			MinTempC: minT,
			Icon:     Icon(desc),
		})
	}
	return w, nil
}

// lookupString evaluates path against doc and returns the result as text.
func lookupString(doc any, path string) (string, error) {
	v, err := jsonpath.Get(path, doc)
	if err != nil {
		return "", fmt.Errorf("missing %s: %w", path, err)
	}
	// jsonpath may wrap a single answer in a list
	if list, ok := v.([]any); ok {
		if len(list) == 0 {
			return "", fmt.Errorf("missing %s", path)
		}
		v = list[0]
	}
	switch val := v.(type) {
	case string:
		return val, nil
	case float64:
		return fmt.Sprintf("%g", val), nil
	default:
		return "", fmt.Errorf("unexpected value at %s: %v", path, v)
	}
}
