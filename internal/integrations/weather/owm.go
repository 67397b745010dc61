package weather

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Dan9191/unidash/internal/models"
	"github.com/beevik/etree"
	"github.com/sirupsen/logrus"
)

// OWMClient reads the OpenWeatherMap current weather API in XML mode
type OWMClient struct {
	url    string
	apiKey string
	client *http.Client
	log    *logrus.Logger
}

// NewOWMClient initializes a new OpenWeatherMap client
func NewOWMClient(endpoint, apiKey string, log *logrus.Logger) *OWMClient {
	return &OWMClient{
		url:    endpoint,
		apiKey: apiKey,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		log: log,
	}
}

func (c *OWMClient) Name() string { return "owm" }

// Current retrieves current conditions for city
func (c *OWMClient) Current(ctx context.Context, city string) (*models.Weather, error) {
	q := url.Values{}
	q.Set("q", city)
	q.Set("mode", "xml")
	q.Set("units", "metric")
	q.Set("appid", c.apiKey)

	body, err := get(ctx, c.client, c.url+"?"+q.Encode())
	if err != nil {
		return nil, err
	}
	c.log.Debugf("OWM XML response: %s", string(body))

	return parseOWM(city, body)
}

// parseOWM extracts the fields of a <current> document
func parseOWM(city string, rawBody []byte) (*models.Weather, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(rawBody); err != nil {
		return nil, fmt.Errorf("failed to parse XML: %w", err)
	}
	current := doc.FindElement("//current")
	if current == nil {
		return nil, fmt.Errorf("no current weather data found in XML")
	}

	attr := func(path string) (string, error) {
		el := current.FindElement(path)
		if el == nil {
			return "", fmt.Errorf("%s element not found in XML", path)
		}
		value := el.SelectAttrValue("value", "")
		if value == "" {
			return "", fmt.Errorf("%s has no value", path)
		}
		return value, nil
	}

	tempRaw, err := attr("./temperature")
	if err != nil {
		return nil, err
	}
	temp, err := strconv.ParseFloat(tempRaw, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse temperature: %w", err)
	}
	humidity, err := attr("./humidity")
	if err != nil {
		return nil, err
	}
	speedRaw, err := attr("./wind/speed")
	if err != nil {
		return nil, err
	}
	speed, err := strconv.ParseFloat(speedRaw, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse wind speed: %w", err)
	}
	desc, err := attr("./weather")
	if err != nil {
		return nil, err
	}

	if el := current.FindElement("./city"); el != nil {
		if name := el.SelectAttrValue("name", ""); name != "" {
			city = name
		}
	}

	return &models.Weather{
		City:        city,
		TempC:       strconv.FormatFloat(temp, 'f', 0, 64),
		Description: desc,
		Humidity:    humidity,
		WindKmph:    strconv.FormatFloat(speed*3.6, 'f', 0, 64), // m/s to km/h
		Icon:        Icon(desc),
	}, nil
}
