package silver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// RateSource looks up the number of USD per INR from a JSON document served at URL.
// Path is a JSONPath expression selecting the rate, e.g. "$.rates.USD".
type RateSource struct {
	URL    string
	Path   string
	Client *http.Client // http.DefaultClient if nil
}

// Rate fetches the document and extracts the rate.
func (s RateSource) Rate(ctx context.Context) (decimal.Decimal, error) {
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	var doc any
	if err := jget(ctx, client, s.URL, &doc); err != nil {
		return decimal.Zero, fmt.Errorf("%w: %w", ErrRate, err)
	}
	val, err := jsonpath.Get(s.Path, doc)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: cannot evaluate %q: %w", ErrRate, s.Path, err)
	}
	// a path with a filter or a slice returns a list, keep its first answer.
	if list, ok := val.([]any); ok && len(list) > 0 {
		val = list[0]
	}

	var rate decimal.Decimal
	switch v := val.(type) {
	case float64:
		rate = decimal.NewFromFloat(v)
	case string:
		rate, err = decimal.NewFromString(v)
		if err != nil {
			return decimal.Zero, fmt.Errorf("%w: %q at %q is not a number", ErrRate, v, s.Path)
		}
	default:
		return decimal.Zero, fmt.Errorf("%w: %v at %q is not a number", ErrRate, val, s.Path)
	}
	if !rate.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: rate %v must be positive", ErrRate, rate)
	}
	logger.Debug("exchange rate fetched", zap.String("url", s.URL), zap.String("rate", rate.String()))
	return rate, nil
}

// jget performs an HTTP GET request and decodes the JSON response into data.
func jget(ctx context.Context, client *http.Client, addr string, data any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %v%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(data)
}
