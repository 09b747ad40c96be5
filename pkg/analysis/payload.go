// Package analysis reduces journal entry metadata into product rankings and
// health-rating trends.
package analysis

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/breeew/hairlog-api/pkg/types"
)

type rawPayload struct {
	Products    json.RawMessage    `json:"products"`
	CurlPattern string             `json:"curl_pattern"`
	Scores      map[string]float64 `json:"scores"`
}

type rawProduct struct {
	Name  json.RawMessage `json:"name"`
	Match json.RawMessage `json:"match"`
}

// ParseAnalysisPayload decodes an analysis_data value. It reports false when the
// value is empty, is not valid JSON or has no products array. Product entries
// that are not objects are dropped; names and scores are normalized and the
// entry date is left empty for the caller to fill.
func ParseAnalysisPayload(raw string) (*types.AnalysisPayload, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, false
	}

	var p rawPayload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		// curl_pattern and scores are informative only
		var productsOnly struct {
			Products json.RawMessage `json:"products"`
		}
		if err = json.Unmarshal([]byte(raw), &productsOnly); err != nil {
			return nil, false
		}
		p = rawPayload{Products: productsOnly.Products}
	}

	products := bytes.TrimSpace(p.Products)
	if len(products) == 0 || products[0] != '[' {
		return nil, false
	}

	var items []json.RawMessage
	if err := json.Unmarshal(products, &items); err != nil {
		return nil, false
	}

	payload := &types.AnalysisPayload{
		Products:    make([]types.ProductMention, 0, len(items)),
		CurlPattern: p.CurlPattern,
		Scores:      p.Scores,
	}
	for _, item := range items {
		if bytes.Equal(bytes.TrimSpace(item), []byte("null")) {
			continue
		}
		var rp rawProduct
		if err := json.Unmarshal(item, &rp); err != nil {
			continue
		}
		payload.Products = append(payload.Products, types.ProductMention{
			Name:  normalizeName(rp.Name),
			Match: coerceMatch(rp.Match),
		})
	}
	return payload, true
}

func normalizeName(raw json.RawMessage) string {
	var name string
	switch v := decodeScalar(raw).(type) {
	case string:
		name = v
	case json.Number:
		name = v.String()
	}
	if name = strings.TrimSpace(name); name == "" {
		return types.UnknownProductName
	}
	return name
}

func coerceMatch(raw json.RawMessage) float64 {
	var (
		f   float64
		err error
	)
	switch v := decodeScalar(raw).(type) {
	case json.Number:
		f, err = v.Float64()
	case string:
		f, err = strconv.ParseFloat(strings.TrimSpace(v), 64)
	default:
		return 0
	}
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func decodeScalar(raw json.RawMessage) any {
	if len(raw) == 0 {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil
	}
	return v
}
