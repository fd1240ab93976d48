package spot

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"google.golang.org/genai"
)

// DefaultModel answers price questions fast enough for interactive use.
const DefaultModel = "gemini-2.5-flash"

// referencePrice is the fixed per-metal price used when the oracle cannot
// deliver a parsable current price. Deliberately static, see the
// project's non-goals on market-data accuracy.
func referencePrice(metal Metal) float64 {
	if metal == Gold {
		return 2150.00
	}
	return 28.50
}

// Client asks the Gemini models for spot prices. Every aspect of the
// model's answer is untrusted input: replies are validated, repaired, and
// replaced with synthetic data when unusable, so calls never fail for a
// data-quality reason.
//
// A Client is explicitly constructed and injected where needed, there is
// no package-level instance.
type Client struct {
	genai     *genai.Client
	model     string
	refGold   float64
	refSilver float64
	syn       *Synthesizer
	logger    *slog.Logger
	now       func() time.Time
}

// NewClient returns an oracle client backed by g.
func NewClient(g *genai.Client) *Client {
	return &Client{
		genai:     g,
		model:     DefaultModel,
		refGold:   referencePrice(Gold),
		refSilver: referencePrice(Silver),
		syn:       NewSynthesizer(nil),
		logger:    slog.Default(),
		now:       time.Now,
	}
}

// WithModel overrides the model name, for configuration.
func (c *Client) WithModel(model string) *Client {
	if model != "" {
		c.model = model
	}
	return c
}

// WithReferencePrices overrides the fallback prices, for configuration.
// Non-positive values keep the built-in references.
func (c *Client) WithReferencePrices(gold, silver float64) *Client {
	if gold > 0 {
		c.refGold = gold
	}
	if silver > 0 {
		c.refSilver = silver
	}
	return c
}

// reference returns the fallback price for the metal.
func (c *Client) reference(metal Metal) float64 {
	if metal == Gold {
		return c.refGold
	}
	return c.refSilver
}

// CurrentPrice asks for the current spot price in EUR per troy ounce,
// grounded with Google Search. The model is constrained to answer with a
// bare number; on transport failure or an unparsable reply it returns
// the fixed reference price with no sources.
func (c *Client) CurrentPrice(ctx context.Context, metal Metal) (Quote, error) {
	prompt := fmt.Sprintf(
		"Was ist der aktuelle Spotpreis für %s in EUR pro Feinunze? Antworte nur mit der Zahl (z.B. 2150.55).",
		metal)

	resp, err := c.genai.Models.GenerateContent(ctx, c.model, genai.Text(prompt),
		&genai.GenerateContentConfig{
			Tools: []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
		})
	if err != nil {
		if ctx.Err() != nil {
			return Quote{}, ctx.Err()
		}
		c.logger.Warn("current price request failed, using reference price",
			"metal", metal, "err", err)
		return Quote{Price: c.reference(metal)}, nil
	}

	price, err := parsePrice(resp.Text())
	if err != nil {
		c.logger.Warn("current price reply unparsable, using reference price",
			"metal", metal, "err", err)
		return Quote{Price: c.reference(metal)}, nil
	}

	return Quote{Price: price, Sources: groundingSources(resp)}, nil
}

// History asks for a simulated historical series consistent with the
// current price. The reply is requested as a JSON array of {date, price}
// through a response schema, then sorted and pinned. Any failure falls
// back to the synthesizer, which independently establishes the pin.
func (c *Client) History(ctx context.Context, metal Metal, tf Timeframe, current float64) (Series, error) {
	points := tf.Points()
	intraday := tf.IsIntraday()

	unit, duration, dateFormat := "Tage", tf.Days(), "YYYY-MM-DD"
	var hourly string
	if intraday {
		unit, duration, dateFormat = "Stunden", 24, "YYYY-MM-DDTHH:mm:ssZ"
		hourly = "stündliche "
	}

	prompt := fmt.Sprintf(
		"Erzeuge simulierte historische %sSpotpreisdaten für %s in EUR pro Feinunze für die letzten %d %s, die heute enden. "+
			"Der aktuellste Preis sollte genau %.2f EUR sein. Gib genau %d Datenpunkte zurück. "+
			"Jeder Datenpunkt sollte ein Datum im Format %s und einen Preis enthalten.",
		hourly, metal, duration, unit, current, points, dateFormat)

	resp, err := c.genai.Models.GenerateContent(ctx, c.model, genai.Text(prompt),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema: &genai.Schema{
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"date": {
							Type:        genai.TypeString,
							Description: "Datum im Format " + dateFormat,
						},
						"price": {
							Type:        genai.TypeNumber,
							Description: "Preis in EUR",
						},
					},
					Required: []string{"date", "price"},
				},
			},
		})
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		c.logger.Warn("history request failed, synthesizing series",
			"metal", metal, "timeframe", tf, "err", err)
		return c.syn.Series(metal, tf, current, c.now()), nil
	}

	series, err := parseSeries([]byte(strings.TrimSpace(resp.Text())))
	if err != nil {
		c.logger.Warn("history reply unusable, synthesizing series",
			"metal", metal, "timeframe", tf, "err", err)
		return c.syn.Series(metal, tf, current, c.now()), nil
	}

	series.Sort()
	series.Pin(current)
	return series, nil
}

// parsePrice extracts a price from a free-text reply by stripping all
// characters except digits, '.' and ',', then normalizing ',' to '.'.
func parsePrice(text string) (float64, error) {
	var b strings.Builder
	for _, r := range text {
		if (r >= '0' && r <= '9') || r == '.' || r == ',' {
			b.WriteRune(r)
		}
	}
	cleaned := strings.ReplaceAll(b.String(), ",", ".")
	price, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("no price in reply %q: %w", text, err)
	}
	return price, nil
}

// parseSeries decodes the structured history reply. A series that is
// empty or of the wrong shape is an error, the caller falls back.
func parseSeries(data []byte) (Series, error) {
	var series Series
	if err := json.Unmarshal(data, &series); err != nil {
		return nil, fmt.Errorf("cannot parse history reply: %w", err)
	}
	if len(series) == 0 {
		return nil, fmt.Errorf("history reply contains no points")
	}
	for _, p := range series {
		if p.Price <= 0 {
			return nil, fmt.Errorf("history reply contains non-positive price %v on %s", p.Price, p.Stamp)
		}
	}
	return series, nil
}

// groundingSources extracts provenance references from the response's
// grounding metadata.
func groundingSources(resp *genai.GenerateContentResponse) []Source {
	if len(resp.Candidates) == 0 || resp.Candidates[0].GroundingMetadata == nil {
		return nil
	}
	var sources []Source
	for _, chunk := range resp.Candidates[0].GroundingMetadata.GroundingChunks {
		if chunk.Web == nil {
			continue
		}
		sources = append(sources, Source{URI: chunk.Web.URI, Title: chunk.Web.Title})
	}
	return sources
}
