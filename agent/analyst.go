package agent

import (
	"context"
	"fmt"
	"time"

	"github.com/oakfin/tradecal"
	"github.com/oakfin/tradecal/renderer"
	"google.golang.org/genai"
)

const modelName = "gemini-2.5-pro"

// NewAnalyst creates the expert that answers questions about the given
// report. Its tools return the same markdown views the CLI renders.
func NewAnalyst(report *tradecal.Report) *Expert {
	functions := []reportFn{
		{
			name:        "portfolio_summary",
			description: "Returns the portfolio summary: total invested, total realized profit, number of completed trades, wins, losses and win rate.",
			run: func(context.Context, map[string]any) (string, error) {
				return renderer.SummaryMarkdown(&report.Summary), nil
			},
		},
		{
			name:        "day_trades",
			description: "Returns the trades completed (sold) on a single day, with their realized profit.",
			parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"date": {
						Type:        genai.TypeString,
						Description: "The day to look up, in YYYY-MM-DD format.",
					},
				},
				Required: []string{"date"},
			},
			run: func(_ context.Context, args map[string]any) (string, error) {
				raw, _ := args["date"].(string)
				on, err := tradecal.ParseDate(raw)
				if err != nil {
					return "", fmt.Errorf("invalid date %q: %w", raw, err)
				}
				bucket := tradecal.DailyBucket{Date: on}
				for _, day := range report.Days {
					if day.Date == on {
						bucket = day
						break
					}
				}
				return renderer.DayMarkdown(bucket), nil
			},
		},
		{
			name:        "month_calendar",
			description: "Returns one month of the trading calendar: every day of the month with its realized profit and trade count.",
			parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"year": {
						Type:        genai.TypeInteger,
						Description: "The calendar year, e.g. 2024.",
					},
					"month": {
						Type:        genai.TypeInteger,
						Description: "The month number, 1 for January through 12 for December.",
					},
				},
				Required: []string{"year", "month"},
			},
			run: func(_ context.Context, args map[string]any) (string, error) {
				year, err := intArg(args, "year")
				if err != nil {
					return "", err
				}
				m, err := intArg(args, "month")
				if err != nil {
					return "", err
				}
				if m < 1 || m > 12 {
					return "", fmt.Errorf("invalid month %d: want 1 to 12", m)
				}
				month := time.Month(m)
				days := tradecal.ExpandMonth(report.Days, year, month)
				return renderer.CalendarMarkdown(year, month, days), nil
			},
		},
		{
			name:        "open_positions",
			description: "Returns the buy positions still open, i.e. buys not yet matched by a sell.",
			run: func(context.Context, map[string]any) (string, error) {
				return renderer.OpenPositionsMarkdown(report.Open), nil
			},
		},
	}

	return &Expert{
		Name:      "analyst",
		ModelName: modelName,
		Config: &genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(
				`You are a trading analyst. You answer questions about the user's
realized trading results using the tools at your disposal. All figures
come from the user's own ledger of buys and sells, matched first-in
first-out. Quote amounts as the tools return them and keep answers
short. If a question cannot be answered from the ledger, say so.`,
				genai.RoleUser),
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclarations(functions)},
			},
		},
		Library: NewLibrary(functions),
	}
}

// reportFn is a read-only tool over the report.
type reportFn struct {
	name        string
	description string
	parameters  *genai.Schema
	run         func(ctx context.Context, args map[string]any) (string, error)
}

func (f reportFn) Declaration() *genai.FunctionDeclaration {
	return &genai.FunctionDeclaration{
		Name:        f.name,
		Description: f.description,
		Parameters:  f.parameters,
	}
}

func (f reportFn) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	resp := &genai.FunctionResponse{ID: id, Name: f.name}
	output, err := f.run(ctx, args)
	if err != nil {
		resp.Response = map[string]any{"error": err.Error()}
		return resp
	}
	resp.Response = map[string]any{"output": output}
	return resp
}

// intArg reads a whole-number argument; the model sends numbers as
// float64.
func intArg(args map[string]any, name string) (int, error) {
	switch v := args[name].(type) {
	case float64:
		return int(v), nil
	case int:
		return v, nil
	default:
		return 0, fmt.Errorf("missing or invalid %s argument", name)
	}
}
