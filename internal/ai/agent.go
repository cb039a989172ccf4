package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/param"
	"github.com/openai/openai-go/responses"
	"github.com/openai/openai-go/shared"
	"github.com/openai/openai-go/shared/constant"

	"github.com/rismawansuryadinatazz-bit/stoldryzzz/internal/core"
)

type AgentService interface {
	StockInsight(ctx context.Context, rows []core.ForecastRow, horizonDays int) (*Insight, error)
}

// Insight is the structured assessment returned by the model.
type Insight struct {
	Status         string `json:"status" jsonschema:"enum=critical,enum=warning,enum=optimal"`
	Message        string `json:"message"`
	Recommendation string `json:"recommendation"`
}

type Agent struct {
	client *openai.Client
}

func NewAgent(apiKey string) *Agent {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &Agent{client: &client}
}

// StockInsight asks the model to assess the forecast and recommend ordering
// actions. The forecast rows are summarized into a compact table first so the
// prompt stays small even with a large catalog.
func (a *Agent) StockInsight(ctx context.Context, rows []core.ForecastRow, horizonDays int) (*Insight, error) {
	prompt := fmt.Sprintf(`You are a warehouse supply planner.
Assess the stock forecast below and give one overall status with a short
message and a concrete recommendation.
Rules:
1. Status "critical" when any product is empty or must be ordered now.
2. Status "warning" when any product falls short of the projected need.
3. Status "optimal" otherwise.
4. Name the worst products in the recommendation.

Forecast horizon: %d days.

product | central | need | min | status
%s`, horizonDays, summarizeForecast(rows))

	schemaStruct := generateSchema()
	schemaJSON, err := json.Marshal(schemaStruct)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	var schemaMap map[string]any
	if err := json.Unmarshal(schemaJSON, &schemaMap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal schema to map: %w", err)
	}

	params := responses.ResponseNewParams{
		Model: shared.ResponsesModel(shared.ChatModelGPT4o),
		Input: responses.ResponseNewParamsInputUnion{
			OfString: param.NewOpt(prompt),
		},
		Text: responses.ResponseTextConfigParam{
			Format: responses.ResponseFormatTextConfigUnionParam{
				OfJSONSchema: &responses.ResponseFormatTextJSONSchemaConfigParam{
					Type:        constant.JSONSchema("json_schema"),
					Name:        "stock_insight",
					Strict:      param.NewOpt(true),
					Schema:      schemaMap,
					Description: param.NewOpt("An assessment of warehouse stock sufficiency"),
				},
			},
		},
	}

	resp, err := a.client.Responses.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("openai responses error: %w", err)
	}

	content := resp.OutputText()
	if content == "" {
		return nil, fmt.Errorf("empty response content")
	}

	var insight Insight
	if err := json.Unmarshal([]byte(content), &insight); err != nil {
		return nil, fmt.Errorf("failed to parse completion: %w", err)
	}
	switch insight.Status {
	case "critical", "warning", "optimal":
	default:
		return nil, fmt.Errorf("model returned unknown status %q", insight.Status)
	}
	return &insight, nil
}

func summarizeForecast(rows []core.ForecastRow) string {
	var b strings.Builder
	for _, row := range rows {
		fmt.Fprintf(&b, "%s (%s) | %d | %d | %d | %s\n",
			row.Name, row.Size, row.CentralQty, row.TotalNeed, row.MinStock, row.SupplyStatus)
	}
	if b.Len() == 0 {
		return "(no products registered)\n"
	}
	return b.String()
}

func generateSchema() interface{} {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v Insight
	return reflector.Reflect(v)
}
