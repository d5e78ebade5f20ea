package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"app/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// HandleGetAnalysisInsight runs the correlation analysis and asks Gemini for
// a narrative interpretation of the results.
// POST /api/v1/analytics/insight
func HandleGetAnalysisInsight(c *fiber.Ctx) error {
	var req models.InsightRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Cannot parse JSON"})
	}

	ctx := context.Background()

	result, err := newEngine().AnalyzeCorrelations(ctx, req.Filters)
	if err != nil {
		return respondEngineError(c, err)
	}

	prompt := constructInsightPrompt(req.Filters, result)

	client, err := genai.NewClient(ctx, option.WithAPIKey(os.Getenv("GEMINI_API_KEY")))
	if err != nil {
		log.Printf("Error creating Gemini client: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to connect to AI service"})
	}
	defer client.Close()

	model := client.GenerativeModel("gemini-2.5-flash-lite")
	model.SafetySettings = []*genai.SafetySetting{
		{
			Category:  genai.HarmCategoryDangerousContent,
			Threshold: genai.HarmBlockNone,
		},
		{
			Category:  genai.HarmCategoryHarassment,
			Threshold: genai.HarmBlockNone,
		},
		{
			Category:  genai.HarmCategorySexuallyExplicit,
			Threshold: genai.HarmBlockNone,
		},
		{
			Category:  genai.HarmCategoryHateSpeech,
			Threshold: genai.HarmBlockNone,
		},
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Printf("Error from Gemini API: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to generate insight from AI"})
	}

	insight, err := parseInsightResponse(resp, req.Filters)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	return c.JSON(fiber.Map{"success": true, "data": insight})
}

// constructInsightPrompt creates a detailed prompt for the Gemini API.
func constructInsightPrompt(filters models.AnalysisFilters, result *models.AnalysisResult) string {
	correlationsStr := ""
	for _, corr := range result.Correlations {
		correlationsStr += fmt.Sprintf("- %s: r=%.3f (%s, %d days)\n", corr.Factor, corr.Correlation, corr.Significance, corr.SampleSize)
	}

	jsonFormat := `{"summary":"string","key_drivers":["string",...],"recommendations":["string",...]}`

	return fmt.Sprintf(`
        You are an expert retail data analyst. Your task is to interpret the statistical correlation
        results below for a non-technical store manager. Correlation is not causation; phrase your
        analysis accordingly.

        **Analysis Context:**
        - Period: %s to %s
        - Days analyzed: %d
        - Average daily sales: %.2f

        **Correlations between daily revenue and external factors:**
        %s

        **Required Output:**
        You must provide a single, minified JSON object with the following exact structure. Do not include any markdown formatting, backticks, or explanatory text before or after the JSON object.

        %s
    `, filters.StartDate, filters.EndDate, result.Summary.TotalAnalyzedDays, result.Summary.AverageDailySales, correlationsStr, jsonFormat)
}

func extractJSON(rawString string) string {
	start := strings.Index(rawString, "{")
	end := strings.LastIndex(rawString, "}")
	if start == -1 || end == -1 || end < start {
		return ""
	}
	return rawString[start : end+1]
}

// parseInsightResponse parses the JSON from Gemini into a structured response.
func parseInsightResponse(resp *genai.GenerateContentResponse, filters models.AnalysisFilters) (*models.AnalysisInsightResponse, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no content received from AI")
	}

	var geminiText string
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			geminiText += string(txt)
		}
	}

	if geminiText == "" {
		return nil, fmt.Errorf("no text content received from AI")
	}

	// Clean the response to get only the JSON object
	jsonStr := extractJSON(geminiText)
	if jsonStr == "" {
		log.Printf("Could not extract JSON from Gemini response: %s", geminiText)
		return nil, fmt.Errorf("failed to parse AI response format")
	}

	var geminiJSON struct {
		Summary         string   `json:"summary"`
		KeyDrivers      []string `json:"key_drivers"`
		Recommendations []string `json:"recommendations"`
	}

	if err := json.Unmarshal([]byte(jsonStr), &geminiJSON); err != nil {
		log.Printf("Error parsing Gemini JSON: %v\nRaw JSON: %s", err, jsonStr)
		return nil, fmt.Errorf("failed to parse AI insight data")
	}

	return &models.AnalysisInsightResponse{
		ReportName:  "Correlation Analysis Insight",
		GeneratedAt: time.Now(),
		Period: models.InsightPeriod{
			StartDate: filters.StartDate,
			EndDate:   filters.EndDate,
		},
		Summary:         geminiJSON.Summary,
		KeyDrivers:      geminiJSON.KeyDrivers,
		Recommendations: geminiJSON.Recommendations,
	}, nil
}
