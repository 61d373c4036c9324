package repository

import (
	"context"
	"fmt"
	"stockscore/internal/logger"
	"strings"
	"sync"
	"time"

	"github.com/ayush6624/go-chatgpt"
	"golang.org/x/time/rate"
)

type GptRepository interface {
	AnalyzeTicker(ctx context.Context, req TickerAnalysisRequest) (string, error)
}

// TickerAnalysisRequest carries everything the analyst prompt interpolates.
// Missing values are rendered as N/A so the model knows to look them up.
type TickerAnalysisRequest struct {
	Symbol    string
	Name      string
	Industry  string
	Fields    map[string]string
	Headlines []string
}

type gptRepositoryHandler struct {
	mu      sync.Mutex
	clients []*chatgpt.Client
	active  int

	limiter    *rate.Limiter
	maxRetries int
}

// NewGptRepository builds one client per api key. Keys rotate round-robin
// whenever a request fails, so a rate-limited key does not stall the run.
func NewGptRepository(apiKeys []string, requestsPerSecond float64) (GptRepository, error) {
	if len(apiKeys) == 0 {
		return nil, fmt.Errorf("failed to construct gpt repository: no api keys given")
	}

	clients := make([]*chatgpt.Client, 0, len(apiKeys))
	for _, key := range apiKeys {
		client, err := chatgpt.NewClient(key)
		if err != nil {
			return nil, fmt.Errorf("failed to construct gpt client: %w", err)
		}
		clients = append(clients, client)
	}

	return &gptRepositoryHandler{
		clients:    clients,
		limiter:    rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
		maxRetries: 3,
	}, nil
}

const analystSystemPrompt = `You are a stock analyst providing precise buy/sell recommendations.`

const analystPromptTemplate = `Stock Analysis & Investment Decision

Role: You are a highly successful stock analyst and portfolio manager, specializing in identifying high-growth, low-risk investments with strong profit potential.

Task: Analyze the stock %s using real-time, historical, and sentiment data. If data is missing or labeled N/A, search the web for the most recent and relevant information.

## Stock Information & Market Data
%s

## Market Sentiment & News Analysis
Latest News Headlines:
%s

Respond with exactly these sections:

### 1. Recommendation: [Buy/Hold/Sell]
- Decision must be clear: BUY, HOLD, or SELL.
- Justify your decision based on technical indicators, sentiment, valuation, and market conditions.

### 2. Recommended Buy Price
- Buy Range: $[Predicted Min Buy Price] - $[Predicted Max Buy Price]
- Ensure the buy price is below the current price.

### 3. Recommended Sell Price
- Sell Range: $[Predicted Min Sell Price] - $[Predicted Max Sell Price]
- Use historical highs, resistance levels, and market trends to determine exit targets.

### 4. Technical Analysis Summary
- Identify the most relevant indicators impacting stock performance.
- Highlight any major breakouts, trend reversals, or risk factors.
`

// prompt fields rendered in a stable order so prompts stay comparable run to run
var promptFieldOrder = []string{
	"Name",
	"Current Price",
	"Market Cap",
	"P/E",
	"Yesterday Close Price",
	"1 Day Price Change",
	"1 Week Price Change",
	"1 Month Price Change",
	"Volume",
	"Industry",
	"RSI",
	"VWMA",
	"EMA",
	"ATR",
	"VWMA vs Current Price",
	"Positive Rating",
	"Negative Rating",
	"Sentiment Ratio",
}

func (h *gptRepositoryHandler) AnalyzeTicker(ctx context.Context, req TickerAnalysisRequest) (string, error) {
	log := logger.FromContext(ctx)

	prompt := h.buildPrompt(req)

	var err error
	for attempt := 0; attempt <= h.maxRetries; attempt++ {
		if attempt > 0 {
			log.Warnf("retrying analysis for %s with next api key (attempt %d): %v", req.Symbol, attempt, err)
			h.rotateKey()
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(time.Minute):
			}
		}
		if err = h.limiter.Wait(ctx); err != nil {
			return "", err
		}

		var res *chatgpt.ChatResponse
		res, err = h.client().Send(ctx, &chatgpt.ChatCompletionRequest{
			Model: chatgpt.GPT4,
			Messages: []chatgpt.ChatMessage{
				{
					Role:    chatgpt.ChatGPTModelRoleSystem,
					Content: analystSystemPrompt,
				},
				{
					Role:    chatgpt.ChatGPTModelRoleUser,
					Content: prompt,
				},
			},
		})
		if err != nil {
			continue
		}
		if len(res.Choices) == 0 {
			err = fmt.Errorf("empty completion response")
			continue
		}

		return res.Choices[0].Message.Content, nil
	}

	return "", fmt.Errorf("failed to get analysis for %s: %w", req.Symbol, err)
}

func (h *gptRepositoryHandler) buildPrompt(req TickerAnalysisRequest) string {
	fields := make([]string, 0, len(promptFieldOrder)+1)
	fields = append(fields, fmt.Sprintf("- Symbol: %s", req.Symbol))
	for _, name := range promptFieldOrder {
		value := req.Fields[name]
		if name == "Name" && req.Name != "" {
			value = req.Name
		}
		if name == "Industry" && req.Industry != "" {
			value = req.Industry
		}
		if value == "" {
			value = "N/A"
		}
		fields = append(fields, fmt.Sprintf("- %s: %s", name, value))
	}

	headlines := req.Headlines
	if len(headlines) == 0 {
		headlines = []string{"N/A"}
	}
	headlineLines := make([]string, 0, len(headlines))
	for _, hl := range headlines {
		headlineLines = append(headlineLines, "- "+hl)
	}

	return fmt.Sprintf(
		analystPromptTemplate,
		req.Symbol,
		strings.Join(fields, "\n"),
		strings.Join(headlineLines, "\n"),
	)
}

func (h *gptRepositoryHandler) client() *chatgpt.Client {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.clients[h.active]
}

func (h *gptRepositoryHandler) rotateKey() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.active = (h.active + 1) % len(h.clients)
}
