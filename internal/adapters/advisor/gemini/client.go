// Package gemini implementa advisor.Advisor sobre la API de Gemini (google.golang.org/genai).
package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"

	"growbraz/internal/ports/advisor"
)

const DefaultModel = "gemini-3-flash-preview"

var ErrMissingAPIKey = errors.New("gemini: api key required")

type Config struct {
	APIKey string
	Model  string

	// BaseURL y HTTPClient solo se usan en tests (servidor falso).
	BaseURL    string
	HTTPClient *http.Client
}

type Client struct {
	client *genai.Client
	model  string
}

var _ advisor.Advisor = (*Client)(nil)

func New(ctx context.Context, cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrMissingAPIKey
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = DefaultModel
	}

	cc := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: cfg.HTTPClient,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return &Client{client: client, model: model}, nil
}

func (c *Client) Model() string { return c.model }

// Advise hace una sola llamada, sin reintentos. El corte lo decide ctx.
func (c *Client) Advise(ctx context.Context, p advisor.Snapshot, question string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(Prompt(p, question)), nil)
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}
	return resp.Text(), nil
}

// Prompt arma el texto enviado al modelo (pt-BR).
func Prompt(p advisor.Snapshot, question string) string {
	var b strings.Builder
	b.WriteString("Você é um master grower profissional com 30 anos de experiência no cultivo de cannabis.\n")
	b.WriteString("Analise o estado atual desta planta e responda à dúvida do usuário em Português do Brasil.\n\n")
	b.WriteString("Dados da Planta:\n")
	fmt.Fprintf(&b, "- Nome: %s\n", p.Name)
	fmt.Fprintf(&b, "- Strain: %s\n", p.Strain)
	fmt.Fprintf(&b, "- Genética: %s\n", p.Genetics)
	fmt.Fprintf(&b, "- Estágio: %s\n", p.Stage)
	fmt.Fprintf(&b, "- Idade: %d dias\n\n", p.AgeDays)
	fmt.Fprintf(&b, "Pergunta do Usuário: %s\n\n", question)
	b.WriteString("Mantenha os conselhos concisos, científicos e práticos. Use um tom prestativo, porém profissional. ")
	b.WriteString("Responda SEMPRE em Português do Brasil.")
	return b.String()
}
