package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"mmgp/internal/model"
	"mmgp/internal/questionnaire"
)

// ReportService renders a stored assessment as a document
type ReportService struct {
	history *HistoryService
	md      goldmark.Markdown
}

// NewReportService creates a new report service
func NewReportService(history *HistoryService) *ReportService {
	return &ReportService{
		history: history,
		md:      goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

// Markdown renders the result page of one of the actor's records.
func (s *ReportService) Markdown(ctx context.Context, id string, actor model.Actor) (string, error) {
	detail, err := s.history.Detail(ctx, id, actor)
	if err != nil {
		return "", err
	}
	return renderMarkdown(detail), nil
}

// HTML renders the same report as a standalone HTML page.
func (s *ReportService) HTML(ctx context.Context, id string, actor model.Actor) (string, error) {
	markdown, err := s.Markdown(ctx, id, actor)
	if err != nil {
		return "", err
	}
	var body bytes.Buffer
	if err := s.md.Convert([]byte(markdown), &body); err != nil {
		return "", fmt.Errorf("markdown convert: %w", err)
	}
	return "<!doctype html><html><head><meta charset='utf-8'><title>Resultado MMGP</title>" +
		"<style>body{font-family:sans-serif;max-width:900px;margin:2rem auto;padding:0 1rem;} " +
		"table{border-collapse:collapse;width:100%;} th,td{border:1px solid #ccc;padding:.4rem .6rem;text-align:left;}</style>" +
		"</head><body>" + body.String() + "</body></html>", nil
}

func renderMarkdown(d *ResponseDetail) string {
	rec, res := d.Record, d.Result
	var b strings.Builder

	b.WriteString("# Resultado da Avaliação de Maturidade MMGP\n\n")
	fmt.Fprintf(&b, "- **E-mail:** %s\n", rec.Email)
	fmt.Fprintf(&b, "- **Data:** %s\n", rec.SubmittedAt.Format("02/01/2006 15:04"))
	fmt.Fprintf(&b, "- **Índice de maturidade:** %.2f\n", res.MaturityIndex)
	fmt.Fprintf(&b, "- **Nível de maturidade:** %s\n\n", res.MaturityLevel)

	b.WriteString("## Pontuação por nível\n\n")
	b.WriteString("| Nível | Pontuação | Classificação | Descrição |\n")
	b.WriteString("|---|---|---|---|\n")
	for _, lr := range res.Levels {
		fmt.Fprintf(&b, "| %s | %.0f%% | %s | %s |\n", lr.Title, lr.Score, lr.Tier, lr.Description)
	}

	b.WriteString("\n## Interpretação\n\n")
	b.WriteString(res.Interpretation)
	b.WriteString("\n")

	total := 0
	for _, ids := range d.Unanswered {
		total += len(ids)
	}
	if total > 0 {
		b.WriteString("\n## Perguntas não respondidas\n\n")
		fmt.Fprintf(&b, "Existem %d perguntas que não foram respondidas.\n\n", total)
		for _, l := range model.Levels {
			ids := d.Unanswered[l]
			if len(ids) == 0 {
				continue
			}
			sec, _ := questionnaire.SectionFor(l)
			fmt.Fprintf(&b, "- Nível %d: %d pergunta(s) não respondida(s)\n", sec.Number, len(ids))
		}
	}
	return b.String()
}
