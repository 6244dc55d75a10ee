// Package evaluation measures retrieval quality against a set of queries with
// known answer pages.
package evaluation

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"manualrag/src/core/manualqa"
	"manualrag/src/core/retriever"
	"manualrag/src/log"
)

// Path selects which search path a case exercises.
type Path string

const (
	PathAnswer Path = "answer"
	PathSearch Path = "search"
)

// Case is one line of an evaluation file.
type Case struct {
	Query         string `json:"query"`
	ExpectedPages []int  `json:"expected_pages"`
	Path          Path   `json:"path,omitempty"`
}

type CaseResult struct {
	Query string
	// Rank is the 1-based position of the first expected page, or 0.
	Rank          int
	ReturnedPages []int
	Err           error
}

func (r CaseResult) Hit() bool {
	return r.Rank > 0
}

type Report struct {
	Evaluated int
	Failed    int
	Hits      int
	// HitRate is the share of evaluated cases with an expected page anywhere
	// in the results.
	HitRate float64
	// MRR is the mean reciprocal rank of the first expected page.
	MRR     float64
	Results []CaseResult
}

const maxLineSize = 4 * 1024 * 1024

// ReadCases decodes a JSON lines evaluation file. Lines that fail to decode
// or lack a query are skipped and counted.
func ReadCases(r io.Reader) ([]Case, int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var (
		cases   []Case
		skipped int
		lineNo  int
	)
	for scanner.Scan() {
		lineNo++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var c Case
		if err := json.Unmarshal(line, &c); err != nil {
			log.Error(err, "failed to parse evaluation line", "line", lineNo)
			skipped++
			continue
		}
		if c.Query == "" {
			log.Info("evaluation line has no query", "line", lineNo)
			skipped++
			continue
		}
		if c.Path == "" {
			c.Path = PathAnswer
		}
		cases = append(cases, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, skipped, fmt.Errorf("failed to read evaluation file: %w", err)
	}
	return cases, skipped, nil
}

// Run evaluates every case against svc. onCase, when set, is called after each
// case.
func Run(ctx context.Context, svc manualqa.QueryService, cases []Case, onCase func(CaseResult)) (*Report, error) {
	report := &Report{Results: make([]CaseResult, 0, len(cases))}
	var reciprocal float64

	for _, c := range cases {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		result := CaseResult{Query: c.Query}
		pages, err := returnedPages(ctx, svc, c)
		if err != nil {
			result.Err = err
			report.Failed++
		} else {
			result.ReturnedPages = pages
			result.Rank = firstExpected(pages, c.ExpectedPages)
			report.Evaluated++
			if result.Hit() {
				report.Hits++
				reciprocal += 1 / float64(result.Rank)
			}
		}

		report.Results = append(report.Results, result)
		if onCase != nil {
			onCase(result)
		}
	}

	if report.Evaluated > 0 {
		report.HitRate = float64(report.Hits) / float64(report.Evaluated)
		report.MRR = reciprocal / float64(report.Evaluated)
	}
	return report, nil
}

func returnedPages(ctx context.Context, svc manualqa.QueryService, c Case) ([]int, error) {
	pages := make([]int, 0)
	switch c.Path {
	case PathSearch:
		res, err := svc.Search(ctx, c.Query)
		if err != nil {
			return nil, err
		}
		if res.Status != retriever.StatusOK {
			return pages, nil
		}
		for _, hit := range res.Items {
			pages = appendPage(pages, hit.Item.Page)
		}
	case PathAnswer:
		res, err := svc.Answer(ctx, c.Query)
		if err != nil {
			return nil, err
		}
		if res.Status != retriever.StatusOK {
			return pages, nil
		}
		for _, cand := range res.Candidates {
			pages = appendPage(pages, cand.Item.PageNo)
		}
	default:
		return nil, fmt.Errorf("unknown evaluation path %q", c.Path)
	}
	return pages, nil
}

// appendPage records a returned page, using -1 for results without one so
// ranks stay aligned with result positions.
func appendPage(pages []int, page *int) []int {
	if page == nil {
		return append(pages, -1)
	}
	return append(pages, *page)
}

func firstExpected(pages, expected []int) int {
	for i, page := range pages {
		if slices.Contains(expected, page) {
			return i + 1
		}
	}
	return 0
}
