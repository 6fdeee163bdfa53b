// Package results reads and writes the procurement result files produced by
// the scraper and fills in rendered summaries.
package results

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const (
	filePrefix      = "evergabe_results_"
	fileSuffix      = ".json"
	timestampLayout = "20060102_150405"
)

// Result is one procurement listing. Fields the renderer does not know about
// are kept in Extra and written back unchanged. Known fields keep their
// original JSON value ("" or null included) unless the string field was
// changed.
type Result struct {
	Title                string
	Description          string
	ContractingAuthority string
	Location             string
	AISummary            string
	AISummaryHTML        string
	Extra                map[string]json.RawMessage

	// 已知字段读入时的原始值
	known map[string]json.RawMessage
}

var knownFields = map[string]func(r *Result) *string{
	"title":                 func(r *Result) *string { return &r.Title },
	"description":           func(r *Result) *string { return &r.Description },
	"contracting_authority": func(r *Result) *string { return &r.ContractingAuthority },
	"location":              func(r *Result) *string { return &r.Location },
	"ai_summary":            func(r *Result) *string { return &r.AISummary },
	"ai_summary_html":       func(r *Result) *string { return &r.AISummaryHTML },
}

// stringValue 返回 JSON 字符串的值；null 或非字符串值按空处理
func stringValue(value json.RawMessage) string {
	var s string
	if err := json.Unmarshal(value, &s); err != nil {
		return ""
	}
	return s
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *Result) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*r = Result{}
	for key, value := range raw {
		field, ok := knownFields[key]
		if !ok {
			if r.Extra == nil {
				r.Extra = make(map[string]json.RawMessage)
			}
			r.Extra[key] = value
			continue
		}
		if r.known == nil {
			r.known = make(map[string]json.RawMessage, len(knownFields))
		}
		r.known[key] = value
		*field(r) = stringValue(value)
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (r Result) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(r.Extra)+len(knownFields))
	for key, value := range r.Extra {
		out[key] = value
	}
	for key, field := range knownFields {
		v := *field(&r)
		orig, had := r.known[key]
		switch {
		case had && v == stringValue(orig):
			out[key] = orig
		case had || v != "":
			out[key] = v
		}
	}
	return json.Marshal(out)
}

// FileInfo describes one results file in a directory.
type FileInfo struct {
	Name      string    `json:"filename"`
	Timestamp time.Time `json:"timestamp"`
	Size      int64     `json:"size"`
}

// Load reads a results file.
func Load(path string) ([]Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading results: %w", err)
	}
	var results []Result
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", filepath.Base(path), err)
	}
	return results, nil
}

// Save writes results as indented JSON.
func Save(path string, results []Result) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding results: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing results: %w", err)
	}
	return nil
}

// ListFiles returns the results files in dir, newest first. Files whose name
// does not carry a valid timestamp are skipped.
func ListFiles(dir string) ([]FileInfo, error) {
	paths, err := filepath.Glob(filepath.Join(dir, filePrefix+"*"+fileSuffix))
	if err != nil {
		return nil, fmt.Errorf("listing results: %w", err)
	}

	files := make([]FileInfo, 0, len(paths))
	for _, path := range paths {
		name := filepath.Base(path)
		stamp := strings.TrimSuffix(strings.TrimPrefix(name, filePrefix), fileSuffix)
		ts, err := time.Parse(timestampLayout, stamp)
		if err != nil {
			continue
		}
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		files = append(files, FileInfo{Name: name, Timestamp: ts, Size: info.Size()})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Timestamp.After(files[j].Timestamp)
	})
	return files, nil
}

// Latest returns the path of the newest results file in dir.
func Latest(dir string) (string, error) {
	files, err := ListFiles(dir)
	if err != nil {
		return "", err
	}
	if len(files) == 0 {
		return "", fmt.Errorf("no results files in %s", dir)
	}
	return filepath.Join(dir, files[0].Name), nil
}

// Renderer renders a batch of Markdown summaries, preserving order.
type Renderer interface {
	RenderAll(ctx context.Context, summaries []string) ([]string, error)
}

// RenderSummaries fills AISummaryHTML for every result with a non-empty
// AISummary and returns how many were rendered.
func RenderSummaries(ctx context.Context, results []Result, r Renderer) (int, error) {
	indexes := make([]int, 0, len(results))
	summaries := make([]string, 0, len(results))
	for i, res := range results {
		if strings.TrimSpace(res.AISummary) == "" {
			continue
		}
		indexes = append(indexes, i)
		summaries = append(summaries, res.AISummary)
	}
	if len(summaries) == 0 {
		return 0, nil
	}

	rendered, err := r.RenderAll(ctx, summaries)
	if err != nil {
		return 0, fmt.Errorf("rendering summaries: %w", err)
	}
	for n, i := range indexes {
		results[i].AISummaryHTML = rendered[n]
	}
	return len(indexes), nil
}
