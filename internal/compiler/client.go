package compiler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Client talks to a Compiler Explorer compatible compile endpoint. It makes a
// single attempt per call and imposes no timeout beyond the caller's context.
type Client struct {
	baseURL    string
	compilerID string
	httpClient *http.Client
}

func NewClient(baseURL, compilerID string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		compilerID: compilerID,
		httpClient: &http.Client{},
	}
}

// CompilerID returns the compiler the client submits to.
func (c *Client) CompilerID() string { return c.compilerID }

// Compile submits source with the given user arguments. When execute is set
// the service is asked to also run the program and the outcome is returned in
// Result.Execution.
func (c *Client) Compile(ctx context.Context, source string, args []string, execute bool) (*Result, error) {
	body, err := json.Marshal(newRequest(source, args, execute))
	if err != nil {
		return nil, fmt.Errorf("encoding compile request: %w", err)
	}

	url := fmt.Sprintf("%s/api/compiler/%s/compile", c.baseURL, c.compilerID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("reading response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &TransportError{StatusCode: resp.StatusCode, Body: truncate(strings.TrimSpace(string(data)), 200)}
	}

	return decodeResponse(data)
}

type apiRequest struct {
	Source              string     `json:"source"`
	Options             apiOptions `json:"options"`
	AllowStoreCodeDebug bool       `json:"allowStoreCodeDebug"`
}

type apiOptions struct {
	UserArguments   string         `json:"userArguments"`
	Filters         apiFilters     `json:"filters"`
	CompilerOptions map[string]any `json:"compilerOptions"`
}

type apiFilters struct {
	Execute bool `json:"execute"`
}

func newRequest(source string, args []string, execute bool) apiRequest {
	return apiRequest{
		Source: source,
		Options: apiOptions{
			UserArguments:   strings.Join(args, " "),
			Filters:         apiFilters{Execute: execute},
			CompilerOptions: map[string]any{},
		},
		AllowStoreCodeDebug: true,
	}
}

// apiResponse maps the compile endpoint's JSON body.
type apiResponse struct {
	Code       *int           `json:"code"`
	Stdout     []apiLine      `json:"stdout"`
	Stderr     []apiLine      `json:"stderr"`
	Asm        []apiAsmLine   `json:"asm"`
	ExecResult *apiExecResult `json:"execResult"`
}

type apiLine struct {
	Text string  `json:"text"`
	Tag  *apiTag `json:"tag"`
}

type apiTag struct {
	Line int    `json:"line"`
	Text string `json:"text"`
}

type apiAsmLine struct {
	Text   string     `json:"text"`
	Source *apiSource `json:"source"`
}

type apiSource struct {
	File *string `json:"file"`
	Line *int    `json:"line"`
}

type apiExecResult struct {
	Code       int       `json:"code"`
	DidExecute bool      `json:"didExecute"`
	Stdout     []apiLine `json:"stdout"`
	Stderr     []apiLine `json:"stderr"`
}

func decodeResponse(data []byte) (*Result, error) {
	var raw apiResponse
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &ProtocolError{Err: err}
	}
	if raw.Code == nil {
		return nil, &ProtocolError{Err: errors.New(`missing "code" field`)}
	}

	res := &Result{
		ExitCode: *raw.Code,
		Stdout:   mapLines(raw.Stdout),
		Stderr:   mapLines(raw.Stderr),
	}
	for _, a := range raw.Asm {
		line := AsmLine{Text: a.Text}
		if a.Source != nil && a.Source.Line != nil {
			ref := &SourceRef{Line: *a.Source.Line}
			if a.Source.File != nil {
				ref.File = *a.Source.File
			}
			line.Source = ref
		}
		res.Assembly = append(res.Assembly, line)
	}
	if raw.ExecResult != nil && raw.ExecResult.DidExecute {
		res.Execution = &ExecutionResult{
			ExitCode: raw.ExecResult.Code,
			Stdout:   mapLines(raw.ExecResult.Stdout),
			Stderr:   mapLines(raw.ExecResult.Stderr),
		}
	}
	return res, nil
}

func mapLines(in []apiLine) []StreamLine {
	if len(in) == 0 {
		return nil
	}
	out := make([]StreamLine, 0, len(in))
	for _, l := range in {
		sl := StreamLine{Text: l.Text}
		if l.Tag != nil {
			sl.Tag = &Tag{Line: l.Tag.Line, Label: l.Tag.Text}
		}
		out = append(out, sl)
	}
	return out
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
