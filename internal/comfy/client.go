// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 lonelyowl13

// Package comfy is an HTTP client for a running ComfyUI server:
// queueing workflows, polling history, downloading produced artifacts
// and uploading input assets.
package comfy

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrUnreachable indicates the server could not be reached.
	ErrUnreachable = errors.New("could not connect to server")

	// ErrTimeout indicates a queued workflow did not complete within
	// the caller's deadline. Distinct from submission or poll failures.
	ErrTimeout = errors.New("workflow execution timed out")

	// ErrNoOutputs indicates a completed workflow produced nothing to
	// download.
	ErrNoOutputs = errors.New("no outputs found in workflow result")
)

// DefaultExecuteTimeout bounds Execute's wait for completion.
const DefaultExecuteTimeout = 300 * time.Second

// pollInterval is the delay between history polls.
const pollInterval = time.Second

// Client talks to one ComfyUI server.
type Client struct {
	baseURL   string
	httpc     *http.Client
	clientID  string
	pollEvery time.Duration
}

// NewClient creates a Client for the given base URL. Each client gets
// its own id, sent with queue submissions so the server can attribute
// the job.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		httpc:     &http.Client{},
		clientID:  uuid.NewString(),
		pollEvery: pollInterval,
	}
}

// BaseURL returns the server base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// CheckServer reports whether the server answers its status endpoint.
func (c *Client) CheckServer(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/system_stats", nil)
	if err != nil {
		return false
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close() //nolint:errcheck
	return resp.StatusCode == http.StatusOK
}

// FetchObjectInfo retrieves the server's node registry document.
func (c *Client) FetchObjectInfo(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/object_info", nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close() //nolint:errcheck
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d from /object_info", ErrUnreachable, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// Queue submits a workflow to the server's prompt queue and returns
// the assigned prompt id. Submission failure is fatal for the call.
func (c *Client) Queue(ctx context.Context, wf Workflow) (string, error) {
	payload, err := json.Marshal(map[string]any{
		"prompt":    wf,
		"client_id": c.clientID,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/prompt", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to queue workflow: %s", strings.TrimSpace(string(body)))
	}

	var queued struct {
		PromptID string `json:"prompt_id"`
	}
	if err := json.Unmarshal(body, &queued); err != nil {
		return "", fmt.Errorf("failed to queue workflow: %w", err)
	}
	return queued.PromptID, nil
}

// WaitForCompletion polls the history endpoint until the prompt's
// outputs are populated or the timeout elapses.
func (c *Client) WaitForCompletion(ctx context.Context, promptID string, timeout time.Duration) (*Result, error) {
	deadline := time.Now().Add(timeout)
	ticker := time.NewTicker(c.pollEvery)
	defer ticker.Stop()

	for {
		res, err := c.history(ctx, promptID)
		if err != nil {
			return nil, err
		}
		if res != nil && len(res.Outputs) > 0 {
			return res, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("%w after %v", ErrTimeout, timeout)
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

func (c *Client) history(ctx context.Context, promptID string) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/history/"+promptID, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close() //nolint:errcheck
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("history request failed with status %d", resp.StatusCode)
	}

	var hist map[string]*Result
	if err := json.NewDecoder(resp.Body).Decode(&hist); err != nil {
		return nil, err
	}
	return hist[promptID], nil
}

// DownloadResults fetches every produced artifact into destDir and
// returns the saved paths, in node id order. Individual fetch failures
// are skipped; the batch never aborts on one missing file.
func (c *Client) DownloadResults(ctx context.Context, res *Result, destDir string) ([]string, error) {
	if res == nil || len(res.Outputs) == 0 {
		return nil, ErrNoOutputs
	}
	if err := os.MkdirAll(destDir, 0o750); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(res.Outputs))
	for id := range res.Outputs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	saved := []string{}
	for _, id := range ids {
		for _, art := range res.Outputs[id].Images {
			path, err := c.downloadArtifact(ctx, art, destDir)
			if err != nil {
				continue
			}
			saved = append(saved, path)
		}
	}
	return saved, nil
}

func (c *Client) downloadArtifact(ctx context.Context, art Artifact, destDir string) (string, error) {
	q := url.Values{}
	q.Set("filename", art.Filename)
	q.Set("subfolder", art.Subfolder)
	q.Set("type", art.Type)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/view?"+q.Encode(), nil)
	if err != nil {
		return "", err
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close() //nolint:errcheck
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("status %d for %s", resp.StatusCode, art.Filename)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	path := filepath.Join(destDir, filepath.Base(art.Filename))
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", err
	}
	return path, nil
}

// Execute queues a workflow, waits for it to finish and downloads its
// artifacts into destDir.
func (c *Client) Execute(ctx context.Context, wf Workflow, destDir string) ([]string, error) {
	if !c.CheckServer(ctx) {
		return nil, fmt.Errorf("%w: ComfyUI server is not running at %s", ErrUnreachable, c.baseURL)
	}

	promptID, err := c.Queue(ctx, wf)
	if err != nil {
		return nil, err
	}

	res, err := c.WaitForCompletion(ctx, promptID, DefaultExecuteTimeout)
	if err != nil {
		return nil, err
	}

	return c.DownloadResults(ctx, res, destDir)
}

// UploadImage posts a local image to the server's image upload
// endpoint. When name is non-empty the file is stored under it and it
// is returned; otherwise the server-assigned stored name is returned.
func (c *Client) UploadImage(ctx context.Context, path, name string) (string, error) {
	return c.upload(ctx, path, "image", name)
}

// UploadFile posts a local file to the named upload endpoint
// (/upload/<kind>) and returns the server-assigned stored name.
func (c *Client) UploadFile(ctx context.Context, path, kind string) (string, error) {
	return c.upload(ctx, path, kind, "")
}

func (c *Client) upload(ctx context.Context, path, kind, name string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return "", err
	}
	defer f.Close() //nolint:errcheck

	fileName := filepath.Base(path)
	if name != "" {
		fileName = name
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile(kind, fileName)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, f); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload/"+kind, &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("upload failed: %s", strings.TrimSpace(string(respBody)))
	}

	if name != "" {
		return name, nil
	}
	var stored struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(respBody, &stored); err != nil {
		return "", fmt.Errorf("unexpected upload response: %w", err)
	}
	return stored.Name, nil
}
