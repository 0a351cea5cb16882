package main

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/resume-docx/internal/config"
	"github.com/jonathan/resume-docx/internal/fetch"
)

// inputSource names where resume HTML comes from: a local file or a URL.
type inputSource struct {
	Path string
	URL  string
}

func (s inputSource) validate() error {
	switch {
	case s.Path != "" && s.URL != "":
		return fmt.Errorf("--in and --url are mutually exclusive")
	case s.Path == "" && s.URL == "":
		return fmt.Errorf("one of --in or --url is required")
	}
	return nil
}

// name returns a label for the source used to derive output file names.
func (s inputSource) name() string {
	if s.Path != "" {
		return s.Path
	}
	return s.URL
}

// readInput loads the resume HTML for src.
func readInput(ctx context.Context, src inputSource, settings config.Config) (string, error) {
	if err := src.validate(); err != nil {
		return "", err
	}

	if src.Path != "" {
		data, err := os.ReadFile(src.Path)
		if err != nil {
			return "", fmt.Errorf("failed to read input file: %w", err)
		}
		return string(data), nil
	}

	result, err := fetch.Resume(ctx, src.URL, &fetch.Options{
		Timeout:    settings.FetchTimeout(),
		MaxBytes:   settings.MaxBodyBytes,
		UseBrowser: settings.UseBrowser,
		Verbose:    settings.Verbose,
	})
	if err != nil {
		return "", err
	}
	return result.HTML, nil
}

// deriveOutputPath maps an input file or URL to a .docx path inside outputDir.
// Inputs without a usable base name get a random one.
func deriveOutputPath(input, outputDir string) string {
	base := ""
	if u, err := url.Parse(input); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		base = path.Base(u.Path)
	} else {
		base = filepath.Base(input)
	}

	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" || base == "." || base == "/" {
		base = "resume-" + uuid.NewString()[:8]
	}
	return filepath.Join(outputDir, base+".docx")
}
