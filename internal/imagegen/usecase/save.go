package usecase

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"multi-agent-assistant/internal/imagegen"
)

// save downloads url into the output directory and returns the file path.
func (uc *implUseCase) save(ctx context.Context, url, prompt string) (string, error) {
	resp, err := uc.download.R().SetContext(ctx).Get(url)
	if err != nil {
		return "", fmt.Errorf("download image: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("download image: status %d", resp.StatusCode())
	}

	name := fmt.Sprintf("%s_%s.png", uc.now().Format(imagegen.FileTimeLayout), imagegen.SafeFileName(prompt))
	path := filepath.Join(uc.cfg.OutputDir, name)
	if err := os.WriteFile(path, resp.Body(), 0o644); err != nil {
		return "", fmt.Errorf("write image: %w", err)
	}
	return path, nil
}
