package source

import (
	"fmt"
	"os/exec"
)

// ImageReader runs the tesseract binary over a statement screenshot and
// returns the recognized text lines. Tesseract must be on PATH.
type ImageReader struct{}

// Extensions returns the file extensions handled by this reader.
func (r *ImageReader) Extensions() []string {
	return []string{"png", "jpg", "jpeg", "bmp", "tiff"}
}

// Read OCRs the image at path.
func (r *ImageReader) Read(path string) (Input, error) {
	if _, err := exec.LookPath("tesseract"); err != nil {
		return Input{}, fmt.Errorf("tesseract not found on PATH: %w", err)
	}

	cmd := exec.Command("tesseract", path, "stdout")
	out, err := cmd.Output()
	if err != nil {
		if ee, ok := err.(*exec.ExitError); ok {
			return Input{}, fmt.Errorf("tesseract %s: %s: %w", path, ee.Stderr, err)
		}
		return Input{}, fmt.Errorf("tesseract %s: %w", path, err)
	}

	return Input{Kind: KindText, Lines: splitLines(string(out))}, nil
}
