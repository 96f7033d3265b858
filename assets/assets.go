package assets

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
)

// FontPack holds the two poster font weights, already encoded for
// inline embedding so renders need no filesystem access.
type FontPack struct {
	RegularDataURL string
	BoldDataURL    string
}

// LoadFonts reads both font files once at startup. A missing file is
// fatal for the service; there is no fallback embedding.
func LoadFonts(regularPath, boldPath string) (*FontPack, error) {
	regular, err := fontDataURL(regularPath)
	if err != nil {
		return nil, err
	}
	bold, err := fontDataURL(boldPath)
	if err != nil {
		return nil, err
	}
	return &FontPack{RegularDataURL: regular, BoldDataURL: bold}, nil
}

func fontDataURL(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read font %s: %w", path, err)
	}
	return "data:font/ttf;base64," + base64.StdEncoding.EncodeToString(data), nil
}

// PhotoDataURL embeds uploaded photo bytes as a data URL. The MIME
// type is sniffed from the content so JPEG uploads are not mislabeled
// as PNG.
func PhotoDataURL(photo []byte) string {
	mime := http.DetectContentType(photo)
	return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(photo))
}
