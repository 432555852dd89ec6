package fixture

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// WriteFile 将 fixture 以缩进 JSON 写入 path。
// path 缺少 .json 后缀时自动补齐，返回实际写入路径。
func WriteFile(path string, rec *Record) (string, error) {
	if !strings.HasSuffix(path, ".json") {
		path += ".json"
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal fixture: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write fixture %q: %w", path, err)
	}
	return path, nil
}
