package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var extensions = map[string]bool{
	".xlsx": true,
	".xlsm": true,
	".xls":  true,
}

func isWorkbook(name string) bool {
	// "~$" files are Office lock files.
	return extensions[strings.ToLower(filepath.Ext(name))] && !strings.HasPrefix(name, "~$")
}

// Discover builds jobs for paths. Directories are scanned without
// recursion and contribute their workbooks in name order; files named
// explicitly must be workbooks. Each job writes <outputDir>/<base>.pdf.
func Discover(paths []string, outputDir string) ([]Job, error) {
	var inputs []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			if !isWorkbook(filepath.Base(path)) {
				return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
			}
			inputs = append(inputs, path)
			continue
		}

		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, fmt.Errorf("read directory %s: %w", path, err)
		}
		var names []string
		for _, e := range entries {
			if !e.IsDir() && isWorkbook(e.Name()) {
				names = append(names, e.Name())
			}
		}
		sort.Strings(names)
		for _, name := range names {
			inputs = append(inputs, filepath.Join(path, name))
		}
	}

	jobs := make([]Job, len(inputs))
	for i, input := range inputs {
		base := filepath.Base(input)
		jobs[i] = Job{
			ID:     i,
			Input:  input,
			Output: filepath.Join(outputDir, strings.TrimSuffix(base, filepath.Ext(base))+".pdf"),
		}
	}
	return jobs, nil
}
